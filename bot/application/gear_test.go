package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"skirmish/bot/domain"
	"skirmish/bot/domain/mocks"
)

func newTestGear(t *testing.T, client domain.GameClient) (*GearOptimizer, *loop) {
	t.Helper()
	l := newLoop()
	t.Cleanup(l.Shutdown)
	return newGearOptimizer(context.Background(), client, l, slog.Default()), l
}

func TestGear_UpgradesToStrictlyBetter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().Inventory().Return([]domain.Item{
		{ID: "iron_sword", Count: 1},
		{ID: "leather_helmet", Count: 1},
	})
	client.EXPECT().Equipped(domain.SlotHand).Return(domain.ItemID("stone_sword"), true)
	client.EXPECT().Equipped(domain.SlotHead).Return(domain.ItemID(""), false)
	client.EXPECT().Equip(gomock.Any(), domain.ItemID("iron_sword"), domain.SlotHand).Return(nil)
	client.EXPECT().Equip(gomock.Any(), domain.ItemID("leather_helmet"), domain.SlotHead).Return(nil)

	g, _ := newTestGear(t, client)
	g.pass()
}

// 同順位では持ち替えない
func TestGear_NoSwapForEqualRank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().Inventory().Return([]domain.Item{
		{ID: "iron_sword", Count: 1},
	})
	client.EXPECT().Equipped(domain.SlotHand).Return(domain.ItemID("iron_sword"), true)

	g, _ := newTestGear(t, client)
	g.pass()
}

// 劣る候補には持ち替えない
func TestGear_NoSwapForWorseCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().Inventory().Return([]domain.Item{
		{ID: "wooden_sword", Count: 1},
	})
	client.EXPECT().Equipped(domain.SlotHand).Return(domain.ItemID("diamond_sword"), true)

	g, _ := newTestGear(t, client)
	g.pass()
}

// 表に載っていないインベントリだけならスロットには触れない
func TestGear_UnlistedItemsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().Inventory().Return([]domain.Item{
		{ID: "dirt", Count: 64},
		{ID: "mushroom_stew", Count: 1},
	})

	g, _ := newTestGear(t, client)
	g.pass()
}

// 持ち替え中にアイテムが消えても他のスロットの処理は続行する
func TestGear_ItemGoneIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().Inventory().Return([]domain.Item{
		{ID: "iron_sword", Count: 1},
		{ID: "iron_helmet", Count: 1},
	})
	client.EXPECT().Equipped(domain.SlotHand).Return(domain.ItemID(""), false)
	client.EXPECT().Equipped(domain.SlotHead).Return(domain.ItemID(""), false)
	client.EXPECT().Equip(gomock.Any(), domain.ItemID("iron_sword"), domain.SlotHand).
		Return(domain.ErrItemGone)
	client.EXPECT().Equip(gomock.Any(), domain.ItemID("iron_helmet"), domain.SlotHead).Return(nil)

	g, _ := newTestGear(t, client)
	g.pass()
}

// その他のエラーも1スロットの失敗で止まらない
func TestGear_OtherErrorsDoNotAbortPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().Inventory().Return([]domain.Item{
		{ID: "iron_sword", Count: 1},
		{ID: "iron_helmet", Count: 1},
	})
	client.EXPECT().Equipped(domain.SlotHand).Return(domain.ItemID(""), false)
	client.EXPECT().Equipped(domain.SlotHead).Return(domain.ItemID(""), false)
	client.EXPECT().Equip(gomock.Any(), domain.ItemID("iron_sword"), domain.SlotHand).
		Return(errors.New("server busy"))
	client.EXPECT().Equip(gomock.Any(), domain.ItemID("iron_helmet"), domain.SlotHead).Return(nil)

	g, _ := newTestGear(t, client)
	g.pass()
}

// 予約中の再要求は1回のパスにまとめられる
func TestGear_RequestsAreDebounced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().Inventory().Return(nil).Times(1)

	g, l := newTestGear(t, client)
	g.Request()
	g.Request()
	g.Request()

	if n := drain(l); n != 1 {
		t.Fatalf("queued %d passes, want 1", n)
	}
}
