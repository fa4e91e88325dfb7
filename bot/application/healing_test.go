package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"skirmish/bot/domain"
	"skirmish/bot/domain/mocks"
)

func testAdvanced() *domain.AdvancedConfig {
	return &domain.AdvancedConfig{
		HealThreshold: 14,
		HealCooldown:  4 * time.Second,
	}
}

func newTestHealer(t *testing.T, client domain.GameClient) (*Healer, *loop) {
	t.Helper()
	l := newLoop()
	t.Cleanup(l.Shutdown)
	gear := newGearOptimizer(context.Background(), client, l, slog.Default())
	h := newHealer(context.Background(), client, testAdvanced(), l, slog.Default(), gear)
	return h, l
}

// pump は条件が満たされるまでループのタスクを実行します。
func pump(t *testing.T, l *loop, cond func() bool, msg string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for !cond() {
		select {
		case task := <-l.Tasks():
			task()
		case <-time.After(5 * time.Millisecond):
		case <-deadline:
			t.Fatal(msg)
		}
	}
}

func TestHealer_NoHealAboveThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().InWorld().Return(true).AnyTimes()
	client.EXPECT().Health().Return(20.0).AnyTimes()

	h, _ := newTestHealer(t, client)
	h.onHealthChanged()

	if h.state.inProgress {
		t.Fatal("healing should not start above the threshold")
	}
}

func TestHealer_NoHealWhileInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().InWorld().Return(true).AnyTimes()
	client.EXPECT().Health().Return(5.0).AnyTimes()

	h, _ := newTestHealer(t, client)
	h.state.inProgress = true

	// Inventory も Equip も呼ばれない
	h.onHealthChanged()
}

func TestHealer_NoHealDuringCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().InWorld().Return(true).AnyTimes()
	client.EXPECT().Health().Return(5.0).AnyTimes()

	h, _ := newTestHealer(t, client)
	h.state.lastHeal = time.Now()

	h.onHealthChanged()

	if h.state.inProgress {
		t.Fatal("healing should not start during cooldown")
	}
}

func TestHealer_NoConsumableDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().InWorld().Return(true).AnyTimes()
	client.EXPECT().Health().Return(5.0).AnyTimes()
	client.EXPECT().Inventory().Return([]domain.Item{{ID: "dirt", Count: 64}})

	h, _ := newTestHealer(t, client)
	h.onHealthChanged()

	if h.state.inProgress {
		t.Fatal("no consumable, healing should not start")
	}
}

// 金リンゴを持っていてもスープを優先する
func TestHealer_PrefersSoupOverApple(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().InWorld().Return(true).AnyTimes()
	client.EXPECT().Health().Return(5.0).AnyTimes()
	client.EXPECT().Inventory().Return([]domain.Item{
		{ID: "golden_apple", Count: 3},
		{ID: "mushroom_stew", Count: 1},
	}).AnyTimes()
	client.EXPECT().Equipped(gomock.Any()).Return(domain.ItemID(""), false).AnyTimes()

	client.EXPECT().Equip(gomock.Any(), domain.ItemID("mushroom_stew"), domain.SlotHand).Return(nil)
	client.EXPECT().BeginItemUse(gomock.Any()).Return(nil)
	client.EXPECT().EndItemUse(gomock.Any()).Return(nil)

	h, l := newTestHealer(t, client)
	h.onHealthChanged()

	if !h.state.inProgress {
		t.Fatal("healing should be in progress")
	}
	if h.state.lastHeal.IsZero() {
		t.Fatal("cooldown clock should start at use-begin")
	}

	// 後始末で inProgress が解除され、装備パスが予約される
	pump(t, l, func() bool { return !h.state.inProgress }, "healing never unwound")
}

// 使用開始に失敗しても inProgress は必ず解除される
func TestHealer_UnwindClearsInProgressOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().InWorld().Return(true).AnyTimes()
	client.EXPECT().Health().Return(5.0).AnyTimes()
	client.EXPECT().Inventory().Return([]domain.Item{
		{ID: "mushroom_stew", Count: 1},
	}).AnyTimes()
	client.EXPECT().Equipped(gomock.Any()).Return(domain.ItemID(""), false).AnyTimes()
	client.EXPECT().Equip(gomock.Any(), domain.ItemID("mushroom_stew"), domain.SlotHand).
		Return(errors.New("equip rejected"))

	h, l := newTestHealer(t, client)
	h.onHealthChanged()

	pump(t, l, func() bool { return !h.state.inProgress }, "inProgress stuck after failed heal")
}

// 金リンゴはスープより長い使用時間と後始末遅延を使う
func TestHealer_AppleFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGameClient(ctrl)
	client.EXPECT().InWorld().Return(true).AnyTimes()
	client.EXPECT().Health().Return(5.0).AnyTimes()
	client.EXPECT().Inventory().Return([]domain.Item{
		{ID: "golden_apple", Count: 1},
	}).AnyTimes()
	client.EXPECT().Equipped(gomock.Any()).Return(domain.ItemID(""), false).AnyTimes()

	client.EXPECT().Equip(gomock.Any(), domain.ItemID("golden_apple"), domain.SlotHand).Return(nil)
	client.EXPECT().BeginItemUse(gomock.Any()).Return(nil)
	client.EXPECT().EndItemUse(gomock.Any()).Return(nil)

	h, l := newTestHealer(t, client)
	started := time.Now()
	h.onHealthChanged()

	pump(t, l, func() bool { return !h.state.inProgress }, "healing never unwound")

	if elapsed := time.Since(started); elapsed < appleUnwindDelay {
		t.Fatalf("apple unwind finished too early: %v < %v", elapsed, appleUnwindDelay)
	}
}
