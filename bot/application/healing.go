package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"skirmish/bot/domain"
)

// アイテム種別ごとの使用時間と後始末までの遅延。金リンゴは長押しが必要で、
// その間ずっと手スロットを占有するため後始末も遅らせます。
const (
	soupUseDuration  = 300 * time.Millisecond
	appleUseDuration = 1600 * time.Millisecond
	soupUnwindDelay  = 450 * time.Millisecond
	appleUnwindDelay = 2600 * time.Millisecond
)

// healState は回復ステートマシンの状態です。所有するセッションの Healer だけが
// 書き換えます。
type healState struct {
	inProgress bool
	lastHeal   time.Time // 直近の回復の使用開始時刻
}

// Healer は体力変化のたびに回復要否を判定するステートマシンです。
// Idle → Healing → Cooldown → Idle と遷移します。
type Healer struct {
	ctx    context.Context
	client domain.GameClient
	adv    *domain.AdvancedConfig
	loop   *loop
	log    *slog.Logger
	gear   *GearOptimizer

	state healState
}

func newHealer(ctx context.Context, client domain.GameClient, adv *domain.AdvancedConfig, lp *loop, log *slog.Logger, gear *GearOptimizer) *Healer {
	return &Healer{
		ctx:    ctx,
		client: client,
		adv:    adv,
		loop:   lp,
		log:    log,
		gear:   gear,
	}
}

// Attach は何もしません。体力変化はセッションがイベントとして配送します。
func (h *Healer) Attach() {}

// Detach は何もしません。進行中の後始末タイマーはループ停止と共に消えます。
func (h *Healer) Detach() {}

// onHealthChanged は回復要否を判定し、必要なら回復アイテムを消費します。
// 回復中・クールダウン中の再突入はここで弾かれます。
func (h *Healer) onHealthChanged() {
	if !h.client.InWorld() {
		return
	}
	if h.client.Health() >= h.adv.HealThreshold {
		return
	}
	if h.state.inProgress {
		return
	}
	if time.Since(h.state.lastHeal) < h.adv.HealCooldown {
		return
	}

	item, isSoup, ok := h.selectConsumable()
	if !ok {
		return
	}

	h.state.inProgress = true
	useDur, unwindDelay := soupUseDuration, soupUnwindDelay
	if !isSoup {
		useDur, unwindDelay = appleUseDuration, appleUnwindDelay
	}

	if err := h.consume(item, useDur); err != nil {
		h.log.Warn("heal failed", "item", item, "err", err)
	}

	// 成否に関わらず inProgress を必ず解除し、装備の再評価を予約する。
	// Healing 状態で固まることはない。
	h.loop.AfterFunc(unwindDelay, func() {
		h.state.inProgress = false
		h.gear.Request()
	})
}

// selectConsumable はスープ類を優先し、なければ金リンゴ類を選びます。
// どちらも持っていなければ ok=false を返します。
func (h *Healer) selectConsumable() (item domain.ItemID, isSoup, ok bool) {
	inv := h.client.Inventory()
	if item, ok := firstOwned(domain.Soups(), inv); ok {
		return item, true, true
	}
	if item, ok := firstOwned(domain.GoldenApples(), inv); ok {
		return item, false, true
	}
	return "", false, false
}

// consume はアイテムを手に装備して使用を開始し、useDur 経過後に使用を終了します。
// クールダウンは使用開始時点から数えます。
func (h *Healer) consume(item domain.ItemID, useDur time.Duration) error {
	if err := h.client.Equip(h.ctx, item, domain.SlotHand); err != nil {
		return fmt.Errorf("equip: %w", err)
	}
	h.state.lastHeal = time.Now()
	if err := h.client.BeginItemUse(h.ctx); err != nil {
		return fmt.Errorf("begin use: %w", err)
	}
	h.loop.AfterFunc(useDur, func() {
		if err := h.client.EndItemUse(h.ctx); err != nil {
			h.log.Warn("end item use failed", "item", item, "err", err)
		}
	})
	return nil
}

func firstOwned(table domain.PriorityTable, inv []domain.Item) (domain.ItemID, bool) {
	for _, id := range table {
		for _, it := range inv {
			if it.ID == id {
				return id, true
			}
		}
	}
	return "", false
}
