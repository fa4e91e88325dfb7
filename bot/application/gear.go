package application

import (
	"context"
	"errors"
	"log/slog"

	"skirmish/bot/domain"
)

// GearOptimizer は各装備スロットを優先順位表の最良品に保ちます。
// インベントリ変化のたびに走らせるとスラッシングするため、要求を
// デバウンスフラグで1回のパスにまとめます。
type GearOptimizer struct {
	ctx    context.Context
	client domain.GameClient
	loop   *loop
	log    *slog.Logger

	scheduled bool // パス予約中の多重要求はここで落とす
}

func newGearOptimizer(ctx context.Context, client domain.GameClient, lp *loop, log *slog.Logger) *GearOptimizer {
	return &GearOptimizer{
		ctx:    ctx,
		client: client,
		loop:   lp,
		log:    log,
	}
}

// Attach は何もしません。パスは Request 経由でのみ走ります。
func (g *GearOptimizer) Attach() {}

// Detach は何もしません。予約済みのパスはループ停止と共に消えます。
func (g *GearOptimizer) Detach() {}

// Request は最適化パスを予約します。予約中の再要求は破棄されます。
// 破棄されても、次のインベントリ変化が再び Request を呼ぶので取りこぼしにはなりません。
func (g *GearOptimizer) Request() {
	if g.scheduled {
		return
	}
	g.scheduled = true
	g.loop.Post(func() {
		g.scheduled = false
		g.pass()
	})
}

// pass はスロットごとに、インベントリ内の最良品と装備中の品の順位を比べ、
// 厳密に良いときだけ持ち替えます。同順位・劣位の候補では持ち替えません。
func (g *GearOptimizer) pass() {
	inv := g.client.Inventory()
	for _, slot := range domain.EquipmentSlots() {
		table := domain.GearTable(slot)

		candidate, candidateRank := bestOwned(table, inv)
		if candidateRank == domain.WorstRank {
			continue
		}

		currentRank := domain.WorstRank
		if current, ok := g.client.Equipped(slot); ok {
			currentRank = table.Rank(current)
		}
		if candidateRank >= currentRank {
			continue
		}

		if err := g.client.Equip(g.ctx, candidate, slot); err != nil {
			if errors.Is(err, domain.ErrItemGone) {
				// 回復処理などとの競合。次のインベントリ変化で再要求される
				continue
			}
			g.log.Error("equip failed", "slot", slot, "item", candidate, "err", err)
		}
	}
}

// bestOwned はインベントリ内で順位表の最良のアイテムを返します。
// 表に載っているものが1つもなければ WorstRank を返します。
func bestOwned(table domain.PriorityTable, inv []domain.Item) (domain.ItemID, int) {
	best := domain.WorstRank
	var id domain.ItemID
	for _, it := range inv {
		if r := table.Rank(it.ID); r < best {
			best = r
			id = it.ID
		}
	}
	return id, best
}
