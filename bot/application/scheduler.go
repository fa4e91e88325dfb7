package application

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"skirmish/bot/domain"
)

// MaxScanDistance は索敵の最大半径（ワールド距離単位）です。
const MaxScanDistance = 48.0

// Scheduler は索敵と交戦開始・停止を担当します。検知した候補には人間の反応時間を
// 模した遅延の後に攻撃を予約します。交戦状態を書き換えるのはこのコンポーネント
// だけで、Movement と Healer は Target を読むだけです。
type Scheduler struct {
	ctx    context.Context
	client domain.GameClient
	preset *domain.DifficultyPreset
	loop   *loop
	log    *slog.Logger

	target        string // 交戦中の相手。非交戦なら空
	stopScan      func()
	pendingAttack *loopTimer
	attackGen     uint64 // 予約攻撃の世代。進めることで古い予約を無効化する
}

func newScheduler(ctx context.Context, client domain.GameClient, preset *domain.DifficultyPreset, lp *loop, log *slog.Logger) *Scheduler {
	return &Scheduler{
		ctx:    ctx,
		client: client,
		preset: preset,
		loop:   lp,
		log:    log,
	}
}

// Attach は索敵ティッカーを開始します。
func (s *Scheduler) Attach() {
	s.stopScan = s.loop.Every(s.preset.ScanInterval, s.scan)
}

// Detach は索敵を止め、予約済みの攻撃を取り消します。
func (s *Scheduler) Detach() {
	if s.stopScan != nil {
		s.stopScan()
		s.stopScan = nil
	}
	s.cancelPendingAttack()
}

// Target は現在交戦中の相手の識別子を返します。非交戦なら空文字列です。
func (s *Scheduler) Target() string {
	return s.target
}

// scan は索敵半径内で最も近い候補を選び、攻撃を予約します。候補がいなければ
// 1スキャン以内に交戦を解除します。
func (s *Scheduler) scan() {
	if !s.client.InWorld() {
		return
	}

	name, ok := s.nearestCandidate()
	if !ok {
		if s.preset.MaintainSprint {
			s.setSprint(false)
		}
		s.stopEngagement()
		return
	}

	s.cancelPendingAttack()
	gen := s.attackGen
	s.pendingAttack = s.loop.AfterFunc(s.reactionDelay(), func() {
		s.fireAttack(gen, name)
	})
}

// nearestCandidate は水平距離の二乗が最小のプレイヤーを返します。同距離の候補は
// 列挙順で先のものを維持します。
func (s *Scheduler) nearestCandidate() (string, bool) {
	self := s.client.Position()
	best := MaxScanDistance * MaxScanDistance
	var name string
	found := false
	for _, p := range s.client.Players() {
		if d := self.PlanarDistSq(p.Position); d < best {
			best = d
			name = p.Name
			found = true
		}
	}
	return name, found
}

// reactionDelay は反応遅延の範囲から一様乱数で遅延を選びます。
// 範囲の大小が逆でも正規化して扱います。
func (s *Scheduler) reactionDelay() time.Duration {
	lo, hi := s.preset.ReactionDelay[0], s.preset.ReactionDelay[1]
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return lo
	}
	return lo + time.Duration(rand.N(int64(hi-lo)+1))
}

// cancelPendingAttack は未発火の攻撃予約を取り消します。世代を進めるため、
// 既にキューに積まれた予約も実行されません。
func (s *Scheduler) cancelPendingAttack() {
	s.attackGen++
	if s.pendingAttack != nil {
		s.pendingAttack.Stop()
		s.pendingAttack = nil
	}
}

// fireAttack は予約された攻撃を実行します。予約後に新しいスキャンが走っていれば
// 何もしません。対象は識別子から再解決し、消えていれば黙って中止します。
func (s *Scheduler) fireAttack(gen uint64, name string) {
	if gen != s.attackGen {
		return
	}
	s.pendingAttack = nil

	if _, ok := s.client.PlayerByName(name); !ok {
		return
	}

	if s.preset.MaintainSprint {
		s.setSprint(true)
	}
	if s.target != "" && s.target != name {
		s.stopEngagement()
	}
	if s.target != "" {
		return
	}

	if err := s.client.Attack(s.ctx, name); err != nil {
		s.log.Warn("attack failed", "target", name, "err", err)
		return
	}
	s.target = name
	s.log.Info("engagement started", "target", name)

	// 低難易度では一定時間で自動的に交戦を解除する。
	// その間に新しい交戦が始まっていた場合は何もしない。
	if d := s.preset.AttackDuration; d > 0 {
		s.loop.AfterFunc(d, func() {
			if s.target != name {
				return
			}
			s.stopEngagement()
			s.setSprint(false)
		})
	}
}

func (s *Scheduler) stopEngagement() {
	if s.target == "" {
		return
	}
	if err := s.client.StopEngagement(s.ctx); err != nil {
		s.log.Warn("stop engagement failed", "target", s.target, "err", err)
	}
	s.target = ""
}

func (s *Scheduler) setSprint(active bool) {
	if err := s.client.SetControl(s.ctx, domain.ControlSprint, active); err != nil {
		s.log.Warn("set sprint failed", "active", active, "err", err)
	}
}
