package application

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"skirmish/bot/domain"
)

// Movement は交戦中の左右ストレイフ・ジャンプ・照準を担当します。
// 最高難易度のプリセットでのみ有効化されます。交戦状態は読むだけで、
// 書き換えは Scheduler に任せます。
type Movement struct {
	ctx    context.Context
	client domain.GameClient
	adv    *domain.AdvancedConfig
	loop   *loop
	log    *slog.Logger

	// engaged は現在交戦中の相手の識別子を返します（Scheduler.Target）。
	engaged func() string

	strafeLeft bool
	stopStrafe func()
}

func newMovement(ctx context.Context, client domain.GameClient, adv *domain.AdvancedConfig, lp *loop, log *slog.Logger, engaged func() string) *Movement {
	return &Movement{
		ctx:     ctx,
		client:  client,
		adv:     adv,
		loop:    lp,
		log:     log,
		engaged: engaged,
	}
}

// Attach はストレイフティッカーを開始します。
func (m *Movement) Attach() {
	m.stopStrafe = m.loop.Every(m.adv.StrafeInterval, m.strafeTick)
}

// Detach はティッカーを止め、押下中のキーをすべて離します。
func (m *Movement) Detach() {
	if m.stopStrafe != nil {
		m.stopStrafe()
		m.stopStrafe = nil
	}
	m.releaseKeys()
}

// strafeTick はストレイフ方向を毎回反転させ、左右どちらか片方のキーだけを
// 押します。JumpChance の確率でジャンプキーを JumpPulse の間だけ押します。
func (m *Movement) strafeTick() {
	if m.engaged() == "" {
		m.releaseKeys()
		return
	}

	m.strafeLeft = !m.strafeLeft
	m.setControl(domain.ControlLeft, m.strafeLeft)
	m.setControl(domain.ControlRight, !m.strafeLeft)

	if rand.Float64() < m.adv.JumpChance {
		m.setControl(domain.ControlJump, true)
		m.loop.AfterFunc(m.adv.JumpPulse, func() {
			m.setControl(domain.ControlJump, false)
		})
	}
}

// onPhysicsTick は交戦相手の頭部付近へ視線を向け続けます。照準は命中判定を
// 持たないため、失敗は無視して次のtickに任せます。
func (m *Movement) onPhysicsTick() {
	name := m.engaged()
	if name == "" {
		return
	}
	target, ok := m.client.PlayerByName(name)
	if !ok {
		return
	}
	_ = m.client.LookAt(m.ctx, target.Position.OffsetY(m.adv.AimHeightOffset))
}

func (m *Movement) releaseKeys() {
	m.setControl(domain.ControlLeft, false)
	m.setControl(domain.ControlRight, false)
	m.setControl(domain.ControlJump, false)
}

func (m *Movement) setControl(key domain.ControlKey, active bool) {
	if err := m.client.SetControl(m.ctx, key, active); err != nil {
		m.log.Warn("set control failed", "key", key, "active", active, "err", err)
	}
}
