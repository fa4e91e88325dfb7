package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"skirmish/bot/domain"
)

// ServerConfig は接続先サーバのアドレスです。
type ServerConfig struct {
	Host string
	Port string
}

// Config はボットセッション群の生成に必要な設定です。
type Config struct {
	Server   ServerConfig
	Preset   *domain.DifficultyPreset
	BotCount int
}

// ClientFactory は外部ゲームクライアントへの接続を生成します。
type ClientFactory func(ctx context.Context, host, port, identity string) (domain.GameClient, error)

// component はセッションが起動・停止する各コンポーネントの共通インターフェースです。
// Attach と Detach は必ず対で呼ばれます。
type component interface {
	Attach()
	Detach()
}

// BotSession は1体のボットの接続・タイマー・コンポーネントを排他的に所有します。
// セッション同士が状態を共有することはありません。
type BotSession struct {
	identity string
	preset   *domain.DifficultyPreset
	server   ServerConfig
	dial     ClientFactory
	log      *slog.Logger

	client     domain.GameClient
	loop       *loop
	scheduler  *Scheduler
	movement   *Movement
	healer     *Healer
	gear       *GearOptimizer
	components []component
	active     bool
}

// NewBotSession は index 番目のボットセッションを生成します。
// 識別子はセッションごとに生成され、ログの bot 属性として全行に付きます。
func NewBotSession(index int, cfg Config, dial ClientFactory) *BotSession {
	identity := fmt.Sprintf("Bot-%s", uuid.NewString()[:8])
	return &BotSession{
		identity: identity,
		preset:   cfg.Preset,
		server:   cfg.Server,
		dial:     dial,
		log:      slog.With("bot", identity, "index", index),
	}
}

// Identity はこのセッションのボット識別子を返します。
func (s *BotSession) Identity() string {
	return s.identity
}

// Run は接続してイベントループを実行します。切断・キック・ctx キャンセルの
// いずれでも、全タイマーの取り消しと全コンポーネントの停止を済ませてから戻ります。
func (s *BotSession) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	client, err := s.dial(ctx, s.server.Host, s.server.Port, s.identity)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.client = client
	s.log.Info("connected", "host", s.server.Host, "port", s.server.Port)

	s.loop = newLoop()
	s.gear = newGearOptimizer(ctx, client, s.loop, s.log)
	s.scheduler = newScheduler(ctx, client, s.preset, s.loop, s.log)
	s.components = []component{s.scheduler, s.gear}
	if adv := s.preset.Advanced; adv != nil {
		s.movement = newMovement(ctx, client, adv, s.loop, s.log, s.scheduler.Target)
		s.healer = newHealer(ctx, client, adv, s.loop, s.log, s.gear)
		s.components = append(s.components, s.movement, s.healer)
	}
	defer s.teardown()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-s.loop.Tasks():
			task()
		case ev, ok := <-client.Events():
			if !ok {
				s.log.Info("connection closed")
				return nil
			}
			if done := s.handleEvent(ev); done {
				return nil
			}
		}
	}
}

// handleEvent は1つの通知を処理します。セッションを終わらせる通知なら true を返します。
func (s *BotSession) handleEvent(ev domain.Event) (done bool) {
	switch ev.Kind {
	case domain.EventJoinedWorld:
		s.log.Info("joined world", "preset", s.preset.Name)
		s.activate()
	case domain.EventKicked:
		s.log.Warn("kicked", "reason", ev.Reason)
		return true
	case domain.EventDisconnected:
		s.log.Info("disconnected")
		return true
	case domain.EventClientError:
		s.log.Error("client error", "reason", ev.Reason)
	case domain.EventHealthChanged:
		if s.active && s.healer != nil {
			s.healer.onHealthChanged()
		}
	case domain.EventPhysicsTick:
		if s.active && s.movement != nil {
			s.movement.onPhysicsTick()
		}
	case domain.EventInventoryChanged, domain.EventItemPickedUp,
		domain.EventDied, domain.EventRespawned:
		if s.active {
			s.gear.Request()
		}
	}
	return false
}

// activate は入界時に全コンポーネントを起動し、初期装備を最適化します。
func (s *BotSession) activate() {
	if s.active {
		return
	}
	s.active = true
	for _, c := range s.components {
		c.Attach()
	}
	s.gear.Request()
}

// teardown は全コンポーネントを停止し、ループと接続を閉じます。
// 以後このセッションのタイマーやリスナーが発火することはありません。
func (s *BotSession) teardown() {
	for _, c := range s.components {
		c.Detach()
	}
	s.active = false
	s.loop.Shutdown()
	s.client.Close()
}
