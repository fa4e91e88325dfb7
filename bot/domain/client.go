package domain

import (
	"context"
	"errors"
)

//go:generate go tool mockgen -destination=./mocks/client_mock.go -package=mocks . GameClient

var (
	// ErrNotConnected は接続が既に閉じられているときに返されるエラーです。
	ErrNotConnected = errors.New("game client is not connected")
	// ErrItemGone は装備しようとしたアイテムが既にインベントリから消えていたときに
	// 返されるエラーです。回復処理などとの競合で起こる良性の失敗です。
	ErrItemGone = errors.New("item is no longer in inventory")
)

// ControlKey は移動キーの識別子です。
type ControlKey string

const (
	ControlForward ControlKey = "forward"
	ControlLeft    ControlKey = "left"
	ControlRight   ControlKey = "right"
	ControlJump    ControlKey = "jump"
	ControlSprint  ControlKey = "sprint"
)

// Player はワールド内の他プレイヤーを表します。
type Player struct {
	Name     string
	Position Vec3
}

// GameClient は外部ゲームクライアントが提供する参照・操作面です。
// 1つの実装インスタンスは1接続を表し、1セッションが排他的に所有します。
type GameClient interface {
	// Events は接続ライフサイクルと世界変化の通知チャネルを返します。
	// 接続が終了するとチャネルは close されます。
	Events() <-chan Event

	// InWorld はボットがワールドにスポーン済みかを返します。
	InWorld() bool
	// Position はボット自身の現在位置を返します。
	Position() Vec3
	// Health はボット自身の現在体力を返します。
	Health() float64
	// Players は自分以外の既知プレイヤーを列挙します。列挙順は
	// スナップショット間で安定しています。
	Players() []Player
	// PlayerByName は識別子からプレイヤーを再解決します。
	PlayerByName(name string) (Player, bool)
	// Inventory は現在のインベントリ内容を返します。
	Inventory() []Item
	// Equipped はスロットに装備中のアイテムを返します。
	Equipped(slot EquipmentSlot) (ItemID, bool)

	// Attack は対象への攻撃（交戦開始）を要求します。
	Attack(ctx context.Context, target string) error
	// StopEngagement は現在の交戦を停止します。
	StopEngagement(ctx context.Context) error
	// Equip はアイテムをスロットに装備します。
	Equip(ctx context.Context, item ItemID, slot EquipmentSlot) error
	// LookAt は視線を指定位置へ向けます。
	LookAt(ctx context.Context, pos Vec3) error
	// SetControl は移動キーの押下状態を設定します。
	SetControl(ctx context.Context, key ControlKey, active bool) error
	// BeginItemUse は手に持ったアイテムの使用を開始します。
	BeginItemUse(ctx context.Context) error
	// EndItemUse はアイテムの使用を終了します。
	EndItemUse(ctx context.Context) error

	// Close は接続を閉じます。多重呼び出しは無視されます。
	Close()
}
