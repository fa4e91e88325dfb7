package domain

// EventKind は外部クライアントからの通知の種別です。
type EventKind uint8

const (
	EventJoinedWorld EventKind = iota + 1
	EventKicked
	EventDisconnected
	EventClientError
	EventHealthChanged
	EventPhysicsTick
	EventInventoryChanged
	EventItemPickedUp
	EventDied
	EventRespawned
)

var eventKindNames = map[EventKind]string{
	EventJoinedWorld:      "joined-world",
	EventKicked:           "kicked",
	EventDisconnected:     "disconnected",
	EventClientError:      "error",
	EventHealthChanged:    "health-changed",
	EventPhysicsTick:      "physics-tick",
	EventInventoryChanged: "inventory-changed",
	EventItemPickedUp:     "item-picked-up",
	EventDied:             "died",
	EventRespawned:        "respawned",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event は外部クライアントが push する世界変化・接続状態の通知です。
type Event struct {
	Kind   EventKind
	Reason string // Kicked / ClientError のとき設定される

	// HealthChanged のとき設定される
	OldHealth float64
	NewHealth float64
}
