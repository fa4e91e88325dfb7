package arena

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"golang.org/x/sync/errgroup"

	"skirmish/bot/domain"
	"skirmish/utils"
)

const (
	writeBufferSize = 256
	eventBufferSize = 256
	ackTimeout      = 3 * time.Second

	// サーバが装備要求を「対象アイテムが既に消えた」理由で拒否したときの理由文字列
	reasonItemGone = "item gone"

	watchdogInterval = 5 * time.Second
	readDeadline     = 15 * time.Second
)

// ErrReadTimeout はサーバからの受信が途絶したことを表します。
var ErrReadTimeout = errors.New("no data from server")

// Client は arena サーバへの websocket 接続上で domain.GameClient を実装します。
// 受信した世界スナップショットを保持し、行動要求は応答が返るまで待ちます。
type Client struct {
	identity string
	conn     *websocket.Conn
	log      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	sessionID [16]byte
	seq       uint16
	pending   map[uint16]chan *ActionResult
	position  domain.Vec3
	health    float64
	inWorld   bool
	players   []domain.Player
	inventory []domain.Item
	equipment map[domain.EquipmentSlot]domain.ItemID

	writeCh chan []byte
	events  chan domain.Event

	lastRead atomic.Int64
	closed   atomic.Bool
}

// Dial は arena サーバに接続し、稼働中の GameClient を返します。
// identity は参加時にサーバへ通知されます。
func Dial(ctx context.Context, host, port, identity string) (domain.GameClient, error) {
	url := fmt.Sprintf("ws://%s:%s/ws", host, port)
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	c := newClient(conn, identity)
	go c.run()
	return c, nil
}

func newClient(conn *websocket.Conn, identity string) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		identity:  identity,
		conn:      conn,
		log:       slog.With("bot", identity),
		ctx:       ctx,
		cancel:    cancel,
		pending:   make(map[uint16]chan *ActionResult),
		equipment: make(map[domain.EquipmentSlot]domain.ItemID),
		writeCh:   make(chan []byte, writeBufferSize),
		events:    make(chan domain.Event, eventBufferSize),
	}
	c.lastRead.Store(time.Now().UnixNano())
	return c
}

// run は読み書きループを回し、どちらかが終わったら接続を畳みます。
func (c *Client) run() {
	eg, ctx := errgroup.WithContext(c.ctx)
	eg.Go(func() error {
		return c.readLoop(ctx)
	})
	eg.Go(func() error {
		return c.writeLoop(ctx)
	})
	eg.Go(func() error {
		return c.watchdog(ctx)
	})
	err := eg.Wait()

	// Close 済みでなければ相手側起因の切断。通知してから閉じる
	if c.closed.CompareAndSwap(false, true) {
		if err != nil && c.ctx.Err() == nil {
			c.log.Warn("connection lost", "err", err)
		}
		c.emit(domain.Event{Kind: domain.EventDisconnected})
		c.cancel()
		_ = c.conn.Close(websocket.StatusNormalClosure, "")
	}
	close(c.events)
}

func (c *Client) readLoop(ctx context.Context) error {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return err
		}
		c.lastRead.Store(time.Now().UnixNano())
		c.handleFrame(data)
	}
}

func (c *Client) writeLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case data := <-c.writeCh:
			if err := c.conn.Write(ctx, websocket.MessageBinary, data); err != nil {
				return err
			}
		}
	}
}

// watchdog は受信の途絶を監視し、一定時間無通信なら接続を落とします。
func (c *Client) watchdog(ctx context.Context) error {
	ticker := time.NewTicker(watchdogInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			last := time.Unix(0, c.lastRead.Load())
			if time.Since(last) > readDeadline {
				return fmt.Errorf("%w for %s", ErrReadTimeout, readDeadline)
			}
		}
	}
}

// handleFrame は受信フレームを1つ処理します。壊れたフレームは捨てて継続します。
func (c *Client) handleFrame(data []byte) {
	if len(data) < HeaderSize+PayloadHeaderSize {
		return
	}
	payloadHeader, err := ParsePayloadHeader(data[HeaderSize:])
	if err != nil {
		c.log.Warn("failed to parse payload header", "err", err)
		return
	}
	payload := data[HeaderSize+PayloadHeaderSize:]

	switch payloadHeader.DataType {
	case DataTypeControl:
		c.handleControl(ControlSubType(payloadHeader.SubType), data, payload)
	case DataTypeState:
		c.handleState(StateSubType(payloadHeader.SubType), payload)
	case DataTypeResult:
		c.handleResult(payload)
	case DataTypeEvent:
		c.handleGameEvent(EventSubType(payloadHeader.SubType), payload)
	default:
		c.log.Warn("unknown data type", "dataType", payloadHeader.DataType)
	}
}

func (c *Client) handleControl(subType ControlSubType, frame, payload []byte) {
	switch subType {
	case ControlSubTypeAssign:
		header, err := ParseHeader(frame)
		if err != nil {
			return
		}
		c.mu.Lock()
		c.sessionID = header.SessionID
		c.mu.Unlock()
		c.send(DataTypeControl, uint8(ControlSubTypeJoin), EncodeJoinPayload(c.identity))
	case ControlSubTypePing:
		c.send(DataTypeControl, uint8(ControlSubTypePong), nil)
	case ControlSubTypeKick:
		reason, _ := ParseReasonPayload(payload)
		c.emit(domain.Event{Kind: domain.EventKicked, Reason: reason})
	case ControlSubTypeError:
		reason, _ := ParseReasonPayload(payload)
		c.emit(domain.Event{Kind: domain.EventClientError, Reason: reason})
	}
}

// handleState は世界スナップショットを取り込み、差分を通知イベントに変換します。
func (c *Client) handleState(subType StateSubType, payload []byte) {
	switch subType {
	case StateSubTypeSelf:
		state, err := ParseSelfState(payload)
		if err != nil {
			c.log.Warn("failed to parse self state", "err", err)
			return
		}
		pos := domain.Vec3{X: float64(state.X), Y: float64(state.Y), Z: float64(state.Z)}
		if !utils.FiniteVec(pos) {
			c.log.Warn("non-finite self position, frame dropped")
			return
		}
		c.mu.Lock()
		oldHealth := c.health
		oldInWorld := c.inWorld
		c.position = pos
		c.health = float64(state.Health)
		c.inWorld = state.InWorld
		c.mu.Unlock()

		if !oldInWorld && state.InWorld {
			c.emit(domain.Event{Kind: domain.EventJoinedWorld})
		}
		if oldInWorld && state.InWorld && oldHealth != float64(state.Health) {
			c.emit(domain.Event{
				Kind:      domain.EventHealthChanged,
				OldHealth: oldHealth,
				NewHealth: float64(state.Health),
			})
		}
		if state.InWorld {
			c.emit(domain.Event{Kind: domain.EventPhysicsTick})
		}
	case StateSubTypePlayers:
		state, err := ParsePlayersState(payload)
		if err != nil {
			c.log.Warn("failed to parse players state", "err", err)
			return
		}
		players := make([]domain.Player, 0, len(state.Players))
		for _, p := range state.Players {
			if p.Name == c.identity {
				continue
			}
			pos := domain.Vec3{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
			if !utils.FiniteVec(pos) {
				continue
			}
			players = append(players, domain.Player{Name: p.Name, Position: pos})
		}
		c.mu.Lock()
		c.players = players
		c.mu.Unlock()
	case StateSubTypeInventory:
		state, err := ParseInventoryState(payload)
		if err != nil {
			c.log.Warn("failed to parse inventory state", "err", err)
			return
		}
		items := make([]domain.Item, 0, len(state.Items))
		for _, it := range state.Items {
			items = append(items, domain.Item{ID: domain.ItemID(it.ID), Count: int(it.Count)})
		}
		c.mu.Lock()
		changed := !itemsEqual(c.inventory, items)
		c.inventory = items
		c.mu.Unlock()

		if changed {
			c.emit(domain.Event{Kind: domain.EventInventoryChanged})
		}
	case StateSubTypeEquipment:
		state, err := ParseEquipmentState(payload)
		if err != nil {
			c.log.Warn("failed to parse equipment state", "err", err)
			return
		}
		equipment := make(map[domain.EquipmentSlot]domain.ItemID, len(state.Slots))
		for _, e := range state.Slots {
			if e.Item == "" {
				continue
			}
			equipment[domain.EquipmentSlot(e.Slot)] = domain.ItemID(e.Item)
		}
		c.mu.Lock()
		c.equipment = equipment
		c.mu.Unlock()
	}
}

func (c *Client) handleResult(payload []byte) {
	result, err := ParseActionResult(payload)
	if err != nil {
		c.log.Warn("failed to parse action result", "err", err)
		return
	}
	c.mu.Lock()
	ch, ok := c.pending[result.Seq]
	if ok {
		delete(c.pending, result.Seq)
	}
	c.mu.Unlock()
	if ok {
		ch <- result
	}
}

func (c *Client) handleGameEvent(subType EventSubType, payload []byte) {
	switch subType {
	case EventSubTypeDied:
		c.emit(domain.Event{Kind: domain.EventDied})
	case EventSubTypeRespawned:
		c.emit(domain.Event{Kind: domain.EventRespawned})
	case EventSubTypePickup:
		if item, err := ParsePickupPayload(payload); err == nil {
			c.log.Debug("item picked up", "item", item)
		}
		c.emit(domain.Event{Kind: domain.EventItemPickedUp})
	}
}

// emit はイベントを通知チャネルに積みます。詰まっている場合は落とします。
// 落としても次のスナップショット差分が再び通知を生むため致命的にはなりません。
func (c *Client) emit(ev domain.Event) {
	select {
	case c.events <- ev:
	default:
		c.log.Warn("event channel full, event dropped", "kind", ev.Kind.String())
	}
}

// send は応答を待たないフレームを書き込みキューへ積みます。
func (c *Client) send(dataType DataType, subType uint8, payload []byte) {
	c.mu.Lock()
	c.seq++
	frame := EncodeMessage(c.sessionID, c.seq, dataType, subType, payload)
	c.mu.Unlock()

	select {
	case c.writeCh <- frame:
	case <-c.ctx.Done():
	}
}

// do は行動要求を送り、サーバの受理・拒否応答を待ちます。
// 拒否は理由付きのエラー、"item gone" は domain.ErrItemGone になります。
func (c *Client) do(ctx context.Context, subType ActionSubType, payload []byte) error {
	if c.closed.Load() {
		return domain.ErrNotConnected
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	resultCh := make(chan *ActionResult, 1)
	c.pending[seq] = resultCh
	frame := EncodeMessage(c.sessionID, seq, DataTypeAction, uint8(subType), payload)
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, seq)
		c.mu.Unlock()
	}()

	select {
	case c.writeCh <- frame:
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ctx.Done():
		return domain.ErrNotConnected
	}

	select {
	case result := <-resultCh:
		if !result.Accepted {
			if result.Reason == reasonItemGone {
				return domain.ErrItemGone
			}
			return fmt.Errorf("action rejected: %s", result.Reason)
		}
		return nil
	case <-time.After(ackTimeout):
		return fmt.Errorf("action %d: no result within %s", subType, ackTimeout)
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ctx.Done():
		return domain.ErrNotConnected
	}
}

// Events は domain.GameClient 実装です。
func (c *Client) Events() <-chan domain.Event {
	return c.events
}

// InWorld は domain.GameClient 実装です。
func (c *Client) InWorld() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inWorld
}

// Position は domain.GameClient 実装です。
func (c *Client) Position() domain.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Health は domain.GameClient 実装です。
func (c *Client) Health() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.health
}

// Players は domain.GameClient 実装です。列挙順はサーバのスナップショット順の
// ままで、スナップショット間で安定しています。
func (c *Client) Players() []domain.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	players := make([]domain.Player, len(c.players))
	copy(players, c.players)
	return players
}

// PlayerByName は domain.GameClient 実装です。
func (c *Client) PlayerByName(name string) (domain.Player, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.players {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Player{}, false
}

// Inventory は domain.GameClient 実装です。
func (c *Client) Inventory() []domain.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]domain.Item, len(c.inventory))
	copy(items, c.inventory)
	return items
}

// Equipped は domain.GameClient 実装です。
func (c *Client) Equipped(slot domain.EquipmentSlot) (domain.ItemID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.equipment[slot]
	return item, ok
}

// Attack は domain.GameClient 実装です。
func (c *Client) Attack(ctx context.Context, target string) error {
	return c.do(ctx, ActionSubTypeAttack, EncodeAttackPayload(target))
}

// StopEngagement は domain.GameClient 実装です。
func (c *Client) StopEngagement(ctx context.Context) error {
	return c.do(ctx, ActionSubTypeStop, nil)
}

// Equip は domain.GameClient 実装です。
func (c *Client) Equip(ctx context.Context, item domain.ItemID, slot domain.EquipmentSlot) error {
	return c.do(ctx, ActionSubTypeEquip, EncodeEquipPayload(string(item), string(slot)))
}

// LookAt は domain.GameClient 実装です。
func (c *Client) LookAt(ctx context.Context, pos domain.Vec3) error {
	return c.do(ctx, ActionSubTypeLook, EncodeLookPayload(float32(pos.X), float32(pos.Y), float32(pos.Z)))
}

// SetControl は domain.GameClient 実装です。
func (c *Client) SetControl(ctx context.Context, key domain.ControlKey, active bool) error {
	return c.do(ctx, ActionSubTypeControl, EncodeControlPayload(string(key), active))
}

// BeginItemUse は domain.GameClient 実装です。
func (c *Client) BeginItemUse(ctx context.Context) error {
	return c.do(ctx, ActionSubTypeUseBegin, nil)
}

// EndItemUse は domain.GameClient 実装です。
func (c *Client) EndItemUse(ctx context.Context) error {
	return c.do(ctx, ActionSubTypeUseEnd, nil)
}

// Close は domain.GameClient 実装です。多重呼び出しは無視されます。
func (c *Client) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func itemsEqual(a, b []domain.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
