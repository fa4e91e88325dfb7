package arena

import (
	"encoding/binary"
	"errors"
	"math"
	"time"
)

// バイトオーダー: リトルエンディアン
var byteOrder = binary.LittleEndian

const (
	HeaderSize        = 25
	PayloadHeaderSize = 2
)

// Header はメッセージヘッダー (25バイト)
//
//	version    u8       (1)
//	sessionID  [16]byte (16)
//	seq        u16      (2)
//	length     u16      (2)  - ペイロード長
//	timestamp  u32      (4)
type Header struct {
	Version   uint8
	SessionID [16]byte
	Seq       uint16
	Length    uint16
	Timestamp uint32
}

// DataType はメッセージの種別
type DataType uint8

const (
	DataTypeControl DataType = 1 // 接続ライフサイクル
	DataTypeState   DataType = 2 // サーバ→ボットの世界スナップショット
	DataTypeAction  DataType = 3 // ボット→サーバの行動要求
	DataTypeResult  DataType = 4 // 行動要求への応答
	DataTypeEvent   DataType = 5 // サーバ→ボットの単発イベント
)

// ControlSubType はcontrolメッセージのサブタイプ
type ControlSubType uint8

const (
	ControlSubTypeAssign ControlSubType = 1
	ControlSubTypeJoin   ControlSubType = 2
	ControlSubTypePing   ControlSubType = 3
	ControlSubTypePong   ControlSubType = 4
	ControlSubTypeKick   ControlSubType = 5
	ControlSubTypeError  ControlSubType = 6
)

// StateSubType はstateメッセージのサブタイプ
type StateSubType uint8

const (
	StateSubTypeSelf      StateSubType = 1
	StateSubTypePlayers   StateSubType = 2
	StateSubTypeInventory StateSubType = 3
	StateSubTypeEquipment StateSubType = 4
)

// ActionSubType はactionメッセージのサブタイプ
type ActionSubType uint8

const (
	ActionSubTypeAttack   ActionSubType = 1
	ActionSubTypeStop     ActionSubType = 2
	ActionSubTypeEquip    ActionSubType = 3
	ActionSubTypeLook     ActionSubType = 4
	ActionSubTypeControl  ActionSubType = 5
	ActionSubTypeUseBegin ActionSubType = 6
	ActionSubTypeUseEnd   ActionSubType = 7
)

// EventSubType はeventメッセージのサブタイプ
type EventSubType uint8

const (
	EventSubTypeDied      EventSubType = 1
	EventSubTypeRespawned EventSubType = 2
	EventSubTypePickup    EventSubType = 3
)

// PayloadHeader はペイロードヘッダー (2バイト)
//
//	datatype  u8 (1)
//	subtype   u8 (1)
type PayloadHeader struct {
	DataType DataType
	SubType  uint8
}

var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidPayloadSize = errors.New("invalid payload size")
	ErrInvalidString      = errors.New("invalid length-prefixed string")
)

// ParseHeader はバイト列からHeaderをパースする
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, ErrInvalidHeaderSize
	}

	var sessionID [16]byte
	copy(sessionID[:], data[1:17])

	return &Header{
		Version:   data[0],
		SessionID: sessionID,
		Seq:       byteOrder.Uint16(data[17:19]),
		Length:    byteOrder.Uint16(data[19:21]),
		Timestamp: byteOrder.Uint32(data[21:25]),
	}, nil
}

// Encode はHeaderをバイト列にエンコードする
func (h *Header) Encode() []byte {
	data := make([]byte, HeaderSize)
	data[0] = h.Version
	copy(data[1:17], h.SessionID[:])
	byteOrder.PutUint16(data[17:19], h.Seq)
	byteOrder.PutUint16(data[19:21], h.Length)
	byteOrder.PutUint32(data[21:25], h.Timestamp)
	return data
}

// ParsePayloadHeader はバイト列からPayloadHeaderをパースする
func ParsePayloadHeader(data []byte) (*PayloadHeader, error) {
	if len(data) < PayloadHeaderSize {
		return nil, ErrInvalidPayloadSize
	}

	return &PayloadHeader{
		DataType: DataType(data[0]),
		SubType:  data[1],
	}, nil
}

// Encode はPayloadHeaderをバイト列にエンコードする
func (p *PayloadHeader) Encode() []byte {
	data := make([]byte, PayloadHeaderSize)
	data[0] = byte(p.DataType)
	data[1] = p.SubType
	return data
}

// EncodeMessage はヘッダー・ペイロードヘッダー・ペイロードを1フレームに組み立てる
func EncodeMessage(sessionID [16]byte, seq uint16, dataType DataType, subType uint8, payload []byte) []byte {
	header := Header{
		Version:   1,
		SessionID: sessionID,
		Seq:       seq,
		Length:    uint16(PayloadHeaderSize + len(payload)),
		Timestamp: uint32(time.Now().UnixMilli() & 0xFFFFFFFF),
	}
	payloadHeader := PayloadHeader{
		DataType: dataType,
		SubType:  subType,
	}

	data := make([]byte, 0, HeaderSize+PayloadHeaderSize+len(payload))
	data = append(data, header.Encode()...)
	data = append(data, payloadHeader.Encode()...)
	data = append(data, payload...)
	return data
}

// 文字列は u8 長さプレフィックス付きでエンコードする (最大255バイト)
func appendString8(data []byte, s string) []byte {
	if len(s) > 255 {
		s = s[:255]
	}
	data = append(data, uint8(len(s)))
	return append(data, s...)
}

func parseString8(data []byte) (s string, rest []byte, err error) {
	if len(data) < 1 {
		return "", nil, ErrInvalidString
	}
	n := int(data[0])
	if len(data) < 1+n {
		return "", nil, ErrInvalidString
	}
	return string(data[1 : 1+n]), data[1+n:], nil
}

func appendFloat32(data []byte, f float32) []byte {
	var buf [4]byte
	byteOrder.PutUint32(buf[:], math.Float32bits(f))
	return append(data, buf[:]...)
}

func parseFloat32(data []byte) (f float32, rest []byte, err error) {
	if len(data) < 4 {
		return 0, nil, ErrInvalidPayloadSize
	}
	return math.Float32frombits(byteOrder.Uint32(data[:4])), data[4:], nil
}

// SelfState はボット自身の状態 (17バイト)
//
//	x, y, z  float32 (12) - 位置
//	health   float32 (4)  - 体力
//	inWorld  u8      (1)  - スポーン済みなら1
type SelfState struct {
	X, Y, Z float32
	Health  float32
	InWorld bool
}

const SelfStateSize = 17

var ErrInvalidSelfStateSize = errors.New("invalid self state size")

// ParseSelfState はバイト列からSelfStateをパースする
func ParseSelfState(data []byte) (*SelfState, error) {
	if len(data) < SelfStateSize {
		return nil, ErrInvalidSelfStateSize
	}

	return &SelfState{
		X:       math.Float32frombits(byteOrder.Uint32(data[0:4])),
		Y:       math.Float32frombits(byteOrder.Uint32(data[4:8])),
		Z:       math.Float32frombits(byteOrder.Uint32(data[8:12])),
		Health:  math.Float32frombits(byteOrder.Uint32(data[12:16])),
		InWorld: data[16] != 0,
	}, nil
}

// Encode はSelfStateをバイト列にエンコードする
func (s *SelfState) Encode() []byte {
	data := make([]byte, 0, SelfStateSize)
	data = appendFloat32(data, s.X)
	data = appendFloat32(data, s.Y)
	data = appendFloat32(data, s.Z)
	data = appendFloat32(data, s.Health)
	if s.InWorld {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}
	return data
}

// PlayerState は他プレイヤー1人分の状態
//
//	name     str8    - 識別子
//	x, y, z  float32 - 位置
type PlayerState struct {
	Name    string
	X, Y, Z float32
}

// PlayersState は他プレイヤーの一覧。サーバが列挙順を決め、順序は
// スナップショット間で安定している
type PlayersState struct {
	Players []PlayerState
}

var ErrInvalidPlayersSize = errors.New("invalid players payload")

// ParsePlayersState はバイト列からPlayersStateをパースする
func ParsePlayersState(data []byte) (*PlayersState, error) {
	if len(data) < 2 {
		return nil, ErrInvalidPlayersSize
	}
	count := int(byteOrder.Uint16(data[0:2]))
	rest := data[2:]

	players := make([]PlayerState, 0, count)
	for i := 0; i < count; i++ {
		var p PlayerState
		var err error
		p.Name, rest, err = parseString8(rest)
		if err != nil {
			return nil, ErrInvalidPlayersSize
		}
		if p.X, rest, err = parseFloat32(rest); err != nil {
			return nil, ErrInvalidPlayersSize
		}
		if p.Y, rest, err = parseFloat32(rest); err != nil {
			return nil, ErrInvalidPlayersSize
		}
		if p.Z, rest, err = parseFloat32(rest); err != nil {
			return nil, ErrInvalidPlayersSize
		}
		players = append(players, p)
	}

	return &PlayersState{Players: players}, nil
}

// Encode はPlayersStateをバイト列にエンコードする
func (p *PlayersState) Encode() []byte {
	data := make([]byte, 2)
	byteOrder.PutUint16(data[0:2], uint16(len(p.Players)))
	for _, pl := range p.Players {
		data = appendString8(data, pl.Name)
		data = appendFloat32(data, pl.X)
		data = appendFloat32(data, pl.Y)
		data = appendFloat32(data, pl.Z)
	}
	return data
}

// ItemStack はインベントリ内の1スタック
type ItemStack struct {
	ID    string
	Count uint8
}

// InventoryState はインベントリ全体のスナップショット
type InventoryState struct {
	Items []ItemStack
}

var ErrInvalidInventorySize = errors.New("invalid inventory payload")

// ParseInventoryState はバイト列からInventoryStateをパースする
func ParseInventoryState(data []byte) (*InventoryState, error) {
	if len(data) < 2 {
		return nil, ErrInvalidInventorySize
	}
	count := int(byteOrder.Uint16(data[0:2]))
	rest := data[2:]

	items := make([]ItemStack, 0, count)
	for i := 0; i < count; i++ {
		var it ItemStack
		var err error
		it.ID, rest, err = parseString8(rest)
		if err != nil {
			return nil, ErrInvalidInventorySize
		}
		if len(rest) < 1 {
			return nil, ErrInvalidInventorySize
		}
		it.Count = rest[0]
		rest = rest[1:]
		items = append(items, it)
	}

	return &InventoryState{Items: items}, nil
}

// Encode はInventoryStateをバイト列にエンコードする
func (s *InventoryState) Encode() []byte {
	data := make([]byte, 2)
	byteOrder.PutUint16(data[0:2], uint16(len(s.Items)))
	for _, it := range s.Items {
		data = appendString8(data, it.ID)
		data = append(data, it.Count)
	}
	return data
}

// EquippedItem は1スロット分の装備
type EquippedItem struct {
	Slot string
	Item string // 空文字列なら未装備
}

// EquipmentState は装備スロット全体のスナップショット
type EquipmentState struct {
	Slots []EquippedItem
}

var ErrInvalidEquipmentSize = errors.New("invalid equipment payload")

// ParseEquipmentState はバイト列からEquipmentStateをパースする
func ParseEquipmentState(data []byte) (*EquipmentState, error) {
	if len(data) < 1 {
		return nil, ErrInvalidEquipmentSize
	}
	count := int(data[0])
	rest := data[1:]

	slots := make([]EquippedItem, 0, count)
	for i := 0; i < count; i++ {
		var e EquippedItem
		var err error
		e.Slot, rest, err = parseString8(rest)
		if err != nil {
			return nil, ErrInvalidEquipmentSize
		}
		e.Item, rest, err = parseString8(rest)
		if err != nil {
			return nil, ErrInvalidEquipmentSize
		}
		slots = append(slots, e)
	}

	return &EquipmentState{Slots: slots}, nil
}

// Encode はEquipmentStateをバイト列にエンコードする
func (s *EquipmentState) Encode() []byte {
	data := []byte{uint8(len(s.Slots))}
	for _, e := range s.Slots {
		data = appendString8(data, e.Slot)
		data = appendString8(data, e.Item)
	}
	return data
}

// ActionResult は行動要求への応答
//
//	seq      u16  - 対応する要求のシーケンス番号
//	accepted u8   - 受理されたら1
//	reason   str8 - 拒否理由
type ActionResult struct {
	Seq      uint16
	Accepted bool
	Reason   string
}

var ErrInvalidResultSize = errors.New("invalid result payload")

// ParseActionResult はバイト列からActionResultをパースする
func ParseActionResult(data []byte) (*ActionResult, error) {
	if len(data) < 3 {
		return nil, ErrInvalidResultSize
	}
	reason, _, err := parseString8(data[3:])
	if err != nil {
		return nil, ErrInvalidResultSize
	}

	return &ActionResult{
		Seq:      byteOrder.Uint16(data[0:2]),
		Accepted: data[2] != 0,
		Reason:   reason,
	}, nil
}

// Encode はActionResultをバイト列にエンコードする
func (r *ActionResult) Encode() []byte {
	data := make([]byte, 3)
	byteOrder.PutUint16(data[0:2], r.Seq)
	if r.Accepted {
		data[2] = 1
	}
	return appendString8(data, r.Reason)
}

// EncodeJoinPayload は参加要求のペイロード（識別子）をエンコードする
func EncodeJoinPayload(identity string) []byte {
	return appendString8(nil, identity)
}

// ParseReasonPayload はkick/errorメッセージの理由文字列をパースする
func ParseReasonPayload(data []byte) (string, error) {
	s, _, err := parseString8(data)
	return s, err
}

// EncodeReasonPayload はkick/errorメッセージの理由文字列をエンコードする
func EncodeReasonPayload(reason string) []byte {
	return appendString8(nil, reason)
}

// EncodeAttackPayload は攻撃要求のペイロードをエンコードする
func EncodeAttackPayload(target string) []byte {
	return appendString8(nil, target)
}

// EncodeEquipPayload は装備要求のペイロードをエンコードする
func EncodeEquipPayload(item, slot string) []byte {
	data := appendString8(nil, item)
	return appendString8(data, slot)
}

// EncodeLookPayload は視線要求のペイロードをエンコードする
func EncodeLookPayload(x, y, z float32) []byte {
	data := appendFloat32(nil, x)
	data = appendFloat32(data, y)
	return appendFloat32(data, z)
}

// EncodeControlPayload は移動キー要求のペイロードをエンコードする
func EncodeControlPayload(key string, active bool) []byte {
	data := appendString8(nil, key)
	if active {
		return append(data, 1)
	}
	return append(data, 0)
}

// ParsePickupPayload は拾得イベントのアイテム識別子をパースする
func ParsePickupPayload(data []byte) (string, error) {
	s, _, err := parseString8(data)
	return s, err
}
