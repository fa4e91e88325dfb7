package domain

import "math"

// EquipmentSlot は装備スロットの識別子です。
type EquipmentSlot string

const (
	SlotHand    EquipmentSlot = "hand"
	SlotOffHand EquipmentSlot = "off-hand"
	SlotHead    EquipmentSlot = "head"
	SlotTorso   EquipmentSlot = "torso"
	SlotLegs    EquipmentSlot = "legs"
	SlotFeet    EquipmentSlot = "feet"
)

// ItemID はアイテム識別子です。
type ItemID string

// Item はインベントリ内の1アイテムを表します。
type Item struct {
	ID    ItemID
	Count int
}

// PriorityTable は先頭ほど優先されるアイテムの順位表です。
type PriorityTable []ItemID

// WorstRank は順位表に載っていないアイテムのランクです。
// 載っていないアイテムが装備済みの品より優先されることはありません。
const WorstRank = math.MaxInt

// Rank は item の順位を返します。表にない場合は WorstRank を返します。
func (t PriorityTable) Rank(item ItemID) int {
	for i, id := range t {
		if id == item {
			return i
		}
	}
	return WorstRank
}

// equipmentSlots は装備最適化パスでスロットを評価する順序です。
var equipmentSlots = []EquipmentSlot{SlotHand, SlotOffHand, SlotHead, SlotTorso, SlotLegs, SlotFeet}

// EquipmentSlots は装備最適化の対象となるスロットを評価順で返します。
func EquipmentSlots() []EquipmentSlot {
	return equipmentSlots
}

// gearTables はスロットごとの装備優先順位です。起動時に一度だけ構築されます。
var gearTables = map[EquipmentSlot]PriorityTable{
	SlotHand: {
		"netherite_sword", "diamond_sword", "iron_sword",
		"stone_sword", "golden_sword", "wooden_sword",
		"diamond_axe", "iron_axe", "stone_axe", "wooden_axe",
	},
	SlotOffHand: {"shield"},
	SlotHead: {
		"netherite_helmet", "diamond_helmet", "iron_helmet",
		"chainmail_helmet", "golden_helmet", "leather_helmet", "turtle_helmet",
	},
	SlotTorso: {
		"netherite_chestplate", "diamond_chestplate", "iron_chestplate",
		"chainmail_chestplate", "golden_chestplate", "leather_chestplate",
	},
	SlotLegs: {
		"netherite_leggings", "diamond_leggings", "iron_leggings",
		"chainmail_leggings", "golden_leggings", "leather_leggings",
	},
	SlotFeet: {
		"netherite_boots", "diamond_boots", "iron_boots",
		"chainmail_boots", "golden_boots", "leather_boots",
	},
}

// GearTable はスロットの装備優先順位表を返します。
func GearTable(slot EquipmentSlot) PriorityTable {
	return gearTables[slot]
}

// スープ類は即座に回復するため金リンゴ類より常に優先されます。
var soups = PriorityTable{
	"mushroom_stew", "rabbit_stew", "beetroot_soup", "suspicious_stew",
}

var goldenApples = PriorityTable{
	"enchanted_golden_apple", "golden_apple",
}

// Soups はスープ類の回復アイテムを優先順に返します。
func Soups() PriorityTable {
	return soups
}

// GoldenApples は金リンゴ類の回復アイテムを優先順に返します。
func GoldenApples() PriorityTable {
	return goldenApples
}
