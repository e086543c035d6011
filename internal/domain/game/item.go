package game

type ItemType string

const (
	ItemConsumable ItemType = "consumable"
	ItemBodyArmor  ItemType = "body_armor"
	ItemWeapon     ItemType = "weapon"
	ItemResource   ItemType = "resource"
	ItemLegArmor   ItemType = "leg_armor"
	ItemHelmet     ItemType = "helmet"
	ItemBoots      ItemType = "boots"
	ItemShield     ItemType = "shield"
	ItemAmulet     ItemType = "amulet"
	ItemRing       ItemType = "ring"
)

type EquipmentSlot string

const (
	SlotWeapon      EquipmentSlot = "weapon"
	SlotShield      EquipmentSlot = "shield"
	SlotHelmet      EquipmentSlot = "helmet"
	SlotBodyArmor   EquipmentSlot = "body_armor"
	SlotLegArmor    EquipmentSlot = "leg_armor"
	SlotBoots       EquipmentSlot = "boots"
	SlotRing1       EquipmentSlot = "ring1"
	SlotRing2       EquipmentSlot = "ring2"
	SlotAmulet      EquipmentSlot = "amulet"
	SlotArtifact1   EquipmentSlot = "artifact1"
	SlotArtifact2   EquipmentSlot = "artifact2"
	SlotArtifact3   EquipmentSlot = "artifact3"
	SlotConsumable1 EquipmentSlot = "consumable1"
	SlotConsumable2 EquipmentSlot = "consumable2"
)

var slotByItemType = map[ItemType]EquipmentSlot{
	ItemConsumable: SlotConsumable1,
	ItemBodyArmor:  SlotBodyArmor,
	ItemWeapon:     SlotWeapon,
	ItemLegArmor:   SlotLegArmor,
	ItemHelmet:     SlotHelmet,
	ItemBoots:      SlotBoots,
	ItemShield:     SlotShield,
	ItemAmulet:     SlotAmulet,
	ItemRing:       SlotRing1,
}

// SlotFor returns the first equipment slot that accepts the item type.
func SlotFor(t ItemType) (EquipmentSlot, bool) {
	slot, ok := slotByItemType[t]
	return slot, ok
}

type Market struct {
	Code      string `json:"code"`
	Stock     int    `json:"stock"`
	SellPrice int    `json:"sell_price"`
	BuyPrice  int    `json:"buy_price"`
}

type Item struct {
	Name    string   `json:"name"`
	Code    string   `json:"code"`
	Level   int      `json:"level"`
	Type    ItemType `json:"type"`
	Subtype string   `json:"subtype"`
}

// ItemDetails is the payload of GET /items/{code}.
type ItemDetails struct {
	Item Item    `json:"item"`
	GE   *Market `json:"ge"`
}

func (d ItemDetails) BuyPrice() int {
	if d.GE == nil {
		return 0
	}
	return d.GE.BuyPrice
}

func (d ItemDetails) SellPrice() int {
	if d.GE == nil {
		return 0
	}
	return d.GE.SellPrice
}

type Drop struct {
	Code        string `json:"code"`
	Rate        int    `json:"rate"`
	MinQuantity int    `json:"min_quantity"`
	MaxQuantity int    `json:"max_quantity"`
}

// Source is a resource node or monster entry from /resources or /monsters.
type Source struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Skill string `json:"skill,omitempty"`
	Level int    `json:"level"`
	Drops []Drop `json:"drops"`
}

type SourceKind string

const (
	SourceResource SourceKind = "resource"
	SourceMonster  SourceKind = "monster"
)

type BankItem struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

type Announcement struct {
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type ServerStatus struct {
	Status           string         `json:"status"`
	Version          string         `json:"version"`
	CharactersOnline int            `json:"characters_online"`
	Announcements    []Announcement `json:"announcements"`
}
