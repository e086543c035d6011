package game

import (
	"encoding/json"
	"time"

	"artifactsbot/internal/domain/world"
)

type Skill string

const (
	SkillMining          Skill = "mining"
	SkillWoodcutting     Skill = "woodcutting"
	SkillFishing         Skill = "fishing"
	SkillWeaponcrafting  Skill = "weaponcrafting"
	SkillGearcrafting    Skill = "gearcrafting"
	SkillJewelrycrafting Skill = "jewelrycrafting"
	SkillCooking         Skill = "cooking"
)

func Skills() []Skill {
	return []Skill{
		SkillMining,
		SkillWoodcutting,
		SkillFishing,
		SkillWeaponcrafting,
		SkillGearcrafting,
		SkillJewelrycrafting,
		SkillCooking,
	}
}

type TaskType string

const (
	TaskMonsters  TaskType = "monsters"
	TaskResources TaskType = "resources"
	TaskCrafts    TaskType = "crafts"
)

type InventorySlot struct {
	Slot     int    `json:"slot"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// Character is the snapshot of one character as returned by the server.
type Character struct {
	Name  string `json:"name"`
	Skin  string `json:"skin,omitempty"`
	Level int    `json:"level"`
	Gold  int    `json:"gold"`
	X     int    `json:"x"`
	Y     int    `json:"y"`

	MiningLevel          int `json:"mining_level"`
	WoodcuttingLevel     int `json:"woodcutting_level"`
	FishingLevel         int `json:"fishing_level"`
	WeaponcraftingLevel  int `json:"weaponcrafting_level"`
	GearcraftingLevel    int `json:"gearcrafting_level"`
	JewelrycraftingLevel int `json:"jewelrycrafting_level"`
	CookingLevel         int `json:"cooking_level"`

	Task         string   `json:"task"`
	TaskType     TaskType `json:"task_type"`
	TaskProgress int      `json:"task_progress"`
	TaskTotal    int      `json:"task_total"`

	InventoryMaxItems int             `json:"inventory_max_items,omitempty"`
	Inventory         []InventorySlot `json:"inventory"`

	WeaponSlot string `json:"weapon_slot,omitempty"`
	ShieldSlot string `json:"shield_slot,omitempty"`
	HelmetSlot string `json:"helmet_slot,omitempty"`
	BodySlot   string `json:"body_armor_slot,omitempty"`
	LegSlot    string `json:"leg_armor_slot,omitempty"`
	BootsSlot  string `json:"boots_slot,omitempty"`
	Ring1Slot  string `json:"ring1_slot,omitempty"`
	Ring2Slot  string `json:"ring2_slot,omitempty"`
	AmuletSlot string `json:"amulet_slot,omitempty"`

	CooldownExpiration time.Time `json:"cooldown_expiration"`
}

// UnmarshalJSON clamps negative quantities and gold to zero.
func (c *Character) UnmarshalJSON(b []byte) error {
	type raw Character
	var r raw
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	*c = Character(r)
	if c.Gold < 0 {
		c.Gold = 0
	}
	for i := range c.Inventory {
		if c.Inventory[i].Quantity < 0 {
			c.Inventory[i].Quantity = 0
		}
	}
	return nil
}

func (c Character) Position() world.Position {
	return world.Position{X: c.X, Y: c.Y}
}

func (c Character) At(pos world.Position) bool {
	return c.X == pos.X && c.Y == pos.Y
}

func (c Character) Quantity(code string) int {
	if code == "" {
		return 0
	}
	for _, slot := range c.Inventory {
		if slot.Code == code {
			return slot.Quantity
		}
	}
	return 0
}

// Items lists the non-empty inventory slots in server order.
func (c Character) Items() []InventorySlot {
	out := make([]InventorySlot, 0, len(c.Inventory))
	for _, slot := range c.Inventory {
		if slot.Code == "" || slot.Quantity <= 0 {
			continue
		}
		out = append(out, slot)
	}
	return out
}

func (c Character) HasTask() bool {
	return c.Task != ""
}

func (c Character) TaskDone() bool {
	return c.HasTask() && c.TaskProgress >= c.TaskTotal
}

func (c Character) SkillLevel(skill Skill) int {
	switch skill {
	case SkillMining:
		return c.MiningLevel
	case SkillWoodcutting:
		return c.WoodcuttingLevel
	case SkillFishing:
		return c.FishingLevel
	case SkillWeaponcrafting:
		return c.WeaponcraftingLevel
	case SkillGearcrafting:
		return c.GearcraftingLevel
	case SkillJewelrycrafting:
		return c.JewelrycraftingLevel
	case SkillCooking:
		return c.CookingLevel
	default:
		return 0
	}
}

// Clone returns a copy that shares no slices with c.
func (c Character) Clone() Character {
	out := c
	if c.Inventory != nil {
		out.Inventory = make([]InventorySlot, len(c.Inventory))
		copy(out.Inventory, c.Inventory)
	}
	return out
}

type LogEntry struct {
	Character   string `json:"character"`
	Type        string `json:"type"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}
