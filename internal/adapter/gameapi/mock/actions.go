package mock

import (
	"context"
	"time"

	"artifactsbot/internal/domain/game"
)

const tasksCoin = "tasks_coin"

func (g *Game) Action(_ context.Context, name string, action game.ActionType, payload any) (game.ActionResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls = append(g.Calls, Call{Character: name, Action: action, Payload: payload})

	if apiErr, ok := g.Fail[action]; ok {
		return game.ActionResult{}, apiErr
	}
	c, ok := g.Characters[name]
	if !ok {
		return game.ActionResult{}, &game.APIError{Status: 498, Message: "Character not found."}
	}
	if err := g.apply(c, action, payload); err != nil {
		return game.ActionResult{}, err
	}
	seconds := g.Cooldown[action]
	return game.ActionResult{Cooldown: game.Cooldown{
		TotalSeconds:     seconds,
		RemainingSeconds: seconds,
		Reason:           string(action),
		Expiration:       time.Now().Add(time.Duration(seconds) * time.Second),
	}}, nil
}

func (g *Game) apply(c *game.Character, action game.ActionType, payload any) error {
	switch action {
	case game.ActionMove:
		p, _ := payload.(game.MovePayload)
		if c.X == p.X && c.Y == p.Y {
			return &game.APIError{Status: 490, Message: "Character already at destination."}
		}
		c.X, c.Y = p.X, p.Y
	case game.ActionGathering:
		src, ok := g.sourceHere(c, g.ResourceNodes)
		if !ok {
			return &game.APIError{Status: 598, Message: "Resource not found on this map."}
		}
		addItem(c, src.Drops[0].Code, 1)
	case game.ActionFight:
		src, ok := g.sourceHere(c, g.MonsterNodes)
		if !ok {
			return &game.APIError{Status: 598, Message: "Monster not found on this map."}
		}
		addItem(c, src.Drops[0].Code, 1)
		if c.TaskType == game.TaskMonsters && c.Task == src.Code && c.TaskProgress < c.TaskTotal {
			c.TaskProgress++
		}
	case game.ActionCrafting:
		p, _ := payload.(game.ItemPayload)
		for _, ing := range g.Recipes[p.Code] {
			if c.Quantity(ing.Code) < ing.Quantity*p.Quantity {
				return &game.APIError{Status: 478, Message: "Missing item or insufficient quantity."}
			}
		}
		for _, ing := range g.Recipes[p.Code] {
			removeItem(c, ing.Code, ing.Quantity*p.Quantity)
		}
		addItem(c, p.Code, p.Quantity)
	case game.ActionEquip:
		p, _ := payload.(game.EquipPayload)
		if !removeItem(c, p.Code, 1) {
			return &game.APIError{Status: 478, Message: "Missing item or insufficient quantity."}
		}
		setSlot(c, game.EquipmentSlot(p.Slot), p.Code)
	case game.ActionUnequip:
		p, _ := payload.(game.EquipPayload)
		if code := setSlot(c, game.EquipmentSlot(p.Slot), ""); code != "" {
			addItem(c, code, 1)
		}
	case game.ActionRecycling, game.ActionDelete:
		p, _ := payload.(game.ItemPayload)
		if !removeItem(c, p.Code, p.Quantity) {
			return &game.APIError{Status: 478, Message: "Missing item or insufficient quantity."}
		}
	case game.ActionTaskNew:
		if c.Task != "" {
			return &game.APIError{Status: 486, Message: "Character already has a task."}
		}
		c.Task, c.TaskType, c.TaskProgress, c.TaskTotal = g.NextTask.Code, g.NextTask.Type, 0, g.NextTask.Total
	case game.ActionTaskComplete:
		if c.Task == "" || c.TaskProgress < c.TaskTotal {
			return &game.APIError{Status: 488, Message: "Character has not completed the task."}
		}
		c.Task, c.TaskType, c.TaskProgress, c.TaskTotal = "", "", 0, 0
		addItem(c, tasksCoin, 1)
	case game.ActionTaskCancel:
		c.Task, c.TaskType, c.TaskProgress, c.TaskTotal = "", "", 0, 0
	case game.ActionTaskExchange:
		if !removeItem(c, tasksCoin, 3) {
			return &game.APIError{Status: 478, Message: "Missing item or insufficient quantity."}
		}
	case game.ActionBankDeposit:
		p, _ := payload.(game.ItemPayload)
		if !removeItem(c, p.Code, p.Quantity) {
			return &game.APIError{Status: 478, Message: "Missing item or insufficient quantity."}
		}
		g.Bank[p.Code] += p.Quantity
	case game.ActionBankWithdraw:
		p, _ := payload.(game.ItemPayload)
		if g.Bank[p.Code] < p.Quantity {
			return &game.APIError{Status: 404, Message: "Item not found."}
		}
		g.Bank[p.Code] -= p.Quantity
		if g.Bank[p.Code] == 0 {
			delete(g.Bank, p.Code)
		}
		addItem(c, p.Code, p.Quantity)
	case game.ActionBankDepositGold:
		p, _ := payload.(game.GoldPayload)
		if c.Gold < p.Quantity {
			return &game.APIError{Status: 492, Message: "Insufficient gold."}
		}
		c.Gold -= p.Quantity
		g.BankGoldQt += p.Quantity
	case game.ActionBankWithdrawGold:
		p, _ := payload.(game.GoldPayload)
		if g.BankGoldQt < p.Quantity {
			return &game.APIError{Status: 460, Message: "Insufficient gold in bank."}
		}
		g.BankGoldQt -= p.Quantity
		c.Gold += p.Quantity
	case game.ActionGrandExchangeSell:
		p, _ := payload.(game.TradePayload)
		if !removeItem(c, p.Code, p.Quantity) {
			return &game.APIError{Status: 478, Message: "Missing item or insufficient quantity."}
		}
		c.Gold += p.Price * p.Quantity
	case game.ActionGrandExchangeBuy:
		p, _ := payload.(game.TradePayload)
		if c.Gold < p.Price*p.Quantity {
			return &game.APIError{Status: 492, Message: "Insufficient gold."}
		}
		c.Gold -= p.Price * p.Quantity
		addItem(c, p.Code, p.Quantity)
	}
	return nil
}

func (g *Game) sourceHere(c *game.Character, sources []game.Source) (game.Source, bool) {
	for _, loc := range g.Locations {
		if loc.X != c.X || loc.Y != c.Y || loc.Content == nil {
			continue
		}
		for _, s := range sources {
			if s.Code == loc.Content.Code && len(s.Drops) > 0 {
				return s, true
			}
		}
	}
	return game.Source{}, false
}

func addItem(c *game.Character, code string, qty int) {
	if qty <= 0 {
		return
	}
	for i := range c.Inventory {
		if c.Inventory[i].Code == code {
			c.Inventory[i].Quantity += qty
			return
		}
	}
	c.Inventory = append(c.Inventory, game.InventorySlot{Slot: len(c.Inventory) + 1, Code: code, Quantity: qty})
}

func removeItem(c *game.Character, code string, qty int) bool {
	for i := range c.Inventory {
		if c.Inventory[i].Code != code {
			continue
		}
		if c.Inventory[i].Quantity < qty {
			return false
		}
		c.Inventory[i].Quantity -= qty
		if c.Inventory[i].Quantity == 0 {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
		}
		return true
	}
	return false
}

func setSlot(c *game.Character, slot game.EquipmentSlot, code string) string {
	var target *string
	switch slot {
	case game.SlotWeapon:
		target = &c.WeaponSlot
	case game.SlotShield:
		target = &c.ShieldSlot
	case game.SlotHelmet:
		target = &c.HelmetSlot
	case game.SlotBodyArmor:
		target = &c.BodySlot
	case game.SlotLegArmor:
		target = &c.LegSlot
	case game.SlotBoots:
		target = &c.BootsSlot
	case game.SlotRing1:
		target = &c.Ring1Slot
	case game.SlotRing2:
		target = &c.Ring2Slot
	case game.SlotAmulet:
		target = &c.AmuletSlot
	default:
		return ""
	}
	prev := *target
	*target = code
	return prev
}
