package game

import "time"

// ActionType is the path suffix of /my/{name}/action/{action}.
type ActionType string

const (
	ActionMove              ActionType = "move"
	ActionFight             ActionType = "fight"
	ActionGathering         ActionType = "gathering"
	ActionCrafting          ActionType = "crafting"
	ActionEquip             ActionType = "equip"
	ActionUnequip           ActionType = "unequip"
	ActionRecycling         ActionType = "recycling"
	ActionDelete            ActionType = "delete"
	ActionTaskNew           ActionType = "task/new"
	ActionTaskComplete      ActionType = "task/complete"
	ActionTaskExchange      ActionType = "task/exchange"
	ActionTaskCancel        ActionType = "task/cancel"
	ActionBankDeposit       ActionType = "bank/deposit"
	ActionBankDepositGold   ActionType = "bank/deposit/gold"
	ActionBankWithdraw      ActionType = "bank/withdraw"
	ActionBankWithdrawGold  ActionType = "bank/withdraw/gold"
	ActionGrandExchangeBuy  ActionType = "ge/buy"
	ActionGrandExchangeSell ActionType = "ge/sell"
)

// MaxSellBatch is the largest quantity the exchange accepts in one sell.
const MaxSellBatch = 50

type MovePayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ItemPayload struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

type EquipPayload struct {
	Code string `json:"code,omitempty"`
	Slot string `json:"slot"`
}

type GoldPayload struct {
	Quantity int `json:"quantity"`
}

type TradePayload struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

type Cooldown struct {
	TotalSeconds     int       `json:"total_seconds"`
	RemainingSeconds int       `json:"remaining_seconds"`
	Reason           string    `json:"reason"`
	Expiration       time.Time `json:"expiration"`
}

func (c Cooldown) Duration() time.Duration {
	if c.TotalSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TotalSeconds) * time.Second
}

// ActionResult is the data block of a successful action response.
type ActionResult struct {
	Cooldown Cooldown `json:"cooldown"`
}
