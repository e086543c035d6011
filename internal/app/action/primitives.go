package action

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/domain/world"
)

// Move is a no-op when the character already stands on pos.
func (e *Executor) Move(ctx context.Context, pos world.Position) error {
	if e.Snapshot().At(pos) {
		return nil
	}
	_, err := e.Execute(ctx, game.ActionMove, game.MovePayload{X: pos.X, Y: pos.Y})
	return err
}

func (e *Executor) Fight(ctx context.Context) error {
	_, err := e.Execute(ctx, game.ActionFight, nil)
	return err
}

func (e *Executor) Gather(ctx context.Context) error {
	_, err := e.Execute(ctx, game.ActionGathering, nil)
	return err
}

func (e *Executor) Craft(ctx context.Context, code string, quantity int) error {
	return e.itemAction(ctx, game.ActionCrafting, code, quantity)
}

func (e *Executor) Recycle(ctx context.Context, code string, quantity int) error {
	return e.itemAction(ctx, game.ActionRecycling, code, quantity)
}

func (e *Executor) Delete(ctx context.Context, code string, quantity int) error {
	return e.itemAction(ctx, game.ActionDelete, code, quantity)
}

func (e *Executor) Deposit(ctx context.Context, code string, quantity int) error {
	return e.itemAction(ctx, game.ActionBankDeposit, code, quantity)
}

func (e *Executor) Withdraw(ctx context.Context, code string, quantity int) error {
	return e.itemAction(ctx, game.ActionBankWithdraw, code, quantity)
}

func (e *Executor) DepositGold(ctx context.Context, quantity int) error {
	return e.goldAction(ctx, game.ActionBankDepositGold, quantity)
}

func (e *Executor) WithdrawGold(ctx context.Context, quantity int) error {
	return e.goldAction(ctx, game.ActionBankWithdrawGold, quantity)
}

func (e *Executor) Equip(ctx context.Context, code string, slot game.EquipmentSlot) error {
	_, err := e.Execute(ctx, game.ActionEquip, game.EquipPayload{Code: code, Slot: string(slot)})
	return err
}

func (e *Executor) Unequip(ctx context.Context, slot game.EquipmentSlot) error {
	_, err := e.Execute(ctx, game.ActionUnequip, game.EquipPayload{Slot: string(slot)})
	return err
}

func (e *Executor) NewTask(ctx context.Context) error {
	_, err := e.Execute(ctx, game.ActionTaskNew, nil)
	return err
}

func (e *Executor) CompleteTask(ctx context.Context) error {
	_, err := e.Execute(ctx, game.ActionTaskComplete, nil)
	return err
}

func (e *Executor) ExchangeTaskCoins(ctx context.Context) error {
	_, err := e.Execute(ctx, game.ActionTaskExchange, nil)
	return err
}

func (e *Executor) CancelTask(ctx context.Context) error {
	_, err := e.Execute(ctx, game.ActionTaskCancel, nil)
	return err
}

// EquipItem looks the item up, checks it fits the character and equips it
// into the first slot accepting its type.
func (e *Executor) EquipItem(ctx context.Context, code string) error {
	details, err := e.API.Item(ctx, code)
	if err != nil {
		return err
	}
	slot, ok := game.SlotFor(details.Item.Type)
	if !ok {
		return fmt.Errorf("%w: %s is %s", ErrNotEquippable, code, details.Item.Type)
	}
	if lvl := e.Snapshot().Level; details.Item.Level > lvl {
		return fmt.Errorf("%w: %s needs level %d, character is %d", ErrLevelTooLow, code, details.Item.Level, lvl)
	}
	return e.Equip(ctx, code, slot)
}

// Buy purchases quantity units at the current exchange buy price.
func (e *Executor) Buy(ctx context.Context, code string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	details, err := e.API.Item(ctx, code)
	if err != nil {
		return err
	}
	price := details.BuyPrice()
	if price <= 0 {
		e.logger().Warn("no buy price", zap.String("item", code))
		return fmt.Errorf("%w: buy %s", ErrNoMarketPrice, code)
	}
	_, err = e.Execute(ctx, game.ActionGrandExchangeBuy, game.TradePayload{Code: code, Quantity: quantity, Price: price})
	return err
}

// Sell sells quantity units in batches of at most MaxSellBatch, querying
// the sell price before every batch.
func (e *Executor) Sell(ctx context.Context, code string, quantity int) error {
	for _, batch := range SellBatches(quantity) {
		details, err := e.API.Item(ctx, code)
		if err != nil {
			return err
		}
		price := details.SellPrice()
		if price <= 0 {
			e.logger().Warn("no sell price", zap.String("item", code))
			return fmt.Errorf("%w: sell %s", ErrNoMarketPrice, code)
		}
		if _, err := e.Execute(ctx, game.ActionGrandExchangeSell, game.TradePayload{Code: code, Quantity: batch, Price: price}); err != nil {
			return err
		}
	}
	return nil
}

// SellBatches splits quantity into exchange-sized chunks.
func SellBatches(quantity int) []int {
	var out []int
	for quantity > 0 {
		n := min(quantity, game.MaxSellBatch)
		out = append(out, n)
		quantity -= n
	}
	return out
}

func (e *Executor) itemAction(ctx context.Context, action game.ActionType, code string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	_, err := e.Execute(ctx, action, game.ItemPayload{Code: code, Quantity: quantity})
	return err
}

func (e *Executor) goldAction(ctx context.Context, action game.ActionType, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	_, err := e.Execute(ctx, action, game.GoldPayload{Quantity: quantity})
	return err
}
