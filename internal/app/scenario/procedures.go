package scenario

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/domain/world"
)

// gather brings the inventory count of item up to quantity. Nothing is
// sent when the character already holds enough.
func (l *Library) gather(ctx context.Context, item string, kind game.SourceKind, quantity int) error {
	enough := func(c game.Character) bool { return c.Quantity(item) >= quantity }
	if enough(l.actions.Snapshot()) {
		return nil
	}
	loc, found, err := l.finder.FindLocationForDrop(ctx, kind, item)
	if err != nil {
		return err
	}
	if !found {
		l.log.Warn("gather skipped, no location", zap.String("item", item))
		return nil
	}
	if ok, err := l.moveTo(ctx, loc.Position()); !ok {
		return err
	}
	act := l.actions.Gather
	if kind == game.SourceMonster {
		act = l.actions.Fight
	}
	return l.loop(ctx, GatherName(item), enough, act)
}

func (l *Library) craft(ctx context.Context, r Recipe, p Params) error {
	quantity := p.Quantity
	if quantity <= 0 {
		return nil
	}
	for _, ing := range r.Ingredients {
		if err := l.call(ctx, ing.Scenario, Params{Quantity: ing.Multiple * quantity}); err != nil {
			return err
		}
	}
	pos, ok := world.WorkshopFor(string(r.Skill))
	if !ok {
		l.log.Warn("craft skipped, no workshop", zap.String("skill", string(r.Skill)))
		return nil
	}
	if ok, err := l.moveTo(ctx, pos); !ok {
		return err
	}
	for _, code := range append(append([]string(nil), r.Intermediates...), r.Item) {
		if ok, err := l.try("craft "+code, l.actions.Craft(ctx, code, quantity)); !ok {
			return err
		}
	}
	if p.Sell {
		return l.sell(ctx, r.Item, quantity)
	}
	return nil
}

func (l *Library) sell(ctx context.Context, item string, quantity int) error {
	if quantity <= 0 {
		return nil
	}
	if item == "" {
		l.log.Warn("sell skipped, no item")
		return nil
	}
	ge, found, err := l.finder.FindLocationForContentType(ctx, world.ContentGrandExchange)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if ok, err := l.moveTo(ctx, ge.Position()); !ok {
		return err
	}
	_, err = l.try("sell "+item, l.actions.Sell(ctx, item, quantity))
	return err
}

// quest runs one task from the tasks master: accept a task when none is
// held, fight the target until done and hand it in.
func (l *Library) quest(ctx context.Context) error {
	master, found, err := l.finder.FindLocationForContentType(ctx, world.ContentTasksMaster)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if !l.actions.Snapshot().HasTask() {
		if ok, err := l.moveTo(ctx, master.Position()); !ok {
			return err
		}
		if ok, err := l.try("task/new", l.actions.NewTask(ctx)); !ok {
			return err
		}
	}

	c := l.actions.Snapshot()
	if c.TaskType != game.TaskMonsters {
		return fmt.Errorf("%w: %s (%s)", ErrUnsupportedTask, c.TaskType, c.Task)
	}
	target, found, err := l.finder.FindLocationForContent(ctx, c.Task)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if ok, err := l.moveTo(ctx, target.Position()); !ok {
		return err
	}
	if err := l.loop(ctx, "fight "+c.Task, game.Character.TaskDone, l.actions.Fight); err != nil {
		return err
	}
	if !l.actions.Snapshot().TaskDone() {
		return nil
	}
	if ok, err := l.moveTo(ctx, master.Position()); !ok {
		return err
	}
	_, err = l.try("task/complete", l.actions.CompleteTask(ctx))
	return err
}

// depositAll moves the whole inventory and all gold into the bank.
func (l *Library) depositAll(ctx context.Context) error {
	bank, found, err := l.finder.FindLocationForContentType(ctx, world.ContentBank)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if ok, err := l.moveTo(ctx, bank.Position()); !ok {
		return err
	}
	c := l.actions.Snapshot()
	for _, slot := range c.Items() {
		if _, err := l.try("deposit "+slot.Code, l.actions.Deposit(ctx, slot.Code, slot.Quantity)); err != nil {
			return err
		}
	}
	if c.Gold > 0 {
		if _, err := l.try("deposit gold", l.actions.DepositGold(ctx, c.Gold)); err != nil {
			return err
		}
	}
	return nil
}
