package locator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/domain/world"
)

// Locator resolves drop codes, content codes and content types to map
// locations. Misses are reported through found=false, never as errors.
type Locator struct {
	API    ports.GameAPI
	Logger *zap.Logger
}

// FindLocationForDrop finds a tile holding a resource or monster that drops code.
func (l Locator) FindLocationForDrop(ctx context.Context, kind game.SourceKind, drop string) (world.Location, bool, error) {
	var (
		sources []game.Source
		err     error
	)
	switch kind {
	case game.SourceResource:
		sources, err = l.API.Resources(ctx, drop)
	case game.SourceMonster:
		sources, err = l.API.Monsters(ctx, drop)
	default:
		return world.Location{}, false, fmt.Errorf("unknown source kind %q", kind)
	}
	if err != nil {
		return world.Location{}, false, l.miss(err, zap.String("kind", string(kind)), zap.String("drop", drop))
	}
	if len(sources) == 0 {
		l.logger().Info("no source drops item", zap.String("kind", string(kind)), zap.String("drop", drop))
		return world.Location{}, false, nil
	}
	return l.FindLocationForContent(ctx, sources[0].Code)
}

// FindDropSource checks the resource registry first, then monsters.
func (l Locator) FindDropSource(ctx context.Context, drop string) (world.Location, game.SourceKind, bool, error) {
	for _, kind := range []game.SourceKind{game.SourceResource, game.SourceMonster} {
		loc, found, err := l.FindLocationForDrop(ctx, kind, drop)
		if err != nil {
			return world.Location{}, "", false, err
		}
		if found {
			return loc, kind, true, nil
		}
	}
	return world.Location{}, "", false, nil
}

func (l Locator) FindLocationForContent(ctx context.Context, code string) (world.Location, bool, error) {
	return l.first(ctx, ports.MapFilter{ContentCode: code})
}

// FindLocationForContentType is used for singletons such as the bank,
// the grand exchange and the tasks master.
func (l Locator) FindLocationForContentType(ctx context.Context, contentType world.ContentType) (world.Location, bool, error) {
	return l.first(ctx, ports.MapFilter{ContentType: contentType})
}

func (l Locator) first(ctx context.Context, filter ports.MapFilter) (world.Location, bool, error) {
	locs, err := l.API.Maps(ctx, filter)
	if err != nil {
		return world.Location{}, false, l.miss(err,
			zap.String("content_type", string(filter.ContentType)),
			zap.String("content_code", filter.ContentCode),
		)
	}
	if len(locs) == 0 {
		l.logger().Info("location not found",
			zap.String("content_type", string(filter.ContentType)),
			zap.String("content_code", filter.ContentCode),
		)
		return world.Location{}, false, nil
	}
	return locs[0], true, nil
}

// miss logs a server-side lookup error and swallows it so the caller sees a
// plain miss. Transport and context errors are returned as is.
func (l Locator) miss(err error, fields ...zap.Field) error {
	var apiErr *game.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	l.logger().Warn("lookup failed", append(fields, zap.Error(err))...)
	return nil
}

func (l Locator) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
