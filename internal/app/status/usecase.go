package status

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/domain/game"
)

var ErrServerUnavailable = errors.New("game server unavailable")

// UseCase performs the startup status check.
type UseCase struct {
	API    ports.GameAPI
	Logger *zap.Logger
}

func (u UseCase) Execute(ctx context.Context) (game.ServerStatus, error) {
	st, err := u.API.Status(ctx)
	if err != nil {
		var apiErr *game.APIError
		if errors.As(err, &apiErr) {
			return game.ServerStatus{}, fmt.Errorf("%w: %s", ErrServerUnavailable, apiErr.Message)
		}
		return game.ServerStatus{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	log := u.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("server status",
		zap.String("status", st.Status),
		zap.String("version", st.Version),
		zap.Int("characters_online", st.CharactersOnline),
	)
	for _, a := range st.Announcements {
		log.Info("announcement", zap.String("message", a.Message), zap.String("created_at", a.CreatedAt))
	}
	return st, nil
}
