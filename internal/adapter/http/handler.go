package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/app/scenario"
	"artifactsbot/internal/domain/game"
)

const defaultJournalLimit = 50

var (
	ErrMissingCharacter = errors.New("missing character query parameter")
	ErrUnknownCharacter = errors.New("character has no session")
)

type characterSource interface {
	Snapshots() []game.Character
	Eligible(name string) ([]scenario.Listing, bool)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

// Handler serves read-only operational views of a running bot.
type Handler struct {
	Characters characterSource
	Journal    ports.ActionJournal
	KPI        kpiSnapshotProvider
	Metrics    prometheus.Gatherer
}

func NewServer(addr string, h Handler) *server.Hertz {
	s := server.Default(server.WithHostPorts(addr))
	s.Use(corsMiddleware())
	h.RegisterRoutes(s)
	return s
}

func (h Handler) RegisterRoutes(r route.IRoutes) {
	r.GET("/healthz", h.healthz)
	r.GET("/ops/kpi", h.kpi)
	r.GET("/ops/characters", h.characters)
	r.GET("/ops/journal", h.journal)
	r.GET("/ops/scenarios", h.scenarios)
	if h.Metrics != nil {
		r.GET("/metrics", adaptor.HertzHandler(promhttp.HandlerFor(h.Metrics, promhttp.HandlerOpts{})))
	}
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

type characterView struct {
	Name         string               `json:"name"`
	Level        int                  `json:"level"`
	Gold         int                  `json:"gold"`
	X            int                  `json:"x"`
	Y            int                  `json:"y"`
	Skills       map[string]int       `json:"skills"`
	Task         string               `json:"task,omitempty"`
	TaskType     string               `json:"task_type,omitempty"`
	TaskProgress int                  `json:"task_progress"`
	TaskTotal    int                  `json:"task_total"`
	Inventory    []game.InventorySlot `json:"inventory"`
}

func toCharacterView(c game.Character) characterView {
	skills := make(map[string]int, len(game.Skills()))
	for _, s := range game.Skills() {
		skills[string(s)] = c.SkillLevel(s)
	}
	return characterView{
		Name:         c.Name,
		Level:        c.Level,
		Gold:         c.Gold,
		X:            c.X,
		Y:            c.Y,
		Skills:       skills,
		Task:         c.Task,
		TaskType:     string(c.TaskType),
		TaskProgress: c.TaskProgress,
		TaskTotal:    c.TaskTotal,
		Inventory:    c.Items(),
	}
}

func (h Handler) characters(_ context.Context, ctx *app.RequestContext) {
	if h.Characters == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "character source not configured")
		return
	}
	snaps := h.Characters.Snapshots()
	out := make([]characterView, 0, len(snaps))
	for _, c := range snaps {
		out = append(out, toCharacterView(c))
	}
	ctx.JSON(consts.StatusOK, map[string]any{"characters": out})
}

type journalEntry struct {
	RunID           string          `json:"run_id,omitempty"`
	Action          string          `json:"action"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	Outcome         string          `json:"outcome"`
	CooldownSeconds int             `json:"cooldown_seconds"`
	Reason          string          `json:"reason,omitempty"`
	ErrorCode       int             `json:"error_code,omitempty"`
	ErrorMessage    string          `json:"error_message,omitempty"`
	ExecutedAt      time.Time       `json:"executed_at"`
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	if h.Journal == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "journal not configured")
		return
	}
	character := strings.TrimSpace(string(ctx.Query("character")))
	if character == "" {
		writeError(ctx, ErrMissingCharacter)
		return
	}
	limit, err := strconv.Atoi(string(ctx.Query("limit")))
	if err != nil || limit <= 0 {
		limit = defaultJournalLimit
	}
	recs, err := h.Journal.ListByCharacter(c, character, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	out := make([]journalEntry, 0, len(recs))
	for _, r := range recs {
		out = append(out, journalEntry{
			RunID:           r.RunID,
			Action:          string(r.Action),
			Payload:         json.RawMessage(r.Payload),
			Outcome:         r.Outcome,
			CooldownSeconds: r.CooldownSeconds,
			Reason:          r.Reason,
			ErrorCode:       r.ErrorCode,
			ErrorMessage:    r.ErrorMessage,
			ExecutedAt:      r.ExecutedAt,
		})
	}
	ctx.JSON(consts.StatusOK, map[string]any{"character": character, "records": out})
}

func (h Handler) scenarios(_ context.Context, ctx *app.RequestContext) {
	if h.Characters == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "character source not configured")
		return
	}
	character := strings.TrimSpace(string(ctx.Query("character")))
	if character == "" {
		writeError(ctx, ErrMissingCharacter)
		return
	}
	listings, ok := h.Characters.Eligible(character)
	if !ok {
		writeError(ctx, ErrUnknownCharacter)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"character": character, "categories": listings})
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingCharacter):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ErrUnknownCharacter), errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
