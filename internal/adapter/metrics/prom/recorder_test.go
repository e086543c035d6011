package prom

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artifactsbot/internal/domain/game"
)

func TestRecorder_CountsByActionAndOutcome(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(game.ActionGathering, 25*time.Second)
	r.RecordSuccess(game.ActionGathering, 25*time.Second)
	r.RecordFailure(game.ActionCrafting)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.actions.WithLabelValues("gathering", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.actions.WithLabelValues("crafting", "failed")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.cooldown))
}

func TestRecorder_GathererExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.RecordFailure(game.ActionFight)

	expected := `
# HELP artifactsbot_actions_total Actions submitted to the game, partitioned by action and outcome.
# TYPE artifactsbot_actions_total counter
artifactsbot_actions_total{action="fight",outcome="failed"} 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected), "artifactsbot_actions_total"))
}
