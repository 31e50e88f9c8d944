package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	var info, errs bytes.Buffer
	logger := slog.New(NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	))

	logger.Info("hello")
	logger.With("component", "test").Error("boom")

	assert.Contains(t, info.String(), `"msg":"hello"`)
	assert.Contains(t, info.String(), `"msg":"boom"`)
	assert.NotContains(t, errs.String(), "hello")
	assert.Contains(t, errs.String(), `"component":"test"`)
}

func TestDBHandlerPersistsErrors(t *testing.T) {
	db := testutil.NewDB(t)
	h := NewDBHandler(db, time.Hour)
	logger := slog.New(h).With("request_id", "req-1")

	userID := uuid.NewString()
	analysisID := uuid.NewString()
	logger.Info("ignored")
	logger.Error("follow-up failed",
		"user_id", userID,
		"analysis_id", analysisID,
		"action", "append_followup",
		"error", "disk full",
		"latency_ms", 12.6,
		"path", "/api/admin/followups",
	)
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "follow-up failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, userID, *entry.UserID)
	require.NotNil(t, entry.AnalysisID)
	assert.Equal(t, analysisID, *entry.AnalysisID)
	assert.Equal(t, "append_followup", entry.Action)
	assert.Equal(t, "disk full", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)

	var extra map[string]any
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, map[string]any{"path": "/api/admin/followups"}, extra)
}

func TestDBHandlerStopIsIdempotent(t *testing.T) {
	h := NewDBHandler(testutil.NewDB(t), time.Hour)
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	h.Stop()
	h.Stop()
}

func TestPrune(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	old := models.SystemLog{ID: uuid.New(), Timestamp: now.Add(-31 * 24 * time.Hour), Level: "ERROR"}
	recent := models.SystemLog{ID: uuid.New(), Timestamp: now.Add(-time.Hour), Level: "ERROR"}
	require.NoError(t, db.Create(&[]models.SystemLog{old, recent}).Error)

	deleted, err := Prune(db, 30*24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var left []models.SystemLog
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, recent.ID, left[0].ID)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}

func TestMultiHandlerKeepsGoingAfterFailure(t *testing.T) {
	var out bytes.Buffer
	handler := NewMultiHandler(
		failingHandler{slog.NewJSONHandler(&out, nil)},
		nil,
		slog.NewJSONHandler(&out, nil),
	)

	err := slog.New(handler).Handler().Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "boom", 0))
	require.Error(t, err)
	assert.Contains(t, out.String(), `"msg":"boom"`)
}
