package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
}

// DBSink stores events in the activity_logs table.
type DBSink struct {
	repo ActivityRepository
}

func NewDBSink(repo ActivityRepository) *DBSink {
	return &DBSink{repo: repo}
}

func (s *DBSink) Write(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.ActivityLog{
		Role:     ev.Role,
		UserID:   ev.UserID,
		Action:   ev.Action,
		Outcome:  ev.Outcome,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return s.repo.Create(ctx, &entry)
}

// LogSink writes events to the structured log when no database is set up.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Write(_ context.Context, ev Event) error {
	fields := []zap.Field{
		zap.String("action", ev.Action),
		zap.String("outcome", ev.Outcome),
		zap.String("role", ev.Role),
		zap.String("entity", ev.Entity),
	}
	if ev.UserID != nil {
		fields = append(fields, zap.Uint("user_id", *ev.UserID))
	}
	if ev.EntityID != nil {
		fields = append(fields, zap.Uint("entity_id", *ev.EntityID))
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}

	s.log.Info("activity", fields...)
	return nil
}
