package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

type ActivityLogGormRepository struct {
	db *gorm.DB
}

func NewActivityLogGormRepository(db *gorm.DB) *ActivityLogGormRepository {
	return &ActivityLogGormRepository{db: db}
}

func (r *ActivityLogGormRepository) Create(
	ctx context.Context,
	entry *models.ActivityLog,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListForUser returns the newest entries recorded for one user.
func (r *ActivityLogGormRepository) ListForUser(
	ctx context.Context,
	role string,
	userID uint,
	limit int,
) ([]models.ActivityLog, error) {

	var entries []models.ActivityLog
	err := r.db.WithContext(ctx).
		Where("role = ? AND user_id = ?", role, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
