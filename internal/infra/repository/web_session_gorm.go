package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/appointme-client/internal/models"
	"github.com/BruksfildServices01/appointme-client/internal/session"
)

type WebSessionGormRepository struct {
	db *gorm.DB
}

func NewWebSessionGormRepository(db *gorm.DB) *WebSessionGormRepository {
	return &WebSessionGormRepository{db: db}
}

func (r *WebSessionGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.WebSession, error) {

	var ws models.WebSession
	err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&ws).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *WebSessionGormRepository) Put(
	ctx context.Context,
	ws *models.WebSession,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(ws).Error
}

func (r *WebSessionGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.WebSession{}).Error
}

// PurgeExpired removes sessions past their expiry.
func (r *WebSessionGormRepository) PurgeExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&models.WebSession{})
	return res.RowsAffected, res.Error
}
