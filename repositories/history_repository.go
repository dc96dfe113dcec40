package repositories

import (
	"context"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Insert(ctx context.Context, h *models.History) error {
	if h.Timestamp.IsZero() {
		h.Timestamp = time.Now()
	}
	h.Timestamp = h.Timestamp.UTC()
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HistoryRepository) ListByUser(ctx context.Context, userID string) ([]models.History, error) {
	var out []models.History
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("timestamp desc").Order("id desc").Find(&out).Error
	return out, err
}

func (r *HistoryRepository) ListByType(ctx context.Context, userID, typ string) ([]models.History, error) {
	var out []models.History
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, typ).
		Order("timestamp desc").Order("id desc").
		Find(&out).Error
	return out, err
}

func (r *HistoryRepository) Delete(ctx context.Context, userID string, id uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.History{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HistoryRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.History{}).Error
}
