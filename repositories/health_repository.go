package repositories

import (
	"context"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HealthDataRepository struct {
	db *gorm.DB
}

func NewHealthDataRepository(db *gorm.DB) *HealthDataRepository {
	return &HealthDataRepository{db: db}
}

// Upsert replaces the user's snapshot and stamps LastUpdate.
func (r *HealthDataRepository) Upsert(ctx context.Context, data *models.HealthData) error {
	data.LastUpdate = time.Now().UTC()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		UpdateAll: true,
	}).Create(data).Error
}

func (r *HealthDataRepository) Get(ctx context.Context, uid string) (*models.HealthData, error) {
	var data models.HealthData
	if err := r.db.WithContext(ctx).First(&data, "uid = ?", uid).Error; err != nil {
		return nil, notFound(err)
	}
	return &data, nil
}

func (r *HealthDataRepository) DeleteByUser(ctx context.Context, uid string) error {
	return r.db.WithContext(ctx).Where("uid = ?", uid).Delete(&models.HealthData{}).Error
}

type HealthHistoryRepository struct {
	db *gorm.DB
}

func NewHealthHistoryRepository(db *gorm.DB) *HealthHistoryRepository {
	return &HealthHistoryRepository{db: db}
}

func (r *HealthHistoryRepository) Insert(ctx context.Context, rec *models.HealthHistory) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	rec.Timestamp = rec.Timestamp.UTC()
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *HealthHistoryRepository) Get(ctx context.Context, uid string, id uint) (*models.HealthHistory, error) {
	var rec models.HealthHistory
	if err := r.db.WithContext(ctx).Where("uid = ? AND id = ?", uid, id).First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

// ListByUser returns newest first; limit <= 0 means no limit.
func (r *HealthHistoryRepository) ListByUser(ctx context.Context, uid string, limit int) ([]models.HealthHistory, error) {
	var recs []models.HealthHistory
	q := r.db.WithContext(ctx).Where("uid = ?", uid).Order("timestamp desc").Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&recs).Error
	return recs, err
}

// ListBetween returns records with from <= timestamp < to, oldest first.
func (r *HealthHistoryRepository) ListBetween(ctx context.Context, uid string, from, to time.Time) ([]models.HealthHistory, error) {
	var recs []models.HealthHistory
	err := r.db.WithContext(ctx).
		Where("uid = ? AND timestamp >= ? AND timestamp < ?", uid, from.UTC(), to.UTC()).
		Order("timestamp asc").
		Find(&recs).Error
	return recs, err
}

func (r *HealthHistoryRepository) Update(ctx context.Context, rec *models.HealthHistory) error {
	rec.Timestamp = rec.Timestamp.UTC()
	res := r.db.WithContext(ctx).Model(&models.HealthHistory{}).
		Where("uid = ? AND id = ?", rec.UID, rec.ID).
		Select("*").Omit("id", "uid").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HealthHistoryRepository) Delete(ctx context.Context, uid string, id uint) error {
	res := r.db.WithContext(ctx).Where("uid = ? AND id = ?", uid, id).Delete(&models.HealthHistory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HealthHistoryRepository) DeleteByUser(ctx context.Context, uid string) error {
	return r.db.WithContext(ctx).Where("uid = ?", uid).Delete(&models.HealthHistory{}).Error
}
