package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"gorm.io/gorm"
)

type WaterLogRepository struct {
	db *gorm.DB
}

func NewWaterLogRepository(db *gorm.DB) *WaterLogRepository {
	return &WaterLogRepository{db: db}
}

// AddForDay adds amountMl to the (uid, day) row, creating it on first use,
// and returns the new total.
func (r *WaterLogRepository) AddForDay(ctx context.Context, uid string, day time.Time, amountMl int) (int, error) {
	day = day.UTC()
	var total int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var log models.WaterLog
		err := tx.Where("uid = ? AND date = ?", uid, day).First(&log).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log = models.WaterLog{UID: uid, Date: day, AmountMl: amountMl}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
			total = log.AmountMl
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Model(&log).Update("amount_ml", gorm.Expr("amount_ml + ?", amountMl)).Error; err != nil {
			return err
		}
		total = log.AmountMl + amountMl
		return nil
	})
	return total, err
}

// GetForDay returns 0 when nothing was logged that day.
func (r *WaterLogRepository) GetForDay(ctx context.Context, uid string, day time.Time) (int, error) {
	var log models.WaterLog
	err := r.db.WithContext(ctx).Where("uid = ? AND date = ?", uid, day.UTC()).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return log.AmountMl, nil
}

func (r *WaterLogRepository) ListBetween(ctx context.Context, uid string, from, to time.Time) ([]models.WaterLog, error) {
	var out []models.WaterLog
	err := r.db.WithContext(ctx).
		Where("uid = ? AND date >= ? AND date < ?", uid, from.UTC(), to.UTC()).
		Order("date asc").
		Find(&out).Error
	return out, err
}
