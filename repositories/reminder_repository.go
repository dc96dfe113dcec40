package repositories

import (
	"context"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"gorm.io/gorm"
)

type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Insert(ctx context.Context, rem *models.Reminder) error {
	rem.NextTriggerAt = utcPtr(rem.NextTriggerAt)
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *ReminderRepository) Get(ctx context.Context, uid string, id uint) (*models.Reminder, error) {
	var rem models.Reminder
	if err := r.db.WithContext(ctx).Where("uid = ? AND id = ?", uid, id).First(&rem).Error; err != nil {
		return nil, notFound(err)
	}
	return &rem, nil
}

func (r *ReminderRepository) ListByUser(ctx context.Context, uid string) ([]models.Reminder, error) {
	var out []models.Reminder
	err := r.db.WithContext(ctx).Where("uid = ?", uid).Order("start_time asc").Order("id asc").Find(&out).Error
	return out, err
}

// ListEnabled returns every enabled reminder across all users.
func (r *ReminderRepository) ListEnabled(ctx context.Context) ([]models.Reminder, error) {
	var out []models.Reminder
	err := r.db.WithContext(ctx).Where("is_enabled = ?", true).Order("id asc").Find(&out).Error
	return out, err
}

// ListAll is used by the boot re-arm to also clear stale triggers of disabled reminders.
func (r *ReminderRepository) ListAll(ctx context.Context) ([]models.Reminder, error) {
	var out []models.Reminder
	err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// ListDue returns enabled reminders whose next trigger is at or before now.
func (r *ReminderRepository) ListDue(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	var out []models.Reminder
	err := r.db.WithContext(ctx).
		Where("is_enabled = ? AND next_trigger_at IS NOT NULL AND next_trigger_at <= ?", true, now.UTC()).
		Order("next_trigger_at asc").
		Find(&out).Error
	return out, err
}

func (r *ReminderRepository) Update(ctx context.Context, rem *models.Reminder) error {
	rem.NextTriggerAt = utcPtr(rem.NextTriggerAt)
	rem.UpdatedAt = rem.UpdatedAt.UTC()
	res := r.db.WithContext(ctx).Model(&models.Reminder{}).
		Where("uid = ? AND id = ?", rem.UID, rem.ID).
		Select("title", "type", "interval_minutes", "water_amount_ml", "start_time",
			"end_time", "days_of_week", "is_enabled", "next_trigger_at", "updated_at").
		Updates(rem)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReminderRepository) SetEnabled(ctx context.Context, uid string, id uint, enabled bool, next *time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Reminder{}).
		Where("uid = ? AND id = ?", uid, id).
		Updates(map[string]any{"is_enabled": enabled, "next_trigger_at": utcPtr(next), "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetNextTrigger overwrites the next fire time unconditionally.
func (r *ReminderRepository) SetNextTrigger(ctx context.Context, id uint, next *time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Reminder{}).
		Where("id = ?", id).
		Update("next_trigger_at", utcPtr(next)).Error
}

// AdvanceTrigger moves a reminder off slot only if slot is still its next
// trigger; fired is the slot just delivered, if any. It reports whether
// the row was advanced.
func (r *ReminderRepository) AdvanceTrigger(ctx context.Context, id uint, slot time.Time, next, fired *time.Time) (bool, error) {
	updates := map[string]any{"next_trigger_at": utcPtr(next)}
	if fired != nil {
		updates["last_triggered_at"] = fired.UTC()
	}
	res := r.db.WithContext(ctx).Model(&models.Reminder{}).
		Where("id = ? AND next_trigger_at = ?", id, slot.UTC()).
		Updates(updates)
	return res.RowsAffected > 0, res.Error
}

func (r *ReminderRepository) Delete(ctx context.Context, uid string, id uint) error {
	res := r.db.WithContext(ctx).Where("uid = ? AND id = ?", uid, id).Delete(&models.Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReminderRepository) DeleteByUser(ctx context.Context, uid string) error {
	return r.db.WithContext(ctx).Where("uid = ?", uid).Delete(&models.Reminder{}).Error
}
