package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row owned by the caller.
var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Times are stored in UTC. The sqlite driver compares them as text, so
// mixed offsets would order wrongly.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// Repositories bundles every data-access struct over one *gorm.DB.
type Repositories struct {
	DB            *gorm.DB
	Users         *UserRepository
	HealthData    *HealthDataRepository
	HealthHistory *HealthHistoryRepository
	History       *HistoryRepository
	Notes         *NoteRepository
	Reminders     *ReminderRepository
	Water         *WaterLogRepository
	Goals         *GoalRepository
	Devices       *DeviceRepository
	Notifications *NotificationRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:            db,
		Users:         NewUserRepository(db),
		HealthData:    NewHealthDataRepository(db),
		HealthHistory: NewHealthHistoryRepository(db),
		History:       NewHistoryRepository(db),
		Notes:         NewNoteRepository(db),
		Reminders:     NewReminderRepository(db),
		Water:         NewWaterLogRepository(db),
		Goals:         NewGoalRepository(db),
		Devices:       NewDeviceRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}
