package repositories

import (
	"context"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"gorm.io/gorm"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// Upsert keys devices by (uid, token hash) so re-registering refreshes the endpoint.
func (r *DeviceRepository) Upsert(ctx context.Context, dev *models.UserDevice) (*models.UserDevice, error) {
	var existing models.UserDevice
	err := r.db.WithContext(ctx).Where("uid = ? AND token_hash = ?", dev.UID, dev.TokenHash).First(&existing).Error
	if err == nil {
		// Re-registering refreshes the endpoint but keeps the user's push choice.
		existing.EndpointARN = dev.EndpointARN
		existing.Platform = dev.Platform
		existing.UpdatedAt = time.Now().UTC()
		return &existing, r.db.WithContext(ctx).Save(&existing).Error
	}
	if err := notFound(err); err != ErrNotFound {
		return nil, err
	}

	dev.UpdatedAt = time.Now().UTC()

	// A new device follows the preference already set on the user's others.
	dev.Enabled = true
	var sibling models.UserDevice
	err = r.db.WithContext(ctx).Where("uid = ?", dev.UID).Order("updated_at desc").First(&sibling).Error
	switch {
	case err == nil:
		dev.Enabled = sibling.Enabled
	case notFound(err) != ErrNotFound:
		return nil, err
	}
	enabled := dev.Enabled
	if err := r.db.WithContext(ctx).Create(dev).Error; err != nil {
		return nil, err
	}
	// The column defaults to true, so Create drops a false value.
	if !enabled {
		dev.Enabled = false
		if err := r.db.WithContext(ctx).Model(dev).Update("enabled", false).Error; err != nil {
			return nil, err
		}
	}
	return dev, nil
}

func (r *DeviceRepository) ListEnabled(ctx context.Context, uid string) ([]models.UserDevice, error) {
	var out []models.UserDevice
	err := r.db.WithContext(ctx).Where("uid = ? AND enabled = ?", uid, true).Find(&out).Error
	return out, err
}

// SetEnabled toggles push delivery on every device of the user.
func (r *DeviceRepository) SetEnabled(ctx context.Context, uid string, enabled bool) error {
	return r.db.WithContext(ctx).Model(&models.UserDevice{}).Where("uid = ?", uid).Update("enabled", enabled).Error
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *models.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	n.CreatedAt = n.CreatedAt.UTC()
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByUser(ctx context.Context, uid string, limit int) ([]models.Notification, error) {
	var out []models.Notification
	q := r.db.WithContext(ctx).Where("uid = ?", uid).Order("created_at desc").Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}
