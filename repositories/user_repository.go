package repositories

import (
	"context"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetByID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "uid = ?", uid).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, uid string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("uid = ?", uid).Update("last_login_at", at.UTC()).Error
}

// Delete removes the user and everything the user owns in one transaction.
// Only history declares an FK cascade, so the other tables are cleared here.
func (r *UserRepository) Delete(ctx context.Context, uid string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []struct {
			model  any
			column string
		}{
			{&models.HealthData{}, "uid"},
			{&models.HealthHistory{}, "uid"},
			{&models.History{}, "user_id"},
			{&models.Note{}, "user_id"},
			{&models.Reminder{}, "uid"},
			{&models.WaterLog{}, "uid"},
			{&models.DailyGoal{}, "uid"},
			{&models.UserDevice{}, "uid"},
			{&models.Notification{}, "uid"},
		}
		for _, o := range owned {
			if err := tx.Unscoped().Where(o.column+" = ?", uid).Delete(o.model).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&models.User{}, "uid = ?", uid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
