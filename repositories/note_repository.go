package repositories

import (
	"context"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Insert(ctx context.Context, n *models.Note) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	n.CreatedAt = n.CreatedAt.UTC()
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NoteRepository) Get(ctx context.Context, userID string, id uint) (*models.Note, error) {
	var n models.Note
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&n).Error; err != nil {
		return nil, notFound(err)
	}
	return &n, nil
}

func chronological(q *gorm.DB) *gorm.DB {
	return q.Order("year desc").Order("month desc").Order("day desc").
		Order("hour desc").Order("minute desc").Order("id desc")
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]models.Note, error) {
	var out []models.Note
	err := chronological(r.db.WithContext(ctx).Where("user_id = ?", userID)).Find(&out).Error
	return out, err
}

func (r *NoteRepository) ListByDay(ctx context.Context, userID string, year, month, day int) ([]models.Note, error) {
	var out []models.Note
	err := chronological(r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ? AND day = ?", userID, year, month, day)).
		Find(&out).Error
	return out, err
}

func (r *NoteRepository) Update(ctx context.Context, n *models.Note) error {
	res := r.db.WithContext(ctx).Model(&models.Note{}).
		Where("user_id = ? AND id = ?", n.UserID, n.ID).
		Select("title", "content", "year", "month", "day", "hour", "minute").
		Updates(n)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, userID string, id uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NoteRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Note{}).Error
}
