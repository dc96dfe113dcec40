package services

import (
	"context"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
)

type HistoryService struct {
	history *repositories.HistoryRepository
}

func NewHistoryService(repos *repositories.Repositories) *HistoryService {
	return &HistoryService{history: repos.History}
}

// List returns the activity log newest first, optionally for one type.
func (s *HistoryService) List(ctx context.Context, uid, typ string) ([]models.History, error) {
	if typ == "" {
		return s.history.ListByUser(ctx, uid)
	}
	return s.history.ListByType(ctx, uid, typ)
}

func (s *HistoryService) Delete(ctx context.Context, uid string, id uint) error {
	return s.history.Delete(ctx, uid, id)
}

func (s *HistoryService) Clear(ctx context.Context, uid string) error {
	return s.history.DeleteByUser(ctx, uid)
}
