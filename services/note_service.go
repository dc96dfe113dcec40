package services

import (
	"context"
	"strings"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/utils"
)

type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
}

// NoteView is a note plus its display string.
type NoteView struct {
	models.Note
	Display string `json:"display"`
}

type NoteService struct {
	notes   *repositories.NoteRepository
	history *repositories.HistoryRepository
	loc     *time.Location
}

func NewNoteService(repos *repositories.Repositories, loc *time.Location) *NoteService {
	if loc == nil {
		loc = time.Local
	}
	return &NoteService{notes: repos.Notes, history: repos.History, loc: loc}
}

func (in NoteInput) validate(loc *time.Location) error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title is required")
	}
	if in.Month < 1 || in.Month > 12 || in.Day < 1 || in.Hour < 0 || in.Hour > 23 || in.Minute < 0 || in.Minute > 59 {
		return invalid("date-time is out of range")
	}
	at := time.Date(in.Year, time.Month(in.Month), in.Day, in.Hour, in.Minute, 0, 0, loc)
	if at.Day() != in.Day || at.Year() < 1900 {
		return invalid("%04d-%02d-%02d is not a valid date", in.Year, in.Month, in.Day)
	}
	return nil
}

func (s *NoteService) view(n models.Note) NoteView {
	return NoteView{Note: n, Display: n.At(s.loc).Format(utils.DisplayTimeLayout)}
}

func (s *NoteService) views(notes []models.Note) []NoteView {
	out := make([]NoteView, 0, len(notes))
	for _, n := range notes {
		out = append(out, s.view(n))
	}
	return out
}

func (s *NoteService) Create(ctx context.Context, uid string, in NoteInput) (*NoteView, error) {
	if err := in.validate(s.loc); err != nil {
		return nil, err
	}
	n := models.Note{
		UserID:  uid,
		Title:   strings.TrimSpace(in.Title),
		Content: in.Content,
		Year:    in.Year,
		Month:   in.Month,
		Day:     in.Day,
		Hour:    in.Hour,
		Minute:  in.Minute,
	}
	if err := s.notes.Insert(ctx, &n); err != nil {
		return nil, err
	}
	if err := s.history.Insert(ctx, &models.History{
		UserID:      uid,
		Title:       "Note added",
		Description: n.Title,
		Type:        models.HistoryTypeNote,
	}); err != nil {
		return nil, err
	}
	v := s.view(n)
	return &v, nil
}

func (s *NoteService) Get(ctx context.Context, uid string, id uint) (*NoteView, error) {
	n, err := s.notes.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	v := s.view(*n)
	return &v, nil
}

func (s *NoteService) List(ctx context.Context, uid string) ([]NoteView, error) {
	notes, err := s.notes.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.views(notes), nil
}

func (s *NoteService) ListForDay(ctx context.Context, uid string, day time.Time) ([]NoteView, error) {
	notes, err := s.notes.ListByDay(ctx, uid, day.Year(), int(day.Month()), day.Day())
	if err != nil {
		return nil, err
	}
	return s.views(notes), nil
}

func (s *NoteService) Update(ctx context.Context, uid string, id uint, in NoteInput) (*NoteView, error) {
	if err := in.validate(s.loc); err != nil {
		return nil, err
	}
	n := models.Note{
		ID:      id,
		UserID:  uid,
		Title:   strings.TrimSpace(in.Title),
		Content: in.Content,
		Year:    in.Year,
		Month:   in.Month,
		Day:     in.Day,
		Hour:    in.Hour,
		Minute:  in.Minute,
	}
	if err := s.notes.Update(ctx, &n); err != nil {
		return nil, err
	}
	return s.Get(ctx, uid, id)
}

func (s *NoteService) Delete(ctx context.Context, uid string, id uint) error {
	return s.notes.Delete(ctx, uid, id)
}
