package services

import (
	"context"
	"testing"
	"time"

	"github.com/totomace/VitaZen-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t, "u1")
	svc := NewNoteService(repos, time.UTC)

	v, err := svc.Create(ctx, "u1", NoteInput{Title: "Felt dizzy", Content: "after lunch", Year: 2026, Month: 10, Day: 19, Hour: 13, Minute: 5})
	require.NoError(t, err)
	assert.Equal(t, "Mon, 19 Oct 2026 13:05", v.Display)

	log, err := repos.History.ListByType(ctx, "u1", models.HistoryTypeNote)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "Felt dizzy", log[0].Description)

	_, err = svc.Create(ctx, "u1", NoteInput{Title: "x", Year: 2026, Month: 10, Day: 20, Hour: 8})
	require.NoError(t, err)

	day, err := svc.ListForDay(ctx, "u1", time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, day, 1)

	upd, err := svc.Update(ctx, "u1", v.ID, NoteInput{Title: "Dizzy", Year: 2026, Month: 10, Day: 19, Hour: 14})
	require.NoError(t, err)
	assert.Equal(t, "Dizzy", upd.Title)
	assert.Equal(t, "Mon, 19 Oct 2026 14:00", upd.Display)

	all, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "x", all[0].Title)

	require.NoError(t, svc.Delete(ctx, "u1", v.ID))
	_, err = svc.Get(ctx, "u1", v.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteValidatesDate(t *testing.T) {
	svc := NewNoteService(newRepos(t, "u1"), time.UTC)
	for _, in := range []NoteInput{
		{Year: 2026, Month: 10, Day: 19},
		{Title: "x", Year: 2026, Month: 2, Day: 30},
		{Title: "x", Year: 2026, Month: 13, Day: 1},
		{Title: "x", Year: 2026, Month: 1, Day: 1, Hour: 24},
		{Title: "x", Year: 2026, Month: 1, Day: 1, Minute: 60},
	} {
		_, err := svc.Create(context.Background(), "u1", in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}
}
