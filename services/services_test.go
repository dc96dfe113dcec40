package services

import (
	"context"
	"testing"
	"time"

	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/testutil"
)

// 2026-10-19 is a Monday.
var monday = time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func newRepos(t *testing.T, uids ...string) *repositories.Repositories {
	t.Helper()
	db := testutil.NewDB(t)
	for _, uid := range uids {
		testutil.NewUser(t, db, uid)
	}
	return repositories.New(db)
}

type fakeMailer struct {
	to, code string
}

func (m *fakeMailer) SendResetEmail(_ context.Context, to, code string) error {
	m.to, m.code = to, code
	return nil
}

type pushCall struct {
	uid, title, body string
	data             map[string]string
}

type fakePusher struct {
	calls []pushCall
	err   error
}

func (p *fakePusher) PushToUser(_ context.Context, uid, title, body string, data map[string]string) error {
	p.calls = append(p.calls, pushCall{uid, title, body, data})
	return p.err
}

type fakeBroadcaster struct {
	events map[string][]any
}

func (b *fakeBroadcaster) Broadcast(uid string, payload any) {
	if b.events == nil {
		b.events = make(map[string][]any)
	}
	b.events[uid] = append(b.events[uid], payload)
}
