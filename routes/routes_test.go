package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/totomace/VitaZen-sub000/controllers"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/scheduler"
	"github.com/totomace/VitaZen-sub000/services"
	"github.com/totomace/VitaZen-sub000/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repos := repositories.New(testutil.NewDB(t))
	loc := time.UTC

	hub := services.NewRealtimeHub()
	notifier := services.NewNotifier(repos, hub, nil)
	sched := scheduler.New(repos.Reminders, notifier, nil, loc, time.Minute)

	return SetupRouter(Controllers{
		Auth:          controllers.NewAuthController(services.NewAuthService(repos.Users, nil, secret)),
		User:          controllers.NewUserController(services.NewUserService(repos, nil)),
		Health:        controllers.NewHealthController(services.NewHealthService(repos)),
		History:       controllers.NewHistoryController(services.NewHistoryService(repos)),
		Notes:         controllers.NewNoteController(services.NewNoteService(repos, loc), loc),
		Reminders:     controllers.NewReminderController(services.NewReminderService(repos, sched)),
		Water:         controllers.NewWaterController(services.NewWaterService(repos, loc)),
		Goals:         controllers.NewGoalController(services.NewGoalService(repos, loc), loc),
		Analytics:     controllers.NewAnalyticsController(services.NewAnalyticsService(repos, loc), loc),
		Devices:       controllers.NewDeviceController(nil),
		Notifications: controllers.NewNotificationController(notifier),
		Realtime:      controllers.NewRealtimeController(hub),
	}, secret)
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	return loginAs(t, r, "anna")
}

func loginAs(t *testing.T, r http.Handler, name string) string {
	t.Helper()
	creds := gin.H{"email": name + "@example.com", "password": "secret1", "username": name}
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/auth/register", "", creds).Code)

	w := do(t, r, http.MethodPost, "/auth/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAuthFlow(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/healthz", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "nope", "password": "secret1"}).Code)

	token := login(t, r)

	assert.Equal(t, http.StatusConflict,
		do(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "anna@example.com", "password": "secret1"}).Code)
	assert.Equal(t, http.StatusUnauthorized,
		do(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": "anna@example.com", "password": "wrong!!"}).Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		do(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{"email": "anna@example.com"}).Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		do(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{"email": "nobody@example.com"}).Code)

	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/user/profile", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/user/profile", "garbage", nil).Code)

	w := do(t, r, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user, _ := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "anna@example.com", user["email"])
	assert.NotContains(t, user, "password")
}

func TestHealthWaterAndReminders(t *testing.T) {
	r := newRouter(t)
	token := login(t, r)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/health", token, nil).Code)

	w := do(t, r, http.MethodPut, "/health", token, gin.H{"weight": 70, "height": 175})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/health/bmi", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "22.9 (Normal weight)", decode(t, w)["display"])

	w = do(t, r, http.MethodPost, "/water", token, gin.H{"amount_ml": 250})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 250, decode(t, w)["amount_ml"])
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/water", token, gin.H{"amount_ml": 9000}).Code)

	bad := gin.H{"title": "Water", "type": "WATER", "interval_minutes": 60, "start_time": "8am"}
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/reminders", token, bad).Code)

	good := gin.H{"title": "Water", "type": "WATER", "interval_minutes": 60, "start_time": "08:00", "water_amount_ml": 250}
	w = do(t, r, http.MethodPost, "/reminders", token, good)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, decode(t, w)["next_trigger_at"])

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/reminders/999", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/reminders/abc/toggle", token, gin.H{"enabled": false}).Code)

	w = do(t, r, http.MethodGet, "/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var log []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	assert.Len(t, log, 2, "health update and water entry")

	assert.Equal(t, http.StatusServiceUnavailable,
		do(t, r, http.MethodPost, "/devices", token, gin.H{"platform": "android", "token": "t"}).Code)
}

func TestDeleteAccount(t *testing.T) {
	r := newRouter(t)
	token := login(t, r)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPut, "/health", token, gin.H{"weight": 70}).Code)
	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/user", token, nil).Code)

	// The token is still well-formed, but the account is gone.
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/user/profile", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/health", token, nil).Code)
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestNotesRoutes(t *testing.T) {
	r := newRouter(t)
	token := login(t, r)
	other := loginAs(t, r, "ben")

	note := gin.H{"title": "Doctor", "content": "bring results", "year": 2026, "month": 10, "day": 19, "hour": 9, "minute": 30}
	w := do(t, r, http.MethodPost, "/notes", token, note)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "Mon, 19 Oct 2026 09:30", created["display"])
	path := fmt.Sprintf("/notes/%v", created["id"])

	assert.Equal(t, http.StatusBadRequest,
		do(t, r, http.MethodPost, "/notes", token, gin.H{"title": "x", "year": 2026, "month": 2, "day": 30}).Code)

	w = do(t, r, http.MethodGet, "/notes?date=2026-10-19", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)
	w = do(t, r, http.MethodGet, "/notes?date=2026-10-20", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/notes?date=19-10-2026", token, nil).Code)

	note["title"] = "Dentist"
	w = do(t, r, http.MethodPut, path, token, note)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Dentist", decode(t, w)["title"])

	// Another user's note looks absent.
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, path, other, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPut, path, other, note).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, path, other, nil).Code)
	w = do(t, r, http.MethodGet, "/notes", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, path, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, path, token, nil).Code)
}

func TestGoalsAndAnalyticsRoutes(t *testing.T) {
	r := newRouter(t)
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, decode(t, w), "progress")

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/goals", token, gin.H{"water_ml": 20000}).Code)
	w = do(t, r, http.MethodPut, "/goals", token, gin.H{"water_ml": 2000, "steps": 8000, "sleep_hours": 8})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 2000, decode(t, w)["water_ml"])

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/water", token, gin.H{"amount_ml": 500}).Code)

	today := time.Now().UTC().Format("2006-01-02")
	w = do(t, r, http.MethodGet, "/goals?date="+today, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	progress, _ := decode(t, w)["progress"].(map[string]any)
	water, _ := progress["water_ml"].(map[string]any)
	assert.EqualValues(t, 500, water["consumed"])
	assert.EqualValues(t, 0.25, water["percent"])
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/goals?date=tomorrow", token, nil).Code)

	w = do(t, r, http.MethodGet, "/analytics/weekly?week_start="+today, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	week := decode(t, w)
	days, _ := week["days"].([]any)
	assert.Len(t, days, 7)
	averages, _ := week["averages"].(map[string]any)
	assert.Greater(t, averages["water_ml"], 0.0)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/analytics/weekly?week_start=2026/10/19", token, nil).Code)
}

func TestNotificationRoutes(t *testing.T) {
	r := newRouter(t)
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/notifications/toggle", token, gin.H{}).Code)
	w = do(t, r, http.MethodPost, "/notifications/toggle", token, gin.H{"enabled": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, false, decode(t, w)["enabled"])

	w = do(t, r, http.MethodPost, "/notifications/test", token, gin.H{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "TEST", decode(t, w)["type"])

	w = do(t, r, http.MethodGet, "/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeList(t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Test notification", items[0]["title"])
}

func TestReminderUpdateAndToggleRoutes(t *testing.T) {
	r := newRouter(t)
	token := login(t, r)

	rem := gin.H{"title": "Water", "type": "WATER", "interval_minutes": 60, "start_time": "08:00", "end_time": "20:00"}
	w := do(t, r, http.MethodPost, "/reminders", token, rem)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	path := fmt.Sprintf("/reminders/%v", decode(t, w)["id"])

	rem["title"] = "Hydrate"
	rem["interval_minutes"] = 90
	w = do(t, r, http.MethodPut, path, token, rem)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)
	assert.Equal(t, "Hydrate", updated["title"])
	assert.EqualValues(t, 90, updated["interval_minutes"])

	rem["start_time"] = "25:00"
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, path, token, rem).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPut, "/reminders/999", token, updated).Code)

	// A body without "enabled" must not silently disable the reminder.
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, path+"/toggle", token, gin.H{}).Code)
	w = do(t, r, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["is_enabled"])

	w = do(t, r, http.MethodPost, path+"/toggle", token, gin.H{"enabled": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	off := decode(t, w)
	assert.Equal(t, false, off["is_enabled"])
	assert.NotContains(t, off, "next_trigger_at")
}

func TestHistoryDeleteRoute(t *testing.T) {
	r := newRouter(t)
	token := login(t, r)
	other := loginAs(t, r, "ben")

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/water", token, gin.H{"amount_ml": 250}).Code)
	w := do(t, r, http.MethodGet, "/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeList(t, w)
	require.Len(t, items, 1)
	path := fmt.Sprintf("/history/%v", items[0]["id"])

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, path, other, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodDelete, "/history/abc", token, nil).Code)
	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, path, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, path, token, nil).Code)

	w = do(t, r, http.MethodGet, "/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestUpdateProfileRoute(t *testing.T) {
	r := newRouter(t)
	token := login(t, r)

	w := do(t, r, http.MethodPut, "/user/profile", token, gin.H{"username": "  anna k  "})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user, _ := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "anna k", user["username"])

	// No object storage configured.
	assert.Equal(t, http.StatusServiceUnavailable,
		do(t, r, http.MethodPut, "/user/profile", token, gin.H{"profile_picture": "data:image/png;base64,AAAA"}).Code)

	w = do(t, r, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user, _ = decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "anna k", user["username"])
	assert.NotContains(t, user, "profile_picture")
}
