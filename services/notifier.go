package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/scheduler"
	"github.com/totomace/VitaZen-sub000/utils"
)

// Notifier records a notification, pushes it to live sockets and to the
// user's devices. Either channel may be nil.
type Notifier struct {
	notifications *repositories.NotificationRepository
	history       *repositories.HistoryRepository
	devices       *repositories.DeviceRepository
	rt            Broadcaster
	push          Pusher
}

func NewNotifier(repos *repositories.Repositories, rt Broadcaster, push Pusher) *Notifier {
	return &Notifier{
		notifications: repos.Notifications,
		history:       repos.History,
		devices:       repos.Devices,
		rt:            rt,
		push:          push,
	}
}

// Deliver posts the notification for one reminder slot.
func (n *Notifier) Deliver(ctx context.Context, r models.Reminder, slot time.Time) error {
	title, body := scheduler.Message(r)
	note := &models.Notification{
		UID:        r.UID,
		ReminderID: r.ID,
		Type:       r.Type,
		Title:      title,
		Message:    body,
		CreatedAt:  slot,
	}
	if err := n.notifications.Insert(ctx, note); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	if err := n.history.Insert(ctx, &models.History{
		UserID:      r.UID,
		Title:       title,
		Description: body,
		Type:        models.HistoryTypeReminder,
		Timestamp:   slot,
	}); err != nil {
		return fmt.Errorf("store history: %w", err)
	}
	return n.fanOut(ctx, note)
}

// Emit sends an ad-hoc notification not tied to a reminder.
func (n *Notifier) Emit(ctx context.Context, uid, typ, title, body string) (*models.Notification, error) {
	note := &models.Notification{UID: uid, Type: typ, Title: title, Message: body}
	if err := n.notifications.Insert(ctx, note); err != nil {
		return nil, err
	}
	return note, n.fanOut(ctx, note)
}

func (n *Notifier) fanOut(ctx context.Context, note *models.Notification) error {
	if n.rt != nil {
		n.rt.Broadcast(note.UID, map[string]any{
			"kind":         "notification.created",
			"notification": note,
		})
	}
	if n.push == nil {
		return nil
	}
	data := map[string]string{
		"type":           note.Type,
		"notificationId": strconv.FormatUint(uint64(note.ID), 10),
	}
	if note.ReminderID != 0 {
		data["reminderId"] = strconv.FormatUint(uint64(note.ReminderID), 10)
	}
	if err := n.push.PushToUser(ctx, note.UID, note.Title, note.Message, data); err != nil {
		utils.LogError("push notification %d: %v", note.ID, err)
	}
	return nil
}

func (n *Notifier) List(ctx context.Context, uid string, limit int) ([]models.Notification, error) {
	return n.notifications.ListByUser(ctx, uid, limit)
}

// SetPushEnabled turns push delivery on or off for all of the user's devices.
func (n *Notifier) SetPushEnabled(ctx context.Context, uid string, enabled bool) error {
	return n.devices.SetEnabled(ctx, uid, enabled)
}
