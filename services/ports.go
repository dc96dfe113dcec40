package services

import "context"

// Mailer delivers account emails.
type Mailer interface {
	SendResetEmail(ctx context.Context, to, code string) error
}

// AvatarStore persists profile pictures given as data URLs.
type AvatarStore interface {
	UploadProfilePicture(ctx context.Context, uid, dataURL string) (string, error)
}

// Pusher sends a push notification to every enabled device of a user.
type Pusher interface {
	PushToUser(ctx context.Context, uid, title, body string, data map[string]string) error
}

// Broadcaster fans an event out to the user's live connections.
type Broadcaster interface {
	Broadcast(uid string, payload any)
}
