package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type DeviceToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	Platform  string    `json:"platform" db:"platform"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PushProvider is the delivery edge for trophy award pushes. Callers treat
// it as fire-and-forget; a failed send is logged, never retried here.
type PushProvider interface {
	SendPush(ctx context.Context, tokens []DeviceToken, title, body string, data map[string]any) error
}
