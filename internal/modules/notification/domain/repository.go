package domain

import (
	"context"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]Notification, error)
	MarkAsRead(ctx context.Context, notificationID, recipientID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, recipientID uuid.UUID) error
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error)
	// ClearForRequest removes every notification referencing the request.
	// Called by the board on cancel/complete/accept/deny so the two
	// independently owned collections stay consistent.
	ClearForRequest(ctx context.Context, requestID int64) error
	// HasReminder reports whether a live deadline_reminder exists for the
	// request. The scanner uses it to stay idempotent per request.
	HasReminder(ctx context.Context, requestID int64) (bool, error)
}
