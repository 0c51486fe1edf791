package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	TypeHelpOffer            NotificationType = "help_offer"
	TypeHelpAccepted         NotificationType = "help_accepted"
	TypeHelpDenied           NotificationType = "help_denied"
	TypeRequestCancelled     NotificationType = "request_cancelled"
	TypeHelpRequestCancelled NotificationType = "help_request_cancelled"
	TypeDeadlineReminder     NotificationType = "deadline_reminder"
	TypeNewRequest           NotificationType = "new_request"
)

// Storable reports whether the engine persists and fans out this type.
// Only help offers, deadline reminders and new-request announcements are
// ever stored; the remaining types stay declared for consumers that render
// transient toasts but have no producer behind them.
func (t NotificationType) Storable() bool {
	switch t {
	case TypeHelpOffer, TypeDeadlineReminder, TypeNewRequest:
		return true
	}
	return false
}

// Notification is a derived, addressed event record shown to one user.
// RequestID is a back-reference, not an ownership relation: a notification
// may outlive the request it points at.
type Notification struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	RequestID   int64            `json:"request_id" db:"request_id"`
	HelperID    uuid.UUID        `json:"helper_id" db:"helper_id"`
	RecipientID uuid.UUID        `json:"recipient_id" db:"recipient_id"`
	Type        NotificationType `json:"type" db:"type"`
	Message     string           `json:"message" db:"message"`
	IsRead      bool             `json:"is_read" db:"is_read"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

// Draft is a notification before the engine stamps id, timestamp and read
// state onto it. Message is rendered by the producer at creation time and
// never re-derived.
type Draft struct {
	RequestID   int64
	HelperID    uuid.UUID
	RecipientID uuid.UUID
	Type        NotificationType
	Message     string
}

var (
	ErrNotificationNotFound = errors.New("notification not found")
)
