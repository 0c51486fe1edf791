package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/notification/domain"
)

// Pusher delivers a payload to every open connection of one user.
type Pusher interface {
	SendToUser(userID uuid.UUID, message []byte)
}

// NotificationService persists notifications and pushes them to connected
// recipients. Drafts whose type is not storable are dropped before either
// side effect; the caller does not need to know which types survive.
type NotificationService struct {
	repo domain.NotificationRepository
	hub  Pusher
}

func NewNotificationService(repo domain.NotificationRepository, hub Pusher) *NotificationService {
	return &NotificationService{repo: repo, hub: hub}
}

// Notify stores the draft and pushes it to the recipient. Non-storable
// types are silently ignored. Delivery is best effort: a recipient with no
// open connection simply finds the notification on their next list call.
func (s *NotificationService) Notify(ctx context.Context, draft domain.Draft) error {
	if !draft.Type.Storable() {
		return nil
	}

	notification := &domain.Notification{
		ID:          uuid.New(),
		RequestID:   draft.RequestID,
		HelperID:    draft.HelperID,
		RecipientID: draft.RecipientID,
		Type:        draft.Type,
		Message:     draft.Message,
		IsRead:      false,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("storing notification: %w", err)
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		log.Printf("[Notification Service] marshal failed for %s: %v", notification.ID, err)
		return nil
	}
	s.hub.SendToUser(notification.RecipientID, payload)
	return nil
}

// NotifyHelpOffer tells the requester that someone claimed their request.
func (s *NotificationService) NotifyHelpOffer(ctx context.Context, requestID int64, requestName string, requesterID, helperID uuid.UUID, helperName string) error {
	if requesterID == helperID {
		return nil
	}
	return s.Notify(ctx, domain.Draft{
		RequestID:   requestID,
		HelperID:    helperID,
		RecipientID: requesterID,
		Type:        domain.TypeHelpOffer,
		Message:     fmt.Sprintf("%s has offered to help with your request %q", helperName, requestName),
	})
}

// NotifyDeadlineReminder tells the requester their deadline is close.
// The hour count is rounded to the nearest whole hour.
func (s *NotificationService) NotifyDeadlineReminder(ctx context.Context, requestID int64, requestName string, requesterID uuid.UUID, left time.Duration) error {
	hours := int(math.Round(left.Hours()))
	return s.Notify(ctx, domain.Draft{
		RequestID:   requestID,
		RecipientID: requesterID,
		Type:        domain.TypeDeadlineReminder,
		Message:     fmt.Sprintf("Only %d hour(s) left for help request: %q", hours, requestName),
	})
}

func (s *NotificationService) List(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID, limit, offset)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, notificationID, recipientID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, recipientID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, recipientID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error) {
	return s.repo.UnreadCount(ctx, recipientID)
}

// ClearForRequest purges every notification tied to a request. Called by
// the board whenever a request leaves the offered state or is removed.
func (s *NotificationService) ClearForRequest(ctx context.Context, requestID int64) error {
	return s.repo.ClearForRequest(ctx, requestID)
}

func (s *NotificationService) HasReminder(ctx context.Context, requestID int64) (bool, error) {
	return s.repo.HasReminder(ctx, requestID)
}
