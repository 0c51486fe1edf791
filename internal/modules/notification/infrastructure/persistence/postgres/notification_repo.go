package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/notification/domain"
)

type PgNotificationRepository struct {
	db *sqlx.DB
}

func NewPgNotificationRepository(db *sqlx.DB) *PgNotificationRepository {
	return &PgNotificationRepository{db: db}
}

func (r *PgNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO notifications (id, request_id, helper_id, recipient_id, type, message, is_read, created_at)
		VALUES (:id, :request_id, :helper_id, :recipient_id, :type, :message, :is_read, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, n)
	return err
}

func (r *PgNotificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	query := `
		SELECT * FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	var notifications []domain.Notification
	err := r.db.SelectContext(ctx, &notifications, query, recipientID, limit, offset)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAsRead is idempotent: re-marking a read notification succeeds.
func (r *PgNotificationRepository) MarkAsRead(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND recipient_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, notificationID, recipientID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *PgNotificationRepository) MarkAllAsRead(ctx context.Context, recipientID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE recipient_id = $1
	`
	_, err := r.db.ExecContext(ctx, query, recipientID)
	return err
}

func (r *PgNotificationRepository) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM notifications
		WHERE recipient_id = $1 AND is_read = FALSE
	`
	var count int
	err := r.db.GetContext(ctx, &count, query, recipientID)
	return count, err
}

func (r *PgNotificationRepository) ClearForRequest(ctx context.Context, requestID int64) error {
	query := `
		DELETE FROM notifications
		WHERE request_id = $1
	`
	_, err := r.db.ExecContext(ctx, query, requestID)
	return err
}

func (r *PgNotificationRepository) HasReminder(ctx context.Context, requestID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE request_id = $1 AND type = $2
		)
	`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, requestID, domain.TypeDeadlineReminder)
	return exists, err
}
