package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/board/domain"
)

type PgRequestRepository struct {
	db *sqlx.DB
}

func NewPgRequestRepository(db *sqlx.DB) *PgRequestRepository {
	return &PgRequestRepository{db: db}
}

func (r *PgRequestRepository) Create(ctx context.Context, request *domain.HelpRequest) error {
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO help_requests
			(name, description, category, deadline, user_id, user_name, email, phone, whatsapp, status, helper_id, helper_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return r.db.GetContext(ctx, &request.ID, query,
		request.Name, request.Description, request.Category, request.Deadline,
		request.UserID, request.UserName, request.Email, request.Phone, request.Whatsapp,
		request.Status, request.HelperID, request.HelperName, request.CreatedAt)
}

func (r *PgRequestRepository) GetByID(ctx context.Context, id int64) (*domain.HelpRequest, error) {
	request := &domain.HelpRequest{}
	query := `SELECT * FROM help_requests WHERE id = $1`
	err := r.db.GetContext(ctx, request, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

// List returns the board sorted by deadline descending, like the public
// board view. Search matches name, description and category.
func (r *PgRequestRepository) List(ctx context.Context, filter domain.RequestFilter) ([]domain.HelpRequest, error) {
	query := `
		SELECT * FROM help_requests
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%' OR category ILIKE '%' || $2 || '%')
		ORDER BY deadline DESC
	`
	requests := []domain.HelpRequest{}
	err := r.db.SelectContext(ctx, &requests, query, string(filter.Category), filter.Search)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *PgRequestRepository) ListByRequester(ctx context.Context, userID uuid.UUID) ([]domain.HelpRequest, error) {
	query := `SELECT * FROM help_requests WHERE user_id = $1 ORDER BY deadline DESC`
	requests := []domain.HelpRequest{}
	err := r.db.SelectContext(ctx, &requests, query, userID)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *PgRequestRepository) ListByHelper(ctx context.Context, userID uuid.UUID) ([]domain.HelpRequest, error) {
	query := `SELECT * FROM help_requests WHERE helper_id = $1 ORDER BY deadline DESC`
	requests := []domain.HelpRequest{}
	err := r.db.SelectContext(ctx, &requests, query, userID)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *PgRequestRepository) ListActive(ctx context.Context) ([]domain.HelpRequest, error) {
	query := `SELECT * FROM help_requests ORDER BY id ASC`
	requests := []domain.HelpRequest{}
	err := r.db.SelectContext(ctx, &requests, query)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Offer is conditional on the request still being pending and helperless,
// so the first offer wins even under concurrent claims.
func (r *PgRequestRepository) Offer(ctx context.Context, id int64, helperID uuid.UUID, helperName string) error {
	query := `
		UPDATE help_requests
		SET helper_id = $2, helper_name = $3, status = $4
		WHERE id = $1 AND status = $5 AND helper_id IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, helperID, helperName, domain.StatusOffered, domain.StatusPending)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyOffered
	}
	return nil
}

func (r *PgRequestRepository) Accept(ctx context.Context, id int64) error {
	query := `
		UPDATE help_requests
		SET status = $2
		WHERE id = $1 AND status = $3
	`
	res, err := r.db.ExecContext(ctx, query, id, domain.StatusAccepted, domain.StatusOffered)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNoOffer
	}
	return nil
}

func (r *PgRequestRepository) ReleaseHelper(ctx context.Context, id int64) error {
	query := `
		UPDATE help_requests
		SET helper_id = NULL, helper_name = NULL, status = $2
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, domain.StatusPending)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *PgRequestRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM help_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *PgRequestRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM help_requests`)
	return count, err
}
