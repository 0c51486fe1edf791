package domain

import (
	"context"

	"github.com/google/uuid"
)

type RequestRepository interface {
	// Create inserts the request and fills in its sequence-assigned ID.
	Create(ctx context.Context, request *HelpRequest) error
	GetByID(ctx context.Context, id int64) (*HelpRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]HelpRequest, error)
	ListByRequester(ctx context.Context, userID uuid.UUID) ([]HelpRequest, error)
	ListByHelper(ctx context.Context, userID uuid.UUID) ([]HelpRequest, error)
	// ListActive returns every stored request; used by the deadline scanner.
	ListActive(ctx context.Context) ([]HelpRequest, error)
	// Offer claims a pending, helperless request for the helper. Returns
	// ErrAlreadyOffered if another helper won the race.
	Offer(ctx context.Context, id int64, helperID uuid.UUID, helperName string) error
	// Accept moves an offered request to accepted. Returns ErrNoOffer if
	// the request is not currently offered.
	Accept(ctx context.Context, id int64) error
	// ReleaseHelper clears the helper and reverts the request to pending.
	ReleaseHelper(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
