package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryErrands     Category = "Errands"
	CategoryTutoring    Category = "Tutoring"
	CategoryRepairs     Category = "Repairs"
	CategoryTechSupport Category = "Tech Support"
)

// Valid reports whether c is one of the fixed board categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryErrands, CategoryTutoring, CategoryRepairs, CategoryTechSupport:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusOffered   Status = "offered"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// HelpRequest is a posted ask for help with a deadline and contact info.
// Status is the single source of truth for the workflow; HelperID mirrors
// the owning helper for display and authorization. Invariant: HelperID is
// set exactly when status is offered or accepted. Completed and cancelled
// requests are deleted, never archived, so those statuses only appear in
// flight.
type HelpRequest struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Category    Category   `json:"category" db:"category"`
	Deadline    time.Time  `json:"deadline" db:"deadline"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	UserName    string     `json:"user_name" db:"user_name"`
	Email       string     `json:"email" db:"email"`
	Phone       string     `json:"phone" db:"phone"`
	Whatsapp    string     `json:"whatsapp" db:"whatsapp"`
	Status      Status     `json:"status" db:"status"`
	HelperID    *uuid.UUID `json:"helper_id,omitempty" db:"helper_id"`
	HelperName  *string    `json:"helper_name,omitempty" db:"helper_name"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// HasHelper reports whether a helper currently owns this request.
func (r *HelpRequest) HasHelper() bool {
	return r.HelperID != nil
}

// IsHelper reports whether the given user is the owning helper.
func (r *HelpRequest) IsHelper(userID uuid.UUID) bool {
	return r.HelperID != nil && *r.HelperID == userID
}

// RequestFilter narrows a board listing.
type RequestFilter struct {
	// Category filters to one category when set.
	Category Category
	// Search is a case-insensitive substring match over name,
	// description and category.
	Search string
}
