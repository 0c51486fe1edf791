package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/board/domain"
)

type CreateRequestDTO struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      domain.Category `json:"category"`
	DurationHours int             `json:"duration_hours"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Whatsapp      string          `json:"whatsapp"`
}

// RequestView is the wire shape of a help request. Contact fields are
// only present for the requester themselves and for the helper currently
// attached to the request.
type RequestView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    domain.Category `json:"category"`
	Deadline    time.Time       `json:"deadline"`
	UserID      uuid.UUID       `json:"user_id"`
	UserName    string          `json:"user_name"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Whatsapp    string          `json:"whatsapp,omitempty"`
	Status      domain.Status   `json:"status"`
	HelperID    *uuid.UUID      `json:"helper_id,omitempty"`
	HelperName  *string         `json:"helper_name,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toView(r *domain.HelpRequest, viewerID uuid.UUID) RequestView {
	view := RequestView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Deadline:    r.Deadline,
		UserID:      r.UserID,
		UserName:    r.UserName,
		Status:      r.Status,
		HelperID:    r.HelperID,
		HelperName:  r.HelperName,
		CreatedAt:   r.CreatedAt,
	}
	if r.UserID == viewerID || r.IsHelper(viewerID) {
		view.Email = r.Email
		view.Phone = r.Phone
		view.Whatsapp = r.Whatsapp
	}
	return view
}

func toViews(requests []domain.HelpRequest, viewerID uuid.UUID) []RequestView {
	views := make([]RequestView, 0, len(requests))
	for i := range requests {
		views = append(views, toView(&requests[i], viewerID))
	}
	return views
}
