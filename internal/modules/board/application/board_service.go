package application

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/board/domain"
	"github.com/Michaelmpofo/helpmate-lite/internal/shared/utils"
)

// Identity is the acting user, read from the request context at call time.
type Identity struct {
	ID   uuid.UUID
	Name string
}

// NotificationPublisher is the slice of the notification engine the board
// needs. The board never holds a pointer into the engine's collection;
// the two sides reference each other by request id only.
type NotificationPublisher interface {
	NotifyHelpOffer(ctx context.Context, requestID int64, requestName string, requesterID, helperID uuid.UUID, helperName string) error
	ClearForRequest(ctx context.Context, requestID int64) error
}

// CreateRequestInput carries requester-supplied fields for a new request.
// DurationHours is converted to an absolute deadline at creation.
type CreateRequestInput struct {
	Name          string
	Description   string
	Category      domain.Category
	DurationHours int
	Email         string
	Phone         string
	Whatsapp      string
}

// BoardService owns the help-request collection and its workflow
// (pending -> offered -> accepted, terminated by cancel or complete).
type BoardService struct {
	repo   domain.RequestRepository
	notifs NotificationPublisher
}

func NewBoardService(repo domain.RequestRepository, notifs NotificationPublisher) *BoardService {
	return &BoardService{repo: repo, notifs: notifs}
}

func (s *BoardService) Create(ctx context.Context, requester Identity, in CreateRequestInput) (*domain.HelpRequest, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" || in.Description == "" {
		return nil, domain.ErrValidation
	}
	if !in.Category.Valid() {
		return nil, domain.ErrValidation
	}
	if in.DurationHours <= 0 {
		return nil, domain.ErrValidation
	}
	if in.Email != "" && !utils.IsValidEmail(in.Email) {
		return nil, domain.ErrValidation
	}

	request := &domain.HelpRequest{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Deadline:    time.Now().Add(time.Duration(in.DurationHours) * time.Hour),
		UserID:      requester.ID,
		UserName:    requester.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Whatsapp:    in.Whatsapp,
		Status:      domain.StatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *BoardService) List(ctx context.Context, filter domain.RequestFilter) ([]domain.HelpRequest, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, domain.ErrValidation
	}
	return s.repo.List(ctx, filter)
}

func (s *BoardService) Get(ctx context.Context, id int64) (*domain.HelpRequest, error) {
	return s.repo.GetByID(ctx, id)
}

// Mine lists the caller's own requests.
func (s *BoardService) Mine(ctx context.Context, caller Identity) ([]domain.HelpRequest, error) {
	return s.repo.ListByRequester(ctx, caller.ID)
}

// Offered lists the requests the caller is currently helping with.
func (s *BoardService) Offered(ctx context.Context, caller Identity) ([]domain.HelpRequest, error) {
	return s.repo.ListByHelper(ctx, caller.ID)
}

// OfferHelp claims a pending request for the helper. The first offer wins;
// a request that already has a helper is never reassigned. The requester
// is notified unless they offered on their own request.
func (s *BoardService) OfferHelp(ctx context.Context, id int64, helper Identity) (*domain.HelpRequest, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.StatusPending || request.HasHelper() {
		return nil, domain.ErrAlreadyOffered
	}

	if err := s.repo.Offer(ctx, id, helper.ID, helper.Name); err != nil {
		return nil, err
	}

	if request.UserID != helper.ID {
		if err := s.notifs.NotifyHelpOffer(ctx, request.ID, request.Name, request.UserID, helper.ID, helper.Name); err != nil {
			log.Printf("board: help_offer notification failed for request %d: %v", request.ID, err)
		}
	}

	return s.repo.GetByID(ctx, id)
}

// AcceptOffer is the requester accepting the pending offer. The request's
// notifications are cleared so the offer stops showing as actionable.
func (s *BoardService) AcceptOffer(ctx context.Context, id int64, caller Identity) (*domain.HelpRequest, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.UserID != caller.ID {
		return nil, domain.ErrForbidden
	}
	if err := s.repo.Accept(ctx, id); err != nil {
		return nil, err
	}
	if err := s.notifs.ClearForRequest(ctx, id); err != nil {
		log.Printf("board: clearing notifications for request %d failed: %v", id, err)
	}
	return s.repo.GetByID(ctx, id)
}

// DenyOffer reverts an offered request to pending and releases the helper.
func (s *BoardService) DenyOffer(ctx context.Context, id int64, caller Identity) (*domain.HelpRequest, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.UserID != caller.ID {
		return nil, domain.ErrForbidden
	}
	if !request.HasHelper() {
		return nil, domain.ErrNoOffer
	}
	if err := s.repo.ReleaseHelper(ctx, id); err != nil {
		return nil, err
	}
	if err := s.notifs.ClearForRequest(ctx, id); err != nil {
		log.Printf("board: clearing notifications for request %d failed: %v", id, err)
	}
	return s.repo.GetByID(ctx, id)
}

// CancelHelp is the helper withdrawing their own offer.
func (s *BoardService) CancelHelp(ctx context.Context, id int64, caller Identity) (*domain.HelpRequest, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.IsHelper(caller.ID) {
		return nil, domain.ErrForbidden
	}
	if err := s.repo.ReleaseHelper(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Cancel removes the request entirely and purges its notifications.
// Only the requester may cancel. Chat transcripts are intentionally left
// behind: the chat store is independently keyed and there is no
// cross-store consistency guarantee.
func (s *BoardService) Cancel(ctx context.Context, id int64, caller Identity) error {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request.UserID != caller.ID {
		return domain.ErrForbidden
	}
	if err := s.notifs.ClearForRequest(ctx, id); err != nil {
		log.Printf("board: clearing notifications for request %d failed: %v", id, err)
	}
	return s.repo.Delete(ctx, id)
}

// Complete removes the request entirely and purges its notifications.
// Only the owning helper may mark a request complete.
func (s *BoardService) Complete(ctx context.Context, id int64, caller Identity) error {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !request.IsHelper(caller.ID) {
		return domain.ErrForbidden
	}
	if err := s.notifs.ClearForRequest(ctx, id); err != nil {
		log.Printf("board: clearing notifications for request %d failed: %v", id, err)
	}
	return s.repo.Delete(ctx, id)
}

// SeedDefaults populates an empty board with example requests so a fresh
// install is not a blank page. Runs once at startup.
func (s *BoardService) SeedDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	seeds := []domain.HelpRequest{
		{
			Name:        "Help with Grocery Shopping",
			Description: "Need assistance picking up groceries from the local supermarket. I have mobility issues and would appreciate help.",
			Category:    domain.CategoryErrands,
			Deadline:    now.Add(24 * time.Hour),
			UserID:      uuid.New(),
			UserName:    "Sarah Johnson",
			Email:       "example1@email.com",
			Phone:       "+1234567890",
			Status:      domain.StatusPending,
		},
		{
			Name:        "Math Tutoring Needed",
			Description: "Looking for help with calculus homework. Need someone who can explain complex concepts clearly.",
			Category:    domain.CategoryTutoring,
			Deadline:    now.Add(48 * time.Hour),
			UserID:      uuid.New(),
			UserName:    "Mike Chen",
			Email:       "example2@email.com",
			Phone:       "+1234567891",
			Status:      domain.StatusPending,
		},
		{
			Name:        "Laptop Repair Assistance",
			Description: "My laptop is running very slow. Need someone with tech experience to help diagnose and fix the issue.",
			Category:    domain.CategoryTechSupport,
			Deadline:    now.Add(72 * time.Hour),
			UserID:      uuid.New(),
			UserName:    "Emma Davis",
			Email:       "example3@email.com",
			Phone:       "+1234567892",
			Status:      domain.StatusPending,
		},
	}
	for i := range seeds {
		if err := s.repo.Create(ctx, &seeds[i]); err != nil {
			return err
		}
	}
	log.Printf("board: seeded %d default requests", len(seeds))
	return nil
}
