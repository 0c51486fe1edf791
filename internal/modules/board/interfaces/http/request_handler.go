package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Michaelmpofo/helpmate-lite/internal/gateway/middleware"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/board/application"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/board/domain"
	"github.com/Michaelmpofo/helpmate-lite/internal/shared/utils"
)

type RequestHandler struct {
	service *application.BoardService
}

func NewRequestHandler(service *application.BoardService) *RequestHandler {
	return &RequestHandler{service: service}
}

func callerFrom(r *http.Request) (application.Identity, bool) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		return application.Identity{}, false
	}
	name, _ := r.Context().Value(middleware.ContextKeyUserName).(string)
	return application.Identity{ID: userID, Name: name}, true
}

func requestIDFrom(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound):
		utils.WriteError(w, http.StatusNotFound, "request not found", nil)
	case errors.Is(err, domain.ErrForbidden):
		utils.WriteError(w, http.StatusForbidden, "not allowed", nil)
	case errors.Is(err, domain.ErrAlreadyOffered):
		utils.WriteError(w, http.StatusConflict, "request already has a helper", nil)
	case errors.Is(err, domain.ErrNoOffer):
		utils.WriteError(w, http.StatusConflict, "request has no pending offer", nil)
	case errors.Is(err, domain.ErrValidation):
		utils.WriteError(w, http.StatusBadRequest, "invalid request", nil)
	default:
		utils.WriteError(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var dto CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	request, err := h.service.Create(r.Context(), caller, application.CreateRequestInput{
		Name:          dto.Name,
		Description:   dto.Description,
		Category:      dto.Category,
		DurationHours: dto.DurationHours,
		Email:         dto.Email,
		Phone:         dto.Phone,
		Whatsapp:      dto.Whatsapp,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, toView(request, caller.ID))
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	filter := domain.RequestFilter{
		Category: domain.Category(r.URL.Query().Get("category")),
		Search:   r.URL.Query().Get("search"),
	}
	requests, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": toViews(requests, caller.ID)})
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	id, err := requestIDFrom(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request id", nil)
		return
	}

	request, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, toView(request, caller.ID))
}

func (h *RequestHandler) Mine(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	requests, err := h.service.Mine(r.Context(), caller)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": toViews(requests, caller.ID)})
}

func (h *RequestHandler) Offered(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	requests, err := h.service.Offered(r.Context(), caller)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": toViews(requests, caller.ID)})
}

// transition wraps the offer/accept/deny/cancel-offer actions, which all
// share the same shape: path id, authenticated caller, updated view back.
func (h *RequestHandler) transition(w http.ResponseWriter, r *http.Request,
	action func(int64, application.Identity) (*domain.HelpRequest, error)) {
	caller, ok := callerFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	id, err := requestIDFrom(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request id", nil)
		return
	}

	request, err := action(id, caller)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, toView(request, caller.ID))
}

func (h *RequestHandler) OfferHelp(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int64, caller application.Identity) (*domain.HelpRequest, error) {
		return h.service.OfferHelp(r.Context(), id, caller)
	})
}

func (h *RequestHandler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int64, caller application.Identity) (*domain.HelpRequest, error) {
		return h.service.AcceptOffer(r.Context(), id, caller)
	})
}

func (h *RequestHandler) DenyOffer(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int64, caller application.Identity) (*domain.HelpRequest, error) {
		return h.service.DenyOffer(r.Context(), id, caller)
	})
}

func (h *RequestHandler) CancelHelp(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int64, caller application.Identity) (*domain.HelpRequest, error) {
		return h.service.CancelHelp(r.Context(), id, caller)
	})
}

func (h *RequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	id, err := requestIDFrom(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request id", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), id, caller); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	id, err := requestIDFrom(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request id", nil)
		return
	}

	if err := h.service.Complete(r.Context(), id, caller); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
