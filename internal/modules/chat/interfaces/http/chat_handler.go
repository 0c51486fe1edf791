package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Michaelmpofo/helpmate-lite/internal/gateway/middleware"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/chat/application"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/chat/domain"
	"github.com/Michaelmpofo/helpmate-lite/internal/shared/utils"
)

type ChatHandler struct {
	service *application.ChatService
}

func NewChatHandler(service *application.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type sendMessageDTO struct {
	PeerID  uuid.UUID `json:"peer_id"`
	Content string    `json:"content"`
	Avatar  string    `json:"avatar"`
}

// History serves GET /requests/{id}/chat?peer={uuid}.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	requestID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request id", nil)
		return
	}
	peerID, err := uuid.Parse(r.URL.Query().Get("peer"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid peer id", nil)
		return
	}

	messages, err := h.service.History(r.Context(), requestID, userID, peerID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to load chat history", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": messages})
}

// Send serves POST /requests/{id}/chat.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	userName, _ := r.Context().Value(middleware.ContextKeyUserName).(string)

	requestID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request id", nil)
		return
	}

	var dto sendMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if dto.PeerID == uuid.Nil {
		utils.WriteError(w, http.StatusBadRequest, "peer_id is required", nil)
		return
	}

	msg, err := h.service.Send(r.Context(), requestID, userID, userName, dto.PeerID, dto.Content, dto.Avatar)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			utils.WriteError(w, http.StatusBadRequest, "message content is empty", nil)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to send message", nil)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, msg)
}
