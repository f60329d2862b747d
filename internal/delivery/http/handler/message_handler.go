package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/usecase/message"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
}

func NewMessageHandler(messageUseCase *message.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

// Send handles POST /matches/:match_id/messages
// @Summary Send message
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param request body message.SendRequest true "Message body"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{match_id}/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	userID, matchID, ok := h.matchParams(c)
	if !ok {
		return
	}

	var req message.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sent, err := h.messageUseCase.Send(c.Request.Context(), userID, matchID, &req)
	if err != nil {
		h.writeMatchError(c, err, "failed to send message")
		return
	}

	c.JSON(http.StatusCreated, sent)
}

// GetConversation handles GET /matches/:match_id/messages
// @Summary Conversation messages
// @Description Newest first; pass ?since=RFC3339 for incremental polling (oldest first)
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param match_id path int true "Match ID"
// @Param since query string false "Return only messages newer than this RFC3339 time"
// @Success 200 {array} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{match_id}/messages [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	userID, matchID, ok := h.matchParams(c)
	if !ok {
		return
	}

	if sinceStr := c.Query("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid since timestamp"})
			return
		}

		messages, err := h.messageUseCase.GetConversationSince(c.Request.Context(), userID, matchID, since)
		if err != nil {
			h.writeMatchError(c, err, "failed to get messages")
			return
		}
		c.JSON(http.StatusOK, messages)
		return
	}

	limit, offset := paginationParams(c)
	messages, err := h.messageUseCase.GetConversation(c.Request.Context(), userID, matchID, limit, offset)
	if err != nil {
		h.writeMatchError(c, err, "failed to get messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// UnreadCount handles GET /matches/:match_id/messages/unread
// @Summary Unread count
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} map[string]int
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{match_id}/messages/unread [get]
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, matchID, ok := h.matchParams(c)
	if !ok {
		return
	}

	count, err := h.messageUseCase.UnreadCount(c.Request.Context(), userID, matchID)
	if err != nil {
		h.writeMatchError(c, err, "failed to count unread messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *MessageHandler) matchParams(c *gin.Context) (int, int, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, 0, false
	}

	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match_id"})
		return 0, 0, false
	}

	return userID.(int), matchID, true
}

func (h *MessageHandler) writeMatchError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "match not found"})
	case errors.Is(err, domain.ErrNotMatchParticipant):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "not a participant of this match"})
	case errors.Is(err, domain.ErrMatchInactive):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "match is no longer active"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
