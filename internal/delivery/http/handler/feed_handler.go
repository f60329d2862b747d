package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/usecase/feed"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
	}
}

// GetFeed handles POST /feed
// @Summary Get ranked feed
// @Description Rank listings against the seeker's preferences, best match first.
// @Tags feed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body feed.FeedRequest true "Seeker preferences"
// @Success 200 {array} feed.ScoredListing
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feed [post]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req feed.FeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	listings, err := h.feedUseCase.GetFeed(c.Request.Context(), userID.(int), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid preferences"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build feed"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// ResetDislikes handles POST /feed/reset-dislikes
// @Summary Reset dislikes
// @Description Remove pass swipes so dismissed listings reappear in the feed
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feed/reset-dislikes [post]
func (h *FeedHandler) ResetDislikes(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	count, err := h.feedUseCase.ResetDislikes(c.Request.Context(), userID.(int))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to reset dislikes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": count})
}

// paginationParams reads limit/offset query params with sane defaults.
func paginationParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
