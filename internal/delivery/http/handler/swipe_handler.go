package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/usecase/swipe"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// CreateSwipe handles POST /swipe
// @Summary Swipe a listing
// @Description Record a like or pass; a like creates a match with the owner
// @Tags swipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.SwipeRequest true "Swipe action"
// @Success 201 {object} swipe.SwipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /swipe [post]
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req swipe.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.swipeUseCase.CreateSwipe(c.Request.Context(), userID.(int), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "listing not found"})
		case errors.Is(err, domain.ErrCannotSwipeOwnListing):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot swipe your own listing"})
		case errors.Is(err, domain.ErrSwipeAlreadyExists):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "listing already swiped"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create swipe"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetMyMatches handles GET /matches
// @Summary My matches
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Match
// @Failure 401 {object} ErrorResponse
// @Router /matches [get]
func (h *SwipeHandler) GetMyMatches(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, offset := paginationParams(c)
	matches, err := h.swipeUseCase.GetMyMatches(c.Request.Context(), userID.(int), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetLikesReceived handles GET /swipe/likes-received
// @Summary Likes received
// @Description Likes on the authenticated owner's listings
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Success 200 {array} swipe.LikeReceivedResponse
// @Failure 401 {object} ErrorResponse
// @Router /swipe/likes-received [get]
func (h *SwipeHandler) GetLikesReceived(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, offset := paginationParams(c)
	likes, err := h.swipeUseCase.GetLikesReceived(c.Request.Context(), userID.(int), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get likes"})
		return
	}

	c.JSON(http.StatusOK, likes)
}
