package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibenest/vibenest-backend/internal/domain"
	"github.com/vibenest/vibenest-backend/internal/usecase/listing"
)

type ListingHandler struct {
	listingUseCase *listing.ListingUseCase
}

func NewListingHandler(listingUseCase *listing.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

// Create handles POST /listings
// @Summary Create listing
// @Description Upload a new listing, optionally generating content from its photos
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body listing.CreateListingRequest true "Listing data"
// @Success 201 {object} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req listing.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.listingUseCase.Create(c.Request.Context(), userID.(int), &req)
	if err != nil {
		if errors.Is(err, domain.ErrNoImages) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "at least one image is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetByID handles GET /listings/:listing_id
// @Summary Get listing
// @Tags listings
// @Security BearerAuth
// @Produce json
// @Param listing_id path string true "Listing ID"
// @Success 200 {object} domain.Listing
// @Failure 404 {object} ErrorResponse
// @Router /listings/{listing_id} [get]
func (h *ListingHandler) GetByID(c *gin.Context) {
	found, err := h.listingUseCase.GetByID(c.Request.Context(), c.Param("listing_id"))
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get listing"})
		return
	}

	c.JSON(http.StatusOK, found)
}

// GetMine handles GET /listings/mine
// @Summary My listings
// @Tags listings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Listing
// @Failure 401 {object} ErrorResponse
// @Router /listings/mine [get]
func (h *ListingHandler) GetMine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, offset := paginationParams(c)
	listings, err := h.listingUseCase.GetMyListings(c.Request.Context(), userID.(int), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// Update handles PUT /listings/:listing_id
// @Summary Update listing
// @Description Edit listing fields; stored visual analysis is untouched
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param listing_id path string true "Listing ID"
// @Param request body listing.UpdateListingRequest true "Fields to update"
// @Success 200 {object} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /listings/{listing_id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req listing.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	updated, err := h.listingUseCase.Update(c.Request.Context(), userID.(int), c.Param("listing_id"), &req)
	if err != nil {
		h.writeOwnershipError(c, err, "failed to update listing")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Regenerate handles POST /listings/:listing_id/regenerate
// @Summary Regenerate AI content
// @Description Re-run image analysis and content synthesis for a listing
// @Tags listings
// @Security BearerAuth
// @Produce json
// @Param listing_id path string true "Listing ID"
// @Success 200 {object} domain.Listing
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /listings/{listing_id}/regenerate [post]
func (h *ListingHandler) Regenerate(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	currency := c.Query("currency")
	updated, err := h.listingUseCase.RegenerateContent(c.Request.Context(), userID.(int), c.Param("listing_id"), currency)
	if err != nil {
		h.writeOwnershipError(c, err, "failed to regenerate content")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /listings/:listing_id
// @Summary Delete listing
// @Tags listings
// @Security BearerAuth
// @Param listing_id path string true "Listing ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /listings/{listing_id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.listingUseCase.Delete(c.Request.Context(), userID.(int), c.Param("listing_id")); err != nil {
		h.writeOwnershipError(c, err, "failed to delete listing")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ListingHandler) writeOwnershipError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrListingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "listing not found"})
	case errors.Is(err, domain.ErrNotListingOwner):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the listing owner"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
