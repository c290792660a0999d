package api

import (
	"net/http"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler holds the review service dependency.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// --- DTOs ---

// CreateReviewRequest defines the expected JSON for submitting a review.
type CreateReviewRequest struct {
	Name   string `json:"name" binding:"required"`
	Review string `json:"review" binding:"required"`
	Rating string `json:"rating" binding:"required"`
}

// ReviewResponse is the DTO for returning a review.
type ReviewResponse struct {
	Name   string `json:"name"`
	Review string `json:"review"`
	Rating string `json:"rating"`
}

// MapReviewsToResponse converts domain reviews to DTOs.
func MapReviewsToResponse(reviews []domain.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		responses[i] = ReviewResponse{
			Name:   r.Name,
			Review: r.Review,
			Rating: r.Rating,
		}
	}
	return responses
}

// --- Handler Methods ---

// ListReviews godoc
// @Summary List all reviews
// @Tags Reviews
// @Produce json
// @Success 200 {array} ReviewResponse "All reviews"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, MapReviewsToResponse(reviews))
}

// CreateReview godoc
// @Summary Submit a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body CreateReviewRequest true "Review"
// @Success 200 {object} gin.H "Save status"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.reviewService.Submit(c.Request.Context(), req.Name, req.Review, req.Rating); err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review saved successfully"})
}
