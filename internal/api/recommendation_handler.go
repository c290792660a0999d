package api

import (
	"errors"
	"net/http"

	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler holds the recommendation service dependency.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RecommendMeal godoc
// @Summary Get a meal plan for a user
// @Description Returns meal recommendations computed from the user's profile.
// @Tags Recommendations
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} gin.H "UID and recommendations"
// @Failure 404 {object} gin.H "User not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /recommend_meal/{uid} [get]
func (h *RecommendationHandler) RecommendMeal(c *gin.Context) {
	uid := c.Param("uid")

	recommendations, err := h.recommendationService.RecommendMeals(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"UID":             uid,
		"recommendations": recommendations,
	})
}

// RecommendExercise godoc
// @Summary Get an exercise plan for a user
// @Description Returns an exercise plan computed from the user's profile.
// @Tags Recommendations
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} gin.H "UID and exercise plan"
// @Failure 404 {object} gin.H "User not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /recommend_exercise/{uid} [get]
func (h *RecommendationHandler) RecommendExercise(c *gin.Context) {
	uid := c.Param("uid")

	plan, err := h.recommendationService.RecommendExercises(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"UID":           uid,
		"exercise_plan": plan,
	})
}
