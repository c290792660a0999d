package api

import (
	"errors"
	"net/http"

	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler holds the progress service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// --- DTOs ---

// LogCaloriesRequest defines the expected JSON for a calorie-burn log.
type LogCaloriesRequest struct {
	CaloriesBurned int    `json:"calories_burned"`
	Week           string `json:"week" binding:"required"`
	Day            string `json:"day" binding:"required"`
}

// --- Handler Methods ---

// LogCalories godoc
// @Summary Log calories burned for a week/day cell
// @Description Adds calories to the matching cell, lazily creating the zero-filled grid for first-time users. Repeated logs accumulate.
// @Tags Progress
// @Accept json
// @Produce json
// @Param uid path string true "User ID"
// @Param log body LogCaloriesRequest true "Burn log"
// @Success 200 {object} gin.H "Log status"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /log_calories/{uid} [post]
func (h *ProgressHandler) LogCalories(c *gin.Context) {
	uid := c.Param("uid")

	var req LogCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err := h.progressService.LogCalories(c.Request.Context(), uid, req.Week, req.Day, req.CaloriesBurned)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Calories logged",
	})
}

// EstimateGoalDuration godoc
// @Summary Project the user's goal completion date
// @Description Estimates when the user reaches their target weight from questionnaire answers and logged progress.
// @Tags Progress
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} service.GoalEstimate "Projected date and message"
// @Failure 400 {object} gin.H "No effective progress yet"
// @Failure 404 {object} gin.H "User or progress not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /estimate_goal_duration/{uid} [get]
func (h *ProgressHandler) EstimateGoalDuration(c *gin.Context) {
	uid := c.Param("uid")

	estimate, err := h.progressService.EstimateGoalDuration(c.Request.Context(), uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrProgressNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoEffectiveProgress), errors.Is(err, service.ErrNoWeeklyProgress):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, estimate)
}
