package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs ---

// FlexString accepts a JSON string or number. The mobile client sends
// Repetition either way ("8-12" vs 10).
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// ExerciseEntryRequest mirrors the document field casing the client uses.
type ExerciseEntryRequest struct {
	Exercises  string     `json:"Exercises"`
	Sets       int        `json:"Sets"`
	Repetition FlexString `json:"Repetition"`
	Completed  bool       `json:"Completed"`
}

// DayPlanRequest is one labeled day of submitted exercises.
type DayPlanRequest struct {
	Day       string                 `json:"day" binding:"required"`
	Exercises []ExerciseEntryRequest `json:"exercises"`
}

// WeekPlanRequest is one labeled week of submitted days.
type WeekPlanRequest struct {
	Week string           `json:"week" binding:"required"`
	Days []DayPlanRequest `json:"days"`
}

// SavePlanRequest defines the expected JSON for saving an exercise plan.
type SavePlanRequest struct {
	ExercisePlan []WeekPlanRequest `json:"exercise_plan" binding:"required"`
}

func mapRequestToWeeks(req []WeekPlanRequest) []domain.WeekPlan {
	weeks := make([]domain.WeekPlan, 0, len(req))
	for _, w := range req {
		days := make([]domain.DayPlan, 0, len(w.Days))
		for _, d := range w.Days {
			entries := make([]domain.ExerciseEntry, 0, len(d.Exercises))
			for _, e := range d.Exercises {
				entries = append(entries, domain.ExerciseEntry{
					Name:       e.Exercises,
					Sets:       e.Sets,
					Repetition: string(e.Repetition),
					Completed:  e.Completed,
				})
			}
			days = append(days, domain.DayPlan{Day: d.Day, Exercises: entries})
		}
		weeks = append(weeks, domain.WeekPlan{Week: w.Week, Days: days})
	}
	return weeks
}

// --- Handler Methods ---

// SavePlan godoc
// @Summary Save a user's exercise plan
// @Description Recomputes calories-burned for every entry from the questionnaire weight and replaces the stored plan.
// @Tags Plans
// @Accept json
// @Produce json
// @Param uid path string true "User ID"
// @Param plan body SavePlanRequest true "Exercise plan"
// @Success 200 {object} gin.H "Save status"
// @Failure 400 {object} gin.H "Malformed exercise entry"
// @Failure 404 {object} gin.H "User questionnaire not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /save_exercise_plan/{uid} [post]
func (h *PlanHandler) SavePlan(c *gin.Context) {
	uid := c.Param("uid")

	var req SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err := h.planService.SavePlan(c.Request.Context(), uid, mapRequestToWeeks(req.ExercisePlan))
	if err != nil {
		var malformed *service.MalformedEntryError
		switch {
		case errors.Is(err, service.ErrQuestionnaireNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.As(err, &malformed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetExerciseStatus godoc
// @Summary Get a user's stored exercise plan
// @Tags Plans
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} gin.H "Stored plan"
// @Failure 404 {object} gin.H "Exercise plan not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /get_exercise_status/{uid} [get]
func (h *PlanHandler) GetExerciseStatus(c *gin.Context) {
	uid := c.Param("uid")

	plan, err := h.planService.GetStatus(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercise_plan": plan.Weeks})
}

// GetProgress godoc
// @Summary Get a user's completed-exercise summary
// @Description Flattens completed entries with nonzero calories. A missing plan yields an empty list, not 404.
// @Tags Plans
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} gin.H "Progress rows"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /get_progress/{uid} [get]
func (h *PlanHandler) GetProgress(c *gin.Context) {
	uid := c.Param("uid")

	progress, err := h.planService.GetProgress(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
