package api

import (
	"net/http"

	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler onto the router. Route paths match
// what the mobile client already calls, so no versioned prefix.
func SetupRoutes(
	router *gin.Engine,
	recommendationService service.RecommendationService,
	chatService service.ChatService,
	planService service.PlanService,
	progressService service.ProgressService,
	reviewService service.ReviewService,
) {
	recommendationHandler := NewRecommendationHandler(recommendationService)
	chatHandler := NewChatHandler(chatService)
	planHandler := NewPlanHandler(planService)
	progressHandler := NewProgressHandler(progressService)
	reviewHandler := NewReviewHandler(reviewService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/recommend_meal/:uid", recommendationHandler.RecommendMeal)
	router.GET("/recommend_exercise/:uid", recommendationHandler.RecommendExercise)

	router.POST("/save_chat/", chatHandler.SaveChat)
	router.GET("/load_chat/:uid", chatHandler.LoadChat)
	router.GET("/get_conversation_id/:uid", chatHandler.GetConversationID)

	router.POST("/save_exercise_plan/:uid", planHandler.SavePlan)
	router.GET("/get_exercise_status/:uid", planHandler.GetExerciseStatus)
	router.GET("/get_progress/:uid", planHandler.GetProgress)

	router.GET("/reviews", reviewHandler.ListReviews)
	router.POST("/reviews", reviewHandler.CreateReview)

	router.POST("/log_calories/:uid", progressHandler.LogCalories)
	router.GET("/estimate_goal_duration/:uid", progressHandler.EstimateGoalDuration)
}
