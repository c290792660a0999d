package api

import (
	"net/http"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// chatTimestampLayout is how transcript timestamps are rendered for the UI.
const chatTimestampLayout = "2006-01-02 15:04:05"

// ChatHandler holds the chat service dependency.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// --- DTOs ---

// SaveChatRequest defines the expected JSON for saving a chat message.
type SaveChatRequest struct {
	UID            string    `json:"uid" binding:"required"`
	ConversationID string    `json:"conversation_id" binding:"required"`
	Role           string    `json:"role" binding:"required"`
	Text           string    `json:"text" binding:"required"`
	Timestamp      time.Time `json:"timestamp"`
}

// ChatMessageResponse is one transcript entry with a formatted timestamp.
type ChatMessageResponse struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// MapMessagesToResponse converts domain messages to transcript DTOs.
func MapMessagesToResponse(messages []domain.ChatMessage) []ChatMessageResponse {
	responses := make([]ChatMessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = ChatMessageResponse{
			Role:      msg.Role,
			Text:      msg.Text,
			Timestamp: msg.Timestamp.Format(chatTimestampLayout),
		}
	}
	return responses
}

// --- Handler Methods ---

// SaveChat godoc
// @Summary Append a chat message
// @Description Appends a message to the user's conversation, creating it on first use.
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body SaveChatRequest true "Chat message"
// @Success 200 {object} gin.H "Save status"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /save_chat/ [post]
func (h *ChatHandler) SaveChat(c *gin.Context) {
	var req SaveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.chatService.SaveMessage(c.Request.Context(), req.UID, req.ConversationID, req.Role, req.Text, req.Timestamp)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Message saved successfully",
		"created": created,
	})
}

// LoadChat godoc
// @Summary Load a user's chat transcript
// @Description Returns the user's messages sorted ascending by timestamp. Empty list when no conversation exists.
// @Tags Chat
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} gin.H "UID and chat messages"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /load_chat/{uid} [get]
func (h *ChatHandler) LoadChat(c *gin.Context) {
	uid := c.Param("uid")

	messages, err := h.chatService.LoadChat(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uid":           uid,
		"chat_messages": MapMessagesToResponse(messages),
	})
}

// GetConversationID godoc
// @Summary Resolve the user's conversation id
// @Description Returns the existing conversation id, or mints a fresh one. A minted id is not persisted until the first message is saved under it.
// @Tags Chat
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} gin.H "Conversation id"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /get_conversation_id/{uid} [get]
func (h *ChatHandler) GetConversationID(c *gin.Context) {
	uid := c.Param("uid")

	conversationID, err := h.chatService.ConversationID(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversation_id": conversationID})
}
