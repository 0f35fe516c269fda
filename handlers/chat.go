package handlers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"travel-assistant/agent"
	"travel-assistant/models"
)

// ChatHandler exposes the conversation presentation boundary over HTTP.
// Conversations live in memory for the duration of one UI session and
// are discarded on delete; no history is persisted across sessions.
type ChatHandler struct {
	llm     llms.Model
	gateway agent.Gateway

	mu            sync.RWMutex
	conversations map[string]*agent.Conversation
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(llm llms.Model, gateway agent.Gateway) *ChatHandler {
	return &ChatHandler{
		llm:           llm,
		gateway:       gateway,
		conversations: make(map[string]*agent.Conversation),
	}
}

func (h *ChatHandler) lookup(c *gin.Context) (*agent.Conversation, bool) {
	id := c.Param("id")
	h.mu.RLock()
	conv, ok := h.conversations[id]
	h.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return nil, false
	}
	return conv, true
}

// StartChat creates a new conversation and returns its greeting.
func (h *ChatHandler) StartChat(c *gin.Context) {
	id := uuid.NewString()
	conv := agent.NewConversation(h.llm, h.gateway)

	h.mu.Lock()
	h.conversations[id] = conv
	h.mu.Unlock()

	c.JSON(http.StatusCreated, models.StartChatResponse{
		ConversationID: id,
		Messages:       conv.Messages(),
	})
}

// SendMessage runs one user turn and returns the messages it appended.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	conv, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	messages, err := conv.SendUserMessage(c.Request.Context(), req.Content)
	if err != nil {
		log.Printf("SendUserMessage failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Messages: messages})
}

// SubmitForm completes the open booking form as a new user turn.
func (h *ChatHandler) SubmitForm(c *gin.Context) {
	conv, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	messages, err := conv.SubmitForm(c.Request.Context(), req)
	if err != nil {
		log.Printf("SubmitForm failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit form"})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Messages: messages})
}

// GetMessages returns the full ordered message sequence.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	conv, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, conv.Messages())
}

// DeleteConversation discards a conversation and its in-memory history.
func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	id := c.Param("id")
	h.mu.Lock()
	_, ok := h.conversations[id]
	delete(h.conversations, id)
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted"})
}
