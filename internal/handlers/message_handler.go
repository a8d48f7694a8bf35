package handlers

import (
	"net/http"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"github.com/anonto42/nano-dating/backend/internal/projection"
	"github.com/anonto42/nano-dating/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// MessageHandler handles direct message HTTP requests
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// RegisterMessageRoutes registers message routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/users/:id/messages", h.GetMessagesForUser)
	g.GET("/users/:id/messages/thread/:recipientId", h.GetMessageThread)
	g.GET("/users/:id/messages/:messageId", h.GetMessage)
	g.POST("/users/:id/messages", h.CreateMessage)
	g.POST("/users/:id/messages/:messageId", h.DeleteMessage)
	g.POST("/users/:id/messages/:messageId/read", h.MarkMessageAsRead)
}

// GetMessagesForUser returns one page of the caller's Inbox, Outbox or Unread container
func (h *MessageHandler) GetMessagesForUser(c echo.Context) error {
	userID, err := authorizedUserID(c)
	if err != nil {
		return err
	}

	params := models.MessageParams{PageParams: models.DefaultPageParams()}
	if err := bindQuery(c, &params); err != nil {
		return err
	}
	params.UserID = userID

	page, err := h.messageService.GetMessagesForUser(c.Request().Context(), params)
	if err != nil {
		return httpError(err)
	}
	return writePage(c, page)
}

func (h *MessageHandler) GetMessageThread(c echo.Context) error {
	userID, err := authorizedUserID(c)
	if err != nil {
		return err
	}
	recipientID, err := parseID(c, "recipientId")
	if err != nil {
		return err
	}

	thread, err := h.messageService.GetThread(c.Request().Context(), userID, recipientID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, thread)
}

func (h *MessageHandler) GetMessage(c echo.Context) error {
	userID, err := authorizedUserID(c)
	if err != nil {
		return err
	}
	messageID, err := parseID(c, "messageId")
	if err != nil {
		return err
	}

	msg, err := h.messageService.GetMessage(c.Request().Context(), messageID)
	if err != nil {
		return httpError(err)
	}
	if msg == nil || (msg.SenderID != userID && msg.RecipientID != userID) {
		return echo.NewHTTPError(http.StatusNotFound, "Message not found")
	}
	return c.JSON(http.StatusOK, projection.Message(*msg))
}

func (h *MessageHandler) CreateMessage(c echo.Context) error {
	userID, err := authorizedUserID(c)
	if err != nil {
		return err
	}

	var req models.CreateMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.messageService.CreateMessage(c.Request().Context(), userID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

// DeleteMessage hides a message from the caller
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	userID, err := authorizedUserID(c)
	if err != nil {
		return err
	}
	messageID, err := parseID(c, "messageId")
	if err != nil {
		return err
	}

	if err := h.messageService.DeleteMessage(c.Request().Context(), userID, messageID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MessageHandler) MarkMessageAsRead(c echo.Context) error {
	userID, err := authorizedUserID(c)
	if err != nil {
		return err
	}
	messageID, err := parseID(c, "messageId")
	if err != nil {
		return err
	}

	if err := h.messageService.MarkAsRead(c.Request().Context(), userID, messageID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
