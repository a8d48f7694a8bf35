package services

import (
	"context"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"github.com/anonto42/nano-dating/backend/internal/pagination"
	"github.com/anonto42/nano-dating/backend/internal/projection"
)

// MessageService serves message containers and threads
type MessageService struct {
	store *Store
	now   Clock
}

// NewMessageService creates a new MessageService
func NewMessageService(store *Store, now Clock) *MessageService {
	return &MessageService{store: store, now: now}
}

// GetMessage returns message id, or nil if it does not exist.
func (s *MessageService) GetMessage(ctx context.Context, id uint) (*models.Message, error) {
	return s.store.Messages.GetMessage(ctx, id)
}

func (s *MessageService) GetMessagesForUser(ctx context.Context, params models.MessageParams) (*pagination.PagedResult[models.MessageToReturn], error) {
	messages, err := s.store.Messages.GetMessagesForUser(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.Map(messages, projection.Message), nil
}

// GetThread returns the conversation between userID and recipientID, newest first.
func (s *MessageService) GetThread(ctx context.Context, userID, recipientID uint) ([]models.MessageToReturn, error) {
	messages, err := s.store.Messages.GetMessageThread(ctx, userID, recipientID)
	if err != nil {
		return nil, err
	}
	return projection.Messages(messages), nil
}

// CreateMessage sends req from senderID.
func (s *MessageService) CreateMessage(ctx context.Context, senderID uint, req models.CreateMessageRequest) (*models.MessageToReturn, error) {
	sender, err := s.store.Users.GetUserByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	recipient, err := s.store.Users.GetUserByID(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if sender == nil || recipient == nil {
		return nil, ErrUserNotFound
	}

	msg := &models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
		MessageSent: s.now(),
	}
	uow := s.store.unitOfWork()
	uow.Add(msg)
	if err := save(ctx, uow); err != nil {
		return nil, err
	}

	msg.Sender = *sender
	msg.Recipient = *recipient
	view := projection.Message(*msg)
	return &view, nil
}

// DeleteMessage hides id from userID. The row is removed once both
// participants have deleted it.
func (s *MessageService) DeleteMessage(ctx context.Context, userID, id uint) error {
	if _, err := s.participantMessage(ctx, userID, id); err != nil {
		return err
	}

	uow := s.store.unitOfWork()
	uow.Stage(s.store.Messages.MarkDeletedBy(id, userID))
	uow.Stage(s.store.Messages.PurgeIfDeletedByBoth(id))
	return save(ctx, uow)
}

// MarkAsRead flags id as read by its recipient.
func (s *MessageService) MarkAsRead(ctx context.Context, userID, id uint) error {
	msg, err := s.participantMessage(ctx, userID, id)
	if err != nil {
		return err
	}
	if msg.RecipientID != userID {
		return ErrNotParticipant
	}
	if msg.IsRead {
		return nil
	}

	uow := s.store.unitOfWork()
	uow.Stage(s.store.Messages.MarkRead(id, s.now()))
	// a concurrent reader may have flagged it first
	_, err = uow.SaveAll(ctx)
	return err
}

func (s *MessageService) participantMessage(ctx context.Context, userID, id uint) (*models.Message, error) {
	msg, err := s.store.Messages.GetMessage(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	if msg.SenderID != userID && msg.RecipientID != userID {
		return nil, ErrNotParticipant
	}
	return msg, nil
}
