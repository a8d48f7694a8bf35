package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"github.com/anonto42/nano-dating/backend/internal/pagination"
	"gorm.io/gorm"
)

var messagePreloads = []string{"Sender.Photos", "Recipient.Photos"}

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	GetMessage(ctx context.Context, id uint) (*models.Message, error)
	GetMessagesForUser(ctx context.Context, params models.MessageParams) (*pagination.PagedResult[models.Message], error)
	GetMessageThread(ctx context.Context, userID, recipientID uint) ([]models.Message, error)
	MarkDeletedBy(id, userID uint) Op
	PurgeIfDeletedByBoth(id uint) Op
	MarkRead(id uint, at time.Time) Op
}

// PostgresMessageRepository implements MessageRepository for PostgreSQL
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// GetMessage retrieves a message with both participants and their photos. A missing message yields (nil, nil).
func (r *PostgresMessageRepository) GetMessage(ctx context.Context, id uint) (*models.Message, error) {
	query := r.db.WithContext(ctx)
	for _, p := range messagePreloads {
		query = query.Preload(p)
	}
	msg, err := findOne[models.Message](query.Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get message %d: %w", id, err)
	}
	return msg, nil
}

// GetMessagesForUser pages through one container of the user's messages, newest first.
func (r *PostgresMessageRepository) GetMessagesForUser(ctx context.Context, params models.MessageParams) (*pagination.PagedResult[models.Message], error) {
	page, err := pagination.Paginate[models.Message](ctx, r.db, params.PageNumber, params.PageSize, pagination.Query{
		Filters:  []pagination.Scope{inContainer(params.UserID, params.MessageContainer)},
		Order:    []string{"message_sent DESC", "id DESC"},
		Preloads: messagePreloads,
	}, snapshotOptions(r.db)...)
	if err != nil {
		return nil, fmt.Errorf("get %s messages of user %d: %w", params.MessageContainer, params.UserID, err)
	}
	return page, nil
}

// GetMessageThread returns the whole conversation between userID and
// recipientID as userID sees it, newest first.
func (r *PostgresMessageRepository) GetMessageThread(ctx context.Context, userID, recipientID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Preload(messagePreloads[0]).
		Preload(messagePreloads[1]).
		Where("(recipient_id = ? AND sender_id = ? AND recipient_deleted = ?) OR (recipient_id = ? AND sender_id = ? AND sender_deleted = ?)",
			userID, recipientID, false, recipientID, userID, false).
		Order("message_sent DESC").
		Order("id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("get thread %d<->%d: %w", userID, recipientID, err)
	}
	return messages, nil
}

// inContainer selects Inbox, Outbox, or anything else as Unread.
func inContainer(userID uint, container string) pagination.Scope {
	return func(db *gorm.DB) *gorm.DB {
		switch container {
		case models.ContainerInbox:
			return db.Where("recipient_id = ? AND recipient_deleted = ?", userID, false)
		case models.ContainerOutbox:
			return db.Where("sender_id = ? AND sender_deleted = ?", userID, false)
		default:
			return db.Where("recipient_id = ? AND recipient_deleted = ? AND is_read = ?", userID, false, false)
		}
	}
}

// MarkDeletedBy stages setting the delete flag of every side of id that
// userID occupies. Only the flag columns are written.
func (r *PostgresMessageRepository) MarkDeletedBy(id, userID uint) Op {
	return func(tx *gorm.DB) (int64, error) {
		var changed int64
		for _, side := range []struct{ owner, flag string }{
			{"sender_id", "sender_deleted"},
			{"recipient_id", "recipient_deleted"},
		} {
			res := tx.Model(&models.Message{}).
				Where("id = ? AND "+side.owner+" = ?", id, userID).
				Update(side.flag, true)
			if res.Error != nil {
				return changed, res.Error
			}
			changed += res.RowsAffected
		}
		return changed, nil
	}
}

// PurgeIfDeletedByBoth stages removal of id once both flags are set. Stage it
// after MarkDeletedBy so it sees that flag within the same transaction.
func (r *PostgresMessageRepository) PurgeIfDeletedByBoth(id uint) Op {
	return func(tx *gorm.DB) (int64, error) {
		res := tx.Where("id = ? AND sender_deleted = ? AND recipient_deleted = ?", id, true, true).
			Delete(&models.Message{})
		return res.RowsAffected, res.Error
	}
}

// MarkRead stages the unread to read transition of id. An already read
// message is left untouched and reports no change.
func (r *PostgresMessageRepository) MarkRead(id uint, at time.Time) Op {
	return func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&models.Message{}).
			Where("id = ? AND is_read = ?", id, false).
			Updates(map[string]any{"is_read": true, "date_read": at})
		return res.RowsAffected, res.Error
	}
}
