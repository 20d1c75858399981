package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
	}
}

// CreateConversation persists a conversation and its participant rows in
// one transaction. Participant ids must already be deduplicated.
func (chr *ChatRepository) CreateConversation(participantIds []uint, conversationData *models.CreateConversationRequestBody) (*models.ConversationResponse, []error) {
	var errors []error

	conversation := models.Conversation{
		IsGroup:      conversationData.IsGroup,
		LastActivity: time.Now(),
	}
	if conversationData.IsGroup {
		conversation.GroupName = conversationData.GroupName
		conversation.GroupDescription = conversationData.GroupDescription
		conversation.GroupImage = conversationData.GroupImage
	}

	err := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conversation).Error; err != nil {
			return err
		}

		for _, userId := range participantIds {
			err := tx.Create(&models.ConversationParticipant{
				ConversationID: conversation.ID,
				UserID:         userId,
				JoinedAt:       time.Now(),
			}).Error

			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return chr.GetConversationById(conversation.ID, 0)
}

// FindDirectConversation returns the id of the existing non-group
// conversation between two users, or 0 when none exists. Non-group
// conversations hold exactly two participants, so matching both members
// is an exact set match.
func (chr *ChatRepository) FindDirectConversation(userID1, userID2 uint) (uint, []error) {
	var errors []error
	var conversationID uint

	err := chr.db.Table("conversations AS c").
		Select("c.id").
		Joins("INNER JOIN conversation_participants AS cp1 ON cp1.conversation_id = c.id AND cp1.user_id = ?", userID1).
		Joins("INNER JOIN conversation_participants AS cp2 ON cp2.conversation_id = c.id AND cp2.user_id = ?", userID2).
		Where("c.is_group = ? AND c.deleted_at IS NULL", false).
		Limit(1).
		Scan(&conversationID).Error

	if err != nil {
		errors = append(errors, err)
		return 0, errors
	}

	return conversationID, nil
}

func (chr *ChatRepository) GetUserConversations(userID uint) (*models.ConversationListResponse, []error) {
	var errors []error
	var conversations []models.Conversation

	if err := chr.db.
		Preload("Participants").
		Where("id IN (SELECT conversation_id FROM conversation_participants WHERE user_id = ?)", userID).
		Order("last_activity DESC").
		Find(&conversations).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	conversationResponses := []models.ConversationResponse{}
	for _, conversation := range conversations {
		lastMessage, _ := chr.GetConversationLastMessage(conversation.ID)
		unread, err := chr.GetConversationUnreadCount(conversation.ID, userID)
		if err != nil {
			errors = append(errors, err)
			return nil, errors
		}
		conversationResponses = append(conversationResponses, conversation.ToConversationResponse(lastMessage, unread))
	}

	return &models.ConversationListResponse{
		Conversations: conversationResponses,
	}, nil
}

func (chr *ChatRepository) GetConversationById(conversationID, forUserID uint) (*models.ConversationResponse, []error) {
	var errors []error
	var conversation models.Conversation

	result := chr.db.
		Preload("Participants").
		Where("id = ?", conversationID).
		First(&conversation)

	if err := result.Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			errors = append(errors, errs.ErrConversationNotFound)
		} else {
			errors = append(errors, err)
		}
		return nil, errors
	}

	lastMessage, _ := chr.GetConversationLastMessage(conversation.ID)
	var unread int64
	if forUserID != 0 {
		unread, _ = chr.GetConversationUnreadCount(conversation.ID, forUserID)
	}
	conversationResponse := conversation.ToConversationResponse(lastMessage, unread)

	return &conversationResponse, nil
}

func (chr *ChatRepository) CheckConversationExists(conversationID uint) bool {
	var count int64
	chr.db.Model(&models.Conversation{}).Where("id = ?", conversationID).Count(&count)
	return count > 0
}

func (chr *ChatRepository) CheckUserInConversation(userID, conversationID uint) bool {
	var count int64
	chr.db.Model(&models.ConversationParticipant{}).Where("user_id = ? AND conversation_id = ?", userID, conversationID).Count(&count)
	return count > 0
}

func (chr *ChatRepository) GetConversationLastMessage(conversationID uint) (*models.Message, error) {
	var message models.Message
	if err := chr.db.
		Preload("Attachments").
		Where("conversation_id = ?", conversationID).
		Last(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (chr *ChatRepository) GetConversationUnreadCount(conversationID, userID uint) (int64, error) {
	var count int64
	result := chr.db.Raw(
		"SELECT COUNT(*) FROM messages m WHERE m.conversation_id = ? AND m.sender_id <> ? AND m.deleted_at IS NULL "+
			"AND NOT EXISTS (SELECT 1 FROM message_reads r WHERE r.message_id = m.id AND r.user_id = ?)",
		conversationID,
		userID,
		userID,
	).Scan(&count)

	if err := result.Error; err != nil {
		return 0, err
	}

	return count, nil
}

// GetConversationMessages returns one page of messages newest-first,
// exactly as stored. The oldest-first delivery order is a presentation
// concern handled by the service.
func (chr *ChatRepository) GetConversationMessages(conversationID uint, page, size int) ([]models.Message, int64, []error) {
	var errors []error
	var messages []models.Message
	var total int64

	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Preload("Attachments").
			Preload("Reads").
			Where("conversation_id = ?", conversationID).
			Order("created_at DESC").
			Find(&messages).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Message{}).
			Where("conversation_id = ?", conversationID).
			Count(&total).Error; err != nil {
			return err
		}

		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, 0, errors
	}

	return messages, total, nil
}

// SaveMessage appends the message and refreshes the conversation's
// last-message pointer and last-activity stamp in a single transaction,
// so a crash cannot leave the pointer behind the ledger.
func (chr *ChatRepository) SaveMessage(message *models.Message) (*models.Message, []error) {
	var errors []error
	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Conversation{}).
			Where("id = ?", message.ConversationID).
			Updates(map[string]interface{}{
				"last_message_id": message.ID,
				"last_activity":   time.Now(),
			}).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}
	return message, nil
}

func (chr *ChatRepository) GetMessageById(messageID uint) (*models.Message, []error) {
	var errors []error
	var message models.Message

	result := chr.db.
		Preload("Attachments").
		Preload("Reads").
		Where("id = ?", messageID).
		First(&message)

	if err := result.Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			errors = append(errors, errs.ErrMessageNotFound)
		} else {
			errors = append(errors, err)
		}
		return nil, errors
	}

	return &message, nil
}

// MarkMessageRead records a read receipt. The insert is conflict-free:
// an existing receipt for the same reader leaves the row untouched and
// reports no error.
func (chr *ChatRepository) MarkMessageRead(messageID, readerID uint) []error {
	var errors []error
	err := chr.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.MessageRead{
			MessageID: messageID,
			UserID:    readerID,
			ReadAt:    time.Now(),
		}).Error
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

// SeenMessages marks a batch of messages read for one user, skipping
// messages that user sent. Used by the socket seen event.
func (chr *ChatRepository) SeenMessages(messageIds []uint, seenerId uint) []error {
	var errors []error
	var ids []uint

	if err := chr.db.Model(&models.Message{}).
		Where("id IN ? AND sender_id <> ?", messageIds, seenerId).
		Pluck("id", &ids).Error; err != nil {
		errors = append(errors, err)
		return errors
	}

	for _, id := range ids {
		if errs := chr.MarkMessageRead(id, seenerId); len(errs) > 0 {
			return errs
		}
	}
	return nil
}

func (chr *ChatRepository) UpdateMessage(message *models.Message) (*models.Message, []error) {
	var errors []error
	err := chr.db.Model(&models.Message{}).
		Where("id = ?", message.ID).
		Updates(map[string]interface{}{
			"content":   message.Content,
			"is_edited": true,
		}).Error
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	message.IsEdited = true
	return message, nil
}

// DeleteMessage removes the message permanently, together with its
// attachments and read receipts. The conversation's last-message pointer
// is deliberately left alone.
func (chr *ChatRepository) DeleteMessage(messageID uint) []error {
	var errors []error
	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("message_id = ?", messageID).Delete(&models.MessageAttachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("message_id = ?", messageID).Delete(&models.MessageRead{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("id = ?", messageID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return errors
	}
	return nil
}
