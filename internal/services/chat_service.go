package services

import (
	"github.com/kruti2924/SocialMediaApp/internal/enums"
	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/repositories"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
	"github.com/kruti2924/SocialMediaApp/internal/validators"
)

type ChatService struct {
	chatRepo *repositories.ChatRepository
}

func NewChatService(chatRepo *repositories.ChatRepository) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
	}
}

// CreateOrGetConversation resolves the effective participant set as the
// requester plus the requested participants, deduplicated. For a
// two-member non-group set an existing conversation between the pair is
// returned unchanged instead of raising a duplicate error.
func (cs *ChatService) CreateOrGetConversation(requesterID uint, body *models.CreateConversationRequestBody) (*models.ConversationResponse, bool, []error) {
	var errors []error

	if len(body.Participants) == 0 {
		errors = append(errors, errs.ErrParticipantsRequired)
		return nil, false, errors
	}

	participantIds := utils.DedupIDs(append([]uint{requesterID}, body.Participants...))

	if !body.IsGroup && len(participantIds) == 2 {
		existingID, findErrs := cs.chatRepo.FindDirectConversation(participantIds[0], participantIds[1])
		if len(findErrs) > 0 {
			return nil, false, findErrs
		}
		if existingID != 0 {
			conversation, getErrs := cs.chatRepo.GetConversationById(existingID, requesterID)
			if len(getErrs) > 0 {
				return nil, false, getErrs
			}
			return conversation, false, nil
		}
	}

	conversation, createErrs := cs.chatRepo.CreateConversation(participantIds, body)
	if len(createErrs) > 0 {
		return nil, false, createErrs
	}
	return conversation, true, nil
}

func (cs *ChatService) GetUserConversations(userID uint) (*models.ConversationListResponse, []error) {
	return cs.chatRepo.GetUserConversations(userID)
}

// GetConversationMessages checks existence before membership, then
// returns the requested page oldest-first with pagination metadata.
// Storage order is newest-first; the reversal is a presentation
// contract only.
func (cs *ChatService) GetConversationMessages(conversationID, requesterID uint, page, size int) (*models.MessageListResponse, []error) {
	var errors []error

	if !cs.chatRepo.CheckConversationExists(conversationID) {
		errors = append(errors, errs.ErrConversationNotFound)
		return nil, errors
	}
	if !cs.chatRepo.CheckUserInConversation(requesterID, conversationID) {
		errors = append(errors, errs.ErrNotAParticipant)
		return nil, errors
	}

	messages, total, listErrs := cs.chatRepo.GetConversationMessages(conversationID, page, size)
	if len(listErrs) > 0 {
		return nil, listErrs
	}

	utils.Reverse(messages)

	return &models.MessageListResponse{
		Messages:   messages,
		Pagination: models.NewPagination(page, size, total),
	}, nil
}

func (cs *ChatService) SendMessage(senderID uint, body *models.SendMessageRequestBody) (*models.Message, []error) {
	var errors []error

	messageType := body.MessageType
	if messageType == "" {
		messageType = enums.MESSAGE_TYPE_TEXT
	}
	if validationErrs := validators.ValidateMessageContent(body.Content, messageType); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	if !cs.chatRepo.CheckConversationExists(body.ConversationID) {
		errors = append(errors, errs.ErrConversationNotFound)
		return nil, errors
	}
	if !cs.chatRepo.CheckUserInConversation(senderID, body.ConversationID) {
		errors = append(errors, errs.ErrNotAParticipant)
		return nil, errors
	}

	message := &models.Message{
		ConversationID: body.ConversationID,
		SenderID:       senderID,
		Content:        body.Content,
		MessageType:    messageType,
		ReplyToID:      body.ReplyTo,
	}
	for _, attachment := range body.Attachments {
		message.Attachments = append(message.Attachments, models.MessageAttachment{
			URL:      attachment.URL,
			FileName: attachment.FileName,
			FileType: attachment.FileType,
			FileSize: attachment.FileSize,
		})
	}

	return cs.chatRepo.SaveMessage(message)
}

// MarkMessageRead is idempotent: marking twice by the same reader keeps
// exactly one receipt. The missing-message case reports before the
// membership case.
func (cs *ChatService) MarkMessageRead(messageID, readerID uint) []error {
	var errors []error

	message, getErrs := cs.chatRepo.GetMessageById(messageID)
	if len(getErrs) > 0 {
		return getErrs
	}
	if !cs.chatRepo.CheckUserInConversation(readerID, message.ConversationID) {
		errors = append(errors, errs.ErrNotAParticipant)
		return errors
	}

	return cs.chatRepo.MarkMessageRead(messageID, readerID)
}

// EditMessage validates the replacement content before touching the
// message, so bad content answers as a validation failure regardless
// of who asks.
func (cs *ChatService) EditMessage(messageID, editorID uint, content string) (*models.Message, []error) {
	var errors []error

	if validationErrs := validators.ValidateMessageEdit(content); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	message, getErrs := cs.chatRepo.GetMessageById(messageID)
	if len(getErrs) > 0 {
		return nil, getErrs
	}
	if message.SenderID != editorID {
		errors = append(errors, errs.ErrNotMessageSender)
		return nil, errors
	}

	message.Content = content
	return cs.chatRepo.UpdateMessage(message)
}

func (cs *ChatService) DeleteMessage(messageID, requesterID uint) []error {
	var errors []error

	message, getErrs := cs.chatRepo.GetMessageById(messageID)
	if len(getErrs) > 0 {
		return getErrs
	}
	if message.SenderID != requesterID {
		errors = append(errors, errs.ErrNotMessageSender)
		return errors
	}

	return cs.chatRepo.DeleteMessage(messageID)
}

func (cs *ChatService) SeenMessages(messageIds []uint, seenerId uint) []error {
	return cs.chatRepo.SeenMessages(messageIds, seenerId)
}

func (cs *ChatService) CheckConversationExists(conversationID uint) bool {
	return cs.chatRepo.CheckConversationExists(conversationID)
}

func (cs *ChatService) CheckUserInConversation(userID, conversationID uint) bool {
	return cs.chatRepo.CheckUserInConversation(userID, conversationID)
}
