package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/repositories"
)

func newMockChatService(t *testing.T) (*ChatService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return NewChatService(repositories.NewChatRepository(db)), mock
}

func expectMessageLookup(mock sqlmock.Sqlmock, messageID, conversationID, senderID uint) {
	mock.ExpectQuery(`SELECT \* FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "message_type"}).
			AddRow(messageID, conversationID, senderID, "original", "text"))
	mock.ExpectQuery(`SELECT \* FROM "message_attachments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "message_reads"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	cs, mock := newMockChatService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversations"`).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversation_participants"`).
		WithArgs(uint(9), uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	message, sendErrs := cs.SendMessage(9, &models.SendMessageRequestBody{
		ConversationID: 7,
		Content:        "hello",
	})
	if message != nil {
		t.Error("expected no message for a non-participant")
	}
	if len(sendErrs) != 1 || sendErrs[0] != errs.ErrNotAParticipant {
		t.Errorf("expected ErrNotAParticipant, got %v", sendErrs)
	}

	// No insert was expected, so meeting all expectations proves
	// nothing was written.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSendMessageMissingConversation(t *testing.T) {
	cs, mock := newMockChatService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversations"`).
		WithArgs(uint(99)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, sendErrs := cs.SendMessage(3, &models.SendMessageRequestBody{
		ConversationID: 99,
		Content:        "hello",
	})
	if len(sendErrs) != 1 || sendErrs[0] != errs.ErrConversationNotFound {
		t.Errorf("expected ErrConversationNotFound, got %v", sendErrs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEditMessageRejectsNonSender(t *testing.T) {
	cs, mock := newMockChatService(t)

	expectMessageLookup(mock, 11, 7, 1)

	message, editErrs := cs.EditMessage(11, 2, "changed")
	if message != nil {
		t.Error("expected no message back for a non-sender")
	}
	if len(editErrs) != 1 || editErrs[0] != errs.ErrNotMessageSender {
		t.Errorf("expected ErrNotMessageSender, got %v", editErrs)
	}

	// Only the lookup queries were expected; the message was never
	// updated.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEditMessageRejectsEmptyContentBeforeSenderCheck(t *testing.T) {
	cs, mock := newMockChatService(t)

	// No expectations at all: empty content fails validation before
	// the message is even looked up, whoever the editor is.
	_, editErrs := cs.EditMessage(11, 2, "")
	if len(editErrs) != 1 || editErrs[0] != errs.ErrEmptyMessageContent {
		t.Errorf("expected ErrEmptyMessageContent, got %v", editErrs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteMessageRejectsNonSender(t *testing.T) {
	cs, mock := newMockChatService(t)

	expectMessageLookup(mock, 11, 7, 1)

	deleteErrs := cs.DeleteMessage(11, 2)
	if len(deleteErrs) != 1 || deleteErrs[0] != errs.ErrNotMessageSender {
		t.Errorf("expected ErrNotMessageSender, got %v", deleteErrs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkMessageReadReportsMissingMessageFirst(t *testing.T) {
	cs, mock := newMockChatService(t)

	mock.ExpectQuery(`SELECT \* FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	readErrs := cs.MarkMessageRead(99, 3)
	if len(readErrs) != 1 || readErrs[0] != errs.ErrMessageNotFound {
		t.Errorf("expected ErrMessageNotFound, got %v", readErrs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetConversationMessagesReturnsOldestFirst(t *testing.T) {
	cs, mock := newMockChatService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversations"`).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversation_participants"`).
		WithArgs(uint(3), uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// Page 1 of size 2 over three stored messages: storage hands back
	// the two newest, newest-first.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "message_type"}).
			AddRow(3, 7, 1, "third", "text").
			AddRow(2, 7, 2, "second", "text"))
	mock.ExpectQuery(`SELECT \* FROM "message_attachments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "message_reads"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectCommit()

	response, listErrs := cs.GetConversationMessages(7, 3, 1, 2)
	if len(listErrs) > 0 {
		t.Fatalf("expected success, got %v", listErrs)
	}

	if len(response.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(response.Messages))
	}
	if response.Messages[0].ID != 2 || response.Messages[1].ID != 3 {
		t.Errorf("expected oldest-first order [2 3], got [%d %d]",
			response.Messages[0].ID, response.Messages[1].ID)
	}

	if response.Pagination.CurrentPage != 1 {
		t.Errorf("expected current page 1, got %d", response.Pagination.CurrentPage)
	}
	if response.Pagination.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", response.Pagination.TotalPages)
	}
	if !response.Pagination.HasNext || response.Pagination.HasPrev {
		t.Errorf("expected hasNext without hasPrev, got next=%v prev=%v",
			response.Pagination.HasNext, response.Pagination.HasPrev)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
