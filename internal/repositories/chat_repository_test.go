package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kruti2924/SocialMediaApp/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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
	return db, mock
}

func TestCheckConversationExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversations"`).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	if !repo.CheckConversationExists(7) {
		t.Error("expected conversation 7 to exist")
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversations"`).
		WithArgs(uint(8)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	if repo.CheckConversationExists(8) {
		t.Error("expected conversation 8 to be missing")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCheckUserInConversation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversation_participants"`).
		WithArgs(uint(3), uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	if !repo.CheckUserInConversation(3, 7) {
		t.Error("expected user 3 to be a participant of conversation 7")
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversation_participants"`).
		WithArgs(uint(9), uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	if repo.CheckUserInConversation(9, 7) {
		t.Error("expected user 9 to be outside conversation 7")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindDirectConversation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db)

	mock.ExpectQuery(`SELECT c.id FROM conversations AS c INNER JOIN conversation_participants`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, findErrs := repo.FindDirectConversation(1, 2)
	if len(findErrs) > 0 {
		t.Fatalf("expected success, got %v", findErrs)
	}
	if id != 42 {
		t.Errorf("expected conversation 42, got %d", id)
	}

	mock.ExpectQuery(`SELECT c.id FROM conversations AS c INNER JOIN conversation_participants`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	id, findErrs = repo.FindDirectConversation(1, 5)
	if len(findErrs) > 0 {
		t.Fatalf("expected success, got %v", findErrs)
	}
	if id != 0 {
		t.Errorf("expected no conversation, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveMessageUpdatesConversationPointer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(`UPDATE "conversations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	message := &models.Message{
		ConversationID: 7,
		SenderID:       3,
		Content:        "hello",
		MessageType:    "text",
	}
	saved, saveErrs := repo.SaveMessage(message)
	if len(saveErrs) > 0 {
		t.Fatalf("expected success, got %v", saveErrs)
	}
	if saved.ID != 11 {
		t.Errorf("expected message id 11, got %d", saved.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkMessageReadDoesNothingOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "message_reads" .* ON CONFLICT DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	if readErrs := repo.MarkMessageRead(11, 3); len(readErrs) > 0 {
		t.Fatalf("expected success, got %v", readErrs)
	}

	// Second receipt hits the conflict clause and returns no row
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "message_reads" .* ON CONFLICT DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	if readErrs := repo.MarkMessageRead(11, 3); len(readErrs) > 0 {
		t.Fatalf("expected repeated receipt to be silent, got %v", readErrs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteMessageCascades(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "message_attachments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "message_reads"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "messages"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if deleteErrs := repo.DeleteMessage(11); len(deleteErrs) > 0 {
		t.Fatalf("expected success, got %v", deleteErrs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
