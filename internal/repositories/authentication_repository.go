package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
)

type AuthenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

func (ar *AuthenticationRepository) CreateUser(user *models.User) (*models.User, []error) {
	var errors []error
	result := ar.db.Create(user)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	return user, nil
}

func (ar *AuthenticationRepository) CheckIfUserExists(email string) *models.User {
	var user models.User
	result := ar.db.Where("email = ?", email).First(&user)
	if result.Error == nil && result.RowsAffected > 0 {
		return &user
	}
	return nil
}

func (ar *AuthenticationRepository) Login(login *models.LoginRequestBody) (*models.User, []error) {
	var errors []error
	user := ar.CheckIfUserExists(login.Email)
	if user == nil {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, login.Password); err != nil {
		errors = append(errors, errs.ErrWrongPassword)
		return nil, errors
	}
	return user, nil
}

// SetOnlineStatus flips the presence flag; going offline also stamps
// last seen. The returned time is nil while the user is online.
func (ar *AuthenticationRepository) SetOnlineStatus(userID uint, isOnline bool) (*time.Time, error) {
	updates := map[string]interface{}{
		"is_online": isOnline,
	}
	var lastSeen *time.Time
	if !isOnline {
		now := time.Now()
		lastSeen = &now
		updates["last_seen"] = &now
	}
	err := ar.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return lastSeen, nil
}
