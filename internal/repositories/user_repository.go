package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (ur *UserRepository) GetUserById(userID uint) (*models.User, []error) {
	var errors []error
	var user models.User
	result := ur.db.Where("id = ?", userID).First(&user)
	if err := result.Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			errors = append(errors, errs.ErrUserNotFound)
		} else {
			errors = append(errors, err)
		}
		return nil, errors
	}
	return &user, nil
}

func (ur *UserRepository) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	var errors []error
	var users []models.User
	var total int64

	transactionErr := ur.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	userResponses := []*models.UserResponse{}
	for _, user := range users {
		userResponses = append(userResponses, user.ToUserResponse())
	}

	return &models.GetUsersResponse{
		Users:      userResponses,
		Pagination: models.NewPagination(page, size, total),
	}, nil
}

func (ur *UserRepository) SearchUsersByUsername(query string, page, size int) (*models.GetUsersResponse, []error) {
	var errors []error
	var users []models.User
	var total int64

	pattern := "%" + query + "%"
	transactionErr := ur.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Where("username ILIKE ?", pattern).
			Order("username ASC").
			Find(&users).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("username ILIKE ?", pattern).Count(&total).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	userResponses := []*models.UserResponse{}
	for _, user := range users {
		userResponses = append(userResponses, user.ToUserResponse())
	}

	return &models.GetUsersResponse{
		Users:      userResponses,
		Pagination: models.NewPagination(page, size, total),
	}, nil
}

func (ur *UserRepository) IsUsernameTaken(username string, excludeUserID uint) bool {
	var count int64
	ur.db.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeUserID).
		Count(&count)
	return count > 0
}

func (ur *UserRepository) UpdateProfile(userID uint, update *models.UpdateProfileRequestBody) (*models.User, []error) {
	var errors []error

	updates := map[string]interface{}{}
	if update.Username != nil {
		updates["username"] = *update.Username
	}
	if update.Bio != nil {
		updates["bio"] = *update.Bio
	}
	if update.ProfilePicture != nil {
		updates["profile_picture"] = *update.ProfilePicture
	}

	if len(updates) > 0 {
		if err := ur.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			errors = append(errors, err)
			return nil, errors
		}
	}

	return ur.GetUserById(userID)
}

// ToggleFollow removes the edge when present, inserts it otherwise.
// The unique index plus the conflict-free insert make the toggle safe
// against a concurrent double-toggle by the same actor.
func (ur *UserRepository) ToggleFollow(followerID, followeeID uint) (bool, []error) {
	var errors []error
	var isFollowing bool

	transactionErr := ur.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Delete(&models.Follow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			isFollowing = false
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Follow{
			FollowerID: followerID,
			FolloweeID: followeeID,
		}).Error; err != nil {
			return err
		}
		isFollowing = true
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return false, errors
	}

	return isFollowing, nil
}

func (ur *UserRepository) GetFollowers(userID uint, page, size int) (*models.GetUsersResponse, []error) {
	return ur.getFollowEdgeUsers(userID, "followee_id", "follower_id", page, size)
}

func (ur *UserRepository) GetFollowing(userID uint, page, size int) (*models.GetUsersResponse, []error) {
	return ur.getFollowEdgeUsers(userID, "follower_id", "followee_id", page, size)
}

func (ur *UserRepository) getFollowEdgeUsers(userID uint, whereColumn, selectColumn string, page, size int) (*models.GetUsersResponse, []error) {
	var errors []error
	var users []models.User
	var total int64

	subQuery := "SELECT " + selectColumn + " FROM follows WHERE " + whereColumn + " = ?"
	transactionErr := ur.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Where("id IN ("+subQuery+")", userID).
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id IN ("+subQuery+")", userID).Count(&total).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	userResponses := []*models.UserResponse{}
	for _, user := range users {
		userResponses = append(userResponses, user.ToUserResponse())
	}

	return &models.GetUsersResponse{
		Users:      userResponses,
		Pagination: models.NewPagination(page, size, total),
	}, nil
}

func (ur *UserRepository) CountFollowers(userID uint) int64 {
	var count int64
	ur.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&count)
	return count
}

func (ur *UserRepository) CountFollowing(userID uint) int64 {
	var count int64
	ur.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count)
	return count
}

func (ur *UserRepository) GetFollowerSummaries(userID uint, limit int) []*models.UserResponse {
	var users []models.User
	ur.db.
		Where("id IN (SELECT follower_id FROM follows WHERE followee_id = ?)", userID).
		Limit(limit).
		Find(&users)
	summaries := []*models.UserResponse{}
	for _, user := range users {
		summaries = append(summaries, user.ToUserResponse())
	}
	return summaries
}

func (ur *UserRepository) GetFollowingSummaries(userID uint, limit int) []*models.UserResponse {
	var users []models.User
	ur.db.
		Where("id IN (SELECT followee_id FROM follows WHERE follower_id = ?)", userID).
		Limit(limit).
		Find(&users)
	summaries := []*models.UserResponse{}
	for _, user := range users {
		summaries = append(summaries, user.ToUserResponse())
	}
	return summaries
}
