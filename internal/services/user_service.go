package services

import (
	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/repositories"
	"github.com/kruti2924/SocialMediaApp/internal/validators"
)

const profileSummaryLimit = 20

type UserService struct {
	userRepo *repositories.UserRepository
	postRepo *repositories.PostRepository
}

func NewUserService(userRepo *repositories.UserRepository, postRepo *repositories.PostRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (us *UserService) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	return us.userRepo.GetAllUsersWithPagination(page, size)
}

func (us *UserService) SearchUsers(query string, page, size int) (*models.GetUsersResponse, []error) {
	return us.userRepo.SearchUsersByUsername(query, page, size)
}

func (us *UserService) GetUserProfile(userID uint) (*models.ProfileResponse, []error) {
	user, getErrs := us.userRepo.GetUserById(userID)
	if len(getErrs) > 0 {
		return nil, getErrs
	}

	postsCount := us.postRepo.CountPostsByAuthor(userID)
	followers := us.userRepo.GetFollowerSummaries(userID, profileSummaryLimit)
	following := us.userRepo.GetFollowingSummaries(userID, profileSummaryLimit)

	return user.ToProfileResponse(postsCount, followers, following), nil
}

func (us *UserService) UpdateProfile(userID, requesterID uint, update *models.UpdateProfileRequestBody) (*models.UserResponse, []error) {
	var errors []error

	if userID != requesterID {
		errors = append(errors, errs.ErrUnauthorized)
		return nil, errors
	}

	if validationErrs := validators.ValidateProfileUpdate(update); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	if update.Username != nil && us.userRepo.IsUsernameTaken(*update.Username, userID) {
		errors = append(errors, errs.ErrUsernameAlreadyTaken)
		return nil, errors
	}

	user, updateErrs := us.userRepo.UpdateProfile(userID, update)
	if len(updateErrs) > 0 {
		return nil, updateErrs
	}
	return user.ToUserResponse(), nil
}

// ToggleFollow follows when no edge exists and unfollows otherwise,
// returning the resulting state plus fresh counts.
func (us *UserService) ToggleFollow(followerID, targetID uint) (bool, int64, int64, []error) {
	var errors []error

	if followerID == targetID {
		errors = append(errors, errs.ErrCannotFollowSelf)
		return false, 0, 0, errors
	}

	if _, getErrs := us.userRepo.GetUserById(targetID); len(getErrs) > 0 {
		return false, 0, 0, getErrs
	}

	isFollowing, toggleErrs := us.userRepo.ToggleFollow(followerID, targetID)
	if len(toggleErrs) > 0 {
		return false, 0, 0, toggleErrs
	}

	followersCount := us.userRepo.CountFollowers(targetID)
	followingCount := us.userRepo.CountFollowing(followerID)
	return isFollowing, followersCount, followingCount, nil
}

func (us *UserService) GetFollowers(userID uint, page, size int) (*models.GetUsersResponse, []error) {
	if _, getErrs := us.userRepo.GetUserById(userID); len(getErrs) > 0 {
		return nil, getErrs
	}
	return us.userRepo.GetFollowers(userID, page, size)
}

func (us *UserService) GetFollowing(userID uint, page, size int) (*models.GetUsersResponse, []error) {
	if _, getErrs := us.userRepo.GetUserById(userID); len(getErrs) > 0 {
		return nil, getErrs
	}
	return us.userRepo.GetFollowing(userID, page, size)
}
