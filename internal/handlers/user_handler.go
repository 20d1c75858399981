package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/msgs"
)

// GetAllUsers godoc
// @Summary      List users
// @Description  Get all users with pagination
// @Tags         users
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  models.Response
// @Router       /api/users [get]
// @Security     Bearer
func (rh *RestHandler) GetAllUsers(ctx *gin.Context) {
	page, size := pageAndSize(ctx, 10)

	users, getErrs := rh.userService.GetAllUsersWithPagination(page, size)
	if len(getErrs) > 0 {
		rh.respondWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    users,
	})
}

func (rh *RestHandler) SearchUsers(ctx *gin.Context) {
	query := ctx.Param("query")
	if query == "" {
		query = ctx.Query("q")
	}
	if query == "" {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}
	page, size := pageAndSize(ctx, 10)

	users, searchErrs := rh.userService.SearchUsers(query, page, size)
	if len(searchErrs) > 0 {
		rh.respondWithErrors(ctx, searchErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    users,
	})
}

// GetSingleUser returns the public profile with post count and
// follower/following summaries.
func (rh *RestHandler) GetSingleUser(ctx *gin.Context) {
	userID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	profile, getErrs := rh.userService.GetUserProfile(userID)
	if len(getErrs) > 0 {
		rh.respondWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    profile,
	})
}

func (rh *RestHandler) UpdateProfile(ctx *gin.Context) {
	userID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	var update models.UpdateProfileRequestBody
	if err := ctx.BindJSON(&update); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	user, updateErrs := rh.userService.UpdateProfile(userID, rh.authenticatedUserID(ctx), &update)
	if len(updateErrs) > 0 {
		rh.respondWithErrors(ctx, updateErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgProfileUpdatedSuccessfully,
		Data:    user,
	})
}

// FollowUser godoc
// @Summary      Follow or unfollow a user
// @Description  Toggles the follow edge toward the target user
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "Target user id"
// @Success      200  {object}  models.Response
// @Router       /api/users/{id}/follow [post]
// @Security     Bearer
func (rh *RestHandler) FollowUser(ctx *gin.Context) {
	targetID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	isFollowing, followersCount, followingCount, toggleErrs :=
		rh.userService.ToggleFollow(rh.authenticatedUserID(ctx), targetID)
	if len(toggleErrs) > 0 {
		rh.respondWithErrors(ctx, toggleErrs)
		return
	}

	message := msgs.MsgUserUnfollowed
	if isFollowing {
		message = msgs.MsgUserFollowed
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data: gin.H{
			"isFollowing":    isFollowing,
			"followersCount": followersCount,
			"followingCount": followingCount,
		},
	})
}

func (rh *RestHandler) GetFollowers(ctx *gin.Context) {
	userID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}
	page, size := pageAndSize(ctx, 10)

	followers, getErrs := rh.userService.GetFollowers(userID, page, size)
	if len(getErrs) > 0 {
		rh.respondWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    followers,
	})
}

func (rh *RestHandler) GetFollowing(ctx *gin.Context) {
	userID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}
	page, size := pageAndSize(ctx, 10)

	following, getErrs := rh.userService.GetFollowing(userID, page, size)
	if len(getErrs) > 0 {
		rh.respondWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    following,
	})
}
