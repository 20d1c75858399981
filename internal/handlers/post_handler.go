package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/msgs"
)

// GetPosts godoc
// @Summary      List posts
// @Description  Get the feed newest-first with pagination
// @Tags         posts
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  models.Response
// @Router       /api/posts [get]
// @Security     Bearer
func (rh *RestHandler) GetPosts(ctx *gin.Context) {
	page, size := pageAndSize(ctx, 10)

	posts, getErrs := rh.postService.GetPosts(rh.authenticatedUserID(ctx), page, size)
	if len(getErrs) > 0 {
		rh.respondWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    posts,
	})
}

func (rh *RestHandler) GetUserPosts(ctx *gin.Context) {
	authorID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}
	page, size := pageAndSize(ctx, 10)

	posts, getErrs := rh.postService.GetUserPosts(authorID, rh.authenticatedUserID(ctx), page, size)
	if len(getErrs) > 0 {
		rh.respondWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    posts,
	})
}

func (rh *RestHandler) GetPost(ctx *gin.Context) {
	postID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	post, getErrs := rh.postService.GetPost(postID, rh.authenticatedUserID(ctx))
	if len(getErrs) > 0 {
		rh.respondWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    post,
	})
}

func (rh *RestHandler) CreatePost(ctx *gin.Context) {
	var body models.CreatePostRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	post, createErrs := rh.postService.CreatePost(rh.authenticatedUserID(ctx), &body)
	if len(createErrs) > 0 {
		rh.respondWithErrors(ctx, createErrs)
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgPostCreatedSuccessfully,
		Data:    post,
	})
}

// UpdatePost is restricted to the author; anyone else gets 403.
func (rh *RestHandler) UpdatePost(ctx *gin.Context) {
	postID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	var body models.UpdatePostRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	post, updateErrs := rh.postService.UpdatePost(postID, rh.authenticatedUserID(ctx), body.Content)
	if len(updateErrs) > 0 {
		rh.respondWithErrors(ctx, updateErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgPostUpdatedSuccessfully,
		Data:    post,
	})
}

func (rh *RestHandler) DeletePost(ctx *gin.Context) {
	postID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	if deleteErrs := rh.postService.DeletePost(postID, rh.authenticatedUserID(ctx)); len(deleteErrs) > 0 {
		rh.respondWithErrors(ctx, deleteErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgPostDeletedSuccessfully,
	})
}

// LikePost godoc
// @Summary      Like or unlike a post
// @Description  Toggles the caller's like on the post
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "Post id"
// @Success      200  {object}  models.Response
// @Router       /api/posts/{id}/like [post]
// @Security     Bearer
func (rh *RestHandler) LikePost(ctx *gin.Context) {
	postID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	isLiked, likesCount, toggleErrs := rh.postService.ToggleLike(postID, rh.authenticatedUserID(ctx))
	if len(toggleErrs) > 0 {
		rh.respondWithErrors(ctx, toggleErrs)
		return
	}

	message := msgs.MsgPostUnliked
	if isLiked {
		message = msgs.MsgPostLiked
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data: gin.H{
			"isLiked":    isLiked,
			"likesCount": likesCount,
		},
	})
}

func (rh *RestHandler) AddComment(ctx *gin.Context) {
	postID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	var body models.CreateCommentRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	comment, createErrs := rh.postService.AddComment(postID, rh.authenticatedUserID(ctx), body.Content)
	if len(createErrs) > 0 {
		rh.respondWithErrors(ctx, createErrs)
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgCommentAdded,
		Data:    comment,
	})
}

// UploadPostImage stores an image for later attachment to a post.
func (rh *RestHandler) UploadPostImage(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequest})
		return
	}
	defer file.Close()

	url, err := rh.fileManagerService.UploadPostImage(header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    gin.H{"url": url},
	})
}
