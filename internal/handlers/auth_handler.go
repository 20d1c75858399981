package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/msgs"
)

// Login godoc
// @Summary      Login user to account
// @Description  Authenticate with email and password, returns a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /api/auth/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	if err := ctx.BindJSON(&loginData); err != nil {
		log.Println("Error login data json binding:", err)
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		rh.respondWithErrors(ctx, loginErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

func (rh *RestHandler) Register(ctx *gin.Context) {
	var user models.User
	if err := ctx.BindJSON(&user); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	_, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		rh.respondWithErrors(ctx, registerErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

// UploadProfilePicture stores the uploaded file in object storage and
// returns its public URL.
func (rh *RestHandler) UploadProfilePicture(ctx *gin.Context) {
	userID := rh.authenticatedUserID(ctx)

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequest})
		return
	}
	defer file.Close()

	fileName := fmt.Sprintf("%d_%d%s", userID, time.Now().UnixNano(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")

	url, err := rh.fileManagerService.UploadProfilePicture(fileName, file, header.Size, contentType)
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	updated, updateErrs := rh.userService.UpdateProfile(userID, userID, &models.UpdateProfileRequestBody{
		ProfilePicture: &url,
	})
	if len(updateErrs) > 0 {
		rh.respondWithErrors(ctx, updateErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgProfileUpdatedSuccessfully,
		Data:    updated,
	})
}

func (rh *RestHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
