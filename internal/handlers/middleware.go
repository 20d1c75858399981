package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/msgs"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
)

func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		if strings.HasPrefix(jwtToken, "Bearer ") {
			jwtToken = strings.TrimPrefix(jwtToken, "Bearer ")
		}

		if jwtToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  models.ErrorStrings([]error{errs.ErrUnauthorized}),
			})
			return
		}

		claims, err := utils.VerifyToken(jwtToken, utils.GetJwtKey(rh.config))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  models.ErrorStrings([]error{errs.ErrInvalidToken}),
			})
			return
		}

		ctx.Set("user_id", claims.ID)
		ctx.Set("username", claims.Username)
		ctx.Set("user_email", claims.Email)
		ctx.Set("authenticated", true)
		ctx.Next()
	}
}
