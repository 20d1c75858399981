package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/msgs"
)

// GenerateImage godoc
// @Summary      Generate an image from a prompt
// @Description  Forwards the prompt to the inference provider and returns the image as a data URL
// @Tags         generate
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      503  {object}  models.Response
// @Router       /api/generate/image [post]
// @Security     Bearer
func (rh *RestHandler) GenerateImage(ctx *gin.Context) {
	var body models.GenerateImageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	image, generateErrs := rh.generationService.GenerateImage(&body)
	if len(generateErrs) > 0 {
		rh.respondWithErrors(ctx, generateErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgImageGenerated,
		Data:    image,
	})
}

func (rh *RestHandler) GetGenerationModels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data: gin.H{
			"models": rh.generationService.GetAvailableModels(),
		},
	})
}

// ValidatePrompt checks length and the content filter without touching
// the provider, so clients can pre-validate before paying for a call.
func (rh *RestHandler) ValidatePrompt(ctx *gin.Context) {
	var body models.ValidatePromptRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	result, validateErrs := rh.generationService.ValidatePrompt(body.Prompt)
	if len(validateErrs) > 0 {
		rh.respondWithErrors(ctx, validateErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgPromptIsValid,
		Data:    result,
	})
}
