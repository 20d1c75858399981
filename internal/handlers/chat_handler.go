package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/msgs"
)

// GetUserConversations godoc
// @Summary      List conversations
// @Description  Get the caller's conversations, most recent activity first
// @Tags         messages
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /api/messages/conversations [get]
// @Security     Bearer
func (rh *RestHandler) GetUserConversations(ctx *gin.Context) {
	conversations, getErrs := rh.chatService.GetUserConversations(rh.authenticatedUserID(ctx))
	if len(getErrs) > 0 {
		rh.respondWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversations,
	})
}

// CreateConversation answers 201 for a freshly created conversation and
// 200 when an existing direct conversation between the pair is reused.
func (rh *RestHandler) CreateConversation(ctx *gin.Context) {
	var body models.CreateConversationRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	conversation, created, createErrs := rh.chatService.CreateOrGetConversation(rh.authenticatedUserID(ctx), &body)
	if len(createErrs) > 0 {
		rh.respondWithErrors(ctx, createErrs)
		return
	}

	status := http.StatusOK
	message := msgs.MsgConversationAlreadyExists
	if created {
		status = http.StatusCreated
		message = msgs.MsgConversationCreated
	}

	ctx.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    conversation,
	})
}

// GetConversationMessages godoc
// @Summary      Page through a conversation
// @Description  Returns messages oldest-first within the requested page
// @Tags         messages
// @Produce      json
// @Param        id     path   int  true   "Conversation id"
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  models.Response
// @Router       /api/messages/{id} [get]
// @Security     Bearer
func (rh *RestHandler) GetConversationMessages(ctx *gin.Context) {
	conversationID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidConversationId})
		return
	}
	page, size := pageAndSize(ctx, 50)

	messages, getErrs := rh.chatService.GetConversationMessages(conversationID, rh.authenticatedUserID(ctx), page, size)
	if len(getErrs) > 0 {
		rh.respondWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    messages,
	})
}

func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	var body models.SendMessageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	message, sendErrs := rh.chatService.SendMessage(rh.authenticatedUserID(ctx), &body)
	if len(sendErrs) > 0 {
		rh.respondWithErrors(ctx, sendErrs)
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgMessageSent,
		Data:    message,
	})
}

func (rh *RestHandler) MarkMessageRead(ctx *gin.Context) {
	messageID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	if readErrs := rh.chatService.MarkMessageRead(messageID, rh.authenticatedUserID(ctx)); len(readErrs) > 0 {
		rh.respondWithErrors(ctx, readErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageMarkedAsRead,
	})
}

func (rh *RestHandler) EditMessage(ctx *gin.Context) {
	messageID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	var body models.EditMessageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	message, editErrs := rh.chatService.EditMessage(messageID, rh.authenticatedUserID(ctx), body.Content)
	if len(editErrs) > 0 {
		rh.respondWithErrors(ctx, editErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageUpdated,
		Data:    message,
	})
}

func (rh *RestHandler) DeleteMessage(ctx *gin.Context) {
	messageID, err := uintParam(ctx, "id")
	if err != nil {
		rh.respondWithErrors(ctx, []error{err})
		return
	}

	if deleteErrs := rh.chatService.DeleteMessage(messageID, rh.authenticatedUserID(ctx)); len(deleteErrs) > 0 {
		rh.respondWithErrors(ctx, deleteErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageDeleted,
	})
}
