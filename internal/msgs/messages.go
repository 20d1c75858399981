package msgs

const (
	MsgOperationSuccessful = "operation successful"
	MsgOperationFailed     = "operation failed"
	MsgYouMustLoginFirst   = "you must login first"

	MsgUserCreatedSuccessfully    = "user created successfully"
	MsgProfileUpdatedSuccessfully = "profile updated successfully"
	MsgUserFollowed               = "user followed"
	MsgUserUnfollowed             = "user unfollowed"

	MsgPostCreatedSuccessfully = "post created successfully"
	MsgPostUpdatedSuccessfully = "post updated successfully"
	MsgPostDeletedSuccessfully = "post deleted successfully"
	MsgPostLiked               = "post liked"
	MsgPostUnliked             = "post unliked"
	MsgCommentAdded            = "comment added successfully"

	MsgConversationAlreadyExists = "conversation already exists"
	MsgConversationCreated       = "conversation created successfully"
	MsgMessageSent               = "message sent successfully"
	MsgMessageUpdated            = "message updated successfully"
	MsgMessageDeleted            = "message deleted successfully"
	MsgMessageMarkedAsRead       = "message marked as read"

	MsgImageGenerated = "image generated successfully"
	MsgPromptIsValid  = "prompt is valid"
)
