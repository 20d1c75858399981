package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidRequest     = Error("invalid request")
	ErrInvalidParams      = Error("invalid params")
	ErrInvalidPageOrSize  = Error("invalid page or size")
	ErrInternal           = Error("internal server error")

	ErrUserAlreadyExists    = Error("user already exists")
	ErrUsernameAlreadyTaken = Error("username already taken")
	ErrUserNotFound         = Error("user not found")
	ErrWrongPassword        = Error("wrong password")
	ErrInvalidToken         = Error("invalid token")
	ErrUnauthorized         = Error("unauthorized")
	ErrInvalidEmail         = Error("invalid email")
	ErrInvalidPassword      = Error("invalid password")
	ErrInvalidUsername      = Error("username must be 3-30 characters of letters, numbers and underscores")
	ErrBioTooLong           = Error("bio cannot exceed 500 characters")
	ErrCannotFollowSelf     = Error("cannot follow yourself")

	ErrPostNotFound       = Error("post not found")
	ErrNotPostAuthor      = Error("not authorized to modify this post")
	ErrEmptyPostContent   = Error("post content is required")
	ErrPostContentTooLong = Error("post content cannot exceed 1000 characters")
	ErrEmptyComment       = Error("comment content is required")
	ErrCommentTooLong     = Error("comment content cannot exceed 500 characters")

	ErrConversationNotFound  = Error("conversation not found")
	ErrInvalidConversationId = Error("invalid conversation id")
	ErrNotAParticipant       = Error("not a participant of this conversation")
	ErrParticipantsRequired  = Error("at least one participant is required")
	ErrMessageNotFound       = Error("message not found")
	ErrNotMessageSender      = Error("not the sender of this message")
	ErrEmptyMessageContent   = Error("message content is required")
	ErrMessageContentTooLong = Error("message content cannot exceed 1000 characters")
	ErrInvalidMessageType    = Error("invalid message type")

	ErrPromptRequired        = Error("prompt is required")
	ErrPromptLength          = Error("prompt must be between 5 and 200 characters")
	ErrInappropriatePrompt   = Error("prompt contains inappropriate content")
	ErrGenerationUnavailable = Error("image generation service is currently unavailable")
	ErrGenerationRateLimited = Error("too many requests, please wait before trying again")
	ErrGenerationBadRequest  = Error("invalid prompt or parameters")
	ErrGenerationTimeout     = Error("image generation timed out")
	ErrGenerationFailed      = Error("image generation failed")
	ErrGenerationNotReady    = Error("image generation service not configured")
)
