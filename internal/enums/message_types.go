package enums

const (
	MESSAGE_TYPE_TEXT  = "text"
	MESSAGE_TYPE_IMAGE = "image"
	MESSAGE_TYPE_FILE  = "file"
)

func IsValidMessageType(messageType string) bool {
	switch messageType {
	case MESSAGE_TYPE_TEXT, MESSAGE_TYPE_IMAGE, MESSAGE_TYPE_FILE:
		return true
	}
	return false
}
