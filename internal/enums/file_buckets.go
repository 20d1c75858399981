package enums

const (
	FILE_BUCKET_USER_PROFILE     = "user-profile"
	FILE_BUCKET_POST_IMAGES      = "post-images"
	FILE_BUCKET_GENERATED_IMAGES = "generated-images"
)
