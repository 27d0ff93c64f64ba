package response

const (
	MessageSuccess = "Success"

	BadRequestCode          = 1
	TooManyRequestsCode     = 429
	InternalServerErrorCode = 500

	DefaultErrorMessage    = "Something went wrong"
	TooManyRequestsMessage = "Too many requests"
)
