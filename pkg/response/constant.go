package response

const (
	// MessageSuccess is the message on every OK envelope.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal detail on 500 responses.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope error code for 500 responses.
	InternalServerErrorCode = 500
)
