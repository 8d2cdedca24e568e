package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message used for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal detail from API consumers.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode marks unexpected server-side failures.
	InternalServerErrorCode = 500
)
