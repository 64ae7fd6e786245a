// Error types and handling
package agents

// Error codes used across provider adapters.
const (
	ErrCodeRequest    = "request_error"
	ErrCodeProvider   = "provider_error"
	ErrCodeResponse   = "response_error"
	ErrCodeJSON       = "json_error"
	ErrCodeValidation = "validation_error"
)

// Error represents a standardized error returned by models and builders
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewRequestError reports that an outbound request could not be assembled
func NewRequestError(message string) *Error {
	return &Error{Code: ErrCodeRequest, Message: message, Type: ErrCodeRequest}
}

// NewProviderError reports that the remote call itself failed
func NewProviderError(message string) *Error {
	return &Error{Code: ErrCodeProvider, Message: message, Type: ErrCodeProvider}
}

// NewResponseError reports a well-formed reply that could not be interpreted
func NewResponseError(message string) *Error {
	return &Error{Code: ErrCodeResponse, Message: message, Type: ErrCodeResponse}
}

// NewJSONError wraps a serialization failure
func NewJSONError(err error) *Error {
	return &Error{Code: ErrCodeJSON, Message: err.Error(), Type: ErrCodeJSON}
}

// NewValidationError reports invalid caller input
func NewValidationError(message string) *Error {
	return &Error{Code: ErrCodeValidation, Message: message, Type: ErrCodeValidation}
}
