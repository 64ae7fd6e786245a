// Mapping error taxonomy and provider error classification
package bedrock

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"
)

// UnsupportedFeatureError reports a content or role variant the Bedrock
// mapping does not support. Terminal, never retried.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Feature)
}

// UnsupportedFormatError reports a recognized content kind with a sub-format
// outside the enumerated set, such as an SVG image.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// ConversionError reports a payload-encoding failure, such as malformed
// base64 data or an undecodable provider document.
type ConversionError struct {
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to convert: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to convert: %s", e.Reason)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// classifyServiceError turns a Bedrock SDK error into a human-readable
// message. Presentation only: retry behavior stays with the SDK transport.
func classifyServiceError(err error) string {
	var (
		modelTimeout  *types.ModelTimeoutException
		accessDenied  *types.AccessDeniedException
		notFound      *types.ResourceNotFoundException
		throttled     *types.ThrottlingException
		unavailable   *types.ServiceUnavailableException
		internalError *types.InternalServerException
		validation    *types.ValidationException
		notReady      *types.ModelNotReadyException
		modelError    *types.ModelErrorException
		quotaExceeded *types.ServiceQuotaExceededException
	)

	switch {
	case errors.As(err, &modelTimeout):
		return messageOr(modelTimeout.Message, "The request took too long to process. Processing time exceeded the model timeout length.")
	case errors.As(err, &accessDenied):
		return messageOr(accessDenied.Message, "The request is denied because you do not have sufficient permissions to perform the requested action.")
	case errors.As(err, &notFound):
		return messageOr(notFound.Message, "The specified resource ARN was not found.")
	case errors.As(err, &throttled):
		return messageOr(throttled.Message, "Your request was denied due to exceeding the account quotas for Amazon Bedrock.")
	case errors.As(err, &unavailable):
		return messageOr(unavailable.Message, "The service isn't currently available.")
	case errors.As(err, &internalError):
		return messageOr(internalError.Message, "An internal server error occurred.")
	case errors.As(err, &validation):
		return messageOr(validation.Message, "The input fails to satisfy the constraints specified by Amazon Bedrock.")
	case errors.As(err, &notReady):
		return messageOr(notReady.Message, "The model specified in the request is not ready to serve inference requests.")
	case errors.As(err, &modelError):
		return messageOr(modelError.Message, "The request failed due to an error while processing the model.")
	case errors.As(err, &quotaExceeded):
		return messageOr(quotaExceeded.Message, "Your request exceeds the service quota for your account.")
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return "An unexpected error occurred (e.g., invalid JSON returned by the service or an unknown error code)."
	}
	return err.Error()
}

func messageOr(message *string, fallback string) string {
	if message != nil && *message != "" {
		return *message
	}
	return fallback
}
