package errors

import (
	"fmt"
	"net/http"
)

// AppError là custom error type cho application
type AppError struct {
	Raw         error
	HTTPCode    int
	Code        ErrorCode
	Message     string
	Details     map[string]string
	Suggestions []string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// Suggestion lists shown to users alongside each error class. Wording follows
// the product copy for the upload flow.
var (
	validationSuggestions = []string{
		"Check that your recording file is not corrupted",
		"Ensure the file is in a supported format (MP4, AVI, MOV, etc.)",
		"Try reducing the file size if it's too large",
		"Make sure the video is not too long (max 10 minutes)",
	}
	extractionSuggestions = []string{
		"Try a different video file",
		"Ensure the video has a clear audio track",
		"Check that the video is not password protected",
		"Try converting the video to MP4 format",
	}
	recognitionSuggestions = []string{
		"Ensure the recording has clear, audible speech",
		"Try re-recording in a quieter environment",
		"Try uploading an audio file instead (.mp3, .wav)",
	}
	unexpectedSuggestions = []string{
		"Try uploading your file again",
		"Check your internet connection",
		"Try a different recording",
		"Contact support if the problem persists",
	}
)

// General errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Analysis pipeline errors

// ErrValidation is raised when the uploaded recording fails pre-processing
// checks (missing file, size, format, duration).
func ErrValidation(message string) AppError {
	return AppError{
		HTTPCode:    http.StatusBadRequest,
		Code:        ErrorCode_VALIDATION_FAILED,
		Message:     message,
		Suggestions: validationSuggestions,
	}
}

// ErrExtraction is raised when audio cannot be isolated from a video after
// all extraction strategies and retries are exhausted.
func ErrExtraction(err error) AppError {
	return AppError{
		Raw:         err,
		HTTPCode:    http.StatusUnprocessableEntity,
		Code:        ErrorCode_EXTRACTION_FAILED,
		Message:     "Failed to extract audio from video",
		Suggestions: extractionSuggestions,
	}
}

// ErrRecognition marks a transcription backend failure. The pipeline never
// surfaces this to callers; it exists for structured logging.
func ErrRecognition(err error) AppError {
	return AppError{
		Raw:         err,
		HTTPCode:    http.StatusServiceUnavailable,
		Code:        ErrorCode_RECOGNITION_FAILED,
		Message:     "Speech recognition failed",
		Suggestions: recognitionSuggestions,
	}
}

// ErrUnexpected wraps anything uncaught by a more specific class.
func ErrUnexpected(err error) AppError {
	return AppError{
		Raw:         err,
		HTTPCode:    http.StatusInternalServerError,
		Code:        ErrorCode_UNEXPECTED,
		Message:     "An unexpected error occurred during processing",
		Suggestions: unexpectedSuggestions,
	}
}

// Integration errors

func ErrAIServiceUnavailable(service string) AppError {
	return AppError{
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_AI_SERVICE_UNAVAILABLE,
		Message:  "AI service temporarily unavailable",
	}.WithDetail("service", service)
}

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

// HTTPStatusOK represents a successful HTTP response.
func HTTPStatusOK(message string) AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_HTTP_OK,
		Message:  message,
	}
}
