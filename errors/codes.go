package errors

// ErrorCode identifies a class of application error in API responses
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_NOT_FOUND

	// Analysis pipeline errors
	ErrorCode_VALIDATION_FAILED
	ErrorCode_EXTRACTION_FAILED
	ErrorCode_RECOGNITION_FAILED
	ErrorCode_UNEXPECTED

	// Integration errors
	ErrorCode_AI_SERVICE_UNAVAILABLE
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_INTEGRATION_CACHE_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                    "UNKNOWN",
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_VALIDATION_FAILED:          "VALIDATION_FAILED",
	ErrorCode_EXTRACTION_FAILED:          "EXTRACTION_FAILED",
	ErrorCode_RECOGNITION_FAILED:         "RECOGNITION_FAILED",
	ErrorCode_UNEXPECTED:                 "UNEXPECTED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
