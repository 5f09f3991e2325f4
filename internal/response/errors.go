package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Classes & Sessions ────────────────────────────────────────────
	ErrClassNotFound  ErrCode = "CLASS_NOT_FOUND"
	ErrNoSession      ErrCode = "NO_OPEN_SESSION"
	ErrUnknownStudent ErrCode = "UNKNOWN_STUDENT"
	ErrLoadFailed     ErrCode = "ROSTER_LOAD_FAILED"
	ErrSaveFailed     ErrCode = "ATTENDANCE_SAVE_FAILED"

	// ─── Uploads ───────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrClassNotFound:
		return "This class has not been loaded."
	case ErrNoSession:
		return "No attendance session is open for this class."
	case ErrUnknownStudent:
		return "This student is not part of the open session."
	case ErrLoadFailed:
		return "The roster file could not be loaded."
	case ErrSaveFailed:
		return "The attendance could not be saved. The roster file is unchanged."
	case ErrFileRequired:
		return "A roster file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type."
	case ErrFileTooLarge:
		return "The file exceeds the size limit."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
