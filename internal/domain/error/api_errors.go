package error

// APIErrorCode defines error codes for transport-level failures.
type APIErrorCode string

const (
	ErrCodeRateLimited APIErrorCode = "API-010001"
)
