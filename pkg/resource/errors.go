package resource

import "errors"

var (
	ErrNotFound    = errors.New("resource not found")
	ErrInvalidPath = errors.New("invalid resource path") // Prevents path traversal attacks

	ErrFailedToOpen = errors.New("failed to open resource")

	// S3-specific errors for proper error classification
	ErrBucketNotFound = errors.New("bucket not found")
	ErrAccessDenied   = errors.New("access denied")

	// Configuration errors
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
