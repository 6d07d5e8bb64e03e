// groqchat/utils/apperrors/errors.go
package apperrors

import "errors"

// Callers wrap these with fmt.Errorf("%w: ...: %w", Err..., cause) so that
// both the category and the underlying cause survive errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrStorage           = errors.New("storage error")
	ErrCompletionService = errors.New("completion service error")
	ErrNotFound          = errors.New("not found")
)
