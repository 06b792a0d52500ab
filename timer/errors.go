package timer

import "github.com/focusflow/focusflow/internal/apperr"

var errInvalidInterval = &apperr.Error{
	Message: "long break interval must be at least 1 (got %d)",
}
