package errs

import "errors"

// Error categories shared by the domain and usecase layers. Concrete errors
// are marked with one of these and matched with errs.Is.
var (
	// Request shape or business field rules
	ErrValidation = errors.New("validation error")

	// Guard rejections
	ErrAvailabilityConflict = errors.New("availability conflict")
	ErrBlockedDate          = errors.New("blocked date")

	// Lookup errors
	ErrNotFound = errors.New("not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
