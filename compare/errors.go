package compare

import "github.com/gear6io/tablediff/pkg/errors"

// Compare-specific error codes
var (
	ErrEnumerationFailed = errors.MustNewCode("compare.enumeration_failed")
	ErrInvalidOptions    = errors.MustNewCode("compare.invalid_options")
)
