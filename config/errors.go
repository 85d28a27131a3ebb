package config

import "github.com/gear6io/tablediff/pkg/errors"

// Config-specific error codes
var (
	ErrConfigFileReadFailed    = errors.MustNewCode("config.file_read_failed")
	ErrConfigFileParseFailed   = errors.MustNewCode("config.file_parse_failed")
	ErrConfigValidationFailed  = errors.MustNewCode("config.validation_failed")
	ErrConfigFileMarshalFailed = errors.MustNewCode("config.file_marshal_failed")
	ErrConfigFileWriteFailed   = errors.MustNewCode("config.file_write_failed")
	ErrPrecisionNegative       = errors.MustNewCode("config.precision_negative")
	ErrWorkersNegative         = errors.MustNewCode("config.workers_negative")
	ErrTypeResolutionUnknown   = errors.MustNewCode("config.type_resolution_unknown")
	ErrLogFormatUnknown        = errors.MustNewCode("config.log_format_unknown")

	// Logging-specific error codes
	ErrLogDirectoryCreationFailed = errors.MustNewCode("config.log_directory_creation_failed")
	ErrLogFileOpenFailed          = errors.MustNewCode("config.log_file_open_failed")
	ErrLogRotationFailed          = errors.MustNewCode("config.log_rotation_failed")
)
