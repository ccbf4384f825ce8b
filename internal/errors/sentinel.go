package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrMissingArgument indicates the project directory argument was not given.
	ErrMissingArgument = errors.New("missing argument")

	// ErrNameInvalid indicates the project name violates package naming rules.
	ErrNameInvalid = errors.New("invalid name")

	// ErrInvalidOption indicates a flag value outside its accepted set.
	ErrInvalidOption = errors.New("invalid option")

	// ErrOptionConflict indicates mutually exclusive options were combined.
	ErrOptionConflict = errors.New("option conflict")

	// ErrDirectoryExists indicates the target path is already populated.
	ErrDirectoryExists = errors.New("directory exists")

	// ErrDependencyInstall indicates the package manager exited unsuccessfully.
	ErrDependencyInstall = errors.New("dependency install failed")
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError is used for every failure: validation, option
	// errors, filesystem errors and failed dependency installs.
	ExitGeneralError = 1
)
