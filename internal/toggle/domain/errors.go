package domain

import "errors"

// Exported error variables allow callers to use errors.Is() for error checking.
var (
	ErrDirectoryUnset = errors.New("directory is not set (use --dir or CONFIG_PATH)")
	ErrTargetUnset    = errors.New("target link name is not set (use --target or TARGET)")
	ErrModeConflict   = errors.New("cannot combine auto-detect mode with explicit candidates")
	ErrModeIncomplete = errors.New("either two explicit sources or a list of possible values is required")

	ErrLinkMissing     = errors.New("target link does not exist")
	ErrNotSymlink      = errors.New("target is not a symbolic link")
	ErrLinkTargetEmpty = errors.New("symlink target is missing or empty")

	ErrTooManySources = errors.New("more than two possible sources found")
	ErrNoMatch        = errors.New("no match between existing symlink and given sources")
	ErrApply          = errors.New("failed to replace symlink")
)

// Process exit codes for the error groups above.
const (
	ExitOK     = 0
	ExitUsage  = 1
	ExitConfig = 2
	ExitToggle = 3
)

var configErrors = []error{
	ErrDirectoryUnset,
	ErrTargetUnset,
	ErrModeConflict,
	ErrModeIncomplete,
	ErrLinkMissing,
	ErrNotSymlink,
	ErrLinkTargetEmpty,
}

var toggleErrors = []error{
	ErrTooManySources,
	ErrNoMatch,
	ErrApply,
}

// ExitCode maps an error to the documented process exit code. Errors that do
// not wrap a known sentinel are treated as usage errors, which covers flag
// parsing failures surfaced by the CLI layer.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, sentinel := range configErrors {
		if errors.Is(err, sentinel) {
			return ExitConfig
		}
	}
	for _, sentinel := range toggleErrors {
		if errors.Is(err, sentinel) {
			return ExitToggle
		}
	}
	return ExitUsage
}
