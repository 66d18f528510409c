package cli

import "github.com/rstlight/rstlight/pkg/builder"

// Exit codes for rstlight.
const (
	// ExitSuccess indicates a successful build.
	ExitSuccess = 0

	// ExitBuildErrors indicates the build completed but some pages failed.
	ExitBuildErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from a build result.
func ExitCodeFromResult(result *builder.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures() {
		return ExitBuildErrors
	}
	return ExitSuccess
}
