// Package cli provides structured errors for environment problems.
package cli

// PreflightError reports a problem with the environment rather than with the
// command's input, with guidance for the user.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
	Err      error
}

func (e *PreflightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}
