package exitcode

import "fmt"

// Process exit codes. These form the operational contract with installers
// and wrapper scripts, so the values are frozen: 4 is intentionally
// unassigned to keep the verification codes stable.
const (
	Success         = 0
	AlreadyRunning  = 1
	PrimaryMissing  = 2
	PrimaryMismatch = 3
	HelperMissing   = 5
	HelperMismatch  = 6
	LaunchFailed    = 7
)

// Error couples a failure with the exit code the process must terminate
// with. main unwraps it via errors.As and passes Code to os.Exit.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the given exit code.
func New(code int, err error) *Error {
	return &Error{Code: code, Err: err}
}
