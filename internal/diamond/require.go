package diamond

// Flag marks how a failed requirement should be handled
type Flag int

const (
	// FlagNoisy log the failure loudly
	FlagNoisy Flag = iota + 1
	// FlagRefund refund the origin payment
	FlagRefund
)

// Error requirement failure
type Error struct {
	Msg   string
	Flags []Flag
}

func (e *Error) Error() string {
	return e.Msg
}

// HasFlag check if the error carries the flag
func (e *Error) HasFlag(flag Flag) bool {
	for _, f := range e.Flags {
		if f == flag {
			return true
		}
	}

	return false
}

// Require return an error tagged with flags unless pass holds
func Require(pass bool, msg string, flags ...Flag) error {
	if pass {
		return nil
	}

	return &Error{Msg: msg, Flags: flags}
}

// ShouldRefund check if the error demands a refund
func ShouldRefund(err error) bool {
	e, ok := err.(*Error)
	return ok && e.HasFlag(FlagRefund)
}
