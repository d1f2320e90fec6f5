package codes

import (
	"strconv"

	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"

	// InvalidArguments invalid arguments
	InvalidArguments = 100001
)

// With with specified error
func With(err error, code int) error {
	twerr, ok := err.(twirp.Error)
	if !ok {
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(code))
}

// Get resolve the custom code attached to the error, falling back to
// a code derived from the twirp error code.
func Get(err twirp.Error) int {
	if v := err.Meta(CustomCodeKey); v != "" {
		if code, e := strconv.Atoi(v); e == nil {
			return code
		}
	}

	switch err.Code() {
	case twirp.InvalidArgument:
		return InvalidArguments
	default:
		return twirp.ServerHTTPStatusFromErrorCode(err.Code())
	}
}
