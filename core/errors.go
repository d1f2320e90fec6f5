package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001

	// ErrTokenNotInitialized token state not initialized
	ErrTokenNotInitialized ErrorCode = 100100
	// ErrInvalidAmount invalid or zero mint amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrPaused token operations paused
	ErrPaused ErrorCode = 100102
	// ErrBlacklisted sender is blacklisted
	ErrBlacklisted ErrorCode = 100103
	// ErrSupplyCapExceeded minting would exceed max supply
	ErrSupplyCapExceeded ErrorCode = 100104
	// ErrUnsupportedPaymentAsset payment asset not accepted
	ErrUnsupportedPaymentAsset ErrorCode = 100105
	// ErrStalePrice oracle price record too old
	ErrStalePrice ErrorCode = 100106
	// ErrImplausiblePrice oracle price out of tolerance
	ErrImplausiblePrice ErrorCode = 100107
	// ErrAmountTooSmall payment below minimum purchase
	ErrAmountTooSmall ErrorCode = 100108
	// ErrDuplicateBlacklistEntry address already blacklisted
	ErrDuplicateBlacklistEntry ErrorCode = 100109
	// ErrAbsentBlacklistEntry address not blacklisted
	ErrAbsentBlacklistEntry ErrorCode = 100110
	// ErrBlacklistCapacityExceeded blacklist full
	ErrBlacklistCapacityExceeded ErrorCode = 100111
	// ErrInvalidConfiguration bad threshold or owner count
	ErrInvalidConfiguration ErrorCode = 100112
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
