package password

import "errors"

var (
	ErrInvalidCost         = errors.New("password: bcrypt cost out of range")
	ErrInvalidLengthPolicy = errors.New("password: invalid length policy")
	ErrHashFailed          = errors.New("password: failed to hash password")
)
