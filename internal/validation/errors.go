package validation

import "errors"

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrAliasInvalid        = errors.New("alias contains invalid characters")
)
