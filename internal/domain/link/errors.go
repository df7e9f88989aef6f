package link

import "errors"

var (
	ErrLinkNotFound     = errors.New("link not found")
	ErrShortCodeTaken   = errors.New("short code already in use")
	ErrInvalidTargetURL = errors.New("original url must be an absolute http or https URL")
	ErrInvalidShortCode = errors.New("invalid short code")
)
