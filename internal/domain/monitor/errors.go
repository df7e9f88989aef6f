package monitor

import "errors"

var (
	ErrSiteNotFound    = errors.New("monitored site not found")
	ErrInvalidSiteURL  = errors.New("site url must be an absolute http or https URL")
	ErrLabelTooLong    = errors.New("site label must be at most 100 characters")
	ErrCycleInProgress = errors.New("uptime cycle already in progress")
)
