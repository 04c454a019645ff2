package report

import "errors"

var (
	ErrUnknownCategory   = errors.New("unknown report category")
	ErrUnknownReportType = errors.New("unknown report type")
	ErrInvalidRange      = errors.New("start date must not be after end date")
	ErrIncompleteRange   = errors.New("select both start and end dates")
	ErrInvalidDate       = errors.New("dates must use the YYYY-MM-DD format")
)
