package attendance

import "errors"

var (
	ErrInvalidStatus = errors.New("status must be one of Present, Half-Day, Absent, Rest Day")
)
