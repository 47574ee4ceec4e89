package attendance

import "context"

// AttendanceService defines business logic for attendance marking
type AttendanceService interface {
	// Mark sets, replaces or toggles off an employee's status for one date
	Mark(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)
}
