package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/transco/backoffice-go/internal/domain/attendance"
	"github.com/transco/backoffice-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
	}
}

// Mark implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	nowUTC := a.now().UTC()
	status := attendance.Status(req.Status)

	plan, err := a.AttendanceRepository.MarkDay(ctx, emp.ID, req.ParsedDate, func(existing []attendance.Record) attendance.MarkPlan {
		return attendance.PlanMark(existing, emp.ID, req.ParsedDate, status, emp.DailyRate, id.String(), nowUTC)
	})
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	if len(plan.DeleteIDs) > 1 {
		slog.Warn("Removed duplicate attendance records",
			"employee_id", emp.ID,
			"date", req.Date,
			"count", len(plan.DeleteIDs),
		)
	}

	resp := attendance.MarkAttendanceResponse{
		EmployeeID:     emp.ID,
		Date:           req.Date,
		RemovedRecords: len(plan.DeleteIDs),
		ToggledOff:     plan.ToggledOff,
	}
	if plan.Insert != nil {
		r := attendance.NewAttendanceResponse(*plan.Insert)
		resp.Attendance = &r
	}
	return resp, nil
}
