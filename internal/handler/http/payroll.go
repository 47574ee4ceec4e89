package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/transco/backoffice-go/internal/domain/access"
	"github.com/transco/backoffice-go/internal/domain/payroll"
	"github.com/transco/backoffice-go/internal/handler/http/response"
	"github.com/transco/backoffice-go/internal/pkg/jwt"
)

type PayrollHandler interface {
	GeneratePeriod(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	PreviewLines(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GeneratePeriod regenerates every employee's record for one period.
func (h *payrollHandlerImpl) GeneratePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated successfully", result)
}

// ListRecords returns the persisted records the caller is allowed to see.
func (h *payrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := periodFilterFromQuery(r)

	scope, ok := h.scopeFromRequest(w, r)
	if !ok {
		return
	}

	records, err := h.payrollService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	visible := filterByName(records, scope, func(rec payroll.PayrollRecordResponse) string { return rec.EmployeeName })
	response.SuccessWithMeta(w, visible, listMeta(filter, len(visible), len(records)))
}

// PreviewLines computes the period's breakdown without persisting it.
func (h *payrollHandlerImpl) PreviewLines(w http.ResponseWriter, r *http.Request) {
	filter := periodFilterFromQuery(r)

	scope, ok := h.scopeFromRequest(w, r)
	if !ok {
		return
	}

	lines, err := h.payrollService.PreviewLines(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	visible := filterByName(lines, scope, func(l payroll.PayrollLineResponse) string { return l.EmployeeName })
	response.SuccessWithMeta(w, visible, listMeta(filter, len(visible), len(lines)))
}

type nameScope struct {
	allowed    map[string]struct{}
	restricted bool
}

func (h *payrollHandlerImpl) scopeFromRequest(w http.ResponseWriter, r *http.Request) (nameScope, bool) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		slog.Warn("Rejected listing without usable claims", "error", err)
		response.HandleError(w, err)
		return nameScope{}, false
	}
	allowed, restricted := access.AllowedNames(claims.Scope, claims.UserName)
	return nameScope{allowed: allowed, restricted: restricted}, true
}

func periodFilterFromQuery(r *http.Request) payroll.PeriodFilter {
	query := r.URL.Query()
	return payroll.PeriodFilter{
		PeriodStart: query.Get("period_start"),
		PeriodEnd:   query.Get("period_end"),
	}
}

func filterByName[T any](items []T, scope nameScope, name func(T) string) []T {
	visible := make([]T, 0, len(items))
	for _, item := range items {
		if access.Permits(scope.allowed, scope.restricted, name(item)) {
			visible = append(visible, item)
		}
	}
	return visible
}

// listMeta echoes the requested bounds. Defaulted periods are reported
// through each row's own period fields.
func listMeta(filter payroll.PeriodFilter, visible, total int) *response.Meta {
	return &response.Meta{
		PeriodStart: filter.PeriodStart,
		PeriodEnd:   filter.PeriodEnd,
		TotalItems:  visible,
		Filtered:    total - visible,
	}
}
