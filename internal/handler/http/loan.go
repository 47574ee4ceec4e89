package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/transco/backoffice-go/internal/domain/loan"
	"github.com/transco/backoffice-go/internal/handler/http/response"
)

type LoanHandler interface {
	RecordPayment(w http.ResponseWriter, r *http.Request)
}

type loanHandlerImpl struct {
	loanService loan.LoanService
}

func NewLoanHandler(loanService loan.LoanService) LoanHandler {
	return &loanHandlerImpl{
		loanService: loanService,
	}
}

// RecordPayment implements LoanHandler.
func (h *loanHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req loan.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.LoanID = chi.URLParam(r, "id")

	result, err := h.loanService.RecordPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment recorded", result)
}
