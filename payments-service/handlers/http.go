package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/draftea/payment-simulator/payments-service/application"
	"github.com/draftea/payment-simulator/payments-service/domain"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PaymentMethodHandlers contains payment method HTTP handlers
type PaymentMethodHandlers struct {
	registerPaymentMethod *application.RegisterPaymentMethod
	processPayment        *application.ProcessPayment
	getPaymentMethod      *application.GetPaymentMethod
	logger                *zap.Logger
}

// NewPaymentMethodHandlers creates new payment method handlers
func NewPaymentMethodHandlers(
	registerPaymentMethod *application.RegisterPaymentMethod,
	processPayment *application.ProcessPayment,
	getPaymentMethod *application.GetPaymentMethod,
	logger *zap.Logger,
) *PaymentMethodHandlers {
	return &PaymentMethodHandlers{
		registerPaymentMethod: registerPaymentMethod,
		processPayment:        processPayment,
		getPaymentMethod:      getPaymentMethod,
		logger:                logger,
	}
}

type processPaymentRequest struct {
	Amount *float64 `json:"amount"`
}

// RegisterPaymentMethod handles payment method registration requests
func (h *PaymentMethodHandlers) RegisterPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var cmd application.RegisterPaymentMethodCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.registerPaymentMethod.Execute(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, response)
}

// ProcessPayment handles charge requests against a registered payment method.
// Declined payments are still a 200: the outcome is in the body.
func (h *PaymentMethodHandlers) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	paymentMethodID := chi.URLParam(r, "id")
	if paymentMethodID == "" {
		http.Error(w, "Payment method ID is required", http.StatusBadRequest)
		return
	}

	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Amount == nil {
		http.Error(w, "amount is required", http.StatusBadRequest)
		return
	}

	response, err := h.processPayment.Execute(r.Context(), &application.ProcessPaymentCommand{
		PaymentMethodID: paymentMethodID,
		Amount:          *req.Amount,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}

// GetPaymentMethod handles payment method retrieval requests
func (h *PaymentMethodHandlers) GetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	paymentMethodID := chi.URLParam(r, "id")
	if paymentMethodID == "" {
		http.Error(w, "Payment method ID is required", http.StatusBadRequest)
		return
	}

	response, err := h.getPaymentMethod.Execute(r.Context(), &application.GetPaymentMethodQuery{
		PaymentMethodID: paymentMethodID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers payment method routes
func (h *PaymentMethodHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/payment-methods", func(r chi.Router) {
		r.Post("/", h.RegisterPaymentMethod)
		r.Get("/{id}", h.GetPaymentMethod)
		r.Post("/{id}/payments", h.ProcessPayment)
	})
}

func (h *PaymentMethodHandlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCommand):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrPaymentMethodNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *PaymentMethodHandlers) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}
