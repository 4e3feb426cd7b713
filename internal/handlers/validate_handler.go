package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/azubi-tmp/checkout-api/internal/models"
	"github.com/azubi-tmp/checkout-api/internal/validation"
	"github.com/go-playground/validator/v10"
)

// CheckoutForm is the full set of fields the checkout form collects. Only a
// subset travels on to order creation; the rest (email, shipping address) is
// validated here for immediate UI feedback.
type CheckoutForm struct {
	Name          string `json:"name" validate:"required,form_name"`
	Email         string `json:"email" validate:"required,form_email"`
	Phone         string `json:"phone" validate:"required,form_phone"`
	Address       string `json:"address" validate:"required,form_address"`
	ZipCode       string `json:"zipCode" validate:"required,form_zip"`
	City          string `json:"city" validate:"required,form_place"`
	Country       string `json:"country" validate:"required,form_place"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cash e-money"`
	EMoneyNumber  string `json:"eMoneyNumber" validate:"required_if=PaymentMethod e-money,omitempty,emoney_number"`
	EMoneyPin     string `json:"eMoneyPin" validate:"required_if=PaymentMethod e-money,omitempty,emoney_pin"`
}

// ValidateFormResponse reports per-field advisory errors. The keys of Errors
// are JSON field names.
type ValidateFormResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// fieldMessages mirror the messages the checkout form shows next to each input.
var fieldMessages = map[string]string{
	"name":          "Please enter a valid name",
	"email":         "Please enter a valid email",
	"phone":         "Please enter a valid phone number",
	"address":       "Please enter a valid address",
	"zipCode":       "Please enter a valid ZIP code",
	"city":          "Please enter a valid city",
	"country":       "Please enter a valid country",
	"paymentMethod": "Invalid payment method",
	"eMoneyNumber":  "Please enter a valid 9-digit e-Money number",
	"eMoneyPin":     "Please enter a valid 4-digit PIN",
}

// ValidateHandler serves advisory whole-form validation for the checkout UI.
// It never rejects an order; the order service re-validates independently.
type ValidateHandler struct {
	validate *validator.Validate
	log      *slog.Logger
}

// NewValidateHandler creates a validate handler with the form rules
// registered. The rules delegate to the shared validation package, so the
// advisory endpoint and the order builder cannot drift apart.
func NewValidateHandler(log *slog.Logger) *ValidateHandler {
	v := validator.New()

	// Report errors under JSON field names rather than Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]func(string) bool{
		"form_name":     validation.ValidName,
		"form_email":    validation.ValidEmail,
		"form_phone":    validation.ValidPhone,
		"form_address":  validation.ValidAddress,
		"form_zip":      validation.ValidZipCode,
		"form_place":    validation.ValidPlaceName,
		"emoney_number": validation.ValidEMoneyNumber,
		"emoney_pin":    validation.ValidEMoneyPin,
	}
	for tag, fn := range rules {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}

	return &ValidateHandler{
		validate: v,
		log:      log,
	}
}

// ValidateForm handles POST /api/validate
func (h *ValidateHandler) ValidateForm(w http.ResponseWriter, r *http.Request) {
	var form CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.log.Warn("failed to decode checkout form", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	resp := ValidateFormResponse{Valid: true}

	if err := h.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			h.log.Error("form validation failed", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error", h.log)
			return
		}

		fieldErrors := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			field := fe.Field()
			// A cash payment carries no e-money details; stale form values
			// for those fields are not errors.
			if form.PaymentMethod == string(models.PaymentCash) &&
				(field == "eMoneyNumber" || field == "eMoneyPin") {
				continue
			}
			fieldErrors[field] = fieldMessages[field]
		}

		if len(fieldErrors) > 0 {
			resp.Valid = false
			resp.Errors = fieldErrors
		}
	}

	WriteJSON(w, http.StatusOK, resp, h.log)
}
