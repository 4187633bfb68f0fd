package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// RegisterCustomValidators installs the domain-specific binding validators on
// gin's validator engine. Call once at startup.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("staffrole", validStaffRole)
	_ = v.RegisterValidation("paymethod", validPaymentMethod)
}

func validStaffRole(fl validator.FieldLevel) bool {
	switch domain.Role(fl.Field().String()) {
	case domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleCashier, domain.RoleWaiter:
		return true
	}
	return false
}

func validPaymentMethod(fl validator.FieldLevel) bool {
	switch domain.PaymentMethod(fl.Field().String()) {
	case domain.PaymentCash, domain.PaymentCard:
		return true
	}
	return false
}
