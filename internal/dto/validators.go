package dto

import (
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain enum validators used in binding tags.
func RegisterValidators(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"catalogtype": func(fl validator.FieldLevel) bool {
			return domain.CatalogType(fl.Field().String()).IsValid()
		},
		"txkind": func(fl validator.FieldLevel) bool {
			return domain.TransactionKind(fl.Field().String()).IsValid()
		},
		"paystatus": func(fl validator.FieldLevel) bool {
			return domain.PaymentStatus(fl.Field().String()).IsValid()
		},
		"licensestatus": func(fl validator.FieldLevel) bool {
			return domain.LicenseStatus(fl.Field().String()).IsValid()
		},
		"yearmonth": func(fl validator.FieldLevel) bool {
			_, err := domain.ParseMonth(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
