package handlers

import (
	"sync"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("currency", validateCurrencyCode)
	})
}

// validateCurrencyCode accepts the codes of the currency registry, in any case.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	_, err := domain.CurrencyFromCode(fl.Field().String())
	return err == nil
}
