package handlers

import (
	"time"

	"github.com/SscSPs/supplier_ledger/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the custom binding rules used by the DTOs.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("isodate", isISODate)
}

// isISODate accepts calendar dates written as YYYY-MM-DD.
func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(dto.DateLayout, fl.Field().String())
	return err == nil
}
