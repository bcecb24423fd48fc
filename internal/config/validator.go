package config

import (
	"CivicReportAPI/internal/constant"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("report_type", validateReportType)
	_ = v.RegisterValidation("status_bucket", validateStatusBucket)
	return v
}

// validateReportType accepts only the canonical underscore form. Hyphenated
// variants like "non-emergency" are rejected at the boundary so a single
// representation flows through the rest of the system.
func validateReportType(fl validator.FieldLevel) bool {
	t := fl.Field().String()
	return t == constant.TypeEmergency || t == constant.TypeNonEmergency
}

func validateStatusBucket(fl validator.FieldLevel) bool {
	b := fl.Field().String()
	return b == constant.BucketNone || b == constant.BucketPending || b == constant.BucketResolved
}
