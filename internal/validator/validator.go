// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("slug", validateSlug)
		_ = v.RegisterValidation("severity_level", validateSeverityLevel)
		_ = v.RegisterValidation("monitoring_status", validateMonitoringStatus)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func validateSeverityLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high", "critical":
		return true
	}
	return false
}

func validateMonitoringStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "open", "verified", "resolved":
		return true
	}
	return false
}
