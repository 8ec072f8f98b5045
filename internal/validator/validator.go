// Package validator registers the custom binding tags used by request models.
package validator

import (
	"regexp"

	"ceslar/internal/authz"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// slugRegex matches lowercase alphanumeric words joined by single hyphens.
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func validateChurchRole(fl validator.FieldLevel) bool {
	return authz.ChurchRole(fl.Field().String()).Valid()
}

func validateSystemRole(fl validator.FieldLevel) bool {
	return authz.SystemRole(fl.Field().String()).Valid()
}

func validatePermission(fl validator.FieldLevel) bool {
	return authz.Permission(fl.Field().String()).Valid()
}

// Register adds the custom validations to v.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("slug", validateSlug)
	_ = v.RegisterValidation("church_role", validateChurchRole)
	_ = v.RegisterValidation("system_role", validateSystemRole)
	_ = v.RegisterValidation("permission", validatePermission)
}

// RegisterCustomValidators registers all custom validators with gin's validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}
