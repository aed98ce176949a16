package utils

import (
	"modifications-service/internal/pkg/constvars"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("project_record", validateProjectRecord)
	validate.RegisterValidation("review_type", validateReviewType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateProjectRecord(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexProjectRecord)
	return re.MatchString(fl.Field().String())
}

func validateReviewType(fl validator.FieldLevel) bool {
	value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return value == constvars.ReviewTypeNoneRequired || value == "proportionate" || value == "full"
}
