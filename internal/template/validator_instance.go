package template

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/klogd/klog/internal/textstyle"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// template documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
			return textstyle.KnownColor(fl.Field().String())
		})

		_ = v.RegisterValidation("style_list", func(fl validator.FieldLevel) bool {
			return textstyle.KnownStyle(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}
