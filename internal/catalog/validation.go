package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateCreateRequest(req CreateProductRequest) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("field %s failed on %s: %w", errs[0].Field(), errs[0].Tag(), ErrValidation)
		}
		return fmt.Errorf("%v: %w", err, ErrValidation)
	}
	return nil
}
