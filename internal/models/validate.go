package models

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var postalCodeRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{2,9}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return ValidRegion(fl.Field().String())
	})
	v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		return postalCodeRe.MatchString(fl.Field().String())
	})
	return v
}

// firstViolation maps the first failed constraint to its schema message,
// mirroring how the document mapper reports a single violation at a time.
// Messages are keyed by "<StructField>.<tag>".
func firstViolation(err error, messages map[string]string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
			return errors.New(msg)
		}
		return fmt.Errorf("%s is invalid", fe.StructNamespace())
	}
	return err
}
