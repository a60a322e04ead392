package cli

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldRule describes what a prompted value must look like.
type fieldRule struct {
	name        string
	min, max    int
	allowSpaces bool
}

var (
	usernameRule = fieldRule{name: "Username", min: 5, max: 20}
	passwordRule = fieldRule{name: "Password", min: 8, max: 16}
)

func textRule(name string) fieldRule {
	return fieldRule{name: name, min: 5, max: 200, allowSpaces: true}
}

func newFieldValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("nospaces", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t")
	})
	return v
}

// check returns a user-facing error describing the first rule value breaks.
// Lengths are counted in runes.
func (r fieldRule) check(v *validator.Validate, value string) error {
	if v.Var(value, "required") != nil {
		return fmt.Errorf("%s can not be blank", r.name)
	}
	if !r.allowSpaces && v.Var(value, "nospaces") != nil {
		return fmt.Errorf("%s cannot contain spaces", r.name)
	}
	if v.Var(value, fmt.Sprintf("min=%d,max=%d", r.min, r.max)) != nil {
		return fmt.Errorf("%s must be between %d-%d characters", r.name, r.min, r.max)
	}
	return nil
}
