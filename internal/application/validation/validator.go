// Package validation runs go-playground/validator tags on request DTOs and
// turns the first failure into a *domain.ValidationError naming the JSON field.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/karibu-groceries/kgl-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal reaches the validators as its exact string form;
	// dmin compares it without going through float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("dmin", decimalMin)
	// bcrypt hashes at most 72 bytes; max= would count runes.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= n
	})

	return v
}

// decimalMin: the field, a decimal in string form, is >= the tag parameter.
func decimalMin(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	limit, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(limit)
}

// Struct validates s. It returns nil, a *domain.ValidationError, or the
// validator's own error when s is not a struct.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		rule := fe.Tag()
		if rule == "dmin" {
			rule = "min"
		}
		return domain.NewValidationError(fe.Field(), rule, fe.Param())
	}
	return err
}
