package portfolio

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/portfolio-builder/pkg/apperror"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateDraft checks numeric bounds, enums and URL/email shape before a
// draft reaches the store.
func ValidateDraft(d Draft) error {
	return toAppError(validatorInstance().Struct(d), nil)
}

func (pt Patch) Validate() error {
	var extra []apperror.FieldError
	if pt.Hero != nil && pt.Hero.Name != nil && strings.TrimSpace(*pt.Hero.Name) == "" {
		extra = append(extra, apperror.FieldError{Field: "hero.name", Rule: "required"})
	}
	return toAppError(validatorInstance().Struct(pt), extra)
}

func toAppError(err error, fields []apperror.FieldError) error {
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return apperror.NewInvalidInput("validation could not run", err)
		}
		for _, fe := range verrs {
			fields = append(fields, apperror.FieldError{
				Field: fieldPath(fe.Namespace()),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return apperror.NewValidation(fields)
}

// fieldPath drops the root type name: "Draft.skills[0].level" -> "skills[0].level".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
