package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

var (
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)
)

// Validator обертка над go-playground/validator с правилами сервиса
type Validator struct {
	v *validator.Validate
}

// New регистрирует правила date (YYYY-MM-DD), clock (HH:MM) и phone
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// в ошибках поля называются по json-тегу
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := types.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct проверяет структуру по тегам validate
func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

// Fields переводит ошибку валидации в "поле -> правило"
// Для ошибок другого типа возвращает nil
func Fields(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	details := make(map[string]string, len(ve))
	for _, fe := range ve {
		details[fe.Field()] = describe(fe)
	}
	return details
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_unless", "required_if":
		return "required"
	case "email":
		return "invalid email"
	case "date":
		return "expected YYYY-MM-DD"
	case "clock":
		return "expected HH:MM"
	case "phone":
		return "invalid phone"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "too long (max " + fe.Param() + ")"
	default:
		return fe.Tag()
	}
}
