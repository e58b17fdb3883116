package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Сообщения, которые не выводятся из тегов валидации.
const (
	MsgEmailTaken         = "Email has already been taken"
	MsgInvalidCredentials = "Invalid email or password."
)

// Validator проверяет структуры по тегам `validate` и возвращает
// сообщения вида "<label> can't be blank" в порядке объявления полей.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank: строка из одних пробелов считается пустой
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("maxbytes", maxBytes)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	return &Validator{v: v}
}

// Messages возвращает все нарушения сразу. nil — всё валидно.
func (v *Validator) Messages(s any) []string {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return fe.Field() + " can't be blank"
	case "max", "maxbytes":
		return fmt.Sprintf("%s is too long (maximum is %s characters)", fe.Field(), fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s doesn't match %s", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}

// maxBytes ограничивает длину строки в байтах, а не в рунах.
// bcrypt не принимает пароли длиннее 72 байт.
func maxBytes(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= n
}

// registration — поля регистрации.
// Confirmation проверяется, только если клиент его прислал.
type registration struct {
	Email        string  `label:"Email" validate:"notblank"`
	Password     string  `label:"Password" validate:"notblank,maxbytes=72"`
	Confirmation *string `label:"Password confirmation" validate:"omitnil,eqfield=Password"`
}

type emailChange struct {
	Email string `label:"Email" validate:"notblank"`
}

type tabFields struct {
	URL   string  `label:"Url" validate:"notblank"`
	Title *string `label:"Title"`
}
