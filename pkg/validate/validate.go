package validate

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/szabodaniel/boardgame-collection/internal/model"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterCustomTypeFunc(dateValuer, model.Date{})
	// "dateafternow" accepts today and any later calendar day.
	_ = v.RegisterValidation("dateafternow", dateAfterNow)
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func dateValuer(field reflect.Value) interface{} {
	if d, ok := field.Interface().(model.Date); ok {
		return d.Time
	}
	return nil
}

func dateAfterNow(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok || t.IsZero() {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, t.Location())
	return !t.Before(today)
}
