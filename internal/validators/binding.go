package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/weekday"
)

// RegisterBindings adds the hhmm, phone, weekday, date and slot_status
// tags to gin's validator. Safe to call more than once.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	rules := map[string]validator.Func{
		"hhmm": func(fl validator.FieldLevel) bool {
			return IsTime(fl.Field().String())
		},
		"phone": func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		},
		"weekday": func(fl validator.FieldLevel) bool {
			_, err := weekday.Parse(fl.Field().String())
			return err == nil
		},
		"date": func(fl validator.FieldLevel) bool {
			return IsDate(fl.Field().String())
		},
		"slot_status": func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "available" || s == "unavailable"
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
