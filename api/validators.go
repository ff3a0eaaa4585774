package api

import (
	"fmt"
	"sync"
	"time"

	"templo/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the yearmonth and isodate tags to gin's validator
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		mustRegister(v, "yearmonth", func(fl validator.FieldLevel) bool {
			return models.ValidPeriod(fl.Field().String())
		})
		mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
			_, err := parseTimestamp(fl.Field().String())
			return err == nil
		})
	})
}

// mustRegister panics at startup instead of leaving a tag that would panic on every bind
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validator %q: %v", tag, err))
	}
}

// parseTimestamp accepts a plain date or an RFC 3339 timestamp
func parseTimestamp(s string) (time.Time, error) {
	if len(s) == len(models.DateLayout) {
		d, err := models.ParseDate(s)
		return d.Time, err
	}
	return time.Parse(time.RFC3339, s)
}
