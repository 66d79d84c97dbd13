package handlers

import (
	"errors"
	"sync"

	"wedding_venue_backend/internal/models"
	"wedding_venue_backend/internal/reporting"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the report request rules to gin's validator engine.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterStructValidation(reportRequestStructLevel, models.ReportRequest{})
		}
	})
}

// reportRequestStructLevel checks that the period value matches its granularity.
// An unsupported granularity is already reported by the oneof tag.
func reportRequestStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.ReportRequest)
	if _, err := reporting.ParsePeriod(req.Granularity, req.Value); errors.Is(err, reporting.ErrInvalidPeriod) {
		sl.ReportError(req.Value, "Value", "value", "period", req.Granularity)
	}
}
