package validate

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pscompsci/guardagainst/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// validationsTotal counts calls to Validate.
	//
	// Labels:
	//   - can_validate_type: "true" if the value implemented HasValidate or
	//     HasValidateWithContext, "false" if it was skipped.
	//   - has_error: "true" if validation failed.
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "guard_validations_total",
		Help: "The total number of calls to Validate",
	}, []string{"can_validate_type", "has_error"})

	// failuresTotal counts failed validations by the guard kind of the cause,
	// as named by errors.KindName. Panics and hand-written errors are "unknown".
	failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "guard_failures_total",
		Help: "The total number of failed validations, by guard kind",
	}, []string{"kind"})

	// validationTime records how long Validate methods take, in milliseconds.
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "guard_validation_time_millis",
		Help: "The time it takes to validate, in milliseconds",
		Buckets: []float64{
			0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100,
		},
	}, []string{"type", "has_error"})
)

// Pre-initialize every label combination so rate() has a series from startup.
func init() {
	for _, canValidate := range []string{"true", "false"} {
		for _, hasError := range []string{"true", "false"} {
			validationsTotal.WithLabelValues(canValidate, hasError).Add(0)
		}
	}

	for _, kind := range errors.KindNames() {
		failuresTotal.WithLabelValues(kind).Add(0)
	}
}

func observe(value any, canValidate bool, err error, elapsed time.Duration) {
	hasError := strconv.FormatBool(err != nil)

	validationsTotal.WithLabelValues(strconv.FormatBool(canValidate), hasError).Inc()

	if err != nil {
		failuresTotal.WithLabelValues(errors.KindName(err)).Inc()
	}

	if canValidate {
		validationTime.WithLabelValues(fmt.Sprintf("%T", value), hasError).
			Observe(float64(elapsed) / float64(time.Millisecond))
	}
}
