package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRequest() CreateProjectRequest {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return CreateProjectRequest{
		ProjectName: "Sales Dashboard",
		TaskOwner:   "Maria Souza",
		ProjectType: "Data Engineering",
		StartTime:   start,
		EndTime:     start.Add(90 * time.Minute),
		HourlyRate:  100,
	}
}

func fields(vs []Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Field)
	}
	return out
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(validRequest()))
}

func TestValidate_EqualTimes(t *testing.T) {
	req := validRequest()
	req.StartTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	req.EndTime = req.StartTime
	req.HourlyRate = 50

	vs := Validate(req)
	assert.Equal(t, []string{"end_time"}, fields(vs))

	err := NewValidationError(vs)
	assert.Equal(t, KindValidation, err.Kind)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.NotErrorIs(t, err, ErrInvalidRate)
}

func TestValidate_CollectsEverything(t *testing.T) {
	req := CreateProjectRequest{
		ProjectName: "   ",
		HourlyRate:  -5,
	}

	vs := Validate(req)
	assert.Equal(t, []string{
		"project_name", "task_owner", "project_type", "start_time", "end_time", "hourly_rate",
	}, fields(vs))

	err := NewValidationError(vs)
	assert.ErrorIs(t, err, ErrInvalidRate)
	assert.Contains(t, err.Error(), "project_name: must not be empty")
	assert.Contains(t, err.Error(), "hourly_rate: hourly_rate must be greater than 0")
}

func TestValidate_RateAndInterval(t *testing.T) {
	req := validRequest()
	req.EndTime = req.StartTime.Add(-time.Hour)
	req.HourlyRate = 0

	err := NewValidationError(Validate(req))
	assert.ErrorIs(t, err, ErrInvalidRate)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestValidate_NonFiniteRate(t *testing.T) {
	for _, rate := range []float64{math.Inf(1), math.NaN()} {
		req := validRequest()
		req.HourlyRate = rate

		vs := Validate(req)
		assert.Equal(t, []string{"hourly_rate"}, fields(vs))
		assert.ErrorIs(t, NewValidationError(vs), ErrInvalidRateValue)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound()))
	assert.Equal(t, KindNotFound, KindOf(ErrNotFound))
	assert.Equal(t, KindValidation, KindOf(NewValidationError([]Violation{{Field: "x", Message: "y"}})))
	assert.Equal(t, KindStore, KindOf(StoreError(assert.AnError)))
	assert.Equal(t, KindStore, KindOf(assert.AnError))
}

func TestStoreError_Message(t *testing.T) {
	err := StoreError(assert.AnError)
	assert.Equal(t, "store error: "+assert.AnError.Error(), err.Error())
	assert.ErrorIs(t, err, assert.AnError)
}
