package domain

import (
	"errors"
	"math"
	"time"
)

// TimestampLayout is the textual form of timestamps at the storage boundary.
// It keeps the offset and sorts lexically for a fixed offset.
const TimestampLayout = time.RFC3339Nano

// DurationMinutes returns the elapsed minutes between start and end.
// time.Time.Sub saturates near 292 years, so the span is taken from whole
// seconds and nanoseconds separately.
func DurationMinutes(start, end time.Time) float64 {
	secs := float64(end.Unix()-start.Unix()) + float64(end.Nanosecond()-start.Nanosecond())/1e9
	return secs / 60
}

// TotalValue bills durationMinutes at hourlyRate.
func TotalValue(durationMinutes, hourlyRate float64) float64 {
	return (durationMinutes / 60) * hourlyRate
}

// Prepare derives the billing figures for req and shapes it for the store.
// It performs no I/O.
func Prepare(req CreateProjectRequest) (NewProject, error) {
	if !req.EndTime.After(req.StartTime) {
		return NewProject{}, ErrInvalidInterval
	}
	if math.IsNaN(req.HourlyRate) || math.IsInf(req.HourlyRate, 0) {
		return NewProject{}, ErrInvalidRateValue
	}
	if req.HourlyRate <= 0 {
		return NewProject{}, ErrInvalidRate
	}

	minutes := DurationMinutes(req.StartTime, req.EndTime)
	total := TotalValue(minutes, req.HourlyRate)
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return NewProject{}, ErrValueOverflow
	}

	return NewProject{
		ProjectName:     req.ProjectName,
		TaskOwner:       req.TaskOwner,
		ProjectType:     req.ProjectType,
		StartTime:       req.StartTime.Format(TimestampLayout),
		EndTime:         req.EndTime.Format(TimestampLayout),
		HourlyRate:      req.HourlyRate,
		DurationMinutes: minutes,
		TotalValue:      total,
	}, nil
}

// PrepareViolation attributes an error returned by Prepare to the request
// field that caused it.
func PrepareViolation(err error) Violation {
	field := "hourly_rate"
	if errors.Is(err, ErrInvalidInterval) {
		field = "end_time"
	}
	return Violation{Field: field, Message: err.Error(), err: err}
}
