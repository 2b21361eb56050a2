package domain

import (
	"math"
	"strings"
)

// Validate checks req against the record contract and returns every
// violated constraint. An empty result means req may be derived and stored.
func Validate(req CreateProjectRequest) []Violation {
	var out []Violation

	required := []struct {
		field string
		value string
	}{
		{"project_name", req.ProjectName},
		{"task_owner", req.TaskOwner},
		{"project_type", req.ProjectType},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			out = append(out, Violation{Field: r.field, Message: "must not be empty"})
		}
	}

	if req.StartTime.IsZero() {
		out = append(out, Violation{Field: "start_time", Message: "is required"})
	}
	if req.EndTime.IsZero() {
		out = append(out, Violation{Field: "end_time", Message: "is required"})
	}

	switch {
	case math.IsNaN(req.HourlyRate) || math.IsInf(req.HourlyRate, 0):
		out = append(out, Violation{Field: "hourly_rate", Message: ErrInvalidRateValue.Error(), err: ErrInvalidRateValue})
	case req.HourlyRate <= 0:
		out = append(out, Violation{Field: "hourly_rate", Message: ErrInvalidRate.Error(), err: ErrInvalidRate})
	}

	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.EndTime.After(req.StartTime) {
		out = append(out, Violation{Field: "end_time", Message: ErrInvalidInterval.Error(), err: ErrInvalidInterval})
	}

	return out
}
