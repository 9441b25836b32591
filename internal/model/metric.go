package model

import (
	"strconv"
	"strings"
	"time"
)

// HealthMetric is a single measurement. Value is free text because readings like
// blood pressure ("120/80") are not numeric.
type HealthMetric struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Value       string    `json:"value" validate:"required"`
	Unit        string    `json:"unit,omitempty"`
	TargetValue string    `json:"targetValue,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Notes       string    `json:"notes"`
}

func (m *HealthMetric) GetID() string   { return m.ID }
func (m *HealthMetric) SetID(id string) { m.ID = id }

// Progress returns value/target as a percentage, or 0 when either side is not a number.
func (m *HealthMetric) Progress() float64 {
	current, err := parseLeadingFloat(m.Value)
	if err != nil {
		return 0
	}
	target, err := parseLeadingFloat(m.TargetValue)
	if err != nil || target == 0 {
		return 0
	}
	return current / target * 100
}

// parseLeadingFloat parses the numeric prefix of s the way a lenient form field does ("185 lbs" -> 185).
func parseLeadingFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || ((c == '-' || c == '+') && end == 0) {
			end++
			continue
		}
		break
	}
	return strconv.ParseFloat(s[:end], 64)
}
