package model

// Intensity of a planned workout.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// WorkoutPlan is a workout assigned to a date. Duration is in minutes, kept as text.
type WorkoutPlan struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Type         string    `json:"type,omitempty"`
	AssignedDate string    `json:"assignedDate" validate:"required,datetime=2006-01-02"`
	Duration     string    `json:"duration,omitempty"`
	Intensity    Intensity `json:"intensity,omitempty" validate:"omitempty,oneof=Low Medium High"`
	Completed    bool      `json:"completed"`
	Notes        string    `json:"notes"`
}

func (w *WorkoutPlan) GetID() string   { return w.ID }
func (w *WorkoutPlan) SetID(id string) { w.ID = id }

// WorkoutTypes is the catalogue offered when planning a workout.
var WorkoutTypes = []string{
	"Strength",
	"Hypertrophy",
	"Endurance",
	"HIIT",
	"Recovery",
	"Mobility",
	"Cardio",
	"CrossFit",
	"Calisthenics",
}
