package model

// DateLayout is the calendar-day format used as the daily log key.
const DateLayout = "2006-01-02"

type Mood struct {
	Score int      `json:"score" validate:"min=1,max=10"`
	Tags  []string `json:"tags"`
}

type Cramps struct {
	Severity string `json:"severity" validate:"required,oneof=None Mild Moderate Severe"`
	Location string `json:"location,omitempty"`
}

type Meal struct {
	Description string `json:"description" validate:"required"`
	Calories    *int   `json:"calories,omitempty" validate:"omitempty,min=0"`
	Time        string `json:"time,omitempty"`
}

type Smoothie struct {
	Had         bool   `json:"had"`
	Ingredients string `json:"ingredients,omitempty"`
}

// DailyLog is the journal for one calendar day. At most one log is stored per Date.
type DailyLog struct {
	ID               string    `json:"id"`
	Date             string    `json:"date" validate:"required,datetime=2006-01-02"`
	WakeTime         string    `json:"wakeTime,omitempty"`
	SleepTime        string    `json:"sleepTime,omitempty"`
	Weight           string    `json:"weight,omitempty"`
	Mood             *Mood     `json:"mood,omitempty"`
	EnergyLevel      *int      `json:"energyLevel,omitempty" validate:"omitempty,min=1,max=10"`
	SexualEnergy     string    `json:"sexualEnergy,omitempty" validate:"omitempty,oneof=Low Normal High"`
	StoolQuality     string    `json:"stoolQuality,omitempty" validate:"omitempty,oneof=Solid Soft Loose Liquid"`
	BowelMovements   *int      `json:"bowelMovements,omitempty" validate:"omitempty,min=0"`
	Cramps           *Cramps   `json:"cramps,omitempty"`
	SupplementsTaken []string  `json:"supplementsTaken,omitempty"`
	Meals            []Meal    `json:"meals,omitempty" validate:"dive"`
	Smoothie         *Smoothie `json:"smoothie,omitempty"`
	Hydration        *int      `json:"hydration,omitempty" validate:"omitempty,min=0"`
	WorkoutCompleted string    `json:"workoutCompleted,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}

func (d *DailyLog) GetID() string   { return d.ID }
func (d *DailyLog) SetID(id string) { d.ID = id }

// MoodTags is the tag catalogue offered for the daily mood.
var MoodTags = []string{"Calm", "Anxious", "Focused", "Tired", "Energetic", "Happy", "Sad", "Stressed"}

// NewDailyLog returns the default log for a day, matching the defaults of the daily form.
func NewDailyLog(date string) DailyLog {
	return DailyLog{
		Date:             date,
		WakeTime:         "07:00",
		SleepTime:        "22:00",
		Mood:             &Mood{Score: 5, Tags: []string{}},
		EnergyLevel:      IntPtr(5),
		SexualEnergy:     "Normal",
		StoolQuality:     "Solid",
		BowelMovements:   IntPtr(0),
		Cramps:           &Cramps{Severity: "None"},
		SupplementsTaken: []string{},
		Meals:            []Meal{},
		Smoothie:         &Smoothie{},
		Hydration:        IntPtr(0),
	}
}
