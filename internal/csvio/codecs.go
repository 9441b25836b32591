package csvio

import (
	"fmt"
	"strings"
	"time"

	"github.com/aebalz/ubermensch-tracker/internal/model"
)

// TimestampLayout is the metric timestamp format used in exported files.
const TimestampLayout = "2006-01-02 15:04:05"

var Supplements = Codec[model.Supplement]{
	Name:      "supplements.csv",
	Header:    []string{"Name", "Purpose", "Category", "Notes", "Timing", "Next Refill Date", "Low Stock Threshold", "Current Stock"},
	MinFields: 4,
	Encode: func(s model.Supplement) []string {
		return []string{s.Name, s.Purpose, s.Category, s.Notes, string(s.Timing), s.NextRefillDate,
			formatInt(s.LowStockThreshold), formatInt(s.CurrentStock)}
	},
	Decode: func(rec []string) (model.Supplement, error) {
		s := model.Supplement{
			Name:           rec[0],
			Purpose:        rec[1],
			Category:       rec[2],
			Notes:          rec[3],
			Timing:         model.Timing(strings.ToUpper(field(rec, 4))),
			NextRefillDate: field(rec, 5),
		}
		if s.Timing == "" {
			s.Timing = model.TimingBoth
		}
		var err error
		if s.LowStockThreshold, err = parseInt(field(rec, 6), "Low Stock Threshold"); err != nil {
			return s, err
		}
		if s.CurrentStock, err = parseInt(field(rec, 7), "Current Stock"); err != nil {
			return s, err
		}
		return s, nil
	},
}

var Food = Codec[model.FoodItem]{
	Name:      "food_inventory.csv",
	Header:    []string{"Name", "Quantity", "Source", "Notes", "Current Stock", "Low Stock Threshold"},
	MinFields: 6,
	Encode: func(f model.FoodItem) []string {
		return []string{f.Name, f.Quantity, f.Source, f.Notes, formatInt(f.CurrentStock), formatInt(f.LowStockThreshold)}
	},
	Decode: func(rec []string) (model.FoodItem, error) {
		f := model.FoodItem{Name: rec[0], Quantity: rec[1], Source: rec[2], Notes: rec[3]}
		var err error
		if f.CurrentStock, err = parseInt(rec[4], "Current Stock"); err != nil {
			return f, err
		}
		if f.LowStockThreshold, err = parseInt(rec[5], "Low Stock Threshold"); err != nil {
			return f, err
		}
		return f, nil
	},
}

var Recipes = Codec[model.Recipe]{
	Name:      "recipes.csv",
	Header:    []string{"Name", "Ingredients", "Instructions", "Tags", "Calories", "Protein (g)", "Prep Time"},
	MinFields: 7,
	Encode: func(r model.Recipe) []string {
		return []string{r.Name, r.Ingredients, r.Instructions, strings.Join(r.Tags, ";"),
			formatInt(r.Calories), formatInt(r.Protein), r.PrepTime}
	},
	Decode: func(rec []string) (model.Recipe, error) {
		r := model.Recipe{Name: rec[0], Ingredients: rec[1], Instructions: rec[2], Tags: []string{}, PrepTime: rec[6]}
		for _, tag := range strings.Split(rec[3], ";") {
			if tag = strings.TrimSpace(tag); tag != "" {
				r.Tags = append(r.Tags, tag)
			}
		}
		var err error
		if r.Calories, err = parseInt(rec[4], "Calories"); err != nil {
			return r, err
		}
		if r.Protein, err = parseInt(rec[5], "Protein (g)"); err != nil {
			return r, err
		}
		return r, nil
	},
}

var Metrics = Codec[model.HealthMetric]{
	Name:      "health_metrics.csv",
	Header:    []string{"Name", "Value", "Unit", "Target Value", "Timestamp", "Notes"},
	MinFields: 6,
	Encode: func(m model.HealthMetric) []string {
		ts := ""
		if !m.Timestamp.IsZero() {
			ts = m.Timestamp.In(time.Local).Format(TimestampLayout)
		}
		return []string{m.Name, m.Value, m.Unit, m.TargetValue, ts, m.Notes}
	},
	Decode: func(rec []string) (model.HealthMetric, error) {
		m := model.HealthMetric{Name: rec[0], Value: rec[1], Unit: rec[2], TargetValue: rec[3], Notes: rec[5]}
		ts, err := parseTimestamp(rec[4])
		if err != nil {
			return m, err
		}
		m.Timestamp = ts
		return m, nil
	},
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(TimestampLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(model.DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("column Timestamp: %q is not a date", s)
}

var Workouts = Codec[model.WorkoutPlan]{
	Name:      "workout_plans.csv",
	Header:    []string{"Name", "Type", "Assigned Date", "Duration (mins)", "Intensity", "Completed", "Notes"},
	MinFields: 7,
	Encode: func(w model.WorkoutPlan) []string {
		return []string{w.Name, w.Type, w.AssignedDate, w.Duration, string(w.Intensity), yesNo(w.Completed), w.Notes}
	},
	Decode: func(rec []string) (model.WorkoutPlan, error) {
		return model.WorkoutPlan{
			Name:         rec[0],
			Type:         rec[1],
			AssignedDate: rec[2],
			Duration:     rec[3],
			Intensity:    model.Intensity(rec[4]),
			Completed:    strings.EqualFold(rec[5], "yes"),
			Notes:        rec[6],
		}, nil
	},
}

var Equipment = Codec[model.FitnessEquipment]{
	Name:      "fitness_equipment.csv",
	Header:    []string{"Name", "Type", "Usage Notes"},
	MinFields: 3,
	Encode: func(e model.FitnessEquipment) []string {
		return []string{e.Name, e.Type, e.UsageNotes}
	},
	Decode: func(rec []string) (model.FitnessEquipment, error) {
		return model.FitnessEquipment{Name: rec[0], Type: rec[1], UsageNotes: rec[2]}, nil
	},
}
