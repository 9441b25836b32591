package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/table"
)

func stockCell(stock, threshold *int) string {
	s := table.FormatValue(stock)
	if t := model.IntValue(threshold); t > 0 && model.IntValue(stock) <= t {
		s += " (low)"
	}
	return s
}

func dayCell(date string) string {
	if date == "" {
		return "-"
	}
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Jan 2, 2006")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func withUnit(value, unit string) string {
	if value == "" {
		return "-"
	}
	if unit == "" {
		return value
	}
	return value + " " + unit
}

var supplementColumns = []table.Column[model.Supplement]{
	{Header: "Name", Key: "name", Value: func(s model.Supplement) any { return s.Name }},
	{Header: "Purpose", Key: "purpose", Value: func(s model.Supplement) any { return s.Purpose }},
	{Header: "Category", Key: "category", Value: func(s model.Supplement) any { return s.Category }},
	{Header: "Timing", Key: "timing", Value: func(s model.Supplement) any { return string(s.Timing) }},
	{
		Header: "Stock",
		Key:    "currentStock",
		Value:  func(s model.Supplement) any { return s.CurrentStock },
		Render: func(s model.Supplement) string { return stockCell(s.CurrentStock, s.LowStockThreshold) },
	},
	{
		Header: "Next Refill",
		Key:    "nextRefillDate",
		Value:  func(s model.Supplement) any { return s.NextRefillDate },
		Render: func(s model.Supplement) string { return dayCell(s.NextRefillDate) },
	},
	{
		Header: "Taken Today",
		Key:    "takenToday",
		Value:  func(s model.Supplement) any { return s.TakenToday },
		Render: func(s model.Supplement) string { return yesNo(s.TakenToday) },
	},
	{Header: "Notes", Key: "notes", Value: func(s model.Supplement) any { return s.Notes }},
}

var foodColumns = []table.Column[model.FoodItem]{
	{Header: "Name", Key: "name", Value: func(f model.FoodItem) any { return f.Name }},
	{Header: "Quantity", Key: "quantity", Value: func(f model.FoodItem) any { return f.Quantity }},
	{Header: "Source", Key: "source", Value: func(f model.FoodItem) any { return f.Source }},
	{
		Header: "Stock",
		Key:    "currentStock",
		Value:  func(f model.FoodItem) any { return f.CurrentStock },
		Render: func(f model.FoodItem) string { return stockCell(f.CurrentStock, f.LowStockThreshold) },
	},
	{Header: "Notes", Key: "notes", Value: func(f model.FoodItem) any { return f.Notes }},
}

var recipeColumns = []table.Column[model.Recipe]{
	{Header: "Name", Key: "name", Value: func(r model.Recipe) any { return r.Name }},
	{
		Header: "Tags",
		Key:    "tags",
		Value:  func(r model.Recipe) any { return strings.Join(r.Tags, ", ") },
	},
	{
		Header: "Nutrition",
		Key:    "calories",
		Value:  func(r model.Recipe) any { return r.Calories },
		Render: func(r model.Recipe) string {
			var parts []string
			if r.Calories != nil {
				parts = append(parts, fmt.Sprintf("%d calories", *r.Calories))
			}
			if r.Protein != nil {
				parts = append(parts, fmt.Sprintf("%dg protein", *r.Protein))
			}
			return strings.Join(parts, ", ")
		},
	},
	{Header: "Prep Time", Key: "prepTime", Value: func(r model.Recipe) any { return r.PrepTime }},
	{Header: "Instructions", Key: "instructions", Value: func(r model.Recipe) any { return r.Instructions }},
}

var metricColumns = []table.Column[model.HealthMetric]{
	{Header: "Name", Key: "name", Value: func(m model.HealthMetric) any { return m.Name }},
	{
		Header: "Value",
		Key:    "value",
		Value:  func(m model.HealthMetric) any { return m.Value },
		Render: func(m model.HealthMetric) string { return withUnit(m.Value, m.Unit) },
	},
	{
		Header: "Target",
		Key:    "targetValue",
		Value:  func(m model.HealthMetric) any { return m.TargetValue },
		Render: func(m model.HealthMetric) string { return withUnit(m.TargetValue, m.Unit) },
	},
	{
		Header: "Progress",
		Key:    "progress",
		Value:  func(m model.HealthMetric) any { return m.Progress() },
		Render: func(m model.HealthMetric) string {
			if m.TargetValue == "" {
				return "-"
			}
			return fmt.Sprintf("%.0f%%", DisplayProgress(m.Progress()))
		},
	},
	{
		Header: "Last Updated",
		Key:    "timestamp",
		Value:  func(m model.HealthMetric) any { return m.Timestamp },
		Render: func(m model.HealthMetric) string { return m.Timestamp.Format("Jan 2, 2006 15:04") },
	},
	{Header: "Notes", Key: "notes", Value: func(m model.HealthMetric) any { return m.Notes }},
}

var workoutColumns = []table.Column[model.WorkoutPlan]{
	{Header: "Name", Key: "name", Value: func(w model.WorkoutPlan) any { return w.Name }},
	{Header: "Type", Key: "type", Value: func(w model.WorkoutPlan) any { return w.Type }},
	{
		Header: "Date",
		Key:    "assignedDate",
		Value:  func(w model.WorkoutPlan) any { return w.AssignedDate },
		Render: func(w model.WorkoutPlan) string { return dayCell(w.AssignedDate) },
	},
	{
		Header: "Duration",
		Key:    "duration",
		Value:  func(w model.WorkoutPlan) any { return w.Duration },
		Render: func(w model.WorkoutPlan) string { return withUnit(w.Duration, "mins") },
	},
	{Header: "Intensity", Key: "intensity", Value: func(w model.WorkoutPlan) any { return string(w.Intensity) }},
	{
		Header: "Status",
		Key:    "completed",
		Value:  func(w model.WorkoutPlan) any { return w.Completed },
		Render: func(w model.WorkoutPlan) string {
			if w.Completed {
				return "Completed"
			}
			return "Pending"
		},
	},
	{Header: "Notes", Key: "notes", Value: func(w model.WorkoutPlan) any { return w.Notes }},
}

var equipmentColumns = []table.Column[model.FitnessEquipment]{
	{Header: "Name", Key: "name", Value: func(e model.FitnessEquipment) any { return e.Name }},
	{Header: "Type", Key: "type", Value: func(e model.FitnessEquipment) any { return e.Type }},
	{Header: "Usage Notes", Key: "usageNotes", Value: func(e model.FitnessEquipment) any { return e.UsageNotes }},
}

var dailyLogColumns = []table.Column[model.DailyLog]{
	{
		Header: "Date",
		Key:    "date",
		Value:  func(d model.DailyLog) any { return d.Date },
		Render: func(d model.DailyLog) string { return dayCell(d.Date) },
	},
	{
		Header: "Mood",
		Key:    "mood",
		Value: func(d model.DailyLog) any {
			if d.Mood == nil {
				return nil
			}
			return d.Mood.Score
		},
	},
	{Header: "Energy", Key: "energyLevel", Value: func(d model.DailyLog) any { return d.EnergyLevel }},
	{
		Header: "Hydration",
		Key:    "hydration",
		Value:  func(d model.DailyLog) any { return d.Hydration },
		Render: func(d model.DailyLog) string { return withUnit(table.FormatValue(d.Hydration), "oz") },
	},
	{Header: "Bowel Movements", Key: "bowelMovements", Value: func(d model.DailyLog) any { return d.BowelMovements }},
	{Header: "Meals", Key: "meals", Value: func(d model.DailyLog) any { return len(d.Meals) }},
	{Header: "Notes", Key: "notes", Value: func(d model.DailyLog) any { return d.Notes }},
}

var noteColumns = []table.Column[model.Note]{
	{
		Header: "Created",
		Key:    "createdAt",
		Value:  func(n model.Note) any { return n.CreatedAt },
	},
	{Header: "Content", Key: "content", Value: func(n model.Note) any { return n.Content }},
	{
		Header: "Reminder",
		Key:    "reminder",
		Value: func(n model.Note) any {
			if n.Reminder == nil {
				return nil
			}
			return n.Reminder.Time
		},
	},
}
