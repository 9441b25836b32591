package repository

import (
	"time"

	"github.com/aebalz/ubermensch-tracker/internal/model"
)

func seedFood() []model.FoodItem {
	return []model.FoodItem{
		{ID: model.NewID(), Name: "Organic Eggs", Quantity: "12", Source: "Local Farm", Notes: "Cage-free", CurrentStock: model.IntPtr(24), LowStockThreshold: model.IntPtr(6)},
		{ID: model.NewID(), Name: "Almond Milk", Quantity: "1 carton", Source: "Thrive Market", Notes: "Unsweetened", CurrentStock: model.IntPtr(3), LowStockThreshold: model.IntPtr(2)},
		{ID: model.NewID(), Name: "Chicken Breast", Quantity: "2 lbs", Source: "Whole Foods", Notes: "Free-range, organic", CurrentStock: model.IntPtr(4), LowStockThreshold: model.IntPtr(2)},
		{ID: model.NewID(), Name: "Sweet Potatoes", Quantity: "5", Source: "Farmers Market", Notes: "Medium size", CurrentStock: model.IntPtr(8), LowStockThreshold: model.IntPtr(3)},
	}
}

func seedMetrics(now time.Time) []model.HealthMetric {
	return []model.HealthMetric{
		{ID: model.NewID(), Name: "Weight", Value: "185", Unit: "lbs", TargetValue: "175", Timestamp: now, Notes: "Morning weight"},
		{ID: model.NewID(), Name: "Blood Pressure", Value: "120/80", Unit: "mmHg", TargetValue: "115/75", Timestamp: now, Notes: "Pre-workout"},
		{ID: model.NewID(), Name: "Resting Heart Rate", Value: "68", Unit: "bpm", TargetValue: "60", Timestamp: now, Notes: "Morning measurement"},
		{ID: model.NewID(), Name: "Body Fat", Value: "15", Unit: "%", TargetValue: "12", Timestamp: now, Notes: "Measured with calipers"},
	}
}

func seedWorkouts(now time.Time) []model.WorkoutPlan {
	return []model.WorkoutPlan{
		{
			ID:           model.NewID(),
			Name:         "Upper Body Power",
			Type:         "Strength",
			AssignedDate: now.AddDate(0, 0, 1).Format(model.DateLayout),
			Duration:     "60",
			Intensity:    model.IntensityHigh,
			Notes:        "Focus on progressive overload for chest and back",
		},
		{
			ID:           model.NewID(),
			Name:         "Lower Body Hypertrophy",
			Type:         "Hypertrophy",
			AssignedDate: now.AddDate(0, 0, 2).Format(model.DateLayout),
			Duration:     "75",
			Intensity:    model.IntensityMedium,
			Notes:        "High volume leg workout with moderate weights",
		},
	}
}

func seedEquipment() []model.FitnessEquipment {
	return []model.FitnessEquipment{
		{ID: model.NewID(), Name: "Dumbbells", Type: "Weights", UsageNotes: "5-50lbs set, adjustable"},
		{ID: model.NewID(), Name: "Resistance Bands", Type: "Strength", UsageNotes: "Various resistance levels"},
		{ID: model.NewID(), Name: "Yoga Mat", Type: "Recovery", UsageNotes: "Extra thick for comfort"},
		{ID: model.NewID(), Name: "Jump Rope", Type: "Cardio", UsageNotes: "Speed rope with ball bearings"},
	}
}

func seedNotes() []model.Note {
	return []model.Note{
		{
			ID:        model.NewID(),
			Content:   "Need to research new protein supplement options - current one causing mild digestive discomfort.",
			CreatedAt: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        model.NewID(),
			Content:   "Schedule appointment with nutritionist to discuss meal plan optimization for muscle recovery.",
			CreatedAt: time.Date(2025, 1, 16, 14, 45, 0, 0, time.UTC),
		},
	}
}
