package handler

import (
	"github.com/rs/zerolog"

	"github.com/aebalz/ubermensch-tracker/internal/assistant"
	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/store"
)

// Handlers groups every HTTP handler served by the API.
type Handlers struct {
	Health      *HealthHandler
	Supplements *SupplementHandler
	Food        *FoodHandler
	Recipes     *RecipeHandler
	Metrics     *MetricHandler
	Workouts    *WorkoutHandler
	Equipment   *TrackerHandler[model.FitnessEquipment, *model.FitnessEquipment]
	DailyLogs   *DailyLogHandler
	Notes       *NoteHandler
	Data        *DataHandler
	Assistant   *AssistantHandler
}

// New builds the handlers over the tracker services.
func New(s store.Store, svc *service.Services, ai *assistant.Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		Supplements: NewSupplementHandler(svc.Supplements),
		Food:        NewFoodHandler(svc.Food),
		Recipes:     NewRecipeHandler(svc.Recipes),
		Metrics:     NewMetricHandler(svc.Metrics),
		Workouts:    NewWorkoutHandler(svc.Workouts),
		Equipment:   NewTrackerHandler(svc.Equipment.Tracker),
		DailyLogs:   NewDailyLogHandler(svc.DailyLogs),
		Notes:       NewNoteHandler(svc.Notes),
		Data:        NewDataHandler(svc, log),
		Assistant:   NewAssistantHandler(ai),
	}
}
