package csvio_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/aebalz/ubermensch-tracker/internal/csvio"
	"github.com/aebalz/ubermensch-tracker/internal/model"
)

func TestExportQuotesFieldsButNotHeader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := csvio.Equipment.Export(&buf, []model.FitnessEquipment{
		{ID: "1", Name: "Kettlebell", Type: "Weights", UsageNotes: `Swings, "Turkish" get-ups`},
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "Name,Type,Usage Notes\n" + `"Kettlebell","Weights","Swings, ""Turkish"" get-ups"`
	if buf.String() != want {
		t.Fatalf("unexpected export:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestSupplementsRoundTrip(t *testing.T) {
	t.Parallel()
	in := []model.Supplement{
		{ID: "a", Name: "Magnesium, glycinate", Purpose: "Sleep", Category: "Mineral", Notes: `take with "food"`,
			Timing: model.TimingPM, NextRefillDate: "2025-03-01", TakenToday: true,
			LowStockThreshold: model.IntPtr(5), CurrentStock: model.IntPtr(30)},
		{ID: "b", Name: "Vitamin D", Timing: model.TimingAM},
	}
	var buf bytes.Buffer
	if err := csvio.Supplements.Export(&buf, in); err != nil {
		t.Fatalf("export: %v", err)
	}
	out, err := csvio.Supplements.Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	for i := range in {
		in[i].ID = ""
		in[i].TakenToday = false
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestRecipesRoundTrip(t *testing.T) {
	t.Parallel()
	in := []model.Recipe{{
		Name:         "Green smoothie",
		Ingredients:  "spinach\nbanana\noat milk",
		Instructions: "Blend, serve cold.",
		Tags:         []string{"Gut Health", "Energy Boost"},
		Calories:     model.IntPtr(320),
		PrepTime:     "5 mins",
	}}
	var buf bytes.Buffer
	if err := csvio.Recipes.Export(&buf, in); err != nil {
		t.Fatalf("export: %v", err)
	}
	out, err := csvio.Recipes.Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestFoodWorkoutsEquipmentRoundTrip(t *testing.T) {
	t.Parallel()
	food := []model.FoodItem{{Name: "Eggs", Quantity: "1 dozen", Source: "Farm", Notes: "", CurrentStock: model.IntPtr(0), LowStockThreshold: model.IntPtr(2)}}
	workouts := []model.WorkoutPlan{{Name: "Leg day", Type: "Strength", AssignedDate: "2025-02-10", Duration: "60", Intensity: model.IntensityHigh, Completed: true}}
	equipment := []model.FitnessEquipment{{Name: "Rower", Type: "Cardio", UsageNotes: "20 min intervals"}}

	var buf bytes.Buffer
	_ = csvio.Food.Export(&buf, food)
	gotFood, err := csvio.Food.Import(&buf)
	if err != nil || !reflect.DeepEqual(gotFood, food) {
		t.Fatalf("food round trip: %+v, %v", gotFood, err)
	}

	buf.Reset()
	_ = csvio.Workouts.Export(&buf, workouts)
	gotWorkouts, err := csvio.Workouts.Import(&buf)
	if err != nil || !reflect.DeepEqual(gotWorkouts, workouts) {
		t.Fatalf("workouts round trip: %+v, %v", gotWorkouts, err)
	}

	buf.Reset()
	_ = csvio.Equipment.Export(&buf, equipment)
	gotEquipment, err := csvio.Equipment.Import(&buf)
	if err != nil || !reflect.DeepEqual(gotEquipment, equipment) {
		t.Fatalf("equipment round trip: %+v, %v", gotEquipment, err)
	}
}

func TestMetricsRoundTrip(t *testing.T) {
	t.Parallel()
	ts := time.Date(2025, 1, 15, 8, 30, 0, 0, time.Local)
	in := []model.HealthMetric{{Name: "Blood Pressure", Value: "120/80", Unit: "mmHg", TargetValue: "115/75", Timestamp: ts, Notes: "Morning"}}

	var buf bytes.Buffer
	if err := csvio.Metrics.Export(&buf, in); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(buf.String(), `"2025-01-15 08:30:00"`) {
		t.Fatalf("unexpected timestamp format:\n%s", buf.String())
	}
	out, err := csvio.Metrics.Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(out) != 1 || !out[0].Timestamp.Equal(ts) || out[0].Value != "120/80" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestImportSkipsBlankAndShortLines(t *testing.T) {
	t.Parallel()
	src := "Name,Type,Usage Notes\n\n\"Bench\",\"Weights\",\"Flat\"\n\"Mat\"\n\n\"Bands\",\"Resistance\",\"\"\n"
	out, err := csvio.Equipment.Import(strings.NewReader(src))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Bench" || out[1].Name != "Bands" {
		t.Fatalf("unexpected records: %+v", out)
	}
}

func TestImportDefaultsSupplementTiming(t *testing.T) {
	t.Parallel()
	src := "Name,Purpose,Category,Notes\nZinc,Immunity,Mineral,\n"
	out, err := csvio.Supplements.Import(strings.NewReader(src))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(out) != 1 || out[0].Timing != model.TimingBoth || out[0].CurrentStock != nil {
		t.Fatalf("unexpected record: %+v", out)
	}
}

func TestImportIsAllOrNothing(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"bad number": "Name,Quantity,Source,Notes,Current Stock,Low Stock Threshold\n" +
			"Rice,1 bag,Store,,4,1\nOats,1 bag,Store,,lots,1\n",
		"bad enum": "Name,Type,Assigned Date,Duration (mins),Intensity,Completed,Notes\n" +
			"Run,Cardio,2025-02-01,30,Extreme,No,\n",
	}
	for name, src := range cases {
		var err error
		if strings.HasPrefix(src, "Name,Quantity") {
			_, err = csvio.Food.Import(strings.NewReader(src))
		} else {
			_, err = csvio.Workouts.Import(strings.NewReader(src))
		}
		if !errors.Is(err, csvio.ErrImport) {
			t.Fatalf("%s: expected ErrImport, got %v", name, err)
		}
	}
}

func TestImportEmptyFile(t *testing.T) {
	t.Parallel()
	out, err := csvio.Food.Import(strings.NewReader(""))
	if err != nil || len(out) != 0 {
		t.Fatalf("expected no records, got %+v, %v", out, err)
	}
}
