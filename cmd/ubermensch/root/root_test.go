package root

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aebalz/ubermensch-tracker/internal/app"
	"github.com/aebalz/ubermensch-tracker/internal/config"
	"github.com/aebalz/ubermensch-tracker/internal/model"
)

func testOpener(t *testing.T) Opener {
	t.Helper()
	cfg := &config.AppConfig{
		DBDriver:     "sqlite",
		SQLitePath:   filepath.Join(t.TempDir(), "cli.db"),
		StoreBackend: "database",
		Timezone:     "UTC",
	}
	return func(ctx context.Context, _ io.Writer) (*app.App, error) {
		return app.New(ctx, cfg, zerolog.New(io.Discard))
	}
}

func execute(t *testing.T, opener Opener, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(opener)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestImportExportTable(t *testing.T) {
	opener := testOpener(t)
	file := filepath.Join(t.TempDir(), "supplements.csv")
	csv := "Name,Purpose,Category,Notes,Timing\nZinc,Immunity,Mineral,,PM\nCreatine,Strength,Performance,,AM\n"
	if err := os.WriteFile(file, []byte(csv), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, opener, "", "import", "supplements", file)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Imported 2 supplements") {
		t.Errorf("import output = %q", out)
	}

	out, err = execute(t, opener, "", "export", "supplements")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out, "Name,Purpose,Category") || !strings.Contains(out, `"Creatine"`) {
		t.Errorf("export output = %q", out)
	}

	out, err = execute(t, opener, "", "table", "supplements", "--sort", "name")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if strings.Index(out, "Creatine") > strings.Index(out, "Zinc") {
		t.Errorf("table not sorted by name:\n%s", out)
	}

	out, err = execute(t, opener, "", "export", "all")
	if err != nil || !strings.Contains(out, `"supplements"`) {
		t.Errorf("export all = %q, %v", out, err)
	}
}

func TestResetAsksFirst(t *testing.T) {
	opener := testOpener(t)
	if _, err := execute(t, opener, "", "import", "supplements", writeCSV(t)); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, opener, "n\n", "reset")
	if err != nil || !strings.Contains(out, "Reset cancelled") {
		t.Fatalf("declined reset = %q, %v", out, err)
	}
	out, _ = execute(t, opener, "", "export", "supplements")
	if !strings.Contains(out, "Zinc") {
		t.Fatal("declined reset removed data")
	}

	if _, err := execute(t, opener, "", "reset", "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	out, _ = execute(t, opener, "", "export", "supplements")
	if strings.Contains(out, "Zinc") {
		t.Errorf("data survived reset: %q", out)
	}
}

func TestUnknownCollection(t *testing.T) {
	if _, err := execute(t, testOpener(t), "", "table", "vitamins"); err == nil {
		t.Fatal("expected an error for an unknown collection")
	}
	if _, err := execute(t, testOpener(t), "", "table", "daily-logs"); err != nil {
		t.Errorf("dashed collection name rejected: %v", err)
	}
}

func TestExportNotesAndDailyLogs(t *testing.T) {
	opener := testOpener(t)

	out, err := execute(t, opener, "", "export", "notes")
	if err != nil {
		t.Fatalf("export notes: %v", err)
	}
	if !strings.Contains(out, "nutritionist") || !strings.Contains(out, "---\n\n") {
		t.Errorf("notes export = %q", out)
	}

	out, err = execute(t, opener, "", "export", "daily-logs")
	if err != nil {
		t.Fatalf("export daily logs: %v", err)
	}
	var logs []model.DailyLog
	if err := json.Unmarshal([]byte(out), &logs); err != nil {
		t.Fatalf("daily logs export is not a JSON array: %v\n%s", err, out)
	}

	file := filepath.Join(t.TempDir(), "notes.txt")
	if _, err := execute(t, opener, "", "export", "notes", "-o", file); err != nil {
		t.Fatalf("export notes to file: %v", err)
	}
	data, err := os.ReadFile(file)
	if err != nil || !strings.Contains(string(data), "protein supplement") {
		t.Errorf("notes file = %q, %v", data, err)
	}
}

func TestFailedExportWritesNoFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.csv")
	if _, err := execute(t, testOpener(t), "", "export", "vitamins", "-o", file); err == nil {
		t.Fatal("expected an error for an unknown collection")
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Errorf("output file left behind after a failed export: %v", err)
	}
}

func writeCSV(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "s.csv")
	if err := os.WriteFile(file, []byte("Name,Purpose,Category,Notes\nZinc,Immunity,Mineral,\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return file
}
