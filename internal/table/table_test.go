package table_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/aebalz/ubermensch-tracker/internal/table"
)

type row struct {
	Name  string
	Stock *int
	Taken bool
}

func intp(v int) *int { return &v }

func columns() []table.Column[row] {
	return []table.Column[row]{
		{Header: "Name", Key: "name", Value: func(r row) any { return r.Name }},
		{Header: "Stock", Key: "stock", Value: func(r row) any { return r.Stock }},
		{
			Header: "Taken Today",
			Key:    "taken",
			Value:  func(r row) any { return r.Taken },
			Render: func(r row) string {
				if r.Taken {
					return "Yes"
				}
				return "No"
			},
		},
	}
}

func sample() []row {
	return []row{
		{Name: "Zinc", Stock: intp(10)},
		{Name: "Creatine", Stock: intp(2), Taken: true},
		{Name: "Magnesium", Stock: nil},
		{Name: "Ashwagandha", Stock: intp(10)},
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestClickCyclesAscendingDescendingUnsorted(t *testing.T) {
	t.Parallel()
	tbl := table.New(columns(), sample())

	if err := tbl.ClickHeader("name"); err != nil {
		t.Fatalf("click: %v", err)
	}
	if got := names(tbl.Sorted()); !reflect.DeepEqual(got, []string{"Ashwagandha", "Creatine", "Magnesium", "Zinc"}) {
		t.Fatalf("ascending order wrong: %v", got)
	}

	_ = tbl.ClickHeader("name")
	if got := names(tbl.Sorted()); !reflect.DeepEqual(got, []string{"Zinc", "Magnesium", "Creatine", "Ashwagandha"}) {
		t.Fatalf("descending order wrong: %v", got)
	}

	_ = tbl.ClickHeader("name")
	if tbl.Sort.Active() {
		t.Fatalf("expected third click to clear the sort, got %+v", tbl.Sort)
	}
	if got := names(tbl.Sorted()); !reflect.DeepEqual(got, names(sample())) {
		t.Fatalf("expected insertion order after third click, got %v", got)
	}
}

func TestClickingAnotherColumnResetsToAscending(t *testing.T) {
	t.Parallel()
	tbl := table.New(columns(), sample())
	_ = tbl.ClickHeader("name")
	_ = tbl.ClickHeader("name")
	_ = tbl.ClickHeader("stock")

	want := table.SortState{Key: "stock", Direction: table.Ascending}
	if tbl.Sort != want {
		t.Fatalf("expected %+v, got %+v", want, tbl.Sort)
	}
	// nil stock sorts first, equal stocks keep insertion order.
	if got := names(tbl.Sorted()); !reflect.DeepEqual(got, []string{"Magnesium", "Creatine", "Zinc", "Ashwagandha"}) {
		t.Fatalf("unexpected stock order: %v", got)
	}

	_ = tbl.ClickHeader("stock")
	if got := names(tbl.Sorted()); !reflect.DeepEqual(got, []string{"Zinc", "Ashwagandha", "Creatine", "Magnesium"}) {
		t.Fatalf("descending must stay stable for equal keys: %v", got)
	}
}

func TestClickUnknownColumn(t *testing.T) {
	t.Parallel()
	tbl := table.New(columns(), sample())
	if err := tbl.ClickHeader("nope"); err == nil {
		t.Fatalf("expected unknown column to fail")
	}
}

func TestSortedDoesNotReorderInput(t *testing.T) {
	t.Parallel()
	in := sample()
	tbl := table.New(columns(), in)
	_ = tbl.ClickHeader("name")
	_ = tbl.Sorted()
	if !reflect.DeepEqual(names(in), names(sample())) {
		t.Fatalf("input slice was reordered: %v", names(in))
	}
}

func TestRenderUsesCustomRendererAndActions(t *testing.T) {
	t.Parallel()
	tbl := table.New(columns(), sample()[:2])
	tbl.OnDelete = func(row) error { return nil }

	v := tbl.Render()
	if !reflect.DeepEqual(v.Headers, []string{"Name", "Stock", "Taken Today", "Actions"}) {
		t.Fatalf("unexpected headers: %v", v.Headers)
	}
	if !reflect.DeepEqual(v.Rows[1], []string{"Creatine", "2", "Yes", "delete"}) {
		t.Fatalf("unexpected row: %v", v.Rows[1])
	}
	if v.Placeholder != "" {
		t.Fatalf("unexpected placeholder %q", v.Placeholder)
	}
}

func TestRenderEmptyShowsSinglePlaceholderRow(t *testing.T) {
	t.Parallel()
	tbl := table.New(columns(), nil)
	tbl.OnEdit = func(row) error { return nil }

	v := tbl.Render()
	if len(v.Rows) != 1 || v.Rows[0][0] != table.NoDataText {
		t.Fatalf("expected one placeholder row, got %v", v.Rows)
	}
	if v.Span != 4 {
		t.Fatalf("expected placeholder to span 4 columns, got %d", v.Span)
	}

	out := table.Terminal(v, -1)
	if !strings.Contains(out, table.NoDataText) {
		t.Fatalf("terminal output misses placeholder:\n%s", out)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	t.Parallel()
	var deleted []string
	tbl := table.New(columns(), sample())
	tbl.OnDelete = func(r row) error {
		deleted = append(deleted, r.Name)
		return nil
	}

	tbl.Confirm = func(row) bool { return false }
	fired, err := tbl.Delete(0)
	if err != nil || fired || len(deleted) != 0 {
		t.Fatalf("expected declined delete to do nothing, fired=%v err=%v deleted=%v", fired, err, deleted)
	}

	tbl.Confirm = func(row) bool { return true }
	_ = tbl.ClickHeader("name")
	fired, err = tbl.Delete(0)
	if err != nil || !fired {
		t.Fatalf("expected confirmed delete, fired=%v err=%v", fired, err)
	}
	if !reflect.DeepEqual(deleted, []string{"Ashwagandha"}) {
		t.Fatalf("delete must address the visible row, got %v", deleted)
	}

	if _, err := tbl.Delete(10); !errors.Is(err, table.ErrRowOutOfRange) {
		t.Fatalf("expected ErrRowOutOfRange, got %v", err)
	}
}

func TestEditPassesVisibleRow(t *testing.T) {
	t.Parallel()
	var edited string
	tbl := table.New(columns(), sample())
	tbl.OnEdit = func(r row) error {
		edited = r.Name
		return nil
	}
	if err := tbl.Edit(1); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited != "Creatine" {
		t.Fatalf("expected Creatine, got %q", edited)
	}
}

func TestReplay(t *testing.T) {
	t.Parallel()
	cases := []struct {
		clicks int
		want   table.Direction
	}{
		{0, table.Unsorted},
		{1, table.Ascending},
		{2, table.Descending},
		{3, table.Unsorted},
		{4, table.Ascending},
	}
	for _, tc := range cases {
		if got := table.Replay("name", tc.clicks).Direction; got != tc.want {
			t.Fatalf("%d clicks: expected %v, got %v", tc.clicks, tc.want, got)
		}
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	if table.Compare(2, 10) >= 0 {
		t.Fatalf("numbers must compare numerically")
	}
	if table.Compare("10", "2") >= 0 {
		t.Fatalf("strings must compare lexically")
	}
	if table.Compare(false, true) >= 0 {
		t.Fatalf("false must sort before true")
	}
	if table.Compare(nil, "a") >= 0 || table.Compare((*int)(nil), intp(0)) >= 0 {
		t.Fatalf("absent values must sort first")
	}
	if table.Compare(intp(3), 3.0) != 0 {
		t.Fatalf("pointer and float of equal value must compare equal")
	}
}
