// Package csvio converts tracker collections to and from the CSV files the trackers exchange.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aebalz/ubermensch-tracker/internal/model"
)

// ErrImport marks a CSV file that could not be imported. No record of such a file is kept.
var ErrImport = errors.New("csv import failed")

// Codec maps one entity type to a fixed column layout.
type Codec[T any] struct {
	// Name is the download file name.
	Name   string
	Header []string
	// MinFields is the shortest record accepted on import; shorter records are skipped.
	MinFields int
	Encode    func(T) []string
	Decode    func([]string) (T, error)
}

// Export writes the header line unquoted, then every record with each field quoted.
func (c Codec[T]) Export(w io.Writer, items []T) error {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, strings.Join(c.Header, ","))
	for _, item := range items {
		fields := c.Encode(item)
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = quote(f)
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Import parses every record after the header. Blank lines and records shorter than
// MinFields are skipped. Any parse, decode or validation failure aborts the whole file.
func (c Codec[T]) Import(r io.Reader) ([]T, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: header: %v", ErrImport, err)
	}

	items := []T{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImport, err)
		}
		line, _ := cr.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if blank(rec) || len(rec) < c.MinFields {
			continue
		}
		item, err := c.Decode(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrImport, line, err)
		}
		if err := model.Validate(&item); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrImport, line, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if f != "" {
			return false
		}
	}
	return true
}

// field returns rec[i], or "" for a missing trailing column.
func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func parseInt(s, column string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("column %s: %q is not a whole number", column, s)
	}
	return &v, nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
