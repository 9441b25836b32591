package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aebalz/ubermensch-tracker/internal/model"
)

// ErrDirective marks an assistant reply whose data directive could not be parsed.
var ErrDirective = errors.New("malformed data directive")

type Op string

const (
	OpUpdate Op = "update"
	OpAdd    Op = "add"
)

const (
	updateMarker = "UPDATE_DATA:"
	addMarker    = "ADD_DATA:"
)

// Directive is a data change proposed by the assistant.
// Update directives carry the changed fields in Payload; add directives carry the whole record.
type Directive struct {
	Op      Op              `json:"op"`
	Kind    model.Kind      `json:"kind"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload"`
	Applied bool            `json:"applied"`
	Result  any             `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ParseDirectives extracts every UPDATE_DATA / ADD_DATA directive from text and returns the text
// without them. On a malformed directive the text is cut at its marker and ErrDirective is returned.
func ParseDirectives(text string) (string, []Directive, error) {
	var (
		clean strings.Builder
		out   []Directive
		rest  = text
	)
	for {
		idx, marker, op := nextMarker(rest)
		if idx < 0 {
			clean.WriteString(rest)
			break
		}
		clean.WriteString(rest[:idx])
		body := rest[idx+len(marker):]

		dec := json.NewDecoder(strings.NewReader(body))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return strings.TrimSpace(clean.String()), nil, fmt.Errorf("%w: %s %v", ErrDirective, marker, err)
		}
		d, err := buildDirective(op, raw)
		if err != nil {
			return strings.TrimSpace(clean.String()), nil, err
		}
		out = append(out, d)
		rest = body[dec.InputOffset():]
	}
	return strings.TrimSpace(clean.String()), out, nil
}

func nextMarker(s string) (int, string, Op) {
	u := strings.Index(s, updateMarker)
	a := strings.Index(s, addMarker)
	switch {
	case u < 0 && a < 0:
		return -1, "", ""
	case a < 0 || (u >= 0 && u < a):
		return u, updateMarker, OpUpdate
	default:
		return a, addMarker, OpAdd
	}
}

func buildDirective(op Op, raw json.RawMessage) (Directive, error) {
	var body struct {
		Type    string          `json:"type"`
		ID      json.RawMessage `json:"id"`
		Updates json.RawMessage `json:"updates"`
		Record  json.RawMessage `json:"record"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Directive{}, fmt.Errorf("%w: %v", ErrDirective, err)
	}
	kind, err := model.ParseKind(body.Type)
	if err != nil {
		return Directive{}, fmt.Errorf("%w: %v", ErrDirective, err)
	}

	d := Directive{Op: op, Kind: kind}
	switch op {
	case OpUpdate:
		if d.ID, err = idString(body.ID); err != nil || d.ID == "" {
			return Directive{}, fmt.Errorf("%w: update needs a record id", ErrDirective)
		}
		if !isObject(body.Updates) {
			return Directive{}, fmt.Errorf("%w: update needs an updates object", ErrDirective)
		}
		d.Payload = body.Updates
	case OpAdd:
		if !isObject(body.Record) {
			return Directive{}, fmt.Errorf("%w: add needs a record object", ErrDirective)
		}
		d.Payload = body.Record
	}
	return d, nil
}

// idString accepts ids written as JSON strings or numbers.
func idString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func isObject(raw json.RawMessage) bool {
	t := strings.TrimSpace(string(raw))
	return strings.HasPrefix(t, "{")
}
