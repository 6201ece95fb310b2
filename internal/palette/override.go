package palette

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedOverride marks an override entry with missing or invalid channel data.
var ErrMalformedOverride = errors.New("malformed palette override")

// OverrideEntry is one raw override record before validation. Channels are in
// [0, 255]; a nil channel means the source did not provide a usable value.
type OverrideEntry struct {
	Emotion string
	Red     *float64
	Green   *float64
	Blue    *float64
}

// NewOverride builds an entry from three channel values.
func NewOverride(name string, r, g, b float64) OverrideEntry {
	return OverrideEntry{Emotion: name, Red: &r, Green: &g, Blue: &b}
}

// HexOverride builds an entry from a hex color. An unparsable color yields an
// entry without channels, which New skips with a warning.
func HexOverride(name, hex string) OverrideEntry {
	c, err := ParseHex(hex)
	if err != nil {
		return OverrideEntry{Emotion: name}
	}
	n := c.NRGBA()
	return NewOverride(name, float64(n.R), float64(n.G), float64(n.B))
}

// Color validates the channels and converts them to a Color.
func (e OverrideEntry) Color() (Color, error) {
	chans := [3]*float64{e.Red, e.Green, e.Blue}
	names := [3]string{"red", "green", "blue"}
	var v [3]float64
	for i, ch := range chans {
		if ch == nil {
			return Color{}, fmt.Errorf("%w: missing %s", ErrMalformedOverride, names[i])
		}
		if math.IsNaN(*ch) || *ch < 0 || *ch > 255 {
			return Color{}, fmt.Errorf("%w: %s %v out of range [0,255]", ErrMalformedOverride, names[i], *ch)
		}
		v[i] = *ch / 255
	}
	return RGB(v[0], v[1], v[2]), nil
}

// channelRecord is the JSON shape {"red": n, "green": n, "blue": n}.
type channelRecord struct {
	Red   *float64 `json:"red"`
	Green *float64 `json:"green"`
	Blue  *float64 `json:"blue"`
}

// exportWrapperKey is the key the color-mapping export tool nests hex colors under.
const exportWrapperKey = "emotion_colors"

// ParseOverrideJSON reads either a map of emotion to channel objects or the export
// format {"emotion_colors": {"joy": "#FFD700", ...}}. Values that are neither an
// object nor a string produce channel-less entries. The result is sorted by name.
func ParseOverrideJSON(data []byte) ([]OverrideEntry, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("decode palette overrides: %w", err)
	}
	if wrapped, ok := top[exportWrapperKey]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(wrapped, &inner); err != nil {
			return nil, fmt.Errorf("decode %s: %w", exportWrapperKey, err)
		}
		top = inner
	}

	names := make([]string, 0, len(top))
	for name := range top {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]OverrideEntry, 0, len(names))
	for _, name := range names {
		out = append(out, decodeJSONValue(name, top[name]))
	}
	return out, nil
}

func decodeJSONValue(name string, raw json.RawMessage) OverrideEntry {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return OverrideEntry{Emotion: name}
	}
	switch trimmed[0] {
	case '"':
		var hex string
		if err := json.Unmarshal(trimmed, &hex); err != nil {
			return OverrideEntry{Emotion: name}
		}
		return HexOverride(name, hex)
	case '{':
		var rec channelRecord
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return OverrideEntry{Emotion: name}
		}
		return OverrideEntry{Emotion: name, Red: rec.Red, Green: rec.Green, Blue: rec.Blue}
	default:
		return OverrideEntry{Emotion: name}
	}
}

// ParseOverrideCSV reads a CSV with a header row. Recognized columns are
// emotion, red, green, blue and hex (case-insensitive, any order). hex is used only
// when the channel columns are absent or empty.
func ParseOverrideCSV(r io.Reader) ([]OverrideEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read palette csv: %w", err)
	}
	if len(rows) < 1 {
		return nil, errors.New("palette csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["emotion"]; !ok {
		return nil, errors.New("palette csv has no emotion column")
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}
	channel := func(row []string, name string) *float64 {
		s := get(row, name)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &v
	}

	out := make([]OverrideEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := get(row, "emotion")
		if get(row, "red") == "" && get(row, "green") == "" && get(row, "blue") == "" {
			if hex := get(row, "hex"); hex != "" {
				out = append(out, HexOverride(name, hex))
				continue
			}
		}
		out = append(out, OverrideEntry{
			Emotion: name,
			Red:     channel(row, "red"),
			Green:   channel(row, "green"),
			Blue:    channel(row, "blue"),
		})
	}
	return out, nil
}

// ParseOverrides picks the CSV or JSON reader from the resource name's extension,
// falling back to sniffing the first non-space byte.
func ParseOverrides(name string, data []byte) ([]OverrideEntry, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return ParseOverrideCSV(bytes.NewReader(data))
	case ".json":
		return ParseOverrideJSON(data)
	}
	if t := bytes.TrimSpace(data); len(t) > 0 && t[0] == '{' {
		return ParseOverrideJSON(data)
	}
	return ParseOverrideCSV(bytes.NewReader(data))
}

// LoadOverrideFile reads and parses an override file.
func LoadOverrideFile(path string) ([]OverrideEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette overrides %s: %w", path, err)
	}
	entries, err := ParseOverrides(path, data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return entries, nil
}
