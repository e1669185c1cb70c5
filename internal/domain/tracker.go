package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrEmptyArtifact is returned when an artifact parses to a falsy value
// (null, false, 0 or "")
var ErrEmptyArtifact = errors.New("artifact is empty")

// Record is the light index entry extracted from one artifact.
// Values are copied verbatim from the source; a field missing from the
// source stays missing here, while an explicit null is kept.
type Record struct {
	File      string          `json:"file,omitempty"`
	ID        json.RawMessage `json:"id,omitempty"`
	Date      json.RawMessage `json:"date,omitempty"`
	Title     json.RawMessage `json:"title,omitempty"`
	Location  json.RawMessage `json:"location,omitempty"`
	Theme     json.RawMessage `json:"theme,omitempty"`
	Season    json.RawMessage `json:"season,omitempty"`
	CreatedAt json.RawMessage `json:"createdAt,omitempty"`
	Version   json.RawMessage `json:"version,omitempty"`
}

// Manifest is the tracker file rebuilt from the content directory
type Manifest struct {
	Latest *Record  `json:"latest"`
	Count  int      `json:"count"`
	Files  []Record `json:"files"`
}

// EmptyManifest is the tracker for a corpus with no artifacts
func EmptyManifest() Manifest {
	return Manifest{Latest: nil, Count: 0, Files: []Record{}}
}

// NewManifest builds a tracker from records already in filename order.
// Latest is the last record without its file tag.
func NewManifest(records []Record) Manifest {
	if len(records) == 0 {
		return EmptyManifest()
	}
	latest := records[len(records)-1]
	latest.File = ""
	return Manifest{
		Latest: &latest,
		Count:  len(records),
		Files:  records,
	}
}

// ExtractRecord parses an artifact and copies the tracked fields.
// Keys are matched exactly (case-sensitive). Any truthy JSON value is
// accepted; values other than objects yield a record with only the file tag.
func ExtractRecord(file string, data []byte) (Record, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Record{}, err
	}
	if isFalsy(v) {
		return Record{}, ErrEmptyArtifact
	}

	if _, ok := v.(map[string]any); !ok {
		return Record{File: file}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return Record{}, err
	}

	return Record{
		File:      file,
		ID:        obj["id"],
		Date:      obj["date"],
		Title:     obj["title"],
		Location:  obj["location"],
		Theme:     obj["theme"],
		Season:    obj["season"],
		CreatedAt: obj["createdAt"],
		Version:   obj["version"],
	}, nil
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}

// StringField decodes a raw field as a string, returning "" for absent,
// null, or non-string values
func StringField(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// ToMap converts a record into a generic map (for non-JSON encoders)
func (r Record) ToMap() (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
