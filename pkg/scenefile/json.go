package scenefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/QPG-MIT/optiverse-sub001/pkg/element"
	"github.com/QPG-MIT/optiverse-sub001/pkg/source"
)

// LoadJSON reads a scene from a JSON file at path, matching spec.md §6's
// field names exactly, the same plain encoding/json approach the
// teacher's web/server package uses for request/response bodies.
func LoadJSON(path string) ([]element.OpticalElement, []source.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading scene file: %w", err)
	}
	return DecodeJSON(data)
}

// DecodeJSON parses scene JSON already in memory.
func DecodeJSON(data []byte) ([]element.OpticalElement, []source.Source, error) {
	var doc SceneDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing scene JSON: %w", err)
	}
	elements, err := ToElements(doc.Elements)
	if err != nil {
		return nil, nil, err
	}
	return elements, ToSources(doc.Sources), nil
}

// EncodeRayPathsJSON marshals traced RayPaths into the wire shape
// `{ "paths": [...] }` used by cmd/optitrace's -dump-json.
// internal/httpapi's POST /api/trace response encodes its own
// TraceResponse, whose "paths" array has the same shape.
func EncodeRayPathsJSON(paths []RayPathDoc) ([]byte, error) {
	return json.MarshalIndent(struct {
		Paths []RayPathDoc `json:"paths"`
	}{Paths: paths}, "", "  ")
}
