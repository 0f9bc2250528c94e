// Package project provides plan document serialization and
// persistence, both to local .fplan files and to the plan server.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"floorsketch/internal/plan"
	"floorsketch/internal/sketch"
	"floorsketch/internal/units"
)

// CurrentVersion is the document format version written by this build.
const CurrentVersion = 1

// Defaults are the default element sizes stored with a document, in
// model pixels.
type Defaults struct {
	WallThickness float64 `json:"wall_thickness"`
	OpeningWidth  float64 `json:"opening_width"`
	OpeningHeight float64 `json:"opening_height"`
}

// Document is the serialized form of a plan plus its metadata. It is
// the unit of persistence for both local files and the plan server.
type Document struct {
	Version        int             `json:"version"`
	Name           string          `json:"name,omitempty"`
	Unit           units.Unit      `json:"unit"`
	PixelsPerMeter float64         `json:"pixels_per_meter"`
	GridSize       float64         `json:"grid_size"`
	Defaults       Defaults        `json:"defaults"`
	SavedAt        time.Time       `json:"saved_at"`
	Elements       json.RawMessage `json:"elements"`
}

// Snapshot captures the current canvas state as a document. This is
// the pull-based save trigger: the host decides when to call it.
func Snapshot(s *sketch.State, name string) (*Document, error) {
	elements, err := plan.MarshalElements(s.Plan().Elements())
	if err != nil {
		return nil, fmt.Errorf("marshal elements: %w", err)
	}

	conv := s.Converter()
	d := s.Defaults()
	return &Document{
		Version:        CurrentVersion,
		Name:           name,
		Unit:           conv.Unit,
		PixelsPerMeter: conv.PixelsPerMeter,
		GridSize:       s.GridSize(),
		Defaults: Defaults{
			WallThickness: d.WallThickness,
			OpeningWidth:  d.OpeningWidth,
			OpeningHeight: d.OpeningHeight,
		},
		SavedAt:  time.Now().UTC(),
		Elements: elements,
	}, nil
}

// Apply restores a document into the canvas state: element list, unit
// system, grid size, and default sizes.
func (doc *Document) Apply(s *sketch.State) error {
	elements, err := plan.UnmarshalElements(doc.Elements)
	if err != nil {
		return fmt.Errorf("unmarshal elements: %w", err)
	}

	p := plan.New()
	p.Replace(elements)
	s.SetPlan(p)
	s.SetUnit(doc.Unit)
	if doc.GridSize > 0 {
		s.SetGridSize(doc.GridSize)
	}
	if doc.Defaults != (Defaults{}) {
		s.SetDefaults(sketch.Defaults{
			WallThickness: doc.Defaults.WallThickness,
			OpeningWidth:  doc.Defaults.OpeningWidth,
			OpeningHeight: doc.Defaults.OpeningHeight,
		})
	}
	return nil
}

// DecodeElements returns the document's element list.
func (doc *Document) DecodeElements() ([]plan.Element, error) {
	return plan.UnmarshalElements(doc.Elements)
}

// Load reads a document from an .fplan file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse plan file: %w", err)
	}
	return &doc, nil
}

// Save writes the document to an .fplan file.
func (doc *Document) Save(path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
