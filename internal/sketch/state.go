// Package sketch provides the canvas state and the pointer interaction
// state machine for the floor-plan editor.
package sketch

import (
	"floorsketch/internal/plan"
	"floorsketch/internal/units"
	"floorsketch/pkg/geometry"
)

// Tool represents the current interaction tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolWall
	ToolDoor
	ToolWindow
	ToolMeasure
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolWall:
		return "wall"
	case ToolDoor:
		return "door"
	case ToolWindow:
		return "window"
	case ToolMeasure:
		return "measure"
	case ToolErase:
		return "erase"
	default:
		return "select"
	}
}

// Interaction thresholds, in model-space pixels.
const (
	MinWallLength        = 20.0 // shorter wall gestures are discarded
	MinMeasurementLength = 10.0 // shorter measurement gestures are discarded
	PlacementTolerance   = 20.0 // max distance from click to wall for door/window placement
	HitTolerance         = 5.0  // added to thickness/2 for erase/select hit tests
	HandleRadius         = 10.0 // pick radius for wall endpoint handles
)

// Zoom limits, matching the canvas wheel behavior.
const (
	MinZoom  = 0.1
	MaxZoom  = 10.0
	ZoomStep = 1.25
)

// Defaults holds the sizes applied to newly created elements, in
// model-space pixels. Panels set them from slider values in the active
// unit through the converter.
type Defaults struct {
	WallThickness float64
	OpeningWidth  float64
	OpeningHeight float64
}

// EventType identifies sketch state events.
type EventType int

const (
	EventElementsChanged EventType = iota
	EventSelectionChanged
	EventToolChanged
	EventSettingsChanged
	EventGestureChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the canvas state: the committed element list, view
// transform, tool selection, settings, and the transient gesture
// buffer. It is confined to the UI event loop and is not safe for
// concurrent use.
type State struct {
	plan      *plan.Plan
	converter units.Converter

	tool        Tool
	selectedID  string
	gesture     Gesture
	rightAngles bool

	pan  geometry.Point2D
	zoom float64

	snapToGrid       bool
	gridSize         float64 // in the active real-world unit
	showGrid         bool
	showMeasurements bool

	defaults Defaults

	listeners map[EventType][]EventListener
}

// NewState creates a canvas state with an empty plan and the standard
// defaults: meters, 0.5-unit grid with snapping, 20 cm walls, 90 cm
// doors at 2 m height.
func NewState() *State {
	conv := units.NewConverter(units.Meters)
	return &State{
		plan:             plan.New(),
		converter:        conv,
		tool:             ToolSelect,
		gesture:          Idle{},
		rightAngles:      true,
		zoom:             1.0,
		snapToGrid:       true,
		gridSize:         0.5,
		showGrid:         true,
		showMeasurements: true,
		defaults: Defaults{
			WallThickness: conv.UnitsToPixels(0.2),
			OpeningWidth:  conv.UnitsToPixels(0.9),
			OpeningHeight: conv.UnitsToPixels(2.0),
		},
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	for _, listener := range s.listeners[event] {
		listener(data)
	}
}

// Plan returns the committed element list.
func (s *State) Plan() *plan.Plan {
	return s.plan
}

// SetPlan replaces the plan, e.g. after loading a document, and clears
// selection and gesture state.
func (s *State) SetPlan(p *plan.Plan) {
	s.plan = p
	s.selectedID = ""
	s.gesture = Idle{}
	s.Emit(EventElementsChanged, nil)
	s.Emit(EventSelectionChanged, "")
}

// Tool returns the active tool.
func (s *State) Tool() Tool {
	return s.tool
}

// SetTool switches the active tool.
func (s *State) SetTool(tool Tool) {
	if s.tool == tool {
		return
	}
	s.tool = tool
	s.Emit(EventToolChanged, tool)
}

// SelectedID returns the id of the selected element, or "".
func (s *State) SelectedID() string {
	return s.selectedID
}

// Gesture returns the transient gesture buffer.
func (s *State) Gesture() Gesture {
	return s.gesture
}

// Converter returns the active unit converter.
func (s *State) Converter() units.Converter {
	return s.converter
}

// Unit returns the active unit system.
func (s *State) Unit() units.Unit {
	return s.converter.Unit
}

// SetUnit switches the active unit system. Stored pixel geometry is
// not rescaled; only measurement display and new real-unit input are
// affected.
func (s *State) SetUnit(u units.Unit) {
	if s.converter.Unit == u {
		return
	}
	s.converter.Unit = u
	s.Emit(EventSettingsChanged, nil)
}

// Pan returns the pan offset in model pixels.
func (s *State) Pan() geometry.Point2D {
	return s.pan
}

// SetPan sets the pan offset.
func (s *State) SetPan(pan geometry.Point2D) {
	s.pan = pan
	s.Emit(EventSettingsChanged, nil)
}

// Zoom returns the zoom scale.
func (s *State) Zoom() float64 {
	return s.zoom
}

// SetZoom sets the zoom scale, clamped to the canvas limits.
func (s *State) SetZoom(zoom float64) {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	s.zoom = zoom
	s.Emit(EventSettingsChanged, nil)
}

// ZoomIn increases the zoom level by one step.
func (s *State) ZoomIn() { s.SetZoom(s.zoom * ZoomStep) }

// ZoomOut decreases the zoom level by one step.
func (s *State) ZoomOut() { s.SetZoom(s.zoom / ZoomStep) }

// SnapToGrid reports whether grid snapping is enabled.
func (s *State) SnapToGrid() bool {
	return s.snapToGrid
}

// SetSnapToGrid enables or disables grid snapping.
func (s *State) SetSnapToGrid(snap bool) {
	s.snapToGrid = snap
	s.Emit(EventSettingsChanged, nil)
}

// GridSize returns the grid spacing in the active unit.
func (s *State) GridSize() float64 {
	return s.gridSize
}

// SetGridSize sets the grid spacing in the active unit. Non-positive
// values disable snapping.
func (s *State) SetGridSize(size float64) {
	s.gridSize = size
	s.Emit(EventSettingsChanged, nil)
}

// ShowGrid reports whether grid lines are rendered.
func (s *State) ShowGrid() bool { return s.showGrid }

// SetShowGrid toggles grid rendering.
func (s *State) SetShowGrid(show bool) {
	s.showGrid = show
	s.Emit(EventSettingsChanged, nil)
}

// ShowMeasurements reports whether measurement annotations are rendered.
func (s *State) ShowMeasurements() bool { return s.showMeasurements }

// SetShowMeasurements toggles measurement rendering.
func (s *State) SetShowMeasurements(show bool) {
	s.showMeasurements = show
	s.Emit(EventSettingsChanged, nil)
}

// RightAngles reports whether wall drawing is clamped to axis-aligned
// segments.
func (s *State) RightAngles() bool { return s.rightAngles }

// SetRightAngles toggles right-angle enforcement for wall drawing.
func (s *State) SetRightAngles(enforce bool) {
	s.rightAngles = enforce
	s.Emit(EventSettingsChanged, nil)
}

// Defaults returns the default element sizes in model pixels.
func (s *State) Defaults() Defaults {
	return s.defaults
}

// SetDefaults replaces the default element sizes.
func (s *State) SetDefaults(d Defaults) {
	s.defaults = d
	s.Emit(EventSettingsChanged, nil)
}
