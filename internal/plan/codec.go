package plan

import (
	"encoding/json"
	"fmt"

	"floorsketch/pkg/geometry"
)

// envelope is the JSON wire form of one element. A single flat record
// with a kind discriminator keeps the document diffable and lets older
// readers skip fields they do not know.
type envelope struct {
	Kind       string            `json:"kind"`
	ID         string            `json:"id"`
	Start      *geometry.Point2D `json:"start,omitempty"`
	End        *geometry.Point2D `json:"end,omitempty"`
	Thickness  float64           `json:"thickness,omitempty"`
	WallID     string            `json:"wall_id,omitempty"`
	Position   *geometry.Point2D `json:"position,omitempty"`
	Width      float64           `json:"width,omitempty"`
	Height     float64           `json:"height,omitempty"`
	Label      string            `json:"label,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// MarshalElements encodes an element list to JSON.
func MarshalElements(elements []Element) ([]byte, error) {
	envs := make([]envelope, 0, len(elements))
	for _, e := range elements {
		env, err := toEnvelope(e)
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	return json.Marshal(envs)
}

// UnmarshalElements decodes an element list from JSON. Records with an
// unknown kind are rejected.
func UnmarshalElements(data []byte) ([]Element, error) {
	var envs []envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, err
	}

	elements := make([]Element, 0, len(envs))
	for _, env := range envs {
		e, err := fromEnvelope(env)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, nil
}

func toEnvelope(e Element) (envelope, error) {
	switch el := e.(type) {
	case *Wall:
		start, end := el.Start, el.End
		return envelope{
			Kind:       el.Kind().String(),
			ID:         el.ID,
			Start:      &start,
			End:        &end,
			Thickness:  el.Thickness,
			Properties: el.Properties,
		}, nil
	case *Opening:
		pos := el.Position
		return envelope{
			Kind:       el.Kind().String(),
			ID:         el.ID,
			WallID:     el.WallID,
			Position:   &pos,
			Width:      el.Width,
			Height:     el.Height,
			Properties: el.Properties,
		}, nil
	case *Measurement:
		start, end := el.Start, el.End
		return envelope{
			Kind:  el.Kind().String(),
			ID:    el.ID,
			Start: &start,
			End:   &end,
			Label: el.Label,
		}, nil
	default:
		return envelope{}, fmt.Errorf("unsupported element type %T", e)
	}
}

func fromEnvelope(env envelope) (Element, error) {
	kind, ok := ParseKind(env.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown element kind %q", env.Kind)
	}

	switch kind {
	case KindWall:
		w := &Wall{
			ID:         env.ID,
			Thickness:  env.Thickness,
			Properties: env.Properties,
		}
		if env.Start != nil {
			w.Start = *env.Start
		}
		if env.End != nil {
			w.End = *env.End
		}
		return w, nil
	case KindDoor, KindWindow:
		o := &Opening{
			ID:         env.ID,
			WallID:     env.WallID,
			Width:      env.Width,
			Height:     env.Height,
			Properties: env.Properties,
			kind:       kind,
		}
		if env.Position != nil {
			o.Position = *env.Position
		}
		return o, nil
	case KindMeasurement:
		m := &Measurement{
			ID:    env.ID,
			Label: env.Label,
		}
		if env.Start != nil {
			m.Start = *env.Start
		}
		if env.End != nil {
			m.End = *env.End
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown element kind %q", env.Kind)
	}
}
