// Package app provides application lifecycle management and events.
package app

import (
	"context"
	"fmt"

	"floorsketch/internal/project"
	"floorsketch/internal/sketch"
)

// EventType identifies application events.
type EventType int

const (
	EventPlanLoaded EventType = iota
	EventPlanSaved
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the sketch canvas, the current
// document identity, and the modified flag. Like the sketch state it
// is confined to the UI event loop.
type State struct {
	Sketch *sketch.State

	// Identity of the open document.
	Name     string
	Path     string // local .fplan path, "" when unsaved or remote-only
	RemoteID string // plan server id, "" when never pushed

	Modified bool

	listeners map[EventType][]EventListener
}

// NewState creates application state with an empty plan.
func NewState() *State {
	s := &State{
		Sketch:    sketch.NewState(),
		Name:      "Untitled plan",
		listeners: make(map[EventType][]EventListener),
	}

	// Any change to the element list dirties the document.
	s.Sketch.On(sketch.EventElementsChanged, func(interface{}) {
		s.SetModified(true)
	})
	return s
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

// SetModified updates the modified flag and emits an event.
func (s *State) SetModified(modified bool) {
	if s.Modified == modified {
		return
	}
	s.Modified = modified
	s.Emit(EventModified, modified)
}

// Snapshot returns the current serializable document. The host
// decides when to persist it.
func (s *State) Snapshot() (*project.Document, error) {
	return project.Snapshot(s.Sketch, s.Name)
}

// LoadFile loads a plan document from a local .fplan file.
func (s *State) LoadFile(path string) error {
	doc, err := project.Load(path)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	if err := doc.Apply(s.Sketch); err != nil {
		return fmt.Errorf("apply plan: %w", err)
	}

	s.Path = path
	s.RemoteID = ""
	if doc.Name != "" {
		s.Name = doc.Name
	}
	s.Modified = false
	s.Emit(EventPlanLoaded, path)
	return nil
}

// SaveFile writes the current document to a local .fplan file.
func (s *State) SaveFile(path string) error {
	doc, err := s.Snapshot()
	if err != nil {
		return err
	}
	if err := doc.Save(path); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}

	s.Path = path
	s.SetModified(false)
	s.Emit(EventPlanSaved, path)
	return nil
}

// LoadRemote fetches a plan document from the plan server.
func (s *State) LoadRemote(ctx context.Context, store *project.RemoteStore, id string) error {
	doc, err := store.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("load remote plan: %w", err)
	}
	if err := doc.Apply(s.Sketch); err != nil {
		return fmt.Errorf("apply plan: %w", err)
	}

	s.Path = ""
	s.RemoteID = id
	if doc.Name != "" {
		s.Name = doc.Name
	}
	s.Modified = false
	s.Emit(EventPlanLoaded, id)
	return nil
}

// SaveRemote pushes the current document to the plan server, creating
// a record on first save and updating it afterwards.
func (s *State) SaveRemote(ctx context.Context, store *project.RemoteStore) error {
	doc, err := s.Snapshot()
	if err != nil {
		return err
	}

	if s.RemoteID == "" {
		id, err := store.Create(ctx, doc)
		if err != nil {
			return fmt.Errorf("create remote plan: %w", err)
		}
		s.RemoteID = id
	} else if err := store.Update(ctx, s.RemoteID, doc); err != nil {
		return fmt.Errorf("update remote plan: %w", err)
	}

	s.SetModified(false)
	s.Emit(EventPlanSaved, s.RemoteID)
	return nil
}
