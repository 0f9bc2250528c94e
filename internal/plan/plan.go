package plan

// Plan owns the element list for one editing session. The list is the
// arena; element ids are the indices other elements refer to.
type Plan struct {
	elements []Element
}

// New creates an empty plan.
func New() *Plan {
	return &Plan{}
}

// Add appends an element to the plan.
func (p *Plan) Add(e Element) {
	p.elements = append(p.elements, e)
}

// Remove deletes the element with the given id. Openings referencing a
// removed wall are kept; they become orphans and stop rendering.
func (p *Plan) Remove(id string) bool {
	for i, e := range p.elements {
		if e.ElementID() == id {
			p.elements = append(p.elements[:i], p.elements[i+1:]...)
			return true
		}
	}
	return false
}

// ByID returns the element with the given id.
func (p *Plan) ByID(id string) (Element, bool) {
	for _, e := range p.elements {
		if e.ElementID() == id {
			return e, true
		}
	}
	return nil, false
}

// WallByID resolves a wall reference. Returns false for missing ids
// and for ids that name a non-wall element.
func (p *Plan) WallByID(id string) (*Wall, bool) {
	e, ok := p.ByID(id)
	if !ok {
		return nil, false
	}
	w, ok := e.(*Wall)
	return w, ok
}

// Elements returns the element list in insertion order. The returned
// slice is shared; callers must not modify it.
func (p *Plan) Elements() []Element {
	return p.elements
}

// Walls returns all wall elements in insertion order.
func (p *Plan) Walls() []*Wall {
	var walls []*Wall
	for _, e := range p.elements {
		if w, ok := e.(*Wall); ok {
			walls = append(walls, w)
		}
	}
	return walls
}

// Len returns the number of elements.
func (p *Plan) Len() int {
	return len(p.elements)
}

// Replace swaps the whole element list, e.g. after loading a document.
func (p *Plan) Replace(elements []Element) {
	p.elements = elements
}
