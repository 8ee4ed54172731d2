package slot

import "fmt"

// Renderable is the only thing the layout knows about a plugin panel: it can
// draw itself into a width x height box given its parameters.
type Renderable interface {
	Render(params Params, width, height int) string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func(params Params, width, height int) string

// Render calls f.
func (f RenderFunc) Render(params Params, width, height int) string {
	return f(params, width, height)
}

// Params is the opaque property bag attached to a descriptor.
type Params map[string]any

// String returns the value stored at key formatted as a string, or fallback.
func (p Params) String(key, fallback string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns the integer stored at key, or fallback for missing or non-numeric values.
func (p Params) Int(key string, fallback int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// Bool returns the boolean stored at key, or fallback.
func (p Params) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

// Descriptor is one plugin panel instance issued by the registry. The layout
// holds descriptors by value but never mutates them.
type Descriptor struct {
	ID         string
	Plugin     string
	Renderable Renderable
	Params     Params
}

// Render draws the descriptor, returning "" when it has nothing to render.
func (d Descriptor) Render(width, height int) string {
	if d.Renderable == nil {
		return ""
	}
	return d.Renderable.Render(d.Params, width, height)
}

// Assignment maps each slot to its ordered descriptors.
type Assignment map[Name][]Descriptor

// Clone copies the assignment so consumers can hold it across emissions.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for name, list := range a {
		out[name] = append([]Descriptor(nil), list...)
	}
	return out
}

// IDs returns the descriptor ids in order.
func IDs(list []Descriptor) []string {
	ids := make([]string, len(list))
	for i, d := range list {
		ids[i] = d.ID
	}
	return ids
}

// Source is the registry capability set the layout core is built against.
type Source interface {
	Components(slot Name) []Descriptor
	RemoveComponent(id string)
}
