package slot

import (
	"github.com/alexisbeaulieu97/slotdeck/internal/logger"
)

// Policy narrows a slot's descriptor list before it is rendered.
type Policy struct {
	// Accept filters descriptors; nil accepts everything.
	Accept func(Descriptor) bool
	// Max truncates the filtered list; zero means unbounded.
	Max int
	// KeepLast retains only the most recently activated descriptor and asks
	// the source to remove the rest.
	KeepLast bool
}

// DefaultPolicies returns the stock slot rules: the sidebar shows a single
// panel, every other slot shows everything it is given.
func DefaultPolicies() map[Name]Policy {
	return map[Name]Policy{
		Sidebar: {KeepLast: true},
	}
}

// Reconciler turns raw registry lists into what each slot actually renders.
type Reconciler struct {
	source   Source
	policies map[Name]Policy
	log      *logger.Logger

	// lastLen is the filtered length seen on the previous pass per slot.
	// Removals are requested whenever it changes.
	lastLen map[Name]int
}

// NewReconciler builds a reconciler over source. Slots absent from policies
// fall back to accept-all.
func NewReconciler(source Source, policies map[Name]Policy, log *logger.Logger) *Reconciler {
	if policies == nil {
		policies = DefaultPolicies()
	}
	return &Reconciler{
		source:    source,
		policies:  policies,
		log:       log.Component("reconciler"),
		lastLen:   make(map[Name]int),
	}
}

// SetPolicy replaces the policy for one slot.
func (r *Reconciler) SetPolicy(name Name, p Policy) {
	r.policies[name] = p
}

// Policy returns the effective policy for a slot.
func (r *Reconciler) Policy(name Name) Policy {
	return r.policies[name]
}

// Select pulls the current list for a slot from the source and reconciles it.
func (r *Reconciler) Select(name Name) []Descriptor {
	if r.source == nil {
		return nil
	}
	return r.Reconcile(name, r.source.Components(name))
}

// SelectAll reconciles every slot.
func (r *Reconciler) SelectAll() Assignment {
	out := make(Assignment, len(allNames))
	for _, name := range allNames {
		out[name] = r.Select(name)
	}
	return out
}

// Reconcile filters, truncates and reduces descriptors for the named slot.
// Descriptors without a renderable are dropped silently. For KeepLast slots
// every discarded descriptor is reported to the source, in input order,
// each time the filtered length differs from the previous pass.
func (r *Reconciler) Reconcile(name Name, descriptors []Descriptor) []Descriptor {
	policy := r.policies[name]

	filtered := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Renderable == nil {
			r.log.Debugw("dropping descriptor without renderable", map[string]any{"slot": string(name), "id": d.ID})
			continue
		}
		if policy.Accept != nil && !policy.Accept(d) {
			continue
		}
		filtered = append(filtered, d)
	}

	if policy.Max > 0 && len(filtered) > policy.Max {
		filtered = filtered[:policy.Max]
	}

	if !policy.KeepLast {
		return filtered
	}

	prev, seen := r.lastLen[name]
	r.lastLen[name] = len(filtered)
	if len(filtered) <= 1 {
		return filtered
	}

	if !seen || prev != len(filtered) {
		for _, d := range filtered[:len(filtered)-1] {
			r.requestRemoval(name, d.ID)
		}
	}
	return []Descriptor{filtered[len(filtered)-1]}
}

func (r *Reconciler) requestRemoval(name Name, id string) {
	r.log.Debugw("removing superseded panel", map[string]any{"slot": string(name), "id": id})
	if r.source != nil {
		r.source.RemoveComponent(id)
	}
}
