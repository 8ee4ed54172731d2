package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/slotdeck/internal/logger"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	slotdeckerrors "github.com/alexisbeaulieu97/slotdeck/pkg/errors"
)

// Activation places one plugin in one slot.
type Activation struct {
	Name   string
	Slot   slot.Name
	Params slot.Params
}

// Registry holds registered plugins and the ordered panel list of every slot.
// It is the slot.Source the layout reconciles against.
type Registry struct {
	mu          sync.RWMutex
	plugins     map[string]Plugin
	metadata    map[string]Metadata
	slots       map[slot.Name][]slot.Descriptor
	subscribers []func(slot.Assignment)
	logger      *logger.Logger
	config      *RegistryConfig
	newID       func(name string) string
}

var _ slot.Source = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry(config *RegistryConfig, log *logger.Logger) *Registry {
	if config == nil {
		config = DefaultConfig()
	}

	return &Registry{
		plugins:  make(map[string]Plugin),
		metadata: make(map[string]Metadata),
		slots:    make(map[slot.Name][]slot.Descriptor),
		logger:   log.Component("registry"),
		config:   config,
		newID:    defaultID,
	}
}

func defaultID(name string) string {
	return fmt.Sprintf("%s-%s", name, uuid.NewString()[:8])
}

// Register adds a plugin to the registry.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("plugin is nil")
	}

	meta := p.Metadata()
	if err := meta.Validate(); err != nil {
		return slotdeckerrors.NewPluginError(meta.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[meta.Name]; exists {
		return ErrDuplicatePlugin{Name: meta.Name}
	}

	r.plugins[meta.Name] = p
	r.metadata[meta.Name] = meta
	return nil
}

// InitializePlugins runs Init on every plugin that implements Initializer,
// in name order.
func (r *Registry) InitializePlugins() error {
	for _, name := range r.List() {
		p, err := r.Get(name)
		if err != nil {
			return err
		}
		if initializer, ok := p.(Initializer); ok {
			if err := initializer.Init(r); err != nil {
				return fmt.Errorf("init plugin '%s': %w", name, err)
			}
		}
	}
	return nil
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.plugins[name]
	if !exists {
		return nil, ErrPluginNotFound{Name: name}
	}
	return p, nil
}

// Metadata returns the metadata of a registered plugin.
func (r *Registry) Metadata(name string) (Metadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.metadata[name]
	return meta, ok
}

// List returns registered plugin names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Activate appends a new panel for plugin name to the slot and returns its id.
// The newest panel is always last.
func (r *Registry) Activate(name string, target slot.Name, params slot.Params) (string, error) {
	r.mu.Lock()
	p, exists := r.plugins[name]
	if !exists {
		r.mu.Unlock()
		return "", ErrPluginNotFound{Name: name}
	}
	if !r.metadata[name].Supports(target) {
		r.mu.Unlock()
		return "", slotdeckerrors.NewSlotPluginError(name, string(target), ErrSlotNotSupported{Plugin: name, Slot: string(target)})
	}

	id := r.newID(name)
	r.slots[target] = append(r.slots[target], slot.Descriptor{
		ID:         id,
		Plugin:     name,
		Renderable: p,
		Params:     params,
	})
	snapshot, subscribers := r.snapshotLocked()
	r.mu.Unlock()

	r.logger.WithFields(map[string]any{"plugin": name, "slot": string(target), "id": id}).Debug("panel activated")
	notify(subscribers, snapshot)
	return id, nil
}

// ApplyActivations activates a batch in order. Under the graceful policy
// failures are logged and skipped; under strict the first failure is returned.
func (r *Registry) ApplyActivations(batch []Activation) ([]string, error) {
	ids := make([]string, 0, len(batch))
	for _, a := range batch {
		id, err := r.Activate(a.Name, a.Slot, a.Params)
		if err != nil {
			if r.config.ActivationPolicy == PolicyStrict {
				return ids, err
			}
			r.logger.Error(err, "skipping activation")
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Components returns the slot's panels in activation order.
func (r *Registry) Components(target slot.Name) []slot.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]slot.Descriptor(nil), r.slots[target]...)
}

// RemoveComponent drops the panel with id from whichever slot holds it.
// Unknown ids are ignored.
func (r *Registry) RemoveComponent(id string) {
	_ = r.Deactivate(id)
}

// Deactivate is RemoveComponent with an error for unknown ids.
func (r *Registry) Deactivate(id string) error {
	r.mu.Lock()
	removed := false
	for name, list := range r.slots {
		for i, d := range list {
			if d.ID != id {
				continue
			}
			next := make([]slot.Descriptor, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			r.slots[name] = next
			removed = true
			break
		}
		if removed {
			break
		}
	}
	if !removed {
		r.mu.Unlock()
		return ErrComponentNotFound{ID: id}
	}
	snapshot, subscribers := r.snapshotLocked()
	r.mu.Unlock()

	r.logger.WithFields(map[string]any{"id": id}).Debug("panel removed")
	notify(subscribers, snapshot)
	return nil
}

// Clear empties a slot.
func (r *Registry) Clear(target slot.Name) {
	r.mu.Lock()
	if len(r.slots[target]) == 0 {
		r.mu.Unlock()
		return
	}
	delete(r.slots, target)
	snapshot, subscribers := r.snapshotLocked()
	r.mu.Unlock()

	notify(subscribers, snapshot)
}

// Assignment returns a copy of every slot's list.
func (r *Registry) Assignment() slot.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slot.Assignment(r.slots).Clone()
}

// Subscribe registers fn for every change to any slot. fn runs on the
// goroutine that made the change, after the registry lock is released.
func (r *Registry) Subscribe(fn func(slot.Assignment)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.subscribers = append(r.subscribers, fn)
	r.mu.Unlock()
}

func (r *Registry) snapshotLocked() (slot.Assignment, []func(slot.Assignment)) {
	if len(r.subscribers) == 0 {
		return nil, nil
	}
	subs := make([]func(slot.Assignment), len(r.subscribers))
	copy(subs, r.subscribers)
	return slot.Assignment(r.slots).Clone(), subs
}

func notify(subscribers []func(slot.Assignment), snapshot slot.Assignment) {
	for _, fn := range subscribers {
		fn(snapshot)
	}
}
