package config

import (
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
)

// SlotPolicies converts the slots section into reconciler policies on top of
// the stock rules.
func (c *Config) SlotPolicies() map[slot.Name]slot.Policy {
	policies := slot.DefaultPolicies()
	if c == nil {
		return policies
	}

	for rawName, settings := range c.Slots {
		name := slot.Name(rawName)
		if !name.Valid() {
			continue
		}
		p := policies[name]
		p.Max = settings.Max
		if len(settings.Exclude) > 0 {
			excluded := make(map[string]struct{}, len(settings.Exclude))
			for _, plugin := range settings.Exclude {
				excluded[plugin] = struct{}{}
			}
			p.Accept = func(d slot.Descriptor) bool {
				_, skip := excluded[d.Plugin]
				return !skip
			}
		}
		policies[name] = p
	}
	return policies
}
