package config

// Config represents the layout document read from layout.yaml.
type Config struct {
	Version  string                  `yaml:"version" validate:"required,semver"`
	Gesture  GestureSettings         `yaml:"gesture,omitempty"`
	Viewport ViewportSettings        `yaml:"viewport,omitempty"`
	Drawer   DrawerSettings          `yaml:"drawer,omitempty"`
	Sidebar  SidebarSettings         `yaml:"sidebar,omitempty"`
	Slots    map[string]SlotSettings `yaml:"slots,omitempty" validate:"omitempty,dive,keys,slot_name,endkeys"`
	Plugins  []PluginActivation      `yaml:"plugins,omitempty" validate:"omitempty,dive"`
}

// GestureSettings tunes drag-to-minimize detection, in terminal rows.
type GestureSettings struct {
	Threshold int `yaml:"threshold,omitempty" validate:"omitempty,min=1,max=400"`
	DragSlop  int `yaml:"drag_slop,omitempty" validate:"omitempty,min=1,max=100"`
}

// ViewportSettings holds the single breakpoint between the two layouts.
type ViewportSettings struct {
	MobileMaxWidth int `yaml:"mobile_max_width,omitempty" validate:"omitempty,min=20,max=1000"`
}

// DrawerSettings sizes the mobile bottom drawer.
type DrawerSettings struct {
	HandleHeight int `yaml:"handle_height,omitempty" validate:"omitempty,min=1,max=5"`
	BodyHeight   int `yaml:"body_height,omitempty" validate:"omitempty,min=1,max=200"`
}

// SidebarSettings configures the desktop sidebar column.
type SidebarSettings struct {
	Visible *bool `yaml:"visible,omitempty"`
	Width   int   `yaml:"width,omitempty" validate:"omitempty,min=10,max=120"`
}

// SlotSettings narrows what a slot renders.
type SlotSettings struct {
	Max     int      `yaml:"max,omitempty" validate:"min=0,max=50"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// PluginActivation asks the registry to place a plugin in a slot at startup.
type PluginActivation struct {
	Name   string         `yaml:"name" validate:"required,plugin_name"`
	Slot   string         `yaml:"slot" validate:"required,slot_name"`
	Params map[string]any `yaml:"params,omitempty"`
}

// SidebarVisible resolves the tri-state visible flag.
func (s SidebarSettings) SidebarVisible() bool {
	if s.Visible == nil {
		return true
	}
	return *s.Visible
}
