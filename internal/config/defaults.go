package config

const (
	DefaultVersion        = "1.0"
	DefaultThreshold      = 3
	DefaultDragSlop       = 1
	DefaultMobileMaxWidth = 80
	DefaultHandleHeight   = 1
	DefaultBodyHeight     = 6
	DefaultSidebarWidth   = 28
)

// Default returns the configuration used when no layout file is given.
func Default() *Config {
	cfg := &Config{Version: DefaultVersion}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued settings in place. The gesture defaults are
// in rows, so they are far smaller than pixel-based drag distances.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Gesture.Threshold == 0 {
		cfg.Gesture.Threshold = DefaultThreshold
	}
	if cfg.Gesture.DragSlop == 0 {
		cfg.Gesture.DragSlop = DefaultDragSlop
	}
	if cfg.Viewport.MobileMaxWidth == 0 {
		cfg.Viewport.MobileMaxWidth = DefaultMobileMaxWidth
	}
	if cfg.Drawer.HandleHeight == 0 {
		cfg.Drawer.HandleHeight = DefaultHandleHeight
	}
	if cfg.Drawer.BodyHeight == 0 {
		cfg.Drawer.BodyHeight = DefaultBodyHeight
	}
	if cfg.Sidebar.Width == 0 {
		cfg.Sidebar.Width = DefaultSidebarWidth
	}
}
