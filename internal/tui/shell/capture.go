package shell

import (
	"errors"
)

var (
	// ErrCaptureHeld is returned when another pointer already owns capture.
	ErrCaptureHeld = errors.New("pointer capture held by another pointer")
	// ErrNotCaptured is returned when releasing a pointer that holds no capture.
	ErrNotCaptured = errors.New("pointer not captured")
)

// pointerCapture routes all motion for one pointer to the drawer while held,
// even when the mouse leaves the drawer rows.
type pointerCapture struct {
	owner int
	held  bool
}

func (c *pointerCapture) Capture(pointerID int) error {
	if c.held && c.owner != pointerID {
		return ErrCaptureHeld
	}
	c.owner = pointerID
	c.held = true
	return nil
}

func (c *pointerCapture) Release(pointerID int) error {
	if !c.held || c.owner != pointerID {
		return ErrNotCaptured
	}
	c.held = false
	return nil
}

func (c *pointerCapture) Holds(pointerID int) bool {
	return c.held && c.owner == pointerID
}

func (c *pointerCapture) Reset() {
	c.held = false
}
