package viewport

// Variant is the layout tree chosen for the current viewport.
type Variant int

const (
	Desktop Variant = iota
	Mobile
)

func (v Variant) String() string {
	if v == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Classifier decides whether a viewport is narrow enough for the mobile tree.
type Classifier interface {
	IsMobile(width, height int) bool
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(width, height int) bool

// IsMobile calls f.
func (f ClassifierFunc) IsMobile(width, height int) bool {
	return f(width, height)
}

// BreakpointClassifier treats any terminal at most MaxMobileWidth columns
// wide as mobile.
type BreakpointClassifier struct {
	MaxMobileWidth int
}

// IsMobile implements Classifier.
func (b BreakpointClassifier) IsMobile(width, _ int) bool {
	return width <= b.MaxMobileWidth
}

// Switch picks the layout variant. Until the first measurement it reports
// desktop; after that it always reflects the last measurement.
type Switch struct {
	classifier Classifier
	measured   bool
	mobile     bool
	width      int
	height     int
}

// NewSwitch builds a switch around classifier.
func NewSwitch(classifier Classifier) *Switch {
	return &Switch{classifier: classifier}
}

// SetClassifier swaps the classifier and re-evaluates the last measurement.
func (s *Switch) SetClassifier(c Classifier) bool {
	s.classifier = c
	if !s.measured {
		return false
	}
	return s.Measure(s.width, s.height)
}

// Measure records a viewport size and reports whether the variant changed.
func (s *Switch) Measure(width, height int) bool {
	prev := s.Classify()
	s.width, s.height = width, height
	s.measured = true
	s.mobile = s.classifier != nil && s.classifier.IsMobile(width, height)
	return prev != s.mobile
}

// Classify reports whether the mobile tree is active.
func (s *Switch) Classify() bool {
	if !s.measured {
		return false
	}
	return s.mobile
}

// Measured reports whether a real measurement has arrived.
func (s *Switch) Measured() bool {
	return s.measured
}

// Variant returns the active layout tree.
func (s *Switch) Variant() Variant {
	if s.Classify() {
		return Mobile
	}
	return Desktop
}

// Size returns the last measured dimensions.
func (s *Switch) Size() (width, height int) {
	return s.width, s.height
}
