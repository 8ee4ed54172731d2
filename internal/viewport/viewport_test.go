package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchDefaultsToDesktopBeforeMeasurement(t *testing.T) {
	s := NewSwitch(ClassifierFunc(func(int, int) bool { return true }))

	require.False(t, s.Measured())
	require.False(t, s.Classify())
	require.Equal(t, Desktop, s.Variant())
}

func TestSwitchFollowsMeasurements(t *testing.T) {
	s := NewSwitch(BreakpointClassifier{MaxMobileWidth: 80})

	changed := s.Measure(60, 30)
	assert.True(t, changed)
	assert.True(t, s.Classify())
	assert.Equal(t, "mobile", s.Variant().String())

	changed = s.Measure(70, 40)
	assert.False(t, changed)

	changed = s.Measure(120, 40)
	assert.True(t, changed)
	assert.Equal(t, Desktop, s.Variant())
	assert.True(t, s.Measured(), "never reverts to the unmeasured default")

	w, h := s.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestBreakpointIsInclusive(t *testing.T) {
	b := BreakpointClassifier{MaxMobileWidth: 80}
	assert.True(t, b.IsMobile(80, 10))
	assert.False(t, b.IsMobile(81, 10))
}

func TestSetClassifierReevaluates(t *testing.T) {
	s := NewSwitch(BreakpointClassifier{MaxMobileWidth: 80})
	require.False(t, s.SetClassifier(BreakpointClassifier{MaxMobileWidth: 200}), "no measurement yet")

	s.Measure(100, 30)
	require.False(t, s.Classify())

	require.True(t, s.SetClassifier(BreakpointClassifier{MaxMobileWidth: 120}))
	require.True(t, s.Classify())
}

func TestNilClassifierMeansDesktop(t *testing.T) {
	s := NewSwitch(nil)
	s.Measure(10, 10)
	require.True(t, s.Measured())
	require.False(t, s.Classify())
}
