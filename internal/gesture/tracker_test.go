package gesture

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slotdeck/internal/logger"
)

type recordingCapturer struct {
	captures []int
	releases []int
	err      error
}

func (c *recordingCapturer) Capture(id int) error {
	c.captures = append(c.captures, id)
	return c.err
}

func (c *recordingCapturer) Release(id int) error {
	c.releases = append(c.releases, id)
	return c.err
}

func newTracker(closes *int, capt Capturer) *Tracker {
	return NewTracker(Options{OnClose: func() { *closes++ }, Capturer: capt}, nil)
}

func TestCloseFiresOncePastThreshold(t *testing.T) {
	closes := 0
	tr := newTracker(&closes, nil)

	tr.PointerDown(Point{Y: 100})
	tr.PointerMove(Point{Y: 145})
	require.Equal(t, 1, closes)

	tr.PointerMove(Point{Y: 200})
	tr.PointerMove(Point{Y: 260})
	require.Equal(t, 1, closes)
	require.True(t, tr.Session().TriggeredClose)
}

func TestNoCloseBelowThreshold(t *testing.T) {
	closes := 0
	capt := &recordingCapturer{}
	tr := newTracker(&closes, capt)

	tr.PointerDown(Point{Y: 10})
	tr.PointerMove(Point{Y: 30})
	tr.PointerMove(Point{Y: 50}) // exactly 40 is not past the threshold
	tr.PointerUp()

	require.Zero(t, closes)
	require.Equal(t, Session{}, tr.Session())
	require.Equal(t, []int{0}, capt.captures)
	require.Equal(t, []int{0}, capt.releases)
}

func TestUpwardDragNeverCloses(t *testing.T) {
	closes := 0
	tr := newTracker(&closes, nil)

	tr.PointerDown(Point{Y: 100})
	tr.PointerMove(Point{Y: 20})
	require.Zero(t, closes)
	require.True(t, tr.Session().Dragging)
}

func TestMovesWithoutPressAreIgnored(t *testing.T) {
	closes := 0
	capt := &recordingCapturer{}
	tr := newTracker(&closes, capt)

	tr.PointerMove(Point{Y: 500})
	tr.PointerUp()
	tr.PointerMove(Point{Y: 900})

	require.Zero(t, closes)
	require.Empty(t, capt.captures)
	require.Empty(t, capt.releases)
	require.False(t, tr.Active())
}

func TestMovesFromOtherPointerAreIgnored(t *testing.T) {
	closes := 0
	tr := newTracker(&closes, nil)

	tr.PointerDown(Point{ID: 1, Y: 0})
	tr.PointerMove(Point{ID: 2, Y: 100})
	require.Zero(t, closes)
	require.False(t, tr.Session().Dragging)
}

func TestCaptureRequestedOnceAfterSlop(t *testing.T) {
	closes := 0
	capt := &recordingCapturer{}
	tr := newTracker(&closes, capt)

	tr.PointerDown(Point{ID: 3, Y: 0})
	tr.PointerMove(Point{ID: 3, Y: 5})
	assert.Empty(t, capt.captures)
	assert.False(t, tr.Session().Dragging)

	tr.PointerMove(Point{ID: 3, Y: -6})
	tr.PointerMove(Point{ID: 3, Y: 12})
	assert.Equal(t, []int{3}, capt.captures)
}

func TestCaptureFailuresAreSwallowed(t *testing.T) {
	closes := 0
	capt := &recordingCapturer{err: errors.New("denied")}
	tr := newTracker(&closes, capt)

	require.NotPanics(t, func() {
		tr.PointerDown(Point{Y: 0})
		tr.PointerMove(Point{Y: 41})
		tr.PointerUp()
	})
	require.Equal(t, 1, closes)
	require.Len(t, capt.releases, 1)
}

func TestResetIsTotalAcrossSessions(t *testing.T) {
	closes := 0
	tr := newTracker(&closes, nil)

	tr.PointerDown(Point{Y: 0})
	tr.PointerMove(Point{Y: 50})
	tr.PointerUp()
	require.Equal(t, 1, closes)
	require.True(t, tr.Session().TriggeredClose, "flag survives release")

	tr.PointerDown(Point{Y: 0})
	require.False(t, tr.Session().TriggeredClose)
	tr.PointerMove(Point{Y: 50})
	require.Equal(t, 2, closes)
}

func TestReleaseOnlyWhenDragging(t *testing.T) {
	closes := 0
	capt := &recordingCapturer{}
	tr := newTracker(&closes, capt)

	tr.PointerDown(Point{Y: 0})
	tr.PointerMove(Point{Y: 2})
	tr.PointerUp()
	require.Empty(t, capt.releases)
}

func TestCancelDiscardsSession(t *testing.T) {
	closes := 0
	capt := &recordingCapturer{}
	tr := newTracker(&closes, capt)

	tr.PointerDown(Point{Y: 0})
	tr.PointerMove(Point{Y: 10})
	tr.Cancel()
	require.False(t, tr.Active())
	require.Len(t, capt.releases, 1)

	tr.PointerMove(Point{Y: 100})
	require.Zero(t, closes)
}

func TestCancelLogsRefusedRelease(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	capt := &recordingCapturer{err: errors.New("not captured")}
	tr := NewTracker(Options{Capturer: capt}, log)

	tr.PointerDown(Point{Y: 0})
	tr.PointerMove(Point{Y: 10})
	tr.Cancel()
	require.Len(t, capt.releases, 1)
	assert.Contains(t, buf.String(), "pointer release refused")
	assert.Contains(t, buf.String(), "not captured")
}

func TestOptionsDefaultsAndThreshold(t *testing.T) {
	tr := NewTracker(Options{}, nil)
	require.Equal(t, DefaultThreshold, tr.Threshold())

	tr.SetThreshold(0)
	require.Equal(t, DefaultThreshold, tr.Threshold())

	tr.SetThreshold(3)
	tr.PointerDown(Point{Y: 1})
	require.NotPanics(t, func() { tr.PointerMove(Point{Y: 9}) })
	require.True(t, tr.Session().TriggeredClose)
}
