package gallery

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/archivomural/murales-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoMuralLayout(t *testing.T) *Layout {
	t.Helper()
	layout := ComputeLayout([]models.Mural{
		muralWithMedidas("2m x 2m"),
		muralWithMedidas("3m x 2m"),
	}, testGalleryConfig())
	require.Equal(t, -10.0, layout.StartWallX)
	require.Equal(t, 37.0, layout.EndWallX)
	return &layout
}

func TestPoll_OnStartWall(t *testing.T) {
	layout := twoMuralLayout(t)

	state := Poll(layout.StartWallX, layout, 2)

	assert.True(t, state.NearStartWall)
	assert.False(t, state.NearEndWall)
	assert.Equal(t, 0.0, state.DistanceToStart)
}

func TestPoll_ThresholdBoundaryExcluded(t *testing.T) {
	layout := twoMuralLayout(t)

	state := Poll(layout.StartWallX+2, layout, 2)

	assert.False(t, state.NearStartWall)
	assert.Equal(t, 2.0, state.DistanceToStart)

	state = Poll(layout.EndWallX-2, layout, 2)
	assert.False(t, state.NearEndWall)

	state = Poll(layout.EndWallX-1.99, layout, 2)
	assert.True(t, state.NearEndWall)
}

func TestPoll_MidHall(t *testing.T) {
	layout := twoMuralLayout(t)

	state := Poll(layout.CenterX, layout, 2)

	assert.False(t, state.NearStartWall)
	assert.False(t, state.NearEndWall)
	assert.Equal(t, layout.HallLength/2, state.DistanceToStart)
	assert.Equal(t, layout.HallLength/2, state.DistanceToEnd)
}

func TestInitialState(t *testing.T) {
	state := InitialState()

	assert.False(t, state.NearStartWall)
	assert.False(t, state.NearEndWall)
	assert.True(t, math.IsInf(state.DistanceToStart, 1))
	assert.True(t, math.IsInf(state.DistanceToEnd, 1))
}

type fakeSource struct {
	mu  sync.Mutex
	pos float64
	ok  bool
}

func (s *fakeSource) set(pos float64, ok bool) {
	s.mu.Lock()
	s.pos, s.ok = pos, ok
	s.mu.Unlock()
}

func (s *fakeSource) read() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos, s.ok
}

func waitForState(t *testing.T, d *Detector, pred func(State) bool) State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state := d.State()
		if pred(state) {
			return state
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("detector never reached expected state")
	return State{}
}

func TestDetector_PollsOnCadence(t *testing.T) {
	layout := twoMuralLayout(t)
	source := &fakeSource{}
	source.set(layout.StartWallX, true)

	d := NewDetector(source.read, layout, 2, 5*time.Millisecond)
	d.Start()
	defer d.Stop()

	state := waitForState(t, d, func(s State) bool { return s.NearStartWall })
	assert.Equal(t, 0.0, state.DistanceToStart)

	source.set(layout.EndWallX, true)
	waitForState(t, d, func(s State) bool { return s.NearEndWall && !s.NearStartWall })
}

func TestDetector_KeepsStateWhenSourceUnavailable(t *testing.T) {
	layout := twoMuralLayout(t)
	source := &fakeSource{}
	source.set(layout.StartWallX, true)

	d := NewDetector(source.read, layout, 2, 5*time.Millisecond)
	d.Start()
	defer d.Stop()

	waitForState(t, d, func(s State) bool { return s.NearStartWall })

	source.set(0, false)
	time.Sleep(30 * time.Millisecond)

	state := d.State()
	assert.True(t, state.NearStartWall)
	assert.Equal(t, 0.0, state.DistanceToStart)
}

func TestDetector_NilLayoutSuspendsPolling(t *testing.T) {
	source := &fakeSource{}
	source.set(0, true)

	d := NewDetector(source.read, nil, 2, 5*time.Millisecond)
	d.Start()
	defer d.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.True(t, math.IsInf(d.State().DistanceToStart, 1))

	d.SetLayout(twoMuralLayout(t))
	source.set(-10, true)
	waitForState(t, d, func(s State) bool { return s.NearStartWall })
}

func TestDetector_StopIsIdempotentAndJoins(t *testing.T) {
	layout := twoMuralLayout(t)
	source := &fakeSource{}
	source.set(layout.CenterX, true)

	d := NewDetector(source.read, layout, 2, time.Millisecond)
	d.Start()

	done := make(chan struct{})
	go func() {
		d.Stop()
		d.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
