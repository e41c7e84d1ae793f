package player

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/internal/store"
	"github.com/orgball2608/story-studio/pkg/errors"
	"github.com/orgball2608/story-studio/pkg/logger"
)

var ErrEmptyStory = errors.New("story has no segments")

type State int

const (
	Idle State = iota
	Playing
	Paused
	Closed
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Closed:
		return "closed"
	}
	return "idle"
}

// VideoSurface is the native player a video segment renders into.
type VideoSurface interface {
	Play(uri string) error
	Pause()
	Resume()
	Stop()
	Release()
	SetMuted(muted bool)
}

type SegmentProgress struct {
	Filled   bool    `json:"filled"`
	Active   bool    `json:"active"`
	Fraction float64 `json:"fraction"`
}

type Snapshot struct {
	Seq       uint64            `json:"seq"`
	State     State             `json:"state"`
	Index     int               `json:"index"`
	SegmentID string            `json:"segmentId,omitempty"`
	Progress  []SegmentProgress `json:"progress"`
	Liked     bool              `json:"liked"`
	Muted     bool              `json:"muted"`
}

// Player drives playback of one story at a time. Every transition bumps a
// generation counter; timer fires and video signals from an older
// generation are dropped.
type Player struct {
	clock        clockwork.Clock
	defaultImage time.Duration
	minImage     time.Duration
	video        VideoSurface
	logger       logger.Logger
	snapshots    *store.Observable[Snapshot]

	mu            sync.Mutex
	segments      []domain.StorySegment
	state         State
	index         int
	generation    uint64
	seq           uint64
	timer         clockwork.Timer
	startedAt     time.Time
	duration      time.Duration
	remaining     time.Duration
	videoFraction float64
	videoActive   bool
	finishPending bool
	liked         bool
	muted         bool
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// Subscribe is notified after every transition; read the new state with
// Snapshot or Published.
func (p *Player) Subscribe(listener func()) func() {
	return p.snapshots.Subscribe(listener)
}

// Published is the snapshot taken at the last transition.
func (p *Player) Published() Snapshot {
	return p.snapshots.Get()
}

// Open starts playback at the first segment. Reopening after Close always
// starts over.
func (p *Player) Open(segments []domain.StorySegment) error {
	if len(segments) == 0 {
		return ErrEmptyStory
	}

	p.mu.Lock()
	p.stopTimerLocked()
	p.stopVideoLocked()
	p.muted = false
	p.segments = append([]domain.StorySegment(nil), segments...)
	p.startLocked(0)
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.logger.Debug("Story opened", "segments", len(segments))
	p.publish(snap)
	return nil
}

func (p *Player) Next() {
	p.transition(func() bool {
		if p.state != Playing && p.state != Paused {
			return false
		}
		p.advanceLocked()
		return true
	})
}

// Previous restarts the prior segment from its start. At the first segment
// it does nothing.
func (p *Player) Previous() {
	p.transition(func() bool {
		if p.state != Playing && p.state != Paused {
			return false
		}
		if p.index == 0 {
			return false
		}
		p.startLocked(p.index - 1)
		return true
	})
}

func (p *Player) TogglePause() {
	p.transition(func() bool {
		switch p.state {
		case Playing:
			p.pauseLocked()
			return true
		case Paused:
			p.resumeLocked()
			return true
		}
		return false
	})
}

func (p *Player) Pause() {
	p.transition(func() bool {
		if p.state != Playing {
			return false
		}
		p.pauseLocked()
		return true
	})
}

func (p *Player) Resume() {
	p.transition(func() bool {
		if p.state != Paused {
			return false
		}
		p.resumeLocked()
		return true
	})
}

// Close cancels the pending timer and stops and releases the video surface
// before reporting Closed.
func (p *Player) Close() {
	p.transition(func() bool {
		if p.state == Closed {
			return false
		}
		p.closeLocked()
		return true
	})
}

// VideoFinished advances when segmentID is the video currently playing.
// A finish that lands while paused is held until Resume. Late signals for a
// segment that is no longer current are ignored.
func (p *Player) VideoFinished(segmentID string) {
	p.transition(func() bool {
		if (p.state != Playing && p.state != Paused) || !p.currentIsVideoLocked(segmentID) {
			p.logger.Debug("Ignoring stale video finish", "segment_id", segmentID)
			return false
		}
		if p.state == Paused {
			p.finishPending = true
			return false
		}
		p.advanceLocked()
		return true
	})
}

// VideoProgress records the playback position of the current video.
func (p *Player) VideoProgress(segmentID string, fraction float64) {
	p.transition(func() bool {
		if p.state == Closed || !p.currentIsVideoLocked(segmentID) {
			return false
		}
		p.videoFraction = min(max(fraction, 0), 1)
		return true
	})
}

func (p *Player) ToggleLike() {
	p.transition(func() bool {
		if p.state != Playing && p.state != Paused {
			return false
		}
		p.liked = !p.liked
		return true
	})
}

func (p *Player) ToggleMute() {
	p.transition(func() bool {
		if p.state != Playing && p.state != Paused {
			return false
		}
		p.muted = !p.muted
		if p.videoActive {
			p.video.SetMuted(p.muted)
		}
		return true
	})
}

func (p *Player) transition(fn func() bool) {
	p.mu.Lock()
	if !fn() {
		p.mu.Unlock()
		return
	}
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.publish(snap)
}

// publish drops snapshots that lost a race with a newer one.
func (p *Player) publish(snap Snapshot) {
	p.snapshots.Update(func(current Snapshot) (Snapshot, bool) {
		if snap.Seq <= current.Seq {
			return current, false
		}
		return snap, true
	})
}
