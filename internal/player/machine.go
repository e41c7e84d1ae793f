package player

import (
	"time"

	"github.com/orgball2608/story-studio/internal/domain"
)

func (p *Player) startLocked(index int) {
	p.stopTimerLocked()
	if p.videoActive {
		p.video.Stop()
		p.videoActive = false
	}

	p.generation++
	p.index = index
	p.state = Playing
	p.liked = false
	p.finishPending = false
	p.videoFraction = 0

	seg := p.segments[index]
	if seg.MediaKind == domain.MediaVideo {
		p.duration, p.remaining = 0, 0
		if p.video == nil {
			p.logger.Warn("No video surface, waiting for manual navigation", "segment_id", seg.ID)
			return
		}
		p.video.SetMuted(p.muted)
		if err := p.video.Play(seg.SourceURI); err != nil {
			p.logger.Error("Failed to play video segment", "segment_id", seg.ID, "error", err)
			return
		}
		p.videoActive = true
		return
	}

	p.duration = seg.ImageDuration(p.defaultImage, p.minImage)
	p.remaining = p.duration
	p.scheduleLocked(p.remaining)
}

func (p *Player) scheduleLocked(d time.Duration) {
	gen := p.generation
	p.startedAt = p.clock.Now()
	p.timer = p.clock.AfterFunc(d, func() { p.onTimer(gen) })
}

func (p *Player) onTimer(gen uint64) {
	p.transition(func() bool {
		if gen != p.generation || p.state != Playing {
			return false
		}
		p.timer = nil
		p.advanceLocked()
		return true
	})
}

func (p *Player) advanceLocked() {
	if p.index < len(p.segments)-1 {
		p.startLocked(p.index + 1)
		return
	}
	p.closeLocked()
}

// Image segments keep their remaining time across a pause.
func (p *Player) pauseLocked() {
	p.state = Paused
	p.generation++
	if p.timer != nil {
		p.stopTimerLocked()
		elapsed := p.clock.Since(p.startedAt)
		p.remaining = max(p.remaining-elapsed, 0)
	}
	if p.videoActive {
		p.video.Pause()
	}
}

func (p *Player) resumeLocked() {
	p.state = Playing
	p.generation++
	if p.finishPending {
		p.advanceLocked()
		return
	}
	if p.currentKindLocked() == domain.MediaImage {
		p.scheduleLocked(p.remaining)
	}
	if p.videoActive {
		p.video.Resume()
	}
}

func (p *Player) closeLocked() {
	p.generation++
	p.finishPending = false
	p.stopTimerLocked()
	p.stopVideoLocked()
	if p.video != nil {
		p.video.Release()
	}
	p.state = Closed
	p.logger.Debug("Story closed", "index", p.index)
}

func (p *Player) stopTimerLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Player) stopVideoLocked() {
	if p.videoActive {
		p.video.Stop()
		p.videoActive = false
	}
}

func (p *Player) currentKindLocked() domain.MediaKind {
	if p.index < 0 || p.index >= len(p.segments) {
		return ""
	}
	return p.segments[p.index].MediaKind
}

func (p *Player) currentIsVideoLocked(segmentID string) bool {
	if p.currentKindLocked() != domain.MediaVideo {
		return false
	}
	return p.segments[p.index].ID == segmentID
}

func (p *Player) snapshotLocked() Snapshot {
	p.seq++
	snap := Snapshot{
		Seq:      p.seq,
		State:    p.state,
		Index:    p.index,
		Liked:    p.liked,
		Muted:    p.muted,
		Progress: make([]SegmentProgress, len(p.segments)),
	}
	if p.index < len(p.segments) {
		snap.SegmentID = p.segments[p.index].ID
	}

	for i := range p.segments {
		switch {
		case i < p.index:
			snap.Progress[i] = SegmentProgress{Filled: true, Fraction: 1}
		case i == p.index && p.state != Closed:
			snap.Progress[i] = SegmentProgress{Active: true, Fraction: p.currentFractionLocked()}
		}
	}
	return snap
}

func (p *Player) currentFractionLocked() float64 {
	if p.currentKindLocked() == domain.MediaVideo {
		return p.videoFraction
	}
	if p.duration <= 0 {
		return 0
	}

	done := p.duration - p.remaining
	if p.state == Playing && p.timer != nil {
		done += p.clock.Since(p.startedAt)
	}
	return min(max(float64(done)/float64(p.duration), 0), 1)
}
