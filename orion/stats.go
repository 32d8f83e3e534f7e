package orion

import (
	"time"
)

const statsWindow = 60

// FrameStats aggregates the intervals between presented frames over
// windows of statsWindow frames.
type FrameStats struct {
	Frames uint64

	intervals [statsWindow]time.Duration
	filled    int
	next      int
	last      time.Time
}

func (s *FrameStats) observe(now time.Time) bool {
	if s.Frames > 0 {
		s.intervals[s.next] = now.Sub(s.last)
		s.next = (s.next + 1) % statsWindow
		s.filled = min(s.filled+1, statsWindow)
	}

	s.last = now
	s.Frames++

	return s.Frames%statsWindow == 0
}

// Frame records a presented frame, true once a full window has passed.
func (s *FrameStats) Frame() bool {
	return s.observe(time.Now())
}

func (s *FrameStats) Average() time.Duration {
	if s.filled == 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range s.intervals[:s.filled] {
		sum += d
	}

	return sum / time.Duration(s.filled)
}

func (s *FrameStats) Max() time.Duration {
	var result time.Duration
	for _, d := range s.intervals[:s.filled] {
		result = max(result, d)
	}

	return result
}

func (s *FrameStats) FPS() float64 {
	avg := s.Average()
	if avg <= 0 {
		return 0
	}

	return 1 / avg.Seconds()
}
