package model

import (
	"fmt"
	"time"
)

// SessionStats holds lifetime counters for one session. One authoritative
// copy lives in the tutor use case; the web layer reads snapshots and never
// keeps a parallel tally. Not safe for concurrent use.
type SessionStats struct {
	totalQueries  int
	sessionStart  time.Time
	topicsCovered map[Category]struct{}
	avgResponse   time.Duration
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		sessionStart:  time.Now(),
		topicsCovered: make(map[Category]struct{}),
	}
}

// RecordQuery folds one processed turn into the counters, keeping a running
// average of response time.
func (s *SessionStats) RecordQuery(category Category, elapsed time.Duration) {
	s.totalQueries++
	s.topicsCovered[category] = struct{}{}
	s.avgResponse += (elapsed - s.avgResponse) / time.Duration(s.totalQueries)
}

func (s *SessionStats) TotalQueries() int { return s.totalQueries }

func (s *SessionStats) SessionStart() time.Time { return s.sessionStart }

func (s *SessionStats) TopicsCovered() int { return len(s.topicsCovered) }

func (s *SessionStats) AvgResponse() time.Duration { return s.avgResponse }

// StatsSnapshot is a read-only view handed to hosting layers.
type StatsSnapshot struct {
	TotalQueries    int     `json:"total_queries"`
	TopicsCovered   int     `json:"topics_covered"`
	AvgResponseTime float64 `json:"avg_response_time"`
	Duration        string  `json:"duration"`
}

func (s *SessionStats) Snapshot() StatsSnapshot {
	d := time.Since(s.sessionStart)
	return StatsSnapshot{
		TotalQueries:    s.totalQueries,
		TopicsCovered:   len(s.topicsCovered),
		AvgResponseTime: roundSeconds(s.avgResponse),
		Duration:        fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60),
	}
}

func roundSeconds(d time.Duration) float64 {
	return float64(d.Round(10*time.Millisecond)) / float64(time.Second)
}
