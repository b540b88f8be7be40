// File: internal/infra/metrics/recorder.go
package metrics

import "quantum-tutor/internal/domain/ports/adapter"

var _ adapter.SessionMetrics = Recorder{}

// Recorder satisfies the session instrumentation port with the Prometheus
// collectors in this package.
type Recorder struct{}

func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) IncQuery(category string) { IncQuery(category) }

func (Recorder) IncDegradedTurn() { IncDegradedTurn() }

func (Recorder) IncSessionReset() { IncSessionReset() }

func (Recorder) AddPromptTokens(n int) { AddPromptTokens(n) }
