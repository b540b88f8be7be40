package adapter

// SessionMetrics is the outbound instrumentation port for session turns.
// The use case records through it; the Prometheus recorder lives in infra.
type SessionMetrics interface {
	IncQuery(category string)
	IncDegradedTurn()
	IncSessionReset()
	AddPromptTokens(n int)
}
