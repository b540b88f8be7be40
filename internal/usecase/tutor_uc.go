// File: internal/usecase/tutor_uc.go
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"quantum-tutor/internal/domain"
	"quantum-tutor/internal/domain/model"
	"quantum-tutor/internal/domain/ports/adapter"
	"quantum-tutor/internal/infra/logging"
)

// Compile-time check
var _ TutorUseCase = (*tutorUC)(nil)

// SessionReply is the structured result of one handled turn. Degraded marks
// turns where the completion provider failed and the reply is the recovery
// message; callers get a value either way, never an error, for that case.
type SessionReply struct {
	Response           string
	Category           model.Category
	ConversationLength int
	Degraded           bool
	ResponseTime       time.Duration
}

type TutorUseCase interface {
	// Handle processes one user message and returns a reply. The only error
	// it returns is domain.ErrInvalidArgument for blank input; provider
	// failures come back as a degraded reply.
	Handle(ctx context.Context, message string) (*SessionReply, error)
	// Reset discards conversation memory and stats, starting a fresh session.
	Reset(ctx context.Context)
	// Summary returns the progress digest without recording a turn.
	Summary(ctx context.Context) string
	// Stats returns the authoritative session counters.
	Stats(ctx context.Context) model.StatsSnapshot
}

// tutorUC assumes sequential invocation; the hosting layer serializes
// concurrent callers (one lock per session).
type tutorUC struct {
	ai         adapter.AIServiceAdapter
	metrics    adapter.SessionMetrics
	maxHistory int
	memory     *model.ConversationMemory
	stats      *model.SessionStats
	sessionID  string
	log        *zerolog.Logger
}

func NewTutorUseCase(ai adapter.AIServiceAdapter, met adapter.SessionMetrics, maxHistory int, logger *zerolog.Logger) *tutorUC {
	return &tutorUC{
		ai:         ai,
		metrics:    met,
		maxHistory: maxHistory,
		memory:     model.NewConversationMemory(maxHistory),
		stats:      model.NewSessionStats(),
		sessionID:  uuid.NewString(),
		log:        logger,
	}
}

func (t *tutorUC) Handle(ctx context.Context, message string) (*SessionReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrInvalidArgument
	}
	defer logging.TraceDuration(t.log, "TutorUC.Handle")()
	ctx = logging.WithSessID(ctx, t.sessionID)
	log := logging.With(ctx, t.log)

	start := time.Now()
	category := Classify(message, t.memory.History())

	var raw string
	degraded := false
	switch {
	case category == model.NewCategory(model.CategoryHelp):
		raw = helpResponse
	case category == model.NewCategory(model.CategoryProgress):
		raw = t.sessionSummary()
	default:
		prompt := t.buildPrompt(message, category)
		if n, err := t.ai.CountTokens(ctx, "", promptMessages(prompt)); err == nil {
			t.metrics.AddPromptTokens(n)
		}
		reply, err := t.ai.Chat(ctx, "", promptMessages(prompt))
		if err != nil {
			// Provider failure is non-fatal: the turn still completes with a
			// visible recovery message and is recorded under its classified
			// category.
			log.Warn().Err(err).
				Str("category", category.String()).Msg("completion call failed")
			t.metrics.IncDegradedTurn()
			raw = fmt.Sprintf("🔧 Oops! An error occurred: %v", err)
			degraded = true
		} else {
			raw = reply
		}
	}

	formatted := FormatResponse(raw)
	elapsed := time.Since(start)
	t.memory.AddInteraction(message, formatted, category, map[string]float64{
		"response_time": elapsed.Seconds(),
	})
	t.stats.RecordQuery(category, elapsed)
	t.metrics.IncQuery(category.String())

	log.Debug().
		Str("category", category.String()).
		Dur("elapsed", elapsed).
		Int("conversation_length", t.memory.Len()).
		Bool("degraded", degraded).
		Msg("turn handled")

	return &SessionReply{
		Response:           formatted,
		Category:           category,
		ConversationLength: t.memory.Len(),
		Degraded:           degraded,
		ResponseTime:       elapsed,
	}, nil
}

func (t *tutorUC) Reset(ctx context.Context) {
	t.memory = model.NewConversationMemory(t.maxHistory)
	t.stats = model.NewSessionStats()
	t.sessionID = uuid.NewString()
	t.metrics.IncSessionReset()
	t.log.Info().Str("session_id", t.sessionID).Msg("conversation reset")
}

func (t *tutorUC) Summary(ctx context.Context) string {
	return t.sessionSummary()
}

func (t *tutorUC) Stats(ctx context.Context) model.StatsSnapshot {
	return t.stats.Snapshot()
}

// buildPrompt concatenates the persona preamble, conversation context, the
// literal message, its category and the learning progress, closing with the
// style instruction. The relative order matters: later context depends on
// earlier session state being visible to the model.
func (t *tutorUC) buildPrompt(message string, category model.Category) string {
	progress := renderProgress(t.memory.LearningProgress())
	if progress == "" {
		progress = "New learner"
	}
	return fmt.Sprintf("You are QuantumTutor 🤖, an expert quantum computing tutor. "+
		"CONVERSATION CONTEXT: %s. "+
		"CURRENT QUERY: '%s'. QUERY CATEGORY: %s. "+
		"LEARNING PROGRESS: %s. "+
		"Instructions: Be friendly, use simple analogies, and keep responses engaging and well-structured.",
		t.memory.ContextSummary(), message, category, progress)
}

func (t *tutorUC) sessionSummary() string {
	progress := t.memory.LearningProgress()
	if len(progress) == 0 {
		return "🌟 Welcome! We haven't started our learning journey yet."
	}
	topics := make([]string, 0, len(progress))
	most := progress[0]
	for _, cc := range progress {
		topics = append(topics, cc.Category.String())
		// Strictly greater keeps the first-seen entry on ties.
		if cc.Count > most.Count {
			most = cc
		}
	}
	return fmt.Sprintf("📊 Session Summary\n"+
		"• Total questions: %d\n"+
		"• Topics explored: %s\n"+
		"• Most discussed topic: %s",
		t.memory.Len(), strings.Join(topics, ", "), most.Category)
}

const helpResponse = "🤖 **QuantumTutor Capabilities**\n\nI can help you with:\n" +
	"• 💻 **Code**: Python/Qiskit examples\n" +
	"• 📚 **Research**: arXiv paper suggestions\n" +
	"• ⚖️ **Comparisons**: Classical vs. Quantum concepts\n" +
	"• 🌍 **Applications**: Real-world use cases\n" +
	"• 🎯 **Quizzes**: Test your knowledge\n\n" +
	"Try asking: *'Explain quantum superposition'* or *'Show me a simple Qiskit circuit'*."

func renderProgress(progress []model.CategoryCount) string {
	if len(progress) == 0 {
		return ""
	}
	parts := make([]string, 0, len(progress))
	for _, cc := range progress {
		parts = append(parts, fmt.Sprintf("%s: %d", cc.Category, cc.Count))
	}
	return strings.Join(parts, ", ")
}

func promptMessages(prompt string) []adapter.Message {
	return []adapter.Message{{Role: "user", Content: prompt}}
}
