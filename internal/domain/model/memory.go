package model

import (
	"fmt"
	"strings"
	"time"
)

// DefaultMaxHistory bounds a session's retained interactions.
const DefaultMaxHistory = 10

// contextRecent and snippetLen shape the context summary fed into prompts.
// Changing them changes model behavior, not just display.
const (
	contextRecent = 3
	snippetLen    = 50
)

// followUpIndicators signal that the user is continuing the previous topic
// rather than starting a new one.
var followUpIndicators = []string{
	"explain more", "tell me more", "what about", "how about", "also", "why", "how",
}

// Interaction is one recorded user/assistant exchange. Immutable once
// created; owned exclusively by ConversationMemory.
type Interaction struct {
	Timestamp   time.Time
	UserMessage string
	BotResponse string
	Category    Category
	Metadata    map[string]float64
}

// CategoryCount is one entry of a learning-progress tally. A slice of these
// preserves first-seen order, which a Go map would not.
type CategoryCount struct {
	Category Category
	Count    int
}

// ConversationMemory is the bounded, ordered log of a session's turns.
// Ordering is append position, never timestamp comparison. Not safe for
// concurrent use; callers serialize access.
type ConversationMemory struct {
	history      []Interaction
	maxHistory   int
	sessionStart time.Time
}

func NewConversationMemory(maxHistory int) *ConversationMemory {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &ConversationMemory{
		history:      make([]Interaction, 0, maxHistory),
		maxHistory:   maxHistory,
		sessionStart: time.Now(),
	}
}

// AddInteraction appends a turn, then truncates to maxHistory keeping the
// most recent entries.
func (m *ConversationMemory) AddInteraction(userMessage, botResponse string, category Category, metadata map[string]float64) {
	m.history = append(m.history, Interaction{
		Timestamp:   time.Now(),
		UserMessage: userMessage,
		BotResponse: botResponse,
		Category:    category,
		Metadata:    metadata,
	})
	if len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}
}

// History returns the retained interactions in chronological order. The
// returned slice is the live backing array; callers must not mutate it.
func (m *ConversationMemory) History() []Interaction {
	return m.history
}

func (m *ConversationMemory) Len() int { return len(m.history) }

func (m *ConversationMemory) SessionStart() time.Time { return m.sessionStart }

// ContextSummary renders a digest of the last turns for prompt injection.
// Its exact shape is part of the contract with the completion provider.
func (m *ConversationMemory) ContextSummary() string {
	if len(m.history) == 0 {
		return "This is the start of our conversation."
	}
	recent := m.history
	if len(recent) > contextRecent {
		recent = recent[len(recent)-contextRecent:]
	}
	parts := make([]string, 0, len(recent))
	for _, it := range recent {
		parts = append(parts, fmt.Sprintf("(%s): %s...", it.Category, truncateRunes(it.UserMessage, snippetLen)))
	}
	return "Recent conversation context: " + strings.Join(parts, "; ")
}

// LearningProgress tallies categories over the current bounded window in
// first-seen order. Counts reflect only the retained window, not lifetime
// totals.
func (m *ConversationMemory) LearningProgress() []CategoryCount {
	var out []CategoryCount
	idx := make(map[Category]int)
	for _, it := range m.history {
		if i, ok := idx[it.Category]; ok {
			out[i].Count++
			continue
		}
		idx[it.Category] = len(out)
		out = append(out, CategoryCount{Category: it.Category, Count: 1})
	}
	return out
}

// IsFollowUp reports whether the message contains a follow-up indicator.
// Pure predicate; matching is case-insensitive substring.
func (m *ConversationMemory) IsFollowUp(message string) bool {
	return ContainsFollowUpIndicator(message)
}

// ContainsFollowUpIndicator is the package-level form of IsFollowUp for
// callers that have no memory at hand.
func ContainsFollowUpIndicator(message string) bool {
	lowered := strings.ToLower(message)
	for _, ind := range followUpIndicators {
		if strings.Contains(lowered, ind) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
