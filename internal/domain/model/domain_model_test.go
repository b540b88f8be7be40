//go:build !integration

package model

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// --- Category Tests ---

func TestCategory(t *testing.T) {
	t.Run("base category renders its name", func(t *testing.T) {
		if got := NewCategory(CategoryMath).String(); got != "math" {
			t.Errorf("expected 'math', got %q", got)
		}
	})

	t.Run("follow-up variant renders with prefix", func(t *testing.T) {
		c := FollowUpOf(NewCategory(CategoryMath))
		if got := c.String(); got != "followup_math" {
			t.Errorf("expected 'followup_math', got %q", got)
		}
	})

	t.Run("follow-up of a follow-up stays one level deep", func(t *testing.T) {
		c := FollowUpOf(FollowUpOf(NewCategory(CategoryCode)))
		if got := c.String(); got != "followup_code" {
			t.Errorf("expected 'followup_code', got %q", got)
		}
	})

	t.Run("parse round-trips both forms", func(t *testing.T) {
		for _, s := range []string{"math", "followup_math", "general", "error"} {
			if got := ParseCategory(s).String(); got != s {
				t.Errorf("round trip of %q gave %q", s, got)
			}
		}
	})
}

// --- ConversationMemory Tests ---

func TestConversationMemoryBoundedHistory(t *testing.T) {
	mem := NewConversationMemory(3)
	for i := 0; i < 7; i++ {
		mem.AddInteraction(fmt.Sprintf("question %d", i), "answer", NewCategory(CategoryGeneral), nil)
		if mem.Len() > 3 {
			t.Fatalf("history grew past maxHistory after %d adds: len=%d", i+1, mem.Len())
		}
	}
	if mem.Len() != 3 {
		t.Fatalf("expected 3 retained interactions, got %d", mem.Len())
	}
	// Oldest entries are evicted first; the tail must be the most recent adds.
	for i, it := range mem.History() {
		want := fmt.Sprintf("question %d", 4+i)
		if it.UserMessage != want {
			t.Errorf("history[%d] = %q, want %q", i, it.UserMessage, want)
		}
	}
}

func TestConversationMemoryContextSummary(t *testing.T) {
	t.Run("empty history returns the fixed opening sentence", func(t *testing.T) {
		mem := NewConversationMemory(0)
		if got := mem.ContextSummary(); got != "This is the start of our conversation." {
			t.Errorf("unexpected summary: %q", got)
		}
	})

	t.Run("digest covers the last three turns in order", func(t *testing.T) {
		mem := NewConversationMemory(10)
		for i := 0; i < 5; i++ {
			mem.AddInteraction(fmt.Sprintf("msg %d", i), "r", NewCategory(CategoryMath), nil)
		}
		got := mem.ContextSummary()
		if !strings.HasPrefix(got, "Recent conversation context: ") {
			t.Fatalf("missing prefix: %q", got)
		}
		if strings.Contains(got, "msg 1") {
			t.Errorf("summary includes turns older than the last three: %q", got)
		}
		i2 := strings.Index(got, "msg 2")
		i4 := strings.Index(got, "msg 4")
		if i2 < 0 || i4 < 0 || i2 > i4 {
			t.Errorf("expected chronological digest of msg 2..4, got %q", got)
		}
		if !strings.Contains(got, "(math): msg 2...") {
			t.Errorf("expected '(category): message...' rendering, got %q", got)
		}
	})

	t.Run("long messages are cut at fifty characters", func(t *testing.T) {
		mem := NewConversationMemory(10)
		long := strings.Repeat("a", 80)
		mem.AddInteraction(long, "r", NewCategory(CategoryGeneral), nil)
		got := mem.ContextSummary()
		if !strings.Contains(got, strings.Repeat("a", 50)+"...") {
			t.Errorf("expected 50-char truncation, got %q", got)
		}
		if strings.Contains(got, strings.Repeat("a", 51)) {
			t.Errorf("snippet longer than 50 chars: %q", got)
		}
	})
}

func TestConversationMemoryLearningProgress(t *testing.T) {
	mem := NewConversationMemory(10)
	for _, c := range []BaseCategory{CategoryMath, CategoryCode, CategoryMath, CategoryFun} {
		mem.AddInteraction("q", "r", NewCategory(c), nil)
	}
	got := mem.LearningProgress()
	want := []CategoryCount{
		{NewCategory(CategoryMath), 2},
		{NewCategory(CategoryCode), 1},
		{NewCategory(CategoryFun), 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("progress[%d] = %+v, want %+v (first-seen order)", i, got[i], want[i])
		}
	}
}

func TestConversationMemoryIsFollowUp(t *testing.T) {
	mem := NewConversationMemory(10)
	cases := map[string]bool{
		"Tell me more about qubits": true,
		"WHY does that happen":      true,
		"what about gates":          true,
		"hello there":               false,
		"give me a circuit":         false,
	}
	for msg, want := range cases {
		if got := mem.IsFollowUp(msg); got != want {
			t.Errorf("IsFollowUp(%q) = %v, want %v", msg, got, want)
		}
	}
}

// --- SessionStats Tests ---

func TestSessionStats(t *testing.T) {
	stats := NewSessionStats()
	stats.RecordQuery(NewCategory(CategoryMath), 2*time.Second)
	stats.RecordQuery(NewCategory(CategoryMath), 4*time.Second)
	stats.RecordQuery(NewCategory(CategoryCode), 3*time.Second)

	if stats.TotalQueries() != 3 {
		t.Errorf("expected 3 queries, got %d", stats.TotalQueries())
	}
	if stats.TopicsCovered() != 2 {
		t.Errorf("expected 2 distinct topics, got %d", stats.TopicsCovered())
	}
	if got := stats.AvgResponse(); got != 3*time.Second {
		t.Errorf("expected 3s running average, got %v", got)
	}
	snap := stats.Snapshot()
	if snap.TotalQueries != 3 || snap.TopicsCovered != 2 {
		t.Errorf("snapshot mismatch: %+v", snap)
	}
	if snap.AvgResponseTime != 3.0 {
		t.Errorf("expected avg_response_time 3.0, got %v", snap.AvgResponseTime)
	}
}
