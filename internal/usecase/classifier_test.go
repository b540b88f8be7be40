//go:build !integration

package usecase

import (
	"testing"

	"quantum-tutor/internal/domain/model"
)

func historyWith(categories ...model.Category) []model.Interaction {
	out := make([]model.Interaction, 0, len(categories))
	for _, c := range categories {
		out = append(out, model.Interaction{UserMessage: "q", BotResponse: "r", Category: c})
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Run("follow-up beats the keyword table when history exists", func(t *testing.T) {
		history := historyWith(model.NewCategory(model.CategoryMath))
		got := Classify("why does that work", history)
		if got.String() != "followup_math" {
			t.Errorf("expected followup_math, got %q", got)
		}
	})

	t.Run("follow-up indicator without history falls through to keywords", func(t *testing.T) {
		got := Classify("tell me more about the formula", nil)
		if got != model.NewCategory(model.CategoryMath) {
			t.Errorf("expected math, got %q", got)
		}
	})

	t.Run("follow-up of a follow-up keeps the base category", func(t *testing.T) {
		history := historyWith(model.FollowUpOf(model.NewCategory(model.CategoryCode)))
		got := Classify("what about that", history)
		if got.String() != "followup_code" {
			t.Errorf("expected followup_code, got %q", got)
		}
	})

	t.Run("earlier table rule wins on multi-category matches", func(t *testing.T) {
		// "compare" triggers comparison, "formula" triggers math; comparison
		// is declared first.
		got := Classify("compare the math formula", nil)
		if got != model.NewCategory(model.CategoryComparison) {
			t.Errorf("expected comparison, got %q", got)
		}
	})

	t.Run("keyword matching is case-insensitive substring", func(t *testing.T) {
		got := Classify("Show me some PYTHON", nil)
		if got != model.NewCategory(model.CategoryCode) {
			t.Errorf("expected code, got %q", got)
		}
	})

	t.Run("no indicator and no keyword falls back to general", func(t *testing.T) {
		got := Classify("hello there", nil)
		if got != model.NewCategory(model.CategoryGeneral) {
			t.Errorf("expected general, got %q", got)
		}
	})

	t.Run("rule table covers every declared category", func(t *testing.T) {
		cases := map[string]model.BaseCategory{
			"show me some qiskit":        model.CategoryCode,
			"any arxiv paper":            model.CategoryResearch,
			"classical vs the rest":      model.CategoryComparison,
			"derive the equation":        model.CategoryMath,
			"a real world use case":      model.CategoryApplication,
			"who discovered this":        model.CategoryHistory,
			"give me a fun fact":         model.CategoryFun,
			"quiz me":                    model.CategoryQuiz,
			"what can you do":            model.CategoryHelp,
			"my learning progress since": model.CategoryProgress,
		}
		for msg, want := range cases {
			if got := Classify(msg, nil); got != model.NewCategory(want) {
				t.Errorf("Classify(%q) = %q, want %q", msg, got, want)
			}
		}
	})
}
