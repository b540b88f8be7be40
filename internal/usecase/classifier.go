package usecase

import (
	"strings"

	"quantum-tutor/internal/domain/model"
)

// keywordRule maps one category to its trigger keywords. Declaration order
// is the tie-break: the first matching rule wins.
type keywordRule struct {
	category model.BaseCategory
	keywords []string
}

var keywordRules = []keywordRule{
	{model.CategoryCode, []string{"code", "python", "program", "qiskit"}},
	{model.CategoryResearch, []string{"arxiv", "paper", "research"}},
	{model.CategoryComparison, []string{"difference", "vs", "compare"}},
	{model.CategoryMath, []string{"formula", "equation", "math"}},
	{model.CategoryApplication, []string{"application", "real world", "use case"}},
	{model.CategoryHistory, []string{"history", "who discovered"}},
	{model.CategoryFun, []string{"fun fact", "joke", "trivia"}},
	{model.CategoryQuiz, []string{"mcq", "quiz", "test"}},
	{model.CategoryHelp, []string{"help", "what can you do"}},
	{model.CategoryProgress, []string{"progress", "summary"}},
}

// Classify maps a message (plus prior history) to a category. Priority:
// follow-up detection first, then the keyword table in declaration order,
// then the general fallback. Keyword matching is case-insensitive substring,
// unlike the formatter's word-boundary rule.
func Classify(message string, history []model.Interaction) model.Category {
	if model.ContainsFollowUpIndicator(message) && len(history) > 0 {
		return model.FollowUpOf(history[len(history)-1].Category)
	}
	lowered := strings.ToLower(message)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return model.NewCategory(rule.category)
			}
		}
	}
	return model.NewCategory(model.CategoryGeneral)
}
