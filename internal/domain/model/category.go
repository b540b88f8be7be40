package model

import "strings"

// BaseCategory is one of the fixed intent classes the classifier can assign.
type BaseCategory string

const (
	CategoryCode        BaseCategory = "code"
	CategoryResearch    BaseCategory = "research"
	CategoryComparison  BaseCategory = "comparison"
	CategoryMath        BaseCategory = "math"
	CategoryApplication BaseCategory = "application"
	CategoryHistory     BaseCategory = "history"
	CategoryFun         BaseCategory = "fun"
	CategoryQuiz        BaseCategory = "quiz"
	CategoryHelp        BaseCategory = "help"
	CategoryProgress    BaseCategory = "progress"
	CategoryGeneral     BaseCategory = "general"
	CategoryError       BaseCategory = "error"
)

const followUpPrefix = "followup_"

// Category tags a turn with its classified intent. Follow-up questions keep
// the base class of the turn they continue, with FollowUp set. The zero value
// is not valid; use NewCategory or FollowUpOf.
type Category struct {
	Base     BaseCategory
	FollowUp bool
}

func NewCategory(base BaseCategory) Category {
	return Category{Base: base}
}

// FollowUpOf derives the follow-up variant of a category. A follow-up of a
// follow-up stays a single level deep.
func FollowUpOf(c Category) Category {
	return Category{Base: c.Base, FollowUp: true}
}

func (c Category) String() string {
	if c.FollowUp {
		return followUpPrefix + string(c.Base)
	}
	return string(c.Base)
}

// ParseCategory is the inverse of String. Unknown names map to a plain
// general-tagged spelling of themselves so round-tripping stored history
// never fails.
func ParseCategory(s string) Category {
	if rest, ok := strings.CutPrefix(s, followUpPrefix); ok {
		return Category{Base: BaseCategory(rest), FollowUp: true}
	}
	return Category{Base: BaseCategory(s)}
}
