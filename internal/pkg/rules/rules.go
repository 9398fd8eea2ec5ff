package rules

import (
	"fmt"
	"unicode/utf8"
)

// Rule bounds the length of a text field, in code points.
type Rule struct {
	Label string
	Min   int
	Max   int
}

var (
	DisplayName    = Rule{Label: "display name", Min: 3, Max: 35}
	ProjectName    = Rule{Label: "project name", Min: 3, Max: 30}
	SuggestionText = Rule{Label: "suggestion", Min: 3, Max: 500}
)

// Error is a failed length check. Its message is shown to callers verbatim.
type Error struct {
	Rule    Rule
	TooLong bool
}

func (e *Error) Error() string {
	if e.TooLong {
		return fmt.Sprintf("Your %s is too long", e.Rule.Label)
	}
	return fmt.Sprintf("Your %s is too short", e.Rule.Label)
}

// Check returns an *Error when v is outside the rule's bounds.
func (r Rule) Check(v string) error {
	n := utf8.RuneCountInString(v)
	switch {
	case n < r.Min:
		return &Error{Rule: r}
	case n > r.Max:
		return &Error{Rule: r, TooLong: true}
	}
	return nil
}

// ValidateProject checks a new project's owner name, then its project name.
func ValidateProject(ownerName, projectName string) error {
	if err := DisplayName.Check(ownerName); err != nil {
		return err
	}
	return ProjectName.Check(projectName)
}

// ValidateSuggestion checks the display name, then the suggestion text.
func ValidateSuggestion(displayName, text string) error {
	if err := DisplayName.Check(displayName); err != nil {
		return err
	}
	return SuggestionText.Check(text)
}
