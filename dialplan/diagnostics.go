package dialplan

import "fmt"

// Severity classifies a diagnostic. Errors fail the run, warnings do not.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Kind identifies the defect a diagnostic reports.
type Kind int

const (
	KindTooManyClosing Kind = iota
	KindUnclosedQuote
	KindUnbalancedDelimiters
	KindUnclosedVariable
	KindUnclosedExpression
	KindMalformedContext
	KindEmptyContextName
	KindMissingArrowExten
	KindUnknownKeyword
	KindBadExtenFormat
	KindInvalidPriority
	KindPriorityTooSmall
	KindMissingArrowInclude
	KindEmptyIncludeContext
	KindMissingArrowSwitch
	KindUnknownDirective
)

// messages maps each kind to its output wording. The texts are part of the
// tool's contract; scripts match on them, so they live in one table instead
// of being scattered through the parsers.
var messages = map[Kind]string{
	KindTooManyClosing:       "Unbalanced delimiters (too many closing)",
	KindUnclosedQuote:        "Unclosed quote",
	KindUnbalancedDelimiters: "Unbalanced delimiters (parens=%d, brackets=%d, braces=%d)",
	KindUnclosedVariable:     "Unclosed ${...} variable reference",
	KindUnclosedExpression:   "Unclosed $[...] expression",
	KindMalformedContext:     "Malformed context (missing ']')",
	KindEmptyContextName:     "Empty context name",
	KindMissingArrowExten:    "Missing '=>' in extension definition",
	KindUnknownKeyword:       "Unknown keyword (expected 'exten' or 'same')",
	KindBadExtenFormat:       "Extension must have format: exten => pattern,priority,app(args)",
	KindInvalidPriority:      "Invalid priority '%s' (must be number, 'n', or 'hint')",
	KindPriorityTooSmall:     "Priority must be >= 1",
	KindMissingArrowInclude:  "Missing '=>' in include statement",
	KindEmptyIncludeContext:  "Empty context in include statement",
	KindMissingArrowSwitch:   "Missing '=>' in switch statement",
	KindUnknownDirective:     "Warning: Unknown directive '%s'",
}

// Diagnostic is one finding tied to a 1-based physical source line.
type Diagnostic struct {
	Line     int
	Severity Severity
	Kind     Kind
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
}
