package domain

import "time"

// Severity selects how the terminal renders a line.
type Severity string

const (
	SeverityOutput  Severity = "output"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySystem  Severity = "system"
)

// Line is one rendered terminal line. The interpreter emits Lines and
// never touches the screen directly.
type Line struct {
	Severity Severity
	Text     string
	At       time.Time
}

func OutputLine(text string) Line  { return Line{Severity: SeverityOutput, Text: text} }
func InfoLine(text string) Line    { return Line{Severity: SeverityInfo, Text: text} }
func WarningLine(text string) Line { return Line{Severity: SeverityWarning, Text: text} }
func ErrorLine(text string) Line   { return Line{Severity: SeverityError, Text: text} }
func SystemLine(text string) Line  { return Line{Severity: SeveritySystem, Text: text} }
