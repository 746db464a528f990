package expression

import "fmt"

// Reason identifies why an expression line could not be split.
type Reason string

const ReasonInsufficientParameters Reason = "insufficient number of parameters"

// ParsingError is returned when a line cannot be split into five fields and
// a command. Field-level failures are reported as *field.ParsingError.
type ParsingError struct {
	Reason Reason
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("invalid cron expression: %s", e.Reason)
}

var _ error = (*ParsingError)(nil)
