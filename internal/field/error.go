package field

import "fmt"

// Reason identifies why a field token could not be expanded.
type Reason string

const (
	ReasonUnparsable     Reason = "unable to parse field"
	ReasonRangeSyntax    Reason = "range must be start-end"
	ReasonRangeKind      Reason = "start and end must be same type"
	ReasonRangeValue     Reason = "invalid start/end value"
	ReasonRangeOrder     Reason = "start must be <= end"
	ReasonIntervalSyntax Reason = "interval must be start/step"
	ReasonStepInteger    Reason = "step must be an integer"
	ReasonStepZero       Reason = "step must be greater than zero"
	ReasonIntervalStart  Reason = "start must be an integer or *"
	ReasonListKind       Reason = "list elements must have same type"
	ReasonListValue      Reason = "value not in allowed set"
)

// ParsingError is returned when a token cannot be expanded against a domain.
// Value holds the offending part of the token, which for lists is the
// element that failed rather than the whole token.
type ParsingError struct {
	Field  string
	Value  string
	Reason Reason
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("invalid %s field %q: %s", e.Field, e.Value, e.Reason)
}

var _ error = (*ParsingError)(nil)
