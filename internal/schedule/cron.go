package schedule

import (
	"fmt"
	"strings"

	"github.com/hashicorp/cronexpr"
)

// ValidateCron reports whether expr, the five schedule fields of a line, is
// accepted by a standard cron parser. Macros such as @daily are rejected
// because they are not five-field expressions.
func ValidateCron(expr string) error {
	if n := len(strings.Fields(expr)); n != 5 {
		return fmt.Errorf("invalid cron expression: expected 5 fields, got %d", n)
	}
	if _, err := cronexpr.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}
