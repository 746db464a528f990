// Package expression splits a cron line into its five schedule fields and
// command, expands every field and renders the result as a labelled report.
package expression

import (
	"fmt"
	"strings"

	"github.com/glizzus/cronexpand/internal/field"
)

// DefaultLabelWidth is the column at which values start in a report.
const DefaultLabelWidth = 14

const (
	fieldCount   = 5
	labelCommand = "command"
)

// Parsed is a fully expanded expression. Fields are in expression order:
// minute, hour, day of month, month, day of week.
type Parsed struct {
	Tokens     [fieldCount]string
	Expansions [fieldCount]field.Expansion
	Command    string
}

// Parse splits line on single spaces into five field tokens and a command,
// then expands each token against its domain. The command is everything
// after the fifth space and may itself contain spaces.
//
// Nothing is returned unless every field expands.
func Parse(line string) (*Parsed, error) {
	parts := strings.SplitN(line, " ", fieldCount+1)
	if len(parts) < fieldCount+1 {
		return nil, &ParsingError{Reason: ReasonInsufficientParameters}
	}

	p := &Parsed{Command: parts[fieldCount]}
	for i, d := range field.Domains() {
		exp, err := field.Expand(parts[i], d)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s field: %w", d.Name(), err)
		}
		p.Tokens[i] = parts[i]
		p.Expansions[i] = exp
	}

	return p, nil
}

// Describe parses line and renders it with DefaultLabelWidth.
func Describe(line string) (string, error) {
	p, err := Parse(line)
	if err != nil {
		return "", err
	}
	return p.Report(DefaultLabelWidth), nil
}

// Schedule returns the five field tokens as they appeared in the line.
func (p *Parsed) Schedule() string {
	return strings.Join(p.Tokens[:], " ")
}

// Report renders one line per field plus the command, each label padded to
// width. Labels longer than width are followed by a single space.
func (p *Parsed) Report(width int) string {
	lines := make([]string, 0, fieldCount+1)
	for i, d := range field.Domains() {
		lines = append(lines, reportLine(d.Name(), p.Expansions[i].String(), width))
	}
	lines = append(lines, reportLine(labelCommand, p.Command, width))
	return strings.Join(lines, "\n")
}

func reportLine(label, value string, width int) string {
	if len(label) >= width {
		return label + " " + value
	}
	return fmt.Sprintf("%-*s%s", width, label, value)
}
