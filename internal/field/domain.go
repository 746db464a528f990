package field

import (
	"fmt"
	"slices"
	"strconv"
)

// Domain is the set of values a field accepts. Integers form an ascending
// run kept as strings; aliases, when present, are index-aligned with them so
// that Aliases()[i] names Integers()[i].
//
// A Domain is immutable once built and safe to share between goroutines.
type Domain struct {
	name     string
	integers []string
	aliases  []string
}

// NewDomain builds a Domain, copying the given tables.
func NewDomain(name string, integers, aliases []string) (Domain, error) {
	if len(integers) == 0 {
		return Domain{}, fmt.Errorf("domain %s has no integer values", name)
	}
	if len(aliases) != 0 && len(aliases) != len(integers) {
		return Domain{}, fmt.Errorf("domain %s has %d aliases for %d integer values", name, len(aliases), len(integers))
	}
	if hasDuplicates(integers) || hasDuplicates(aliases) {
		return Domain{}, fmt.Errorf("domain %s has duplicate values", name)
	}
	for _, v := range integers {
		if !isNumeric(v) {
			return Domain{}, fmt.Errorf("domain %s has non-numeric value %q", name, v)
		}
	}

	return Domain{
		name:     name,
		integers: slices.Clone(integers),
		aliases:  slices.Clone(aliases),
	}, nil
}

// Name returns the field name the domain belongs to.
func (d Domain) Name() string { return d.name }

// Integers returns a copy of the domain's integer values in ascending order.
func (d Domain) Integers() []string { return slices.Clone(d.integers) }

// Aliases returns a copy of the domain's symbolic names. It is empty for
// purely numeric domains.
func (d Domain) Aliases() []string { return slices.Clone(d.aliases) }

// maxValue returns the largest integer in the domain.
func (d Domain) maxValue() int {
	n, _ := strconv.Atoi(d.integers[len(d.integers)-1])
	return n
}

// position resolves a numeric or symbolic value to its index in the domain.
func (d Domain) position(v string) (int, bool) {
	table := d.aliases
	if isNumeric(v) {
		table = d.integers
	}
	i := slices.Index(table, v)
	return i, i >= 0
}

const (
	NameMinute     = "minute"
	NameHour       = "hour"
	NameDayOfMonth = "day of month"
	NameMonth      = "month"
	NameDayOfWeek  = "day of week"
)

var (
	Minute     = mustDomain(NameMinute, intRange(0, 59), nil)
	Hour       = mustDomain(NameHour, intRange(0, 23), nil)
	DayOfMonth = mustDomain(NameDayOfMonth, intRange(0, 31), nil)
	Month      = mustDomain(NameMonth, intRange(1, 12), []string{
		"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
		"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
	})
	DayOfWeek = mustDomain(NameDayOfWeek, intRange(0, 6), []string{
		"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT",
	})
)

// Domains returns the built-in domains in expression order.
func Domains() []Domain {
	return []Domain{Minute, Hour, DayOfMonth, Month, DayOfWeek}
}

// Lookup returns the built-in domain with the given name.
func Lookup(name string) (Domain, bool) {
	for _, d := range Domains() {
		if d.name == name {
			return d, true
		}
	}
	return Domain{}, false
}

func mustDomain(name string, integers, aliases []string) Domain {
	d, err := NewDomain(name, integers, aliases)
	if err != nil {
		panic(err)
	}
	return d
}

func intRange(lo, hi int) []string {
	values := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		values = append(values, strconv.Itoa(i))
	}
	return values
}

func hasDuplicates(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
