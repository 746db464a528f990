package field_test

import (
	"testing"

	"github.com/glizzus/cronexpand/internal/field"
	"github.com/google/go-cmp/cmp"
)

func TestNewDomainFailure(t *testing.T) {
	table := []struct {
		name     string
		integers []string
		aliases  []string
	}{
		{name: "no integers", integers: nil, aliases: nil},
		{name: "misaligned aliases", integers: []string{"0", "1", "2"}, aliases: []string{"A", "B"}},
		{name: "duplicate integers", integers: []string{"0", "0"}, aliases: nil},
		{name: "duplicate aliases", integers: []string{"0", "1"}, aliases: []string{"A", "A"}},
		{name: "non-numeric integers", integers: []string{"0", "x"}, aliases: nil},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := field.NewDomain(tc.name, tc.integers, tc.aliases); err == nil {
				t.Errorf("NewDomain(%v, %v) expected error", tc.integers, tc.aliases)
			}
		})
	}
}

func TestDomainIsImmutable(t *testing.T) {
	integers := []string{"1", "2", "3"}
	d, err := field.NewDomain("custom", integers, nil)
	if err != nil {
		t.Fatalf("NewDomain returned error: %v", err)
	}

	integers[0] = "9"
	got := d.Integers()
	got[1] = "9"

	if diff := cmp.Diff([]string{"1", "2", "3"}, d.Integers()); diff != "" {
		t.Errorf("Integers() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinDomains(t *testing.T) {
	table := []struct {
		name    string
		first   string
		last    string
		aliases int
	}{
		{name: field.NameMinute, first: "0", last: "59"},
		{name: field.NameHour, first: "0", last: "23"},
		{name: field.NameDayOfMonth, first: "0", last: "31"},
		{name: field.NameMonth, first: "1", last: "12", aliases: 12},
		{name: field.NameDayOfWeek, first: "0", last: "6", aliases: 7},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := field.Lookup(tc.name)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing", tc.name)
			}
			ints := d.Integers()
			if ints[0] != tc.first || ints[len(ints)-1] != tc.last {
				t.Errorf("%s spans %s..%s; want %s..%s", tc.name, ints[0], ints[len(ints)-1], tc.first, tc.last)
			}
			if len(d.Aliases()) != tc.aliases {
				t.Errorf("%s has %d aliases; want %d", tc.name, len(d.Aliases()), tc.aliases)
			}
		})
	}

	if _, ok := field.Lookup("second"); ok {
		t.Errorf("Lookup(second) unexpectedly succeeded")
	}
}
