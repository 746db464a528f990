// Package schedule cross-checks expressions against a standard cron parser.
//
// The expander in package field accepts everything its domain tables allow,
// including values such as day-of-month 0 that a real cron daemon rejects.
// ValidateCron is used by the --strict mode of the CLI to catch those.
package schedule
