// Package calendar resolves the puzzle day number. Puzzles unlock at midnight
// in a fixed time zone, so the current day is always computed in that zone and
// never in the zone of the machine running the CLI.
package calendar
