// Package cycle provides calendar-month utilities for settlement tracking.
// A cycle is the current calendar month, identified by a month key of the
// form "YYYY-MM". Skip records are stored as sets of these keys.
package cycle

import "time"

// Key returns the month key for t, e.g. "2024-03".
func Key(t time.Time) string {
	return t.Format("2006-01")
}

// SameMonth reports whether a and b fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Window returns the first and last instants of t's calendar month,
// in t's location.
func Window(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// Contains reports whether keys includes key.
func Contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// Add returns keys with key appended if it is not already present.
// The input slice is never mutated.
func Add(keys []string, key string) []string {
	if Contains(keys, key) {
		return keys
	}
	out := make([]string, 0, len(keys)+1)
	out = append(out, keys...)
	return append(out, key)
}

// Remove returns keys with every occurrence of key removed.
// The input slice is never mutated.
func Remove(keys []string, key string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
