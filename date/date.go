// Package date provides a calendar date with day granularity, as found at the
// start of every ledger transaction header.
package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the format used to write dates, the ledger-cli canonical form.
const DateFormat = "2006/01/02"

// Separators lists the characters accepted between year, month and day.
const Separators = "/-."

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
//
// Out of range values are normalized the way time.Date does: New(2024, 13, 1)
// is 2025/01/01.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String format the date in its standard format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// Parse parses a Date from a string. It is lenient: the year must have four
// digits, month and day one or two, and any of '/', '-' or '.' separates them
// ("2025/07/01", "2025-7-1", "2025.07.1").
//
// Month and day are not range checked, they are normalized like New does.
// Ledger files are edited by hand and a typo in a day must not prevent the
// transaction from being recognized and sorted.
func Parse(str string) (Date, error) {
	parts := strings.FieldsFunc(str, func(r rune) bool { return strings.ContainsRune(Separators, r) })
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) > 2 || len(parts[2]) > 2 {
		return Date{}, fmt.Errorf("invalid date %q want format %q", str, "YYYY/MM/DD")
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return Date{}, fmt.Errorf("invalid date %q: %q is not a number", str, p)
		}
		n[i] = v
	}
	return New(n[0], time.Month(n[1]), n[2]), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
