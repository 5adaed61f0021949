package timesheet

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"invoicer/internal/sheet"
)

// Year bounds and the two-digit year pivot are policy choices inherited
// from the timesheet format, not calendar facts.
const (
	minYear = 1900
	maxYear = 2100

	// Two-digit years 00-49 map into the 2000s, 50-99 into the 1900s.
	twoDigitYearPivot = 50

	// Serials at or below 59 predate the fictitious 1900-02-29 that the
	// spreadsheet serial format carries; later serials are shifted back by
	// one day to compensate.
	leapBugSerial = 59

	maxDateSerial = 100000
)

// Serial 1 is 1900-01-01.
var serialEpoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`),
	regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`),
	regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`),
	regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{2})$`),
}

var isoPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

var genericLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ClassifyDate decides whether a cell holds a calendar date and, if so,
// returns it as an ISO YYYY-MM-DD string. It never fails hard: a cell that
// is not a date simply reports ok=false so the caller can skip the row.
func ClassifyDate(c sheet.Cell) (string, bool) {
	switch c.Kind {
	case sheet.KindDate:
		if c.Time.IsZero() {
			return "", false
		}
		return c.Time.Format(time.DateOnly), true
	case sheet.KindNumber:
		return classifySerial(c.Number)
	case sheet.KindText:
		return classifyString(c.Text)
	default:
		return "", false
	}
}

func classifySerial(value float64) (string, bool) {
	if value <= 0 || value >= maxDateSerial {
		return "", false
	}
	days := value
	if days > leapBugSerial {
		days--
	}
	t := serialEpoch.Add(time.Duration(days * 24 * float64(time.Hour)))
	if t.Year() < minYear || t.Year() > maxYear {
		return "", false
	}
	return t.Format(time.DateOnly), true
}

func classifyString(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}

	for _, layout := range genericLayouts {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		if t.Year() < minYear || t.Year() > maxYear {
			return "", false
		}
		return t.Format(time.DateOnly), true
	}

	if m := isoPattern.FindStringSubmatch(trimmed); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return buildDate(year, month, day)
	}

	for _, pattern := range datePatterns {
		m := pattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			if year < twoDigitYearPivot {
				year += 2000
			} else {
				year += 1900
			}
		}
		return buildDate(year, month, day)
	}

	return "", false
}

// buildDate constructs the date directly from numeric parts, rejecting
// combinations that are not real calendar dates (time.Date would silently
// normalize them otherwise).
func buildDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", false
	}
	return t.Format(time.DateOnly), true
}
