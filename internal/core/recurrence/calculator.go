// Package recurrence computes the next occurrence instant for recurring
// todos. All civil-calendar arithmetic (day-of-week, day-of-month, time of
// day) happens in the app's fixed JST offset; results are stored in UTC.
package recurrence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"famitodo/internal/core/domain"
)

// Local is the fixed UTC+9 offset the app interprets generation times in.
// A fixed zone, not a named location: the source system has no DST and the
// arithmetic must not pick one up from the host.
var Local = time.FixedZone("JST", 9*60*60)

// GenerationTime is a parsed wall-clock time of day.
type GenerationTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseGenerationTime parses "HH:MM" or "HH:MM:SS". Out-of-range components
// fail with domain.ErrInvalidGenerationTime.
func ParseGenerationTime(value string) (GenerationTime, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return GenerationTime{}, fmt.Errorf("%w: %q", domain.ErrInvalidGenerationTime, value)
	}

	numbers := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return GenerationTime{}, fmt.Errorf("%w: %q", domain.ErrInvalidGenerationTime, value)
		}
		numbers[i] = n
	}

	gt := GenerationTime{Hour: numbers[0], Minute: numbers[1]}
	if len(numbers) == 3 {
		gt.Second = numbers[2]
	}

	if gt.Hour < 0 || gt.Hour > 23 || gt.Minute < 0 || gt.Minute > 59 || gt.Second < 0 || gt.Second > 59 {
		return GenerationTime{}, fmt.Errorf("%w: %q", domain.ErrInvalidGenerationTime, value)
	}

	return gt, nil
}

// NextOccurrence returns the next due instant (UTC) for the given recurrence
// shape, strictly after the reference instant.
//
// Weekly and monthly rules with an empty day set fall back to the daily
// algorithm. Kept for compatibility with rows written before day sets were
// validated at the edge; new rules cannot reach this branch.
func NextOccurrence(pattern domain.RecurrencePattern, days []int, generationTime string, reference time.Time) (time.Time, error) {
	gt, err := ParseGenerationTime(generationTime)
	if err != nil {
		return time.Time{}, err
	}

	local := reference.In(Local)

	switch pattern {
	case domain.RecurrenceWeekly:
		if len(days) > 0 {
			return nextWeekly(local, days, gt), nil
		}
	case domain.RecurrenceMonthly:
		if len(days) > 0 {
			return nextMonthly(local, days[0], gt), nil
		}
	}

	return nextDaily(local, gt), nil
}

func nextDaily(local time.Time, gt GenerationTime) time.Time {
	candidate := atTime(local, 0, gt)
	if candidate.After(local) {
		return candidate.UTC()
	}
	return atTime(local, 1, gt).UTC()
}

func nextWeekly(local time.Time, days []int, gt GenerationTime) time.Time {
	weekday := int(local.Weekday())

	// Same-day match wins over wrapping to next week, provided the
	// generation time has not passed yet.
	if containsDay(days, weekday) {
		candidate := atTime(local, 0, gt)
		if candidate.After(local) {
			return candidate.UTC()
		}
	}

	offset := 7
	for i := 1; i <= 7; i++ {
		if containsDay(days, (weekday+i)%7) {
			offset = i
			break
		}
	}

	return atTime(local, offset, gt).UTC()
}

func nextMonthly(local time.Time, target int, gt GenerationTime) time.Time {
	year, month, _ := local.Date()

	// Candidate in the current month, clamped to its last day. target -1
	// means the last day itself.
	day := clampDay(target, lastDayOfMonth(year, month))
	candidate := time.Date(year, month, day, gt.Hour, gt.Minute, gt.Second, 0, Local)
	if candidate.After(local) {
		return candidate.UTC()
	}

	nextYear, nextMonth := year, month+1
	day = clampDay(target, lastDayOfMonth(nextYear, nextMonth))
	return time.Date(nextYear, nextMonth, day, gt.Hour, gt.Minute, gt.Second, 0, Local).UTC()
}

// atTime returns the instant at gt on local's date shifted by dayOffset.
func atTime(local time.Time, dayOffset int, gt GenerationTime) time.Time {
	year, month, day := local.Date()
	return time.Date(year, month, day+dayOffset, gt.Hour, gt.Minute, gt.Second, 0, Local)
}

// lastDayOfMonth accepts a month outside 1..12; time.Date normalizes it.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, Local).Day()
}

func clampDay(target, last int) int {
	if target == domain.LastDayOfMonth || target > last {
		return last
	}
	return target
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
