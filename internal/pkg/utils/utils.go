package utils

import (
	"fmt"
	"strconv"
)

// FormatClock formats an hour/minute pair as a zero padded 24h clock string.
// Example: 6, 5 -> "06:05"
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatDuration formats an hour/minute pair as a duration string.
// Example: 3, 25 -> "3h 25m"
func FormatDuration(hours, minutes int) string {
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// LeadingHours extracts the leading integer from a duration string.
// Example: "3h 25m" -> 3
//
// This intentionally ignores the minute part, matching the legacy
// ranking the booking flow always used. Durations never reach 10h with
// the current generator formulas, so the digit-count hazard of this
// comparison has no effect in practice.
func LeadingHours(duration string) int {
	i := 0
	for i < len(duration) && duration[i] >= '0' && duration[i] <= '9' {
		i++
	}

	if i == 0 {
		return 0
	}

	h, _ := strconv.Atoi(duration[:i])

	return h
}

// LeadingRow extracts the row number from a seat identifier.
// Example: "12C" -> 12
func LeadingRow(seatID string) int {
	return LeadingHours(seatID)
}

// FormatINR formats an amount as Indian Rupees with Indian digit
// grouping. Example: 123456 -> "₹1,23,456"
func FormatINR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := strconv.FormatInt(amount, 10)

	var result []byte
	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++

		// Indian grouping: first group of 3, then groups of 2.
		if i != 0 && (count == 3 || (count > 3 && (count-3)%2 == 0)) {
			result = append([]byte{','}, result...)
		}
	}

	if negative {
		return "₹-" + string(result)
	}
	return "₹" + string(result)
}
