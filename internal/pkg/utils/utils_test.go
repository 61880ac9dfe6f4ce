//go:build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingHours_Closure(t *testing.T) {
	leadingHoursRequest := func(duration string, want int) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, LeadingHours(duration))
		}
	}

	t.Run("single_digit", leadingHoursRequest("3h 25m", 3))
	t.Run("double_digit", leadingHoursRequest("10h 5m", 10))
	t.Run("zero_minutes", leadingHoursRequest("2h 0m", 2))
	t.Run("no_digits", leadingHoursRequest("h 5m", 0))
	t.Run("empty", leadingHoursRequest("", 0))
}

func TestLeadingRow_Closure(t *testing.T) {
	leadingRowRequest := func(seatID string, want int) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, LeadingRow(seatID))
		}
	}

	t.Run("premium_row", leadingRowRequest("1A", 1))
	t.Run("standard_row", leadingRowRequest("10B", 10))
	t.Run("last_row", leadingRowRequest("20F", 20))
}

func TestFormatINR_Closure(t *testing.T) {
	formatRequest := func(amount int64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, FormatINR(amount))
		}
	}

	t.Run("zero", formatRequest(0, "₹0"))
	t.Run("hundreds", formatRequest(150, "₹150"))
	t.Run("thousands", formatRequest(5750, "₹5,750"))
	t.Run("lakhs", formatRequest(123456, "₹1,23,456"))
	t.Run("crores", formatRequest(12345678, "₹1,23,45,678"))
	t.Run("negative", formatRequest(-2000, "₹-2,000"))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "06:05", FormatClock(6, 5))
	assert.Equal(t, "22:59", FormatClock(22, 59))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "3h 25m", FormatDuration(3, 25))
	assert.Equal(t, "2h 0m", FormatDuration(2, 0))
}
