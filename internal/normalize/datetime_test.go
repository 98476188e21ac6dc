package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taipei = time.FixedZone("CST", 8*60*60)

func TestParseDay_SameCalendarDayAcrossFormats(t *testing.T) {
	want := time.Date(2025, 3, 26, 0, 0, 0, 0, taipei)

	inputs := []string{
		"2025/3/26",
		"2025/03/26",
		"2025/3/26 15:04",
		"2025/3/26 15:04:05",
		"2025-03-26",
		"2025-03-26T10:00:00",
		"2025-03-26 10:00:00",
		"2025-03-26T10:00:00+08:00",
		"2025/3/26 下午 3:04:05",
		"2025/3/26 上午 9:04",
		"2025/3/26 PM 3:04:05",
	}
	for _, input := range inputs {
		got, ok := ParseDay(input, taipei)
		require.True(t, ok, "expected %q to parse", input)
		assert.True(t, want.Equal(got), "expected %q to normalize to %v, got %v", input, want, got)
	}
}

func TestParseDay_UnparseableFailsSoft(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"garbage",
		"2025年3月26日",
		"26/3/2025",
		"tomorrow",
	}
	for _, input := range inputs {
		_, ok := ParseDay(input, taipei)
		assert.False(t, ok, "expected %q to be reported unparseable", input)
	}
}

func TestParseMeridiem_AfternoonMapsHourUp(t *testing.T) {
	got, ok := parseMeridiem("2025/3/26 下午 3:04:05", taipei)
	require.True(t, ok)
	assert.Equal(t, 15, got.Hour())

	// Already-24h-style hour under a PM marker stays put.
	got, ok = parseMeridiem("2025/3/26 下午 12:00", taipei)
	require.True(t, ok)
	assert.Equal(t, 12, got.Hour())
}

func TestParseMeridiem_MorningKeepsHour(t *testing.T) {
	got, ok := parseMeridiem("2025/3/26 上午 9:04", taipei)
	require.True(t, ok)
	assert.Equal(t, 9, got.Hour())

	// Hour 12 under a morning marker is kept as 12, matching the recorded
	// data. See DESIGN.md for why this is not corrected to midnight.
	got, ok = parseMeridiem("2025/3/26 上午 12:30", taipei)
	require.True(t, ok)
	assert.Equal(t, 12, got.Hour())
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay("2025/3/26", "2025-03-26T23:59:59", taipei))
	assert.False(t, SameDay("2025/3/26", "2025/3/27", taipei))
	assert.False(t, SameDay("garbage", "2025/3/26", taipei))
	assert.False(t, SameDay("2025/3/26", "garbage", taipei))
}

func TestParseDay_RespectsTimezoneOffset(t *testing.T) {
	// 2025-03-26T23:00:00Z is already the 27th in the campaign timezone.
	got, ok := ParseDay("2025-03-26T23:00:00Z", taipei)
	require.True(t, ok)
	assert.Equal(t, 27, got.Day())
}
