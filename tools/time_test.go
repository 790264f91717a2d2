package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatCST(t *testing.T) {
	// UTC 2026-03-01 02:30 即北京时间 10:30
	utc := time.Date(2026, 3, 1, 2, 30, 0, 0, time.UTC)
	require.Equal(t, "2026-03-01 10:30", FormatCST(utc))

	require.Equal(t, "", FormatCST(time.Time{}))
}

func TestFormatCSTPtr(t *testing.T) {
	require.Equal(t, "", FormatCSTPtr(nil))

	utc := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	// 跨日：UTC 18:00 为北京时间次日 02:00
	require.Equal(t, "2026-03-02 02:00", FormatCSTPtr(&utc))
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2026-03-01")
	require.True(t, ok)
	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("")
	require.False(t, ok)
	_, ok = ParseDate("03/01/2026")
	require.False(t, ok)
}
