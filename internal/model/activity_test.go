package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestActivityCurrentStatus(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := &Activity{StartTime: start, EndTime: end}

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"开始前为报名中", start.Add(-time.Hour), CurrentStatusRegistering},
		{"开始瞬间为进行中", start, CurrentStatusOngoing},
		{"进行中", start.Add(time.Hour), CurrentStatusOngoing},
		{"结束瞬间仍为进行中", end, CurrentStatusOngoing},
		{"结束后为已结束", end.Add(time.Minute), CurrentStatusEnded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, a.CurrentStatus(tt.now))
		})
	}
}

func TestActivityJoinable(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := &Activity{StartTime: start, EndTime: end}

	require.True(t, a.Joinable(start.Add(-time.Minute)))
	require.False(t, a.Joinable(start))
	require.False(t, a.Joinable(end.Add(time.Hour)))
}

func TestValidRole(t *testing.T) {
	require.True(t, ValidRole(RoleUser))
	require.True(t, ValidRole(RoleReviewer))
	require.True(t, ValidRole(RoleAdmin))
	require.False(t, ValidRole(3))
	require.False(t, ValidRole(-1))
}
