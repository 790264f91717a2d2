package activity

import (
	"testing"
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 1, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"部分重叠", at(10, 0), at(12, 0), at(11, 0), at(13, 0), true},
		{"完全包含", at(10, 0), at(14, 0), at(11, 0), at(12, 0), true},
		{"完全相同", at(10, 0), at(12, 0), at(10, 0), at(12, 0), true},
		{"首尾相接不算冲突", at(10, 0), at(12, 0), at(12, 0), at(13, 0), false},
		{"首尾相接反向", at(12, 0), at(13, 0), at(10, 0), at(12, 0), false},
		{"完全分离", at(10, 0), at(11, 0), at(12, 0), at(13, 0), false},
		{"反向部分重叠", at(11, 0), at(13, 0), at(10, 0), at(12, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// 交换两个区间结果不变
			require.Equal(t, tt.want, overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestOverlapsOneMinute(t *testing.T) {
	// 只差一分钟也算重叠
	require.True(t, overlaps(at(10, 0), at(12, 0), at(11, 59), at(13, 0)))
	require.False(t, overlaps(at(10, 0), at(11, 59), at(11, 59), at(13, 0)))
}

func TestValidateScheduleOrdering(t *testing.T) {
	gdb, mock := test.NewMockDB(t)
	database.DB = gdb
	venueID := uint(1)

	// 时间区间最先校验，未通过时不触碰数据库
	vErr := validateSchedule(at(12, 0), at(10, 0), 50, &venueID, 0)
	require.NotNil(t, vErr)
	require.Equal(t, response.ErrInvalidRequest.WithTips("结束时间必须晚于开始时间").Message, vErr.Message)

	// 起止相等同样非法
	vErr = validateSchedule(at(10, 0), at(10, 0), 50, &venueID, 0)
	require.NotNil(t, vErr)

	// 人数其次
	vErr = validateSchedule(at(10, 0), at(12, 0), 0, &venueID, 0)
	require.NotNil(t, vErr)
	require.Equal(t, response.ErrInvalidRequest.WithTips("参与人数必须是正整数").Message, vErr.Message)

	// 未选场地时跳过容量与冲突检查
	vErr = validateSchedule(at(10, 0), at(12, 0), 50, nil, 0)
	require.Nil(t, vErr)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateScheduleCapacityBeforeConflict(t *testing.T) {
	gdb, mock := test.NewMockDB(t)
	database.DB = gdb
	venueID := uint(1)

	// 容量不足立即返回，不再查时段冲突
	mock.ExpectQuery("SELECT (.+) FROM `venue`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "capacity"}).AddRow(1, 50))

	vErr := validateSchedule(at(10, 0), at(12, 0), 100, &venueID, 0)
	require.NotNil(t, vErr)
	require.Equal(t, response.ErrInvalidRequest.WithTips("活动最大参与人数超过场地容量").Message, vErr.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateScheduleConflict(t *testing.T) {
	gdb, mock := test.NewMockDB(t)
	database.DB = gdb
	venueID := uint(1)

	// 场地 10:00-12:00 已被占用，11:00-13:00 申请被拒
	mock.ExpectQuery("SELECT (.+) FROM `venue`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "capacity"}).AddRow(1, 100))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `activity`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	vErr := validateSchedule(at(11, 0), at(13, 0), 50, &venueID, 0)
	require.NotNil(t, vErr)
	require.Equal(t, response.ErrConflict.GetCode(), vErr.GetCode())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateScheduleOwnSlot(t *testing.T) {
	gdb, mock := test.NewMockDB(t)
	database.DB = gdb
	venueID := uint(1)

	// 编辑时排除自身，重新保存原时段不与自己冲突
	mock.ExpectQuery("SELECT (.+) FROM `venue`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "capacity"}).AddRow(1, 100))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `activity` WHERE .*id <> ").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	vErr := validateSchedule(at(10, 0), at(12, 0), 50, &venueID, 42)
	require.Nil(t, vErr)
	require.NoError(t, mock.ExpectationsWereMet())
}
