package participation

import (
	"testing"
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
)

func activityRow(current, max int) *sqlmock.Rows {
	start := time.Now().UTC().Add(time.Hour)
	end := start.Add(2 * time.Hour)
	return sqlmock.NewRows([]string{
		"id", "status", "approved", "start_time", "end_time",
		"max_participants", "current_participants",
	}).AddRow(1, model.ActivityStatusActive, true, start, end, max, current)
}

func TestJoinActivityFull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	(&ModuleParticipation{}).Init()

	gdb, mock := test.NewMockDB(t)
	database.DB = gdb

	mock.ExpectQuery("SELECT (.+) FROM `activity`").
		WillReturnRows(activityRow(30, 30))

	// 条件更新落空说明名额已满：事务回滚，报名记录不插入，计数不变
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `activity` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	resp := test.DoRequestAs(t, JoinActivity, jwt.Payload{UserID: 7}, nil,
		gin.Param{Key: "id", Value: "1"})

	test.ErrorEqual(t, response.ErrConflict.WithTips("活动名额已满"), resp)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinActivityDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	(&ModuleParticipation{}).Init()

	gdb, mock := test.NewMockDB(t)
	database.DB = gdb

	mock.ExpectQuery("SELECT (.+) FROM `activity`").
		WillReturnRows(activityRow(5, 30))

	// 并发重复报名撞组合唯一索引，计数自增随事务一并回滚
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `activity` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `participation`").
		WillReturnError(&gomysql.MySQLError{Number: 1062})
	mock.ExpectRollback()

	resp := test.DoRequestAs(t, JoinActivity, jwt.Payload{UserID: 7}, nil,
		gin.Param{Key: "id", Value: "1"})

	test.ErrorEqual(t, response.ErrAlreadyExists.WithTips("您已报名该活动"), resp)
	require.NoError(t, mock.ExpectationsWereMet())
}
