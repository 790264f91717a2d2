package recommend

import (
	"testing"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/model"
	"campus-activity-system/test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func withType(id uint, tags string) model.Activity {
	return model.Activity{ActivityTypeID: &id, Tags: tags}
}

func TestHarvestInterests(t *testing.T) {
	history := []model.Activity{
		withType(1, "篮球, 户外"),
		withType(2, "音乐"),
		withType(1, "篮球,夜跑"),
		{Tags: "读书, , 音乐"}, // 无类型的活动只贡献标签
	}

	typeIDs, tags := harvestInterests(history)

	require.Equal(t, []uint{1, 2}, typeIDs)
	require.Equal(t, []string{"篮球", "户外", "音乐", "夜跑", "读书"}, tags)
}

func TestHarvestInterestsEmpty(t *testing.T) {
	typeIDs, tags := harvestInterests(nil)
	require.Empty(t, typeIDs)
	require.Empty(t, tags)

	// 空白标签全部丢弃
	typeIDs, tags = harvestInterests([]model.Activity{{Tags: " , ,"}})
	require.Empty(t, typeIDs)
	require.Empty(t, tags)
}

func TestHarvestInterestsCaseInsensitiveDedup(t *testing.T) {
	history := []model.Activity{
		{Tags: "Music,music"},
		{Tags: "MUSIC"},
	}
	_, tags := harvestInterests(history)
	require.Equal(t, []string{"Music"}, tags)
}

func TestPersonalizedEmptyPoolsNoHotFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	(&ModuleRecommend{}).Init()

	gdb, mock := test.NewMockDB(t)
	database.DB = gdb

	// 参与历史：1 个类型为 2、标签为「篮球」的活动
	mock.ExpectQuery("SELECT (.+) FROM `activity` JOIN participation").
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_type_id", "tags"}).
			AddRow(1, 2, "篮球"))
	mock.ExpectQuery("SELECT (.+) FROM `participation`").
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}).AddRow(1))

	// 两个池子都带 id NOT IN 排除已报名的活动，且都查不到候选
	mock.ExpectQuery("SELECT (.+) FROM `activity` WHERE .*id NOT IN .* AND activity_type_id IN").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT (.+) FROM `activity` WHERE .*id NOT IN .* LOWER\\(tags\\) LIKE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp := test.DoRequestAs(t, Personalized, jwt.Payload{UserID: 7}, nil)
	test.NoError(t, resp)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	// 有参与历史的用户池子为空时返回空列表，不退回热门榜
	require.Equal(t, "personalized", data["source"])
	require.Empty(t, data["activities"])
	require.NoError(t, mock.ExpectationsWereMet())
}
