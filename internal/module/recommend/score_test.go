package recommend

import (
	"testing"

	"campus-activity-system/internal/model"

	"github.com/stretchr/testify/require"
)

func TestHotScore(t *testing.T) {
	// 10*2 + 3*1.5 + 40/100*10 = 28.5
	a := model.Activity{
		LikesCount:          10,
		CurrentParticipants: 40,
		MaxParticipants:     100,
	}
	require.InDelta(t, 28.5, hotScore(a, 3), 1e-9)
}

func TestHotScoreZeroMaxParticipants(t *testing.T) {
	// 名额非法时报名率按 0 计，不触发除零
	a := model.Activity{
		LikesCount:          5,
		CurrentParticipants: 10,
		MaxParticipants:     0,
	}
	require.InDelta(t, 10.0, hotScore(a, 0), 1e-9)
}

func TestHotScoreMonotonic(t *testing.T) {
	base := model.Activity{LikesCount: 1, CurrentParticipants: 10, MaxParticipants: 50}
	moreLikes := base
	moreLikes.LikesCount++
	fuller := base
	fuller.CurrentParticipants++

	require.Greater(t, hotScore(moreLikes, 0), hotScore(base, 0))
	require.Greater(t, hotScore(base, 1), hotScore(base, 0))
	require.Greater(t, hotScore(fuller, 0), hotScore(base, 0))
}

func TestRankByScore(t *testing.T) {
	activities := make([]model.Activity, 0, 10)
	for i := 0; i < 10; i++ {
		a := model.Activity{
			LikesCount:      i,
			MaxParticipants: 100,
		}
		a.ID = uint(i + 1)
		activities = append(activities, a)
	}

	ranked := rankByScore(activities, nil, hotBoardSize)
	require.Len(t, ranked, hotBoardSize)
	// 降序
	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].score, ranked[i].score)
	}
	// 最热的排第一
	require.Equal(t, uint(10), ranked[0].activity.ID)
}

func TestRankByScoreStable(t *testing.T) {
	// 同分活动保持输入顺序
	var activities []model.Activity
	for i := 0; i < 4; i++ {
		a := model.Activity{LikesCount: 7, MaxParticipants: 100}
		a.ID = uint(i + 1)
		activities = append(activities, a)
	}

	ranked := rankByScore(activities, nil, 4)
	for i, s := range ranked {
		require.Equal(t, uint(i+1), s.activity.ID)
	}
}
