package recommend

import (
	"sort"

	"campus-activity-system/internal/model"
)

// 热度权重
const (
	likeWeight    = 2.0
	commentWeight = 1.5
	ratioWeight   = 10.0
)

// hotBoardSize 热门榜长度
const hotBoardSize = 8

// recommendSize 个性化推荐长度
const recommendSize = 5

// hotScore 活动热度分：点赞*2 + 评论*1.5 + 报名率*10
// 名额非法（max <= 0）时报名率按 0 计
func hotScore(a model.Activity, commentCount int64) float64 {
	score := float64(a.LikesCount)*likeWeight + float64(commentCount)*commentWeight
	if a.MaxParticipants > 0 {
		score += float64(a.CurrentParticipants) / float64(a.MaxParticipants) * ratioWeight
	}
	return score
}

type scored struct {
	activity model.Activity
	score    float64
}

// rankByScore 按热度降序排列并截取前 limit 个
// 稳定排序保证同分活动维持输入顺序（按创建时间取出）
func rankByScore(activities []model.Activity, commentCounts map[uint]int64, limit int) []scored {
	ranked := make([]scored, 0, len(activities))
	for _, a := range activities {
		ranked = append(ranked, scored{
			activity: a,
			score:    hotScore(a, commentCounts[a.ID]),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
