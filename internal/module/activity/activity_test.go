package activity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateActivityTargetVenue(t *testing.T) {
	one, two := uint(1), uint(2)

	req := UpdateActivityReq{}
	require.Equal(t, &one, req.targetVenue(&one)) // 未提及场地保持原值

	req = UpdateActivityReq{VenueID: &two}
	require.Equal(t, &two, req.targetVenue(&one)) // 替换场地

	req = UpdateActivityReq{RemoveVenue: true}
	require.Nil(t, req.targetVenue(&one)) // 取消场地

	req = UpdateActivityReq{VenueID: &two, RemoveVenue: true}
	require.Nil(t, req.targetVenue(&one)) // 移除优先于替换

	require.Nil(t, (&UpdateActivityReq{}).targetVenue(nil))
}
