package activity

import (
	"time"

	"campus-activity-system/internal/global/cache"
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateActivityReq 定义创建活动请求的结构体，时间为毫秒时间戳
type CreateActivityReq struct {
	Title           string `json:"title" binding:"required,max=100"` // 活动标题
	Description     string `json:"description" binding:"required"`   // 活动描述
	StartTime       int64  `json:"start_time" binding:"required"`    // 开始时间
	EndTime         int64  `json:"end_time" binding:"required"`      // 结束时间
	VenueID         *uint  `json:"venue_id"`                         // 场地，可选
	ActivityTypeID  *uint  `json:"activity_type_id"`                 // 活动类型，可选
	MaxParticipants int    `json:"max_participants" binding:"required"`
	Tags            string `json:"tags"`       // 逗号分隔标签
	PosterURL       string `json:"poster_url"` // 海报 URL，先经海报上传接口取得
}

// CreateActivity 处理创建活动请求
// 任何人创建的活动都进入待审核状态
func CreateActivity(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建活动请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	start := time.UnixMilli(req.StartTime).UTC()
	end := time.UnixMilli(req.EndTime).UTC()

	if vErr := validateSchedule(start, end, req.MaxParticipants, req.VenueID, 0); vErr != nil {
		log.Warn("创建活动校验未通过", "title", req.Title, "reason", vErr.Message)
		response.Fail(c, vErr)
		return
	}

	if req.ActivityTypeID != nil {
		var activityType model.ActivityType
		if err := database.DB.First(&activityType, *req.ActivityTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.ErrInvalidRequest.WithTips("选择的活动类型不存在"))
				return
			}
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	activity := model.Activity{
		Title:           req.Title,
		Description:     req.Description,
		StartTime:       start,
		EndTime:         end,
		OrganizerID:     payload.UserID,
		VenueID:         req.VenueID,
		ActivityTypeID:  req.ActivityTypeID,
		MaxParticipants: req.MaxParticipants,
		Tags:            req.Tags,
		PosterURL:       req.PosterURL,
		Status:          model.ActivityStatusPending,
		ReviewStatus:    model.ReviewStatusPending,
		ReviewComment:   "等待审核员审核",
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		log.Error("创建活动失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动创建成功，等待审核", "activity_id", activity.ID, "organizer_id", payload.UserID)
	response.Success(c, gin.H{
		"activity_id": activity.ID,
	})
}

// ListActivitiesReq 公开活动列表的查询参数
type ListActivitiesReq struct {
	Search         string `form:"search"`           // 标题模糊查询
	ActivityTypeID uint   `form:"activity_type_id"` // 按类型筛选
	VenueID        uint   `form:"venue_id"`         // 按场地筛选
	Status         string `form:"status"`           // upcoming / ongoing / ended
	StartDate      string `form:"start_date"`       // YYYY-MM-DD
	EndDate        string `form:"end_date"`         // YYYY-MM-DD
	Hot            bool   `form:"hot"`              // 按报名热度排序
	Page           int    `form:"page"`
	PageSize       int    `form:"page_size"`
}

// ListActivities 公开活动列表，仅展示审核通过的活动
func ListActivities(c *gin.Context) {
	var req ListActivitiesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 9
	}

	// 搜索优先于类型/状态筛选，类型筛选关闭热度排序
	if req.Search != "" {
		req.ActivityTypeID = 0
		req.Status = ""
	}
	if req.ActivityTypeID != 0 {
		req.Hot = false
	}

	query := database.DB.Model(&model.Activity{}).
		Where("status = ? AND approved = ?", model.ActivityStatusActive, true).
		Preload("Venue").Preload("ActivityType").Preload("Organizer")

	if req.Search != "" {
		query = query.Where("title LIKE ?", "%"+req.Search+"%")
	}
	if req.ActivityTypeID != 0 {
		query = query.Where("activity_type_id = ?", req.ActivityTypeID)
	}
	if req.VenueID != 0 {
		query = query.Where("venue_id = ?", req.VenueID)
	}
	if start, ok := tools.ParseDate(req.StartDate); ok {
		query = query.Where("start_time >= ?", start)
	}
	if end, ok := tools.ParseDate(req.EndDate); ok {
		query = query.Where("end_time <= ?", end.Add(24*time.Hour))
	}

	now := time.Now().UTC()
	switch req.Status {
	case "upcoming":
		query = query.Where("start_time > ?", now)
	case "ongoing":
		query = query.Where("start_time <= ? AND end_time >= ?", now, now)
	case "ended":
		query = query.Where("end_time < ?", now)
	}

	if req.Hot && req.Search == "" && req.ActivityTypeID == 0 && req.Status == "" {
		query = query.Order("current_participants DESC, created_at DESC")
	} else {
		query = query.Order("start_time DESC")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error("获取活动总数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var activities []model.Activity
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Find(&activities).Error; err != nil {
		log.Error("获取活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	views := NewViews(activities, now)
	if payload, ok := jwt.GetUserPayload(c); ok {
		if err := AttachUserFlags(views, payload.UserID); err != nil {
			log.Error("标记用户参与状态失败", "error", err, "user_id", payload.UserID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	response.Success(c, gin.H{
		"activities":  views,
		"total":       total,
		"page":        req.Page,
		"page_size":   req.PageSize,
		"total_pages": (total + int64(req.PageSize) - 1) / int64(req.PageSize),
	})
}

// GetActivity 活动详情
// 未过审的活动仅发起人、审核员和管理员可见
func GetActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("活动ID不能为空"))
		return
	}

	var activity model.Activity
	if err := database.DB.Preload("Venue").Preload("ActivityType").Preload("Organizer").
		First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	payload, authed := jwt.GetUserPayload(c)
	if !activity.Approved {
		privileged := authed && (payload.UserID == activity.OrganizerID ||
			payload.Role == model.RoleAdmin || payload.Role == model.RoleReviewer)
		if !privileged {
			response.Fail(c, response.ErrForbidden)
			return
		}
	}

	var comments []model.Comment
	if err := database.DB.Preload("User").
		Where("activity_id = ?", activity.ID).
		Order("created_at DESC").Find(&comments).Error; err != nil {
		log.Error("查询活动评论失败", "error", err, "activity_id", activity.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	now := time.Now().UTC()
	views := []View{NewView(activity, now)}
	if authed {
		if err := AttachUserFlags(views, payload.UserID); err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	// 结束超过一周后发起人可导出数据
	exportable := authed && payload.UserID == activity.OrganizerID &&
		now.Sub(activity.EndTime) >= 7*24*time.Hour

	type commentView struct {
		model.Comment
		DisplayTime string `json:"display_time"`
	}
	commentViews := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		commentViews = append(commentViews, commentView{
			Comment:     cm,
			DisplayTime: tools.FormatCST(cm.CreatedAt),
		})
	}

	response.Success(c, gin.H{
		"activity":      views[0],
		"comments":      commentViews,
		"is_exportable": exportable,
	})
}

// UpdateActivityReq 使用指针类型支持部分更新
type UpdateActivityReq struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	StartTime       *int64  `json:"start_time"`
	EndTime         *int64  `json:"end_time"`
	VenueID         *uint   `json:"venue_id"`
	ActivityTypeID  *uint   `json:"activity_type_id"`
	MaxParticipants *int    `json:"max_participants"`
	Tags            *string `json:"tags"`
	PosterURL       *string `json:"poster_url"`    // 空串表示移除海报
	RemovePoster    bool    `json:"remove_poster"` // 为 true 时清空海报
	RemoveVenue     bool    `json:"remove_venue"`  // 为 true 时取消场地，优先于 venue_id
}

// targetVenue 计算编辑后的场地：移除优先于替换，未提及则保持原值
func (req *UpdateActivityReq) targetVenue(current *uint) *uint {
	if req.RemoveVenue {
		return nil
	}
	if req.VenueID != nil {
		return req.VenueID
	}
	return current
}

// UpdateActivity 编辑活动，仅发起人或管理员
// 保持原时段重新保存不会与自己冲突
func UpdateActivity(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if activity.OrganizerID != payload.UserID && payload.Role != model.RoleAdmin {
		log.Warn("无权限编辑活动", "id", id, "organizer_id", activity.OrganizerID, "user_id", payload.UserID)
		response.Fail(c, response.ErrForbidden.WithTips("无权限编辑该活动"))
		return
	}

	var req UpdateActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定编辑活动请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	start := activity.StartTime
	end := activity.EndTime
	maxParticipants := activity.MaxParticipants
	venueID := req.targetVenue(activity.VenueID)

	if req.StartTime != nil {
		start = time.UnixMilli(*req.StartTime).UTC()
	}
	if req.EndTime != nil {
		end = time.UnixMilli(*req.EndTime).UTC()
	}
	if req.MaxParticipants != nil {
		maxParticipants = *req.MaxParticipants
	}

	if vErr := validateSchedule(start, end, maxParticipants, venueID, activity.ID); vErr != nil {
		log.Warn("编辑活动校验未通过", "id", id, "reason", vErr.Message)
		response.Fail(c, vErr)
		return
	}

	if req.ActivityTypeID != nil {
		var activityType model.ActivityType
		if err := database.DB.First(&activityType, *req.ActivityTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.ErrInvalidRequest.WithTips("选择的活动类型不存在"))
				return
			}
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		activity.ActivityTypeID = req.ActivityTypeID
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	activity.StartTime = start
	activity.EndTime = end
	activity.MaxParticipants = maxParticipants
	activity.VenueID = venueID
	if req.Tags != nil {
		activity.Tags = *req.Tags
	}
	if req.PosterURL != nil {
		activity.PosterURL = *req.PosterURL
	}
	if req.RemovePoster {
		activity.PosterURL = ""
	}

	if err := database.DB.Save(&activity).Error; err != nil {
		log.Error("更新活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动更新成功", "activity_id", activity.ID, "title", activity.Title)
	response.Success(c)
}

// DeleteActivity 删除活动，仅发起人或管理员
// 点赞、评论、报名记录随活动一并删除，避免悬挂引用
func DeleteActivity(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if activity.OrganizerID != payload.UserID && payload.Role != model.RoleAdmin {
		log.Warn("无权限删除活动", "id", id, "organizer_id", activity.OrganizerID, "user_id", payload.UserID)
		response.Fail(c, response.ErrForbidden.WithTips("无权限删除该活动"))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&model.Participation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&activity).Error
	})
	if err != nil {
		log.Error("删除活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	cache.Delete(c.Request.Context(), cache.KeyHotBoard)

	log.Info("活动已删除", "activity_id", activity.ID)
	response.Success(c)
}

// MyActivitiesReq 我的活动列表筛选参数
type MyActivitiesReq struct {
	ActivityTypeID uint   `form:"activity_type_id"`
	VenueID        uint   `form:"venue_id"`
	Status         string `form:"status"`
	StartDate      string `form:"start_date"`
	EndDate        string `form:"end_date"`
}

// MyActivities 我发起的与我参与的活动
// 参与列表只保留未结束或结束不超过一周的活动
func MyActivities(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req MyActivitiesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	now := time.Now().UTC()
	applyFilters := func(query *gorm.DB) *gorm.DB {
		if req.ActivityTypeID != 0 {
			query = query.Where("activity.activity_type_id = ?", req.ActivityTypeID)
		}
		if req.VenueID != 0 {
			query = query.Where("activity.venue_id = ?", req.VenueID)
		}
		if start, ok := tools.ParseDate(req.StartDate); ok {
			query = query.Where("activity.start_time >= ?", start)
		}
		if end, ok := tools.ParseDate(req.EndDate); ok {
			query = query.Where("activity.end_time <= ?", end.Add(24*time.Hour))
		}
		switch req.Status {
		case "upcoming":
			query = query.Where("activity.start_time > ?", now)
		case "ongoing":
			query = query.Where("activity.start_time <= ? AND activity.end_time >= ?", now, now)
		case "ended":
			query = query.Where("activity.end_time < ?", now)
		}
		return query
	}

	var organized []model.Activity
	organizedQuery := applyFilters(database.DB.Model(&model.Activity{}).
		Where("activity.organizer_id = ?", payload.UserID)).
		Preload("Venue").Preload("ActivityType").
		Order("start_time DESC")
	if err := organizedQuery.Find(&organized).Error; err != nil {
		log.Error("查询我发起的活动失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	oneWeekAgo := now.Add(-7 * 24 * time.Hour)
	var participated []model.Activity
	participatedQuery := applyFilters(database.DB.Model(&model.Activity{}).
		Joins("JOIN participation ON participation.activity_id = activity.id").
		Where("participation.user_id = ? AND activity.organizer_id <> ?", payload.UserID, payload.UserID).
		Where("activity.end_time >= ?", oneWeekAgo)).
		Preload("Venue").Preload("ActivityType").
		Order("start_time DESC")
	if err := participatedQuery.Find(&participated).Error; err != nil {
		log.Error("查询我参与的活动失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"organized":    NewViews(organized, now),
		"participated": NewViews(participated, now),
	})
}
