package activity

import (
	"campus-activity-system/internal/global/posterbed"
	"campus-activity-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// UploadPoster 接收海报文件并保存，返回可访问 URL
// 活动创建/编辑请求携带该 URL 即可绑定海报
func UploadPoster(c *gin.Context) {
	fileHeader, err := c.FormFile("poster")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("请上传海报文件"))
		return
	}

	url, err := posterbed.Get().SavePoster(c.Request.Context(), fileHeader)
	if err != nil {
		if errors.Is(err, posterbed.ErrUnsupportedType) {
			response.Fail(c, response.ErrInvalidRequest.WithTips("仅支持 png/jpg/jpeg/gif 格式"))
			return
		}
		log.Error("保存海报失败", "error", err, "filename", fileHeader.Filename)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	log.Info("海报上传成功", "filename", fileHeader.Filename, "url", url)
	response.Success(c, gin.H{
		"poster_url": url,
	})
}

// PresignPosterReq 预签名上传请求
type PresignPosterReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// PresignPoster 生成 S3 直传 URL，大文件走前端直传绕开应用服务器
func PresignPoster(c *gin.Context) {
	var req PresignPosterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	result, err := posterbed.Get().GeneratePresignedUploadURL(c.Request.Context(), posterbed.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		ExpiresIn:   req.ExpiresIn,
	})
	if err != nil {
		if errors.Is(err, posterbed.ErrUnsupportedType) {
			response.Fail(c, response.ErrInvalidRequest.WithTips("仅支持 png/jpg/jpeg/gif 格式"))
			return
		}
		log.Error("生成预签名上传地址失败", "error", err, "filename", req.Filename)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	response.Success(c, result)
}
