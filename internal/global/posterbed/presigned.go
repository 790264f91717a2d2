package posterbed

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// PresignedUploadRequest 预签名上传请求参数
type PresignedUploadRequest struct {
	Filename    string // 原始文件名
	ContentType string // 文件 MIME 类型
	ExpiresIn   int64  // 过期时间（秒），默认 15 分钟
}

// PresignedUploadResponse 预签名上传响应
type PresignedUploadResponse struct {
	UploadURL string    `json:"upload_url"` // 预签名上传 URL
	FileKey   string    `json:"file_key"`   // 对象存储中的文件 key
	FileURL   string    `json:"file_url"`   // 上传成功后的访问 URL
	ExpiresAt time.Time `json:"expires_at"` // 过期时间
	Method    string    `json:"method"`     // HTTP 方法（PUT）
}

// GeneratePresignedUploadURL 生成预签名上传 URL，前端直传海报到 S3
func (pb *PosterBed) GeneratePresignedUploadURL(ctx context.Context, req PresignedUploadRequest) (*PresignedUploadResponse, error) {
	if pb.Bucket == "" {
		return nil, errors.New("S3 bucket 未配置")
	}
	if req.Filename == "" {
		return nil, errors.New("文件名不能为空")
	}
	if !AllowedFile(req.Filename) {
		return nil, ErrUnsupportedType
	}

	if pb.s3Client == nil {
		if err := pb.InitS3(ctx); err != nil {
			return nil, err
		}
	}

	if req.ExpiresIn <= 0 {
		req.ExpiresIn = 900
	}

	ext := strings.ToLower(path.Ext(req.Filename))
	uniqueFilename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	key := strings.TrimLeft(path.Join(strings.Trim(pb.Prefix, "/"), uniqueFilename), "/")

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	presignClient := s3.NewPresignClient(pb.s3Client)
	presignedReq, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(pb.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(req.ExpiresIn) * time.Second
	})
	if err != nil {
		return nil, errors.Wrap(err, "生成预签名 URL 失败")
	}

	return &PresignedUploadResponse{
		UploadURL: presignedReq.URL,
		FileKey:   key,
		FileURL:   pb.BaseURL + "/" + key,
		ExpiresAt: time.Now().Add(time.Duration(req.ExpiresIn) * time.Second),
		Method:    presignedReq.Method,
	}, nil
}
