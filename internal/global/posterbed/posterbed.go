// Package posterbed 保存活动海报并返回可访问的 URL
// 配置了 S3 时直传对象存储，否则落到本地目录
package posterbed

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	appconfig "campus-activity-system/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// 允许的海报扩展名
var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var ErrUnsupportedType = errors.New("不支持的文件类型")

// AllowedFile 校验扩展名白名单
func AllowedFile(filename string) bool {
	return allowedExts[strings.ToLower(path.Ext(filename))]
}

type PosterBed struct {
	SaveDir string // 本地保存目录（S3 未配置时）
	BaseURL string // 访问基础 URL
	Bucket  string
	Prefix  string

	s3Client *s3.Client
	uploader *manager.Uploader
}

var instance *PosterBed

func Init() {
	cfg := appconfig.Get()
	instance = &PosterBed{
		SaveDir: filepath.Join(cfg.Storage.Home, "posters"),
		BaseURL: strings.TrimRight(cfg.S3.BaseURL, "/"),
		Bucket:  cfg.S3.Bucket,
		Prefix:  cfg.S3.Prefix,
	}
}

func Get() *PosterBed {
	return instance
}

// InitS3 按需初始化 S3 客户端，支持自定义 endpoint 与 path-style
func (pb *PosterBed) InitS3(ctx context.Context) error {
	s3cfg := appconfig.Get().S3
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s3cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3cfg.AccessKey, s3cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return errors.Wrap(err, "加载 S3 配置失败")
	}

	pb.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3cfg.Endpoint)
		}
		o.UsePathStyle = s3cfg.UsePathStyle
	})
	pb.uploader = manager.NewUploader(pb.s3Client)
	return nil
}

// SavePoster 保存海报并返回访问 URL
func (pb *PosterBed) SavePoster(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if !AllowedFile(fileHeader.Filename) {
		return "", ErrUnsupportedType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "打开上传文件失败")
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	if pb.Bucket != "" {
		return pb.saveToS3(ctx, file, filename)
	}
	return pb.saveToLocal(file, filename)
}

func (pb *PosterBed) saveToS3(ctx context.Context, file io.Reader, filename string) (string, error) {
	if pb.uploader == nil {
		if err := pb.InitS3(ctx); err != nil {
			return "", err
		}
	}

	key := strings.TrimLeft(path.Join(strings.Trim(pb.Prefix, "/"), filename), "/")
	_, err := pb.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(pb.Bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return "", errors.Wrap(err, "上传海报到 S3 失败")
	}
	return pb.BaseURL + "/" + key, nil
}

func (pb *PosterBed) saveToLocal(file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(pb.SaveDir, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "创建海报目录失败")
	}

	dst, err := os.Create(filepath.Join(pb.SaveDir, filename))
	if err != nil {
		return "", errors.Wrap(err, "创建海报文件失败")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", errors.Wrap(err, "写入海报文件失败")
	}
	return pb.BaseURL + "/posters/" + filename, nil
}
