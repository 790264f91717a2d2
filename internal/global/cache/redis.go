package cache

import (
	"context"
	"time"

	"campus-activity-system/config"
	"campus-activity-system/internal/global/logger"

	"github.com/redis/go-redis/v9"
)

// KeyHotBoard 热门榜缓存键，审核通过或删除活动后需失效
const KeyHotBoard = "campus:recommend:hot_board"

var Client *redis.Client

func Init() {
	cfg := config.Get().Redis
	log := logger.New("Cache")

	if cfg.Host == "" {
		// 未配置 Redis 时降级为直查数据库
		log.Warn("Redis 未配置，热门榜缓存停用")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Ping(ctx).Err(); err != nil {
		log.Error("Redis 连接失败，热门榜缓存停用", "error", err, "addr", cfg.Host+":"+cfg.Port)
		Client = nil
		return
	}
	log.Info("Redis 连接成功", "addr", cfg.Host+":"+cfg.Port)
}

// Enabled 缓存是否可用
func Enabled() bool {
	return Client != nil
}

// GetJSON 读缓存，未命中或未启用返回 false
func GetJSON(ctx context.Context, key string) ([]byte, bool) {
	if Client == nil {
		return nil, false
	}
	raw, err := Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

// SetJSON 写缓存，未启用时为空操作
func SetJSON(ctx context.Context, key string, raw []byte, ttl time.Duration) {
	if Client == nil {
		return
	}
	Client.Set(ctx, key, raw, ttl)
}

// Delete 删除缓存键，供活动变更后失效热门榜
func Delete(ctx context.Context, keys ...string) {
	if Client == nil {
		return
	}
	Client.Del(ctx, keys...)
}
