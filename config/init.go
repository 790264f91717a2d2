package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读 config.yaml，再用环境变量覆盖
// 环境变量前缀为 CAS（Campus Activity System），如 CAS_MYSQL_HOST
func Init() {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		// 默认值
		v.SetDefault("Host", "0.0.0.0")
		v.SetDefault("Port", "8080")
		v.SetDefault("Prefix", "api")
		v.SetDefault("Mode", string(ModeDebug))
		v.SetDefault("Storage.Home", "./uploads")
		v.SetDefault("JWT.AccessExpire", 72*3600)
		v.SetDefault("Log.Level", "info")
		v.SetDefault("Log.MaxSize", 100)
		v.SetDefault("Log.MaxBackups", 10)
		v.SetDefault("Log.MaxAge", 30)

		cfg := &Config{}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalf("读取配置文件失败: %v", err)
			}
			// 没有配置文件时仅依赖默认值和环境变量
		}
		if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("解析配置失败: %v", err)
		}

		if err := envconfig.Process("CAS", cfg); err != nil {
			log.Fatalf("读取环境变量配置失败: %v", err)
		}

		cfg.Prefix = strings.Trim(cfg.Prefix, "/")
		instance = cfg
	})
}

// Get 获取全局配置，必须先调用 Init
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}
