package bootstrap

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr     string `mapstructure:"SERVER_ADDR"`
	WebDir         string `mapstructure:"WEB_DIR"`
	SearchDepth    int    `mapstructure:"SEARCH_DEPTH"`
	SearchTimeMs   int64  `mapstructure:"SEARCH_TIME_MS"`
	MaxDepthLimit  int    `mapstructure:"MAX_DEPTH_LIMIT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogDevelopment bool   `mapstructure:"LOG_DEVELOPMENT"`
}

const envPrefix = "HEXCHESS"

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDR", ":2888")
	v.SetDefault("WEB_DIR", "./web")
	v.SetDefault("SEARCH_DEPTH", 3)
	v.SetDefault("SEARCH_TIME_MS", 5000)
	v.SetDefault("MAX_DEPTH_LIMIT", 8)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DEVELOPMENT", false)
}

// Setup 读取配置：默认值 < 配置文件 < HEXCHESS_* 环境变量。
// cfgPath 为空时只用默认值和环境变量。
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	if c.MaxDepthLimit <= 0 {
		c.MaxDepthLimit = 8
	}
	if c.SearchDepth <= 0 {
		c.SearchDepth = 3
	}
	if c.SearchDepth > c.MaxDepthLimit {
		c.SearchDepth = c.MaxDepthLimit
	}
	if c.SearchTimeMs < 0 {
		c.SearchTimeMs = 0
	}
}

// SearchTime 默认思考时间，0 表示不限
func (c *Config) SearchTime() time.Duration {
	return time.Duration(c.SearchTimeMs) * time.Millisecond
}

// ClampDepth 请求深度 <=0 用默认值，超过上限截断
func (c *Config) ClampDepth(depth int) int {
	if depth <= 0 {
		return c.SearchDepth
	}
	if depth > c.MaxDepthLimit {
		return c.MaxDepthLimit
	}
	return depth
}

// ClampTime 请求时间 <=0 用默认值，且不超过默认值的 4 倍
func (c *Config) ClampTime(ms int64) time.Duration {
	if ms <= 0 {
		return c.SearchTime()
	}
	d := time.Duration(ms) * time.Millisecond
	if limit := 4 * c.SearchTime(); limit > 0 && d > limit {
		return limit
	}
	return d
}
