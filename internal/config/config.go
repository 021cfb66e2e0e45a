// Package config 加载 collcli 的 YAML 配置
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// 存储后端
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config collcli 配置
type Config struct {
	// 日志级别：debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// 快照存储后端：file 或 redis
	Store string `yaml:"store"`

	Snapshot SnapshotConfig `yaml:"snapshot"`
	Redis    RedisConfig    `yaml:"redis"`
}

// SnapshotConfig 快照配置
type SnapshotConfig struct {
	// 文件存储目录
	Dir string `yaml:"dir"`

	// 压缩方式：none, zstd, snappy
	Codec string `yaml:"codec"`
}

// RedisConfig Redis 存储配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	Timeout  string `yaml:"timeout"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Store:    StoreFile,
		Snapshot: SnapshotConfig{
			Dir:   filepath.Join(".collkit", "snapshots"),
			Codec: "zstd",
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			Prefix:  "collkit:snapshot:",
			Timeout: "3s",
		},
	}
}

// Load 读取配置文件，文件不存在时返回默认配置
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save 将配置写入 YAML 文件
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("COLLKIT_REDIS_ADDR"); addr != "" {
		c.Redis.Addr = addr
	}
	if password := os.Getenv("COLLKIT_REDIS_PASSWORD"); password != "" {
		c.Redis.Password = password
	}
	if db := os.Getenv("COLLKIT_REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			c.Redis.DB = n
		}
	}
	if dir := os.Getenv("COLLKIT_SNAPSHOT_DIR"); dir != "" {
		c.Snapshot.Dir = dir
	}
	if level := os.Getenv("COLLKIT_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

// RedisTimeout 返回 Redis 读写超时，无法解析时为3秒
func (c *Config) RedisTimeout() time.Duration {
	d, err := time.ParseDuration(c.Redis.Timeout)
	if err != nil {
		return 3 * time.Second
	}
	return d
}

// Validate 检查配置
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile:
		if c.Snapshot.Dir == "" {
			return fmt.Errorf("snapshot.dir must be set when store is %q", StoreFile)
		}
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr must be set when store is %q", StoreRedis)
		}
	default:
		return fmt.Errorf("invalid store: %q (valid: %s, %s)", c.Store, StoreFile, StoreRedis)
	}
	return nil
}
