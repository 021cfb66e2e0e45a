package workpool

import "go.uber.org/zap"

// Option 是用于配置工作池的函数选项
type Option func(*Config)

// Config 包含工作池的配置选项
type Config struct {
	// 工作协程数量
	workers int

	// 任务队列容量，队列满时 Submit 阻塞
	queueCapacity int

	logger *zap.Logger
}

// DefaultConfig 返回工作池的默认配置
func DefaultConfig() Config {
	return Config{
		workers:       4,
		queueCapacity: 64,
		logger:        zap.NewNop(),
	}
}

// WithWorkers 设置工作协程数量
func WithWorkers(count int) Option {
	return func(config *Config) {
		if count > 0 {
			config.workers = count
		}
	}
}

// WithQueueCapacity 设置任务队列容量
func WithQueueCapacity(capacity int) Option {
	return func(config *Config) {
		if capacity > 0 {
			config.queueCapacity = capacity
		}
	}
}

// WithLogger 设置日志
func WithLogger(logger *zap.Logger) Option {
	return func(config *Config) {
		if logger != nil {
			config.logger = logger
		}
	}
}
