package cmd

import (
	"fmt"
	"os"

	"github.com/fyerfyer/collkit/internal/collectionservice"
	"github.com/fyerfyer/collkit/internal/config"
	"github.com/fyerfyer/collkit/internal/logging"
	"github.com/fyerfyer/collkit/persist"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// 配置文件路径
	cfgFile string

	// 集合服务实例，所有命令共享
	collSvc collectionservice.Service

	logger *zap.Logger
)

// rootCmd 表示CLI工具的根命令
var rootCmd = &cobra.Command{
	Use:   "collcli",
	Short: "A CLI tool for managing collections",
	Long: `Collection CLI (collcli) is a command line interface for creating and managing
named string collections: sorted and hashed sets and multisets, deques and vectors.
Collections can be saved to and loaded from a snapshot store on disk or in Redis.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initService()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// 如果没有子命令被调用，显示帮助信息
		cmd.Help()
	},
}

// Execute 运行根命令并返回进程退出码，没有参数时进入交互模式
func Execute() int {
	return execute(os.Args[1:])
}

// execute 返回前总是关闭集合服务
func execute(args []string) int {
	defer closeService()

	if len(args) > 0 {
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			return 1
		}
		return 0
	}

	if err := initService(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	runInteractiveMode()
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "collkit.yaml", "config file path")
}

// initService 读取配置并创建集合服务，已创建时直接返回
func initService() error {
	if collSvc != nil {
		return nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	codec, err := persist.ParseCodec(cfg.Snapshot.Codec)
	if err != nil {
		return err
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	logger.Debug("collection service ready",
		zap.String("store", cfg.Store),
		zap.String("codec", string(codec)))

	collSvc = collectionservice.NewInMemoryService(
		collectionservice.WithStore(store),
		collectionservice.WithCodec(codec),
		collectionservice.WithLogger(logger),
	)
	return nil
}

// newStore 按配置创建快照存储
func newStore(cfg *config.Config) (persist.Store, error) {
	switch cfg.Store {
	case config.StoreRedis:
		timeout := cfg.RedisTimeout()
		return persist.NewRedisStore(persist.RedisConfig{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			Prefix:       cfg.Redis.Prefix,
			DialTimeout:  timeout,
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		}), nil
	default:
		return persist.NewFileStore(cfg.Snapshot.Dir)
	}
}

func closeService() {
	if collSvc != nil {
		if err := collSvc.Close(); err != nil {
			logger.Warn("failed to close service", zap.Error(err))
		}
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

// GetCollectionService 返回集合服务实例，供子命令使用
func GetCollectionService() collectionservice.Service {
	return collSvc
}
