package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// monitorCmd 表示monitor命令，用于实时监控集合状态
var monitorCmd = &cobra.Command{
	Use:   "monitor [collection]",
	Short: "Monitor collection activity in real-time",
	Long: `Watch collection statistics update in real-time.
Press Ctrl+C to stop monitoring.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		interval, _ := cmd.Flags().GetInt("interval")
		if interval <= 0 {
			return fmt.Errorf("interval must be positive")
		}
		refreshDuration := time.Duration(interval) * time.Millisecond

		service := GetCollectionService()

		prev, err := service.Info(name)
		if err != nil {
			return fmt.Errorf("collection '%s' not found", name)
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		fmt.Printf("Monitoring collection '%s' (refresh: %v, press Ctrl+C to stop)...\n\n",
			name, refreshDuration)

		prevTime := time.Now()
		ticker := time.NewTicker(refreshDuration)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				info, err := service.Info(name)
				if err != nil {
					return fmt.Errorf("failed to get collection statistics: %w", err)
				}

				// 计算每秒操作率
				now := time.Now()
				elapsed := now.Sub(prevTime).Seconds()
				insertRate := float64(info.Stats.Inserted-prev.Stats.Inserted) / elapsed
				removeRate := float64(info.Stats.Removed-prev.Stats.Removed) / elapsed

				fmt.Print("\033[H\033[2J") // 清屏，移动光标到左上角

				fmt.Printf("Time: %s\n\n", now.Format("15:04:05"))
				fmt.Printf("Collection: %s (%s)\n", name, info.Kind)
				fmt.Printf("Entries: %d\n", info.Entries)
				if info.Kind.Hashed() {
					fmt.Printf("Buckets: %d (fill ratio %.2f)\n", info.Capacity, info.FillRatio)
				}
				fmt.Printf("Operations: %d inserted, %d removed\n",
					info.Stats.Inserted, info.Stats.Removed)
				fmt.Printf("Rate: %.2f ins/s, %.2f rem/s\n", insertRate, removeRate)

				if info.Stats.Rejected > 0 {
					fmt.Printf("Rejected: %d\n", info.Stats.Rejected)
				}

				prev = info
				prevTime = now

			case <-sigChan:
				fmt.Println("\nMonitoring stopped.")
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().IntP("interval", "i", 1000, "Refresh interval in milliseconds")
}
