package cmd

import (
	"fmt"

	"github.com/fyerfyer/collkit/internal/collectionservice"
	"github.com/spf13/cobra"
)

// statsCmd 表示stats命令，用于显示集合的统计信息
var statsCmd = &cobra.Command{
	Use:   "stats [collection]",
	Short: "Display collection statistics",
	Long: `Display statistics for a collection.
This includes entries, bucket usage for hashed kinds, and operation counts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		info, err := GetCollectionService().Info(name)
		if err != nil {
			return fmt.Errorf("failed to get collection statistics: %w", err)
		}

		fmt.Printf("Statistics for %s '%s':\n\n", info.Kind, name)
		fmt.Print(collectionservice.FormatStats(info))
		return nil
	},
}

// resizeCmd 表示resize命令，用于修改哈希集合的桶数量
var resizeCmd = &cobra.Command{
	Use:   "resize [collection] [buckets]",
	Short: "Rehash a hashed collection into a new number of buckets",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		var buckets int
		if _, err := fmt.Sscanf(args[1], "%d", &buckets); err != nil {
			return fmt.Errorf("invalid bucket count %q", args[1])
		}

		service := GetCollectionService()
		if err := service.Resize(name, buckets); err != nil {
			return fmt.Errorf("failed to resize: %w", err)
		}

		info, err := service.Info(name)
		if err != nil {
			return err
		}
		fmt.Printf("Collection '%s' now has %d buckets (fill ratio %.2f)\n",
			name, info.Capacity, info.FillRatio)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resizeCmd)
}
