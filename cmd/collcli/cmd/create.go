package cmd

import (
	"fmt"
	"strconv"

	"github.com/fyerfyer/collkit/internal/collectionservice"
	"github.com/spf13/cobra"
)

// createCmd 表示create命令，用于创建新集合
var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new collection",
	Long: `Create a new collection of the given kind.
Kinds: sorted-set (set), sorted-multiset (multiset), hash-set (hs),
hash-multiset (hms), deque (dq), vector (vec), sorted-vector (svec).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		kindName, _ := cmd.Flags().GetString("kind")
		capacity, _ := cmd.Flags().GetInt("capacity")
		ratio, _ := cmd.Flags().GetFloat64("max-fill-ratio")

		kind, err := collectionservice.ParseKind(kindName)
		if err != nil {
			return err
		}

		opts := collectionservice.Options{
			Kind:         kind,
			Capacity:     capacity,
			MaxFillRatio: ratio,
		}

		info, err := GetCollectionService().CreateCollection(name, opts)
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}

		fmt.Printf("Collection '%s' created successfully.\n", name)
		fmt.Printf("Kind: %s\n", info.Kind)
		if kind.Hashed() {
			fmt.Printf("Buckets: %d\n", info.Capacity)
			fmt.Printf("Auto resize: %s\n", formatRatio(ratio))
		}
		return nil
	},
}

// formatRatio 格式化自动扩容阈值显示
func formatRatio(ratio float64) string {
	if ratio <= 0 {
		return "off"
	}
	return "above fill ratio " + strconv.FormatFloat(ratio, 'f', -1, 64)
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("kind", "k", "sorted-set", "Collection kind")
	createCmd.Flags().IntP("capacity", "c", 0, "Initial bucket count for hashed kinds, initial buffer for deques")
	createCmd.Flags().Float64("max-fill-ratio", 0, "Grow hashed collections above this fill ratio (0 disables)")
}
