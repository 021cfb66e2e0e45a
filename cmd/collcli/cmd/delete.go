package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd 表示delete命令，用于删除集合
var deleteCmd = &cobra.Command{
	Use:   "delete [collection]",
	Short: "Delete a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := GetCollectionService().Delete(args[0]); err != nil {
			return fmt.Errorf("failed to delete collection: %w", err)
		}
		fmt.Printf("Collection '%s' deleted.\n", args[0])
		return nil
	},
}

// clearCmd 表示clear命令，用于清空集合
var clearCmd = &cobra.Command{
	Use:   "clear [collection]",
	Short: "Remove every item from a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := GetCollectionService().Clear(args[0]); err != nil {
			return fmt.Errorf("failed to clear collection: %w", err)
		}
		fmt.Printf("Collection '%s' cleared.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
