package cmd

import (
	"errors"
	"fmt"

	"github.com/fyerfyer/collkit/collection"
	"github.com/spf13/cobra"
)

// removeCmd 表示remove命令，用于删除元素
var removeCmd = &cobra.Command{
	Use:   "remove [collection] [item]",
	Short: "Remove an item from a collection",
	Long: `Remove the first item equal to the argument.
With --all every equal item is removed.`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, item := args[0], args[1]
		all, _ := cmd.Flags().GetBool("all")

		service := GetCollectionService()

		if all {
			n, err := service.RemoveAll(name, item)
			if err != nil {
				return fmt.Errorf("failed to remove: %w", err)
			}
			fmt.Printf("Removed %d occurrence(s) of '%s'\n", n, item)
			return nil
		}

		removed, err := service.Remove(name, item)
		if err != nil {
			return fmt.Errorf("failed to remove: %w", err)
		}
		if !removed {
			fmt.Printf("'%s' not found in '%s'\n", item, name)
			return nil
		}
		fmt.Printf("Removed '%s' from '%s'\n", item, name)
		return nil
	},
}

// popCmd 表示pop命令，用于从双端队列取出元素
var popCmd = &cobra.Command{
	Use:   "pop [deque]",
	Short: "Remove and display items from either end of a deque",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		count, _ := cmd.Flags().GetInt("count")
		back, _ := cmd.Flags().GetBool("back")

		if count < 0 {
			return fmt.Errorf("count must be a non-negative number")
		}
		if count == 0 {
			count = 1
		}

		service := GetCollectionService()

		for i := 0; i < count; i++ {
			item, err := service.Pop(name, back)
			if errors.Is(err, collection.ErrEmptyCollection) {
				fmt.Printf("Deque '%s' is empty after %d item(s)\n", name, i)
				break
			}
			if err != nil {
				if i == 0 {
					return fmt.Errorf("failed to pop item: %w", err)
				}
				fmt.Printf("Popped %d item(s) before encountering an error: %v\n", i, err)
				break
			}
			fmt.Printf("Item %d: %s\n", i+1, item)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(popCmd)

	removeCmd.Flags().BoolP("all", "a", false, "Remove every equal item")

	popCmd.Flags().IntP("count", "n", 1, "Number of items to pop")
	popCmd.Flags().BoolP("back", "b", false, "Pop from the back instead of the front")
}
