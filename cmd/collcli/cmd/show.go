package cmd

import (
	"fmt"

	"github.com/fyerfyer/collkit/internal/collectionservice"
	"github.com/spf13/cobra"
)

// showCmd 表示show命令，按迭代顺序显示集合元素
var showCmd = &cobra.Command{
	Use:   "show [collection]",
	Short: "Display the items of a collection",
	Long: `Display every item in iteration order.
Sorted kinds iterate in ascending order, hashed kinds in bucket order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		compact, _ := cmd.Flags().GetBool("compact")

		items, err := GetCollectionService().Items(name)
		if err != nil {
			return err
		}

		if compact {
			fmt.Println(collectionservice.FormatItems(items))
			return nil
		}

		if len(items) == 0 {
			fmt.Printf("Collection '%s' is empty.\n", name)
			return nil
		}
		for i, item := range items {
			fmt.Printf("%d: %s\n", i, item)
		}
		return nil
	},
}

// containsCmd 表示contains命令，显示元素是否存在以及出现次数
var containsCmd = &cobra.Command{
	Use:   "contains [collection] [item]",
	Short: "Check whether a collection contains an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, item := args[0], args[1]

		count, err := GetCollectionService().Occurrences(name, item)
		if err != nil {
			return err
		}

		if count == 0 {
			fmt.Printf("'%s' does not contain '%s'\n", name, item)
			return nil
		}
		fmt.Printf("'%s' contains '%s' (%d occurrence(s))\n", name, item, count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(containsCmd)

	showCmd.Flags().BoolP("compact", "c", false, "Print items on one comma separated line")
}
