package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fyerfyer/collkit/internal/collectionservice"
	"github.com/spf13/cobra"
)

// insertCmd 表示insert命令，用于向集合添加元素
var insertCmd = &cobra.Command{
	Use:   "insert [collection] [item...]",
	Short: "Add items to a collection",
	Long: `Add one or more items to a collection.
Items can be given as arguments, as a comma separated list, or read from a file.
Unique collections reject items that are already present.`,
	Aliases: []string{"add"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		list, _ := cmd.Flags().GetString("items")
		filePath, _ := cmd.Flags().GetString("file")

		items := append([]string{}, args[1:]...)
		items = append(items, collectionservice.ParseItems(list)...)

		if filePath != "" {
			if len(items) > 0 {
				return fmt.Errorf("cannot combine --file with other items")
			}
			return insertFromFile(GetCollectionService(), name, filePath)
		}

		if len(items) == 0 {
			return fmt.Errorf("must specify items, --items or --file")
		}

		accepted, err := GetCollectionService().Insert(name, items...)
		if err != nil {
			return fmt.Errorf("failed to insert: %w", err)
		}

		fmt.Printf("Inserted %d of %d item(s) into '%s'\n", accepted, len(items), name)
		return nil
	},
}

// insertFromFile 从文件中逐行读取元素并插入
func insertFromFile(service collectionservice.Service, name, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var inserted, rejected int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		n, err := service.Insert(name, line)
		if err != nil {
			return fmt.Errorf("failed to insert %q: %w", line, err)
		}
		inserted += n
		rejected += 1 - n
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	fmt.Printf("Bulk insert into '%s' completed: %d items inserted, %d rejected\n",
		name, inserted, rejected)
	return nil
}

func init() {
	rootCmd.AddCommand(insertCmd)

	insertCmd.Flags().StringP("items", "i", "", "Comma separated items to insert")
	insertCmd.Flags().StringP("file", "f", "", "File containing items to insert (one per line)")
}
