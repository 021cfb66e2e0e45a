package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fyerfyer/collkit/internal/collectionservice"
	"github.com/spf13/cobra"
)

// listCmd 表示list命令，用于列出所有集合
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all collections",
	Long:    `Display a list of all collections and their basic information.`,
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		collections := GetCollectionService().List()

		if len(collections) == 0 {
			fmt.Println("No collections available.")
			return
		}

		verbose, _ := cmd.Flags().GetBool("verbose")

		if verbose {
			fmt.Printf("Found %d collection(s):\n\n", len(collections))
			for i, info := range collections {
				if i > 0 {
					fmt.Println("---")
				}
				fmt.Print(collectionservice.FormatInfo(info))
			}
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKIND\tENTRIES\tBUCKETS\tOPERATIONS")

		for _, info := range collections {
			buckets := "-"
			if info.Kind.Hashed() {
				buckets = fmt.Sprintf("%d", info.Capacity)
			}

			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d ins, %d rem\n",
				info.Name,
				info.Kind,
				info.Entries,
				buckets,
				info.Stats.Inserted,
				info.Stats.Removed)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("verbose", "v", false, "Show detailed information for each collection")
}
