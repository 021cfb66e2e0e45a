package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// saveCmd 表示save命令，将集合写入快照存储
var saveCmd = &cobra.Command{
	Use:   "save [collection...]",
	Short: "Save collections to the snapshot store",
	Long: `Write one or more collections to the configured snapshot store.
With --all every collection is saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		service := GetCollectionService()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if all {
			if err := service.SaveAll(ctx); err != nil {
				return fmt.Errorf("failed to save collections: %w", err)
			}
			fmt.Printf("Saved %d collection(s).\n", len(service.List()))
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("must specify collections or --all")
		}
		for _, name := range args {
			if err := service.Save(ctx, name); err != nil {
				return fmt.Errorf("failed to save '%s': %w", name, err)
			}
			fmt.Printf("Collection '%s' saved.\n", name)
		}
		return nil
	},
}

// loadCmd 表示load命令，从快照存储恢复集合
var loadCmd = &cobra.Command{
	Use:   "load [collection]",
	Short: "Load a collection from the snapshot store",
	Long: `Restore a collection from the configured snapshot store.
With --all every snapshot whose collection is not open yet is loaded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		service := GetCollectionService()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if all {
			loaded, err := service.LoadAll(ctx)
			for _, name := range loaded {
				fmt.Printf("Collection '%s' loaded.\n", name)
			}
			if err != nil {
				return fmt.Errorf("failed to load snapshots: %w", err)
			}
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("must specify a collection or --all")
		}
		info, err := service.Load(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load '%s': %w", args[0], err)
		}
		fmt.Printf("Collection '%s' loaded: %s with %d entries.\n", info.Name, info.Kind, info.Entries)
		return nil
	},
}

// snapshotsCmd 表示snapshots命令，列出快照存储中的快照
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List snapshots in the snapshot store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		names, err := GetCollectionService().Snapshots(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No snapshots available.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(snapshotsCmd)

	saveCmd.Flags().BoolP("all", "a", false, "Save every collection")
	loadCmd.Flags().BoolP("all", "a", false, "Load every snapshot")
}
