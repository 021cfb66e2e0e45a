package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// interactiveCmd 表示交互式命令，用于启动一个REPL
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive session",
	Long: `Start an interactive session with the collection CLI.
Commands can be entered directly at the prompt.
Type 'exit' or 'quit' to exit, or press Ctrl+C.`,
	Aliases: []string{"i", "shell"},
}

func init() {
	// Run 在 init 中赋值，避免 interactiveCmd -> executeCommand -> interactiveCmd 的初始化循环
	interactiveCmd.Run = func(cmd *cobra.Command, args []string) {
		runInteractiveMode()
	}
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractiveMode() {
	fmt.Println("Collection CLI Interactive Mode")
	fmt.Println("Type 'help' for available commands or 'exit' to quit")

	// Ctrl+C 结束会话
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Print(prompt())

		select {
		case <-ctx.Done():
			fmt.Println("\nReceived interrupt signal, exiting...")
			return
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
				}
				return
			}

			input := strings.TrimSpace(line)
			switch input {
			case "":
				continue
			case "exit", "quit":
				fmt.Println("Exiting...")
				return
			}
			executeCommand(input)
		}
	}
}

// prompt 在提示符中显示当前打开的集合数量
func prompt() string {
	if collSvc == nil {
		return "> "
	}
	return fmt.Sprintf("collcli[%d]> ", len(collSvc.List()))
}

func executeCommand(input string) {
	// 使用shellwords解析命令行参数，支持引号包含空格的元素
	parser := shellwords.NewParser()
	args, err := parser.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command: %v\n", err)
		return
	}

	if len(args) == 0 {
		return
	}

	// 嵌套的交互模式没有意义
	if args[0] == interactiveCmd.Name() || interactiveCmd.HasAlias(args[0]) {
		fmt.Println("Already in interactive mode.")
		return
	}

	cmd := rootCmd
	cmd.SetArgs(args)

	// 如果遇到错误，捕获错误而不是退出程序
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	resetFlags(cmd)
}

// resetFlags 将所有子命令的标志恢复为默认值，避免影响下一条命令
func resetFlags(cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		sub.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
		})
	}
}
