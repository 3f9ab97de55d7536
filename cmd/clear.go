package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/state"
	"github.com/zhubert/qrpack/internal/storage"
)

var skipConfirm bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the saved generator state and log files",
	Long: `Clears the saved input, QR code pages and per-mode snapshots, and removes
the debug log file.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runClearWithReader(os.Stdin, cmd.OutOrStdout(), openStore(cfg))
}

// runClearWithReader allows injecting a reader and store for testing
func runClearWithReader(input io.Reader, out io.Writer, store storage.Store) error {
	saved := 0
	for _, key := range []string{state.Key, state.ConfigTabKey, state.URLTabKey} {
		if _, ok := store.Get(key); ok {
			saved++
		}
	}
	_, statErr := os.Stat(logger.DefaultLogPath)
	hasLog := statErr == nil

	if saved == 0 && !hasLog {
		fmt.Fprintln(out, "Nothing to clear.")
		return nil
	}

	fmt.Fprintln(out, "This will clear:")
	if saved > 0 {
		fmt.Fprintf(out, "  - %d saved record(s)\n", saved)
	}
	if hasLog {
		fmt.Fprintf(out, "  - The log file %s\n", logger.DefaultLogPath)
	}

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := state.Clear(store); err != nil {
		return fmt.Errorf("error clearing state: %w", err)
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleared:")
	if saved > 0 {
		fmt.Fprintf(out, "  - %d saved record(s) removed\n", saved)
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
