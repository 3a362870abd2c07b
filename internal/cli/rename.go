package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suraj274001/bulk-image-renamer/internal/logging"
	"github.com/suraj274001/bulk-image-renamer/internal/renamer"
)

var (
	renameMode          string
	renamePattern       string
	renameCustomPattern string
	renameStart         int
	renamePrefix        string
	renameSuffix        string
	renamePadding       int
	renameExecute       bool
)

var renameCmd = &cobra.Command{
	Use:   "rename <directory>",
	Short: "Bulk rename the images of a local directory",
	Long: `Rename every image in a directory according to a naming mode.

Modes:
  sequential  number files in name order ({prefix}{pattern}_{nnn}{suffix}{ext})
  date        like sequential, but ordered by modification time
  custom      apply a template with {n} and {ext} placeholders
  clean       normalize existing names (lowercase, underscores)

Without --execute this is a dry run: the plan is printed and nothing is
renamed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("directory %q does not exist", dir)
		}

		mode, err := renamer.ParseMode(renameMode)
		if err != nil {
			return err
		}

		opts := renamer.Options{
			Pattern:       renamePattern,
			CustomPattern: renameCustomPattern,
			StartNumber:   renameStart,
			Prefix:        renamePrefix,
			Suffix:        renameSuffix,
			Padding:       renamePadding,
		}

		ops, err := renamer.BuildPlan(dir, mode, opts)
		if err != nil {
			return err
		}
		if len(ops) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No files to rename.")
			return nil
		}

		log := logging.New(true)
		defer func() { _ = log.Sync() }()

		dryRun := !renameExecute
		renamed, failed := renamer.Execute(ops, dryRun, log)
		switch {
		case dryRun:
			fmt.Fprintln(cmd.OutOrStdout(), "Dry run completed. Use --execute to apply changes.")
		case failed > 0:
			log.Warn("some renames failed", zap.Int("renamed", renamed), zap.Int("failed", failed))
			return fmt.Errorf("%d of %d renames failed", failed, len(ops))
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully renamed %d files.\n", renamed)
		}
		return nil
	},
}

func init() {
	renameCmd.Flags().StringVar(&renameMode, "mode", "sequential", "Renaming mode (sequential, date, custom, clean)")
	renameCmd.Flags().StringVar(&renamePattern, "pattern", "product", "Base pattern for file names")
	renameCmd.Flags().StringVar(&renameCustomPattern, "custom-pattern", "", "Template using {n} for number and {ext} for extension")
	renameCmd.Flags().IntVar(&renameStart, "start", 1, "Starting number")
	renameCmd.Flags().StringVar(&renamePrefix, "prefix", "", "Prefix to add before the pattern")
	renameCmd.Flags().StringVar(&renameSuffix, "suffix", "", "Suffix to add after the number")
	renameCmd.Flags().IntVar(&renamePadding, "padding", 3, "Number padding zeros")
	renameCmd.Flags().BoolVar(&renameExecute, "execute", false, "Apply the renames instead of previewing them")
}
