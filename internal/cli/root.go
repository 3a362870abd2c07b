// Package cli wires the cobra commands for the bulk-image-renamer
// binary.
package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd is the root command for bulk-image-renamer.
var rootCmd = &cobra.Command{
	Use:   "bulk-image-renamer",
	Short: "Bulk rename image files, locally or over HTTP",
	Long: `bulk-image-renamer renames batches of image files.

The serve command runs an HTTP endpoint that accepts uploaded files
together with a rename plan and writes them out under their new names.
The rename command applies a naming pattern to the images of a local
directory, the way the standalone tool did.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renameCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
