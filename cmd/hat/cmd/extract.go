package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ssargent/hatdecoder/pkg/config"
	"github.com/ssargent/hatdecoder/pkg/extract"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Extract the images of one .hat file or a folder of them",
	Long: `Extract the image carried by a .hat file, or by every .hat file in a folder.

Without a path the packed folder (./packed by default) is used and created if
missing. A relative file name is looked up inside the packed folder. Images are
written to the "unpacked" folder next to the packed one unless --out is given.

Examples:
  hat extract
  hat extract red.hat
  hat extract /games/hats --out ./images --workers 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)
		if cmd.Flags().Changed("out") {
			cfg.UnpackedDir, _ = cmd.Flags().GetString("out")
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers, _ = cmd.Flags().GetInt("workers")
		}
		if cmd.Flags().Changed("dump-base") {
			cfg.DumpBase, _ = cmd.Flags().GetBool("dump-base")
		}

		var arg string
		if len(args) == 1 {
			arg = args[0]
		}
		return runExtract(cmd.Context(), cfg, loggerFrom(cmd), arg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("out", "o", "", "Output folder for extracted images")
	extractCmd.Flags().IntP("workers", "w", 0, "Number of files decoded in parallel")
	extractCmd.Flags().Bool("dump-base", false, "Also write decrypted base sections (.base)")
}

// resolveInput applies the packed-folder conventions to a command-line path.
func resolveInput(arg, packedDir string) (string, error) {
	if arg == "" {
		if err := os.MkdirAll(packedDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create packed folder: %w", err)
		}
		return packedDir, nil
	}
	if filepath.Ext(arg) == "" || filepath.IsAbs(arg) {
		return arg, nil
	}
	return filepath.Join(packedDir, arg), nil
}

func runExtract(ctx context.Context, cfg *config.Config, log *logrus.Logger, arg string, out io.Writer) error {
	input, err := resolveInput(arg, cfg.PackedDir)
	if err != nil {
		return err
	}

	e := extract.New(extract.Options{
		OutDir:   cfg.UnpackedDir,
		Workers:  cfg.Workers,
		DumpBase: cfg.DumpBase,
		Logger:   log,
	})
	results, err := e.Extract(ctx, input)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "FAILED  %s: %v\n", r.Input, r.Err)
			continue
		}
		fmt.Fprintf(out, "OK      %s -> %s (%s, %d bytes)\n", r.Input, r.Output, r.TeamName, r.ImageSize)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
