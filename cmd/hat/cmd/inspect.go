package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/hatdecoder/pkg/hat"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show how a .hat file decodes",
	Long: `Decode a .hat file and print its variant, IV, base-key magic and record
details without writing anything.

Example:
  hat inspect packed/red.hat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		return runInspect(raw, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(raw []byte, out io.Writer) error {
	c, err := hat.NewDecoder().Inspect(raw)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Variant:     %s\n", c.Variant)
	if c.Variant == hat.VariantComplex {
		fmt.Fprintf(out, "IV:          %s\n", hex.EncodeToString(c.IV))
		fmt.Fprintf(out, "Base size:   %d\n", len(c.Base))
		fmt.Fprintf(out, "Base key:    %s (%d)\n", c.BaseKeyClass, c.BaseKeyMagic)
		if c.BaseKeyClass == hat.BaseKeySpecific {
			fmt.Fprintf(out, "Extra field: %q\n", c.SpecificField)
		}
	}
	fmt.Fprintf(out, "Team:        %s\n", c.Record.TeamName)
	fmt.Fprintf(out, "Image size:  %d\n", c.Record.ImageSize)
	fmt.Fprintf(out, "Image type:  %s\n", http.DetectContentType(c.Record.Image))
	return nil
}
