package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/md2docx/internal/core/domain"
)

// inspectTextWidth is the display width at which block text is truncated.
const inspectTextWidth = 72

var inspectFull bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.docx]",
	Short: "Show the parts and paragraphs of a .docx file",
	Long: `Reads a .docx package and lists its archive parts, core properties and
paragraphs. Headings are shown with their level.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectFull, "full", false, "do not truncate long paragraphs")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if buildServices == nil {
		return errors.New("conversion services not configured")
	}
	converter, _, err := buildServices(settings)
	if err != nil {
		return err
	}

	info, err := converter.Inspect(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	printPackageInfo(cmd, args[0], info)
	return nil
}

func printPackageInfo(cmd *cobra.Command, path string, info *domain.PackageInfo) {
	cmd.Printf("Package: %s\n", path)
	cmd.Println()

	cmd.Printf("Parts (%d):\n", len(info.Parts))
	for _, part := range info.Parts {
		cmd.Printf("  %s\n", part)
	}
	cmd.Println()

	if !info.Properties.IsZero() {
		cmd.Println("Properties:")
		printProperty(cmd, "Title", info.Properties.Title)
		printProperty(cmd, "Author", info.Properties.Author)
		printProperty(cmd, "Subject", info.Properties.Subject)
		if !info.Properties.Created.IsZero() {
			printProperty(cmd, "Created", info.Properties.Created.Format("2006-01-02 15:04:05 MST"))
		}
		cmd.Println()
	}

	cmd.Printf("Blocks (%d):\n", len(info.Blocks))
	for _, b := range info.Blocks {
		cmd.Printf("  %-3s %s\n", blockLabel(b), blockText(b.Text))
	}
}

func printProperty(cmd *cobra.Command, name, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	cmd.Printf("  %s: %s\n", name, value)
}

// blockLabel returns "H1".."H3" for headings and "P" for paragraphs.
func blockLabel(b domain.Block) string {
	if b.IsHeading() {
		return fmt.Sprintf("H%d", b.Level)
	}
	return "P"
}

func blockText(text string) string {
	if inspectFull {
		return text
	}
	return runewidth.Truncate(text, inspectTextWidth, "...")
}
