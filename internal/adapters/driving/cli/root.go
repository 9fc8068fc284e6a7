// Package cli implements the md2docx command line using cobra.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driving"
	"github.com/custodia-labs/md2docx/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// NoConfigFile as the --config value runs on defaults and flags only.
const NoConfigFile = "none"

// SettingsLoader opens the settings for a config file path.
// An empty path selects the default file; NoConfigFile selects none.
type SettingsLoader func(configPath string) (driving.SettingsService, error)

// ServiceBuilder constructs the conversion services for resolved settings.
type ServiceBuilder func(settings *domain.Settings) (driving.ConverterService, driving.WatchService, error)

// Services are built after flag parsing because the config file and the
// flags decide how adapters are constructed.
var (
	loadSettings  SettingsLoader
	buildServices ServiceBuilder
)

// Flag values.
var (
	configPath  string
	verbose     bool
	inputPath   string
	outputPath  string
	formatFlag  string
	encoding    string
	title       string
	author      string
	subject     string
	placeholder string
	watchMode   bool
)

var rootCmd = &cobra.Command{
	Use:   "md2docx",
	Short: "Convert Markdown or plain text into a Word document",
	Long: `md2docx converts a Markdown or plain text file into a minimal .docx package.

Each non-blank line becomes one paragraph. Lines starting with '#' become
headings (levels 1-3). Markdown is flattened to plain text first: code blocks,
links, emphasis and tables are simplified.

With no flags the default input file in the current directory is converted.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runConvert,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		`config file (default md2docx.toml in the working directory, "none" to skip)`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	flags := rootCmd.Flags()
	flags.StringVarP(&inputPath, "input", "i", "", "input file (default "+domain.DefaultInputPath+")")
	flags.StringVarP(&outputPath, "output", "o", "", "output .docx file (default "+domain.DefaultOutputPath+")")
	flags.StringVar(&formatFlag, "format", "", "source format: auto, markdown or text")
	flags.StringVar(&encoding, "encoding", "", "source text encoding, e.g. utf-8, shift_jis, euc-jp")
	flags.StringVar(&title, "title", "", "document title property")
	flags.StringVar(&author, "author", "", "document author property")
	flags.StringVar(&subject, "subject", "", "document subject property")
	flags.StringVar(&placeholder, "placeholder", "", "text that replaces fenced code blocks")
	flags.BoolVarP(&watchMode, "watch", "w", false, "reconvert whenever the input changes")
}

// SetServices configures how the CLI loads settings and builds services.
func SetServices(loader SettingsLoader, builder ServiceBuilder) {
	loadSettings = loader
	buildServices = builder
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by the caller to stop watch mode.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	if buildServices == nil {
		return errors.New("conversion services not configured")
	}
	converter, watcher, err := buildServices(settings)
	if err != nil {
		return err
	}

	req := settings.Request()
	if watchMode {
		return runWatch(cmd, watcher, req)
	}

	result, err := converter.Convert(commandContext(cmd), req)
	if err != nil {
		return err
	}
	printResult(cmd, result)
	return nil
}

func runWatch(cmd *cobra.Command, watcher driving.WatchService, req domain.ConvertRequest) error {
	if watcher == nil {
		return errors.New("watch mode not available")
	}

	cmd.Printf("Watching %s (press Ctrl+C to stop)\n", req.InputPath)
	return watcher.Watch(commandContext(cmd), req, func(result *domain.ConvertResult, err error) {
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			return
		}
		printResult(cmd, result)
	})
}

func printResult(cmd *cobra.Command, result *domain.ConvertResult) {
	cmd.Printf("DOCX file created: %s\n", result.OutputPath)
	logger.Info("%d headings, %d paragraphs, %d bytes", result.Headings, result.Paragraphs, result.Bytes)
}

// resolveSettings loads the config file and applies explicitly set flags.
func resolveSettings(cmd *cobra.Command) (*domain.Settings, error) {
	if loadSettings == nil {
		return nil, errors.New("settings not configured")
	}

	service, err := loadSettings(configPath)
	if err != nil {
		return nil, err
	}
	settings, err := service.Get()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", displayPath(service.ConfigPath()), err)
	}

	if err := applyFlags(cmd, settings); err != nil {
		return nil, err
	}

	logger.Debug("config: %s", displayPath(service.ConfigPath()))
	logger.Debug("input=%s output=%s format=%s encoding=%s", settings.InputPath, settings.OutputPath,
		settings.Format, settings.Encoding)
	return settings, nil
}

// applyFlags overrides settings with flags the user actually passed.
func applyFlags(cmd *cobra.Command, settings *domain.Settings) error {
	flags := cmd.Flags()

	overrides := []struct {
		name   string
		target *string
		value  string
	}{
		{"input", &settings.InputPath, inputPath},
		{"output", &settings.OutputPath, outputPath},
		{"encoding", &settings.Encoding, encoding},
		{"title", &settings.Properties.Title, title},
		{"author", &settings.Properties.Author, author},
		{"subject", &settings.Properties.Subject, subject},
		{"placeholder", &settings.Transform.CodeBlockPlaceholder, placeholder},
	}
	for _, o := range overrides {
		if flags.Lookup(o.name) != nil && flags.Changed(o.name) {
			*o.target = o.value
		}
	}

	if flags.Lookup("format") != nil && flags.Changed("format") {
		format, ok := domain.ParseSourceFormat(formatFlag)
		if !ok {
			return fmt.Errorf("%w: format %q (want auto, markdown or text)", domain.ErrUnsupportedType, formatFlag)
		}
		settings.Format = format
	}

	return nil
}

// displayPath names the config source for messages.
func displayPath(path string) string {
	if path == "" {
		return "(none)"
	}
	return path
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
