package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/md2docx/internal/core/domain"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `View or create the md2docx configuration file.

Settings are resolved from built-in defaults, then the config file, then
command line flags.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved settings",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if loadSettings == nil {
		return errors.New("settings not configured")
	}

	service, err := loadSettings(configPath)
	if err != nil {
		return err
	}
	settings, err := service.Get()
	if err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", displayPath(service.ConfigPath()), err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Config file: %s\n", displayPath(service.ConfigPath()))
	cmd.Println()

	cmd.Println("[Conversion]")
	cmd.Printf("  Input: %s\n", settings.InputPath)
	cmd.Printf("  Output: %s\n", settings.OutputPath)
	cmd.Printf("  Format: %s\n", settings.Format)
	cmd.Printf("  Encoding: %s\n", settings.Encoding)
	scratch := settings.ScratchDir
	if scratch == "" {
		scratch = "(system temp directory)"
	}
	cmd.Printf("  Scratch dir: %s\n", scratch)
	cmd.Println()

	cmd.Println("[Properties]")
	if settings.Properties.IsZero() {
		cmd.Println("  (none)")
	} else {
		printProperty(cmd, "Title", settings.Properties.Title)
		printProperty(cmd, "Author", settings.Properties.Author)
		printProperty(cmd, "Subject", settings.Properties.Subject)
	}
	cmd.Println()

	cmd.Println("[Transform]")
	stages := "(none)"
	if len(settings.Transform.Stages) > 0 {
		stages = strings.Join(settings.Transform.Stages, ", ")
	}
	cmd.Printf("  Stages: %s\n", stages)
	cmd.Printf("  Code block placeholder: %q\n", settings.Transform.CodeBlockPlaceholder)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Debounce: %s\n", settings.Watch.Debounce)

	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if loadSettings == nil {
		return errors.New("settings not configured")
	}

	service, err := loadSettings(configPath)
	if err != nil {
		return err
	}

	path := service.ConfigPath()
	if path == "" {
		return fmt.Errorf("config init needs a file path, not --config %s", NoConfigFile)
	}
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := service.WriteDefaults(); err != nil {
		return err
	}

	cmd.Printf("Wrote default settings to %s\n", path)
	cmd.Printf("Default input: %s\n", domain.DefaultInputPath)
	return nil
}
