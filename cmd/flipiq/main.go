// Package main implements the flipiq command: a local study aid that turns a
// subject and topic into AI-generated flashcards and a seven-day study
// schedule, with an HTTP shell for thin clients and a terminal shell for
// interactive use.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phrazzld/flipiq/internal/config"
)

// ConfigEnvVar names the environment variable holding the default config path.
const ConfigEnvVar = "FLIPIQ_CONFIG"

type rootOptions struct {
	configFile string
	envFile    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCommand := &cobra.Command{
		Use:           "flipiq",
		Short:         "Generate flashcard study guides and plan study sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(opts.envFile); err != nil {
				return fmt.Errorf("failed to load env file: %w", err)
			}
			return nil
		},
	}

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", os.Getenv(ConfigEnvVar), "config file path (default ./config.yaml)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with secrets such as GEMINI_API_KEY")

	rootCommand.AddCommand(
		newServeCommand(opts),
		newGenerateCommand(opts),
		newChatCommand(opts),
	)
	return rootCommand
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	if _, fprintErr := red.Fprintf(w, "error: %v\n", err); fprintErr != nil {
		panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintErr))
	}
}
