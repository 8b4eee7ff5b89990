package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TKChattoraj/bitcoin-first/internal/cli"
	"github.com/TKChattoraj/bitcoin-first/internal/errors"
	"github.com/TKChattoraj/bitcoin-first/internal/exec"
	"github.com/TKChattoraj/bitcoin-first/internal/fs"
	"github.com/TKChattoraj/bitcoin-first/internal/logging"
)

var (
	runjson cli.Service
	cliArgs config

	initializationErrors []error

	rootCmd = &cobra.Command{
		Use:               "runjson [flags] \"<command>\"",
		Short:             "runjson executes a helper program and parses its output as JSON",
		Long:              descriptionRunjson,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: initCLIService,
		RunE:              runCommandParseJSON,
		SilenceErrors:     true, // Errors are manually printed in 'main'
		SilenceUsage:      true, // Disables usage text on error
	}
)

func init() {
	rootCmd.Flags().String("input", "", "a payload that is delivered verbatim to the command's standard input")
	rootCmd.Flags().String("input-file", "", "a file whose contents are delivered to the command's standard input")
	rootCmd.MarkFlagsMutuallyExclusive("input", "input-file")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	for _, name := range []string{"input", "input-file"} {
		if err := viper.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			initializationErrors = append(initializationErrors, err)
		}
	}

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		initializationErrors = append(initializationErrors, err)
	}

	viper.SetEnvPrefix("RUNJSON")
	viper.AutomaticEnv()

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func initCLIService(cmd *cobra.Command, args []string) error {
	if len(initializationErrors) > 0 {
		return errors.NewInternalError("unable to initialize the CLI: %s", initializationErrors[0])
	}

	if err := viper.Unmarshal(&cliArgs); err != nil {
		return errors.NewConfigurationError("unable to parse configuration: %s", err)
	}

	logger := logging.NewProductionLogger()
	if cliArgs.Debug {
		logger = logging.NewDebugLogger()
	}

	runjson = cli.Service{
		Log:        logger,
		FileSystem: fs.Local{},
		TaskRunner: exec.Local{},
	}

	return nil
}

func runCommandParseJSON(cmd *cobra.Command, args []string) error {
	stdin, err := stdinPayload(cliArgs)
	if err != nil {
		return err
	}

	var commandLine string
	if len(args) > 0 {
		commandLine = args[0]
	}

	document, err := runjson.RunCommandParseJSON(cmd.Context(), commandLine, stdin)
	if err != nil {
		return err
	}

	// An empty command line or an empty output is a valid "no document" success.
	if document == nil {
		return nil
	}

	formatted, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return errors.NewInternalError("unable to format JSON document: %s", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(formatted))

	return nil
}

func stdinPayload(cfg config) (*string, error) {
	if cfg.Input != "" {
		return &cfg.Input, nil
	}

	if cfg.InputFile != "" {
		data, err := runjson.FileSystem.ReadFile(cfg.InputFile)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		payload := string(data)
		return &payload, nil
	}

	return nil, nil
}
