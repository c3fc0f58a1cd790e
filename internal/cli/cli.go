// Package cli provides the command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dirscan/internal/services/clipboard"
	"github.com/temirov/dirscan/internal/tokenizer"
	"github.com/temirov/dirscan/internal/utils"
)

const (
	rootUse              = "dirscan [root]"
	rootShortDescription = "write a directory tree report with inlined file content"
	rootLongDescription  = `dirscan walks a directory and writes a single plain-text report.
Every directory is listed in tree form and the text of each file that passes the
extension filters is inlined beneath its tree line.
Defaults come from ~/.dirscan/config.yaml and ./config.yaml; flags override both.`
	rootUsageExample = `  # Report the current directory into directory_listing_with_content.txt
  dirscan

  # Only include Go and Markdown files, copy the report to the clipboard
  dirscan ./project --ext .go --ext .md --copy

  # Write to a custom file and estimate its token count
  dirscan -o listing.txt --tokens --model gpt-4o`

	outputFlagName          = "output"
	outputFlagShorthand     = "o"
	allowedExtFlagName      = "ext"
	excludedExtFlagName     = "exclude-ext"
	ignoreFlagName          = "ignore"
	noIgnoreFileFlagName    = "no-ignore"
	configFlagName          = "config"
	copyFlagName            = "copy"
	tokensFlagName          = "tokens"
	modelFlagName           = "model"
	quietFlagName           = "quiet"
	quietFlagShorthand      = "q"
	outputFlagDescription   = "report file path, resolved against the working directory"
	allowedExtFlagUsage     = "only include files ending with this suffix (repeatable)"
	excludedExtFlagUsage    = "exclude files ending with this suffix (repeatable, replaces configured list)"
	ignoreFlagDescription   = "additional exact entry name to skip (repeatable)"
	noIgnoreFileDescription = "do not read names from the .ignore file in the root"
	configFlagDescription   = "explicit configuration file instead of ./config.yaml"
	copyFlagDescription     = "copy the finished report to the system clipboard"
	tokensFlagDescription   = "estimate the token count of the finished report"
	modelFlagDescription    = "tokenizer model used for --tokens"
	quietFlagDescription    = "only log errors"
	versionTemplate         = "dirscan version: {{.Version}}\n"

	initUse              = "init"
	initShortDescription = "write the default configuration file"
	initLongDescription  = `Write the built-in configuration to ./config.yaml, or to ~/.dirscan/config.yaml with --global.`
	initGlobalFlagName   = "global"
	initForceFlagName    = "force"
	initGlobalFlagUsage  = "write the global configuration instead of the local one"
	initForceFlagUsage   = "overwrite an existing configuration file"
)

// dependencies holds the collaborators a command run needs; tests replace them with stubs.
type dependencies struct {
	logger           *zap.Logger
	copier           clipboard.Copier
	newCounter       func(tokenizer.Config) (tokenizer.Counter, string, error)
	workingDirectory func() (string, error)
}

func defaultDependencies(logger *zap.Logger) dependencies {
	if logger == nil {
		logger = zap.NewNop()
	}
	return dependencies{
		logger:           logger,
		copier:           clipboard.NewService(),
		newCounter:       tokenizer.NewCounter,
		workingDirectory: os.Getwd,
	}
}

// Execute runs the dirscan application with os.Args.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(defaultDependencies(logger))
	rootCommand.SetArgs(expandToggleArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command and its init subcommand.
func createRootCommand(deps dependencies) *cobra.Command {
	var options flagOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       utils.GetApplicationVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			runDependencies := deps
			if options.quiet {
				runDependencies.logger = deps.logger.WithOptions(zap.IncreaseLevel(zap.ErrorLevel))
			}
			settings, settingsError := resolveRunSettings(command, options, arguments, runDependencies)
			if settingsError != nil {
				return settingsError
			}
			return runReport(settings, runDependencies)
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)

	flagSet := rootCommand.Flags()
	flagSet.StringVarP(&options.output, outputFlagName, outputFlagShorthand, utils.EmptyString, outputFlagDescription)
	flagSet.StringArrayVar(&options.allowedExtensions, allowedExtFlagName, nil, allowedExtFlagUsage)
	flagSet.StringArrayVar(&options.excludedExtensions, excludedExtFlagName, nil, excludedExtFlagUsage)
	flagSet.StringArrayVar(&options.ignoreNames, ignoreFlagName, nil, ignoreFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, utils.EmptyString, configFlagDescription)
	flagSet.StringVar(&options.tokenModel, modelFlagName, utils.EmptyString, modelFlagDescription)
	addToggle(flagSet, &options.disableIgnoreFile, noIgnoreFileFlagName, noIgnoreFileDescription)
	addToggle(flagSet, &options.copyReport, copyFlagName, copyFlagDescription)
	addToggle(flagSet, &options.countTokens, tokensFlagName, tokensFlagDescription)
	flagSet.BoolVarP(&options.quiet, quietFlagName, quietFlagShorthand, false, quietFlagDescription)

	rootCommand.AddCommand(createInitCommand(deps))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand(deps dependencies) *cobra.Command {
	var writeGlobal bool
	var overwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runInit(writeGlobal, overwrite, deps)
		},
	}
	initCommand.Flags().BoolVar(&writeGlobal, initGlobalFlagName, false, initGlobalFlagUsage)
	initCommand.Flags().BoolVar(&overwrite, initForceFlagName, false, initForceFlagUsage)
	return initCommand
}
