package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/dirscan/internal/config"
	"github.com/temirov/dirscan/internal/filter"
	"github.com/temirov/dirscan/internal/output"
	"github.com/temirov/dirscan/internal/services/clipboard"
	"github.com/temirov/dirscan/internal/services/report"
	"github.com/temirov/dirscan/internal/tokenizer"
	"github.com/temirov/dirscan/internal/types"
	"github.com/temirov/dirscan/internal/utils"
)

const (
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	tokenCountErrorFormat       = "count tokens for %s: %w"
	bannerRootFormat            = "Scanning directory: %s"
	bannerOutputFormat          = "Output file: %s"
	bannerModeFormat            = "Mode: %s"
	bannerExcludedFormat        = "Excluded extensions: %s"
	bannerIgnoredFormat         = "Ignored names: %s"
	reportWrittenFormat         = "Report written to %s"
	unreadableEntriesFormat     = "%d directories and %d files could not be read; see the report for placeholders"
	postReportWarningFormat     = "Warning: %v"
	reportCopiedMessage         = "Report copied to clipboard"
	configurationWrittenFormat  = "Configuration written to %s"
)

// flagOptions receives the raw flag values of the root command.
type flagOptions struct {
	output             string
	allowedExtensions  []string
	excludedExtensions []string
	ignoreNames        []string
	configPath         string
	tokenModel         string
	disableIgnoreFile  bool
	copyReport         bool
	countTokens        bool
	quiet              bool
}

// runSettings is the fully resolved configuration of one report run.
type runSettings struct {
	root        string
	outputPath  string
	policy      filter.Policy
	copyReport  bool
	countTokens bool
	tokenModel  string
}

// resolveRunSettings layers the configuration files and the flags that were explicitly set on the command line.
// List flags replace configured lists, except --ignore which extends the configured ignore set.
func resolveRunSettings(command *cobra.Command, options flagOptions, arguments []string, deps dependencies) (runSettings, error) {
	workingDirectory, workingDirectoryError := deps.workingDirectory()
	if workingDirectoryError != nil {
		return runSettings{}, fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}

	configPath := options.configPath
	if configPath != utils.EmptyString {
		configPath = resolveAgainst(workingDirectory, configPath)
	}
	applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: configPath,
	})
	if loadError != nil {
		return runSettings{}, loadError
	}
	scanConfiguration := applicationConfiguration.Scan

	flagSet := command.Flags()
	if len(arguments) > 0 {
		scanConfiguration.Root = arguments[0]
	}
	if flagSet.Changed(outputFlagName) {
		scanConfiguration.Output = options.output
	}
	if flagSet.Changed(allowedExtFlagName) {
		scanConfiguration.AllowedExtensions = options.allowedExtensions
	}
	if flagSet.Changed(excludedExtFlagName) {
		scanConfiguration.ExcludedExtensions = options.excludedExtensions
	}
	if flagSet.Changed(ignoreFlagName) {
		scanConfiguration.Ignore = append(scanConfiguration.Ignore, options.ignoreNames...)
	}

	useIgnoreFile := config.BoolValue(scanConfiguration.UseIgnoreFile, true)
	if flagSet.Changed(noIgnoreFileFlagName) {
		useIgnoreFile = !options.disableIgnoreFile
	}
	copyReport := config.BoolValue(scanConfiguration.Copy, false)
	if flagSet.Changed(copyFlagName) {
		copyReport = options.copyReport
	}
	countTokens := config.BoolValue(scanConfiguration.Tokens.Enabled, false)
	if flagSet.Changed(tokensFlagName) {
		countTokens = options.countTokens
	}
	tokenModel := scanConfiguration.Tokens.Model
	if flagSet.Changed(modelFlagName) {
		tokenModel = options.tokenModel
	}

	if strings.TrimSpace(scanConfiguration.Output) == utils.EmptyString {
		return runSettings{}, report.ErrEmptyOutputPath
	}
	absoluteRoot, rootError := report.ResolveRoot(resolveAgainst(workingDirectory, scanConfiguration.Root))
	if rootError != nil {
		return runSettings{}, rootError
	}
	ignoreNames, ignoreError := config.LoadCombinedIgnoreNames(absoluteRoot, scanConfiguration.Ignore, useIgnoreFile)
	if ignoreError != nil {
		return runSettings{}, ignoreError
	}

	return runSettings{
		root:        absoluteRoot,
		outputPath:  resolveAgainst(workingDirectory, scanConfiguration.Output),
		policy:      filter.NewPolicy(ignoreNames, scanConfiguration.AllowedExtensions, scanConfiguration.ExcludedExtensions),
		copyReport:  copyReport,
		countTokens: countTokens,
		tokenModel:  tokenModel,
	}, nil
}

func resolveAgainst(workingDirectory string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workingDirectory, path)
}

// runReport writes the report and then runs the optional token count and clipboard copy.
// A failure of those follow-up tasks is logged; the report itself is already complete at that point.
func runReport(settings runSettings, deps dependencies) error {
	logger := deps.logger
	logStartBanner(logger, settings)

	result, generateError := report.Generate(report.Options{
		Root:       settings.root,
		OutputPath: settings.outputPath,
		Policy:     settings.policy,
		Warn: func(message string) {
			logger.Warn(message)
		},
	})
	if generateError != nil {
		return generateError
	}
	logger.Info(fmt.Sprintf(reportWrittenFormat, result.OutputPath))
	logger.Info(output.FormatScanDetails(result.Summary))
	if result.Summary.UnreadableDirectories > 0 || result.Summary.UnreadableFiles > 0 {
		logger.Warn(fmt.Sprintf(unreadableEntriesFormat, result.Summary.UnreadableDirectories, result.Summary.UnreadableFiles))
	}

	outputSummary := types.OutputSummary{
		TotalFiles: result.Summary.Files,
		TotalSize:  utils.FormatFileSize(result.Summary.Bytes),
	}
	if postReportError := runPostReportTasks(result.OutputPath, settings, deps, &outputSummary); postReportError != nil {
		logger.Warn(fmt.Sprintf(postReportWarningFormat, postReportError))
	}
	logger.Info(output.FormatSummaryLine(&outputSummary))
	return nil
}

// runPostReportTasks reads the finished report concurrently for token counting and clipboard copy.
func runPostReportTasks(reportPath string, settings runSettings, deps dependencies, outputSummary *types.OutputSummary) error {
	var group errgroup.Group
	if settings.countTokens {
		group.Go(func() error {
			counter, resolvedModel, counterError := deps.newCounter(tokenizer.Config{Model: settings.tokenModel})
			if counterError != nil {
				return fmt.Errorf(tokenCountErrorFormat, reportPath, counterError)
			}
			tokenCount, countError := tokenizer.CountFile(counter, reportPath)
			if countError != nil {
				return fmt.Errorf(tokenCountErrorFormat, reportPath, countError)
			}
			outputSummary.TotalTokens = tokenCount
			outputSummary.Model = resolvedModel
			return nil
		})
	}
	if settings.copyReport {
		group.Go(func() error {
			if copyError := clipboard.CopyFile(deps.copier, reportPath); copyError != nil {
				return copyError
			}
			deps.logger.Info(reportCopiedMessage)
			return nil
		})
	}
	return group.Wait()
}

func logStartBanner(logger *zap.Logger, settings runSettings) {
	logger.Info(output.BannerSeparator)
	logger.Info(fmt.Sprintf(bannerRootFormat, settings.root))
	logger.Info(fmt.Sprintf(bannerOutputFormat, settings.outputPath))
	logger.Info(fmt.Sprintf(bannerModeFormat, output.ModeDescription(settings.policy)))
	if excludeSummary := settings.policy.ExcludeSummary(); excludeSummary != utils.EmptyString {
		logger.Info(fmt.Sprintf(bannerExcludedFormat, excludeSummary))
	}
	if ignoreSummary := settings.policy.IgnoreSummary(); ignoreSummary != utils.EmptyString {
		logger.Info(fmt.Sprintf(bannerIgnoredFormat, ignoreSummary))
	}
	logger.Info(output.BannerSeparator)
}

// runInit writes the default configuration file for the init subcommand.
func runInit(writeGlobal bool, overwrite bool, deps dependencies) error {
	workingDirectory, workingDirectoryError := deps.workingDirectory()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	target := config.InitTargetLocal
	if writeGlobal {
		target = config.InitTargetGlobal
	}
	writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
		Target:           target,
		Force:            overwrite,
		WorkingDirectory: workingDirectory,
	})
	if initError != nil {
		return initError
	}
	deps.logger.Info(fmt.Sprintf(configurationWrittenFormat, writtenPath))
	return nil
}
