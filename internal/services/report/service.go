// Package report orchestrates a single scan: it resolves the root, owns the output file,
// writes the header and hands the sink to the tree renderer.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/temirov/dirscan/internal/commands"
	"github.com/temirov/dirscan/internal/filter"
	"github.com/temirov/dirscan/internal/output"
	"github.com/temirov/dirscan/internal/types"
)

const (
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	errorPathMissingFormat  = "path '%s' does not exist"
	errorStatFormat         = "stat failed for '%s': %w"
	errorNotDirectoryFormat = "path '%s' is not a directory"
	errorCreateOutputFormat = "create report %s: %w"
	errorWriteHeaderFormat  = "writing report header: %w"
	errorFinishOutputFormat = "finish report %s: %w"
)

// ErrEmptyOutputPath is returned when no report destination is configured.
var ErrEmptyOutputPath = errors.New("report output path is empty")

// Options describes one report run.
type Options struct {
	Root       string
	OutputPath string
	Policy     filter.Policy
	// Warn receives per-node warnings. It may be nil.
	Warn func(string)
}

// Result describes a completed report.
type Result struct {
	AbsoluteRoot string
	OutputPath   string
	Summary      types.ScanSummary
}

// Generate writes a complete report for options.Root into options.OutputPath.
// The output file's own name is always added to the ignore set so a report inside the scanned root never lists itself.
// Any failure creating, writing, flushing or closing the output file is returned.
func Generate(options Options) (result Result, err error) {
	if options.OutputPath == "" {
		return Result{}, ErrEmptyOutputPath
	}
	absoluteRoot, rootError := ResolveRoot(options.Root)
	if rootError != nil {
		return Result{}, rootError
	}
	absoluteOutputPath, outputPathError := filepath.Abs(options.OutputPath)
	if outputPathError != nil {
		return Result{}, fmt.Errorf(errorAbsolutePathFormat, options.OutputPath, outputPathError)
	}
	policy := options.Policy.WithIgnoredName(filepath.Base(absoluteOutputPath))

	// #nosec G304
	outputFile, createError := os.Create(absoluteOutputPath)
	if createError != nil {
		return Result{}, fmt.Errorf(errorCreateOutputFormat, absoluteOutputPath, createError)
	}
	bufferedWriter := bufio.NewWriter(outputFile)
	defer func() {
		finishError := multierr.Append(bufferedWriter.Flush(), outputFile.Close())
		if finishError != nil {
			err = multierr.Append(err, fmt.Errorf(errorFinishOutputFormat, absoluteOutputPath, finishError))
		}
	}()

	summary, writeError := Write(bufferedWriter, absoluteRoot, policy, options.Warn)
	if writeError != nil {
		return Result{}, writeError
	}
	return Result{AbsoluteRoot: absoluteRoot, OutputPath: absoluteOutputPath, Summary: summary}, nil
}

// Write renders the header and the tree body for absoluteRoot into sink.
func Write(sink io.Writer, absoluteRoot string, policy filter.Policy, warn func(string)) (types.ScanSummary, error) {
	if headerError := output.WriteReportHeader(sink, absoluteRoot, policy); headerError != nil {
		return types.ScanSummary{}, fmt.Errorf(errorWriteHeaderFormat, headerError)
	}
	treeRenderer := commands.NewTreeRenderer(policy, warn)
	if renderError := treeRenderer.Render(absoluteRoot, sink, ""); renderError != nil {
		return treeRenderer.Summary(), renderError
	}
	return treeRenderer.Summary(), nil
}

// ResolveRoot converts root to a clean absolute path and verifies that it names an existing directory.
func ResolveRoot(root string) (string, error) {
	absolutePath, absolutePathError := filepath.Abs(root)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, root, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	fileInformation, statError := os.Stat(cleanPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return "", fmt.Errorf(errorPathMissingFormat, root)
		}
		return "", fmt.Errorf(errorStatFormat, root, statError)
	}
	if !fileInformation.IsDir() {
		return "", fmt.Errorf(errorNotDirectoryFormat, root)
	}
	return cleanPath, nil
}
