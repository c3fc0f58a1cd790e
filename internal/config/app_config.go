package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/dirscan/internal/utils"
)

// DefaultTokenizerModel is used when token counting is enabled without an explicit model.
const DefaultTokenizerModel = "gpt-4o"

// defaultExcludedExtensions lists suffixes of images, media, compiled artifacts, archives and office documents.
var defaultExcludedExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".svg", ".ico",
	".mp3", ".mp4", ".avi", ".mov",
	".exe", ".dll", ".so", ".o", ".obj", ".class", ".pyc",
	".zip", ".tar", ".gz", ".7z", ".rar",
	".pdf", ".doc", ".docx", ".xls", ".xlsx",
}

// defaultIgnoreNames lists exact names of tool, dependency and build directories skipped by default.
var defaultIgnoreNames = []string{
	"__pycache__",
	".gitignore",
	utils.GitDirectoryName,
	".idea",
	".vscode",
	"node_modules",
	"dist",
	"build",
	"venv",
	".DS_Store",
}

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration is the root of the YAML configuration file.
type ApplicationConfiguration struct {
	Scan ScanConfiguration `mapstructure:"scan"`
}

// ScanConfiguration defines the options of a report run.
type ScanConfiguration struct {
	Root               string             `mapstructure:"root"`
	Output             string             `mapstructure:"output"`
	AllowedExtensions  []string           `mapstructure:"allowed_extensions"`
	ExcludedExtensions []string           `mapstructure:"excluded_extensions"`
	Ignore             []string           `mapstructure:"ignore"`
	UseIgnoreFile      *bool              `mapstructure:"use_ignore_file"`
	Copy               *bool              `mapstructure:"copy"`
	Tokens             TokenConfiguration `mapstructure:"tokens"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// DefaultApplicationConfiguration returns the built-in configuration applied before any file is read.
func DefaultApplicationConfiguration() ApplicationConfiguration {
	return ApplicationConfiguration{
		Scan: ScanConfiguration{
			Root:               ".",
			Output:             utils.DefaultOutputFileName,
			ExcludedExtensions: append([]string{}, defaultExcludedExtensions...),
			Ignore:             append([]string{}, defaultIgnoreNames...),
			UseIgnoreFile:      boolPointer(true),
			Copy:               boolPointer(false),
			Tokens: TokenConfiguration{
				Enabled: boolPointer(false),
				Model:   DefaultTokenizerModel,
			},
		},
	}
}

// LoadApplicationConfiguration merges the built-in defaults, the global file and the local (or explicit) file,
// later sources overriding earlier ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	merged := DefaultApplicationConfiguration()

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	merged.Scan.AllowedExtensions = utils.DeduplicatePatterns(merged.Scan.AllowedExtensions)
	merged.Scan.ExcludedExtensions = utils.DeduplicatePatterns(merged.Scan.ExcludedExtensions)
	merged.Scan.Ignore = utils.DeduplicatePatterns(merged.Scan.Ignore)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.ConfigFileName)
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath
	}
	return filepath.Join(workingDirectory, explicitPath)
}

// loadConfigurationFromPath reads one YAML file. A missing file yields an empty configuration unless required.
func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.Scan = result.Scan.merge(override.Scan)
	return result
}

// Lists are replaced, never concatenated, and only when the override provides at least one value.
func (config ScanConfiguration) merge(override ScanConfiguration) ScanConfiguration {
	result := config
	if override.Root != "" {
		result.Root = override.Root
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if len(override.AllowedExtensions) > 0 {
		result.AllowedExtensions = append([]string{}, override.AllowedExtensions...)
	}
	if len(override.ExcludedExtensions) > 0 {
		result.ExcludedExtensions = append([]string{}, override.ExcludedExtensions...)
	}
	if len(override.Ignore) > 0 {
		result.Ignore = append([]string{}, override.Ignore...)
	}
	if override.UseIgnoreFile != nil {
		result.UseIgnoreFile = cloneBool(override.UseIgnoreFile)
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	return result
}

func (config TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := config
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

// BoolValue dereferences value, returning fallback when it is unset.
func BoolValue(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func boolPointer(value bool) *bool {
	return &value
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
