package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

const (
	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal errors returned by the command tree.
	ApplicationExecutionFailedMessage = "An error occurred while generating the report"
)

// Configuration file constants used across the project.
const (
	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".dirscan"
	// IgnoreFileName lists additional exact names to skip inside the scanned root.
	IgnoreFileName = ".ignore"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// DefaultOutputFileName is the report file written when no output is configured.
	DefaultOutputFileName = "directory_listing_with_content.txt"
)
