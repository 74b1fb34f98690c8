package config

// Config represents the complete configuration structure
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Safety  SafetyConfig  `mapstructure:"safety"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds PixHaven server connection details
type ServerConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// AuthConfig controls where the session token comes from. A token set here
// takes precedence over the credentials file written by `pixctl login`.
type AuthConfig struct {
	Token           string `mapstructure:"token"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmDelete bool `mapstructure:"confirm_delete"`
	ShowDetails   bool `mapstructure:"show_details"`
}

// WatchConfig contains settings for the watch command
type WatchConfig struct {
	Interval int `mapstructure:"interval"` // seconds between refetches
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
