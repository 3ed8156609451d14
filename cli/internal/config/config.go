package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	SchemaPath string
	DocsOutput string
	NoColor    bool
}

// LoadConfig loads configuration from config files, environment variables and
// .env files, in increasing priority.
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".asl")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "asl"))

	// Set environment variable prefix
	viper.SetEnvPrefix("ASL")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("schema_path", "schema.attrs")
	viper.SetDefault("docs_output", "")
	viper.SetDefault("no_color", false)

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		SchemaPath: viper.GetString("schema_path"),
		DocsOutput: viper.GetString("docs_output"),
		NoColor:    viper.GetBool("no_color"),
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config) error {
	viper.Set("schema_path", cfg.SchemaPath)
	viper.Set("docs_output", cfg.DocsOutput)
	viper.Set("no_color", cfg.NoColor)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "asl")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	configFile := filepath.Join(configPath, ".asl.yaml")
	return viper.WriteConfigAs(configFile)
}
