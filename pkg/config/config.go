package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/vaultorg/config"
	ConfigFileName    = "vaultorg.yml"
)

// Config holds all server configuration settings
type Config struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// APIListLimitMax is the maximum number of results for listing requests
	APIListLimitMax int `yaml:"api_list_limit_max" json:"api_list_limit_max"`

	// FlagFile is the path of the feature flag YAML file
	FlagFile string `yaml:"flag_file" json:"flag_file"`

	// AuditEnabled toggles the audit event pipeline
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		TrustedProxies:  []string{},
		APIListLimitMax: 1000,
		FlagFile:        "/etc/vaultorg/flags.yml",
		AuditEnabled:    true,
		sources:         make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("VAULTORG_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&file)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "api_list_limit_max", "flag_file", "audit_enabled",
	}
}

// fileConfig mirrors Config for YAML parsing. AuditEnabled is a pointer so
// an absent key is distinguishable from an explicit false.
type fileConfig struct {
	TrustedProxies  []string `yaml:"trusted_proxies"`
	APIListLimitMax int      `yaml:"api_list_limit_max"`
	FlagFile        string   `yaml:"flag_file"`
	AuditEnabled    *bool    `yaml:"audit_enabled"`
}

func (c *Config) applyFileConfig(file *fileConfig) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.APIListLimitMax != 0 {
		c.APIListLimitMax = file.APIListLimitMax
		c.sources["api_list_limit_max"] = "file"
	}
	if file.FlagFile != "" {
		c.FlagFile = file.FlagFile
		c.sources["flag_file"] = "file"
	}
	if file.AuditEnabled != nil {
		c.AuditEnabled = *file.AuditEnabled
		c.sources["audit_enabled"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if v := os.Getenv("VAULTORG_API_LIST_LIMIT_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.APIListLimitMax = n
			c.sources["api_list_limit_max"] = "env"
		}
	}
	if v := os.Getenv("VAULTORG_FLAG_FILE"); v != "" {
		c.FlagFile = v
		c.sources["flag_file"] = "env"
	}
	if v := os.Getenv("VAULTORG_AUDIT_ENABLED"); v != "" {
		c.AuditEnabled = v != "false" && v != "0" && v != "no"
		c.sources["audit_enabled"] = "env"
	}
}

// Attributes returns every attribute with its current value and source
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "trusted_proxies", Value: fmt.Sprintf("%v", c.TrustedProxies), Source: c.sources["trusted_proxies"]},
		{Name: "api_list_limit_max", Value: strconv.Itoa(c.APIListLimitMax), Source: c.sources["api_list_limit_max"]},
		{Name: "flag_file", Value: c.FlagFile, Source: c.sources["flag_file"]},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.sources["audit_enabled"]},
	}
}
