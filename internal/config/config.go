package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultListen        = ":8080"
	DefaultUtilitiesFile = "/etc/unitboard/utilities.conf"
	DefaultJournalLines  = 50
	DefaultProbeTimeout  = 10 * time.Second
)

// Config holds the dashboard server configuration, read from an HCL
// file. Every field has a usable default; the file itself is optional.
type Config struct {
	Listen        string `hcl:"listen"`
	UtilitiesFile string `hcl:"utilitiesFile"`
	JournalLines  int    `hcl:"journalLines"`
	ProbeTimeout  string `hcl:"probeTimeout"`
}

func defaultConfig() *Config {
	listen := DefaultListen
	if port := os.Getenv("PORT"); port != "" {
		listen = ":" + port
	}

	return &Config{
		Listen:        listen,
		UtilitiesFile: DefaultUtilitiesFile,
		JournalLines:  DefaultJournalLines,
		ProbeTimeout:  DefaultProbeTimeout.String(),
	}
}

// FromFile loads the server configuration. A missing file is not an
// error; the dashboard runs fine on defaults alone.
func FromFile(path string) (*Config, error) {
	cfg := defaultConfig()

	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.WithField("path", path).Debug("no configuration file found, using defaults")
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	log.Infof("found config file: %s", path)

	if err := hcl.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("could not parse configuration file %s: %s", path, err.Error())
	}

	if cfg.JournalLines <= 0 {
		cfg.JournalLines = DefaultJournalLines
	}

	return cfg, nil
}

// ProbeTimeoutDuration parses the configured probe timeout, falling
// back to the default on malformed input.
func (c *Config) ProbeTimeoutDuration() time.Duration {
	if c.ProbeTimeout == "" {
		return DefaultProbeTimeout
	}

	timeout, err := time.ParseDuration(c.ProbeTimeout)
	if err != nil {
		log.Warnf("invalid probeTimeout %q, assuming default %s", c.ProbeTimeout, DefaultProbeTimeout)
		return DefaultProbeTimeout
	}

	return timeout
}
