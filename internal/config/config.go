// Package config loads the YAML connection config respcli reads,
// wrapping github.com/elastic/go-ucfg the way packetd-packetd's
// confengine package does: a thin Config handle over *ucfg.Config with
// an Unpack into a plain struct.
package config

import (
	"time"

	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
)

// Connection is the shape respcli expects at the YAML document's root.
type Connection struct {
	Network     string        `config:"network"`
	Address     string        `config:"address"`
	Credential  string        `config:"credential"`
	Cooperative bool          `config:"cooperative"`
	DialTimeout time.Duration `config:"dial_timeout"`
	Log         LogOptions    `config:"log"`
}

// LogOptions mirrors internal/obslog.Options for the subset a config
// file can override.
type LogOptions struct {
	Stdout     bool   `config:"stdout"`
	Level      string `config:"level"`
	Filename   string `config:"filename"`
	MaxSizeMB  int    `config:"max_size_mb"`
	MaxAgeDays int    `config:"max_age_days"`
	MaxBackups int    `config:"max_backups"`
}

func defaultConnection() Connection {
	return Connection{
		Network:     "tcp",
		Address:     "127.0.0.1:6379",
		DialTimeout: 5 * time.Second,
		Log:         LogOptions{Stdout: true, Level: "info"},
	}
}

// Load reads and unpacks the YAML config file at path.
func Load(path string) (Connection, error) {
	uc, err := yaml.NewConfigWithFile(path, ucfg.PathSep("."))
	if err != nil {
		return Connection{}, err
	}
	return unpack(uc)
}

// LoadBytes unpacks YAML content directly, for tests and for config
// supplied on stdin.
func LoadBytes(content []byte) (Connection, error) {
	uc, err := yaml.NewConfig(content)
	if err != nil {
		return Connection{}, err
	}
	return unpack(uc)
}

func unpack(uc *ucfg.Config) (Connection, error) {
	conn := defaultConnection()
	if err := uc.Unpack(&conn); err != nil {
		return Connection{}, err
	}
	return conn, nil
}
