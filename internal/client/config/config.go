package config

import "time"

// Config holds runtime settings for the support-list CLI.
//
// Fields:
//   - RelayAddrs: websocket addresses of the relays to publish to and
//     query from.
//   - QueryLimit: upper bound on candidate events per list load.
//   - RequestTimeout: per transport call (query or publish).
//   - CacheDSN: path of the local snapshot cache database.
//   - LinkBase: base URL share links are built on.
type Config struct {
	RelayAddrs     []string
	QueryLimit     int
	RequestTimeout time.Duration
	CacheDSN       string
	LinkBase       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RelayAddrs = []string{"wss://relay.damus.io", "wss://nos.lol"}
	c.QueryLimit = 100
	c.RequestTimeout = 10 * time.Second
	c.CacheDSN = "supportlist.db"
	c.LinkBase = "https://supportlist.app/"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
