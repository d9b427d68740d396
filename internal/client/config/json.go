package config

import (
	"encoding/json"
	"os"

	"github.com/okuleshov/supportlist/internal/flagx"
	"github.com/okuleshov/supportlist/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the timeout either as a string
// like "10s" or as integer nanoseconds.
type JsonConfig struct {
	RelayAddrs     []string       `json:"relay_addrs"`
	QueryLimit     int            `json:"query_limit"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CacheDSN       string         `json:"cache_dsn"`
	LinkBase       string         `json:"link_base"`
}

// parseJson overlays Config with values loaded from a JSON file whose
// path is given via the -c or -config flags. Absent fields keep their
// prior (default) values. Read or unmarshal errors panic; the config
// stage runs before anything stateful.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if len(jc.RelayAddrs) > 0 {
		cfg.RelayAddrs = jc.RelayAddrs
	}
	if jc.QueryLimit > 0 {
		cfg.QueryLimit = jc.QueryLimit
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CacheDSN != "" {
		cfg.CacheDSN = jc.CacheDSN
	}
	if jc.LinkBase != "" {
		cfg.LinkBase = jc.LinkBase
	}
}
