package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/okuleshov/supportlist/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-r string   comma-separated relay addresses
//	-l int      query limit per list load
//	-t int      request timeout in seconds
//	-f string   cache database file
//	-b string   share-link base URL
//
// The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-r", "-l", "-t", "-f", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	relays := fs.String("r", strings.Join(cfg.RelayAddrs, ","), "comma-separated relay addresses")
	fs.IntVar(&cfg.QueryLimit, "l", cfg.QueryLimit, "query limit per list load")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CacheDSN, "f", cfg.CacheDSN, "cache database file")
	fs.StringVar(&cfg.LinkBase, "b", cfg.LinkBase, "share-link base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RelayAddrs = splitRelays(*relays)
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

func splitRelays(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
