package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/edublog/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-l float    latency scale
//	-p string   default teacher password
//	-ttl int    session ttl in seconds
//	-noseed     skip demo data
//
// Only these flags are looked at; -c/-config belongs to parseFile.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-l", "-p", "-ttl", "-noseed"})

	fs := flag.NewFlagSet("edublog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Float64Var(&cfg.LatencyScale, "l", cfg.LatencyScale, "latency scale (0 disables simulated delays)")
	fs.StringVar(&cfg.DefaultTeacherPassword, "p", cfg.DefaultTeacherPassword, "password for teachers created at runtime")
	ttl := fs.Int("ttl", int(cfg.SessionTTL.Seconds()), "session ttl (in seconds, 0 = never expires)")
	noSeed := fs.Bool("noseed", !cfg.Seed, "start without demo data")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ttl":
			cfg.SessionTTL = time.Duration(*ttl) * time.Second
		case "noseed":
			cfg.Seed = !*noSeed
		}
	})
	return nil
}
