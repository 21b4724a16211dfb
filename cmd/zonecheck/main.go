// Command zonecheck parses zone master files and cross-validates every
// record against an independent DNS implementation. Records that survive
// both parsers are known-good; disagreements usually mean a hand-edited
// zone carries data a nameserver would reject at load time.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/miekg/dns"

	"zonefile-tools/masterfile"
)

type config struct {
	LogLevel string `env:"ZONETOOLS_LOG_LEVEL" envDefault:"INFO"`

	// FallbackTTL fills records whose TTL is unset when handing them to the
	// validator, which requires one.
	FallbackTTL uint32 `env:"ZONETOOLS_FALLBACK_TTL" envDefault:"3600"`
}

func loadConfig() (config, error) {
	_ = godotenv.Load()

	var c config
	err := env.Parse(&c)
	return c, err
}

func main() {
	zoneName := flag.String("zone", "", "Zone origin for the files being checked")
	printZone := flag.String("print", "", "Write the canonical zone text to this file ('-' for stdout)")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	var level = new(slog.LevelVar)
	level.UnmarshalText([]byte(cfg.LogLevel))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger = logger.With("runId", uuid.New().String())
	slog.SetDefault(logger)

	if *zoneName == "" {
		slog.Error("--zone is required")
		os.Exit(1)
	}
	if flag.NArg() == 0 {
		slog.Error("no zone files given")
		os.Exit(1)
	}

	parser := masterfile.New(masterfile.WithLogger(logger))

	failed := false
	for _, path := range flag.Args() {
		zone, err := parser.ParseFile(*zoneName, path)
		if err != nil {
			slog.Error("parse failed", "file", path, "error", err)
			failed = true
			continue
		}
		slog.Info("parsed zone file", "file", path, "records", len(zone.Records))

		if !validateZone(zone, cfg.FallbackTTL) {
			failed = true
		}

		if *printZone != "" {
			if err := writeZone(zone, *printZone); err != nil {
				slog.Error("failed to write canonical zone", "error", err)
				failed = true
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}

// validateZone feeds each record's canonical text through dns.NewRR and
// reports disagreements. Records with no registered decoder are skipped; the
// validator cannot know more about them than we do.
func validateZone(zone *masterfile.Zone, fallbackTTL uint32) bool {
	ok := true
	for _, rec := range zone.Records {
		if _, unknown := rec.Rdata.(masterfile.Unknown); unknown {
			slog.Warn("skipping record of unknown type", "name", rec.Name, "type", rec.Type())
			continue
		}

		rrStr := validatorInput(rec, zone.Name, fallbackTTL)
		if _, err := dns.NewRR(rrStr); err != nil {
			slog.Error("record rejected by validator", "record", rrStr, "error", err)
			ok = false
		} else {
			slog.Debug("record validated", "record", rrStr)
		}
	}
	return ok
}

// validatorInput renders a record as a fully-stated, fully-qualified RR line.
func validatorInput(rec masterfile.ResourceRecord, origin string, fallbackTTL uint32) string {
	ttl := fallbackTTL
	if rec.TTL != nil {
		ttl = *rec.TTL
	}
	class := rec.Class
	if class == "" {
		class = masterfile.ClassIN
	}
	return fmt.Sprintf("%s %d %s %s %s",
		qualify(rec.Name, origin), ttl, class, rec.Type(), rec.Rdata.String())
}

// qualify makes a name fully qualified within the zone origin.
func qualify(name, origin string) string {
	if name == "@" || name == "" {
		return origin
	}
	if !strings.HasSuffix(name, ".") {
		return name + "." + origin
	}
	return name
}

func writeZone(zone *masterfile.Zone, target string) error {
	text := zone.Encode()
	if target == "-" {
		_, err := os.Stdout.WriteString(text)
		return err
	}
	return os.WriteFile(target, []byte(text), 0o644)
}
