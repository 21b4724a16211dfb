// Command zonehttpd exposes the zone-file parser over HTTP: POST raw zone
// text, get the parsed zone back as JSON. Intended for tooling that wants
// zone parsing without linking Go code.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zonefile-tools/masterfile"
)

type config struct {
	ListenAddr  string `env:"ZONEHTTPD_LISTEN_ADDR" envDefault:":8080"`
	LogLevel    string `env:"ZONEHTTPD_LOG_LEVEL" envDefault:"INFO"`
	MaxBodySize int64  `env:"ZONEHTTPD_MAX_BODY_BYTES" envDefault:"1048576"`
}

func loadConfig() (config, error) {
	_ = godotenv.Load()

	var c config
	err := env.Parse(&c)
	return c, err
}

var (
	parseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zonehttpd_parse_total",
		Help: "Zone parse requests by outcome.",
	}, []string{"status"})

	recordsParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zonehttpd_records_parsed_total",
		Help: "Resource records successfully parsed.",
	})
)

// recordJSON is the wire form of one parsed record.
type recordJSON struct {
	Name  string  `json:"name"`
	TTL   *uint32 `json:"ttl,omitempty"`
	Class string  `json:"class,omitempty"`
	Type  string  `json:"type"`
	Rdata string  `json:"rdata"`
}

type zoneJSON struct {
	Name        string       `json:"name"`
	DefaultTTL  *uint32      `json:"default_ttl,omitempty"`
	RecordCount int          `json:"record_count"`
	Records     []recordJSON `json:"records"`
}

func zoneResponse(zone *masterfile.Zone) zoneJSON {
	out := zoneJSON{
		Name:        zone.Name,
		DefaultTTL:  zone.DefaultTTL,
		RecordCount: len(zone.Records),
		Records:     make([]recordJSON, 0, len(zone.Records)),
	}
	for _, rec := range zone.Records {
		out.Records = append(out.Records, recordJSON{
			Name:  rec.Name,
			TTL:   rec.TTL,
			Class: string(rec.Class),
			Type:  rec.Type(),
			Rdata: rec.Rdata.String(),
		})
	}
	return out
}

// requestID tags every request with a UUID for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set("requestId", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func newRouter(parser *masterfile.Parser, maxBody int64) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/api/v1/zone/:name/parse", func(c *gin.Context) {
		name := c.Param("name")

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBody+1))
		if err != nil {
			parseTotal.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if int64(len(body)) > maxBody {
			parseTotal.WithLabelValues("too_large").Inc()
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "zone text too large"})
			return
		}

		zone, err := parser.Parse(name, string(body))
		if err != nil {
			parseTotal.WithLabelValues("invalid").Inc()
			slog.Info("parse rejected", "zone", name, "requestId", c.GetString("requestId"), "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		parseTotal.WithLabelValues("ok").Inc()
		recordsParsed.Add(float64(len(zone.Records)))
		c.JSON(http.StatusOK, zoneResponse(zone))
	})

	return router
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	var level = new(slog.LevelVar)
	level.UnmarshalText([]byte(cfg.LogLevel))
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	gin.SetMode(gin.ReleaseMode)
	parser := masterfile.New()
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: newRouter(parser, cfg.MaxBodySize),
	}

	go func() {
		slog.Info("zonehttpd listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
