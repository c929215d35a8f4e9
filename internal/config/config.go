package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/rotary-menu/internal/app"
	"github.com/atomicstack/rotary-menu/internal/menu"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envMenuFile     = "ROTARY_MENU_FILE"
	envStore        = "ROTARY_MENU_STORE"
	envCapacity     = "ROTARY_MENU_CAPACITY"
	envFilterFactor = "ROTARY_MENU_FILTER"
	envStart        = "ROTARY_MENU_START"
	envPlain        = "ROTARY_MENU_PLAIN"
	envDump         = "ROTARY_MENU_DUMP"
	envWidth        = "ROTARY_MENU_WIDTH"
	envHeight       = "ROTARY_MENU_HEIGHT"
	envShowFooter   = "ROTARY_MENU_FOOTER"
	envVerbose      = "ROTARY_MENU_VERBOSE"
	envTrace        = "ROTARY_MENU_TRACE"
	envLogFile      = "ROTARY_MENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("rotary-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuFile := fs.String("menu", envOrDefault(env, envMenuFile, ""), "path to a TOML menu declaration (empty uses the built-in sample)")
	store := fs.String("store", envOrDefault(env, envStore, app.StorePool), "item store: pool or heap")
	capacity := fs.Int("capacity", envOrInt(env, envCapacity, menu.DefaultPoolCapacity), "pool capacity, or heap item limit (0 is unlimited for heap)")
	filter := fs.Int("filter", envOrInt(env, envFilterFactor, menu.DefaultFilterFactor), "encoder filter factor, a power of two; raw samples not divisible by it are dropped")
	start := fs.String("start", envOrDefault(env, envStart, ""), "initial item, matched by title (Options/PWM selects a nested item)")
	plain := fs.Bool("plain", envOrBool(env, envPlain, false), "use the raw console front end instead of the TUI")
	dump := fs.Bool("dump", envOrBool(env, envDump, false), "print the built menu as a table and exit")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show item value, flags and encoder state")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			MenuFile:     *menuFile,
			Store:        strings.ToLower(strings.TrimSpace(*store)),
			Capacity:     *capacity,
			FilterFactor: *filter,
			Start:        *start,
			Plain:        *plain,
			Dump:         *dump,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"menu":     *menuFile,
			"store":    *store,
			"capacity": strconv.Itoa(*capacity),
			"filter":   strconv.Itoa(*filter),
			"start":    *start,
			"plain":    strconv.FormatBool(*plain),
			"dump":     strconv.FormatBool(*dump),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings no front end can run with.
func Validate(cfg Config) error {
	a := cfg.App
	switch a.Store {
	case app.StorePool, app.StoreHeap:
	default:
		return fmt.Errorf("store must be %q or %q (got %q)", app.StorePool, app.StoreHeap, a.Store)
	}
	if a.Capacity < 0 {
		return fmt.Errorf("capacity must be >= 0 (got %d)", a.Capacity)
	}
	if a.Store == app.StorePool && a.Capacity == 0 {
		return fmt.Errorf("pool capacity must be > 0")
	}
	// The raw count wraps at 2^32; only a power of two keeps the samples on
	// either side of the wrap multiples of the factor.
	if a.FilterFactor < 1 || a.FilterFactor&(a.FilterFactor-1) != 0 {
		return fmt.Errorf("filter must be a power of two (got %d)", a.FilterFactor)
	}
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if a.Plain && a.Dump {
		return fmt.Errorf("-plain and -dump are mutually exclusive")
	}
	return nil
}
