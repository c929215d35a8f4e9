package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/rotary-menu/internal/app"
	"github.com/atomicstack/rotary-menu/internal/config"
	"github.com/atomicstack/rotary-menu/internal/logging"
	"github.com/atomicstack/rotary-menu/internal/logging/events"
	"golang.org/x/term"
)

const builtinMenu = "built-in"

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := probeTerminal(os.Stdin, os.Stdout)
	runtimeCfg.App = chooseFrontEnd(runtimeCfg.App, tty)
	events.App.Start(startupTracePayload(runtimeCfg, tty))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalInfo records whether the encoder input and the display are
// terminals, and the display size when it is one.
type terminalInfo struct {
	Input  bool   `json:"input"`
	Output bool   `json:"output"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

func probeTerminal(in, out *os.File) terminalInfo {
	var info terminalInfo
	if in != nil {
		info.Input = term.IsTerminal(int(in.Fd()))
	}
	if out == nil {
		return info
	}
	fd := int(out.Fd())
	if !term.IsTerminal(fd) {
		return info
	}
	info.Output = true
	if width, height, err := term.GetSize(fd); err == nil {
		info.Width, info.Height = width, height
	} else {
		info.Error = err.Error()
	}
	return info
}

// chooseFrontEnd falls back to the plain console when either end of the
// session is not a terminal; the full screen view needs both.
func chooseFrontEnd(cfg app.Config, tty terminalInfo) app.Config {
	if cfg.Dump || cfg.Plain {
		return cfg
	}
	if !tty.Input || !tty.Output {
		cfg.Plain = true
	}
	return cfg
}

func frontEndName(cfg app.Config) string {
	switch {
	case cfg.Dump:
		return "dump"
	case cfg.Plain:
		return "plain"
	default:
		return "tui"
	}
}

// startupTracePayload describes the menu source, item store, encoder filter
// and selected front end of this run.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	menuSource := cfg.App.MenuFile
	if menuSource == "" {
		menuSource = builtinMenu
	}
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"menu":     menuSource,
		"store":    cfg.App.Store,
		"capacity": cfg.App.Capacity,
		"filter":   cfg.App.FilterFactor,
		"start":    cfg.App.Start,
		"frontEnd": frontEndName(cfg.App),
		"trace":    cfg.Logging.Trace,
		"logFile":  cfg.Logging.FilePath,
		"tty":      tty,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	return payload
}
