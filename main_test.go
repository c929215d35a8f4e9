package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/rotary-menu/internal/app"
	"github.com/atomicstack/rotary-menu/internal/config"
)

func TestProbeTerminalOnRegularFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "display"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if info := probeTerminal(f, f); info.Input || info.Output || info.Width != 0 {
		t.Fatalf("expected no terminal, got %+v", info)
	}
	if info := probeTerminal(nil, nil); info != (terminalInfo{}) {
		t.Fatalf("expected zero info for missing files, got %+v", info)
	}
}

func TestChooseFrontEnd(t *testing.T) {
	both := terminalInfo{Input: true, Output: true}
	tests := []struct {
		name string
		cfg  app.Config
		tty  terminalInfo
		want string
	}{
		{name: "terminal", cfg: app.Config{}, tty: both, want: "tui"},
		{name: "piped input", cfg: app.Config{}, tty: terminalInfo{Output: true}, want: "plain"},
		{name: "redirected output", cfg: app.Config{}, tty: terminalInfo{Input: true}, want: "plain"},
		{name: "plain requested", cfg: app.Config{Plain: true}, tty: both, want: "plain"},
		{name: "dump without terminal", cfg: app.Config{Dump: true}, want: "dump"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chooseFrontEnd(tt.cfg, tt.tty)
			if name := frontEndName(got); name != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, name)
			}
			if got.Dump && got.Plain {
				t.Fatalf("dump must not be combined with plain")
			}
		})
	}
}

func TestStartupTracePayloadDescribesRun(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Store:        app.StoreHeap,
			Capacity:     64,
			FilterFactor: 4,
			Start:        "Options/PWM",
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"store":  "heap",
			"start":  "Options/PWM",
			"filter": "4",
		},
		Args: []string{"-store", "heap", "-start", "Options/PWM", "-filter", "4"},
	}
	tty := terminalInfo{Input: true, Output: true, Width: 80, Height: 24}

	payload := startupTracePayload(cfg, tty)

	if payload["menu"] != builtinMenu {
		t.Fatalf("expected built-in menu, got %v", payload["menu"])
	}
	if payload["store"] != app.StoreHeap || payload["capacity"] != 64 {
		t.Fatalf("unexpected store %v/%v", payload["store"], payload["capacity"])
	}
	if payload["filter"] != 4 {
		t.Fatalf("expected filter 4, got %v", payload["filter"])
	}
	if payload["frontEnd"] != "tui" {
		t.Fatalf("expected tui front end, got %v", payload["frontEnd"])
	}
	if payload["trace"] != true || payload["logFile"] != "trace.log" {
		t.Fatalf("unexpected logging fields %v/%v", payload["trace"], payload["logFile"])
	}
	flags, ok := payload["flags"].(map[string]string)
	if !ok || flags["start"] != "Options/PWM" {
		t.Fatalf("expected flags with start, got %v", payload["flags"])
	}
	if got, ok := payload["tty"].(terminalInfo); !ok || got != tty {
		t.Fatalf("expected tty details %+v, got %v", tty, payload["tty"])
	}

	cfg.App.MenuFile = "panel.toml"
	cfg.App.Plain = true
	payload = startupTracePayload(cfg, terminalInfo{})
	if payload["menu"] != "panel.toml" || payload["frontEnd"] != "plain" {
		t.Fatalf("unexpected menu/front end %v/%v", payload["menu"], payload["frontEnd"])
	}
}
