package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/rotary-menu/internal/console"
	"github.com/atomicstack/rotary-menu/internal/format/table"
	"github.com/atomicstack/rotary-menu/internal/logging/events"
	"github.com/atomicstack/rotary-menu/internal/menu"
	"github.com/atomicstack/rotary-menu/internal/menu/decl"
	"github.com/atomicstack/rotary-menu/internal/ui"
)

const (
	StorePool = "pool"
	StoreHeap = "heap"
)

// ErrStartNotFound is returned when the requested start item matches nothing.
var ErrStartNotFound = errors.New("start item not found")

// Config describes user-provided application options.
type Config struct {
	MenuFile     string
	Store        string
	Capacity     int
	FilterFactor int
	Start        string
	Plain        bool
	Dump         bool
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
}

// Run builds the menu and executes the selected front end against the
// process's terminal.
func Run(cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, cfg, os.Stdin, os.Stdout)
}

func run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	g, err := BuildGraph(cfg)
	if err != nil {
		return err
	}
	defer g.Release()

	var navOpts []menu.Option
	if strings.TrimSpace(cfg.Start) != "" {
		start, ok := g.Find(cfg.Start)
		if !ok {
			return fmt.Errorf("%w: %q", ErrStartNotFound, cfg.Start)
		}
		navOpts = append(navOpts, menu.WithStart(start))
	}

	switch {
	case cfg.Dump:
		events.App.Dump(g.Len())
		for _, line := range table.Graph(g) {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
		return nil
	case cfg.Plain:
		sink := console.NewSink(out, "")
		opts := append([]menu.Option{menu.WithFilterFactor(cfg.FilterFactor)}, navOpts...)
		nav := menu.NewNavigator(g, sink, opts...)
		err := console.Run(ctx, nav, in, cfg.FilterFactor, sink)
		events.App.Exit("plain")
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	model := ui.NewModel(g, ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		FilterFactor: cfg.FilterFactor,
	}, navOpts...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	_, err = program.Run()
	events.App.Exit("tui")
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// BuildGraph loads the configured declaration, or the built-in sample, and
// builds it into the configured store.
func BuildGraph(cfg Config) (*menu.Graph, error) {
	store, err := NewStore(cfg.Store, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	var f *decl.File
	if cfg.MenuFile != "" {
		f, err = decl.Load(cfg.MenuFile)
	} else {
		f, err = decl.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	g, err := f.Build(store, menu.BuildRegistry())
	if err != nil {
		return nil, fmt.Errorf("build menu: %w", err)
	}
	return g, nil
}

// NewStore returns the item store for kind. For the heap store capacity is a
// limit on live items, with zero meaning unlimited.
func NewStore(kind string, capacity int) (menu.Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", StorePool:
		return menu.NewPool(capacity), nil
	case StoreHeap:
		return menu.NewHeap(capacity), nil
	}
	return nil, fmt.Errorf("unknown store %q", kind)
}
