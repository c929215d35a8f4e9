package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/rotary-menu/internal/menu"
)

func TestBuildGraphDefaultMenu(t *testing.T) {
	g, err := BuildGraph(Config{Store: StorePool, Capacity: menu.DefaultPoolCapacity})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if g.Len() != 26 {
		t.Fatalf("expected 26 items, got %d", g.Len())
	}
}

func TestBuildGraphPoolTooSmall(t *testing.T) {
	_, err := BuildGraph(Config{Store: StorePool, Capacity: 4})
	if !errors.Is(err, menu.ErrCapacityExhausted) {
		t.Fatalf("expected ErrCapacityExhausted, got %v", err)
	}
}

func TestBuildGraphFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	body := "[[item]]\nid = \"a\"\ntitle = \"Alpha\"\n[[item]]\ntitle = \"Beta\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	g, err := BuildGraph(Config{MenuFile: path, Store: StoreHeap})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if g.Start().Title != "Alpha" || g.Len() != 2 {
		t.Fatalf("unexpected graph: start=%q len=%d", g.Start().Title, g.Len())
	}
	if released := g.Release(); released != 2 {
		t.Fatalf("expected heap to release 2 items, got %d", released)
	}
}

func TestNewStoreRejectsUnknownKind(t *testing.T) {
	if _, err := NewStore("arena", 8); err == nil {
		t.Fatalf("expected unknown store error")
	}
	store, err := NewStore(" HEAP ", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(*menu.Heap); !ok {
		t.Fatalf("expected heap store, got %T", store)
	}
}

func TestRunDump(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), Config{Dump: true}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 27 {
		t.Fatalf("expected header plus 26 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[14], "Set") || !strings.Contains(lines[14], "Frequency") || !strings.Contains(lines[14], "1000") {
		t.Fatalf("unexpected Frequency editor row %q", lines[14])
	}
}

func TestRunPlainSession(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("")
	cfg := Config{Plain: true, FilterFactor: 2, Start: "options"}
	if err := run(context.Background(), cfg, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "> Options\r\nStart\r\n") {
		t.Fatalf("expected initial Options frame, got %q", out.String())
	}
}

func TestRunRejectsUnknownStart(t *testing.T) {
	err := run(context.Background(), Config{Plain: true, Start: "zzz"}, strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, ErrStartNotFound) {
		t.Fatalf("expected ErrStartNotFound, got %v", err)
	}
}
