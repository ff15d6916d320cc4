package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cubes/internal/registry"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

// isolate points config discovery at empty directories.
func isolate(t *testing.T, configPath string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	prev := flagConfig
	flagConfig = configPath
	t.Cleanup(func() { flagConfig = prev })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadBoardDefaultLayout(t *testing.T) {
	isolate(t, "")

	setup, err := loadBoard("")
	if err != nil {
		t.Fatalf("loadBoard() failed: %v", err)
	}
	if setup.layout != "pair" {
		t.Errorf("layout = %q, expected pair", setup.layout)
	}
	if len(setup.tiles) != 2 {
		t.Errorf("expected 2 tiles, got %d", len(setup.tiles))
	}
}

func TestLoadBoardLayoutArgument(t *testing.T) {
	isolate(t, "")

	setup, err := loadBoard("single")
	if err != nil {
		t.Fatalf("loadBoard() failed: %v", err)
	}
	if setup.layout != "single" || len(setup.tiles) != 1 {
		t.Errorf("setup = %q with %d tiles", setup.layout, len(setup.tiles))
	}

	if _, err := loadBoard("no-such-layout"); !errors.Is(err, registry.ErrUnknownLayout) {
		t.Errorf("loadBoard() error = %v, expected ErrUnknownLayout", err)
	}
}

func TestLoadBoardExplicitTiles(t *testing.T) {
	isolate(t, writeConfig(t, `
tiles:
  - {id: 4, x: 10, y: 10}
  - {id: 9, x: 500, y: 500}
`))

	setup, err := loadBoard("")
	if err != nil {
		t.Fatalf("loadBoard() failed: %v", err)
	}
	if setup.layout != "" {
		t.Errorf("layout = %q, expected empty for explicit tiles", setup.layout)
	}
	if len(setup.tiles) != 2 || setup.tiles[1].ID != 9 {
		t.Errorf("tiles = %+v", setup.tiles)
	}
}

func TestLoadBoardRejectsMisplacedTiles(t *testing.T) {
	isolate(t, writeConfig(t, `
tiles:
  - {id: 1, x: 750, y: 0}
`))

	if _, err := loadBoard(""); err == nil {
		t.Error("loadBoard() should reject a tile outside the board")
	}
}

func TestCloseStore(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	// Sessions without history pass a nil store.
	closeStore(nil, logger)

	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	closeStore(store, logger)

	if _, err := store.StartSession("pair", "tester"); err == nil {
		t.Error("StartSession() should fail after closeStore()")
	}
	if buf.Len() != 0 {
		t.Errorf("clean close logged %q", buf.String())
	}
}
