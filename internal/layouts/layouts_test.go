package layouts

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-cubes/internal/board"
	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/registry"
)

func TestLayoutsFitEveryBoard(t *testing.T) {
	geometries := []struct{ size, cube int }{
		{800, 100},
		{800, 50},
		{400, 100},
		{200, 150},
	}

	for _, info := range registry.List() {
		layout, err := registry.Create(info.ID)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", info.ID, err)
		}
		for _, g := range geometries {
			tiles := layout.Tiles(g.size, g.cube)
			if len(tiles) == 0 {
				t.Errorf("%s on %d/%d: no tiles", info.ID, g.size, g.cube)
			}
			if _, err := board.NewBoard(g.size, g.cube, tiles); err != nil {
				t.Errorf("%s on %d/%d: %v", info.ID, g.size, g.cube, err)
			}
		}
	}
}

func TestStockLayoutsRegistered(t *testing.T) {
	for _, id := range []string{"single", "pair", "trio", "grid"} {
		if !registry.Exists(id) {
			t.Errorf("layout %q not registered", id)
		}
	}
}

func TestPairMatchesReferenceBoard(t *testing.T) {
	tiles := Pair{}.Tiles(800, 50)
	want := []board.Tile{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 300, Y: 300}}
	if len(tiles) != len(want) {
		t.Fatalf("Tiles() = %+v", tiles)
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("tile %d = %+v, expected %+v", i, tiles[i], want[i])
		}
	}
}

func TestGridTilesDoNotOverlapAtDefault(t *testing.T) {
	tiles := Grid{}.Tiles(800, 100)
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			a, b := tiles[i], tiles[j]
			if a.X < b.X+100 && b.X < a.X+100 && a.Y < b.Y+100 && b.Y < a.Y+100 {
				t.Errorf("tiles %d and %d overlap", a.ID, b.ID)
			}
		}
	}
}

func TestForConfig(t *testing.T) {
	cfg := config.DefaultBoardConfig()

	tiles, err := ForConfig(cfg, "")
	if err != nil {
		t.Fatalf("ForConfig() failed: %v", err)
	}
	if len(tiles) != 2 {
		t.Errorf("default layout should be pair, got %d tiles", len(tiles))
	}

	tiles, err = ForConfig(cfg, "grid")
	if err != nil || len(tiles) != 4 {
		t.Errorf("ForConfig(grid) = %d tiles, %v", len(tiles), err)
	}

	cfg.Tiles = []config.TileSpec{{ID: 9, X: 1, Y: 2}}
	tiles, err = ForConfig(cfg, "")
	if err != nil || len(tiles) != 1 || tiles[0].ID != 9 {
		t.Errorf("explicit tiles ignored: %+v, %v", tiles, err)
	}

	if _, err := ForConfig(cfg, "nope"); !errors.Is(err, registry.ErrUnknownLayout) {
		t.Errorf("ForConfig(nope) error = %v, expected ErrUnknownLayout", err)
	}
}
