// Package registry provides a global registry of starting layouts.
// Layouts register themselves in init() functions, allowing the CLI to
// discover and build boards without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-cubes/internal/board"
)

// ErrUnknownLayout is returned by Create for ids that were never registered.
var ErrUnknownLayout = errors.New("registry: unknown layout")

// Layout builds the starting tiles for a board of the given geometry.
// Implementations must return tiles that fit inside the board.
type Layout interface {
	// ID returns a unique identifier (e.g., "pair", "grid").
	ID() string

	// Title returns a human-readable description for listings.
	Title() string

	// Tiles places the starting tiles for a size×size board of cube-sized tiles.
	Tiles(size, cube int) []board.Tile
}

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new layout instance.
type Factory func() Layout

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Typically called from an init() function.
// Panics if a layout with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LayoutInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a layout by its ID.
func Create(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLayout, id)
	}

	return f(), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
