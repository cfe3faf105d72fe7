package pos

import (
	"github.com/google/uuid"

	"github.com/example/lazzat/internal/models"
)

// Catalog is the in-memory snapshot of menu reference data a POS session
// prices against. Lines snapshot prices at add-time, so refreshing the
// catalog mid-session never reprices lines already in a cart.
type Catalog struct {
	items     map[uuid.UUID]models.MenuItem
	modifiers map[uuid.UUID]models.Modifier
}

// NewCatalog builds a catalog from menu items (with embedded sizes) and
// modifiers.
func NewCatalog(items []models.MenuItem, modifiers []models.Modifier) *Catalog {
	c := &Catalog{
		items:     make(map[uuid.UUID]models.MenuItem, len(items)),
		modifiers: make(map[uuid.UUID]models.Modifier, len(modifiers)),
	}
	for _, item := range items {
		c.items[item.ID] = item
	}
	for _, m := range modifiers {
		c.modifiers[m.ID] = m
	}
	return c
}

// UpsertMenuItem replaces or adds a menu item, e.g. on a menu refresh.
func (c *Catalog) UpsertMenuItem(item models.MenuItem) {
	c.items[item.ID] = item
}

// UpsertModifier replaces or adds a modifier.
func (c *Catalog) UpsertModifier(m models.Modifier) {
	c.modifiers[m.ID] = m
}

// MenuItem looks up a menu item by ID.
func (c *Catalog) MenuItem(id uuid.UUID) (models.MenuItem, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Modifier looks up a modifier by ID.
func (c *Catalog) Modifier(id uuid.UUID) (models.Modifier, bool) {
	m, ok := c.modifiers[id]
	return m, ok
}

func findSize(item models.MenuItem, sizeID uuid.UUID) (models.MenuItemSize, bool) {
	for _, size := range item.Sizes {
		if size.ID == sizeID {
			return size, true
		}
	}
	return models.MenuItemSize{}, false
}
