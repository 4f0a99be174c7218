package protocol

// Catalog registers a Factory per (Category, ID). The dispatch router uses
// it to allocate a zero-value Message and call Read on an inbound
// bitstream; handlers use it (indirectly, through typed constructors) to
// build outbound messages.
type Catalog struct {
	factories map[Key]Factory
}

// NewCatalog returns a Catalog pre-populated with every message type this
// package defines (each per-topic file supplies its own register* function).
func NewCatalog() *Catalog {
	c := &Catalog{factories: make(map[Key]Factory)}
	registerConnection(c)
	registerMovement(c)
	registerCombat(c)
	registerCamera(c)
	registerChat(c)
	registerWorld(c)
	registerStreaming(c)
	registerVehicle(c)
	registerObject(c)
	registerActor(c)
	registerPickup(c)
	registerTextDraw(c)
	registerTextLabel(c)
	registerCheckpoint(c)
	registerDialog(c)
	registerGangZone(c)
	registerMenu(c)
	registerSync(c)
	registerConsole(c)
	return c
}

// Register adds or replaces the factory for (category, id).
func (c *Catalog) Register(category Category, id uint8, f Factory) {
	c.factories[Key{Category: category, ID: id}] = f
}

// New constructs a zero-value Message for (category, id), or (nil, false)
// if no factory is registered — the Unknown-ID case in spec.md §7.
func (c *Catalog) New(category Category, id uint8) (Message, bool) {
	f, ok := c.factories[Key{Category: category, ID: id}]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Has reports whether (category, id) has a registered factory.
func (c *Catalog) Has(category Category, id uint8) bool {
	_, ok := c.factories[Key{Category: category, ID: id}]
	return ok
}

// Len returns how many (category, id) pairs are registered, for tests and
// startup diagnostics.
func (c *Catalog) Len() int {
	return len(c.factories)
}
