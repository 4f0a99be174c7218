package entity

import (
	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
	"github.com/ventosilenzioso/samp-server-go/internal/pool"
)

const (
	MaxObjects    = 1000
	MaxPickups    = 4096
	MaxActors     = 1000
	MaxTextLabels = 1024
	MaxTextDraws  = 2048
	MaxCheckpoints = MaxPlayers // one active checkpoint per player
	MaxMenus      = 128
	MaxGangZones  = 1024
)

type Object struct {
	ID      int
	ModelID uint32
	Pos     bitstream.Vec3
	Rot     bitstream.Vec3
	DrawDistance float32
	AttachedVehicle int
	AttachedObject  int
	VirtualWorld    uint32
}

type Pickup struct {
	ID      int
	ModelID uint32
	Type    uint32
	Pos     bitstream.Vec3
	VirtualWorld uint32
}

type Actor struct {
	ID      int
	ModelID uint32
	Pos     bitstream.Vec3
	Angle   float32
	Health  float32
	Invulnerable bool
	VirtualWorld uint32
}

type TextLabel struct {
	ID    int
	Text  string
	Colour uint32
	Pos   bitstream.Vec3
	DrawDistance float32
	AttachedPlayer, AttachedVehicle int
	TestLOS bool
	VirtualWorld uint32
}

type TextDraw struct {
	ID   int
	Text string
	Pos  bitstream.Vec2
}

// Checkpoint is keyed by player ID since SA-MP allows exactly one active
// standard checkpoint and one active race checkpoint per player at a time.
type Checkpoint struct {
	PlayerID int
	Pos      bitstream.Vec3
	Radius   float32
	Active   bool
}

type Menu struct {
	ID    int
	Title string
	TwoColumns bool
	Items [12][2]string
	Enabled [12]bool
}

type GangZone struct {
	ID     int
	MinX, MinY, MaxX, MaxY float32
	Colour uint32
	Flashing bool
}

// Objects, Pickups, Actors, TextLabels, TextDraws, Menus and GangZones are
// thin Pool[T] wrappers: none of them carry an invariant beyond capacity,
// unlike Player/Vehicle.

type Objects struct{ pool *pool.Pool[Object] }

func NewObjects() *Objects { return &Objects{pool: pool.New[Object](MaxObjects)} }
func (o *Objects) Create(obj Object) (int, bool) {
	return o.pool.ClaimWith(func(id int) Object {
		obj.ID = id
		return obj
	})
}
func (o *Objects) Destroy(id int)      { o.pool.Release(id) }
func (o *Objects) Get(id int) *Object  { return o.pool.Get(id) }
func (o *Objects) Entries() []int      { return o.pool.Entries() }

type Pickups struct {
	pool    *pool.Pool[Pickup]
	legacy  *pool.LegacyIDMap
}

func NewPickups() *Pickups {
	return &Pickups{pool: pool.New[Pickup](MaxPickups), legacy: pool.NewLegacyIDMap(MaxPickups)}
}
func (p *Pickups) Create(pk Pickup) (int, bool) {
	id, ok := p.pool.ClaimWith(func(id int) Pickup {
		pk.ID = id
		return pk
	})
	if !ok {
		return 0, false
	}
	legacy := p.legacy.ReserveLegacyID()
	if legacy != -1 {
		p.legacy.Bind(legacy, id)
	}
	return id, true
}
func (p *Pickups) Destroy(id int) {
	if legacy, ok := p.legacy.ToLegacy(id); ok {
		p.legacy.ReleaseLegacyID(legacy)
	}
	p.pool.Release(id)
}
func (p *Pickups) Get(id int) *Pickup       { return p.pool.Get(id) }
func (p *Pickups) ToInternal(legacy int) (int, bool) { return p.legacy.ToInternal(legacy) }
func (p *Pickups) Entries() []int           { return p.pool.Entries() }

type Actors struct{ pool *pool.Pool[Actor] }

func NewActors() *Actors { return &Actors{pool: pool.New[Actor](MaxActors)} }
func (a *Actors) Create(act Actor) (int, bool) {
	return a.pool.ClaimWith(func(id int) Actor {
		act.ID = id
		return act
	})
}
func (a *Actors) Destroy(id int)     { a.pool.Release(id) }
func (a *Actors) Get(id int) *Actor  { return a.pool.Get(id) }
func (a *Actors) Entries() []int     { return a.pool.Entries() }

type TextLabels struct{ pool *pool.Pool[TextLabel] }

func NewTextLabels() *TextLabels { return &TextLabels{pool: pool.New[TextLabel](MaxTextLabels)} }
func (t *TextLabels) Create(tl TextLabel) (int, bool) {
	return t.pool.ClaimWith(func(id int) TextLabel {
		tl.ID = id
		return tl
	})
}
func (t *TextLabels) Destroy(id int)        { t.pool.Release(id) }
func (t *TextLabels) Get(id int) *TextLabel { return t.pool.Get(id) }
func (t *TextLabels) Entries() []int        { return t.pool.Entries() }

type TextDraws struct{ pool *pool.Pool[TextDraw] }

func NewTextDraws() *TextDraws { return &TextDraws{pool: pool.New[TextDraw](MaxTextDraws)} }
func (t *TextDraws) Create(td TextDraw) (int, bool) {
	return t.pool.ClaimWith(func(id int) TextDraw {
		td.ID = id
		return td
	})
}
func (t *TextDraws) Destroy(id int)        { t.pool.Release(id) }
func (t *TextDraws) Get(id int) *TextDraw  { return t.pool.Get(id) }

type Menus struct{ pool *pool.Pool[Menu] }

func NewMenus() *Menus { return &Menus{pool: pool.New[Menu](MaxMenus)} }
func (m *Menus) Create(menu Menu) (int, bool) {
	return m.pool.ClaimWith(func(id int) Menu {
		menu.ID = id
		return menu
	})
}
func (m *Menus) Destroy(id int)   { m.pool.Release(id) }
func (m *Menus) Get(id int) *Menu { return m.pool.Get(id) }

type GangZones struct {
	pool   *pool.Pool[GangZone]
	legacy *pool.LegacyIDMap
}

func NewGangZones() *GangZones {
	return &GangZones{pool: pool.New[GangZone](MaxGangZones), legacy: pool.NewLegacyIDMap(MaxGangZones)}
}
func (g *GangZones) Create(gz GangZone) (int, bool) {
	id, ok := g.pool.ClaimWith(func(id int) GangZone {
		gz.ID = id
		return gz
	})
	if !ok {
		return 0, false
	}
	legacy := g.legacy.ReserveLegacyID()
	if legacy != -1 {
		g.legacy.Bind(legacy, id)
	}
	return id, true
}
func (g *GangZones) Destroy(id int) {
	if legacy, ok := g.legacy.ToLegacy(id); ok {
		g.legacy.ReleaseLegacyID(legacy)
	}
	g.pool.Release(id)
}
func (g *GangZones) Get(id int) *GangZone           { return g.pool.Get(id) }
func (g *GangZones) ToInternal(legacy int) (int, bool) { return g.legacy.ToInternal(legacy) }

// Checkpoints is keyed directly by player ID (array, not a Pool: the key
// space is already the player's own slot, not a separately-allocated one).
type Checkpoints struct {
	slots []Checkpoint
}

func NewCheckpoints() *Checkpoints {
	return &Checkpoints{slots: make([]Checkpoint, MaxCheckpoints)}
}
func (c *Checkpoints) Set(playerID int, pos bitstream.Vec3, radius float32) {
	c.slots[playerID] = Checkpoint{PlayerID: playerID, Pos: pos, Radius: radius, Active: true}
}
func (c *Checkpoints) Clear(playerID int) {
	c.slots[playerID] = Checkpoint{PlayerID: playerID}
}
func (c *Checkpoints) Get(playerID int) Checkpoint {
	return c.slots[playerID]
}
