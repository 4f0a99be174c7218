// Package entity holds the pooled game-state records the dispatch router
// and streamer act on: players, vehicles, objects, pickups, actors, text
// labels, text draws, checkpoints, menus and gang zones. State mutation is
// concentrated here so replication hooks and invariant enforcement (health
// clamping, trailer symmetry, ammo non-negativity) happen in one place
// instead of at every RPC handler call site, generalizing the single
// source/server/player.go Player struct into one pool-backed type per
// streamed entity class.
package entity

import (
	"net"
	"time"

	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
	"github.com/ventosilenzioso/samp-server-go/internal/pool"
)

const MaxPlayers = 1000

type PlayerState uint8

const (
	PlayerStateNone PlayerState = iota
	PlayerStateConnecting
	PlayerStateClassSelection
	PlayerStateSpawned
	PlayerStateOnFoot
	PlayerStateDriver
	PlayerStatePassenger
	PlayerStateExitVehicle
	PlayerStateEnterVehicleDriver
	PlayerStateEnterVehiclePassenger
	PlayerStateSpectating
	PlayerStateWasted
	PlayerStateKicked
)

// Player mirrors source/server/player.go's field set, expanded with the
// full state machine and replication data the wire protocol carries.
type Player struct {
	ID       int
	Name     string
	Addr     *net.UDPAddr
	IsNPC    bool
	Connected bool
	LastPing time.Time
	State    PlayerState

	Pos      bitstream.Vec3
	Angle    float32
	Velocity bitstream.Vec3
	Health   float32
	Armour   float32
	Skin     uint32
	Interior uint8
	VirtualWorld uint32
	Team     uint8
	Colour   uint32
	FightingStyle uint8
	SpecialAction uint32
	WantedLevel   uint32
	DrunkLevel    uint32

	VehicleID int // -1 when on foot
	SeatID    uint8

	ArmedWeapon uint8
	Weapons     [13]WeaponSlot

	Controllable bool
}

type WeaponSlot struct {
	WeaponID uint8
	Ammo     uint16
}

func newPlayer(id int, addr *net.UDPAddr) Player {
	return Player{
		ID: id, Addr: addr, LastPing: time.Now(),
		Health: 100.0, Armour: 0.0, VehicleID: -1,
		Controllable: true,
	}
}

// SetHealth clamps to [0, 100], the invariant spec.md's entity layer
// requires the codec itself to stay silent about.
func (p *Player) SetHealth(health float32) {
	if health < 0 {
		health = 0
	}
	if health > 100 {
		health = 100
	}
	p.Health = health
}

func (p *Player) SetArmour(armour float32) {
	if armour < 0 {
		armour = 0
	}
	if armour > 100 {
		armour = 100
	}
	p.Armour = armour
}

func (p *Player) IsAlive() bool { return p.Health > 0 }

// GiveWeapon adds ammo to an existing slot of the same weapon, or claims
// the first empty slot. The slot chosen does not depend on the weapon ID
// (there is no per-weapon slot table); if every slot is taken, nothing
// changes.
func (p *Player) GiveWeapon(weaponID uint8, ammo uint32) {
	for i := range p.Weapons {
		if p.Weapons[i].WeaponID == weaponID {
			p.addAmmo(i, ammo)
			return
		}
	}
	for i := range p.Weapons {
		if p.Weapons[i].WeaponID == 0 {
			p.Weapons[i].WeaponID = weaponID
			p.addAmmo(i, ammo)
			return
		}
	}
}

func (p *Player) addAmmo(slot int, ammo uint32) {
	total := uint32(p.Weapons[slot].Ammo) + ammo
	if total > 0xFFFF {
		total = 0xFFFF
	}
	p.Weapons[slot].Ammo = uint16(total)
}

// SetAmmo never goes negative: the wire field is unsigned, but handler
// code computing deltas (e.g. after a shot) must clamp before calling in.
func (p *Player) SetAmmo(weaponID uint8, ammo uint16) {
	for i := range p.Weapons {
		if p.Weapons[i].WeaponID == weaponID {
			p.Weapons[i].Ammo = ammo
			return
		}
	}
}

func (p *Player) ResetWeapons() {
	p.Weapons = [13]WeaponSlot{}
	p.ArmedWeapon = 0
}

// Players is the fixed-capacity pool every player-facing operation goes
// through; slot index IS the player ID on the wire, per spec.md §3.
type Players struct {
	pool *pool.Pool[Player]
}

func NewPlayers() *Players {
	return &Players{pool: pool.New[Player](MaxPlayers)}
}

func (ps *Players) Connect(addr *net.UDPAddr, isNPC bool) (int, bool) {
	return ps.pool.ClaimWith(func(id int) Player {
		p := newPlayer(id, addr)
		p.IsNPC = isNPC
		p.Connected = true
		p.State = PlayerStateConnecting
		return p
	})
}

func (ps *Players) Disconnect(id int) {
	ps.pool.Release(id)
}

func (ps *Players) Get(id int) *Player {
	return ps.pool.Get(id)
}

func (ps *Players) Valid(id int) bool {
	return ps.pool.Valid(id)
}

func (ps *Players) Online() []int {
	return ps.pool.Entries()
}

func (ps *Players) Count() int {
	return ps.pool.Count()
}
