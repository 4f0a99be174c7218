package entity

import (
	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
	"github.com/ventosilenzioso/samp-server-go/internal/pool"
)

const MaxVehicles = 2000

type Vehicle struct {
	ID       int
	ModelID  uint32
	Pos      bitstream.Vec3
	ZAngle   float32
	Rotation bitstream.Quat
	Velocity bitstream.Vec3
	Colour1, Colour2 uint8
	Health   float32
	Interior uint8
	VirtualWorld uint32
	Plate    string
	Doorslocked bool
	Objective   bool

	DriverID   int // -1 when unoccupied
	Passengers map[int]uint8 // playerID -> seat

	TrailerID int // -1 when none attached
	TowedByID int // -1 unless this vehicle is itself a trailer
}

func newVehicle(id int) Vehicle {
	return Vehicle{
		ID: id, Health: 1000, DriverID: -1, TrailerID: -1, TowedByID: -1,
		Passengers: make(map[int]uint8),
	}
}

func (v *Vehicle) SetHealth(health float32) {
	if health < 0 {
		health = 0
	}
	v.Health = health
}

func (v *Vehicle) IsOccupied() bool {
	return v.DriverID != -1 || len(v.Passengers) > 0
}

// Vehicles enforces the one-trailer-per-vehicle symmetry invariant:
// attaching sets both sides' pointers, detaching clears both.
type Vehicles struct {
	pool *pool.Pool[Vehicle]
}

func NewVehicles() *Vehicles {
	return &Vehicles{pool: pool.New[Vehicle](MaxVehicles)}
}

func (vs *Vehicles) Create(modelID uint32, pos bitstream.Vec3, zAngle float32, colour1, colour2 uint8) (int, bool) {
	return vs.pool.ClaimWith(func(id int) Vehicle {
		v := newVehicle(id)
		v.ModelID, v.Pos, v.ZAngle, v.Colour1, v.Colour2 = modelID, pos, zAngle, colour1, colour2
		return v
	})
}

func (vs *Vehicles) Destroy(id int) {
	if v := vs.pool.Get(id); v != nil {
		if v.TrailerID != -1 {
			vs.Detach(id)
		}
		if v.TowedByID != -1 {
			vs.Detach(v.TowedByID)
		}
	}
	vs.pool.Release(id)
}

func (vs *Vehicles) Get(id int) *Vehicle { return vs.pool.Get(id) }
func (vs *Vehicles) Valid(id int) bool   { return vs.pool.Valid(id) }
func (vs *Vehicles) Entries() []int      { return vs.pool.Entries() }
func (vs *Vehicles) Count() int          { return vs.pool.Count() }

// Attach links trailer to vehicle symmetrically, detaching any prior
// trailer/tow relationship those two vehicles held first.
func (vs *Vehicles) Attach(vehicleID, trailerID int) bool {
	vehicle := vs.pool.Get(vehicleID)
	trailer := vs.pool.Get(trailerID)
	if vehicle == nil || trailer == nil {
		return false
	}
	if vehicle.TrailerID != -1 {
		vs.Detach(vehicleID)
	}
	if trailer.TowedByID != -1 {
		vs.Detach(trailer.TowedByID)
	}
	vehicle.TrailerID = trailerID
	trailer.TowedByID = vehicleID
	return true
}

func (vs *Vehicles) Detach(vehicleID int) {
	vehicle := vs.pool.Get(vehicleID)
	if vehicle == nil || vehicle.TrailerID == -1 {
		return
	}
	if trailer := vs.pool.Get(vehicle.TrailerID); trailer != nil {
		trailer.TowedByID = -1
	}
	vehicle.TrailerID = -1
}
