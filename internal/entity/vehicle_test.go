package entity

import (
	"testing"

	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
)

func TestVehicleSetHealthClampsAtZeroOnly(t *testing.T) {
	var v Vehicle
	v.SetHealth(-100)
	if v.Health != 0 {
		t.Fatalf("expected clamp to 0, got %v", v.Health)
	}
	v.SetHealth(5000)
	if v.Health != 5000 {
		t.Fatalf("expected no upper clamp, got %v", v.Health)
	}
}

func TestVehicleIsOccupied(t *testing.T) {
	v := newVehicle(0)
	if v.IsOccupied() {
		t.Fatal("expected unoccupied on creation")
	}
	v.DriverID = 3
	if !v.IsOccupied() {
		t.Fatal("expected occupied with driver set")
	}
	v.DriverID = -1
	v.Passengers[9] = 1
	if !v.IsOccupied() {
		t.Fatal("expected occupied with a passenger")
	}
}

func TestVehiclesCreateInitializesNoTrailerOrTow(t *testing.T) {
	vs := NewVehicles()
	id, ok := vs.Create(400, bitstream.Vec3{}, 0, 0, 0)
	if !ok {
		t.Fatal("expected successful create")
	}
	v := vs.Get(id)
	if v.TrailerID != -1 || v.TowedByID != -1 || v.DriverID != -1 {
		t.Fatalf("expected -1 sentinels, got %+v", v)
	}
}

func TestVehiclesAttachSetsBothSidesSymmetrically(t *testing.T) {
	vs := NewVehicles()
	car, _ := vs.Create(400, bitstream.Vec3{}, 0, 0, 0)
	trailer, _ := vs.Create(435, bitstream.Vec3{}, 0, 0, 0)
	if !vs.Attach(car, trailer) {
		t.Fatal("expected attach to succeed")
	}
	if vs.Get(car).TrailerID != trailer {
		t.Fatalf("expected car.TrailerID == %d, got %d", trailer, vs.Get(car).TrailerID)
	}
	if vs.Get(trailer).TowedByID != car {
		t.Fatalf("expected trailer.TowedByID == %d, got %d", car, vs.Get(trailer).TowedByID)
	}
}

func TestVehiclesAttachReplacesExistingTrailer(t *testing.T) {
	vs := NewVehicles()
	car, _ := vs.Create(400, bitstream.Vec3{}, 0, 0, 0)
	trailerA, _ := vs.Create(435, bitstream.Vec3{}, 0, 0, 0)
	trailerB, _ := vs.Create(450, bitstream.Vec3{}, 0, 0, 0)

	vs.Attach(car, trailerA)
	vs.Attach(car, trailerB)

	if vs.Get(car).TrailerID != trailerB {
		t.Fatalf("expected car now towing trailerB, got %d", vs.Get(car).TrailerID)
	}
	if vs.Get(trailerA).TowedByID != -1 {
		t.Fatalf("expected trailerA released, got TowedByID=%d", vs.Get(trailerA).TowedByID)
	}
	if vs.Get(trailerB).TowedByID != car {
		t.Fatalf("expected trailerB.TowedByID == car, got %d", vs.Get(trailerB).TowedByID)
	}
}

func TestVehiclesDetachClearsBothSides(t *testing.T) {
	vs := NewVehicles()
	car, _ := vs.Create(400, bitstream.Vec3{}, 0, 0, 0)
	trailer, _ := vs.Create(435, bitstream.Vec3{}, 0, 0, 0)
	vs.Attach(car, trailer)
	vs.Detach(car)
	if vs.Get(car).TrailerID != -1 || vs.Get(trailer).TowedByID != -1 {
		t.Fatalf("expected both sides cleared, car=%+v trailer=%+v", vs.Get(car), vs.Get(trailer))
	}
}

func TestVehiclesDestroyDetachesTrailerFirst(t *testing.T) {
	vs := NewVehicles()
	car, _ := vs.Create(400, bitstream.Vec3{}, 0, 0, 0)
	trailer, _ := vs.Create(435, bitstream.Vec3{}, 0, 0, 0)
	vs.Attach(car, trailer)
	vs.Destroy(car)
	if vs.Get(trailer).TowedByID != -1 {
		t.Fatalf("expected trailer's tow pointer cleared after car destroyed, got %+v", vs.Get(trailer))
	}
	if vs.Valid(car) {
		t.Fatal("expected car slot freed")
	}
}
