package entity

import (
	"testing"

	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
)

func TestPickupsLegacyIDRoundTrip(t *testing.T) {
	ps := NewPickups()
	id, ok := ps.Create(Pickup{ModelID: 1254, Type: 1})
	if !ok {
		t.Fatal("expected create to succeed")
	}
	if ps.Get(id) == nil {
		t.Fatal("expected pickup to be retrievable")
	}
	legacy, ok := ps.legacy.ToLegacy(id)
	if !ok {
		t.Fatal("expected legacy binding on create")
	}
	if back, ok := ps.ToInternal(legacy); !ok || back != id {
		t.Fatalf("expected legacy %d to map back to %d, got %d (ok=%v)", legacy, id, back, ok)
	}
}

func TestPickupsDestroyFreesLegacyID(t *testing.T) {
	ps := NewPickups()
	id, _ := ps.Create(Pickup{ModelID: 1254})
	legacy, ok := ps.legacy.ToLegacy(id)
	if !ok {
		t.Fatal("expected legacy binding on create")
	}
	ps.Destroy(id)
	if _, ok := ps.legacy.ToInternal(legacy); ok {
		t.Fatal("expected legacy binding released on destroy")
	}
}

func TestGangZonesLegacyIDRoundTrip(t *testing.T) {
	gz := NewGangZones()
	id, ok := gz.Create(GangZone{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100})
	if !ok {
		t.Fatal("expected create to succeed")
	}
	legacy, ok := gz.ToInternal(0)
	_ = legacy
	if !ok {
		t.Fatal("expected legacy 0 bound to first created zone")
	}
	if legacy != id {
		t.Fatalf("expected legacy 0 to map to internal id %d, got %d", id, legacy)
	}
}

func TestCheckpointsSetAndClearArePerPlayer(t *testing.T) {
	cps := NewCheckpoints()
	cps.Set(5, bitstream.Vec3{X: 1, Y: 2, Z: 3}, 5.0)
	cp := cps.Get(5)
	if !cp.Active || cp.Radius != 5.0 {
		t.Fatalf("expected active checkpoint, got %+v", cp)
	}
	cps.Clear(5)
	if cps.Get(5).Active {
		t.Fatal("expected checkpoint cleared")
	}
	if cps.Get(6).Active {
		t.Fatal("expected other player's checkpoint untouched")
	}
}

func TestObjectsCreateDestroy(t *testing.T) {
	objs := NewObjects()
	id, ok := objs.Create(Object{ModelID: 1337})
	if !ok {
		t.Fatal("expected create to succeed")
	}
	objs.Destroy(id)
	if objs.Get(id) != nil {
		t.Fatal("expected nil after destroy")
	}
}
