package entity

import "testing"

func TestSetHealthClampsToRange(t *testing.T) {
	var p Player
	p.SetHealth(150)
	if p.Health != 100 {
		t.Fatalf("expected clamp to 100, got %v", p.Health)
	}
	p.SetHealth(-10)
	if p.Health != 0 {
		t.Fatalf("expected clamp to 0, got %v", p.Health)
	}
	p.SetHealth(55)
	if p.Health != 55 {
		t.Fatalf("expected 55, got %v", p.Health)
	}
}

func TestSetArmourClampsToRange(t *testing.T) {
	var p Player
	p.SetArmour(1000)
	if p.Armour != 100 {
		t.Fatalf("expected clamp to 100, got %v", p.Armour)
	}
	p.SetArmour(-5)
	if p.Armour != 0 {
		t.Fatalf("expected clamp to 0, got %v", p.Armour)
	}
}

func TestIsAlive(t *testing.T) {
	var p Player
	p.SetHealth(0)
	if p.IsAlive() {
		t.Fatal("expected dead at 0 health")
	}
	p.SetHealth(1)
	if !p.IsAlive() {
		t.Fatal("expected alive at 1 health")
	}
}

func TestGiveWeaponStacksExistingSlot(t *testing.T) {
	var p Player
	p.GiveWeapon(24, 100)
	p.GiveWeapon(24, 50)
	if p.Weapons[0].WeaponID != 24 || p.Weapons[0].Ammo != 150 {
		t.Fatalf("expected stacked ammo 150, got %+v", p.Weapons[0])
	}
}

func TestGiveWeaponAmmoClampsAtUint16Max(t *testing.T) {
	var p Player
	p.GiveWeapon(24, 70000)
	if p.Weapons[0].Ammo != 0xFFFF {
		t.Fatalf("expected clamp to 0xFFFF, got %v", p.Weapons[0].Ammo)
	}
}

func TestGiveWeaponUsesFirstEmptySlotWhenNotAlreadyCarried(t *testing.T) {
	var p Player
	p.GiveWeapon(24, 100)
	p.GiveWeapon(31, 200)
	if p.Weapons[1].WeaponID != 31 || p.Weapons[1].Ammo != 200 {
		t.Fatalf("expected weapon 31 in slot 1, got %+v", p.Weapons[1])
	}
}

func TestResetWeaponsClearsAllSlotsAndArmedWeapon(t *testing.T) {
	var p Player
	p.GiveWeapon(24, 100)
	p.ArmedWeapon = 24
	p.ResetWeapons()
	if p.ArmedWeapon != 0 || p.Weapons[0].WeaponID != 0 {
		t.Fatalf("expected reset state, got armed=%v slot0=%+v", p.ArmedWeapon, p.Weapons[0])
	}
}

func TestPlayersConnectAssignsLowestFreeSlot(t *testing.T) {
	ps := NewPlayers()
	id1, ok := ps.Connect(nil, false)
	if !ok || id1 != 0 {
		t.Fatalf("expected first slot 0, got %v ok=%v", id1, ok)
	}
	id2, ok := ps.Connect(nil, false)
	if !ok || id2 != 1 {
		t.Fatalf("expected second slot 1, got %v ok=%v", id2, ok)
	}
	ps.Disconnect(id1)
	id3, ok := ps.Connect(nil, false)
	if !ok || id3 != 0 {
		t.Fatalf("expected reclaimed slot 0, got %v ok=%v", id3, ok)
	}
}

func TestPlayersConnectInitializesFreshState(t *testing.T) {
	ps := NewPlayers()
	id, _ := ps.Connect(nil, true)
	p := ps.Get(id)
	if p.Health != 100 || p.VehicleID != -1 || !p.Controllable || !p.IsNPC {
		t.Fatalf("unexpected initial state: %+v", p)
	}
}

func TestPlayersDisconnectInvalidatesSlot(t *testing.T) {
	ps := NewPlayers()
	id, _ := ps.Connect(nil, false)
	ps.Disconnect(id)
	if ps.Valid(id) {
		t.Fatal("expected slot invalid after disconnect")
	}
	if ps.Get(id) != nil {
		t.Fatal("expected nil Get after disconnect")
	}
}

func TestPlayersExhaustion(t *testing.T) {
	ps := NewPlayers()
	for i := 0; i < MaxPlayers; i++ {
		if _, ok := ps.Connect(nil, false); !ok {
			t.Fatalf("unexpected exhaustion at %d", i)
		}
	}
	if _, ok := ps.Connect(nil, false); ok {
		t.Fatal("expected pool exhausted at capacity")
	}
}
