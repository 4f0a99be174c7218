package protocol

import (
	"testing"

	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
)

func TestCatalogHasEveryRegisteredID(t *testing.T) {
	c := NewCatalog()
	if c.Len() == 0 {
		t.Fatal("catalog registered nothing")
	}
	cases := []struct {
		category Category
		id       uint8
	}{
		{CategoryConnection, IDPlayerConnect},
		{CategoryRPC, IDPlayerJoin},
		{CategoryRPC, IDPlayerInit},
		{CategoryRPC, IDSetPlayerHealth},
		{CategoryRPC, IDGivePlayerWeapon},
		{CategoryRPC, IDShowDialog},
		{CategoryRPC, IDOnPlayerDialogResponse},
		{CategoryPacket, IDPlayerFootSync},
		{CategoryPacket, IDPlayerVehicleSync},
		{CategoryRPC, IDPlayerRconCommand},
	}
	for _, tc := range cases {
		if !c.Has(tc.category, tc.id) {
			t.Errorf("catalog missing (%v, %d)", tc.category, tc.id)
		}
	}
}

func TestCatalogUnknownIDFails(t *testing.T) {
	c := NewCatalog()
	if _, ok := c.New(CategoryRPC, 250); ok {
		t.Fatal("expected unknown ID to be absent from catalog")
	}
}

func TestPlayerConnectRoundTrip(t *testing.T) {
	in := &PlayerConnect{Version: 37, Modded: 0, Name: "Driver", Challenge: 0xDEAD, Key: "k", VersionStr: "0.3.7-R2"}
	bs := bitstream.NewEmpty()
	in.Write(bs)
	out := &PlayerConnect{}
	rbs := bitstream.New(bs.Bytes())
	if err := out.Read(rbs); err != nil {
		t.Fatalf("read: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestPlayerInitRoundTrip(t *testing.T) {
	in := &PlayerInit{
		ZoneNames: true, AllowWeapons: true, GlobalChatRadius: 300,
		SpawnsAvailable: 4, PlayerID: 7, ShowPlayerMarkers: 1,
		WorldTimeHour: 12, Weather: 10, Gravity: 0.008, Hostname: "Test Server",
		GamemodeText: "Freeroam", MapName: "San Andreas",
		WorldBoundsMaxX: 3000, WorldBoundsMinX: -3000,
	}
	bs := bitstream.NewEmpty()
	in.Write(bs)
	out := &PlayerInit{}
	if err := out.Read(bitstream.New(bs.Bytes())); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Hostname != in.Hostname || out.PlayerID != in.PlayerID || out.Gravity != in.Gravity {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestPlayerFootSyncRoundTrip(t *testing.T) {
	in := &PlayerFootSync{
		Keys:     1 << 3,
		Position: bitstream.Vec3{X: 10, Y: -20, Z: 3.5},
		Rotation: bitstream.Quat{X: 0, Y: 0, Z: 0, W: 1},
		HealthArmour: bitstream.Vec2{X: 100, Y: 0},
		WeaponID: 24,
		Velocity: bitstream.Vec3{X: 1.5, Y: 0, Z: 0},
		AnimationID: 1,
	}
	bs := bitstream.NewEmpty()
	in.Write(bs)
	out := &PlayerFootSync{}
	if err := out.Read(bitstream.New(bs.Bytes())); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Keys != in.Keys || out.WeaponID != in.WeaponID || out.AnimationID != in.AnimationID {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
	if abs32(out.Position.X-in.Position.X) > 0.001 {
		t.Fatalf("position mismatch: got %+v want %+v", out.Position, in.Position)
	}
}

func TestPlayerVehicleSyncTrailerFlag(t *testing.T) {
	in := &PlayerVehicleSync{
		VehicleID: 5, Quaternion: bitstream.Quat{W: 1},
		Position: bitstream.Vec3{X: 1, Y: 2, Z: 3},
		VehicleHealth: 1000, HasTrailer: true, TrailerID: 9,
	}
	bs := bitstream.NewEmpty()
	in.Write(bs)
	out := &PlayerVehicleSync{}
	if err := out.Read(bitstream.New(bs.Bytes())); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !out.HasTrailer || out.TrailerID != 9 {
		t.Fatalf("trailer flag lost: %+v", out)
	}

	in2 := &PlayerVehicleSync{VehicleID: 5, Quaternion: bitstream.Quat{W: 1}, HasTrailer: false}
	bs2 := bitstream.NewEmpty()
	in2.Write(bs2)
	out2 := &PlayerVehicleSync{}
	if err := out2.Read(bitstream.New(bs2.Bytes())); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out2.HasTrailer || out2.TrailerID != 0 {
		t.Fatalf("expected no trailer, got %+v", out2)
	}
}

func TestShowDialogRoundTrip(t *testing.T) {
	in := &ShowDialog{DialogID: 1, Style: 0, Caption: "Title", Info: "Body text", Button1: "OK", Button2: "Cancel"}
	bs := bitstream.NewEmpty()
	in.Write(bs)
	out := &ShowDialog{}
	if err := out.Read(bitstream.New(bs.Bytes())); err != nil {
		t.Fatalf("read: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestDirectionOverloadedIDsShareWireID(t *testing.T) {
	var req PlayerRequestClass
	var resp PlayerRequestClassResponse
	if req.MessageID() != resp.MessageID() {
		t.Fatalf("expected shared wire ID, got %d vs %d", req.MessageID(), resp.MessageID())
	}
	var spawn PlayerRequestSpawn
	var immediate ImmediatelySpawnPlayer
	if spawn.MessageID() != immediate.MessageID() {
		t.Fatalf("expected shared wire ID, got %d vs %d", spawn.MessageID(), immediate.MessageID())
	}
}

func TestTruncatedMessageReturnsError(t *testing.T) {
	bs := bitstream.New([]byte{1, 2})
	m := &PlayerInit{}
	if err := m.Read(bs); err == nil {
		t.Fatal("expected truncated read to fail")
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
