package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

// PlayerConnect is the Connection-category handshake payload the transport
// hands up as peer_connect(peer, bs) per spec.md §6. Field order grounded
// on the open.mp NetCode/core.hpp connect handler and the scenario in
// spec.md §8.1.
type PlayerConnect struct {
	Version     uint32
	Modded      uint8
	Name        string
	Challenge   uint32
	Key         string
	VersionStr  string
}

func (m *PlayerConnect) MessageID() uint8            { return IDPlayerConnect }
func (m *PlayerConnect) MessageCategory() Category   { return CategoryConnection }
func (m *PlayerConnect) MessageChannel() Channel     { return ChannelInternal }

func (m *PlayerConnect) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Version, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Modded, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Name, err = readStr8(bs); err != nil {
		return err
	}
	if m.Challenge, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Key, err = readStr8(bs); err != nil {
		return err
	}
	if m.VersionStr, err = readStr8(bs); err != nil {
		return err
	}
	return nil
}

func (m *PlayerConnect) Write(bs *bitstream.BitStream) {
	bs.WriteUint32(m.Version)
	bs.WriteUint8(m.Modded)
	writeStr8(bs, m.Name)
	bs.WriteUint32(m.Challenge)
	writeStr8(bs, m.Key)
	writeStr8(bs, m.VersionStr)
}

// NPCConnect mirrors PlayerConnect for scripted NPC peers.
type NPCConnect struct {
	Version   uint32
	Name      string
	Challenge uint32
}

func (m *NPCConnect) MessageID() uint8          { return IDNPCConnect }
func (m *NPCConnect) MessageCategory() Category { return CategoryConnection }
func (m *NPCConnect) MessageChannel() Channel   { return ChannelInternal }
func (m *NPCConnect) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Version, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Name, err = readStr8(bs); err != nil {
		return err
	}
	m.Challenge, err = bs.ReadUint32()
	return err
}
func (m *NPCConnect) Write(bs *bitstream.BitStream) {
	bs.WriteUint32(m.Version)
	writeStr8(bs, m.Name)
	bs.WriteUint32(m.Challenge)
}

// PlayerJoin is broadcast to every connected peer when a new player
// finishes connecting (spec.md §8.1).
type PlayerJoin struct {
	PlayerID uint16
	Colour   uint32
	IsNPC    bool
	Name     string
}

func (m *PlayerJoin) MessageID() uint8          { return IDPlayerJoin }
func (m *PlayerJoin) MessageCategory() Category { return CategoryRPC }
func (m *PlayerJoin) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerJoin) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Colour, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.IsNPC, err = readBoolByte(bs); err != nil {
		return err
	}
	m.Name, err = readStr8(bs)
	return err
}
func (m *PlayerJoin) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	bs.WriteUint32(m.Colour)
	writeBoolByte(bs, m.IsNPC)
	writeStr8(bs, m.Name)
}

// PlayerQuit notifies peers a player disconnected.
type PlayerQuit struct {
	PlayerID uint16
	Reason   uint8
}

func (m *PlayerQuit) MessageID() uint8          { return IDPlayerQuit }
func (m *PlayerQuit) MessageCategory() Category { return CategoryRPC }
func (m *PlayerQuit) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerQuit) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Reason, err = bs.ReadUint8()
	return err
}
func (m *PlayerQuit) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	bs.WriteUint8(m.Reason)
}

// PlayerInit is the large one-shot configuration snapshot sent to a
// freshly joined player (generalized InitGame RPC from
// source/protocol/rpc.go's BuildInitGameRPC, "CRITICAL: must be sent
// before SetSpawnInfo" preserved as the tick-driver ordering contract, not
// a comment here).
type PlayerInit struct {
	ZoneNames                    bool
	UseCJWalk                    bool
	AllowWeapons                 bool
	LimitGlobalChatRadius        bool
	GlobalChatRadius             float32
	StuntBonus                   bool
	NameTagDrawDistance          float32
	DisableEnterExits            bool
	NameTagLOS                   bool
	ManualVehicleEngineAndLights bool
	SpawnsAvailable              uint32
	PlayerID                     uint16
	ShowNameTags                 bool
	ShowPlayerMarkers            uint32
	WorldTimeHour                uint8
	Weather                      uint8
	Gravity                      float32
	LanMode                      bool
	DeathDropMoney               int32
	Instagib                     bool
	OnFootRate                   uint32
	InCarRate                    uint32
	WeaponRate                   uint32
	Multiplier                   uint32
	LagCompensation              uint32
	Hostname                     string
	VehicleFriendlyFire          bool
	UsePlayerPedAnims            bool
	WorldBoundsMinX              float32
	WorldBoundsMinY              float32
	WorldBoundsMaxX              float32
	WorldBoundsMaxY              float32
	GamemodeText                 string
	MapName                      string
}

func (m *PlayerInit) MessageID() uint8          { return IDPlayerInit }
func (m *PlayerInit) MessageCategory() Category { return CategoryRPC }
func (m *PlayerInit) MessageChannel() Channel   { return ChannelInternal }

func (m *PlayerInit) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.ZoneNames)
	writeBoolByte(bs, m.UseCJWalk)
	writeBoolByte(bs, m.AllowWeapons)
	writeBoolByte(bs, m.LimitGlobalChatRadius)
	bs.WriteFloat(m.GlobalChatRadius)
	writeBoolByte(bs, m.StuntBonus)
	bs.WriteFloat(m.NameTagDrawDistance)
	writeBoolByte(bs, m.DisableEnterExits)
	writeBoolByte(bs, m.NameTagLOS)
	writeBoolByte(bs, m.ManualVehicleEngineAndLights)
	bs.WriteUint32(m.SpawnsAvailable)
	bs.WriteUint16(m.PlayerID)
	writeBoolByte(bs, m.ShowNameTags)
	bs.WriteUint32(m.ShowPlayerMarkers)
	bs.WriteUint8(m.WorldTimeHour)
	bs.WriteUint8(m.Weather)
	bs.WriteFloat(m.Gravity)
	writeBoolByte(bs, m.LanMode)
	bs.WriteInt32(m.DeathDropMoney)
	writeBoolByte(bs, m.Instagib)
	bs.WriteUint32(m.OnFootRate)
	bs.WriteUint32(m.InCarRate)
	bs.WriteUint32(m.WeaponRate)
	bs.WriteUint32(m.Multiplier)
	bs.WriteUint32(m.LagCompensation)
	writeStr32(bs, m.Hostname)
	writeBoolByte(bs, m.VehicleFriendlyFire)
	writeBoolByte(bs, m.UsePlayerPedAnims)
	bs.WriteFloat(m.WorldBoundsMinX)
	bs.WriteFloat(m.WorldBoundsMinY)
	bs.WriteFloat(m.WorldBoundsMaxX)
	bs.WriteFloat(m.WorldBoundsMaxY)
	writeStr32(bs, m.GamemodeText)
	writeStr32(bs, m.MapName)
}

func (m *PlayerInit) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ZoneNames, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.UseCJWalk, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.AllowWeapons, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.LimitGlobalChatRadius, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.GlobalChatRadius, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.StuntBonus, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.NameTagDrawDistance, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.DisableEnterExits, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.NameTagLOS, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.ManualVehicleEngineAndLights, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.SpawnsAvailable, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.ShowNameTags, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.ShowPlayerMarkers, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.WorldTimeHour, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Weather, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Gravity, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.LanMode, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.DeathDropMoney, err = bs.ReadInt32(); err != nil {
		return err
	}
	if m.Instagib, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.OnFootRate, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.InCarRate, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.WeaponRate, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Multiplier, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.LagCompensation, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Hostname, err = readStr32(bs); err != nil {
		return err
	}
	if m.VehicleFriendlyFire, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.UsePlayerPedAnims, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.WorldBoundsMinX, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.WorldBoundsMinY, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.WorldBoundsMaxX, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.WorldBoundsMaxY, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.GamemodeText, err = readStr32(bs); err != nil {
		return err
	}
	m.MapName, err = readStr32(bs)
	return err
}

// PlayerSpawn(52) notifies streamed peers a player has (re)spawned.
type PlayerSpawn struct{ PlayerID uint16 }

func (m *PlayerSpawn) MessageID() uint8          { return IDPlayerSpawn }
func (m *PlayerSpawn) MessageCategory() Category { return CategoryRPC }
func (m *PlayerSpawn) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerSpawn) Read(bs *bitstream.BitStream) error {
	var err error
	m.PlayerID, err = bs.ReadUint16()
	return err
}
func (m *PlayerSpawn) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.PlayerID) }

// PlayerRequestClass is sent client->server while cycling class selection.
type PlayerRequestClass struct{ ClassID uint16 }

func (m *PlayerRequestClass) MessageID() uint8          { return IDPlayerRequestClass }
func (m *PlayerRequestClass) MessageCategory() Category { return CategoryRPC }
func (m *PlayerRequestClass) MessageChannel() Channel   { return ChannelSyncRPC }
func (m *PlayerRequestClass) Read(bs *bitstream.BitStream) error {
	var err error
	m.ClassID, err = bs.ReadUint16()
	return err
}
func (m *PlayerRequestClass) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.ClassID) }

// PlayerRequestClassResponse is the server->client reply sharing RPC 128.
type PlayerRequestClassResponse struct {
	Selectable bool
	Team       uint8
	Model      int32
	Spawn      bitstream.Vec3
	ZAngle     float32
	Weapons    [3]int32
	Ammos      [3]int32
}

func (m *PlayerRequestClassResponse) MessageID() uint8          { return IDPlayerRequestClass }
func (m *PlayerRequestClassResponse) MessageCategory() Category { return CategoryRPC }
func (m *PlayerRequestClassResponse) MessageChannel() Channel   { return ChannelSyncRPC }
func (m *PlayerRequestClassResponse) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.Selectable)
	bs.WriteUint8(m.Team)
	bs.WriteInt32(m.Model)
	bs.WriteVec3(m.Spawn)
	bs.WriteFloat(m.ZAngle)
	for _, w := range m.Weapons {
		bs.WriteInt32(w)
	}
	for _, a := range m.Ammos {
		bs.WriteInt32(a)
	}
}
func (m *PlayerRequestClassResponse) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Selectable, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.Team, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Model, err = bs.ReadInt32(); err != nil {
		return err
	}
	if m.Spawn, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.ZAngle, err = bs.ReadFloat(); err != nil {
		return err
	}
	for i := range m.Weapons {
		if m.Weapons[i], err = bs.ReadInt32(); err != nil {
			return err
		}
	}
	for i := range m.Ammos {
		if m.Ammos[i], err = bs.ReadInt32(); err != nil {
			return err
		}
	}
	return nil
}

// PlayerRequestSpawn is sent once class selection is satisfied; accepted
// only in the class-selection state (spec.md "State machines worth naming").
type PlayerRequestSpawn struct{}

func (m *PlayerRequestSpawn) MessageID() uint8            { return IDPlayerRequestSpawn }
func (m *PlayerRequestSpawn) MessageCategory() Category   { return CategoryRPC }
func (m *PlayerRequestSpawn) MessageChannel() Channel     { return ChannelSyncRPC }
func (m *PlayerRequestSpawn) Read(bs *bitstream.BitStream) error  { return nil }
func (m *PlayerRequestSpawn) Write(bs *bitstream.BitStream)       {}

// PlayerRequestSpawnResponse shares RPC 129 with PlayerRequestSpawn.
type PlayerRequestSpawnResponse struct{ Allow bool }

func (m *PlayerRequestSpawnResponse) MessageID() uint8          { return IDPlayerRequestSpawn }
func (m *PlayerRequestSpawnResponse) MessageCategory() Category { return CategoryRPC }
func (m *PlayerRequestSpawnResponse) MessageChannel() Channel   { return ChannelSyncRPC }
func (m *PlayerRequestSpawnResponse) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.Allow)
}
func (m *PlayerRequestSpawnResponse) Read(bs *bitstream.BitStream) error {
	var err error
	m.Allow, err = readBoolByte(bs)
	return err
}

// ImmediatelySpawnPlayer shares RPC 129's wire ID from the opposite
// direction used by the spawn-skip path (no class selection UI).
type ImmediatelySpawnPlayer struct{}

func (m *ImmediatelySpawnPlayer) MessageID() uint8          { return IDImmediatelySpawnPlayer }
func (m *ImmediatelySpawnPlayer) MessageCategory() Category { return CategoryRPC }
func (m *ImmediatelySpawnPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *ImmediatelySpawnPlayer) Read(bs *bitstream.BitStream) error { return nil }
func (m *ImmediatelySpawnPlayer) Write(bs *bitstream.BitStream)      {}

// ClientCheck requests an anti-cheat memory scan from the client.
type ClientCheck struct {
	ActionType uint8
	Address    uint32
	Offset     int32
	Count      uint8
}

func (m *ClientCheck) MessageID() uint8          { return IDClientCheck }
func (m *ClientCheck) MessageCategory() Category { return CategoryRPC }
func (m *ClientCheck) MessageChannel() Channel   { return ChannelInternal }
func (m *ClientCheck) Write(bs *bitstream.BitStream) {
	bs.WriteUint8(m.ActionType)
	bs.WriteUint32(m.Address)
	bs.WriteInt32(m.Offset)
	bs.WriteUint8(m.Count)
}
func (m *ClientCheck) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ActionType, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Address, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Offset, err = bs.ReadInt32(); err != nil {
		return err
	}
	m.Count, err = bs.ReadUint8()
	return err
}

// PlayerClose closes a peer after kick/ban (spec.md §7 "User-visible
// failures").
type PlayerClose struct{ Reason uint8 }

func (m *PlayerClose) MessageID() uint8          { return IDPlayerClose }
func (m *PlayerClose) MessageCategory() Category { return CategoryRPC }
func (m *PlayerClose) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerClose) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.Reason) }
func (m *PlayerClose) Read(bs *bitstream.BitStream) error {
	var err error
	m.Reason, err = bs.ReadUint8()
	return err
}

func registerConnection(c *Catalog) {
	c.Register(CategoryConnection, IDPlayerConnect, func() Message { return &PlayerConnect{} })
	c.Register(CategoryConnection, IDNPCConnect, func() Message { return &NPCConnect{} })
	c.Register(CategoryRPC, IDPlayerJoin, func() Message { return &PlayerJoin{} })
	c.Register(CategoryRPC, IDPlayerQuit, func() Message { return &PlayerQuit{} })
	c.Register(CategoryRPC, IDPlayerInit, func() Message { return &PlayerInit{} })
	c.Register(CategoryRPC, IDPlayerSpawn, func() Message { return &PlayerSpawn{} })
	c.Register(CategoryRPC, IDClientCheck, func() Message { return &ClientCheck{} })
	c.Register(CategoryRPC, IDPlayerClose, func() Message { return &PlayerClose{} })
	// RPC 128/129 are direction-overloaded; the server-side factory
	// defaults to the inbound (client->server) shape, matching how the
	// dispatch router reads inbound traffic. Outbound construction uses
	// the *Response/Immediately types directly, not the catalog.
	c.Register(CategoryRPC, IDPlayerRequestClass, func() Message { return &PlayerRequestClass{} })
	c.Register(CategoryRPC, IDPlayerRequestSpawn, func() Message { return &PlayerRequestSpawn{} })
}
