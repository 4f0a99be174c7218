package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

// Movement/state RPCs are server->client one-shot corrections, distinct
// from the per-tick sync packets in sync.go. Field order follows the
// matching SetPlayerXxx wrapper in original_source/SDK/netcode.hpp.

type SetPlayerPosition struct{ Pos bitstream.Vec3 }

func (m *SetPlayerPosition) MessageID() uint8          { return IDSetPlayerPosition }
func (m *SetPlayerPosition) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerPosition) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerPosition) Write(bs *bitstream.BitStream) { bs.WriteVec3(m.Pos) }
func (m *SetPlayerPosition) Read(bs *bitstream.BitStream) error {
	var err error
	m.Pos, err = bs.ReadVec3()
	return err
}

type SetPlayerPositionFindZ struct{ Pos bitstream.Vec2 }

func (m *SetPlayerPositionFindZ) MessageID() uint8          { return IDSetPlayerPositionFindZ }
func (m *SetPlayerPositionFindZ) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerPositionFindZ) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerPositionFindZ) Write(bs *bitstream.BitStream) { bs.WriteVec2(m.Pos) }
func (m *SetPlayerPositionFindZ) Read(bs *bitstream.BitStream) error {
	var err error
	m.Pos, err = bs.ReadVec2()
	return err
}

type SetPlayerFacingAngle struct{ Angle float32 }

func (m *SetPlayerFacingAngle) MessageID() uint8          { return IDSetPlayerFacingAngle }
func (m *SetPlayerFacingAngle) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerFacingAngle) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerFacingAngle) Write(bs *bitstream.BitStream) { bs.WriteFloat(m.Angle) }
func (m *SetPlayerFacingAngle) Read(bs *bitstream.BitStream) error {
	var err error
	m.Angle, err = bs.ReadFloat()
	return err
}

// SetPlayerHealth clamps to [0, 100] at the entity layer, never here: this
// struct only carries the wire value (spec.md's "health/armour clamping"
// invariant is an entity-layer concern, not a codec concern).
type SetPlayerHealth struct{ Health float32 }

func (m *SetPlayerHealth) MessageID() uint8          { return IDSetPlayerHealth }
func (m *SetPlayerHealth) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerHealth) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerHealth) Write(bs *bitstream.BitStream) { bs.WriteFloat(m.Health) }
func (m *SetPlayerHealth) Read(bs *bitstream.BitStream) error {
	var err error
	m.Health, err = bs.ReadFloat()
	return err
}

type SetPlayerArmour struct{ Armour float32 }

func (m *SetPlayerArmour) MessageID() uint8          { return IDSetPlayerArmour }
func (m *SetPlayerArmour) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerArmour) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerArmour) Write(bs *bitstream.BitStream) { bs.WriteFloat(m.Armour) }
func (m *SetPlayerArmour) Read(bs *bitstream.BitStream) error {
	var err error
	m.Armour, err = bs.ReadFloat()
	return err
}

type SetPlayerVelocity struct{ Velocity bitstream.Vec3 }

func (m *SetPlayerVelocity) MessageID() uint8          { return IDSetPlayerVelocity }
func (m *SetPlayerVelocity) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerVelocity) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerVelocity) Write(bs *bitstream.BitStream) { bs.WriteVec3(m.Velocity) }
func (m *SetPlayerVelocity) Read(bs *bitstream.BitStream) error {
	var err error
	m.Velocity, err = bs.ReadVec3()
	return err
}

type SetPlayerGravity struct{ Gravity float32 }

func (m *SetPlayerGravity) MessageID() uint8          { return IDSetPlayerGravity }
func (m *SetPlayerGravity) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerGravity) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerGravity) Write(bs *bitstream.BitStream) { bs.WriteFloat(m.Gravity) }
func (m *SetPlayerGravity) Read(bs *bitstream.BitStream) error {
	var err error
	m.Gravity, err = bs.ReadFloat()
	return err
}

type TogglePlayerControllable struct{ Controllable bool }

func (m *TogglePlayerControllable) MessageID() uint8          { return IDTogglePlayerControllable }
func (m *TogglePlayerControllable) MessageCategory() Category { return CategoryRPC }
func (m *TogglePlayerControllable) MessageChannel() Channel   { return ChannelInternal }
func (m *TogglePlayerControllable) Write(bs *bitstream.BitStream) { writeBoolByte(bs, m.Controllable) }
func (m *TogglePlayerControllable) Read(bs *bitstream.BitStream) error {
	var err error
	m.Controllable, err = readBoolByte(bs)
	return err
}

type SetPlayerInterior struct{ InteriorID uint8 }

func (m *SetPlayerInterior) MessageID() uint8          { return IDSetPlayerInterior }
func (m *SetPlayerInterior) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerInterior) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerInterior) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.InteriorID) }
func (m *SetPlayerInterior) Read(bs *bitstream.BitStream) error {
	var err error
	m.InteriorID, err = bs.ReadUint8()
	return err
}

type SetPlayerVirtualWorld struct{ WorldID uint32 }

func (m *SetPlayerVirtualWorld) MessageID() uint8          { return IDSetPlayerVirtualWorld }
func (m *SetPlayerVirtualWorld) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerVirtualWorld) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerVirtualWorld) Write(bs *bitstream.BitStream) { bs.WriteUint32(m.WorldID) }
func (m *SetPlayerVirtualWorld) Read(bs *bitstream.BitStream) error {
	var err error
	m.WorldID, err = bs.ReadUint32()
	return err
}

type SetWorldBounds struct{ MaxX, MinX, MaxY, MinY float32 }

func (m *SetWorldBounds) MessageID() uint8          { return IDSetWorldBounds }
func (m *SetWorldBounds) MessageCategory() Category { return CategoryRPC }
func (m *SetWorldBounds) MessageChannel() Channel   { return ChannelInternal }
func (m *SetWorldBounds) Write(bs *bitstream.BitStream) {
	bs.WriteFloat(m.MaxX)
	bs.WriteFloat(m.MinX)
	bs.WriteFloat(m.MaxY)
	bs.WriteFloat(m.MinY)
}
func (m *SetWorldBounds) Read(bs *bitstream.BitStream) error {
	var err error
	if m.MaxX, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.MinX, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.MaxY, err = bs.ReadFloat(); err != nil {
		return err
	}
	m.MinY, err = bs.ReadFloat()
	return err
}

type SetPlayerSkin struct{ SkinID uint32 }

func (m *SetPlayerSkin) MessageID() uint8          { return IDSetPlayerSkin }
func (m *SetPlayerSkin) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerSkin) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerSkin) Write(bs *bitstream.BitStream) { bs.WriteUint32(m.SkinID) }
func (m *SetPlayerSkin) Read(bs *bitstream.BitStream) error {
	var err error
	m.SkinID, err = bs.ReadUint32()
	return err
}

// SetPlayerTeam's field width (uint8, not int32) matters: the client
// truncates silently on a wider write, which is exactly the kind of
// mismatch spec.md's field-by-field grounding exists to prevent.
type SetPlayerTeam struct{ Team uint8 }

func (m *SetPlayerTeam) MessageID() uint8          { return IDSetPlayerTeam }
func (m *SetPlayerTeam) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerTeam) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerTeam) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.Team) }
func (m *SetPlayerTeam) Read(bs *bitstream.BitStream) error {
	var err error
	m.Team, err = bs.ReadUint8()
	return err
}

type SetPlayerFightingStyle struct{ Style uint8 }

func (m *SetPlayerFightingStyle) MessageID() uint8          { return IDSetPlayerFightingStyle }
func (m *SetPlayerFightingStyle) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerFightingStyle) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerFightingStyle) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.Style) }
func (m *SetPlayerFightingStyle) Read(bs *bitstream.BitStream) error {
	var err error
	m.Style, err = bs.ReadUint8()
	return err
}

type SetPlayerSpecialAction struct{ Action uint32 }

func (m *SetPlayerSpecialAction) MessageID() uint8          { return IDSetPlayerSpecialAction }
func (m *SetPlayerSpecialAction) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerSpecialAction) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerSpecialAction) Write(bs *bitstream.BitStream) { bs.WriteUint32(m.Action) }
func (m *SetPlayerSpecialAction) Read(bs *bitstream.BitStream) error {
	var err error
	m.Action, err = bs.ReadUint32()
	return err
}

type SetPlayerSkillLevel struct {
	PlayerID uint16
	SkillID  uint32
	Level    uint16
}

func (m *SetPlayerSkillLevel) MessageID() uint8          { return IDSetPlayerSkillLevel }
func (m *SetPlayerSkillLevel) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerSkillLevel) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerSkillLevel) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	bs.WriteUint32(m.SkillID)
	bs.WriteUint16(m.Level)
}
func (m *SetPlayerSkillLevel) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.SkillID, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Level, err = bs.ReadUint16()
	return err
}

type SetPlayerColor struct {
	PlayerID uint16
	Colour   uint32
}

func (m *SetPlayerColor) MessageID() uint8          { return IDSetPlayerColor }
func (m *SetPlayerColor) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerColor) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerColor) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	bs.WriteUint32(m.Colour)
}
func (m *SetPlayerColor) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Colour, err = bs.ReadUint32()
	return err
}

type SetPlayerName struct {
	Name string
}

func (m *SetPlayerName) MessageID() uint8          { return IDSetPlayerName }
func (m *SetPlayerName) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerName) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerName) Write(bs *bitstream.BitStream) { writeStr8(bs, m.Name) }
func (m *SetPlayerName) Read(bs *bitstream.BitStream) error {
	var err error
	m.Name, err = readStr8(bs)
	return err
}

type SetPlayerWantedLevel struct{ Level uint32 }

func (m *SetPlayerWantedLevel) MessageID() uint8          { return IDSetPlayerWantedLevel }
func (m *SetPlayerWantedLevel) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerWantedLevel) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerWantedLevel) Write(bs *bitstream.BitStream) { bs.WriteUint32(m.Level) }
func (m *SetPlayerWantedLevel) Read(bs *bitstream.BitStream) error {
	var err error
	m.Level, err = bs.ReadUint32()
	return err
}

type ToggleWidescreen struct{ Enable bool }

func (m *ToggleWidescreen) MessageID() uint8          { return IDToggleWidescreen }
func (m *ToggleWidescreen) MessageCategory() Category { return CategoryRPC }
func (m *ToggleWidescreen) MessageChannel() Channel   { return ChannelInternal }
func (m *ToggleWidescreen) Write(bs *bitstream.BitStream) { writeBoolByte(bs, m.Enable) }
func (m *ToggleWidescreen) Read(bs *bitstream.BitStream) error {
	var err error
	m.Enable, err = readBoolByte(bs)
	return err
}

type DisableRemoteVehicleCollisions struct{ Disable bool }

func (m *DisableRemoteVehicleCollisions) MessageID() uint8 { return IDDisableRemoteVehicleCollisions }
func (m *DisableRemoteVehicleCollisions) MessageCategory() Category { return CategoryRPC }
func (m *DisableRemoteVehicleCollisions) MessageChannel() Channel   { return ChannelInternal }
func (m *DisableRemoteVehicleCollisions) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.Disable)
}
func (m *DisableRemoteVehicleCollisions) Read(bs *bitstream.BitStream) error {
	var err error
	m.Disable, err = readBoolByte(bs)
	return err
}

type SetPlayerCameraTargeting struct{ Enable bool }

func (m *SetPlayerCameraTargeting) MessageID() uint8          { return IDSetPlayerCameraTargeting }
func (m *SetPlayerCameraTargeting) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerCameraTargeting) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerCameraTargeting) Write(bs *bitstream.BitStream) { writeBoolByte(bs, m.Enable) }
func (m *SetPlayerCameraTargeting) Read(bs *bitstream.BitStream) error {
	var err error
	m.Enable, err = readBoolByte(bs)
	return err
}

func registerMovement(c *Catalog) {
	c.Register(CategoryRPC, IDSetPlayerPosition, func() Message { return &SetPlayerPosition{} })
	c.Register(CategoryRPC, IDSetPlayerPositionFindZ, func() Message { return &SetPlayerPositionFindZ{} })
	c.Register(CategoryRPC, IDSetPlayerFacingAngle, func() Message { return &SetPlayerFacingAngle{} })
	c.Register(CategoryRPC, IDSetPlayerHealth, func() Message { return &SetPlayerHealth{} })
	c.Register(CategoryRPC, IDSetPlayerArmour, func() Message { return &SetPlayerArmour{} })
	c.Register(CategoryRPC, IDSetPlayerVelocity, func() Message { return &SetPlayerVelocity{} })
	c.Register(CategoryRPC, IDSetPlayerGravity, func() Message { return &SetPlayerGravity{} })
	c.Register(CategoryRPC, IDTogglePlayerControllable, func() Message { return &TogglePlayerControllable{} })
	c.Register(CategoryRPC, IDSetPlayerInterior, func() Message { return &SetPlayerInterior{} })
	c.Register(CategoryRPC, IDSetPlayerVirtualWorld, func() Message { return &SetPlayerVirtualWorld{} })
	c.Register(CategoryRPC, IDSetWorldBounds, func() Message { return &SetWorldBounds{} })
	c.Register(CategoryRPC, IDSetPlayerSkin, func() Message { return &SetPlayerSkin{} })
	c.Register(CategoryRPC, IDSetPlayerTeam, func() Message { return &SetPlayerTeam{} })
	c.Register(CategoryRPC, IDSetPlayerFightingStyle, func() Message { return &SetPlayerFightingStyle{} })
	c.Register(CategoryRPC, IDSetPlayerSpecialAction, func() Message { return &SetPlayerSpecialAction{} })
	c.Register(CategoryRPC, IDSetPlayerSkillLevel, func() Message { return &SetPlayerSkillLevel{} })
	c.Register(CategoryRPC, IDSetPlayerColor, func() Message { return &SetPlayerColor{} })
	c.Register(CategoryRPC, IDSetPlayerName, func() Message { return &SetPlayerName{} })
	c.Register(CategoryRPC, IDSetPlayerWantedLevel, func() Message { return &SetPlayerWantedLevel{} })
	c.Register(CategoryRPC, IDToggleWidescreen, func() Message { return &ToggleWidescreen{} })
	c.Register(CategoryRPC, IDDisableRemoteVehicleCollisions, func() Message { return &DisableRemoteVehicleCollisions{} })
	c.Register(CategoryRPC, IDSetPlayerCameraTargeting, func() Message { return &SetPlayerCameraTargeting{} })
}
