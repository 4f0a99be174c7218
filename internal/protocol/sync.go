package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

// Sync packets are unreliable, per-tick, and carried on the Packet
// category rather than RPC. Field order and the conditional-write bit
// flags are grounded directly on original_source/SDK/netcode.hpp's
// PlayerFootSync/PlayerVehicleSync/PlayerAimSync/PlayerPassengerSync
// bodies; callers never see a partially-read struct because every Read
// either completes or returns an error before any field is interpreted.

// PlayerFootSync is the baseline per-tick state for an on-foot player.
type PlayerFootSync struct {
	LeftRight      int16
	UpDown         int16
	Keys           uint16
	Position       bitstream.Vec3
	Rotation       bitstream.Quat
	HealthArmour   bitstream.Vec2 // compressed on the wire
	WeaponID       uint8
	SpecialAction  uint8
	Velocity       bitstream.Vec3
	SurfingOffsets bitstream.Vec3
	SurfingVehicleID uint16
	AnimationID      uint16
	AnimationFlags   uint16
}

func (m *PlayerFootSync) MessageID() uint8          { return IDPlayerFootSync }
func (m *PlayerFootSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerFootSync) MessageChannel() Channel   { return ChannelSyncPacket }

func (m *PlayerFootSync) Write(bs *bitstream.BitStream) {
	bs.WriteInt16(m.LeftRight)
	bs.WriteInt16(m.UpDown)
	bs.WriteUint16(m.Keys)
	bs.WriteVec3(m.Position)
	bs.WriteGTAQuat(m.Rotation)
	bs.WriteCompressedPercentPair(m.HealthArmour)
	bs.WriteUint8(m.WeaponID)
	bs.WriteUint8(m.SpecialAction)
	bs.WriteCompressedVec3(m.Velocity)
	bs.WriteVec3(m.SurfingOffsets)
	bs.WriteUint16(m.SurfingVehicleID)
	bs.WriteUint16(m.AnimationID)
	bs.WriteUint16(m.AnimationFlags)
}

func (m *PlayerFootSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.LeftRight, err = bs.ReadInt16(); err != nil {
		return err
	}
	if m.UpDown, err = bs.ReadInt16(); err != nil {
		return err
	}
	if m.Keys, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Position, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Rotation, err = bs.ReadGTAQuat(); err != nil {
		return err
	}
	if m.HealthArmour, err = bs.ReadCompressedPercentPair(); err != nil {
		return err
	}
	if m.WeaponID, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.SpecialAction, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Velocity, err = bs.ReadCompressedVec3(); err != nil {
		return err
	}
	if m.SurfingOffsets, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.SurfingVehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.AnimationID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.AnimationFlags, err = bs.ReadUint16()
	return err
}

// PlayerVehicleSync covers the driver's seat. TrailerID and HydraThrustAngle
// are both conditional on their presence bits, per netcode.hpp's
// HasTrailer / AbysmalShit flags.
type PlayerVehicleSync struct {
	VehicleID   uint16
	LeftRight   int16
	UpDown      int16
	Keys        uint16
	Quaternion  bitstream.Quat
	Position    bitstream.Vec3
	Velocity    bitstream.Vec3
	VehicleHealth float32
	PlayerHealthArmour bitstream.Vec2
	WeaponID    uint8
	DriveBySeatAdditionalKey uint8
	HasTrailer  bool
	TrailerID   uint16
	HasHydraThrustAngle bool
	HydraThrustAngle    uint32
	TrainSpeed  float32
}

func (m *PlayerVehicleSync) MessageID() uint8          { return IDPlayerVehicleSync }
func (m *PlayerVehicleSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerVehicleSync) MessageChannel() Channel   { return ChannelSyncPacket }

func (m *PlayerVehicleSync) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteInt16(m.LeftRight)
	bs.WriteInt16(m.UpDown)
	bs.WriteUint16(m.Keys)
	bs.WriteGTAQuat(m.Quaternion)
	bs.WriteVec3(m.Position)
	bs.WriteCompressedVec3(m.Velocity)
	bs.WriteFloat(m.VehicleHealth)
	bs.WriteCompressedPercentPair(m.PlayerHealthArmour)
	bs.WriteUint8(m.WeaponID)
	bs.WriteUint8(m.DriveBySeatAdditionalKey)
	bs.WriteBit(m.HasTrailer)
	if m.HasTrailer {
		bs.WriteUint16(m.TrailerID)
	}
	bs.WriteBit(m.HasHydraThrustAngle)
	if m.HasHydraThrustAngle {
		bs.WriteUint32(m.HydraThrustAngle)
	}
	bs.WriteFloat(m.TrainSpeed)
}

func (m *PlayerVehicleSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.LeftRight, err = bs.ReadInt16(); err != nil {
		return err
	}
	if m.UpDown, err = bs.ReadInt16(); err != nil {
		return err
	}
	if m.Keys, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Quaternion, err = bs.ReadGTAQuat(); err != nil {
		return err
	}
	if m.Position, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Velocity, err = bs.ReadCompressedVec3(); err != nil {
		return err
	}
	if m.VehicleHealth, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.PlayerHealthArmour, err = bs.ReadCompressedPercentPair(); err != nil {
		return err
	}
	if m.WeaponID, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.DriveBySeatAdditionalKey, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.HasTrailer, err = bs.ReadBit(); err != nil {
		return err
	}
	if m.HasTrailer {
		if m.TrailerID, err = bs.ReadUint16(); err != nil {
			return err
		}
	}
	if m.HasHydraThrustAngle, err = bs.ReadBit(); err != nil {
		return err
	}
	if m.HasHydraThrustAngle {
		if m.HydraThrustAngle, err = bs.ReadUint32(); err != nil {
			return err
		}
	}
	m.TrainSpeed, err = bs.ReadFloat()
	return err
}

type PlayerPassengerSync struct {
	VehicleID    uint16
	SeatID       uint8
	Keys         uint16
	Position     bitstream.Vec3
	HealthArmour bitstream.Vec2
	WeaponID     uint8
	DriveBySeatAdditionalKey uint8
}

func (m *PlayerPassengerSync) MessageID() uint8          { return IDPlayerPassengerSync }
func (m *PlayerPassengerSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerPassengerSync) MessageChannel() Channel   { return ChannelSyncPacket }
func (m *PlayerPassengerSync) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteUint8(m.SeatID)
	bs.WriteUint16(m.Keys)
	bs.WriteVec3(m.Position)
	bs.WriteCompressedPercentPair(m.HealthArmour)
	bs.WriteUint8(m.WeaponID)
	bs.WriteUint8(m.DriveBySeatAdditionalKey)
}
func (m *PlayerPassengerSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.SeatID, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Keys, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Position, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.HealthArmour, err = bs.ReadCompressedPercentPair(); err != nil {
		return err
	}
	if m.WeaponID, err = bs.ReadUint8(); err != nil {
		return err
	}
	m.DriveBySeatAdditionalKey, err = bs.ReadUint8()
	return err
}

type PlayerAimSync struct {
	CamMode     uint8
	AimAt       bitstream.Vec3
	CamFrontVector bitstream.Vec3
	AspectRatio float32
	CamZoom     float32
	WeaponState uint8
	CamFlags    uint8
}

func (m *PlayerAimSync) MessageID() uint8          { return IDPlayerAimSync }
func (m *PlayerAimSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerAimSync) MessageChannel() Channel   { return ChannelSyncPacket }
func (m *PlayerAimSync) Write(bs *bitstream.BitStream) {
	bs.WriteUint8(m.CamMode)
	bs.WriteVec3(m.AimAt)
	bs.WriteVec3(m.CamFrontVector)
	bs.WriteFloat(m.AspectRatio)
	bs.WriteFloat(m.CamZoom)
	bs.WriteUint8(m.WeaponState)
	bs.WriteUint8(m.CamFlags)
}
func (m *PlayerAimSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.CamMode, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.AimAt, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.CamFrontVector, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.AspectRatio, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.CamZoom, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.WeaponState, err = bs.ReadUint8(); err != nil {
		return err
	}
	m.CamFlags, err = bs.ReadUint8()
	return err
}

type PlayerBulletSync struct {
	HitType   uint8
	HitID     uint16
	Origin    bitstream.Vec3
	HitPos    bitstream.Vec3
	Offset    bitstream.Vec3
	WeaponID  uint8
}

func (m *PlayerBulletSync) MessageID() uint8          { return IDPlayerBulletSync }
func (m *PlayerBulletSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerBulletSync) MessageChannel() Channel   { return ChannelSyncPacket }
func (m *PlayerBulletSync) Write(bs *bitstream.BitStream) {
	bs.WriteUint8(m.HitType)
	bs.WriteUint16(m.HitID)
	bs.WriteVec3(m.Origin)
	bs.WriteVec3(m.HitPos)
	bs.WriteVec3(m.Offset)
	bs.WriteUint8(m.WeaponID)
}
func (m *PlayerBulletSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.HitType, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.HitID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Origin, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.HitPos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Offset, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.WeaponID, err = bs.ReadUint8()
	return err
}

// PlayerStatsSync carries money/drunkenness deltas the client reports
// periodically; Money is signed because it is a delta, not an absolute.
type PlayerStatsSync struct {
	Money int32
	DrunkLevel uint32
}

func (m *PlayerStatsSync) MessageID() uint8          { return IDPlayerStatsSync }
func (m *PlayerStatsSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerStatsSync) MessageChannel() Channel   { return ChannelSyncPacket }
func (m *PlayerStatsSync) Write(bs *bitstream.BitStream) {
	bs.WriteInt32(m.Money)
	bs.WriteUint32(m.DrunkLevel)
}
func (m *PlayerStatsSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Money, err = bs.ReadInt32(); err != nil {
		return err
	}
	m.DrunkLevel, err = bs.ReadUint32()
	return err
}

type PlayerWeaponsUpdate struct {
	TargetID uint16
	Slots    [13]struct {
		WeaponID uint8
		Ammo     uint16
	}
}

func (m *PlayerWeaponsUpdate) MessageID() uint8          { return IDPlayerWeaponsUpdate }
func (m *PlayerWeaponsUpdate) MessageCategory() Category { return CategoryPacket }
func (m *PlayerWeaponsUpdate) MessageChannel() Channel   { return ChannelSyncPacket }
func (m *PlayerWeaponsUpdate) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.TargetID)
	for _, slot := range m.Slots {
		bs.WriteUint8(slot.WeaponID)
		bs.WriteUint16(slot.Ammo)
	}
}
func (m *PlayerWeaponsUpdate) Read(bs *bitstream.BitStream) error {
	var err error
	if m.TargetID, err = bs.ReadUint16(); err != nil {
		return err
	}
	for i := range m.Slots {
		if m.Slots[i].WeaponID, err = bs.ReadUint8(); err != nil {
			return err
		}
		if m.Slots[i].Ammo, err = bs.ReadUint16(); err != nil {
			return err
		}
	}
	return nil
}

type PlayerMarkersSync struct {
	PlayerID uint16
	Position bitstream.Vec3
}

func (m *PlayerMarkersSync) MessageID() uint8          { return IDPlayerMarkersSync }
func (m *PlayerMarkersSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerMarkersSync) MessageChannel() Channel   { return ChannelSyncPacket }
func (m *PlayerMarkersSync) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	bs.WriteCompressedVec3(m.Position)
}
func (m *PlayerMarkersSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Position, err = bs.ReadCompressedVec3()
	return err
}

type PlayerSpectatorSync struct {
	LeftRight int16
	UpDown    int16
	Keys      uint16
	Position  bitstream.Vec3
}

func (m *PlayerSpectatorSync) MessageID() uint8          { return IDPlayerSpectatorSync }
func (m *PlayerSpectatorSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerSpectatorSync) MessageChannel() Channel   { return ChannelSyncPacket }
func (m *PlayerSpectatorSync) Write(bs *bitstream.BitStream) {
	bs.WriteInt16(m.LeftRight)
	bs.WriteInt16(m.UpDown)
	bs.WriteUint16(m.Keys)
	bs.WriteVec3(m.Position)
}
func (m *PlayerSpectatorSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.LeftRight, err = bs.ReadInt16(); err != nil {
		return err
	}
	if m.UpDown, err = bs.ReadInt16(); err != nil {
		return err
	}
	if m.Keys, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Position, err = bs.ReadVec3()
	return err
}

// PlayerUnoccupiedSync lets a client report physics for an empty vehicle it
// is nearest to (e.g. a parked car rolling downhill).
type PlayerUnoccupiedSync struct {
	VehicleID uint16
	Roll      bitstream.Vec3
	Direction bitstream.Vec3
	Position  bitstream.Vec3
	Velocity  bitstream.Vec3
	VehicleHealth float32
}

func (m *PlayerUnoccupiedSync) MessageID() uint8          { return IDPlayerUnoccupiedSync }
func (m *PlayerUnoccupiedSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerUnoccupiedSync) MessageChannel() Channel   { return ChannelSyncPacket }
func (m *PlayerUnoccupiedSync) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteVec3(m.Roll)
	bs.WriteVec3(m.Direction)
	bs.WriteVec3(m.Position)
	bs.WriteVec3(m.Velocity)
	bs.WriteFloat(m.VehicleHealth)
}
func (m *PlayerUnoccupiedSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Roll, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Direction, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Position, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Velocity, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.VehicleHealth, err = bs.ReadFloat()
	return err
}

// PlayerTrailerSync's symmetry with AttachTrailer/DetachTrailer (vehicle.go)
// is enforced at the entity layer, not here.
type PlayerTrailerSync struct {
	TrailerID uint16
	Position  bitstream.Vec3
	Quaternion bitstream.Quat
	Velocity  bitstream.Vec3
	TurnVelocity bitstream.Vec3
}

func (m *PlayerTrailerSync) MessageID() uint8          { return IDPlayerTrailerSync }
func (m *PlayerTrailerSync) MessageCategory() Category { return CategoryPacket }
func (m *PlayerTrailerSync) MessageChannel() Channel   { return ChannelSyncPacket }
func (m *PlayerTrailerSync) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.TrailerID)
	bs.WriteVec3(m.Position)
	bs.WriteGTAQuat(m.Quaternion)
	bs.WriteVec3(m.Velocity)
	bs.WriteVec3(m.TurnVelocity)
}
func (m *PlayerTrailerSync) Read(bs *bitstream.BitStream) error {
	var err error
	if m.TrailerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Position, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Quaternion, err = bs.ReadGTAQuat(); err != nil {
		return err
	}
	if m.Velocity, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.TurnVelocity, err = bs.ReadVec3()
	return err
}

func registerSync(c *Catalog) {
	c.Register(CategoryPacket, IDPlayerFootSync, func() Message { return &PlayerFootSync{} })
	c.Register(CategoryPacket, IDPlayerVehicleSync, func() Message { return &PlayerVehicleSync{} })
	c.Register(CategoryPacket, IDPlayerPassengerSync, func() Message { return &PlayerPassengerSync{} })
	c.Register(CategoryPacket, IDPlayerAimSync, func() Message { return &PlayerAimSync{} })
	c.Register(CategoryPacket, IDPlayerBulletSync, func() Message { return &PlayerBulletSync{} })
	c.Register(CategoryPacket, IDPlayerStatsSync, func() Message { return &PlayerStatsSync{} })
	c.Register(CategoryPacket, IDPlayerWeaponsUpdate, func() Message { return &PlayerWeaponsUpdate{} })
	c.Register(CategoryPacket, IDPlayerMarkersSync, func() Message { return &PlayerMarkersSync{} })
	c.Register(CategoryPacket, IDPlayerSpectatorSync, func() Message { return &PlayerSpectatorSync{} })
	c.Register(CategoryPacket, IDPlayerUnoccupiedSync, func() Message { return &PlayerUnoccupiedSync{} })
	c.Register(CategoryPacket, IDPlayerTrailerSync, func() Message { return &PlayerTrailerSync{} })
}
