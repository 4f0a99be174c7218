package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

// StreamInVehicle is the full vehicle spawn snapshot, grounded on
// original_source/SDK/vehicle.hpp's StreamInVehicle RPC body.
type StreamInVehicle struct {
	VehicleID   uint16
	ModelID     uint32
	Pos         bitstream.Vec3
	ZAngle      float32
	Colour1     uint8
	Colour2     uint8
	Health      float32
	Interior    uint8
	Doors       uint32
	Components  [14]uint16
	Paintjob    uint8
	BodyColour1 uint32
	BodyColour2 uint32
	BodyColour3 uint32
	BodyColour4 uint32
	SirenEnabled bool
}

func (m *StreamInVehicle) MessageID() uint8          { return IDStreamInVehicle }
func (m *StreamInVehicle) MessageCategory() Category { return CategoryRPC }
func (m *StreamInVehicle) MessageChannel() Channel   { return ChannelInternal }
func (m *StreamInVehicle) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteUint32(m.ModelID)
	bs.WriteVec3(m.Pos)
	bs.WriteFloat(m.ZAngle)
	bs.WriteUint8(m.Colour1)
	bs.WriteUint8(m.Colour2)
	bs.WriteFloat(m.Health)
	bs.WriteUint8(m.Interior)
	bs.WriteUint32(m.Doors)
	for _, comp := range m.Components {
		bs.WriteUint16(comp)
	}
	bs.WriteUint8(m.Paintjob)
	bs.WriteUint32(m.BodyColour1)
	bs.WriteUint32(m.BodyColour2)
	bs.WriteUint32(m.BodyColour3)
	bs.WriteUint32(m.BodyColour4)
	writeBoolByte(bs, m.SirenEnabled)
}
func (m *StreamInVehicle) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.ModelID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.ZAngle, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.Colour1, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Colour2, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Health, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.Interior, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Doors, err = bs.ReadUint32(); err != nil {
		return err
	}
	for i := range m.Components {
		if m.Components[i], err = bs.ReadUint16(); err != nil {
			return err
		}
	}
	if m.Paintjob, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.BodyColour1, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.BodyColour2, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.BodyColour3, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.BodyColour4, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.SirenEnabled, err = readBoolByte(bs)
	return err
}

type StreamOutVehicle struct{ VehicleID uint16 }

func (m *StreamOutVehicle) MessageID() uint8          { return IDStreamOutVehicle }
func (m *StreamOutVehicle) MessageCategory() Category { return CategoryRPC }
func (m *StreamOutVehicle) MessageChannel() Channel   { return ChannelInternal }
func (m *StreamOutVehicle) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.VehicleID) }
func (m *StreamOutVehicle) Read(bs *bitstream.BitStream) error {
	var err error
	m.VehicleID, err = bs.ReadUint16()
	return err
}

type PutPlayerInVehicle struct {
	VehicleID uint16
	SeatID    uint8
}

func (m *PutPlayerInVehicle) MessageID() uint8          { return IDPutPlayerInVehicle }
func (m *PutPlayerInVehicle) MessageCategory() Category { return CategoryRPC }
func (m *PutPlayerInVehicle) MessageChannel() Channel   { return ChannelInternal }
func (m *PutPlayerInVehicle) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteUint8(m.SeatID)
}
func (m *PutPlayerInVehicle) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.SeatID, err = bs.ReadUint8()
	return err
}

type RemovePlayerFromVehicle struct{}

func (m *RemovePlayerFromVehicle) MessageID() uint8             { return IDRemovePlayerFromVehicle }
func (m *RemovePlayerFromVehicle) MessageCategory() Category    { return CategoryRPC }
func (m *RemovePlayerFromVehicle) MessageChannel() Channel      { return ChannelInternal }
func (m *RemovePlayerFromVehicle) Write(bs *bitstream.BitStream) {}
func (m *RemovePlayerFromVehicle) Read(bs *bitstream.BitStream) error { return nil }

type EnterVehicle struct {
	VehicleID  uint16
	IsPassenger bool
}

func (m *EnterVehicle) MessageID() uint8          { return IDEnterVehicle }
func (m *EnterVehicle) MessageCategory() Category { return CategoryRPC }
func (m *EnterVehicle) MessageChannel() Channel   { return ChannelInternal }
func (m *EnterVehicle) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	writeBoolByte(bs, m.IsPassenger)
}
func (m *EnterVehicle) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.IsPassenger, err = readBoolByte(bs)
	return err
}

// EnterVehicleBroadcast is the server->all-peers shape of the same wire ID
// as EnterVehicle: the client's request carries only VehicleID/IsPassenger,
// but the broadcast every other peer receives also names which player is
// entering. Outbound-only — never registered in the catalog, mirroring
// PlayerRequestClassResponse/PlayerRequestSpawnResponse in connection.go.
type EnterVehicleBroadcast struct {
	PlayerID    uint16
	VehicleID   uint16
	IsPassenger bool
}

func (m *EnterVehicleBroadcast) MessageID() uint8          { return IDEnterVehicle }
func (m *EnterVehicleBroadcast) MessageCategory() Category { return CategoryRPC }
func (m *EnterVehicleBroadcast) MessageChannel() Channel   { return ChannelInternal }
func (m *EnterVehicleBroadcast) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	bs.WriteUint16(m.VehicleID)
	writeBoolByte(bs, m.IsPassenger)
}
func (m *EnterVehicleBroadcast) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.IsPassenger, err = readBoolByte(bs)
	return err
}

type ExitVehicle struct{ VehicleID uint16 }

func (m *ExitVehicle) MessageID() uint8          { return IDExitVehicle }
func (m *ExitVehicle) MessageCategory() Category { return CategoryRPC }
func (m *ExitVehicle) MessageChannel() Channel   { return ChannelInternal }
func (m *ExitVehicle) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.VehicleID) }
func (m *ExitVehicle) Read(bs *bitstream.BitStream) error {
	var err error
	m.VehicleID, err = bs.ReadUint16()
	return err
}

type SetVehicleHealth struct {
	VehicleID uint16
	Health    float32
}

func (m *SetVehicleHealth) MessageID() uint8          { return IDSetVehicleHealth }
func (m *SetVehicleHealth) MessageCategory() Category { return CategoryRPC }
func (m *SetVehicleHealth) MessageChannel() Channel   { return ChannelInternal }
func (m *SetVehicleHealth) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteFloat(m.Health)
}
func (m *SetVehicleHealth) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Health, err = bs.ReadFloat()
	return err
}

type SetVehicleZAngle struct {
	VehicleID uint16
	ZAngle    float32
}

func (m *SetVehicleZAngle) MessageID() uint8          { return IDSetVehicleZAngle }
func (m *SetVehicleZAngle) MessageCategory() Category { return CategoryRPC }
func (m *SetVehicleZAngle) MessageChannel() Channel   { return ChannelInternal }
func (m *SetVehicleZAngle) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteFloat(m.ZAngle)
}
func (m *SetVehicleZAngle) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.ZAngle, err = bs.ReadFloat()
	return err
}

type SetVehiclePosition struct {
	VehicleID uint16
	Pos       bitstream.Vec3
}

func (m *SetVehiclePosition) MessageID() uint8          { return IDSetVehiclePosition }
func (m *SetVehiclePosition) MessageCategory() Category { return CategoryRPC }
func (m *SetVehiclePosition) MessageChannel() Channel   { return ChannelInternal }
func (m *SetVehiclePosition) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteVec3(m.Pos)
}
func (m *SetVehiclePosition) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Pos, err = bs.ReadVec3()
	return err
}

type SetVehiclePlate struct {
	VehicleID uint16
	Plate     string
}

func (m *SetVehiclePlate) MessageID() uint8          { return IDSetVehiclePlate }
func (m *SetVehiclePlate) MessageCategory() Category { return CategoryRPC }
func (m *SetVehiclePlate) MessageChannel() Channel   { return ChannelInternal }
func (m *SetVehiclePlate) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	writeStr32(bs, m.Plate)
}
func (m *SetVehiclePlate) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Plate, err = readStr32(bs)
	return err
}

type VehicleDeath struct{ VehicleID uint16 }

func (m *VehicleDeath) MessageID() uint8          { return IDVehicleDeath }
func (m *VehicleDeath) MessageCategory() Category { return CategoryRPC }
func (m *VehicleDeath) MessageChannel() Channel   { return ChannelInternal }
func (m *VehicleDeath) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.VehicleID) }
func (m *VehicleDeath) Read(bs *bitstream.BitStream) error {
	var err error
	m.VehicleID, err = bs.ReadUint16()
	return err
}

type LinkVehicleToInterior struct {
	VehicleID  uint16
	InteriorID uint8
}

func (m *LinkVehicleToInterior) MessageID() uint8          { return IDLinkVehicleToInterior }
func (m *LinkVehicleToInterior) MessageCategory() Category { return CategoryRPC }
func (m *LinkVehicleToInterior) MessageChannel() Channel   { return ChannelInternal }
func (m *LinkVehicleToInterior) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteUint8(m.InteriorID)
}
func (m *LinkVehicleToInterior) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.InteriorID, err = bs.ReadUint8()
	return err
}

// AttachTrailer/DetachTrailer enforce the one-trailer-per-vehicle symmetry
// invariant at the entity layer; the wire payload is just the two IDs.
type AttachTrailer struct {
	TrailerID uint16
	VehicleID uint16
}

func (m *AttachTrailer) MessageID() uint8          { return IDAttachTrailer }
func (m *AttachTrailer) MessageCategory() Category { return CategoryRPC }
func (m *AttachTrailer) MessageChannel() Channel   { return ChannelInternal }
func (m *AttachTrailer) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.TrailerID)
	bs.WriteUint16(m.VehicleID)
}
func (m *AttachTrailer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.TrailerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.VehicleID, err = bs.ReadUint16()
	return err
}

type DetachTrailer struct{ VehicleID uint16 }

func (m *DetachTrailer) MessageID() uint8          { return IDDetachTrailer }
func (m *DetachTrailer) MessageCategory() Category { return CategoryRPC }
func (m *DetachTrailer) MessageChannel() Channel   { return ChannelInternal }
func (m *DetachTrailer) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.VehicleID) }
func (m *DetachTrailer) Read(bs *bitstream.BitStream) error {
	var err error
	m.VehicleID, err = bs.ReadUint16()
	return err
}

type SetVehicleVelocity struct {
	VehicleID uint16
	Velocity  bitstream.Vec3
}

func (m *SetVehicleVelocity) MessageID() uint8          { return IDSetVehicleVelocity }
func (m *SetVehicleVelocity) MessageCategory() Category { return CategoryRPC }
func (m *SetVehicleVelocity) MessageChannel() Channel   { return ChannelInternal }
func (m *SetVehicleVelocity) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteVec3(m.Velocity)
}
func (m *SetVehicleVelocity) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Velocity, err = bs.ReadVec3()
	return err
}

type SetVehicleParams struct {
	VehicleID          uint16
	Objective, Doorslocked bool
}

func (m *SetVehicleParams) MessageID() uint8          { return IDSetVehicleParams }
func (m *SetVehicleParams) MessageCategory() Category { return CategoryRPC }
func (m *SetVehicleParams) MessageChannel() Channel   { return ChannelInternal }
func (m *SetVehicleParams) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	writeBoolByte(bs, m.Objective)
	writeBoolByte(bs, m.Doorslocked)
}
func (m *SetVehicleParams) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Objective, err = readBoolByte(bs); err != nil {
		return err
	}
	m.Doorslocked, err = readBoolByte(bs)
	return err
}

type SetVehicleDamageStatus struct {
	VehicleID uint16
	Panels    uint32
	Doors     uint32
	Lights    uint8
	Tires     uint8
}

func (m *SetVehicleDamageStatus) MessageID() uint8          { return IDSetVehicleDamageStatus }
func (m *SetVehicleDamageStatus) MessageCategory() Category { return CategoryRPC }
func (m *SetVehicleDamageStatus) MessageChannel() Channel   { return ChannelInternal }
func (m *SetVehicleDamageStatus) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteUint32(m.Panels)
	bs.WriteUint32(m.Doors)
	bs.WriteUint8(m.Lights)
	bs.WriteUint8(m.Tires)
}
func (m *SetVehicleDamageStatus) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Panels, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Doors, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Lights, err = bs.ReadUint8(); err != nil {
		return err
	}
	m.Tires, err = bs.ReadUint8()
	return err
}

type RemoveVehicleComponent struct {
	VehicleID   uint16
	ComponentID uint16
}

func (m *RemoveVehicleComponent) MessageID() uint8          { return IDRemoveVehicleComponent }
func (m *RemoveVehicleComponent) MessageCategory() Category { return CategoryRPC }
func (m *RemoveVehicleComponent) MessageChannel() Channel   { return ChannelInternal }
func (m *RemoveVehicleComponent) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteUint16(m.ComponentID)
}
func (m *RemoveVehicleComponent) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.ComponentID, err = bs.ReadUint16()
	return err
}

// SCMEvent is the generic "SetVehicleComponentMumble"-era escape hatch the
// client uses for mod-tool triggered vehicle events; payload shape varies
// by EventType, so it is carried as an opaque argument tuple.
type SCMEvent struct {
	VehicleID uint16
	PlayerID  uint16
	EventType uint32
	Arg1      uint32
	Arg2      uint32
}

func (m *SCMEvent) MessageID() uint8          { return IDSCMEvent }
func (m *SCMEvent) MessageCategory() Category { return CategoryRPC }
func (m *SCMEvent) MessageChannel() Channel   { return ChannelInternal }
func (m *SCMEvent) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.VehicleID)
	bs.WriteUint16(m.PlayerID)
	bs.WriteUint32(m.EventType)
	bs.WriteUint32(m.Arg1)
	bs.WriteUint32(m.Arg2)
}
func (m *SCMEvent) Read(bs *bitstream.BitStream) error {
	var err error
	if m.VehicleID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.EventType, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Arg1, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Arg2, err = bs.ReadUint32()
	return err
}

func registerVehicle(c *Catalog) {
	c.Register(CategoryRPC, IDStreamInVehicle, func() Message { return &StreamInVehicle{} })
	c.Register(CategoryRPC, IDStreamOutVehicle, func() Message { return &StreamOutVehicle{} })
	c.Register(CategoryRPC, IDPutPlayerInVehicle, func() Message { return &PutPlayerInVehicle{} })
	c.Register(CategoryRPC, IDRemovePlayerFromVehicle, func() Message { return &RemovePlayerFromVehicle{} })
	c.Register(CategoryRPC, IDEnterVehicle, func() Message { return &EnterVehicle{} })
	c.Register(CategoryRPC, IDExitVehicle, func() Message { return &ExitVehicle{} })
	c.Register(CategoryRPC, IDSetVehicleHealth, func() Message { return &SetVehicleHealth{} })
	c.Register(CategoryRPC, IDSetVehicleZAngle, func() Message { return &SetVehicleZAngle{} })
	c.Register(CategoryRPC, IDSetVehiclePosition, func() Message { return &SetVehiclePosition{} })
	c.Register(CategoryRPC, IDSetVehiclePlate, func() Message { return &SetVehiclePlate{} })
	c.Register(CategoryRPC, IDVehicleDeath, func() Message { return &VehicleDeath{} })
	c.Register(CategoryRPC, IDLinkVehicleToInterior, func() Message { return &LinkVehicleToInterior{} })
	c.Register(CategoryRPC, IDAttachTrailer, func() Message { return &AttachTrailer{} })
	c.Register(CategoryRPC, IDDetachTrailer, func() Message { return &DetachTrailer{} })
	c.Register(CategoryRPC, IDSetVehicleVelocity, func() Message { return &SetVehicleVelocity{} })
	c.Register(CategoryRPC, IDSetVehicleParams, func() Message { return &SetVehicleParams{} })
	c.Register(CategoryRPC, IDSetVehicleDamageStatus, func() Message { return &SetVehicleDamageStatus{} })
	c.Register(CategoryRPC, IDRemoveVehicleComponent, func() Message { return &RemoveVehicleComponent{} })
	c.Register(CategoryRPC, IDSCMEvent, func() Message { return &SCMEvent{} })
}
