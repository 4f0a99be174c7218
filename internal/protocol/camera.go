package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type SetPlayerCameraPosition struct{ Pos bitstream.Vec3 }

func (m *SetPlayerCameraPosition) MessageID() uint8          { return IDSetPlayerCameraPosition }
func (m *SetPlayerCameraPosition) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerCameraPosition) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerCameraPosition) Write(bs *bitstream.BitStream) { bs.WriteVec3(m.Pos) }
func (m *SetPlayerCameraPosition) Read(bs *bitstream.BitStream) error {
	var err error
	m.Pos, err = bs.ReadVec3()
	return err
}

type SetPlayerCameraLookAt struct {
	Pos  bitstream.Vec3
	Cut  uint8
}

func (m *SetPlayerCameraLookAt) MessageID() uint8          { return IDSetPlayerCameraLookAt }
func (m *SetPlayerCameraLookAt) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerCameraLookAt) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerCameraLookAt) Write(bs *bitstream.BitStream) {
	bs.WriteVec3(m.Pos)
	bs.WriteUint8(m.Cut)
}
func (m *SetPlayerCameraLookAt) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.Cut, err = bs.ReadUint8()
	return err
}

type SetPlayerCameraBehindPlayer struct{}

func (m *SetPlayerCameraBehindPlayer) MessageID() uint8          { return IDSetPlayerCameraBehindPlayer }
func (m *SetPlayerCameraBehindPlayer) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerCameraBehindPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerCameraBehindPlayer) Write(bs *bitstream.BitStream)      {}
func (m *SetPlayerCameraBehindPlayer) Read(bs *bitstream.BitStream) error { return nil }

type InterpolateCamera struct {
	From, To bitstream.Vec3
	Time     uint32
	Cut      uint8
	IsPos    bool
}

func (m *InterpolateCamera) MessageID() uint8          { return IDInterpolateCamera }
func (m *InterpolateCamera) MessageCategory() Category { return CategoryRPC }
func (m *InterpolateCamera) MessageChannel() Channel   { return ChannelInternal }
func (m *InterpolateCamera) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.IsPos)
	bs.WriteVec3(m.From)
	bs.WriteVec3(m.To)
	bs.WriteUint32(m.Time)
	bs.WriteUint8(m.Cut)
}
func (m *InterpolateCamera) Read(bs *bitstream.BitStream) error {
	var err error
	if m.IsPos, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.From, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.To, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Time, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Cut, err = bs.ReadUint8()
	return err
}

type AttachCameraToObject struct{ ObjectID uint16 }

func (m *AttachCameraToObject) MessageID() uint8          { return IDAttachCameraToObject }
func (m *AttachCameraToObject) MessageCategory() Category { return CategoryRPC }
func (m *AttachCameraToObject) MessageChannel() Channel   { return ChannelInternal }
func (m *AttachCameraToObject) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.ObjectID) }
func (m *AttachCameraToObject) Read(bs *bitstream.BitStream) error {
	var err error
	m.ObjectID, err = bs.ReadUint16()
	return err
}

type OnPlayerCameraTarget struct {
	TargetObject  uint16
	TargetVehicle uint16
	TargetPlayer  uint16
	TargetActor   uint16
}

func (m *OnPlayerCameraTarget) MessageID() uint8          { return IDOnPlayerCameraTarget }
func (m *OnPlayerCameraTarget) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerCameraTarget) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerCameraTarget) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.TargetObject)
	bs.WriteUint16(m.TargetVehicle)
	bs.WriteUint16(m.TargetPlayer)
	bs.WriteUint16(m.TargetActor)
}
func (m *OnPlayerCameraTarget) Read(bs *bitstream.BitStream) error {
	var err error
	if m.TargetObject, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.TargetVehicle, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.TargetPlayer, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.TargetActor, err = bs.ReadUint16()
	return err
}

func registerCamera(c *Catalog) {
	c.Register(CategoryRPC, IDSetPlayerCameraPosition, func() Message { return &SetPlayerCameraPosition{} })
	c.Register(CategoryRPC, IDSetPlayerCameraLookAt, func() Message { return &SetPlayerCameraLookAt{} })
	c.Register(CategoryRPC, IDSetPlayerCameraBehindPlayer, func() Message { return &SetPlayerCameraBehindPlayer{} })
	c.Register(CategoryRPC, IDInterpolateCamera, func() Message { return &InterpolateCamera{} })
	c.Register(CategoryRPC, IDAttachCameraToObject, func() Message { return &AttachCameraToObject{} })
	c.Register(CategoryRPC, IDOnPlayerCameraTarget, func() Message { return &OnPlayerCameraTarget{} })
}
