package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type PlayerShowTextLabel struct {
	LabelID   uint16
	Colour    uint32
	Pos       bitstream.Vec3
	DrawDistance float32
	AttachedPlayer  uint16
	AttachedVehicle uint16
	TestLOS   bool
	Text      string
}

func (m *PlayerShowTextLabel) MessageID() uint8          { return IDPlayerShowTextLabel }
func (m *PlayerShowTextLabel) MessageCategory() Category { return CategoryRPC }
func (m *PlayerShowTextLabel) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerShowTextLabel) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.LabelID)
	bs.WriteUint32(m.Colour)
	bs.WriteVec3(m.Pos)
	bs.WriteFloat(m.DrawDistance)
	bs.WriteUint16(m.AttachedPlayer)
	bs.WriteUint16(m.AttachedVehicle)
	writeBoolByte(bs, m.TestLOS)
	writeStr32(bs, m.Text)
}
func (m *PlayerShowTextLabel) Read(bs *bitstream.BitStream) error {
	var err error
	if m.LabelID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Colour, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.DrawDistance, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.AttachedPlayer, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.AttachedVehicle, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.TestLOS, err = readBoolByte(bs); err != nil {
		return err
	}
	m.Text, err = readStr32(bs)
	return err
}

type PlayerHideTextLabel struct{ LabelID uint16 }

func (m *PlayerHideTextLabel) MessageID() uint8          { return IDPlayerHideTextLabel }
func (m *PlayerHideTextLabel) MessageCategory() Category { return CategoryRPC }
func (m *PlayerHideTextLabel) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerHideTextLabel) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.LabelID) }
func (m *PlayerHideTextLabel) Read(bs *bitstream.BitStream) error {
	var err error
	m.LabelID, err = bs.ReadUint16()
	return err
}

func registerTextLabel(c *Catalog) {
	c.Register(CategoryRPC, IDPlayerShowTextLabel, func() Message { return &PlayerShowTextLabel{} })
	c.Register(CategoryRPC, IDPlayerHideTextLabel, func() Message { return &PlayerHideTextLabel{} })
}
