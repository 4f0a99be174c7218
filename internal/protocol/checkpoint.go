package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type SetCheckpoint struct {
	Pos    bitstream.Vec3
	Radius float32
}

func (m *SetCheckpoint) MessageID() uint8          { return IDSetCheckpoint }
func (m *SetCheckpoint) MessageCategory() Category { return CategoryRPC }
func (m *SetCheckpoint) MessageChannel() Channel   { return ChannelInternal }
func (m *SetCheckpoint) Write(bs *bitstream.BitStream) {
	bs.WriteVec3(m.Pos)
	bs.WriteFloat(m.Radius)
}
func (m *SetCheckpoint) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.Radius, err = bs.ReadFloat()
	return err
}

type DisableCheckpoint struct{}

func (m *DisableCheckpoint) MessageID() uint8             { return IDDisableCheckpoint }
func (m *DisableCheckpoint) MessageCategory() Category    { return CategoryRPC }
func (m *DisableCheckpoint) MessageChannel() Channel      { return ChannelInternal }
func (m *DisableCheckpoint) Write(bs *bitstream.BitStream) {}
func (m *DisableCheckpoint) Read(bs *bitstream.BitStream) error { return nil }

type SetRaceCheckpoint struct {
	Type   uint8
	Pos    bitstream.Vec3
	Next   bitstream.Vec3
	Size   float32
}

func (m *SetRaceCheckpoint) MessageID() uint8          { return IDSetRaceCheckpoint }
func (m *SetRaceCheckpoint) MessageCategory() Category { return CategoryRPC }
func (m *SetRaceCheckpoint) MessageChannel() Channel   { return ChannelInternal }
func (m *SetRaceCheckpoint) Write(bs *bitstream.BitStream) {
	bs.WriteUint8(m.Type)
	bs.WriteVec3(m.Pos)
	bs.WriteVec3(m.Next)
	bs.WriteFloat(m.Size)
}
func (m *SetRaceCheckpoint) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Type, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Next, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.Size, err = bs.ReadFloat()
	return err
}

type DisableRaceCheckpoint struct{}

func (m *DisableRaceCheckpoint) MessageID() uint8             { return IDDisableRaceCheckpoint }
func (m *DisableRaceCheckpoint) MessageCategory() Category    { return CategoryRPC }
func (m *DisableRaceCheckpoint) MessageChannel() Channel      { return ChannelInternal }
func (m *DisableRaceCheckpoint) Write(bs *bitstream.BitStream) {}
func (m *DisableRaceCheckpoint) Read(bs *bitstream.BitStream) error { return nil }

func registerCheckpoint(c *Catalog) {
	c.Register(CategoryRPC, IDSetCheckpoint, func() Message { return &SetCheckpoint{} })
	c.Register(CategoryRPC, IDDisableCheckpoint, func() Message { return &DisableCheckpoint{} })
	c.Register(CategoryRPC, IDSetRaceCheckpoint, func() Message { return &SetRaceCheckpoint{} })
	c.Register(CategoryRPC, IDDisableRaceCheckpoint, func() Message { return &DisableRaceCheckpoint{} })
}
