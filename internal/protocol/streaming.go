package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

// PlayerStreamIn/PlayerStreamOut are the player-class member of the
// streamer's candidate-set diff (spec.md §4.G); vehicle/object stream
// events live in vehicle.go/object.go since their wire payloads differ.
type PlayerStreamIn struct {
	PlayerID uint16
	Team     uint8
	Skin     uint32
	Pos      bitstream.Vec3
	Angle    float32
	Colour   uint32
	FightingStyle uint8
	SkillLevel    [11]uint16
}

func (m *PlayerStreamIn) MessageID() uint8          { return IDPlayerStreamIn }
func (m *PlayerStreamIn) MessageCategory() Category { return CategoryRPC }
func (m *PlayerStreamIn) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerStreamIn) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	bs.WriteUint8(m.Team)
	bs.WriteUint32(m.Skin)
	bs.WriteVec3(m.Pos)
	bs.WriteFloat(m.Angle)
	bs.WriteUint32(m.Colour)
	bs.WriteUint8(m.FightingStyle)
	for _, s := range m.SkillLevel {
		bs.WriteUint16(s)
	}
}
func (m *PlayerStreamIn) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Team, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Skin, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Angle, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.Colour, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.FightingStyle, err = bs.ReadUint8(); err != nil {
		return err
	}
	for i := range m.SkillLevel {
		if m.SkillLevel[i], err = bs.ReadUint16(); err != nil {
			return err
		}
	}
	return nil
}

type PlayerStreamOut struct{ PlayerID uint16 }

func (m *PlayerStreamOut) MessageID() uint8          { return IDPlayerStreamOut }
func (m *PlayerStreamOut) MessageCategory() Category { return CategoryRPC }
func (m *PlayerStreamOut) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerStreamOut) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.PlayerID) }
func (m *PlayerStreamOut) Read(bs *bitstream.BitStream) error {
	var err error
	m.PlayerID, err = bs.ReadUint16()
	return err
}

func registerStreaming(c *Catalog) {
	c.Register(CategoryRPC, IDPlayerStreamIn, func() Message { return &PlayerStreamIn{} })
	c.Register(CategoryRPC, IDPlayerStreamOut, func() Message { return &PlayerStreamOut{} })
}
