package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type PlayerShowTextDraw struct {
	TextDrawID uint16
	Flags      uint16
	LetterWidth, LetterHeight float32
	LetterColour uint32
	Pos        bitstream.Vec2
	BoxSize    bitstream.Vec2
	BoxColour  uint32
	Shadow, Outline uint8
	BackColour uint32
	Style      uint8
	Selectable uint8
	ModelID    uint16
	Rotation   bitstream.Vec3
	Zoom       float32
	Preview    [2]int16
	Text       string
}

func (m *PlayerShowTextDraw) MessageID() uint8          { return IDPlayerShowTextDraw }
func (m *PlayerShowTextDraw) MessageCategory() Category { return CategoryRPC }
func (m *PlayerShowTextDraw) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerShowTextDraw) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.TextDrawID)
	bs.WriteUint16(m.Flags)
	bs.WriteFloat(m.LetterWidth)
	bs.WriteFloat(m.LetterHeight)
	bs.WriteUint32(m.LetterColour)
	bs.WriteVec2(m.Pos)
	bs.WriteVec2(m.BoxSize)
	bs.WriteUint32(m.BoxColour)
	bs.WriteUint8(m.Shadow)
	bs.WriteUint8(m.Outline)
	bs.WriteUint32(m.BackColour)
	bs.WriteUint8(m.Style)
	bs.WriteUint8(m.Selectable)
	bs.WriteUint16(m.ModelID)
	bs.WriteVec3(m.Rotation)
	bs.WriteFloat(m.Zoom)
	bs.WriteInt16(m.Preview[0])
	bs.WriteInt16(m.Preview[1])
	writeStr32(bs, m.Text)
}
func (m *PlayerShowTextDraw) Read(bs *bitstream.BitStream) error {
	var err error
	if m.TextDrawID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Flags, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.LetterWidth, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.LetterHeight, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.LetterColour, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec2(); err != nil {
		return err
	}
	if m.BoxSize, err = bs.ReadVec2(); err != nil {
		return err
	}
	if m.BoxColour, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Shadow, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Outline, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.BackColour, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Style, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Selectable, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.ModelID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Rotation, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Zoom, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.Preview[0], err = bs.ReadInt16(); err != nil {
		return err
	}
	if m.Preview[1], err = bs.ReadInt16(); err != nil {
		return err
	}
	m.Text, err = readStr32(bs)
	return err
}

type PlayerHideTextDraw struct{ TextDrawID uint16 }

func (m *PlayerHideTextDraw) MessageID() uint8          { return IDPlayerHideTextDraw }
func (m *PlayerHideTextDraw) MessageCategory() Category { return CategoryRPC }
func (m *PlayerHideTextDraw) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerHideTextDraw) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.TextDrawID) }
func (m *PlayerHideTextDraw) Read(bs *bitstream.BitStream) error {
	var err error
	m.TextDrawID, err = bs.ReadUint16()
	return err
}

type PlayerTextDrawSetString struct {
	TextDrawID uint16
	Text       string
}

func (m *PlayerTextDrawSetString) MessageID() uint8          { return IDPlayerTextDrawSetString }
func (m *PlayerTextDrawSetString) MessageCategory() Category { return CategoryRPC }
func (m *PlayerTextDrawSetString) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerTextDrawSetString) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.TextDrawID)
	writeStr32(bs, m.Text)
}
func (m *PlayerTextDrawSetString) Read(bs *bitstream.BitStream) error {
	var err error
	if m.TextDrawID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Text, err = readStr32(bs)
	return err
}

type PlayerBeginTextDrawSelect struct{ EnableSelect bool }

func (m *PlayerBeginTextDrawSelect) MessageID() uint8          { return IDPlayerBeginTextDrawSelect }
func (m *PlayerBeginTextDrawSelect) MessageCategory() Category { return CategoryRPC }
func (m *PlayerBeginTextDrawSelect) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerBeginTextDrawSelect) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.EnableSelect)
}
func (m *PlayerBeginTextDrawSelect) Read(bs *bitstream.BitStream) error {
	var err error
	m.EnableSelect, err = readBoolByte(bs)
	return err
}

type OnPlayerSelectTextDraw struct {
	TextDrawID uint16
	Invalid    bool
}

func (m *OnPlayerSelectTextDraw) MessageID() uint8          { return IDOnPlayerSelectTextDraw }
func (m *OnPlayerSelectTextDraw) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerSelectTextDraw) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerSelectTextDraw) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.Invalid)
	bs.WriteUint16(m.TextDrawID)
}
func (m *OnPlayerSelectTextDraw) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Invalid, err = readBoolByte(bs); err != nil {
		return err
	}
	m.TextDrawID, err = bs.ReadUint16()
	return err
}

func registerTextDraw(c *Catalog) {
	c.Register(CategoryRPC, IDPlayerShowTextDraw, func() Message { return &PlayerShowTextDraw{} })
	c.Register(CategoryRPC, IDPlayerHideTextDraw, func() Message { return &PlayerHideTextDraw{} })
	c.Register(CategoryRPC, IDPlayerTextDrawSetString, func() Message { return &PlayerTextDrawSetString{} })
	c.Register(CategoryRPC, IDPlayerBeginTextDrawSelect, func() Message { return &PlayerBeginTextDrawSelect{} })
}
