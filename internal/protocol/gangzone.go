package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type ShowGangZone struct {
	ZoneID uint16
	MinX, MinY, MaxX, MaxY float32
	Colour uint32
}

func (m *ShowGangZone) MessageID() uint8          { return IDShowGangZone }
func (m *ShowGangZone) MessageCategory() Category { return CategoryRPC }
func (m *ShowGangZone) MessageChannel() Channel   { return ChannelInternal }
func (m *ShowGangZone) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ZoneID)
	bs.WriteFloat(m.MinX)
	bs.WriteFloat(m.MinY)
	bs.WriteFloat(m.MaxX)
	bs.WriteFloat(m.MaxY)
	bs.WriteUint32(m.Colour)
}
func (m *ShowGangZone) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ZoneID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.MinX, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.MinY, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.MaxX, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.MaxY, err = bs.ReadFloat(); err != nil {
		return err
	}
	m.Colour, err = bs.ReadUint32()
	return err
}

type HideGangZone struct{ ZoneID uint16 }

func (m *HideGangZone) MessageID() uint8          { return IDHideGangZone }
func (m *HideGangZone) MessageCategory() Category { return CategoryRPC }
func (m *HideGangZone) MessageChannel() Channel   { return ChannelInternal }
func (m *HideGangZone) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.ZoneID) }
func (m *HideGangZone) Read(bs *bitstream.BitStream) error {
	var err error
	m.ZoneID, err = bs.ReadUint16()
	return err
}

type FlashGangZone struct {
	ZoneID uint16
	Colour uint32
}

func (m *FlashGangZone) MessageID() uint8          { return IDFlashGangZone }
func (m *FlashGangZone) MessageCategory() Category { return CategoryRPC }
func (m *FlashGangZone) MessageChannel() Channel   { return ChannelInternal }
func (m *FlashGangZone) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ZoneID)
	bs.WriteUint32(m.Colour)
}
func (m *FlashGangZone) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ZoneID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Colour, err = bs.ReadUint32()
	return err
}

type StopFlashGangZone struct{ ZoneID uint16 }

func (m *StopFlashGangZone) MessageID() uint8          { return IDStopFlashGangZone }
func (m *StopFlashGangZone) MessageCategory() Category { return CategoryRPC }
func (m *StopFlashGangZone) MessageChannel() Channel   { return ChannelInternal }
func (m *StopFlashGangZone) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.ZoneID) }
func (m *StopFlashGangZone) Read(bs *bitstream.BitStream) error {
	var err error
	m.ZoneID, err = bs.ReadUint16()
	return err
}

func registerGangZone(c *Catalog) {
	c.Register(CategoryRPC, IDShowGangZone, func() Message { return &ShowGangZone{} })
	c.Register(CategoryRPC, IDHideGangZone, func() Message { return &HideGangZone{} })
	c.Register(CategoryRPC, IDFlashGangZone, func() Message { return &FlashGangZone{} })
	c.Register(CategoryRPC, IDStopFlashGangZone, func() Message { return &StopFlashGangZone{} })
}
