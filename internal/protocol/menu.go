package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type PlayerInitMenu struct {
	MenuID      uint8
	TwoColumns  bool
	Title       string
	Pos         bitstream.Vec2
	Col1Width, Col2Width float32
	MenuItems   [12][2]string
	EnabledRows [12]bool
	ColumnHeaders [2]string
}

func (m *PlayerInitMenu) MessageID() uint8          { return IDPlayerInitMenu }
func (m *PlayerInitMenu) MessageCategory() Category { return CategoryRPC }
func (m *PlayerInitMenu) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerInitMenu) Write(bs *bitstream.BitStream) {
	bs.WriteUint8(m.MenuID)
	writeBoolByte(bs, m.TwoColumns)
	bs.WriteFixedStr([]byte(m.Title), 32)
	bs.WriteVec2(m.Pos)
	bs.WriteFloat(m.Col1Width)
	bs.WriteFloat(m.Col2Width)
	for _, row := range m.EnabledRows {
		writeBoolByte(bs, row)
	}
	for _, h := range m.ColumnHeaders {
		bs.WriteFixedStr([]byte(h), 32)
	}
	for _, row := range m.MenuItems {
		bs.WriteFixedStr([]byte(row[0]), 32)
		if m.TwoColumns {
			bs.WriteFixedStr([]byte(row[1]), 32)
		}
	}
}
func (m *PlayerInitMenu) Read(bs *bitstream.BitStream) error {
	var err error
	if m.MenuID, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.TwoColumns, err = readBoolByte(bs); err != nil {
		return err
	}
	title, err := bs.ReadFixedStr(32)
	if err != nil {
		return err
	}
	m.Title = string(title)
	if m.Pos, err = bs.ReadVec2(); err != nil {
		return err
	}
	if m.Col1Width, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.Col2Width, err = bs.ReadFloat(); err != nil {
		return err
	}
	for i := range m.EnabledRows {
		if m.EnabledRows[i], err = readBoolByte(bs); err != nil {
			return err
		}
	}
	for i := range m.ColumnHeaders {
		h, err := bs.ReadFixedStr(32)
		if err != nil {
			return err
		}
		m.ColumnHeaders[i] = string(h)
	}
	for i := range m.MenuItems {
		col0, err := bs.ReadFixedStr(32)
		if err != nil {
			return err
		}
		m.MenuItems[i][0] = string(col0)
		if m.TwoColumns {
			col1, err := bs.ReadFixedStr(32)
			if err != nil {
				return err
			}
			m.MenuItems[i][1] = string(col1)
		}
	}
	return nil
}

type PlayerShowMenu struct{ MenuID uint8 }

func (m *PlayerShowMenu) MessageID() uint8          { return IDPlayerShowMenu }
func (m *PlayerShowMenu) MessageCategory() Category { return CategoryRPC }
func (m *PlayerShowMenu) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerShowMenu) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.MenuID) }
func (m *PlayerShowMenu) Read(bs *bitstream.BitStream) error {
	var err error
	m.MenuID, err = bs.ReadUint8()
	return err
}

type PlayerHideMenu struct{ MenuID uint8 }

func (m *PlayerHideMenu) MessageID() uint8          { return IDPlayerHideMenu }
func (m *PlayerHideMenu) MessageCategory() Category { return CategoryRPC }
func (m *PlayerHideMenu) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerHideMenu) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.MenuID) }
func (m *PlayerHideMenu) Read(bs *bitstream.BitStream) error {
	var err error
	m.MenuID, err = bs.ReadUint8()
	return err
}

type OnPlayerSelectedMenuRow struct{ Row uint8 }

func (m *OnPlayerSelectedMenuRow) MessageID() uint8          { return IDOnPlayerSelectedMenuRow }
func (m *OnPlayerSelectedMenuRow) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerSelectedMenuRow) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerSelectedMenuRow) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.Row) }
func (m *OnPlayerSelectedMenuRow) Read(bs *bitstream.BitStream) error {
	var err error
	m.Row, err = bs.ReadUint8()
	return err
}

type OnPlayerExitedMenu struct{}

func (m *OnPlayerExitedMenu) MessageID() uint8             { return IDOnPlayerExitedMenu }
func (m *OnPlayerExitedMenu) MessageCategory() Category    { return CategoryRPC }
func (m *OnPlayerExitedMenu) MessageChannel() Channel      { return ChannelInternal }
func (m *OnPlayerExitedMenu) Write(bs *bitstream.BitStream) {}
func (m *OnPlayerExitedMenu) Read(bs *bitstream.BitStream) error { return nil }

func registerMenu(c *Catalog) {
	c.Register(CategoryRPC, IDPlayerInitMenu, func() Message { return &PlayerInitMenu{} })
	c.Register(CategoryRPC, IDPlayerShowMenu, func() Message { return &PlayerShowMenu{} })
	c.Register(CategoryRPC, IDPlayerHideMenu, func() Message { return &PlayerHideMenu{} })
	c.Register(CategoryRPC, IDOnPlayerSelectedMenuRow, func() Message { return &OnPlayerSelectedMenuRow{} })
	c.Register(CategoryRPC, IDOnPlayerExitedMenu, func() Message { return &OnPlayerExitedMenu{} })
}
