package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type ShowDialog struct {
	DialogID uint16
	Style    uint8
	Caption  string
	Info     string
	Button1  string
	Button2  string
}

func (m *ShowDialog) MessageID() uint8          { return IDShowDialog }
func (m *ShowDialog) MessageCategory() Category { return CategoryRPC }
func (m *ShowDialog) MessageChannel() Channel   { return ChannelInternal }
func (m *ShowDialog) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.DialogID)
	bs.WriteUint8(m.Style)
	writeStr8(bs, m.Button1)
	writeStr8(bs, m.Button2)
	writeStr8(bs, m.Caption)
	writeStr16(bs, m.Info)
}
func (m *ShowDialog) Read(bs *bitstream.BitStream) error {
	var err error
	if m.DialogID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Style, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Button1, err = readStr8(bs); err != nil {
		return err
	}
	if m.Button2, err = readStr8(bs); err != nil {
		return err
	}
	if m.Caption, err = readStr8(bs); err != nil {
		return err
	}
	m.Info, err = readStr16(bs)
	return err
}

// OnPlayerDialogResponse shares RPC 62 (distinct from ShowDialog's 61).
type OnPlayerDialogResponse struct {
	DialogID uint16
	Response uint8
	ListItem uint16
	InputText string
}

func (m *OnPlayerDialogResponse) MessageID() uint8          { return IDOnPlayerDialogResponse }
func (m *OnPlayerDialogResponse) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerDialogResponse) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerDialogResponse) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.DialogID)
	bs.WriteUint8(m.Response)
	bs.WriteUint16(m.ListItem)
	writeStr8(bs, m.InputText)
}
func (m *OnPlayerDialogResponse) Read(bs *bitstream.BitStream) error {
	var err error
	if m.DialogID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Response, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.ListItem, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.InputText, err = readStr8(bs)
	return err
}

func registerDialog(c *Catalog) {
	c.Register(CategoryRPC, IDShowDialog, func() Message { return &ShowDialog{} })
	c.Register(CategoryRPC, IDOnPlayerDialogResponse, func() Message { return &OnPlayerDialogResponse{} })
}
