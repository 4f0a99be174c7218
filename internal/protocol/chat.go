package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type SendClientMessage struct {
	Colour  uint32
	Message string
}

func (m *SendClientMessage) MessageID() uint8          { return IDSendClientMessage }
func (m *SendClientMessage) MessageCategory() Category { return CategoryRPC }
func (m *SendClientMessage) MessageChannel() Channel   { return ChannelInternal }
func (m *SendClientMessage) Write(bs *bitstream.BitStream) {
	bs.WriteUint32(m.Colour)
	writeStr32(bs, m.Message)
}
func (m *SendClientMessage) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Colour, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Message, err = readStr32(bs)
	return err
}

type PlayerRequestChatMessage struct{ Message string }

func (m *PlayerRequestChatMessage) MessageID() uint8          { return IDPlayerRequestChatMessage }
func (m *PlayerRequestChatMessage) MessageCategory() Category { return CategoryRPC }
func (m *PlayerRequestChatMessage) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerRequestChatMessage) Write(bs *bitstream.BitStream) { writeStr8(bs, m.Message) }
func (m *PlayerRequestChatMessage) Read(bs *bitstream.BitStream) error {
	var err error
	m.Message, err = readStr8(bs)
	return err
}

type PlayerRequestCommandMessage struct{ Command string }

func (m *PlayerRequestCommandMessage) MessageID() uint8          { return IDPlayerRequestCommandMessage }
func (m *PlayerRequestCommandMessage) MessageCategory() Category { return CategoryRPC }
func (m *PlayerRequestCommandMessage) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerRequestCommandMessage) Write(bs *bitstream.BitStream) { writeStr8(bs, m.Command) }
func (m *PlayerRequestCommandMessage) Read(bs *bitstream.BitStream) error {
	var err error
	m.Command, err = readStr8(bs)
	return err
}

type SetPlayerChatBubble struct {
	PlayerID uint16
	Colour   uint32
	Radius   float32
	Duration uint32
	Text     string
}

func (m *SetPlayerChatBubble) MessageID() uint8          { return IDSetPlayerChatBubble }
func (m *SetPlayerChatBubble) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerChatBubble) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerChatBubble) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	bs.WriteUint32(m.Colour)
	bs.WriteFloat(m.Radius)
	bs.WriteUint32(m.Duration)
	writeStr8(bs, m.Text)
}
func (m *SetPlayerChatBubble) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Colour, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Radius, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.Duration, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Text, err = readStr8(bs)
	return err
}

type SendGameText struct {
	Text     string
	Time     uint32
	Style    uint32
}

func (m *SendGameText) MessageID() uint8          { return IDSendGameText }
func (m *SendGameText) MessageCategory() Category { return CategoryRPC }
func (m *SendGameText) MessageChannel() Channel   { return ChannelInternal }
func (m *SendGameText) Write(bs *bitstream.BitStream) {
	writeStr32(bs, m.Text)
	bs.WriteUint32(m.Time)
	bs.WriteUint32(m.Style)
}
func (m *SendGameText) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Text, err = readStr32(bs); err != nil {
		return err
	}
	if m.Time, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Style, err = bs.ReadUint32()
	return err
}

type SetPlayerShopName struct{ ShopName string }

func (m *SetPlayerShopName) MessageID() uint8          { return IDSetPlayerShopName }
func (m *SetPlayerShopName) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerShopName) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerShopName) Write(bs *bitstream.BitStream) { bs.WriteFixedStr([]byte(m.ShopName), 32) }
func (m *SetPlayerShopName) Read(bs *bitstream.BitStream) error {
	b, err := bs.ReadFixedStr(32)
	if err != nil {
		return err
	}
	m.ShopName = string(b)
	return nil
}

type SetPlayerDrunkLevel struct{ Level uint32 }

func (m *SetPlayerDrunkLevel) MessageID() uint8          { return IDSetPlayerDrunkLevel }
func (m *SetPlayerDrunkLevel) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerDrunkLevel) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerDrunkLevel) Write(bs *bitstream.BitStream) { bs.WriteUint32(m.Level) }
func (m *SetPlayerDrunkLevel) Read(bs *bitstream.BitStream) error {
	var err error
	m.Level, err = bs.ReadUint32()
	return err
}

type PlayAudioStreamForPlayer struct {
	URL            string
	Pos            bitstream.Vec3
	Radius         float32
	UsePos         bool
}

func (m *PlayAudioStreamForPlayer) MessageID() uint8          { return IDPlayAudioStreamForPlayer }
func (m *PlayAudioStreamForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *PlayAudioStreamForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayAudioStreamForPlayer) Write(bs *bitstream.BitStream) {
	writeStr8(bs, m.URL)
	bs.WriteVec3(m.Pos)
	bs.WriteFloat(m.Radius)
	writeBoolByte(bs, m.UsePos)
}
func (m *PlayAudioStreamForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.URL, err = readStr8(bs); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Radius, err = bs.ReadFloat(); err != nil {
		return err
	}
	m.UsePos, err = readBoolByte(bs)
	return err
}

type StopAudioStreamForPlayer struct{}

func (m *StopAudioStreamForPlayer) MessageID() uint8             { return IDStopAudioStreamForPlayer }
func (m *StopAudioStreamForPlayer) MessageCategory() Category    { return CategoryRPC }
func (m *StopAudioStreamForPlayer) MessageChannel() Channel      { return ChannelInternal }
func (m *StopAudioStreamForPlayer) Write(bs *bitstream.BitStream) {}
func (m *StopAudioStreamForPlayer) Read(bs *bitstream.BitStream) error { return nil }

type PlayCrimeReport struct {
	Suspect  uint16
	Pos      bitstream.Vec3
	Audio    uint32
}

func (m *PlayCrimeReport) MessageID() uint8          { return IDPlayCrimeReport }
func (m *PlayCrimeReport) MessageCategory() Category { return CategoryRPC }
func (m *PlayCrimeReport) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayCrimeReport) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.Suspect)
	bs.WriteVec3(m.Pos)
	bs.WriteUint32(m.Audio)
}
func (m *PlayCrimeReport) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Suspect, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.Audio, err = bs.ReadUint32()
	return err
}

type PlayerPlaySound struct {
	SoundID uint32
	Pos     bitstream.Vec3
}

func (m *PlayerPlaySound) MessageID() uint8          { return IDPlayerPlaySound }
func (m *PlayerPlaySound) MessageCategory() Category { return CategoryRPC }
func (m *PlayerPlaySound) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerPlaySound) Write(bs *bitstream.BitStream) {
	bs.WriteUint32(m.SoundID)
	bs.WriteVec3(m.Pos)
}
func (m *PlayerPlaySound) Read(bs *bitstream.BitStream) error {
	var err error
	if m.SoundID, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Pos, err = bs.ReadVec3()
	return err
}

func registerChat(c *Catalog) {
	c.Register(CategoryRPC, IDSendClientMessage, func() Message { return &SendClientMessage{} })
	c.Register(CategoryRPC, IDPlayerRequestChatMessage, func() Message { return &PlayerRequestChatMessage{} })
	c.Register(CategoryRPC, IDPlayerRequestCommandMessage, func() Message { return &PlayerRequestCommandMessage{} })
	c.Register(CategoryRPC, IDSetPlayerChatBubble, func() Message { return &SetPlayerChatBubble{} })
	c.Register(CategoryRPC, IDSendGameText, func() Message { return &SendGameText{} })
	c.Register(CategoryRPC, IDSetPlayerShopName, func() Message { return &SetPlayerShopName{} })
	c.Register(CategoryRPC, IDSetPlayerDrunkLevel, func() Message { return &SetPlayerDrunkLevel{} })
	c.Register(CategoryRPC, IDPlayAudioStreamForPlayer, func() Message { return &PlayAudioStreamForPlayer{} })
	c.Register(CategoryRPC, IDStopAudioStreamForPlayer, func() Message { return &StopAudioStreamForPlayer{} })
	c.Register(CategoryRPC, IDPlayCrimeReport, func() Message { return &PlayCrimeReport{} })
	c.Register(CategoryRPC, IDPlayerPlaySound, func() Message { return &PlayerPlaySound{} })
}
