package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type RemoveBuildingForPlayer struct {
	ModelID uint32
	Pos     bitstream.Vec3
	Radius  float32
}

func (m *RemoveBuildingForPlayer) MessageID() uint8          { return IDRemoveBuildingForPlayer }
func (m *RemoveBuildingForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *RemoveBuildingForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *RemoveBuildingForPlayer) Write(bs *bitstream.BitStream) {
	bs.WriteUint32(m.ModelID)
	bs.WriteVec3(m.Pos)
	bs.WriteFloat(m.Radius)
}
func (m *RemoveBuildingForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ModelID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.Radius, err = bs.ReadFloat()
	return err
}

type SetPlayerTime struct{ Hour, Minute uint8 }

func (m *SetPlayerTime) MessageID() uint8          { return IDSetPlayerTime }
func (m *SetPlayerTime) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerTime) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerTime) Write(bs *bitstream.BitStream) {
	bs.WriteUint8(m.Hour)
	bs.WriteUint8(m.Minute)
}
func (m *SetPlayerTime) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Hour, err = bs.ReadUint8(); err != nil {
		return err
	}
	m.Minute, err = bs.ReadUint8()
	return err
}

type TogglePlayerClock struct{ Enable bool }

func (m *TogglePlayerClock) MessageID() uint8          { return IDTogglePlayerClock }
func (m *TogglePlayerClock) MessageCategory() Category { return CategoryRPC }
func (m *TogglePlayerClock) MessageChannel() Channel   { return ChannelInternal }
func (m *TogglePlayerClock) Write(bs *bitstream.BitStream) { writeBoolByte(bs, m.Enable) }
func (m *TogglePlayerClock) Read(bs *bitstream.BitStream) error {
	var err error
	m.Enable, err = readBoolByte(bs)
	return err
}

type SetPlayerWorldTime struct{ Hour uint8 }

func (m *SetPlayerWorldTime) MessageID() uint8          { return IDSetPlayerWorldTime }
func (m *SetPlayerWorldTime) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerWorldTime) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerWorldTime) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.Hour) }
func (m *SetPlayerWorldTime) Read(bs *bitstream.BitStream) error {
	var err error
	m.Hour, err = bs.ReadUint8()
	return err
}

type SetPlayerWeather struct{ WeatherID uint8 }

func (m *SetPlayerWeather) MessageID() uint8          { return IDSetPlayerWeather }
func (m *SetPlayerWeather) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerWeather) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerWeather) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.WeatherID) }
func (m *SetPlayerWeather) Read(bs *bitstream.BitStream) error {
	var err error
	m.WeatherID, err = bs.ReadUint8()
	return err
}

type SendGameTimeUpdate struct{ Time uint32 }

func (m *SendGameTimeUpdate) MessageID() uint8          { return IDSendGameTimeUpdate }
func (m *SendGameTimeUpdate) MessageCategory() Category { return CategoryRPC }
func (m *SendGameTimeUpdate) MessageChannel() Channel   { return ChannelInternal }
func (m *SendGameTimeUpdate) Write(bs *bitstream.BitStream) { bs.WriteUint32(m.Time) }
func (m *SendGameTimeUpdate) Read(bs *bitstream.BitStream) error {
	var err error
	m.Time, err = bs.ReadUint32()
	return err
}

type SetPlayerMapIcon struct {
	IconID uint8
	Pos    bitstream.Vec3
	Type   uint8
	Colour uint32
	Style  uint8
}

func (m *SetPlayerMapIcon) MessageID() uint8          { return IDSetPlayerMapIcon }
func (m *SetPlayerMapIcon) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerMapIcon) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerMapIcon) Write(bs *bitstream.BitStream) {
	bs.WriteUint8(m.IconID)
	bs.WriteVec3(m.Pos)
	bs.WriteUint8(m.Type)
	bs.WriteUint32(m.Colour)
	bs.WriteUint8(m.Style)
}
func (m *SetPlayerMapIcon) Read(bs *bitstream.BitStream) error {
	var err error
	if m.IconID, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Type, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Colour, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Style, err = bs.ReadUint8()
	return err
}

type RemovePlayerMapIcon struct{ IconID uint8 }

func (m *RemovePlayerMapIcon) MessageID() uint8          { return IDRemovePlayerMapIcon }
func (m *RemovePlayerMapIcon) MessageCategory() Category { return CategoryRPC }
func (m *RemovePlayerMapIcon) MessageChannel() Channel   { return ChannelInternal }
func (m *RemovePlayerMapIcon) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.IconID) }
func (m *RemovePlayerMapIcon) Read(bs *bitstream.BitStream) error {
	var err error
	m.IconID, err = bs.ReadUint8()
	return err
}

type ShowPlayerNameTagForPlayer struct {
	PlayerID uint16
	Show     bool
}

func (m *ShowPlayerNameTagForPlayer) MessageID() uint8          { return IDShowPlayerNameTagForPlayer }
func (m *ShowPlayerNameTagForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *ShowPlayerNameTagForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *ShowPlayerNameTagForPlayer) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	writeBoolByte(bs, m.Show)
}
func (m *ShowPlayerNameTagForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Show, err = readBoolByte(bs)
	return err
}

type EnableStuntBonusForPlayer struct{ Enable bool }

func (m *EnableStuntBonusForPlayer) MessageID() uint8          { return IDEnableStuntBonusForPlayer }
func (m *EnableStuntBonusForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *EnableStuntBonusForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *EnableStuntBonusForPlayer) Write(bs *bitstream.BitStream) { writeBoolByte(bs, m.Enable) }
func (m *EnableStuntBonusForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	m.Enable, err = readBoolByte(bs)
	return err
}

type OnPlayerClickMap struct{ Pos bitstream.Vec3 }

func (m *OnPlayerClickMap) MessageID() uint8          { return IDOnPlayerClickMap }
func (m *OnPlayerClickMap) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerClickMap) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerClickMap) Write(bs *bitstream.BitStream) { bs.WriteVec3(m.Pos) }
func (m *OnPlayerClickMap) Read(bs *bitstream.BitStream) error {
	var err error
	m.Pos, err = bs.ReadVec3()
	return err
}

type OnPlayerClickPlayer struct {
	PlayerID uint16
	Source   uint8
}

func (m *OnPlayerClickPlayer) MessageID() uint8          { return IDOnPlayerClickPlayer }
func (m *OnPlayerClickPlayer) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerClickPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerClickPlayer) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.PlayerID)
	bs.WriteUint8(m.Source)
}
func (m *OnPlayerClickPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Source, err = bs.ReadUint8()
	return err
}

type OnPlayerInteriorChange struct {
	InteriorID uint8
}

func (m *OnPlayerInteriorChange) MessageID() uint8          { return IDOnPlayerInteriorChange }
func (m *OnPlayerInteriorChange) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerInteriorChange) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerInteriorChange) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.InteriorID) }
func (m *OnPlayerInteriorChange) Read(bs *bitstream.BitStream) error {
	var err error
	m.InteriorID, err = bs.ReadUint8()
	return err
}

func registerWorld(c *Catalog) {
	c.Register(CategoryRPC, IDRemoveBuildingForPlayer, func() Message { return &RemoveBuildingForPlayer{} })
	c.Register(CategoryRPC, IDSetPlayerTime, func() Message { return &SetPlayerTime{} })
	c.Register(CategoryRPC, IDTogglePlayerClock, func() Message { return &TogglePlayerClock{} })
	c.Register(CategoryRPC, IDSetPlayerWorldTime, func() Message { return &SetPlayerWorldTime{} })
	c.Register(CategoryRPC, IDSetPlayerWeather, func() Message { return &SetPlayerWeather{} })
	c.Register(CategoryRPC, IDSendGameTimeUpdate, func() Message { return &SendGameTimeUpdate{} })
	c.Register(CategoryRPC, IDSetPlayerMapIcon, func() Message { return &SetPlayerMapIcon{} })
	c.Register(CategoryRPC, IDRemovePlayerMapIcon, func() Message { return &RemovePlayerMapIcon{} })
	c.Register(CategoryRPC, IDShowPlayerNameTagForPlayer, func() Message { return &ShowPlayerNameTagForPlayer{} })
	c.Register(CategoryRPC, IDEnableStuntBonusForPlayer, func() Message { return &EnableStuntBonusForPlayer{} })
	c.Register(CategoryRPC, IDOnPlayerClickMap, func() Message { return &OnPlayerClickMap{} })
	c.Register(CategoryRPC, IDOnPlayerClickPlayer, func() Message { return &OnPlayerClickPlayer{} })
	c.Register(CategoryRPC, IDOnPlayerInteriorChange, func() Message { return &OnPlayerInteriorChange{} })
}
