package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type ShowActorForPlayer struct {
	ActorID uint16
	ModelID uint32
	Pos     bitstream.Vec3
	Angle   float32
	Health  float32
	Invulnerable bool
}

func (m *ShowActorForPlayer) MessageID() uint8          { return IDShowActorForPlayer }
func (m *ShowActorForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *ShowActorForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *ShowActorForPlayer) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ActorID)
	bs.WriteUint32(m.ModelID)
	bs.WriteVec3(m.Pos)
	bs.WriteFloat(m.Angle)
	bs.WriteFloat(m.Health)
	writeBoolByte(bs, m.Invulnerable)
}
func (m *ShowActorForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ActorID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.ModelID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Angle, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.Health, err = bs.ReadFloat(); err != nil {
		return err
	}
	m.Invulnerable, err = readBoolByte(bs)
	return err
}

type HideActorForPlayer struct{ ActorID uint16 }

func (m *HideActorForPlayer) MessageID() uint8          { return IDHideActorForPlayer }
func (m *HideActorForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *HideActorForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *HideActorForPlayer) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.ActorID) }
func (m *HideActorForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	m.ActorID, err = bs.ReadUint16()
	return err
}

type ApplyActorAnimationForPlayer struct {
	ActorID uint16
	AnimLib string
	AnimName string
	Delta   float32
	Loop, LockX, LockY, Freeze bool
	Time    uint32
}

func (m *ApplyActorAnimationForPlayer) MessageID() uint8 { return IDApplyActorAnimationForPlayer }
func (m *ApplyActorAnimationForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *ApplyActorAnimationForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *ApplyActorAnimationForPlayer) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ActorID)
	writeStr8(bs, m.AnimLib)
	writeStr8(bs, m.AnimName)
	bs.WriteFloat(m.Delta)
	writeBoolByte(bs, m.Loop)
	writeBoolByte(bs, m.LockX)
	writeBoolByte(bs, m.LockY)
	writeBoolByte(bs, m.Freeze)
	bs.WriteUint32(m.Time)
}
func (m *ApplyActorAnimationForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ActorID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.AnimLib, err = readStr8(bs); err != nil {
		return err
	}
	if m.AnimName, err = readStr8(bs); err != nil {
		return err
	}
	if m.Delta, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.Loop, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.LockX, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.LockY, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.Freeze, err = readBoolByte(bs); err != nil {
		return err
	}
	m.Time, err = bs.ReadUint32()
	return err
}

type ClearActorAnimationsForPlayer struct{ ActorID uint16 }

func (m *ClearActorAnimationsForPlayer) MessageID() uint8 { return IDClearActorAnimationsForPlayer }
func (m *ClearActorAnimationsForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *ClearActorAnimationsForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *ClearActorAnimationsForPlayer) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.ActorID) }
func (m *ClearActorAnimationsForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	m.ActorID, err = bs.ReadUint16()
	return err
}

type SetActorFacingAngleForPlayer struct {
	ActorID uint16
	Angle   float32
}

func (m *SetActorFacingAngleForPlayer) MessageID() uint8 { return IDSetActorFacingAngleForPlayer }
func (m *SetActorFacingAngleForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *SetActorFacingAngleForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *SetActorFacingAngleForPlayer) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ActorID)
	bs.WriteFloat(m.Angle)
}
func (m *SetActorFacingAngleForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ActorID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Angle, err = bs.ReadFloat()
	return err
}

type SetActorPosForPlayer struct {
	ActorID uint16
	Pos     bitstream.Vec3
}

func (m *SetActorPosForPlayer) MessageID() uint8          { return IDSetActorPosForPlayer }
func (m *SetActorPosForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *SetActorPosForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *SetActorPosForPlayer) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ActorID)
	bs.WriteVec3(m.Pos)
}
func (m *SetActorPosForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ActorID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Pos, err = bs.ReadVec3()
	return err
}

type SetActorHealthForPlayer struct {
	ActorID uint16
	Health  float32
}

func (m *SetActorHealthForPlayer) MessageID() uint8          { return IDSetActorHealthForPlayer }
func (m *SetActorHealthForPlayer) MessageCategory() Category { return CategoryRPC }
func (m *SetActorHealthForPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *SetActorHealthForPlayer) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ActorID)
	bs.WriteFloat(m.Health)
}
func (m *SetActorHealthForPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ActorID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Health, err = bs.ReadFloat()
	return err
}

func registerActor(c *Catalog) {
	c.Register(CategoryRPC, IDShowActorForPlayer, func() Message { return &ShowActorForPlayer{} })
	c.Register(CategoryRPC, IDHideActorForPlayer, func() Message { return &HideActorForPlayer{} })
	c.Register(CategoryRPC, IDApplyActorAnimationForPlayer, func() Message { return &ApplyActorAnimationForPlayer{} })
	c.Register(CategoryRPC, IDClearActorAnimationsForPlayer, func() Message { return &ClearActorAnimationsForPlayer{} })
	c.Register(CategoryRPC, IDSetActorFacingAngleForPlayer, func() Message { return &SetActorFacingAngleForPlayer{} })
	c.Register(CategoryRPC, IDSetActorPosForPlayer, func() Message { return &SetActorPosForPlayer{} })
	c.Register(CategoryRPC, IDSetActorHealthForPlayer, func() Message { return &SetActorHealthForPlayer{} })
}
