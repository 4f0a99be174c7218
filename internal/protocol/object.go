package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type CreateObject struct {
	ObjectID uint16
	ModelID  uint32
	Pos      bitstream.Vec3
	Rot      bitstream.Vec3
	DrawDistance float32
	NoCameraCol  bool
	AttachedVehicle uint16
	AttachedObject  uint16
	AttachOffset    bitstream.Vec3
	AttachRot       bitstream.Vec3
	AttachSync      bool
}

func (m *CreateObject) MessageID() uint8          { return IDCreateObject }
func (m *CreateObject) MessageCategory() Category { return CategoryRPC }
func (m *CreateObject) MessageChannel() Channel   { return ChannelInternal }
func (m *CreateObject) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ObjectID)
	bs.WriteUint32(m.ModelID)
	bs.WriteVec3(m.Pos)
	bs.WriteVec3(m.Rot)
	bs.WriteFloat(m.DrawDistance)
	writeBoolByte(bs, m.NoCameraCol)
	bs.WriteUint16(m.AttachedVehicle)
	bs.WriteUint16(m.AttachedObject)
	bs.WriteVec3(m.AttachOffset)
	bs.WriteVec3(m.AttachRot)
	writeBoolByte(bs, m.AttachSync)
}
func (m *CreateObject) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ObjectID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.ModelID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Rot, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.DrawDistance, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.NoCameraCol, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.AttachedVehicle, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.AttachedObject, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.AttachOffset, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.AttachRot, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.AttachSync, err = readBoolByte(bs)
	return err
}

type DestroyObject struct{ ObjectID uint16 }

func (m *DestroyObject) MessageID() uint8          { return IDDestroyObject }
func (m *DestroyObject) MessageCategory() Category { return CategoryRPC }
func (m *DestroyObject) MessageChannel() Channel   { return ChannelInternal }
func (m *DestroyObject) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.ObjectID) }
func (m *DestroyObject) Read(bs *bitstream.BitStream) error {
	var err error
	m.ObjectID, err = bs.ReadUint16()
	return err
}

type MoveObject struct {
	ObjectID uint16
	Target   bitstream.Vec3
	Speed    float32
	TargetRot bitstream.Vec3
}

func (m *MoveObject) MessageID() uint8          { return IDMoveObject }
func (m *MoveObject) MessageCategory() Category { return CategoryRPC }
func (m *MoveObject) MessageChannel() Channel   { return ChannelInternal }
func (m *MoveObject) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ObjectID)
	bs.WriteVec3(m.Target)
	bs.WriteFloat(m.Speed)
	bs.WriteVec3(m.TargetRot)
}
func (m *MoveObject) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ObjectID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Target, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Speed, err = bs.ReadFloat(); err != nil {
		return err
	}
	m.TargetRot, err = bs.ReadVec3()
	return err
}

type StopObject struct{ ObjectID uint16 }

func (m *StopObject) MessageID() uint8          { return IDStopObject }
func (m *StopObject) MessageCategory() Category { return CategoryRPC }
func (m *StopObject) MessageChannel() Channel   { return ChannelInternal }
func (m *StopObject) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.ObjectID) }
func (m *StopObject) Read(bs *bitstream.BitStream) error {
	var err error
	m.ObjectID, err = bs.ReadUint16()
	return err
}

type SetObjectPosition struct {
	ObjectID uint16
	Pos      bitstream.Vec3
}

func (m *SetObjectPosition) MessageID() uint8          { return IDSetObjectPosition }
func (m *SetObjectPosition) MessageCategory() Category { return CategoryRPC }
func (m *SetObjectPosition) MessageChannel() Channel   { return ChannelInternal }
func (m *SetObjectPosition) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ObjectID)
	bs.WriteVec3(m.Pos)
}
func (m *SetObjectPosition) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ObjectID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Pos, err = bs.ReadVec3()
	return err
}

type SetObjectRotation struct {
	ObjectID uint16
	Rot      bitstream.Vec3
}

func (m *SetObjectRotation) MessageID() uint8          { return IDSetObjectRotation }
func (m *SetObjectRotation) MessageCategory() Category { return CategoryRPC }
func (m *SetObjectRotation) MessageChannel() Channel   { return ChannelInternal }
func (m *SetObjectRotation) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ObjectID)
	bs.WriteVec3(m.Rot)
}
func (m *SetObjectRotation) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ObjectID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Rot, err = bs.ReadVec3()
	return err
}

type AttachObjectToPlayer struct {
	ObjectID uint16
	PlayerID uint16
	Offset   bitstream.Vec3
	Rot      bitstream.Vec3
}

func (m *AttachObjectToPlayer) MessageID() uint8          { return IDAttachObjectToPlayer }
func (m *AttachObjectToPlayer) MessageCategory() Category { return CategoryRPC }
func (m *AttachObjectToPlayer) MessageChannel() Channel   { return ChannelInternal }
func (m *AttachObjectToPlayer) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ObjectID)
	bs.WriteUint16(m.PlayerID)
	bs.WriteVec3(m.Offset)
	bs.WriteVec3(m.Rot)
}
func (m *AttachObjectToPlayer) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ObjectID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Offset, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.Rot, err = bs.ReadVec3()
	return err
}

type SetPlayerObjectMaterial struct {
	ObjectID   uint16
	MaterialIndex uint8
	ModelID    uint32
	TxdName    string
	TextureName string
	Colour     uint32
}

func (m *SetPlayerObjectMaterial) MessageID() uint8          { return IDSetPlayerObjectMaterial }
func (m *SetPlayerObjectMaterial) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerObjectMaterial) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerObjectMaterial) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ObjectID)
	bs.WriteUint8(m.MaterialIndex)
	bs.WriteUint32(m.ModelID)
	writeStr8(bs, m.TxdName)
	writeStr8(bs, m.TextureName)
	bs.WriteUint32(m.Colour)
}
func (m *SetPlayerObjectMaterial) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ObjectID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.MaterialIndex, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.ModelID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.TxdName, err = readStr8(bs); err != nil {
		return err
	}
	if m.TextureName, err = readStr8(bs); err != nil {
		return err
	}
	m.Colour, err = bs.ReadUint32()
	return err
}

type SetPlayerAttachedObject struct {
	Index    uint8
	Attach   bool
	ModelID  uint32
	BoneID   uint32
	Offset   bitstream.Vec3
	Rot      bitstream.Vec3
	Scale    bitstream.Vec3
}

func (m *SetPlayerAttachedObject) MessageID() uint8          { return IDSetPlayerAttachedObject }
func (m *SetPlayerAttachedObject) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerAttachedObject) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerAttachedObject) Write(bs *bitstream.BitStream) {
	bs.WriteUint8(m.Index)
	writeBoolByte(bs, m.Attach)
	bs.WriteUint32(m.ModelID)
	bs.WriteUint32(m.BoneID)
	bs.WriteVec3(m.Offset)
	bs.WriteVec3(m.Rot)
	bs.WriteVec3(m.Scale)
}
func (m *SetPlayerAttachedObject) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Index, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.Attach, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.ModelID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.BoneID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Offset, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Rot, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.Scale, err = bs.ReadVec3()
	return err
}

type PlayerBeginObjectSelect struct{}

func (m *PlayerBeginObjectSelect) MessageID() uint8             { return IDPlayerBeginObjectSelect }
func (m *PlayerBeginObjectSelect) MessageCategory() Category    { return CategoryRPC }
func (m *PlayerBeginObjectSelect) MessageChannel() Channel      { return ChannelInternal }
func (m *PlayerBeginObjectSelect) Write(bs *bitstream.BitStream) {}
func (m *PlayerBeginObjectSelect) Read(bs *bitstream.BitStream) error { return nil }

type OnPlayerSelectObject struct {
	ObjectType uint32
	ObjectID   uint16
	ModelID    uint32
	Pos        bitstream.Vec3
}

func (m *OnPlayerSelectObject) MessageID() uint8          { return IDOnPlayerSelectObject }
func (m *OnPlayerSelectObject) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerSelectObject) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerSelectObject) Write(bs *bitstream.BitStream) {
	bs.WriteUint32(m.ObjectType)
	bs.WriteUint16(m.ObjectID)
	bs.WriteUint32(m.ModelID)
	bs.WriteVec3(m.Pos)
}
func (m *OnPlayerSelectObject) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ObjectType, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.ObjectID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.ModelID, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Pos, err = bs.ReadVec3()
	return err
}

type PlayerBeginObjectEdit struct {
	PlayerObject bool
	ObjectID     uint16
}

func (m *PlayerBeginObjectEdit) MessageID() uint8          { return IDPlayerBeginObjectEdit }
func (m *PlayerBeginObjectEdit) MessageCategory() Category { return CategoryRPC }
func (m *PlayerBeginObjectEdit) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerBeginObjectEdit) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.PlayerObject)
	bs.WriteUint16(m.ObjectID)
}
func (m *PlayerBeginObjectEdit) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerObject, err = readBoolByte(bs); err != nil {
		return err
	}
	m.ObjectID, err = bs.ReadUint16()
	return err
}

type OnPlayerEditObject struct {
	PlayerObject bool
	ObjectID     uint16
	Response     uint32
	Pos          bitstream.Vec3
	Rot          bitstream.Vec3
}

func (m *OnPlayerEditObject) MessageID() uint8          { return IDOnPlayerEditObject }
func (m *OnPlayerEditObject) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerEditObject) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerEditObject) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.PlayerObject)
	bs.WriteUint16(m.ObjectID)
	bs.WriteUint32(m.Response)
	bs.WriteVec3(m.Pos)
	bs.WriteVec3(m.Rot)
}
func (m *OnPlayerEditObject) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PlayerObject, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.ObjectID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Response, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.Rot, err = bs.ReadVec3()
	return err
}

type PlayerCancelObjectEdit struct{}

func (m *PlayerCancelObjectEdit) MessageID() uint8             { return IDPlayerCancelObjectEdit }
func (m *PlayerCancelObjectEdit) MessageCategory() Category    { return CategoryRPC }
func (m *PlayerCancelObjectEdit) MessageChannel() Channel      { return ChannelInternal }
func (m *PlayerCancelObjectEdit) Write(bs *bitstream.BitStream) {}
func (m *PlayerCancelObjectEdit) Read(bs *bitstream.BitStream) error { return nil }

type PlayerBeginAttachedObjectEdit struct{ Index uint8 }

func (m *PlayerBeginAttachedObjectEdit) MessageID() uint8 { return IDPlayerBeginAttachedObjectEdit }
func (m *PlayerBeginAttachedObjectEdit) MessageCategory() Category { return CategoryRPC }
func (m *PlayerBeginAttachedObjectEdit) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerBeginAttachedObjectEdit) Write(bs *bitstream.BitStream) { bs.WriteUint8(m.Index) }
func (m *PlayerBeginAttachedObjectEdit) Read(bs *bitstream.BitStream) error {
	var err error
	m.Index, err = bs.ReadUint8()
	return err
}

type OnPlayerEditAttachedObject struct {
	Response uint32
	Index    uint8
	ModelID  uint32
	BoneID   uint32
	Offset   bitstream.Vec3
	Rot      bitstream.Vec3
	Scale    bitstream.Vec3
}

func (m *OnPlayerEditAttachedObject) MessageID() uint8          { return IDOnPlayerEditAttachedObject }
func (m *OnPlayerEditAttachedObject) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerEditAttachedObject) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerEditAttachedObject) Write(bs *bitstream.BitStream) {
	bs.WriteUint32(m.Response)
	bs.WriteUint8(m.Index)
	bs.WriteUint32(m.ModelID)
	bs.WriteUint32(m.BoneID)
	bs.WriteVec3(m.Offset)
	bs.WriteVec3(m.Rot)
	bs.WriteVec3(m.Scale)
}
func (m *OnPlayerEditAttachedObject) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Response, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Index, err = bs.ReadUint8(); err != nil {
		return err
	}
	if m.ModelID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.BoneID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Offset, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Rot, err = bs.ReadVec3(); err != nil {
		return err
	}
	m.Scale, err = bs.ReadVec3()
	return err
}

func registerObject(c *Catalog) {
	c.Register(CategoryRPC, IDCreateObject, func() Message { return &CreateObject{} })
	c.Register(CategoryRPC, IDDestroyObject, func() Message { return &DestroyObject{} })
	c.Register(CategoryRPC, IDMoveObject, func() Message { return &MoveObject{} })
	c.Register(CategoryRPC, IDStopObject, func() Message { return &StopObject{} })
	c.Register(CategoryRPC, IDSetObjectPosition, func() Message { return &SetObjectPosition{} })
	c.Register(CategoryRPC, IDSetObjectRotation, func() Message { return &SetObjectRotation{} })
	c.Register(CategoryRPC, IDAttachObjectToPlayer, func() Message { return &AttachObjectToPlayer{} })
	c.Register(CategoryRPC, IDSetPlayerObjectMaterial, func() Message { return &SetPlayerObjectMaterial{} })
	c.Register(CategoryRPC, IDSetPlayerAttachedObject, func() Message { return &SetPlayerAttachedObject{} })
	c.Register(CategoryRPC, IDPlayerBeginObjectSelect, func() Message { return &PlayerBeginObjectSelect{} })
	c.Register(CategoryRPC, IDPlayerBeginObjectEdit, func() Message { return &PlayerBeginObjectEdit{} })
	c.Register(CategoryRPC, IDPlayerCancelObjectEdit, func() Message { return &PlayerCancelObjectEdit{} })
	c.Register(CategoryRPC, IDPlayerBeginAttachedObjectEdit, func() Message { return &PlayerBeginAttachedObjectEdit{} })
}
