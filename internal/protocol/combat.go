package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type GivePlayerWeapon struct {
	WeaponID uint32
	Ammo     uint32
}

func (m *GivePlayerWeapon) MessageID() uint8          { return IDGivePlayerWeapon }
func (m *GivePlayerWeapon) MessageCategory() Category { return CategoryRPC }
func (m *GivePlayerWeapon) MessageChannel() Channel   { return ChannelInternal }
func (m *GivePlayerWeapon) Write(bs *bitstream.BitStream) {
	bs.WriteUint32(m.WeaponID)
	bs.WriteUint32(m.Ammo)
}
func (m *GivePlayerWeapon) Read(bs *bitstream.BitStream) error {
	var err error
	if m.WeaponID, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Ammo, err = bs.ReadUint32()
	return err
}

type ResetPlayerWeapons struct{}

func (m *ResetPlayerWeapons) MessageID() uint8             { return IDResetPlayerWeapons }
func (m *ResetPlayerWeapons) MessageCategory() Category    { return CategoryRPC }
func (m *ResetPlayerWeapons) MessageChannel() Channel      { return ChannelInternal }
func (m *ResetPlayerWeapons) Write(bs *bitstream.BitStream) {}
func (m *ResetPlayerWeapons) Read(bs *bitstream.BitStream) error { return nil }

type SetPlayerArmedWeapon struct{ WeaponID uint32 }

func (m *SetPlayerArmedWeapon) MessageID() uint8          { return IDSetPlayerArmedWeapon }
func (m *SetPlayerArmedWeapon) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerArmedWeapon) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerArmedWeapon) Write(bs *bitstream.BitStream) { bs.WriteUint32(m.WeaponID) }
func (m *SetPlayerArmedWeapon) Read(bs *bitstream.BitStream) error {
	var err error
	m.WeaponID, err = bs.ReadUint32()
	return err
}

// SetPlayerAmmo carries a negative-clamped-to-zero invariant at the entity
// layer; the wire value itself is unsigned.
type SetPlayerAmmo struct {
	WeaponID uint8
	Ammo     uint16
}

func (m *SetPlayerAmmo) MessageID() uint8          { return IDSetPlayerAmmo }
func (m *SetPlayerAmmo) MessageCategory() Category { return CategoryRPC }
func (m *SetPlayerAmmo) MessageChannel() Channel   { return ChannelInternal }
func (m *SetPlayerAmmo) Write(bs *bitstream.BitStream) {
	bs.WriteUint8(m.WeaponID)
	bs.WriteUint16(m.Ammo)
}
func (m *SetPlayerAmmo) Read(bs *bitstream.BitStream) error {
	var err error
	if m.WeaponID, err = bs.ReadUint8(); err != nil {
		return err
	}
	m.Ammo, err = bs.ReadUint16()
	return err
}

// OnPlayerDeath is the client->server death notice. cmd/server registers
// no handler for it, so it raises no callback and no death-message
// broadcast.
type OnPlayerDeath struct {
	KillerID uint16
	Reason   uint8
}

func (m *OnPlayerDeath) MessageID() uint8          { return IDOnPlayerDeath }
func (m *OnPlayerDeath) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerDeath) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerDeath) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.KillerID)
	bs.WriteUint8(m.Reason)
}
func (m *OnPlayerDeath) Read(bs *bitstream.BitStream) error {
	var err error
	if m.KillerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Reason, err = bs.ReadUint8()
	return err
}

type PlayerDeath struct {
	PlayerID uint16
}

func (m *PlayerDeath) MessageID() uint8          { return IDPlayerDeath }
func (m *PlayerDeath) MessageCategory() Category { return CategoryRPC }
func (m *PlayerDeath) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerDeath) Write(bs *bitstream.BitStream) { bs.WriteUint16(m.PlayerID) }
func (m *PlayerDeath) Read(bs *bitstream.BitStream) error {
	var err error
	m.PlayerID, err = bs.ReadUint16()
	return err
}

type SendDeathMessage struct {
	KillerID uint16
	VictimID uint16
	Reason   uint8
}

func (m *SendDeathMessage) MessageID() uint8          { return IDSendDeathMessage }
func (m *SendDeathMessage) MessageCategory() Category { return CategoryRPC }
func (m *SendDeathMessage) MessageChannel() Channel   { return ChannelInternal }
func (m *SendDeathMessage) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.KillerID)
	bs.WriteUint16(m.VictimID)
	bs.WriteUint8(m.Reason)
}
func (m *SendDeathMessage) Read(bs *bitstream.BitStream) error {
	var err error
	if m.KillerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.VictimID, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Reason, err = bs.ReadUint8()
	return err
}

// OnPlayerGiveTakeDamage's "Taking" direction bit is left observable, not
// resolved: see the Open Question this records in SPEC_FULL.md.
type OnPlayerGiveTakeDamage struct {
	Taking   bool
	PlayerID uint16
	Amount   float32
	WeaponID uint32
	BodyPart uint32
}

func (m *OnPlayerGiveTakeDamage) MessageID() uint8          { return IDOnPlayerGiveTakeDamage }
func (m *OnPlayerGiveTakeDamage) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerGiveTakeDamage) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerGiveTakeDamage) Write(bs *bitstream.BitStream) {
	writeBoolByte(bs, m.Taking)
	bs.WriteUint16(m.PlayerID)
	bs.WriteFloat(m.Amount)
	bs.WriteUint32(m.WeaponID)
	bs.WriteUint32(m.BodyPart)
}
func (m *OnPlayerGiveTakeDamage) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Taking, err = readBoolByte(bs); err != nil {
		return err
	}
	if m.PlayerID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Amount, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.WeaponID, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.BodyPart, err = bs.ReadUint32()
	return err
}

type OnPlayerDamageActor struct {
	ActorID  uint16
	Amount   float32
	WeaponID uint32
	BodyPart uint32
}

func (m *OnPlayerDamageActor) MessageID() uint8          { return IDOnPlayerDamageActor }
func (m *OnPlayerDamageActor) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerDamageActor) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerDamageActor) Write(bs *bitstream.BitStream) {
	bs.WriteUint16(m.ActorID)
	bs.WriteFloat(m.Amount)
	bs.WriteUint32(m.WeaponID)
	bs.WriteUint32(m.BodyPart)
}
func (m *OnPlayerDamageActor) Read(bs *bitstream.BitStream) error {
	var err error
	if m.ActorID, err = bs.ReadUint16(); err != nil {
		return err
	}
	if m.Amount, err = bs.ReadFloat(); err != nil {
		return err
	}
	if m.WeaponID, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.BodyPart, err = bs.ReadUint32()
	return err
}

type CreateExplosion struct {
	Pos    bitstream.Vec3
	Type   uint16
	Radius float32
}

func (m *CreateExplosion) MessageID() uint8          { return IDCreateExplosion }
func (m *CreateExplosion) MessageCategory() Category { return CategoryRPC }
func (m *CreateExplosion) MessageChannel() Channel   { return ChannelInternal }
func (m *CreateExplosion) Write(bs *bitstream.BitStream) {
	bs.WriteVec3(m.Pos)
	bs.WriteUint16(m.Type)
	bs.WriteFloat(m.Radius)
}
func (m *CreateExplosion) Read(bs *bitstream.BitStream) error {
	var err error
	if m.Pos, err = bs.ReadVec3(); err != nil {
		return err
	}
	if m.Type, err = bs.ReadUint16(); err != nil {
		return err
	}
	m.Radius, err = bs.ReadFloat()
	return err
}

func registerCombat(c *Catalog) {
	c.Register(CategoryRPC, IDGivePlayerWeapon, func() Message { return &GivePlayerWeapon{} })
	c.Register(CategoryRPC, IDResetPlayerWeapons, func() Message { return &ResetPlayerWeapons{} })
	c.Register(CategoryRPC, IDSetPlayerArmedWeapon, func() Message { return &SetPlayerArmedWeapon{} })
	c.Register(CategoryRPC, IDSetPlayerAmmo, func() Message { return &SetPlayerAmmo{} })
	c.Register(CategoryRPC, IDOnPlayerDeath, func() Message { return &OnPlayerDeath{} })
	c.Register(CategoryRPC, IDPlayerDeath, func() Message { return &PlayerDeath{} })
	c.Register(CategoryRPC, IDSendDeathMessage, func() Message { return &SendDeathMessage{} })
	c.Register(CategoryRPC, IDOnPlayerGiveTakeDamage, func() Message { return &OnPlayerGiveTakeDamage{} })
	c.Register(CategoryRPC, IDOnPlayerDamageActor, func() Message { return &OnPlayerDamageActor{} })
	c.Register(CategoryRPC, IDCreateExplosion, func() Message { return &CreateExplosion{} })
}
