package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

type PlayerCreatePickup struct {
	PickupID uint32
	ModelID  uint32
	Type     uint32
	Pos      bitstream.Vec3
}

func (m *PlayerCreatePickup) MessageID() uint8          { return IDPlayerCreatePickup }
func (m *PlayerCreatePickup) MessageCategory() Category { return CategoryRPC }
func (m *PlayerCreatePickup) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerCreatePickup) Write(bs *bitstream.BitStream) {
	bs.WriteUint32(m.PickupID)
	bs.WriteUint32(m.ModelID)
	bs.WriteUint32(m.Type)
	bs.WriteVec3(m.Pos)
}
func (m *PlayerCreatePickup) Read(bs *bitstream.BitStream) error {
	var err error
	if m.PickupID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.ModelID, err = bs.ReadUint32(); err != nil {
		return err
	}
	if m.Type, err = bs.ReadUint32(); err != nil {
		return err
	}
	m.Pos, err = bs.ReadVec3()
	return err
}

type PlayerDestroyPickup struct{ PickupID uint32 }

func (m *PlayerDestroyPickup) MessageID() uint8          { return IDPlayerDestroyPickup }
func (m *PlayerDestroyPickup) MessageCategory() Category { return CategoryRPC }
func (m *PlayerDestroyPickup) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerDestroyPickup) Write(bs *bitstream.BitStream) { bs.WriteUint32(m.PickupID) }
func (m *PlayerDestroyPickup) Read(bs *bitstream.BitStream) error {
	var err error
	m.PickupID, err = bs.ReadUint32()
	return err
}

// OnPlayerPickUpPickup echoes the PickupID the server sent when it created
// the pickup; cmd/server sends the pool's internal index there, not a
// legacy ID. cmd/server registers no handler for this message.
type OnPlayerPickUpPickup struct{ PickupID uint32 }

func (m *OnPlayerPickUpPickup) MessageID() uint8          { return IDOnPlayerPickUpPickup }
func (m *OnPlayerPickUpPickup) MessageCategory() Category { return CategoryRPC }
func (m *OnPlayerPickUpPickup) MessageChannel() Channel   { return ChannelInternal }
func (m *OnPlayerPickUpPickup) Write(bs *bitstream.BitStream) { bs.WriteUint32(m.PickupID) }
func (m *OnPlayerPickUpPickup) Read(bs *bitstream.BitStream) error {
	var err error
	m.PickupID, err = bs.ReadUint32()
	return err
}

func registerPickup(c *Catalog) {
	c.Register(CategoryRPC, IDPlayerCreatePickup, func() Message { return &PlayerCreatePickup{} })
	c.Register(CategoryRPC, IDPlayerDestroyPickup, func() Message { return &PlayerDestroyPickup{} })
	c.Register(CategoryRPC, IDOnPlayerPickUpPickup, func() Message { return &OnPlayerPickUpPickup{} })
}
