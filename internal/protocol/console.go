package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

// PlayerRconCommand carries an in-game /rcon command line. cmd/server
// registers no handler for it; the admin console (internal/console) runs
// its own command function and does not go through this message.
type PlayerRconCommand struct {
	Command string
}

func (m *PlayerRconCommand) MessageID() uint8          { return IDPlayerRconCommand }
func (m *PlayerRconCommand) MessageCategory() Category { return CategoryRPC }
func (m *PlayerRconCommand) MessageChannel() Channel   { return ChannelInternal }
func (m *PlayerRconCommand) Write(bs *bitstream.BitStream) { writeStr32(bs, m.Command) }
func (m *PlayerRconCommand) Read(bs *bitstream.BitStream) error {
	var err error
	m.Command, err = readStr32(bs)
	return err
}

func registerConsole(c *Catalog) {
	c.Register(CategoryRPC, IDPlayerRconCommand, func() Message { return &PlayerRconCommand{} })
}
