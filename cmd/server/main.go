// Command server is the authoritative SA-MP 0.3.7-compatible game
// server entry point: loads configuration, wires transport, dispatch,
// entity pools, streamer and tick driver together, and runs until a
// shutdown signal arrives.
//
// Adapted from core/main.go: same banner/signal-handling/graceful-
// shutdown shape, rewired to the new config/transport/dispatch/tick
// packages instead of the freeroam gamemode stub.
package main

import (
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ventosilenzioso/samp-server-go/internal/banlist"
	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
	"github.com/ventosilenzioso/samp-server-go/internal/config"
	"github.com/ventosilenzioso/samp-server-go/internal/console"
	"github.com/ventosilenzioso/samp-server-go/internal/dispatch"
	"github.com/ventosilenzioso/samp-server-go/internal/entity"
	"github.com/ventosilenzioso/samp-server-go/internal/protocol"
	"github.com/ventosilenzioso/samp-server-go/internal/streamer"
	"github.com/ventosilenzioso/samp-server-go/internal/textenc"
	"github.com/ventosilenzioso/samp-server-go/internal/tick"
	"github.com/ventosilenzioso/samp-server-go/internal/transport"
	"github.com/ventosilenzioso/samp-server-go/pkg/logger"
)

const version = "1.0.0"

// invalidEntityID is the wire sentinel for "no attachment" on uint16
// attachment fields (objects/vehicles), mirroring SA-MP's 0xFFFF convention.
const invalidEntityID = 0xFFFF

func main() {
	logger.Banner("SA-MP Server Core - Built with Go", version)

	cfgPath := "config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("config: %v", err)
	}
	logger.Success("Configuration loaded from %s", cfgPath)

	codec, err := textenc.New(cfg.Charset)
	if err != nil {
		logger.Fatal("textenc: %v", err)
	}

	bans, err := banlist.Load(cfg.BanListPath)
	if err != nil {
		logger.Fatal("banlist: %v", err)
	}

	srv := newServer(cfg, codec, bans)

	logger.Info("Server Version: %s", version)
	logger.Info("Starting server on %s:%d", cfg.Host, cfg.Port)
	logger.Info("Max players: %d", cfg.MaxPlayers)
	logger.Info("Server name: %s", cfg.ServerName)
	logger.Info("Game mode: %s", cfg.GameMode)

	if err := srv.transport.Listen(cfg.Host, cfg.Port); err != nil {
		logger.Fatal("transport: %v", err)
	}

	stop := make(chan struct{})
	go tick.Run(srv.driver, cfg.TickRate, stop)

	adminConsole := console.New(srv.executeCommand)
	go adminConsole.Run()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	logger.Warn("Received signal: %v", sig)
	logger.Info("Shutting down gracefully...")
	close(stop)
	adminConsole.Close()
	srv.transport.Close()
	time.Sleep(200 * time.Millisecond)
	logger.Success("Server stopped")
}

// server bundles the per-process singletons main wires together; it has
// no behavior of its own beyond gluing transport events to the router
// and the router to entity state, mirroring the teacher's Server struct
// shape (source/server/server.go) generalized past a single map[int]*Player.
//
// Inbound dispatch and outbound sends are both queued rather than acted
// on directly: handler-driven entity mutation must happen only on the
// tick thread (spec.md §5), so the transport's receive-loop goroutine
// only ever enqueues, and the tick driver is what drains/flushes.
type server struct {
	cfg       config.Config
	codec     *textenc.Codec
	bans      *banlist.List
	catalog   *protocol.Catalog
	router    *dispatch.Router
	transport *transport.UDPTransport

	players    *entity.Players
	vehicles   *entity.Vehicles
	objects    *entity.Objects
	actors     *entity.Actors
	pickups    *entity.Pickups
	textLabels *entity.TextLabels

	stream *streamer.Streamer
	driver *tick.Driver

	outMu    sync.Mutex
	outQueue []outboundJob
}

// outboundJob is one queued send, flushed at tick step 4.
type outboundJob struct {
	broadcast bool
	packet    bool
	peer      int
	peers     []int
	channel   transport.Channel
	id        uint8
	payload   []byte
}

func newServer(cfg config.Config, codec *textenc.Codec, bans *banlist.List) *server {
	catalog := protocol.NewCatalog()
	router := dispatch.New(catalog)
	udp := transport.NewUDPTransport()
	players := entity.NewPlayers()
	vehicles := entity.NewVehicles()
	objects := entity.NewObjects()
	actors := entity.NewActors()
	pickups := entity.NewPickups()
	textLabels := entity.NewTextLabels()

	streamConfigs := [6]streamer.Config{}
	streamConfigs[streamer.ClassPlayer] = streamer.Config{Radius: cfg.Streamer.PlayerRadius, Cap: cfg.Streamer.PlayerCap}
	streamConfigs[streamer.ClassVehicle] = streamer.Config{Radius: cfg.Streamer.VehicleRadius, Cap: cfg.Streamer.VehicleCap}
	streamConfigs[streamer.ClassObject] = streamer.Config{Radius: cfg.Streamer.ObjectRadius, Cap: cfg.Streamer.ObjectCap}
	streamConfigs[streamer.ClassActor] = streamer.Config{Radius: cfg.Streamer.ActorRadius, Cap: cfg.Streamer.ActorCap}
	streamConfigs[streamer.ClassPickup] = streamer.Config{Radius: cfg.Streamer.PickupRadius, Cap: cfg.Streamer.PickupCap}
	streamConfigs[streamer.ClassTextLabel] = streamer.Config{Radius: cfg.Streamer.TextLabelRadius, Cap: cfg.Streamer.TextLabelCap}

	s := &server{
		cfg: cfg, codec: codec, bans: bans,
		catalog: catalog, router: router, transport: udp,
		players: players, vehicles: vehicles,
		objects: objects, actors: actors, pickups: pickups, textLabels: textLabels,
		stream: streamer.New(streamConfigs),
	}

	udp.OnConnect = s.onConnect
	udp.OnDisconnect = s.onDisconnect
	udp.OnInbound = s.onInbound

	s.registerHandlers()

	s.driver = tick.New(time.Now)
	s.driver.DrainInbound = udp.DrainInbound
	s.driver.RunStreamer = s.runStreamer
	s.driver.FlushOutbound = s.flushOutbound
	s.driver.OnTick = func(elapsed time.Duration) {
		logger.WithFields("tick", logger.Fields{"elapsed_ms": elapsed.Milliseconds(), "players": players.Count()})
	}

	return s
}

func (s *server) onConnect(addr *net.UDPAddr) (int, bool) {
	if s.players.Count() >= s.cfg.MaxPlayers {
		return 0, false
	}
	if _, banned := s.bans.IsBanned(addr.IP.String(), time.Now()); banned {
		return 0, false
	}
	id, ok := s.players.Connect(addr, false)
	return id, ok
}

func (s *server) onDisconnect(peer int) {
	s.players.Disconnect(peer)
	s.stream.Forget(peer)
	s.router.ForgetPeer(peer)
}

// onInbound decodes (category, id) for one payload and routes it through
// the dispatch router. Called only from the tick thread, via
// transport.DrainInbound — never directly from the receive-loop goroutine.
func (s *server) onInbound(peer int, payload []byte) {
	if len(payload) == 0 {
		return
	}
	id := payload[0]
	body := payload[1:]
	bs := bitstream.New(body)

	category := protocol.CategoryPacket
	switch {
	case s.catalog.Has(protocol.CategoryConnection, id):
		category = protocol.CategoryConnection
	case s.catalog.Has(protocol.CategoryRPC, id):
		category = protocol.CategoryRPC
	}
	if err := s.router.Dispatch(peer, category, id, bs); err != nil {
		if s.router.MalformedCount(peer) >= s.cfg.MalformedKickThreshold {
			s.transport.Disconnect(peer)
		}
	}
}

// queueRPC, queuePacket and queueBroadcastRPC enqueue a send for the next
// tick's FlushOutbound step; callers (handlers, console commands) must
// never call s.transport.Send* directly, since they may run off the tick
// thread (the console's own goroutine, in particular).
func (s *server) queueRPC(peer int, channel transport.Channel, id uint8, payload []byte) {
	s.outMu.Lock()
	s.outQueue = append(s.outQueue, outboundJob{peer: peer, channel: channel, id: id, payload: payload})
	s.outMu.Unlock()
}

func (s *server) queuePacket(peer int, channel transport.Channel, id uint8, payload []byte) {
	s.outMu.Lock()
	s.outQueue = append(s.outQueue, outboundJob{peer: peer, channel: channel, id: id, payload: payload, packet: true})
	s.outMu.Unlock()
}

func (s *server) queueBroadcastRPC(peers []int, channel transport.Channel, id uint8, payload []byte) {
	s.outMu.Lock()
	s.outQueue = append(s.outQueue, outboundJob{broadcast: true, peers: peers, channel: channel, id: id, payload: payload})
	s.outMu.Unlock()
}

// flushOutbound drains the queue built up since the last tick and performs
// the actual transport sends; wired as tick.Driver.FlushOutbound (step 4).
func (s *server) flushOutbound() {
	s.outMu.Lock()
	jobs := s.outQueue
	s.outQueue = nil
	s.outMu.Unlock()

	for _, j := range jobs {
		switch {
		case j.broadcast:
			s.transport.BroadcastRPC(j.peers, j.channel, j.id, j.payload)
		case j.packet:
			s.transport.SendPacket(j.peer, j.channel, j.id, j.payload)
		default:
			s.transport.SendRPC(j.peer, j.channel, j.id, j.payload)
		}
	}
}

func encodeMessage(msg protocol.Message) []byte {
	bs := bitstream.NewEmpty()
	msg.Write(bs)
	return bs.Bytes()
}

func (s *server) sendRPC(peer int, msg protocol.Message) {
	s.queueRPC(peer, transport.Channel(msg.MessageChannel()), msg.MessageID(), encodeMessage(msg))
}

func (s *server) sendPacket(peer int, msg protocol.Message) {
	s.queuePacket(peer, transport.Channel(msg.MessageChannel()), msg.MessageID(), encodeMessage(msg))
}

func (s *server) broadcastRPC(peers []int, msg protocol.Message) {
	s.queueBroadcastRPC(peers, transport.Channel(msg.MessageChannel()), msg.MessageID(), encodeMessage(msg))
}

func wireID(id int) uint16 {
	if id < 0 {
		return invalidEntityID
	}
	return uint16(id)
}

// runStreamer recomputes, for every online player and every streamed
// entity class spec.md §4.G names, the stream-in/out diff against that
// player's current position and emits the matching snapshot RPCs.
func (s *server) runStreamer() {
	for _, peerID := range s.players.Online() {
		player := s.players.Get(peerID)
		if player == nil {
			continue
		}
		self := streamer.Point{
			X: player.Pos.X, Y: player.Pos.Y, Z: player.Pos.Z,
			VirtualWorld: player.VirtualWorld, Interior: player.Interior,
		}

		s.streamPlayers(peerID, self)
		s.streamVehicles(peerID, self)
		s.streamObjects(peerID, self)
		s.streamActors(peerID, self)
		s.streamPickups(peerID, self)
		s.streamTextLabels(peerID, self)
	}
}

func (s *server) streamPlayers(peerID int, self streamer.Point) {
	var candidates []streamer.Entity
	for _, otherID := range s.players.Online() {
		other := s.players.Get(otherID)
		if other == nil {
			continue
		}
		candidates = append(candidates, streamer.Entity{
			Slot: otherID,
			Pos:  streamer.Point{X: other.Pos.X, Y: other.Pos.Y, Z: other.Pos.Z, VirtualWorld: other.VirtualWorld},
		})
	}
	diff := s.stream.Recompute(peerID, streamer.ClassPlayer, self, peerID, candidates)
	for _, slot := range diff.StreamIn {
		other := s.players.Get(slot)
		if other == nil {
			continue
		}
		s.sendRPC(peerID, &protocol.PlayerStreamIn{
			PlayerID: uint16(slot), Team: other.Team, Skin: other.Skin,
			Pos: other.Pos, Angle: other.Angle, Colour: other.Colour,
			FightingStyle: other.FightingStyle,
		})
	}
	for _, slot := range diff.StreamOut {
		s.sendRPC(peerID, &protocol.PlayerStreamOut{PlayerID: uint16(slot)})
	}
}

func (s *server) streamVehicles(peerID int, self streamer.Point) {
	var candidates []streamer.Entity
	for _, id := range s.vehicles.Entries() {
		v := s.vehicles.Get(id)
		if v == nil {
			continue
		}
		candidates = append(candidates, streamer.Entity{
			Slot: id,
			Pos:  streamer.Point{X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, VirtualWorld: v.VirtualWorld},
		})
	}
	diff := s.stream.Recompute(peerID, streamer.ClassVehicle, self, -1, candidates)
	for _, slot := range diff.StreamIn {
		v := s.vehicles.Get(slot)
		if v == nil {
			continue
		}
		s.sendRPC(peerID, &protocol.StreamInVehicle{
			VehicleID: uint16(slot), ModelID: v.ModelID, Pos: v.Pos, ZAngle: v.ZAngle,
			Colour1: v.Colour1, Colour2: v.Colour2, Health: v.Health, Interior: v.Interior,
		})
	}
	for _, slot := range diff.StreamOut {
		s.sendRPC(peerID, &protocol.StreamOutVehicle{VehicleID: uint16(slot)})
	}
}

func (s *server) streamObjects(peerID int, self streamer.Point) {
	var candidates []streamer.Entity
	for _, id := range s.objects.Entries() {
		o := s.objects.Get(id)
		if o == nil {
			continue
		}
		candidates = append(candidates, streamer.Entity{
			Slot: id,
			Pos:  streamer.Point{X: o.Pos.X, Y: o.Pos.Y, Z: o.Pos.Z, VirtualWorld: o.VirtualWorld},
		})
	}
	diff := s.stream.Recompute(peerID, streamer.ClassObject, self, -1, candidates)
	for _, slot := range diff.StreamIn {
		o := s.objects.Get(slot)
		if o == nil {
			continue
		}
		s.sendRPC(peerID, &protocol.CreateObject{
			ObjectID: uint16(slot), ModelID: o.ModelID, Pos: o.Pos, Rot: o.Rot,
			DrawDistance:    o.DrawDistance,
			AttachedVehicle: wireID(o.AttachedVehicle),
			AttachedObject:  wireID(o.AttachedObject),
		})
	}
	for _, slot := range diff.StreamOut {
		s.sendRPC(peerID, &protocol.DestroyObject{ObjectID: uint16(slot)})
	}
}

func (s *server) streamActors(peerID int, self streamer.Point) {
	var candidates []streamer.Entity
	for _, id := range s.actors.Entries() {
		a := s.actors.Get(id)
		if a == nil {
			continue
		}
		candidates = append(candidates, streamer.Entity{
			Slot: id,
			Pos:  streamer.Point{X: a.Pos.X, Y: a.Pos.Y, Z: a.Pos.Z, VirtualWorld: a.VirtualWorld},
		})
	}
	diff := s.stream.Recompute(peerID, streamer.ClassActor, self, -1, candidates)
	for _, slot := range diff.StreamIn {
		a := s.actors.Get(slot)
		if a == nil {
			continue
		}
		s.sendRPC(peerID, &protocol.ShowActorForPlayer{
			ActorID: uint16(slot), ModelID: a.ModelID, Pos: a.Pos, Angle: a.Angle,
			Health: a.Health, Invulnerable: a.Invulnerable,
		})
	}
	for _, slot := range diff.StreamOut {
		s.sendRPC(peerID, &protocol.HideActorForPlayer{ActorID: uint16(slot)})
	}
}

func (s *server) streamPickups(peerID int, self streamer.Point) {
	var candidates []streamer.Entity
	for _, id := range s.pickups.Entries() {
		p := s.pickups.Get(id)
		if p == nil {
			continue
		}
		candidates = append(candidates, streamer.Entity{
			Slot: id,
			Pos:  streamer.Point{X: p.Pos.X, Y: p.Pos.Y, Z: p.Pos.Z, VirtualWorld: p.VirtualWorld},
		})
	}
	diff := s.stream.Recompute(peerID, streamer.ClassPickup, self, -1, candidates)
	for _, slot := range diff.StreamIn {
		p := s.pickups.Get(slot)
		if p == nil {
			continue
		}
		s.sendRPC(peerID, &protocol.PlayerCreatePickup{
			PickupID: uint32(slot), ModelID: p.ModelID, Type: p.Type, Pos: p.Pos,
		})
	}
	for _, slot := range diff.StreamOut {
		s.sendRPC(peerID, &protocol.PlayerDestroyPickup{PickupID: uint32(slot)})
	}
}

func (s *server) streamTextLabels(peerID int, self streamer.Point) {
	var candidates []streamer.Entity
	for _, id := range s.textLabels.Entries() {
		tl := s.textLabels.Get(id)
		if tl == nil {
			continue
		}
		candidates = append(candidates, streamer.Entity{
			Slot: id,
			Pos:  streamer.Point{X: tl.Pos.X, Y: tl.Pos.Y, Z: tl.Pos.Z, VirtualWorld: tl.VirtualWorld},
		})
	}
	diff := s.stream.Recompute(peerID, streamer.ClassTextLabel, self, -1, candidates)
	for _, slot := range diff.StreamIn {
		tl := s.textLabels.Get(slot)
		if tl == nil {
			continue
		}
		s.sendRPC(peerID, &protocol.PlayerShowTextLabel{
			LabelID: uint16(slot), Colour: tl.Colour, Pos: tl.Pos,
			DrawDistance:    tl.DrawDistance,
			AttachedPlayer:  wireID(tl.AttachedPlayer),
			AttachedVehicle: wireID(tl.AttachedVehicle),
			TestLOS:         tl.TestLOS,
			Text:            tl.Text,
		})
	}
	for _, slot := range diff.StreamOut {
		s.sendRPC(peerID, &protocol.PlayerHideTextLabel{LabelID: uint16(slot)})
	}
}

func (s *server) executeCommand(line string) string {
	return "unknown command: " + line
}
