package main

import (
	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
	"github.com/ventosilenzioso/samp-server-go/internal/entity"
	"github.com/ventosilenzioso/samp-server-go/internal/event"
	"github.com/ventosilenzioso/samp-server-go/internal/protocol"
)

// registerHandlers wires the game-logic handlers spec.md §8's connect,
// class-selection and vehicle-entry scenarios exercise. Called once from
// newServer, before the transport starts listening.
func (s *server) registerHandlers() {
	s.router.OnRPC(protocol.IDPlayerConnect, event.PriorityDefault, s.handlePlayerConnect)
	s.router.OnRPC(protocol.IDPlayerRequestClass, event.PriorityDefault, s.handlePlayerRequestClass)
	s.router.OnRPC(protocol.IDPlayerRequestSpawn, event.PriorityDefault, s.handlePlayerRequestSpawn)
	s.router.OnRPC(protocol.IDEnterVehicle, event.PriorityDefault, s.handleEnterVehicle)
}

// playerColourPalette cycles SA-MP's usual class-selection colours; the
// core has no gamemode layer to pick a team/class colour for, so every
// connecting player gets the next palette entry in slot order.
var playerColourPalette = [...]uint32{
	0xFF8C13FF, 0xC715FFFF, 0x20B2AAFF, 0xDC143CFF,
	0x6495EDFF, 0xF0E68CFF, 0x778899FF, 0xFF1493FF,
}

func defaultPlayerColour(playerID int) uint32 {
	return playerColourPalette[playerID%len(playerColourPalette)]
}

// handlePlayerConnect populates the player's entity record from the
// handshake payload, broadcasts PlayerJoin and sends the new peer its
// PlayerInit snapshot (spec.md §8.1).
func (s *server) handlePlayerConnect(peer int, msg protocol.Message) bool {
	pc, ok := msg.(*protocol.PlayerConnect)
	if !ok {
		return true
	}
	player := s.players.Get(peer)
	if player == nil {
		return true
	}

	name := pc.Name
	if decoded, err := s.codec.Decode([]byte(pc.Name)); err == nil {
		name = decoded
	}
	player.Name = name
	player.State = entity.PlayerStateClassSelection

	s.broadcastRPC(s.players.Online(), &protocol.PlayerJoin{
		PlayerID: uint16(peer),
		Colour:   defaultPlayerColour(peer),
		IsNPC:    player.IsNPC,
		Name:     player.Name,
	})

	s.sendRPC(peer, &protocol.PlayerInit{
		ZoneNames: true, AllowWeapons: true, ShowNameTags: true, NameTagLOS: true,
		SpawnsAvailable: 1, PlayerID: uint16(peer), ShowPlayerMarkers: 1,
		WorldTimeHour: uint8(s.cfg.WorldTime), Weather: uint8(s.cfg.Weather), Gravity: 0.008,
		OnFootRate: 40, InCarRate: 40, WeaponRate: 40, Multiplier: 1, LagCompensation: 1,
		Hostname:        s.cfg.ServerName,
		WorldBoundsMinX: -20000, WorldBoundsMinY: -20000,
		WorldBoundsMaxX: 20000, WorldBoundsMaxY: 20000,
		GamemodeText: s.cfg.GameMode, MapName: s.cfg.MapName,
	})
	return true
}

// handlePlayerRequestClass answers the class-selection cycle. The core
// defines no gamemode classes, so every request gets the same selectable
// default spawn; a real gamemode would veto/override via a higher-priority
// handler registered ahead of this one.
func (s *server) handlePlayerRequestClass(peer int, msg protocol.Message) bool {
	player := s.players.Get(peer)
	if player == nil || player.State != entity.PlayerStateClassSelection {
		return true
	}
	s.sendRPC(peer, &protocol.PlayerRequestClassResponse{
		Selectable: true,
		Team:       0,
		Model:      0,
		Spawn:      bitstream.Vec3{},
		ZAngle:     0,
	})
	return true
}

// handlePlayerRequestSpawn is accepted only during class selection
// (spec.md "State machines worth naming"); outside that state the request
// is silently ignored, per spec.md §7's Protocol-state error taxonomy.
func (s *server) handlePlayerRequestSpawn(peer int, msg protocol.Message) bool {
	player := s.players.Get(peer)
	if player == nil || player.State != entity.PlayerStateClassSelection {
		return true
	}
	player.ResetWeapons()
	player.SetHealth(100)
	player.SetArmour(0)
	player.State = entity.PlayerStateSpawned

	s.sendRPC(peer, &protocol.PlayerRequestSpawnResponse{Allow: true})
	s.broadcastRPC(s.players.Online(), &protocol.PlayerSpawn{PlayerID: uint16(peer)})
	return true
}

// handleEnterVehicle starts the enter-vehicle transition (OnFoot ->
// EnterVehicleDriver/EnterVehiclePassenger) and broadcasts the richer
// server->all shape of the same wire ID.
//
// TODO: promotion to the full Driver/Passenger state happens once the
// client's PlayerVehicleSync confirms the animation finished; that sync
// packet isn't wired into this core yet, so the player is left in the
// EnterVehicle* transitional state indefinitely.
func (s *server) handleEnterVehicle(peer int, msg protocol.Message) bool {
	ev, ok := msg.(*protocol.EnterVehicle)
	if !ok {
		return true
	}
	player := s.players.Get(peer)
	if player == nil {
		return true
	}
	if !s.vehicles.Valid(int(ev.VehicleID)) {
		return true
	}

	if ev.IsPassenger {
		player.State = entity.PlayerStateEnterVehiclePassenger
	} else {
		player.State = entity.PlayerStateEnterVehicleDriver
	}
	player.VehicleID = int(ev.VehicleID)

	s.broadcastRPC(s.players.Online(), &protocol.EnterVehicleBroadcast{
		PlayerID:    uint16(peer),
		VehicleID:   ev.VehicleID,
		IsPassenger: ev.IsPassenger,
	})
	return true
}
