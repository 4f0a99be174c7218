package transport

import (
	"fmt"
	"net"
	"sync"

	"github.com/ventosilenzioso/samp-server-go/pkg/logger"
)

// InboundFunc receives one fully-decapsulated payload for a peer; the
// caller (internal/dispatch) is responsible for decoding the message
// body itself.
type InboundFunc func(peer int, payload []byte)

// ConnectFunc/DisconnectFunc notify the core of session lifecycle
// events so it can allocate/release the matching entity.Player slot.
type ConnectFunc func(addr *net.UDPAddr) (peer int, accept bool)
type DisconnectFunc func(peer int)

// inboundQueueSize bounds the MPSC queue between the receive loop and the
// tick thread: a datagram that doesn't fit is dropped rather than buffered
// unboundedly or dispatched off the tick thread.
const inboundQueueSize = 4096

type rawInbound struct {
	peer    int
	payload []byte
}

// UDPTransport is the concrete Transport: one UDP socket, one Session
// per connected peer, reliability/ordering handled by legacy_bitstream.go.
// Grounded on the teacher's Server.Start/listen (source/server/server.go):
// same ListenUDP + receive-loop shape (one receive goroutine decodes each
// datagram inline and queues its payloads for DrainInbound), generalized
// so the packet handler is the OnInbound callback the core supplies
// instead of a fixed switch statement.
type UDPTransport struct {
	conn *net.UDPConn

	mu       sync.RWMutex
	sessions map[int]*Session
	byAddr   map[string]int
	banned   map[string]string

	OnInbound    InboundFunc
	OnConnect    ConnectFunc
	OnDisconnect DisconnectFunc

	inbound chan rawInbound

	running bool
}

func NewUDPTransport() *UDPTransport {
	return &UDPTransport{
		sessions: make(map[int]*Session),
		byAddr:   make(map[string]int),
		banned:   make(map[string]string),
		inbound:  make(chan rawInbound, inboundQueueSize),
	}
}

// Listen binds the UDP socket and starts the receive loop in a new
// goroutine; it returns once the socket is bound.
func (t *UDPTransport) Listen(host string, port int) error {
	addr := &net.UDPAddr{IP: net.ParseIP(host), Port: port}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("transport: failed to bind UDP socket: %w", err)
	}
	t.conn = conn
	t.running = true
	go t.receiveLoop()
	return nil
}

func (t *UDPTransport) receiveLoop() {
	buf := make([]byte, 2048)
	for t.running {
		n, addr, err := t.conn.ReadFromUDP(buf)
		if err != nil {
			if t.running {
				logger.Warn("transport: read error: %v", err)
			}
			continue
		}
		data := make([]byte, n)
		copy(data, buf[:n])
		t.handleDatagram(data, addr)
	}
}

func (t *UDPTransport) handleDatagram(data []byte, addr *net.UDPAddr) {
	if reason, ok := t.isBanned(addr); ok {
		logger.Debug("transport: dropped datagram from banned %s: %s", addr.String(), reason)
		return
	}

	session := t.sessionFor(addr)
	if session == nil {
		if t.OnConnect == nil {
			return
		}
		peer, accept := t.OnConnect(addr)
		if !accept {
			return
		}
		session = NewSession(peer, addr)
		t.mu.Lock()
		t.sessions[peer] = session
		t.byAddr[addr.String()] = peer
		t.mu.Unlock()
	}
	session.RecordReceive(len(data))

	_, envelopes, err := DecodeDatagram(data)
	if err != nil {
		session.RecordMalformed()
		return
	}
	for _, e := range envelopes {
		select {
		case t.inbound <- rawInbound{peer: session.Peer, payload: e.Payload}:
		default:
			session.RecordMalformed()
			logger.Warn("transport: inbound queue full, dropping datagram from peer %d", session.Peer)
		}
	}
}

// DrainInbound pops every datagram queued since the last call and invokes
// OnInbound for each, on the caller's goroutine. Wired to tick.Driver's
// DrainInbound step so handler-driven entity mutation happens only on the
// tick thread, never on the receive loop's goroutine.
func (t *UDPTransport) DrainInbound() {
	for {
		select {
		case item := <-t.inbound:
			if t.OnInbound != nil {
				t.OnInbound(item.peer, item.payload)
			}
		default:
			return
		}
	}
}

func (t *UDPTransport) sessionFor(addr *net.UDPAddr) *Session {
	t.mu.RLock()
	defer t.mu.RUnlock()
	peer, ok := t.byAddr[addr.String()]
	if !ok {
		return nil
	}
	return t.sessions[peer]
}

func (t *UDPTransport) isBanned(addr *net.UDPAddr) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	reason, ok := t.banned[addr.IP.String()]
	return reason, ok
}

func (t *UDPTransport) send(peer int, channel Channel, reliability Reliability, id uint8, payload []byte) error {
	t.mu.RLock()
	session, ok := t.sessions[peer]
	t.mu.RUnlock()
	if !ok {
		return fmt.Errorf("transport: unknown peer %d", peer)
	}

	body := append([]byte{id}, payload...)
	env := Envelope{Reliability: reliability, Payload: body}
	if isReliable(reliability) {
		env.MessageIndex = session.NextMessageIndex()
	}
	if reliability == ReliableOrdered {
		env.OrderIndex = session.NextOrderIndex(channel)
		env.OrderChannel = channel
	}

	datagram := EncodeDatagram(session.NextSequence(), []Envelope{env})
	n, err := t.conn.WriteToUDP(datagram, session.Addr)
	if err != nil {
		return err
	}
	session.RecordSend(n)
	return nil
}

// SendRPC sends id/payload as a reliable-ordered message on channel.
func (t *UDPTransport) SendRPC(peer int, channel Channel, id uint8, payload []byte) error {
	return t.send(peer, channel, ReliableOrdered, id, payload)
}

// SendPacket sends id/payload unreliable-sequenced, suited to per-tick
// sync packets where a stale delivery is worse than a dropped one.
func (t *UDPTransport) SendPacket(peer int, channel Channel, id uint8, payload []byte) error {
	return t.send(peer, channel, UnreliableSequenced, id, payload)
}

func (t *UDPTransport) BroadcastRPC(peers []int, channel Channel, id uint8, payload []byte) error {
	var firstErr error
	for _, peer := range peers {
		if err := t.SendRPC(peer, channel, id, payload); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *UDPTransport) Stats(peer int) (NetworkStats, bool) {
	t.mu.RLock()
	session, ok := t.sessions[peer]
	t.mu.RUnlock()
	if !ok {
		return NetworkStats{}, false
	}
	return session.Stats(), true
}

func (t *UDPTransport) Ban(addr string, reason string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.banned[addr] = reason
	return nil
}

func (t *UDPTransport) Unban(addr string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.banned, addr)
	return nil
}

// Disconnect releases a peer's session, notifying OnDisconnect.
func (t *UDPTransport) Disconnect(peer int) {
	t.mu.Lock()
	session, ok := t.sessions[peer]
	if ok {
		delete(t.sessions, peer)
		delete(t.byAddr, session.Addr.String())
	}
	t.mu.Unlock()
	if ok && t.OnDisconnect != nil {
		t.OnDisconnect(peer)
	}
}

func (t *UDPTransport) Close() error {
	t.running = false
	if t.conn != nil {
		return t.conn.Close()
	}
	return nil
}
