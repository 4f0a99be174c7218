package dispatch

import (
	"testing"

	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
	"github.com/ventosilenzioso/samp-server-go/internal/event"
	"github.com/ventosilenzioso/samp-server-go/internal/protocol"
)

func encodedPlayerConnect() []byte {
	msg := &protocol.PlayerConnect{Version: 37, Name: "Alice", Challenge: 42, Key: "k", VersionStr: "0.3.7"}
	bs := bitstream.NewEmpty()
	msg.Write(bs)
	return bs.Bytes()
}

func TestDispatchRunsRegisteredHandler(t *testing.T) {
	r := New(protocol.NewCatalog())
	called := false
	r.OnRPC(protocol.IDPlayerConnect, event.PriorityDefault, func(peer int, msg protocol.Message) bool {
		called = true
		if peer != 3 {
			t.Fatalf("expected peer 3, got %d", peer)
		}
		return true
	})
	err := r.Dispatch(3, protocol.CategoryConnection, protocol.IDPlayerConnect, bitstream.New(encodedPlayerConnect()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestDispatchUnknownIDReturnsError(t *testing.T) {
	r := New(protocol.NewCatalog())
	err := r.Dispatch(0, protocol.CategoryRPC, 250, bitstream.New(nil))
	if err != protocol.ErrUnknownID {
		t.Fatalf("expected ErrUnknownID, got %v", err)
	}
}

func TestDispatchMalformedIncrementsCounter(t *testing.T) {
	r := New(protocol.NewCatalog())
	err := r.Dispatch(7, protocol.CategoryConnection, protocol.IDPlayerConnect, bitstream.New([]byte{1, 2}))
	if err == nil {
		t.Fatal("expected truncated read to fail")
	}
	if r.MalformedCount(7) != 1 {
		t.Fatalf("expected malformed count 1, got %d", r.MalformedCount(7))
	}
}

func TestStopAtFalseVetoesIndexHandler(t *testing.T) {
	r := New(protocol.NewCatalog())
	indexCalled := false
	r.OnRPC(protocol.IDPlayerConnect, event.PriorityHighest, func(peer int, msg protocol.Message) bool {
		return false
	})
	r.OnRPC(protocol.IDPlayerConnect, event.PriorityLowest, func(peer int, msg protocol.Message) bool {
		indexCalled = true
		return true
	})
	r.Dispatch(0, protocol.CategoryConnection, protocol.IDPlayerConnect, bitstream.New(encodedPlayerConnect()))
	if indexCalled {
		t.Fatal("expected lower-priority handler to be vetoed")
	}
}

func TestGlobalVetoSkipsIndexTable(t *testing.T) {
	r := New(protocol.NewCatalog())
	indexCalled := false
	r.OnAny(event.PriorityHighest, func(peer int, msg protocol.Message) bool { return false })
	r.OnRPC(protocol.IDPlayerConnect, event.PriorityDefault, func(peer int, msg protocol.Message) bool {
		indexCalled = true
		return true
	})
	r.Dispatch(0, protocol.CategoryConnection, protocol.IDPlayerConnect, bitstream.New(encodedPlayerConnect()))
	if indexCalled {
		t.Fatal("expected global veto to prevent index-specific dispatch")
	}
}

func TestForgetPeerClearsMalformedCount(t *testing.T) {
	r := New(protocol.NewCatalog())
	r.Dispatch(2, protocol.CategoryConnection, protocol.IDPlayerConnect, bitstream.New([]byte{1}))
	if r.MalformedCount(2) == 0 {
		t.Fatal("expected nonzero malformed count before forget")
	}
	r.ForgetPeer(2)
	if r.MalformedCount(2) != 0 {
		t.Fatal("expected malformed count reset after ForgetPeer")
	}
}
