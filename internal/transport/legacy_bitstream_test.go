package transport

import "testing"

func TestEncodeDecodeDatagramRoundTrip(t *testing.T) {
	envelopes := []Envelope{
		{Reliability: Unreliable, Payload: []byte{1, 2, 3}},
		{Reliability: ReliableOrdered, MessageIndex: 7, OrderIndex: 2, OrderChannel: ChannelSyncRPC, Payload: []byte{9, 9}},
	}
	data := EncodeDatagram(42, envelopes)
	seq, out, err := DecodeDatagram(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if seq != 42 {
		t.Fatalf("expected seq 42, got %d", seq)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 envelopes, got %d", len(out))
	}
	if out[1].MessageIndex != 7 || out[1].OrderIndex != 2 || out[1].OrderChannel != ChannelSyncRPC {
		t.Fatalf("ordering metadata lost: %+v", out[1])
	}
	if string(out[0].Payload) != "\x01\x02\x03" {
		t.Fatalf("payload mismatch: %v", out[0].Payload)
	}
}

func TestDecodeDatagramRejectsNonDataPacket(t *testing.T) {
	if _, _, err := DecodeDatagram([]byte{0x01, 0, 0, 0}); err == nil {
		t.Fatal("expected rejection of non-data-packet flag byte")
	}
}

func TestDecodeDatagramRejectsTruncated(t *testing.T) {
	if _, _, err := DecodeDatagram([]byte{0x80, 0, 0}); err == nil {
		t.Fatal("expected truncated datagram to fail")
	}
}

func TestEncodeACKFormat(t *testing.T) {
	data := EncodeACK([]uint32{5, 6})
	if data[0] != 0xC0 {
		t.Fatalf("expected ACK id 0xC0, got 0x%02X", data[0])
	}
	count := uint16(data[1]) | uint16(data[2])<<8
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
}

func TestSessionSequenceCounterIsMonotonic(t *testing.T) {
	s := NewSession(0, nil)
	if s.NextSequence() != 0 || s.NextSequence() != 1 {
		t.Fatal("expected monotonically increasing sequence numbers")
	}
}

func TestSessionOrderIndexIsPerChannel(t *testing.T) {
	s := NewSession(0, nil)
	a := s.NextOrderIndex(ChannelSyncRPC)
	b := s.NextOrderIndex(ChannelSyncPacket)
	if a != 0 || b != 0 {
		t.Fatalf("expected independent per-channel counters starting at 0, got %d %d", a, b)
	}
	if s.NextOrderIndex(ChannelSyncRPC) != 1 {
		t.Fatal("expected channel counter to advance independently")
	}
}
