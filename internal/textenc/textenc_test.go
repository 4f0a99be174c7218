package textenc

import "testing"

func TestWindows1252RoundTrip(t *testing.T) {
	c, err := New("windows-1252")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	encoded, err := c.Encode("Café Résumé")
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded != "Café Résumé" {
		t.Fatalf("round trip mismatch: got %q", decoded)
	}
}

func TestUnknownCharsetErrors(t *testing.T) {
	if _, err := New("utf-16-nonsense"); err == nil {
		t.Fatal("expected error for unknown charset")
	}
}

func TestASCIIPassesThroughUnchanged(t *testing.T) {
	c, _ := New("windows-1252")
	encoded, err := c.Encode("PlayerOne123")
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(encoded) != "PlayerOne123" {
		t.Fatalf("expected ASCII to pass through unchanged, got %q", encoded)
	}
}
