// Package textenc transcodes SA-MP client strings (player names, chat
// text, dialog bodies) between a configurable single-byte code page and
// UTF-8, so the rest of the core always works with Go strings and the
// wire codec always writes the codec's declared 8-bit charset.
//
// Grounded on golang.org/x/text/encoding/charmap's use for legacy
// single-byte text elsewhere in the retrieved example pack (replay
// parsing predates default-UTF-8 assumptions the same way SA-MP clients
// do).
package textenc

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Codec transcodes between one 8-bit code page and UTF-8.
type Codec struct {
	enc encoding.Encoding
}

var byName = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"windows-1251": charmap.Windows1251,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"koi8-r":       charmap.KOI8R,
}

// New returns the Codec for a configured charset name, e.g. the
// server's configured "charset" setting.
func New(charsetName string) (*Codec, error) {
	enc, ok := byName[charsetName]
	if !ok {
		return nil, fmt.Errorf("textenc: unknown charset %q", charsetName)
	}
	return &Codec{enc: enc}, nil
}

// Decode converts codec-charset bytes (as they arrive in a dynamic
// string field) into a UTF-8 Go string.
func (c *Codec) Decode(raw []byte) (string, error) {
	out, _, err := transform.Bytes(c.enc.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("textenc: decode: %w", err)
	}
	return string(out), nil
}

// Encode converts a UTF-8 Go string into codec-charset bytes suitable
// for a dynamic string field on the wire. Characters with no
// representation in the target charset are replaced per the encoder's
// default replacement behavior rather than failing the whole string.
func (c *Codec) Encode(s string) ([]byte, error) {
	out, _, err := transform.Bytes(encoding.ReplaceUnsupported(c.enc.NewEncoder()), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode: %w", err)
	}
	return out, nil
}
