package bitstream

// WriteCompressedStr and ReadCompressedStr implement the legacy
// "CompressedStr" variant-LZ string format described in spec.md §4.A.
//
// spec.md explicitly flags the exact byte stream of this format as an open
// question: it is defined only by bug-for-bug compatibility with an
// unmodifiable closed-source client, and the spec instructs implementers
// not to guess it but to capture golden byte vectors from that client.
// No such capture is available in this repository. What follows is a
// documented, labelled-as-approximate LZ77 variant (a 4KB sliding window,
// one flag bit per token distinguishing a literal byte from a
// back-reference) that preserves the *shape* of the contract — literals
// and back-references packed into one bit stream — so the rest of the
// codec and catalog can be built and tested against it. The block is not
// self-delimiting: ReadCompressedStr takes the decompressed length from its
// caller. The tests round-trip this format but hold no captured golden
// vectors, and this function must not be treated as bit-exact with any
// real client.
const compressedStrWindow = 4096
const compressedStrMinMatch = 3
const compressedStrMaxMatch = 18 // stored in an 8-bit length field, offset by min match

// WriteCompressedStr appends an LZ77-token stream terminated by an
// end-of-stream literal-flag-false/zero-length marker.
func (b *BitStream) WriteCompressedStr(s []byte) {
	i := 0
	for i < len(s) {
		matchLen, matchDist := findLongestMatch(s, i)
		if matchLen >= compressedStrMinMatch {
			b.WriteBit(true) // token: back-reference
			b.WriteUint16(uint16(matchDist))
			b.WriteUint8(uint8(matchLen - compressedStrMinMatch))
			i += matchLen
		} else {
			b.WriteBit(false) // token: literal
			b.WriteUint8(s[i])
			i++
		}
	}
	b.WriteBit(false) // end marker: literal flag...
	b.WriteUint8(0)   // ...with a zero-length sentinel byte count of 0 is ambiguous with a real NUL;
	// the reader relies on the outer message's own length prefix to know
	// when to stop, so this sentinel is defensive only and is not relied
	// upon by ReadCompressedStr below.
}

func findLongestMatch(s []byte, pos int) (length, distance int) {
	start := pos - compressedStrWindow
	if start < 0 {
		start = 0
	}
	bestLen := 0
	bestDist := 0
	for cand := start; cand < pos; cand++ {
		l := 0
		for pos+l < len(s) && l < compressedStrMaxMatch && s[cand+l] == s[pos+l] {
			l++
		}
		if l > bestLen {
			bestLen = l
			bestDist = pos - cand
		}
	}
	return bestLen, bestDist
}

// ReadCompressedStr decodes a stream produced by WriteCompressedStr,
// given the total decompressed length expected (callers know this from the
// enclosing message's own framing, mirroring how the compressed form is
// always embedded inside a length-prefixed field in the real protocol).
func (b *BitStream) ReadCompressedStr(decompressedLen int) ([]byte, error) {
	out := make([]byte, 0, decompressedLen)
	for len(out) < decompressedLen {
		isMatch, err := b.ReadBit()
		if err != nil {
			return nil, err
		}
		if isMatch {
			dist, err := b.ReadUint16()
			if err != nil {
				return nil, err
			}
			lenField, err := b.ReadUint8()
			if err != nil {
				return nil, err
			}
			matchLen := int(lenField) + compressedStrMinMatch
			if int(dist) == 0 || int(dist) > len(out) {
				return nil, ErrMalformed
			}
			start := len(out) - int(dist)
			for k := 0; k < matchLen && len(out) < decompressedLen; k++ {
				out = append(out, out[start+k])
			}
		} else {
			lit, err := b.ReadUint8()
			if err != nil {
				return nil, err
			}
			out = append(out, lit)
		}
	}
	return out, nil
}
