package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

// Small shared helpers for the byte-oriented boolean/string conventions the
// RPC catalog uses (as opposed to the sub-byte bit-packing the sync packets
// use directly through bitstream.BitStream). Grounded on
// source/protocol/rpc.go's repeated "if toggle { writeUint8(1) } else {
// writeUint8(0) }" idiom, generalized into one helper instead of being
// repeated at every call site.

func writeBoolByte(bs *bitstream.BitStream, v bool) {
	if v {
		bs.WriteUint8(1)
	} else {
		bs.WriteUint8(0)
	}
}

func readBoolByte(bs *bitstream.BitStream) (bool, error) {
	v, err := bs.ReadUint8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// writeStr32/readStr32 is the uint32-length-prefixed raw string SA-MP 0.3.7
// uses for hostnames, gamemode text and map names (no null terminator).
func writeStr32(bs *bitstream.BitStream, s string) {
	bs.WriteDynStr32([]byte(s))
}

func readStr32(bs *bitstream.BitStream) (string, error) {
	b, err := bs.ReadDynStr32()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeStr16(bs *bitstream.BitStream, s string) {
	bs.WriteDynStr16([]byte(s))
}

func readStr16(bs *bitstream.BitStream) (string, error) {
	b, err := bs.ReadDynStr16()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeStr8(bs *bitstream.BitStream, s string) {
	bs.WriteDynStr8([]byte(s))
}

func readStr8(bs *bitstream.BitStream) (string, error) {
	b, err := bs.ReadDynStr8()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
