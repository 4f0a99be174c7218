package bitstream

import (
	"math"
	"testing"
)

func TestBitRoundTrip(t *testing.T) {
	b := NewEmpty()
	bits := []bool{true, false, true, true, false, false, true}
	for _, v := range bits {
		b.WriteBit(v)
	}
	r := New(b.Bytes())
	for i, want := range bits {
		got, err := r.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("bit %d: got %v want %v", i, got, want)
		}
	}
}

func TestUintRoundTrip(t *testing.T) {
	b := NewEmpty()
	b.WriteUint8(0xAB)
	b.WriteUint16(0x1234)
	b.WriteUint32(0xDEADBEEF)
	b.WriteUint64(0x0102030405060708)

	r := New(b.Bytes())
	if v, _ := r.ReadUint8(); v != 0xAB {
		t.Fatalf("uint8 got %x", v)
	}
	if v, _ := r.ReadUint16(); v != 0x1234 {
		t.Fatalf("uint16 got %x", v)
	}
	if v, _ := r.ReadUint32(); v != 0xDEADBEEF {
		t.Fatalf("uint32 got %x", v)
	}
	if v, _ := r.ReadUint64(); v != 0x0102030405060708 {
		t.Fatalf("uint64 got %x", v)
	}
}

func TestSignedIntRoundTrip(t *testing.T) {
	b := NewEmpty()
	b.WriteInt8(-5)
	b.WriteInt16(-1000)
	b.WriteInt32(-70000)
	r := New(b.Bytes())
	if v, _ := r.ReadInt8(); v != -5 {
		t.Fatalf("int8 got %d", v)
	}
	if v, _ := r.ReadInt16(); v != -1000 {
		t.Fatalf("int16 got %d", v)
	}
	if v, _ := r.ReadInt32(); v != -70000 {
		t.Fatalf("int32 got %d", v)
	}
}

func TestFloatDoubleRoundTrip(t *testing.T) {
	b := NewEmpty()
	b.WriteFloat(3.14159)
	b.WriteDouble(2.718281828)
	r := New(b.Bytes())
	if v, _ := r.ReadFloat(); v != float32(3.14159) {
		t.Fatalf("float got %v", v)
	}
	if v, _ := r.ReadDouble(); v != 2.718281828 {
		t.Fatalf("double got %v", v)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	b := NewEmpty()
	v2 := Vec2{1, 2}
	v3 := Vec3{1, 2, 3}
	v4 := Vec4{1, 2, 3, 4}
	b.WriteVec2(v2)
	b.WriteVec3(v3)
	b.WriteVec4(v4)
	r := New(b.Bytes())
	if got, _ := r.ReadVec2(); got != v2 {
		t.Fatalf("vec2 got %v", got)
	}
	if got, _ := r.ReadVec3(); got != v3 {
		t.Fatalf("vec3 got %v", got)
	}
	if got, _ := r.ReadVec4(); got != v4 {
		t.Fatalf("vec4 got %v", got)
	}
}

func TestCompressedVec3Tolerance(t *testing.T) {
	b := NewEmpty()
	v := Vec3{123.456, -45.67, 300.1}
	b.WriteCompressedVec3(v)
	r := New(b.Bytes())
	got, err := r.ReadCompressedVec3()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(float64(got.X-v.X)) > 0.01 || math.Abs(float64(got.Y-v.Y)) > 0.01 || math.Abs(float64(got.Z-v.Z)) > 0.01 {
		t.Fatalf("compressed vec3 out of tolerance: got %v want %v", got, v)
	}
}

func TestCompressedVec3Clamps(t *testing.T) {
	b := NewEmpty()
	b.WriteCompressedVec3(Vec3{100000, -100000, 0})
	r := New(b.Bytes())
	got, err := r.ReadCompressedVec3()
	if err != nil {
		t.Fatal(err)
	}
	if got.X <= 0 || got.Y >= 0 {
		t.Fatalf("expected clamp to representable range, got %v", got)
	}
}

func TestGTAQuatRoundTrip(t *testing.T) {
	// A normalized quaternion.
	q := Quat{X: 0.1, Y: 0.2, Z: 0.3, W: float32(math.Sqrt(1 - 0.01 - 0.04 - 0.09))}
	b := NewEmpty()
	b.WriteGTAQuat(q)
	r := New(b.Bytes())
	got, err := r.ReadGTAQuat()
	if err != nil {
		t.Fatal(err)
	}
	const tol = 0.001
	if math.Abs(float64(got.X-q.X)) > tol || math.Abs(float64(got.Y-q.Y)) > tol || math.Abs(float64(got.Z-q.Z)) > tol {
		t.Fatalf("gta quat out of tolerance: got %v want %v", got, q)
	}
	if (got.W < 0) != (q.W < 0) {
		t.Fatalf("sign bit mismatch: got w=%v want w=%v", got.W, q.W)
	}
}

func TestGTAQuatMalformed(t *testing.T) {
	b := NewEmpty()
	b.WriteBit(false)
	// x^2+y^2+z^2 intentionally > 1
	b.writeQuatComponent(0.99)
	b.writeQuatComponent(0.99)
	b.writeQuatComponent(0.99)
	r := New(b.Bytes())
	if _, err := r.ReadGTAQuat(); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestCompressedPercentPairExactBuckets(t *testing.T) {
	// 0 and 100 are exact on the 16-bucket quantization.
	b := NewEmpty()
	b.WriteCompressedPercentPair(Vec2{0, 100})
	r := New(b.Bytes())
	got, err := r.ReadCompressedPercentPair()
	if err != nil {
		t.Fatal(err)
	}
	if got.X != 0 || got.Y != 100 {
		t.Fatalf("got %v", got)
	}
}

func TestDynStrRoundTrip(t *testing.T) {
	b := NewEmpty()
	b.WriteDynStr8([]byte("hi"))
	b.WriteDynStr16([]byte("hello world"))
	b.WriteDynStr32([]byte("a longer payload here"))
	r := New(b.Bytes())
	if s, _ := r.ReadDynStr8(); string(s) != "hi" {
		t.Fatalf("dynstr8 got %q", s)
	}
	if s, _ := r.ReadDynStr16(); string(s) != "hello world" {
		t.Fatalf("dynstr16 got %q", s)
	}
	if s, _ := r.ReadDynStr32(); string(s) != "a longer payload here" {
		t.Fatalf("dynstr32 got %q", s)
	}
}

func TestFixedStrPadsAndTruncates(t *testing.T) {
	b := NewEmpty()
	b.WriteFixedStr([]byte("ab"), 5)
	r := New(b.Bytes())
	s, err := r.ReadFixedStr(5)
	if err != nil {
		t.Fatal(err)
	}
	if string(s) != "ab\x00\x00\x00" {
		t.Fatalf("got %q", s)
	}
}

func TestTruncatedRead(t *testing.T) {
	b := NewEmpty()
	b.WriteUint8(1)
	r := New(b.Bytes())
	r.ReadUint8()
	if _, err := r.ReadUint32(); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	b := NewEmpty()
	in8 := []uint8{1, 2, 3}
	in16 := []uint16{100, 200, 300}
	b.WriteArrayUint8(in8)
	b.WriteArrayUint16(in16)
	r := New(b.Bytes())
	out8, _ := r.ReadArrayUint8(len(in8))
	out16, _ := r.ReadArrayUint16(len(in16))
	for i := range in8 {
		if out8[i] != in8[i] {
			t.Fatalf("uint8 array mismatch at %d", i)
		}
	}
	for i := range in16 {
		if out16[i] != in16[i] {
			t.Fatalf("uint16 array mismatch at %d", i)
		}
	}
}

func TestCompressedStrRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		[]byte("the quick brown fox jumps over the quick brown fox"),
	}
	for _, c := range cases {
		b := NewEmpty()
		b.WriteCompressedStr(c)
		r := New(b.Bytes())
		got, err := r.ReadCompressedStr(len(c))
		if err != nil {
			t.Fatalf("decode %q: %v", c, err)
		}
		if string(got) != string(c) {
			t.Fatalf("roundtrip mismatch: got %q want %q", got, c)
		}
	}
}

func BenchmarkWriteUint32(b *testing.B) {
	bs := NewEmpty()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bs.WriteUint32(uint32(i))
	}
}

func BenchmarkCompressedVec3RoundTrip(b *testing.B) {
	v := Vec3{123.45, 67.89, -12.3}
	for i := 0; i < b.N; i++ {
		bs := NewEmpty()
		bs.WriteCompressedVec3(v)
		r := New(bs.Bytes())
		r.ReadCompressedVec3()
	}
}
