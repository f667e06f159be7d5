package face

import (
	"bytes"
	"testing"
)

func TestDescriptorCodec_RoundTrip(t *testing.T) {
	desc := []float32{0, 1, -1, 0.5, 3.1415927, -2.5e-7}

	encoded := EncodeDescriptor(desc)
	if len(encoded) != len(desc)*4 {
		t.Fatalf("encoded length = %d; want %d", len(encoded), len(desc)*4)
	}

	decoded, err := DecodeDescriptor(encoded)
	if err != nil {
		t.Fatalf("DecodeDescriptor failed: %v", err)
	}
	if len(decoded) != len(desc) {
		t.Fatalf("decoded length = %d; want %d", len(decoded), len(desc))
	}
	for i := range desc {
		if decoded[i] != desc[i] {
			t.Errorf("decoded[%d] = %g; want %g", i, decoded[i], desc[i])
		}
	}
}

func TestEncodeDescriptor_LittleEndian(t *testing.T) {
	// 1.0 as IEEE-754 float32 is 0x3F800000; little-endian bytes are
	// 00 00 80 3F.
	encoded := EncodeDescriptor([]float32{1.0})

	want := []byte{0x00, 0x00, 0x80, 0x3F}
	if !bytes.Equal(encoded, want) {
		t.Errorf("encoded 1.0 as % X; want % X", encoded, want)
	}
}

func TestDecodeDescriptor_InvalidLength(t *testing.T) {
	if _, err := DecodeDescriptor([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for byte length not divisible by 4")
	}
}

func TestDecodeDescriptor_Empty(t *testing.T) {
	decoded, err := DecodeDescriptor(nil)
	if err != nil {
		t.Fatalf("DecodeDescriptor(nil) failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("decoded length = %d; want 0", len(decoded))
	}
}
