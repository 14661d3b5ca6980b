package wave

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriter(t *testing.T) {
	var bb bytes.Buffer

	w := NewWriter(&bb, 48000)
	n, err := w.Write([]int16{0, 1, -1, 256})
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || w.SampleCount() != 4 {
		t.Fatalf("wrote %d samples, counted %d, want 4", n, w.SampleCount())
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	want := []byte{
		'R', 'I', 'F', 'F',
		44, 0, 0, 0, // 36 header bytes + 8 data bytes
		'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ',
		16, 0, 0, 0,
		1, 0, // PCM
		1, 0, // mono
		0x80, 0xBB, 0, 0, // 48000
		0x00, 0x77, 0x01, 0, // 96000 bytes per second
		2, 0,
		16, 0,
		'd', 'a', 't', 'a',
		8, 0, 0, 0,
		0, 0, 1, 0, 0xFF, 0xFF, 0, 1, // samples, little-endian
	}
	if diff := cmp.Diff(want, bb.Bytes()); diff != "" {
		t.Errorf("wave file mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterHeaderFields(t *testing.T) {
	var bb bytes.Buffer

	w := NewWriter(&bb, 8000)
	samples := make([]int16, 1000)
	w.Write(samples)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got := bb.Bytes()
	if len(got) != headerSize+2*len(samples) {
		t.Fatalf("file is %d bytes, want %d", len(got), headerSize+2*len(samples))
	}
	if rate := binary.LittleEndian.Uint32(got[0x18:]); rate != 8000 {
		t.Errorf("sample rate = %d, want 8000", rate)
	}
	if size := binary.LittleEndian.Uint32(got[0x28:]); size != 2000 {
		t.Errorf("data size = %d, want 2000", size)
	}
}
