// Package wave writes mono 16-bit PCM wave files.
package wave

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

const (
	sampleSize = 2
	headerSize = 0x2C
)

// A Writer writes 16-bit mono samples to a wave file. Samples accumulate in
// memory; Close writes the header and the data and must be called to produce
// a valid file.
type Writer struct {
	w          io.WriteCloser
	sampleRate int
	bb         bytes.Buffer
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewWriter creates a Writer with the given sample rate, onto which samples
// can be written with Write. Close must be called when done writing samples
// to finalize the wave data.
func NewWriter(w io.Writer, sampleRate int) *Writer {
	return &Writer{
		w:          nopCloser{Writer: w},
		sampleRate: sampleRate,
	}
}

// NewFile creates a new wave file at the given path with the given sample
// rate. Close must be called when done writing samples to finalize the file.
func NewFile(path string, sampleRate int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{w: f, sampleRate: sampleRate}, nil
}

// SampleCount returns the number of samples written so far.
func (w *Writer) SampleCount() int {
	return w.bb.Len() / sampleSize
}

func (w *Writer) header() [headerSize]byte {
	dataSize := w.bb.Len()
	h := [headerSize]byte{
		'R', 'I', 'F', 'F',
		0, 0, 0, 0, //        length of rest of file
		'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ',
		16, 0, 0, 0, //       size of fmt chunk
		1, 0, //              uncompressed format
		1, 0, //              mono
		0, 0, 0, 0, //        sample rate
		0, 0, 0, 0, //        bytes per second
		sampleSize, 0, //     bytes per sample frame
		sampleSize * 8, 0, // bits per sample
		'd', 'a', 't', 'a',
		0, 0, 0, 0, //        size of sample data
		// ...                sample data
	}

	binary.LittleEndian.PutUint32(h[0x04:], uint32(headerSize-8+dataSize))
	binary.LittleEndian.PutUint32(h[0x18:], uint32(w.sampleRate))
	binary.LittleEndian.PutUint32(h[0x1C:], uint32(w.sampleRate*sampleSize))
	binary.LittleEndian.PutUint32(h[0x28:], uint32(dataSize))
	return h
}

// Write appends samples to the wave data.
func (w *Writer) Write(p []int16) (n int, err error) {
	if err := binary.Write(&w.bb, binary.LittleEndian, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close finalizes the wave file. It must be called when done writing samples.
func (w *Writer) Close() error {
	hdr := w.header()
	if _, err := w.w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.w.Write(w.bb.Bytes()); err != nil {
		return err
	}

	w.bb.Reset()
	return w.w.Close()
}
