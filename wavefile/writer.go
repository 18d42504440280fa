package wavefile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrFrameCount is returned when stereo block lengths disagree.
var ErrFrameCount = errors.New("wavefile: channel blocks must have equal length")

// Writer writes interleaved 16-bit stereo frames behind a fixed
// header. The payload size is declared up front, as the run length is
// fully determined by the configuration; the writer does not rewrite
// the header afterwards.
type Writer struct {
	bw      *bufio.Writer
	scratch []byte
}

// NewWriter writes the container header for a payload of the given
// number of frames and returns a frame writer. Call Flush when the
// payload is complete.
func NewWriter(w io.Writer, sampleRate, frames int) (*Writer, error) {
	bw := bufio.NewWriter(w)

	h := NewHeader(sampleRate, uint32(frames*BytesPerFrame))
	if err := h.Write(bw); err != nil {
		return nil, err
	}

	return &Writer{bw: bw}, nil
}

// WriteMono writes one block of samples duplicated to both channels.
func (w *Writer) WriteMono(block []int16) error {
	buf := w.frameBuf(len(block))

	for i, s := range block {
		u := uint16(s)
		binary.LittleEndian.PutUint16(buf[4*i:], u)
		binary.LittleEndian.PutUint16(buf[4*i+2:], u)
	}

	return w.write(buf)
}

// WriteStereo writes one block of frames with distinct channel data.
func (w *Writer) WriteStereo(left, right []int16) error {
	if len(left) != len(right) {
		return ErrFrameCount
	}

	buf := w.frameBuf(len(left))

	for i := range left {
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(left[i]))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(right[i]))
	}

	return w.write(buf)
}

// WriteSilence writes the given number of zero frames.
func (w *Writer) WriteSilence(frames int) error {
	buf := w.frameBuf(frames)
	for i := range buf {
		buf[i] = 0
	}

	return w.write(buf)
}

// Flush forces buffered frames to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("wavefile: flush: %w", err)
	}

	return nil
}

func (w *Writer) write(buf []byte) error {
	if _, err := w.bw.Write(buf); err != nil {
		return fmt.Errorf("wavefile: write frames: %w", err)
	}

	return nil
}

func (w *Writer) frameBuf(frames int) []byte {
	need := frames * BytesPerFrame
	if cap(w.scratch) < need {
		w.scratch = make([]byte, need)
	}

	return w.scratch[:need]
}
