package wavefile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Reader reads interleaved 16-bit stereo frames from a measurement
// file. It decodes and validates the header on construction and then
// serves sequential block reads; it implements burst.BlockReader.
type Reader struct {
	br      *bufio.Reader
	hdr     Header
	scratch []byte
}

// NewReader decodes the container header and returns a frame reader.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)

	hdr, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	return &Reader{br: br, hdr: hdr}, nil
}

// Header returns the decoded container header.
func (r *Reader) Header() Header {
	return r.hdr
}

// ReadBlock fills ch1 and ch2 with the next len(ch1) frames, converted
// to float64. Both slices must have equal length. If the stream ends
// before the block is complete the error is io.ErrUnexpectedEOF; the
// remaining run cannot be salvaged.
func (r *Reader) ReadBlock(ch1, ch2 []float64) error {
	if len(ch1) != len(ch2) {
		return ErrFrameCount
	}

	buf, err := r.fill(len(ch1))
	if err != nil {
		return err
	}

	for i := range ch1 {
		ch1[i] = float64(int16(binary.LittleEndian.Uint16(buf[4*i:])))
		ch2[i] = float64(int16(binary.LittleEndian.Uint16(buf[4*i+2:])))
	}

	return nil
}

// SkipFrames discards the next n frames.
func (r *Reader) SkipFrames(n int) error {
	_, err := r.fill(n)

	return err
}

func (r *Reader) fill(frames int) ([]byte, error) {
	need := frames * BytesPerFrame
	if cap(r.scratch) < need {
		r.scratch = make([]byte, need)
	}

	buf := r.scratch[:need]

	if _, err := io.ReadFull(r.br, buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, fmt.Errorf("wavefile: read frames: %w", err)
	}

	return buf, nil
}
