package wavefile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Fixed container parameters. The tools read and write 16-bit stereo
// PCM only.
const (
	HeaderSize    = 44 // riff(12) + fmt(24) + data(8)
	NumChannels   = 2
	BitsPerSample = 16
	BytesPerFrame = NumChannels * BitsPerSample / 8

	pcmFormatCode = 1
	fmtChunkBody  = 16
)

// Errors returned while decoding headers.
var (
	ErrBadTag      = errors.New("wavefile: unexpected chunk tag")
	ErrUnsupported = errors.New("wavefile: unsupported sample format")
)

// RIFFChunk is the 12-byte container descriptor. Size is the total
// file size minus the 8 bytes of the descriptor head itself.
type RIFFChunk struct {
	Size uint32
}

func (c RIFFChunk) encode(w io.Writer) error {
	var b [12]byte

	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], c.Size)
	copy(b[8:12], "WAVE")

	_, err := w.Write(b[:])

	return err
}

func (c *RIFFChunk) decode(r io.Reader) error {
	var b [12]byte

	if _, err := io.ReadFull(r, b[:]); err != nil {
		return fmt.Errorf("wavefile: riff chunk: %w", err)
	}

	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return fmt.Errorf("%w: %q %q", ErrBadTag, b[0:4], b[8:12])
	}

	c.Size = binary.LittleEndian.Uint32(b[4:8])

	return nil
}

// FmtChunk is the 24-byte format descriptor.
type FmtChunk struct {
	FormatCode    uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// newFmtChunk fills the descriptor for 16-bit stereo PCM at the given rate.
func newFmtChunk(sampleRate int) FmtChunk {
	return FmtChunk{
		FormatCode:    pcmFormatCode,
		Channels:      NumChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * BytesPerFrame),
		BlockAlign:    BytesPerFrame,
		BitsPerSample: BitsPerSample,
	}
}

func (c FmtChunk) encode(w io.Writer) error {
	var b [24]byte

	copy(b[0:4], "fmt ")
	binary.LittleEndian.PutUint32(b[4:8], fmtChunkBody)
	binary.LittleEndian.PutUint16(b[8:10], c.FormatCode)
	binary.LittleEndian.PutUint16(b[10:12], c.Channels)
	binary.LittleEndian.PutUint32(b[12:16], c.SampleRate)
	binary.LittleEndian.PutUint32(b[16:20], c.ByteRate)
	binary.LittleEndian.PutUint16(b[20:22], c.BlockAlign)
	binary.LittleEndian.PutUint16(b[22:24], c.BitsPerSample)

	_, err := w.Write(b[:])

	return err
}

func (c *FmtChunk) decode(r io.Reader) error {
	var b [24]byte

	if _, err := io.ReadFull(r, b[:]); err != nil {
		return fmt.Errorf("wavefile: fmt chunk: %w", err)
	}

	if string(b[0:4]) != "fmt " {
		return fmt.Errorf("%w: %q", ErrBadTag, b[0:4])
	}

	if size := binary.LittleEndian.Uint32(b[4:8]); size != fmtChunkBody {
		return fmt.Errorf("%w: fmt chunk size %d", ErrUnsupported, size)
	}

	c.FormatCode = binary.LittleEndian.Uint16(b[8:10])
	c.Channels = binary.LittleEndian.Uint16(b[10:12])
	c.SampleRate = binary.LittleEndian.Uint32(b[12:16])
	c.ByteRate = binary.LittleEndian.Uint32(b[16:20])
	c.BlockAlign = binary.LittleEndian.Uint16(b[20:22])
	c.BitsPerSample = binary.LittleEndian.Uint16(b[22:24])

	return nil
}

// DataChunk is the 8-byte payload descriptor; Size counts payload bytes.
type DataChunk struct {
	Size uint32
}

func (c DataChunk) encode(w io.Writer) error {
	var b [8]byte

	copy(b[0:4], "data")
	binary.LittleEndian.PutUint32(b[4:8], c.Size)

	_, err := w.Write(b[:])

	return err
}

func (c *DataChunk) decode(r io.Reader) error {
	var b [8]byte

	if _, err := io.ReadFull(r, b[:]); err != nil {
		return fmt.Errorf("wavefile: data chunk: %w", err)
	}

	if string(b[0:4]) != "data" {
		return fmt.Errorf("%w: %q", ErrBadTag, b[0:4])
	}

	c.Size = binary.LittleEndian.Uint32(b[4:8])

	return nil
}

// Header composes the three fixed chunks of a measurement file.
type Header struct {
	RIFF RIFFChunk
	Fmt  FmtChunk
	Data DataChunk
}

// NewHeader builds the header for a file holding dataSize payload bytes.
func NewHeader(sampleRate int, dataSize uint32) Header {
	return Header{
		RIFF: RIFFChunk{Size: dataSize + HeaderSize - 8},
		Fmt:  newFmtChunk(sampleRate),
		Data: DataChunk{Size: dataSize},
	}
}

// Write serializes the header in fixed chunk order.
func (h Header) Write(w io.Writer) error {
	if err := h.RIFF.encode(w); err != nil {
		return fmt.Errorf("wavefile: riff chunk: %w", err)
	}

	if err := h.Fmt.encode(w); err != nil {
		return fmt.Errorf("wavefile: fmt chunk: %w", err)
	}

	if err := h.Data.encode(w); err != nil {
		return fmt.Errorf("wavefile: data chunk: %w", err)
	}

	return nil
}

// ReadHeader decodes the three fixed chunks and validates that the file
// holds 16-bit stereo PCM.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header

	if err := h.RIFF.decode(r); err != nil {
		return Header{}, err
	}

	if err := h.Fmt.decode(r); err != nil {
		return Header{}, err
	}

	if err := h.Data.decode(r); err != nil {
		return Header{}, err
	}

	if h.Fmt.FormatCode != pcmFormatCode ||
		h.Fmt.Channels != NumChannels ||
		h.Fmt.BitsPerSample != BitsPerSample {
		return Header{}, fmt.Errorf("%w: code=%d channels=%d bits=%d",
			ErrUnsupported, h.Fmt.FormatCode, h.Fmt.Channels, h.Fmt.BitsPerSample)
	}

	return h, nil
}

// Frames returns the number of sample frames in the payload.
func (h Header) Frames() int {
	return int(h.Data.Size) / BytesPerFrame
}

// SampleRate returns the payload sample rate in Hz.
func (h Header) SampleRate() int {
	return int(h.Fmt.SampleRate)
}
