// Package wavefile reads and writes the fixed-layout WAV container
// used by the tone-burst tools: a 12-byte RIFF descriptor, a 24-byte
// fmt descriptor for 16-bit stereo linear PCM, an 8-byte data
// descriptor, then interleaved little-endian samples.
//
// The three chunks always appear in that order and every field is
// encoded and decoded explicitly, field by field, so the byte layout is
// a serialization contract rather than an artifact of struct packing.
// Files written here are ordinary WAV files and load in any PCM-capable
// audio tool.
package wavefile
