package protocol

import (
	"io"

	"github.com/wayfind-dev/wayfind/internal/errors"
)

// Frame constants.
const (
	// FrameHeaderSize is the size of the frame header in bytes.
	FrameHeaderSize = 4

	// MaxPayloadSize is the maximum payload size (2^24 - 1 bytes). Patch
	// batches for large first mounts need more room than a uint16 offers.
	MaxPayloadSize = 1<<24 - 1
)

// FrameType identifies the type of frame.
type FrameType uint8

const (
	FrameHandshake FrameType = 0x00 // Client -> server connection setup
	FrameEvent     FrameType = 0x01 // Client -> server navigation events
	FramePatches   FrameType = 0x02 // Server -> client container mutations
	FrameHistory   FrameType = 0x03 // Server -> client history commands
	FrameControl   FrameType = 0x04 // Ping/pong
	FrameError     FrameType = 0x05 // Server -> client error report
)

// String returns the string representation of the frame type.
func (ft FrameType) String() string {
	switch ft {
	case FrameHandshake:
		return "Handshake"
	case FrameEvent:
		return "Event"
	case FramePatches:
		return "Patches"
	case FrameHistory:
		return "History"
	case FrameControl:
		return "Control"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

func validFrameType(ft FrameType) bool {
	return ft <= FrameError
}

// Frame errors.
var (
	ErrFrameTooLarge    = errors.New(errors.CodeFrameTooLarge, errors.CategoryProtocol, "protocol: frame payload too large")
	ErrInvalidFrameType = errors.New(errors.CodeBadFrameType, errors.CategoryProtocol, "protocol: invalid frame type")
)

// Frame is one protocol frame: a 4-byte header followed by a JSON payload.
//
// Wire format:
//
//	byte 0    frame type
//	bytes 1-3 payload length, big-endian uint24
//	bytes 4+  payload
type Frame struct {
	Type    FrameType
	Payload []byte
}

// Encode encodes the frame to bytes including the header.
func (f *Frame) Encode() []byte {
	length := len(f.Payload)
	buf := make([]byte, FrameHeaderSize+length)
	buf[0] = byte(f.Type)
	buf[1] = byte(length >> 16)
	buf[2] = byte(length >> 8)
	buf[3] = byte(length)
	copy(buf[FrameHeaderSize:], f.Payload)
	return buf
}

// ReadFrame reads a complete frame from an io.Reader.
func ReadFrame(r io.Reader) (*Frame, error) {
	header := make([]byte, FrameHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	ft := FrameType(header[0])
	if !validFrameType(ft) {
		return nil, ErrInvalidFrameType
	}
	length := int(header[1])<<16 | int(header[2])<<8 | int(header[3])
	if length > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}

	payload := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, err
		}
	}
	return &Frame{Type: ft, Payload: payload}, nil
}

// DecodeFrame parses a complete frame from a byte slice, as delivered by a
// message-oriented transport.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < FrameHeaderSize {
		return nil, errors.New(errors.CodeBadFrameType, errors.CategoryProtocol,
			"protocol: short frame")
	}
	ft := FrameType(data[0])
	if !validFrameType(ft) {
		return nil, ErrInvalidFrameType
	}
	length := int(data[1])<<16 | int(data[2])<<8 | int(data[3])
	if length != len(data)-FrameHeaderSize {
		return nil, errors.New(errors.CodeBadFrameType, errors.CategoryProtocol,
			"protocol: frame length mismatch")
	}
	return &Frame{Type: ft, Payload: data[FrameHeaderSize:]}, nil
}

// WriteFrame writes a complete frame to an io.Writer.
func WriteFrame(w io.Writer, f *Frame) error {
	if len(f.Payload) > MaxPayloadSize {
		return ErrFrameTooLarge
	}
	_, err := w.Write(f.Encode())
	return err
}

// NewFrame creates a frame with the given type and payload.
func NewFrame(ft FrameType, payload []byte) *Frame {
	return &Frame{Type: ft, Payload: payload}
}
