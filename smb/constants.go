// Package smb provides the SMB1 wire-level constants, message size limits and
// NT status vocabulary shared by the transaction engine. Centralizing them
// here keeps validation consistent across components.
package smb

import (
	"errors"
	"fmt"
)

const (
	// HeaderLength is the fixed size of the SMB1 message header
	HeaderLength = 32

	// MinMessageLength is the smallest well-formed SMB1 message: the fixed
	// header followed by an empty words block (1-byte count) and an empty
	// bytes block (2-byte count)
	MinMessageLength = HeaderLength + 1 + 2

	// MaxMessageLength caps any message this layer will process. The NetBIOS
	// session layer frames messages with a 17-bit length field, so nothing
	// larger can arrive intact
	MaxMessageLength = 0x1FFFF

	// Alignment is the boundary every transaction sub-block must start on
	Alignment = 4
)

var (
	// ErrMessageTooShort indicates a buffer below the minimum SMB message size
	ErrMessageTooShort = errors.New("message below minimum SMB length")

	// ErrMessageTooLarge indicates a buffer above the maximum SMB message size
	ErrMessageTooLarge = errors.New("message exceeds maximum SMB length")
)

// ValidateMessageSize validates a raw message buffer against the protocol
// size bounds. Returns an error with the actual and limit sizes for context.
func ValidateMessageSize(buf []byte) error {
	if len(buf) < MinMessageLength {
		return fmt.Errorf("%w: size %d below minimum %d", ErrMessageTooShort, len(buf), MinMessageLength)
	}
	if len(buf) > MaxMessageLength {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrMessageTooLarge, len(buf), MaxMessageLength)
	}
	return nil
}
