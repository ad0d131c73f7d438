package nttrans

import (
	"fmt"

	"github.com/arrowinmyname/node-smb-server/wire"
)

// Header is the decoded NT_TRANSACT request header. It is constructed fresh
// per inbound message by DecodeHeader and read-only afterwards.
type Header struct {
	MaxSetupCount       uint8
	TotalParameterCount uint32
	TotalDataCount      uint32
	MaxParameterCount   uint32
	MaxDataCount        uint32
	ParameterCount      uint32
	ParameterOffset     uint32
	DataCount           uint32
	DataOffset          uint32
	SetupCount          uint8
	Function            uint16

	// Setup holds the raw setup words (2 bytes per SetupCount). It is a
	// view into the input buffer, not a copy.
	Setup []byte
}

// Incomplete reports whether the transaction's parameter or data bytes
// exceed what this message carries, meaning secondary messages would be
// needed to complete it.
func (h *Header) Incomplete() bool {
	return h.ParameterCount < h.TotalParameterCount || h.DataCount < h.TotalDataCount
}

// DecodeHeader parses the NT_TRANSACT request header from the command's
// parameter block. Field order on the wire: MaxSetupCount (u8), 2 reserved
// bytes, then TotalParameterCount, TotalDataCount, MaxParameterCount,
// MaxDataCount, ParameterCount, ParameterOffset, DataCount, DataOffset (all
// u32 little-endian), SetupCount (u8), Function (u16), and 2*SetupCount
// setup bytes. A buffer too short for any field yields wire.ErrTruncatedInput.
func DecodeHeader(params []byte) (*Header, error) {
	r := wire.NewReader(params)
	var h Header
	var err error

	if h.MaxSetupCount, err = r.ReadU8(); err != nil {
		return nil, fmt.Errorf("max setup count: %w", err)
	}
	if err = r.Skip(2); err != nil {
		return nil, fmt.Errorf("reserved: %w", err)
	}
	if h.TotalParameterCount, err = r.ReadU32(); err != nil {
		return nil, fmt.Errorf("total parameter count: %w", err)
	}
	if h.TotalDataCount, err = r.ReadU32(); err != nil {
		return nil, fmt.Errorf("total data count: %w", err)
	}
	if h.MaxParameterCount, err = r.ReadU32(); err != nil {
		return nil, fmt.Errorf("max parameter count: %w", err)
	}
	if h.MaxDataCount, err = r.ReadU32(); err != nil {
		return nil, fmt.Errorf("max data count: %w", err)
	}
	if h.ParameterCount, err = r.ReadU32(); err != nil {
		return nil, fmt.Errorf("parameter count: %w", err)
	}
	if h.ParameterOffset, err = r.ReadU32(); err != nil {
		return nil, fmt.Errorf("parameter offset: %w", err)
	}
	if h.DataCount, err = r.ReadU32(); err != nil {
		return nil, fmt.Errorf("data count: %w", err)
	}
	if h.DataOffset, err = r.ReadU32(); err != nil {
		return nil, fmt.Errorf("data offset: %w", err)
	}
	if h.SetupCount, err = r.ReadU8(); err != nil {
		return nil, fmt.Errorf("setup count: %w", err)
	}
	if h.Function, err = r.ReadU16(); err != nil {
		return nil, fmt.Errorf("function code: %w", err)
	}
	if h.Setup, err = r.ReadBytes(2 * int(h.SetupCount)); err != nil {
		return nil, fmt.Errorf("setup bytes: %w", err)
	}

	return &h, nil
}
