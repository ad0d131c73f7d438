package nttrans

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arrowinmyname/node-smb-server/smb"
	"github.com/arrowinmyname/node-smb-server/wire"
)

// Payload holds the subcommand's own parameter and data blocks as carved out
// of the full message buffer, plus their absolute offsets within it. The
// slices alias the message buffer.
type Payload struct {
	Params       []byte
	ParamsOffset uint32
	Data         []byte
	DataOffset   uint32
}

// LocatePayloads slices the subcommand's parameter and data blocks out of
// the full message buffer using the header-declared absolute offsets. Both
// ranges are validated before slicing; an offset or count that does not fit
// the buffer yields wire.ErrMalformedOffset.
//
// The wire format also implies a second, local layout: each sub-block starts
// on a 4-byte boundary within the command's data region. The header offsets
// are authoritative and are what the handler receives, but the local layout
// is recomputed and compared so a disagreement shows up in the logs.
func LocatePayloads(msg *MessageContext, h *Header) (*Payload, error) {
	params, err := wire.Slice(msg.Buf, h.ParameterOffset, h.ParameterCount)
	if err != nil {
		return nil, fmt.Errorf("subcommand parameter block: %w", err)
	}
	data, err := wire.Slice(msg.Buf, h.DataOffset, h.DataCount)
	if err != nil {
		return nil, fmt.Errorf("subcommand data block: %w", err)
	}

	checkLocalLayout(msg, h, params, data)

	return &Payload{
		Params:       params,
		ParamsOffset: h.ParameterOffset,
		Data:         data,
		DataOffset:   h.DataOffset,
	}, nil
}

// checkLocalLayout recomputes the sub-block positions from the alignment
// rule: the sub-parameter block starts at the first 4-byte boundary of the
// command data region, and the sub-data block at the next 4-byte boundary
// after it. Offsets are padded against the absolute position of the data
// region so alignment is relative to the start of the message.
func checkLocalLayout(msg *MessageContext, h *Header, absParams, absData []byte) {
	paramsStart := wire.PadLength(int(msg.DataOffset), smb.Alignment)
	paramsEnd := paramsStart + int(h.ParameterCount)
	dataStart := paramsEnd + wire.PadLength(int(msg.DataOffset)+paramsEnd, smb.Alignment)
	dataEnd := dataStart + int(h.DataCount)

	fields := logrus.Fields{
		"package":            "nttrans",
		"local_params_start": paramsStart,
		"local_data_start":   dataStart,
		"parameter_offset":   h.ParameterOffset,
		"data_offset":        h.DataOffset,
	}

	if dataEnd > len(msg.Data) {
		logrus.WithFields(fields).Warn("local sub-block layout exceeds command data region; trusting header offsets")
		return
	}
	if !bytes.Equal(msg.Data[paramsStart:paramsEnd], absParams) ||
		!bytes.Equal(msg.Data[dataStart:dataEnd], absData) {
		logrus.WithFields(fields).Warn("local and absolute sub-block layouts disagree; trusting header offsets")
	}
}
