package nttrans

import (
	"testing"

	"github.com/arrowinmyname/node-smb-server/smb"
	"github.com/arrowinmyname/node-smb-server/wire"
)

// encodeRequestHeader is a reference encoder for the NT_TRANSACT request
// header, mirroring the wire layout DecodeHeader consumes. The production
// code only ever decodes requests, so tests supply the encoder.
func encodeRequestHeader(h *Header) []byte {
	var w wire.Writer
	w.WriteU8(h.MaxSetupCount)
	w.WriteZeros(2)
	w.WriteU32(h.TotalParameterCount)
	w.WriteU32(h.TotalDataCount)
	w.WriteU32(h.MaxParameterCount)
	w.WriteU32(h.MaxDataCount)
	w.WriteU32(h.ParameterCount)
	w.WriteU32(h.ParameterOffset)
	w.WriteU32(h.DataCount)
	w.WriteU32(h.DataOffset)
	w.WriteU8(h.SetupCount)
	w.WriteU16(h.Function)
	w.WriteBytes(h.Setup)
	return w.Bytes()
}

// requestHeaderFixedLength is the encoded size of a setup-less request header.
const requestHeaderFixedLength = 38

// newTestMessage builds a fully laid-out transaction message: the command
// parameter block right after the minimum message header, the command data
// region after that, with the subcommand blocks placed on 4-byte boundaries
// so the local and absolute layouts agree. mutate, if non-nil, edits the
// header before encoding (to forge incomplete or out-of-range requests).
func newTestMessage(t *testing.T, function uint16, subParams, subData []byte, mutate func(*Header)) *MessageContext {
	t.Helper()

	cmdParamsOff := smb.MinMessageLength
	cmdDataOff := cmdParamsOff + requestHeaderFixedLength

	paramsStart := wire.PadLength(cmdDataOff, smb.Alignment)
	paramsEnd := paramsStart + len(subParams)
	dataStart := paramsEnd + wire.PadLength(cmdDataOff+paramsEnd, smb.Alignment)

	h := &Header{
		MaxSetupCount:       0,
		TotalParameterCount: uint32(len(subParams)),
		TotalDataCount:      uint32(len(subData)),
		MaxParameterCount:   1024,
		MaxDataCount:        4096,
		ParameterCount:      uint32(len(subParams)),
		ParameterOffset:     uint32(cmdDataOff + paramsStart),
		DataCount:           uint32(len(subData)),
		DataOffset:          uint32(cmdDataOff + dataStart),
		SetupCount:          0,
		Function:            function,
	}
	if mutate != nil {
		mutate(h)
	}

	cmdParams := encodeRequestHeader(h)
	if len(cmdParams) != requestHeaderFixedLength {
		t.Fatalf("encoded header length = %d, want %d", len(cmdParams), requestHeaderFixedLength)
	}

	var dataRegion wire.Writer
	dataRegion.WriteZeros(paramsStart)
	dataRegion.WriteBytes(subParams)
	dataRegion.WriteZeros(dataStart - paramsEnd)
	dataRegion.WriteBytes(subData)

	var msg wire.Writer
	msg.WriteZeros(cmdParamsOff)
	msg.WriteBytes(cmdParams)
	msg.WriteBytes(dataRegion.Bytes())
	buf := msg.Bytes()

	return &MessageContext{
		Buf:          buf,
		Params:       buf[cmdParamsOff : cmdParamsOff+len(cmdParams)],
		ParamsOffset: uint32(cmdParamsOff),
		Data:         buf[cmdDataOff:],
		DataOffset:   uint32(cmdDataOff),
	}
}
