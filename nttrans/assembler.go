package nttrans

import (
	"github.com/arrowinmyname/node-smb-server/smb"
	"github.com/arrowinmyname/node-smb-server/wire"
)

// replyFixedParamLength is the fixed size of the NT_TRANSACT reply parameter
// block: 3 reserved bytes, eight u32 count/offset/displacement fields and the
// setup count byte.
const replyFixedParamLength = 36

// AssembleResponse encodes a successful subcommand result into the reply
// framing. Block offsets depend on the lengths of everything preceding them,
// so the layout is fixed in one left-to-right pass before any bytes are
// emitted:
//
//	dataOff      - where the reply data region begins in the outgoing message
//	subParamsOff - sub-parameter block, padded to the next 4-byte boundary
//	subDataOff   - sub-data block, padded again after the parameters
//
// The returned data buffer carries the padding inline so the blocks land on
// the computed absolute offsets once the connection layer prepends the fixed
// message header.
func AssembleResponse(res *SubcommandResult) *TransactionResult {
	paramsLen := replyFixedParamLength + len(res.Setup)
	dataOff := smb.MinMessageLength + paramsLen
	pad1 := wire.PadLength(dataOff, smb.Alignment)
	subParamsOff := dataOff + pad1
	pad2 := wire.PadLength(subParamsOff+len(res.Params), smb.Alignment)
	subDataOff := subParamsOff + len(res.Params) + pad2

	var pw wire.Writer
	pw.WriteZeros(3)                     // reserved
	pw.WriteU32(uint32(len(res.Params))) // TotalParameterCount
	pw.WriteU32(uint32(len(res.Data)))   // TotalDataCount
	pw.WriteU32(uint32(len(res.Params))) // ParameterCount
	pw.WriteU32(uint32(subParamsOff))    // ParameterOffset
	pw.WriteU32(0)                       // ParameterDisplacement
	pw.WriteU32(uint32(len(res.Data)))   // DataCount
	pw.WriteU32(uint32(subDataOff))      // DataOffset
	pw.WriteU32(0)                       // DataDisplacement
	pw.WriteU8(uint8(len(res.Setup)))
	pw.WriteBytes(res.Setup)

	var dw wire.Writer
	dw.WriteZeros(pad1)
	dw.WriteBytes(res.Params)
	dw.WriteZeros(pad2)
	dw.WriteBytes(res.Data)

	return &TransactionResult{
		Status: smb.StatusSuccess,
		Params: pw.Bytes(),
		Data:   dw.Bytes(),
	}
}
