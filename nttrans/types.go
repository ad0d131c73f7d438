package nttrans

import (
	"context"

	"github.com/arrowinmyname/node-smb-server/smb"
)

// MessageContext is the immutable per-request view of one inbound SMB
// message: the full raw buffer plus the command's parameter and data blocks
// as located by the transport layer. It is owned by a single dispatch call
// and must not be retained beyond it.
type MessageContext struct {
	// Buf is the full raw message buffer.
	Buf []byte

	// Params holds the command's parameter block (the transaction header
	// words); ParamsOffset is its position within Buf.
	Params       []byte
	ParamsOffset uint32

	// Data holds the command's data block; DataOffset is its position
	// within Buf.
	Data       []byte
	DataOffset uint32
}

// Request carries everything a subcommand handler receives: the enclosing
// message, the resolved function code, the subcommand's own parameter and
// data slices with their absolute offsets, and the ambient connection and
// server handles. The engine never inspects Conn or Server; they pass
// through to the handler opaquely.
type Request struct {
	Msg      *MessageContext
	Function uint16

	Params       []byte
	ParamsOffset uint32
	Data         []byte
	DataOffset   uint32

	Conn   any
	Server any
}

// SubcommandResult is what a handler produces: a protocol status plus the
// reply parameter, data and setup payloads. Setup is usually empty. The
// result is treated as immutable once returned.
type SubcommandResult struct {
	Status smb.Status
	Params []byte
	Data   []byte
	Setup  []byte
}

// TransactionResult is the engine's output for one transaction: the status
// and the fully wire-encoded reply parameter and data buffers, ready for the
// connection layer to frame into an outgoing message.
type TransactionResult struct {
	Status smb.Status
	Params []byte
	Data   []byte
}

// Handler processes one NT transaction subcommand. Handle is called exactly
// once per request and must return exactly one result; handlers report
// protocol failures through SubcommandResult.Status, not through the error
// return. The provided buffers alias the inbound message and must not be
// retained after Handle returns. Handlers performing further I/O should
// honor ctx.
type Handler interface {
	Handle(ctx context.Context, req *Request) (*SubcommandResult, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, req *Request) (*SubcommandResult, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, req *Request) (*SubcommandResult, error) {
	return f(ctx, req)
}
