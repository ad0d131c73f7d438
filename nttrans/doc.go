// Package nttrans implements the framing, dispatch and codec engine for the
// SMB1 NT_TRANSACT command.
//
// An NT transaction multiplexes several subcommands (create, ioctl, change
// notification, quota and security-descriptor operations) under a single
// command code. The client frames each request as a fixed-layout header plus
// variable setup words inside the command parameter block, and carves the
// subcommand's own parameter and data blocks out of the message by declared
// offsets, 4-byte aligned.
//
// This package decodes that framing, routes the request to the handler
// registered for its function code, and re-encodes the handler's result into
// the reply framing. The subcommand implementations themselves, the transport
// that frames raw messages, and session/authentication state are external
// collaborators.
//
// Example:
//
//	registry := nttrans.NewRegistryFromMap(map[string]nttrans.Handler{
//	    "nt_transact_ioctl": ioctlHandler,
//	})
//	d := nttrans.NewDispatcher(registry)
//
//	result, err := d.Dispatch(ctx, msg, conn, server)
//	if err != nil {
//	    // malformed request; result still carries the error reply
//	}
//	// send result.Params / result.Data back to the client
//
// Multi-message ("chunked") transactions, where the parameter or data bytes
// arrive across secondary messages, are not reassembled here; they are
// answered with STATUS_NOT_IMPLEMENTED.
package nttrans
