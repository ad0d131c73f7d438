package nttrans

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arrowinmyname/node-smb-server/smb"
)

// Dispatcher routes decoded NT transactions to their subcommand handlers.
// It holds no per-request state; one Dispatcher serves any number of
// concurrent connections.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher backed by the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch processes one inbound NT transaction and always returns a
// well-formed TransactionResult. Rejected requests (unknown function code,
// unregistered or chunked subcommand, handler-reported failure) echo the
// original request parameter and data buffers back as the reply payload, per
// protocol convention. A non-nil error accompanies the result only for
// wire-format failures (truncated header, out-of-range offsets) so the
// connection layer can account for them; the result is still usable as the
// reply.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *MessageContext, conn, server any) (*TransactionResult, error) {
	if err := smb.ValidateMessageSize(msg.Buf); err != nil {
		return echo(msg, smb.StatusInvalidSMB), fmt.Errorf("validate message: %w", err)
	}

	h, err := DecodeHeader(msg.Params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"package": "nttrans",
			"error":   err,
		}).Warn("rejecting transaction with malformed header")
		return echo(msg, smb.StatusInvalidSMB), fmt.Errorf("decode transaction header: %w", err)
	}

	log := logrus.WithFields(logrus.Fields{
		"package":         "nttrans",
		"function":        fmt.Sprintf("0x%04x", h.Function),
		"parameter_count": h.ParameterCount,
		"data_count":      h.DataCount,
	})

	name, ok := FunctionName(h.Function)
	if !ok {
		log.Warn("unknown transaction subcommand code")
		return echo(msg, smb.StatusSMBBadCommand), nil
	}
	log = log.WithField("subcommand", name)

	if h.Incomplete() {
		// Secondary messages would be needed to complete the transaction;
		// reassembly is not supported at this layer.
		log.WithFields(logrus.Fields{
			"total_parameter_count": h.TotalParameterCount,
			"total_data_count":      h.TotalDataCount,
		}).Warn("chunked transaction not supported")
		return echo(msg, smb.StatusNotImplemented), nil
	}

	handler, ok := d.registry.Lookup(name)
	if !ok {
		log.Warn("no handler registered for subcommand")
		return echo(msg, smb.StatusNotImplemented), nil
	}

	payload, err := LocatePayloads(msg, h)
	if err != nil {
		log.WithField("error", err).Warn("rejecting transaction with out-of-range payload offsets")
		return echo(msg, smb.StatusInvalidSMB), fmt.Errorf("locate transaction payload: %w", err)
	}

	log.Debug("dispatching transaction subcommand")

	res, err := handler.Handle(ctx, &Request{
		Msg:          msg,
		Function:     h.Function,
		Params:       payload.Params,
		ParamsOffset: payload.ParamsOffset,
		Data:         payload.Data,
		DataOffset:   payload.DataOffset,
		Conn:         conn,
		Server:       server,
	})
	if err != nil || res == nil {
		// Handlers are contracted to report failures through the status
		// code and to return exactly one result; anything else is a
		// handler bug and must not take the serving process down.
		log.WithField("error", err).Error("subcommand handler failed")
		return echo(msg, smb.StatusUnsuccessful), nil
	}

	if res.Status != smb.StatusSuccess {
		log.WithField("status", res.Status.String()).Debug("subcommand reported non-success status")
		return echo(msg, res.Status), nil
	}

	return AssembleResponse(res), nil
}

// echo builds the reply for a rejected or failed transaction: the original
// request parameter and data buffers, unmodified, under the given status.
func echo(msg *MessageContext, status smb.Status) *TransactionResult {
	return &TransactionResult{
		Status: status,
		Params: msg.Params,
		Data:   msg.Data,
	}
}
