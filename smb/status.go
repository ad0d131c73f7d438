package smb

import "fmt"

// Status is a 32-bit NT status code as carried in the SMB message header.
// Values with the high severity bits set (0xC0000000) are errors; the
// 0x....0002 values are DOS error class/code pairs retained by the protocol
// for legacy reasons.
type Status uint32

const (
	// StatusSuccess indicates the operation completed successfully
	StatusSuccess Status = 0x00000000

	// StatusInvalidSMB indicates a malformed client request
	StatusInvalidSMB Status = 0x00010002

	// StatusSMBBadCommand indicates an unrecognized command or subcommand code
	StatusSMBBadCommand Status = 0x00160002

	// StatusUnsuccessful indicates a generic internal failure
	StatusUnsuccessful Status = 0xC0000001

	// StatusNotImplemented indicates the request is valid but unsupported
	StatusNotImplemented Status = 0xC0000002

	// StatusInvalidParameter indicates a request carried an invalid parameter
	StatusInvalidParameter Status = 0xC000000D
)

var statusNames = map[Status]string{
	StatusSuccess:          "STATUS_SUCCESS",
	StatusInvalidSMB:       "STATUS_INVALID_SMB",
	StatusSMBBadCommand:    "STATUS_SMB_BAD_COMMAND",
	StatusUnsuccessful:     "STATUS_UNSUCCESSFUL",
	StatusNotImplemented:   "STATUS_NOT_IMPLEMENTED",
	StatusInvalidParameter: "STATUS_INVALID_PARAMETER",
}

// String returns the symbolic name of the status, or its hex value when the
// code is not part of this layer's vocabulary.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(s))
}
