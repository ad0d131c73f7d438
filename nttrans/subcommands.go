package nttrans

// NT_TRANSACT subcommand function codes ([MS-CIFS] 2.2.7.19).
const (
	FunctionCreate            uint16 = 0x0001
	FunctionIoctl             uint16 = 0x0002
	FunctionSetSecurityDesc   uint16 = 0x0003
	FunctionNotifyChange      uint16 = 0x0004
	FunctionRename            uint16 = 0x0005
	FunctionQuerySecurityDesc uint16 = 0x0006
	FunctionQueryQuota        uint16 = 0x0007
	FunctionSetQuota          uint16 = 0x0008
)

// functionNames is the fixed function-code to subcommand-name table the
// dispatcher resolves against. Registry lookups use these names exactly; no
// partial matching or fallback.
var functionNames = map[uint16]string{
	FunctionCreate:            "nt_transact_create",
	FunctionIoctl:             "nt_transact_ioctl",
	FunctionSetSecurityDesc:   "nt_transact_set_security_desc",
	FunctionNotifyChange:      "nt_transact_notify_change",
	FunctionRename:            "nt_transact_rename",
	FunctionQuerySecurityDesc: "nt_transact_query_security_desc",
	FunctionQueryQuota:        "nt_transact_query_quota",
	FunctionSetQuota:          "nt_transact_set_quota",
}

// FunctionName resolves a subcommand function code to its registry name.
// The second return is false for codes outside the protocol's table.
func FunctionName(code uint16) (string, bool) {
	name, ok := functionNames[code]
	return name, ok
}
