package ledger

import "ucic_contracts/state"

// storage key prefixes
const (
	kAccount   byte = 0x01
	kAllowance byte = 0x02
	kTxLog     byte = 0x03
	kSupply    byte = 0x04
)

// idxAccounts holds every registered address for integrity scans.
const idxAccounts = "acct"

// accountKey mixes the prefix with the raw address bytes.
func accountKey(addr state.Address) string {
	a := addr.String()
	buf := make([]byte, 0, 1+len(a))
	buf = append(buf, kAccount)
	buf = append(buf, a...)
	return string(buf)
}

// allowanceKey length-prefixes the owner so owner/spender pairs never collide.
func allowanceKey(owner, spender state.Address) string {
	o := owner.String()
	s := spender.String()
	buf := make([]byte, 0, 1+8+len(o)+len(s))
	buf = append(buf, kAllowance)
	buf = state.PackU64LE(uint64(len(o)), buf)
	buf = append(buf, o...)
	buf = append(buf, s...)
	return string(buf)
}

// txLogKey stores history entries sequentially per address.
func txLogKey(addr state.Address, seq uint64) string {
	a := addr.String()
	buf := make([]byte, 0, 1+len(a)+8)
	buf = append(buf, kTxLog)
	buf = append(buf, a...)
	buf = state.PackU64LE(seq, buf)
	return string(buf)
}

func supplyKey() string {
	return string([]byte{kSupply})
}
