package state

import "strings"

// MaxAddressLength bounds the opaque identifier so hostile payloads cannot
// bloat storage keys.
const MaxAddressLength = 128

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

// Address is the opaque account identifier handed in by the host. The
// contracts never parse it beyond domain sniffing and the length bound.
type Address string

// String returns the literal representation of the address.
// Example payload: state.Address("hive:alice").String()
func (a Address) String() string {
	return string(a)
}

// Domain quickly checks the prefix to classify user/contract/system addresses.
// Example payload: state.Address("system:ucic.treasury").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsValid rejects empty and oversized addresses, the two malformed shapes
// the operation set treats as validation errors.
// Example payload: state.Address("hive:bob").IsValid()
func (a Address) IsValid() bool {
	if len(a) == 0 || len(a) > MaxAddressLength {
		return false
	}
	return true
}
