package domain

import "strings"

// AddressKind classifies a destination address by its receiver capabilities.
type AddressKind string

const (
	AddressKindTransparent AddressKind = "transparent"
	AddressKindSapling     AddressKind = "sapling"
	AddressKindUnified     AddressKind = "unified"
	AddressKindUnknown     AddressKind = "unknown"
)

// KindOfAddress classifies an address string by prefix.
func KindOfAddress(addr string) AddressKind {
	switch {
	case strings.HasPrefix(addr, "zs1"):
		return AddressKindSapling
	case strings.HasPrefix(addr, "u1"):
		return AddressKindUnified
	case strings.HasPrefix(addr, "t"):
		return AddressKindTransparent
	default:
		return AddressKindUnknown
	}
}

// SupportsMemo reports whether the address kind carries a private receiver
// that can accept an encrypted memo. Transparent destinations cannot.
func (k AddressKind) SupportsMemo() bool {
	return k == AddressKindSapling || k == AddressKindUnified
}

// FallbackAddress is the well-known regtest transparent address used when the
// chain node cannot mint a fresh one at wallet creation.
const FallbackAddress = "tmBsTi2xWTjUdEXnuTceL7fecEQKeWu4u6d"
