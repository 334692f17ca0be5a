package dto

import (
	"fmt"
	"regexp"
	"strings"

	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/pkg/apperror"
)

// transparentAddrRe matches base58 transparent addresses. Regtest uses the
// tm prefix; t1/t3 cover main and multisig forms.
var transparentAddrRe = regexp.MustCompile(`^t[13m][a-zA-Z0-9]{33}$`)

const (
	minSaplingLen = 78
	minUnifiedLen = 100
)

// ValidateAddress checks destination address shape by receiver kind. Bech32
// checksum validation is left to the wallet process; this catches obvious
// garbage before it reaches the transfer protocol.
func ValidateAddress(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return apperror.ErrInvalidAddress("address is required")
	}

	switch domain.KindOfAddress(addr) {
	case domain.AddressKindSapling:
		if len(addr) < minSaplingLen {
			return apperror.ErrInvalidAddress(fmt.Sprintf("sapling address too short: %d chars", len(addr)))
		}
	case domain.AddressKindUnified:
		if len(addr) < minUnifiedLen {
			return apperror.ErrInvalidAddress(fmt.Sprintf("unified address too short: %d chars", len(addr)))
		}
	case domain.AddressKindTransparent:
		if !transparentAddrRe.MatchString(addr) {
			return apperror.ErrInvalidAddress("malformed transparent address")
		}
	default:
		return apperror.ErrInvalidAddress("unrecognized address format")
	}
	return nil
}
