package dto

import (
	"errors"
	"strings"
	"testing"

	"zeckit-faucet/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"regtest transparent", "tmBsTi2xWTjUdEXnuTceL7fecEQKeWu4u6d", false},
		{"mainnet transparent", "t1" + strings.Repeat("a", 33), false},
		{"transparent too short", "tm" + strings.Repeat("a", 20), true},
		{"transparent bad chars", "tm" + strings.Repeat("!", 33), true},
		{"sapling", "zs1" + strings.Repeat("q", 75), false},
		{"sapling too short", "zs1" + strings.Repeat("q", 40), true},
		{"unified", "u1" + strings.Repeat("q", 108), false},
		{"unified too short", "u1" + strings.Repeat("q", 50), true},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"garbage", "not-an-address", true},
		{"surrounding whitespace is tolerated", "  tmBsTi2xWTjUdEXnuTceL7fecEQKeWu4u6d  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.addr)
			if tt.wantErr {
				require.Error(t, err)
				var appErr *apperror.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, "REQ_001", appErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
