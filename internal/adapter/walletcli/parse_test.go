package walletcli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTxID = "3f2a9b8c7d6e5f4a3b2c1d0e9f8a7b6c5d4e3f2a1b0c9d8e7f6a5b4c3d2e1f0a"

func TestExtractTxID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "bare hex token",
			raw:  "broadcast complete\n" + sampleTxID + "\n",
			want: sampleTxID,
			ok:   true,
		},
		{
			name: "txids field preferred over earlier token",
			raw:  `{"txids": ["` + sampleTxID + `"]}`,
			want: sampleTxID,
			ok:   true,
		},
		{
			name: "txids field with whitespace",
			raw:  "{\n  \"txids\" : [\n    \"" + sampleTxID + "\"\n  ]\n}",
			want: sampleTxID,
			ok:   true,
		},
		{
			name: "uppercase hex rejected",
			raw:  strings.ToUpper(sampleTxID),
			ok:   false,
		},
		{
			name: "too short",
			raw:  sampleTxID[:63],
			ok:   false,
		},
		{
			name: "no txid",
			raw:  "syncing... done",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTxID(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseSpendableBalance(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
		ok   bool
	}{
		{
			name: "grouped digits",
			raw:  `{"spendable_balance": 5_000_000_000}`,
			want: 5_000_000_000,
			ok:   true,
		},
		{
			name: "quoted value",
			raw:  `{"spendable_balance": "1_000_020_000"}`,
			want: 1_000_020_000,
			ok:   true,
		},
		{
			name: "plain integer",
			raw:  `"spendable_balance": 42`,
			want: 42,
			ok:   true,
		},
		{
			name: "surrounded by log noise",
			raw:  "sync status: done\n{\"spendable_balance\": 990_000_000_000}\nquit",
			want: 990_000_000_000,
			ok:   true,
		},
		{
			name: "missing field",
			raw:  `{"orchard_balance": 100}`,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSpendableBalance(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePoolBalances(t *testing.T) {
	raw := `PoolBalances {
    sapling_balance: 0
    confirmed_sapling_balance: 1_500
    confirmed_orchard_balance: 99_999_980_000
    confirmed_transparent_balance: 625_000_000
}`

	tr, sa, or, ok := ParsePoolBalances(raw)
	require.True(t, ok)
	assert.Equal(t, int64(625_000_000), tr)
	assert.Equal(t, int64(1_500), sa)
	assert.Equal(t, int64(99_999_980_000), or)

	_, _, _, ok = ParsePoolBalances("confirmed_orchard_balance: 5")
	assert.False(t, ok, "all three pools must be present")
}

func TestParsePrimaryAddress(t *testing.T) {
	addr := "uregtest1" + strings.Repeat("qz7x", 25)
	raw := "addresses:\n[\n  {\n    \"address\": \"" + addr + "\"\n  }\n]"

	got, ok := ParsePrimaryAddress(raw, "uregtest")
	require.True(t, ok)
	assert.Equal(t, addr, got)

	_, ok = ParsePrimaryAddress("uregtest1short", "uregtest")
	assert.False(t, ok)

	_, ok = ParsePrimaryAddress(raw, "zs")
	assert.False(t, ok)
}

func TestIsNothingToShield(t *testing.T) {
	assert.True(t, IsNothingToShield("Error: Nothing to shield in transparent pool"))
	assert.True(t, IsNothingToShield("nothing to move"))
	assert.True(t, IsNothingToShield("NO FUNDS TO SHIELD"))
	assert.False(t, IsNothingToShield(sampleTxID))
	assert.False(t, IsNothingToShield(""))
}

func TestErrorText(t *testing.T) {
	text, ok := ErrorText("sync: done\nError: insufficient funds for send\nquit")
	require.True(t, ok)
	assert.Equal(t, "Error: insufficient funds for send", text)

	_, ok = ErrorText("all good\n" + sampleTxID)
	assert.False(t, ok)
}

func TestExtractJSONLine(t *testing.T) {
	obj, ok := ExtractJSONLine("log prefix {\"spendable_balance\": 12345}\nnot json")
	require.True(t, ok)
	assert.Equal(t, float64(12345), obj["spendable_balance"])

	_, ok = ExtractJSONLine("no braces here\nstill none")
	assert.False(t, ok)

	_, ok = ExtractJSONLine("{broken json")
	assert.False(t, ok)
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "(empty output)", snippet("   \n "))
	assert.Equal(t, "short", snippet("  short  "))

	long := strings.Repeat("x", 200)
	got := snippet(long)
	assert.Len(t, got, 163)
	assert.True(t, strings.HasSuffix(got, "..."))
}
