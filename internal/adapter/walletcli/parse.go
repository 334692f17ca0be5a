package walletcli

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// All knowledge about the shape of zingo-cli console output lives in this
// file. The tool prints a mix of log lines, JSON fragments, and free text;
// everything downstream works off these extractors so a change in the tool's
// output surfaces as a localized test failure here.

var (
	// A transaction id is 64 lowercase hex characters.
	txidRe = regexp.MustCompile(`\b[0-9a-f]{64}\b`)

	// Send responses carry a JSON-ish `"txids": ["<hex>"]` field.
	txidsFieldRe = regexp.MustCompile(`"txids"\s*:\s*\[\s*"([0-9a-f]{64})"`)

	// `spendable_balance` prints a JSON-ish integer field. The tool groups
	// digits with underscores (e.g. 5_000_000_000).
	spendableRe = regexp.MustCompile(`"spendable_balance"\s*:\s*"?([0-9_]+)"?`)

	// `balance` prints one line per pool.
	transparentBalanceRe = regexp.MustCompile(`confirmed_transparent_balance:\s*([0-9_]+)`)
	saplingBalanceRe     = regexp.MustCompile(`confirmed_sapling_balance:\s*([0-9_]+)`)
	orchardBalanceRe     = regexp.MustCompile(`confirmed_orchard_balance:\s*([0-9_]+)`)
)

// noopShieldMarkers are the responses quickshield gives when the exposed
// pools hold nothing worth moving. Treated as success.
var noopShieldMarkers = []string{
	"nothing to shield",
	"nothing to move",
	"no funds to shield",
}

// errorMarkers flag explicit failure text in send output.
var errorMarkers = []string{
	"error",
	"insufficient",
	"failed",
}

// ExtractTxID finds a transaction id in raw output, preferring the structured
// "txids" field over a bare 64-hex token.
func ExtractTxID(raw string) (string, bool) {
	if m := txidsFieldRe.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	if m := txidRe.FindString(raw); m != "" {
		return m, true
	}
	return "", false
}

// ParseSpendableBalance extracts the spendable pool balance in zatoshi.
func ParseSpendableBalance(raw string) (int64, bool) {
	m := spendableRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	n, err := parseGroupedInt(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParsePoolBalances extracts the three confirmed pool balances from `balance`
// output. All three lines must be present.
func ParsePoolBalances(raw string) (transparent, sapling, orchard int64, ok bool) {
	t, okT := matchGroupedInt(transparentBalanceRe, raw)
	s, okS := matchGroupedInt(saplingBalanceRe, raw)
	o, okO := matchGroupedInt(orchardBalanceRe, raw)
	if !okT || !okS || !okO {
		return 0, 0, 0, false
	}
	return t, s, o, true
}

// ParsePrimaryAddress finds the first address with the given prefix followed
// by at least 70 alphanumeric characters — the process's primary receiving
// address in `addresses` output.
func ParsePrimaryAddress(raw, prefix string) (string, bool) {
	re := regexp.MustCompile(regexp.QuoteMeta(prefix) + `[a-zA-Z0-9]{70,}`)
	if m := re.FindString(raw); m != "" {
		return m, true
	}
	return "", false
}

// IsNothingToShield reports whether quickshield output is the benign
// nothing-to-move response.
func IsNothingToShield(raw string) bool {
	lower := strings.ToLower(raw)
	for _, marker := range noopShieldMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ErrorText returns explicit failure text found in the output, if any.
func ErrorText(raw string) (string, bool) {
	for _, line := range strings.Split(raw, "\n") {
		lower := strings.ToLower(line)
		for _, marker := range errorMarkers {
			if strings.Contains(lower, marker) {
				return strings.TrimSpace(line), true
			}
		}
	}
	return "", false
}

// ExtractJSONLine scans output lines for the first well-formed JSON object
// and unmarshals it. Lines often embed an object after a log prefix, so the
// scan starts at the first brace on each line.
func ExtractJSONLine(raw string) (map[string]interface{}, bool) {
	for _, line := range strings.Split(raw, "\n") {
		start := strings.IndexByte(line, '{')
		if start < 0 {
			continue
		}
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line[start:]), &obj); err == nil {
			return obj, true
		}
	}
	return nil, false
}

func matchGroupedInt(re *regexp.Regexp, raw string) (int64, bool) {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	n, err := parseGroupedInt(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseGroupedInt(s string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 10, 64)
}

// snippet truncates raw output for inclusion in error messages.
func snippet(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > 160 {
		return trimmed[:160] + "..."
	}
	if trimmed == "" {
		return "(empty output)"
	}
	return trimmed
}
