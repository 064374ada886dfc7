package respond

import (
	"strconv"
	"strings"
)

const (
	formatJSON = "json"
	formatCBOR = "cbor"
)

// selectFormat picks the problem encoding for an Accept header. CBOR wins only when
// the client ranks it strictly above every JSON-compatible range.
func selectFormat(accept string) string {
	if strings.TrimSpace(accept) == "" {
		return formatJSON
	}
	jsonQ, cborQ := -1.0, -1.0
	for part := range strings.SplitSeq(accept, ",") {
		mediaType, q, ok := parseAccept(part)
		if !ok {
			continue
		}
		switch mediaType {
		case "application/cbor", "application/problem+cbor", "application/*+cbor":
			cborQ = max(cborQ, q)
		case "application/json", "application/problem+json", "application/*+json", "application/*", "*/*":
			jsonQ = max(jsonQ, q)
		}
	}
	if cborQ > 0 && cborQ > jsonQ {
		return formatCBOR
	}
	return formatJSON
}

// parseAccept splits one Accept element into its lower-cased media range and
// quality. Elements without a slash or with a q outside [0, 1] are rejected.
func parseAccept(part string) (string, float64, bool) {
	segments := strings.Split(part, ";")
	mediaType := strings.ToLower(strings.TrimSpace(segments[0]))
	if mediaType == "" || !strings.Contains(mediaType, "/") {
		return "", 0, false
	}
	q := 1.0
	for _, param := range segments[1:] {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return "", 0, false
		}
		q = parsed
	}
	return mediaType, q, true
}
