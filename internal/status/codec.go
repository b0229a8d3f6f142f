package status

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

const (
	segmentSep = "|"
	encodedSep = "| "
)

// Decode parses a raw status string such as "2 M|1 ??" into a map from
// status code to file count. Empty segments are skipped, so "" decodes to an
// empty map.
func Decode(raw string) (map[string]uint64, error) {
	states := make(map[string]uint64)

	for _, seg := range strings.Split(raw, segmentSep) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		countText, code, ok := strings.Cut(seg, " ")
		if !ok {
			return nil, &ParseError{Segment: seg, Reason: "missing space between count and code"}
		}

		count, err := strconv.ParseUint(countText, 10, 64)
		if err != nil {
			return nil, &ParseError{Segment: seg, Reason: "count is not a non-negative integer", Err: err}
		}

		code = strings.TrimSpace(code)
		if code == "" {
			return nil, &ParseError{Segment: seg, Reason: "missing code"}
		}
		if strings.IndexFunc(code, unicode.IsSpace) >= 0 {
			return nil, &ParseError{Segment: seg, Reason: "code contains whitespace"}
		}
		// A repeated code keeps the last count.
		states[code] = count
	}

	return states, nil
}

// Encode renders states in display form: entries sorted by code, each as
// "<count> <code> ", joined by "| ". An empty map encodes to "".
func Encode(states map[string]uint64) string {
	var b strings.Builder
	for i, code := range SortedCodes(states) {
		if i > 0 {
			b.WriteString(encodedSep)
		}
		b.WriteString(strconv.FormatUint(states[code], 10))
		b.WriteByte(' ')
		b.WriteString(code)
		b.WriteByte(' ')
	}
	return b.String()
}

// SortedCodes returns the codes of states in byte-wise ascending order.
func SortedCodes(states map[string]uint64) []string {
	codes := make([]string, 0, len(states))
	for code := range states {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
