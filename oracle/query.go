package oracle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Escape percent-encodes every byte of s that appears in meta. Only the
// metacharacters are touched so the encoded length stays predictable.
func Escape(s, meta string) string {
	b := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(meta, s[i]) >= 0 {
			fmt.Fprintf(b, "%%%02X", s[i])
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Unescape reverses Escape for any percent-encoded byte.
func Unescape(s string) (string, error) {
	b := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("truncated escape at offset %d", i)
		}
		v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			return "", fmt.Errorf("bad escape at offset %d: %w", i, err)
		}
		b.WriteByte(byte(v))
		i += 2
	}
	return b.String(), nil
}

// Pair is one key=value field of a query string.
type Pair struct {
	Key, Value string
}

// EncodeQuery joins pairs as k1=v1&k2=v2, escaping '&' and '=' inside keys
// and values.
func EncodeQuery(pairs []Pair) string {
	fields := make([]string, len(pairs))
	for i, p := range pairs {
		fields[i] = Escape(p.Key, "&=") + "=" + Escape(p.Value, "&=")
	}
	return strings.Join(fields, "&")
}

// ParseQuery splits a string produced by EncodeQuery back into pairs.
func ParseQuery(q string) ([]Pair, error) {
	var pairs []Pair
	for _, field := range strings.Split(q, "&") {
		if field == "" {
			continue
		}
		i := strings.IndexByte(field, '=')
		if i < 0 {
			return nil, errors.New("parse error: field without '='")
		}
		key, err := Unescape(field[:i])
		if err != nil {
			return nil, err
		}
		value, err := Unescape(field[i+1:])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}
