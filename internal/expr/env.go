// Package expr expands ${env.KEY} references in configuration values.
package expr

import (
	"os"
	"strings"
	"unicode"
)

const envPrefix = "${env."

// ExpandEnv replaces all occurrences of ${env.KEY} in value with the
// value of the environment variable KEY (or "" if unset).
func ExpandEnv(value string) string {
	return expandWith(value, os.Getenv)
}

func expandWith(value string, lookup func(string) string) string {
	if !strings.Contains(value, envPrefix) {
		return value
	}
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(value[i:], envPrefix)
		if idx < 0 {
			b.WriteString(value[i:])
			break
		}
		b.WriteString(value[i : i+idx])
		startKey := i + idx + len(envPrefix)

		endKey := strings.IndexByte(value[startKey:], '}')
		if endKey < 0 {
			// unterminated: keep the remainder literally
			b.WriteString(value[i+idx:])
			break
		}
		key := value[startKey : startKey+endKey]
		if !isKey(key) {
			// keep the prefix and rescan what follows it, nested references still expand
			b.WriteString(value[i+idx : startKey])
			i = startKey
			continue
		}
		b.WriteString(lookup(key))
		i = startKey + endKey + 1
	}
	return b.String()
}

func isKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
