package ledger

import (
	"strconv"
	"strings"
)

type dialect struct {
	numbered bool // $1, $2 ... instead of ?
}

var dialects = map[string]dialect{
	"pgx":      {numbered: true},
	"postgres": {numbered: true},
	"sqlite3":  {numbered: false},
}

// rebind rewrites ? placeholders for drivers that want numbered ones.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
