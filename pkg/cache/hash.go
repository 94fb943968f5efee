package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// cellKey builds the store key of a rendered cell. Column ids are free-form
// text from the workspace file, so they are hashed to keep keys short and
// free of the ':' separator.
func cellKey(column string, row, col int, width float64) string {
	sum := sha256.Sum256([]byte(column))

	var b strings.Builder
	b.WriteString("cell:")
	b.WriteString(hex.EncodeToString(sum[:8]))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(row))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(col))
	b.WriteByte(':')
	b.WriteString(strconv.FormatFloat(width, 'f', -1, 64))
	return b.String()
}
