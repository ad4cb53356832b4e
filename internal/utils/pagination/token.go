package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const idTokenPrefix = "id:"

// EncodeIDToken creates an opaque page token pointing after lastID.
func EncodeIDToken(lastID int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(idTokenPrefix + strconv.FormatInt(lastID, 10)))
}

// DecodeIDToken parses a token produced by EncodeIDToken. An empty token means the first page.
func DecodeIDToken(token string) (int64, error) {
	if token == "" {
		return 0, nil
	}
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	if !strings.HasPrefix(tokenStr, idTokenPrefix) {
		return 0, fmt.Errorf("invalid pagination token format (prefix)")
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(tokenStr, idTokenPrefix), 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid pagination token format (id parse)")
	}
	return id, nil
}

// NextIDToken returns the token for the page after one ending at lastID,
// or "" when the page held fewer than pageSize items.
func NextIDToken(itemCount, pageSize int, lastID int64) string {
	if pageSize <= 0 || itemCount < pageSize {
		return ""
	}
	return EncodeIDToken(lastID)
}
