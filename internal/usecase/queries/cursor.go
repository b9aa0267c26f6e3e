package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"lending-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	cursorPrefix = "k1"
)

// Cursor is the opaque paging token handed to clients.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeKeyset stores created_at at microsecond precision, which is what
// Postgres keeps, so a decoded keyset compares equal to the stored row.
func EncodeKeyset(k Keyset) string {
	raw := cursorPrefix + "." + strconv.FormatInt(k.CreatedAt.UnixMicro(), 36) + "." + k.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeKeyset(token string) (Keyset, error) {
	if token == "" {
		return Keyset{}, errs.New("empty cursor")
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Keyset{}, errs.Wrap(err, "cursor is not base64url")
	}

	parts := strings.Split(string(raw), ".")
	if len(parts) != 3 || parts[0] != cursorPrefix {
		return Keyset{}, errs.New("unrecognised cursor layout")
	}
	micros, err := strconv.ParseInt(parts[1], 36, 64)
	if err != nil {
		return Keyset{}, errs.Wrap(err, "cursor timestamp")
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return Keyset{}, errs.Wrap(err, "cursor id")
	}
	return Keyset{CreatedAt: time.UnixMicro(micros).UTC(), ID: id}, nil
}

// ValidateLimit clamps a requested page size into [1, MaxListLimit];
// anything non-positive means the default.
func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
