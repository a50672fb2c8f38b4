package project

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/signadot/pbx/debug"
)

// GUIDLen is the number of hexadecimal digits in an object identifier.
const GUIDLen = 24

// randomGUID hashes a random seed and keeps the first GUIDLen upper case
// hex digits.
func randomGUID() string {
	seed := uuid.New()
	sum := sha256.Sum224(seed[:])
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:GUIDLen]
}

// NewGUID returns an identifier not used by any object of d.
func (d *Document) NewGUID() string {
	for {
		g := d.cache.newGUID()
		if g != "" && !d.Has(g) {
			return g
		}
		if debug.GUID() {
			debug.Logf("guid collision %q, regenerating\n", g)
		}
		d.log().Warn("regenerating colliding GUID", "guid", g)
	}
}
