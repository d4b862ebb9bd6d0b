package referral

import (
	"strings"

	"github.com/google/uuid"
)

const codePrefix = "BDS"

// NewCode returns a referral code like "BDS7F3A91C2". Uniqueness is backed
// by the users.referral_code constraint; the uuid source makes collisions
// practically impossible.
func NewCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return codePrefix + id[:8]
}
