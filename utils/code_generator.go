// file: utils/code_generator.go
package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateVerificationCode returns a random code of the given length, used for
// email verification and password-reset mails.
func GenerateVerificationCode(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(charset[seededRand.Intn(len(charset))])
	}
	return sb.String()
}

// GeneratePaymentReference returns a unique human-quotable payment reference.
func GeneratePaymentReference() string {
	return fmt.Sprintf("PAY-%s", strings.ToUpper(strings.Replace(uuid.New().String(), "-", "", -1)[:16]))
}

// GenerateAuditID returns a plain UUID for consent audit trails.
func GenerateAuditID() string {
	return uuid.New().String()
}
