package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== IDEMPOTENCY KEY ====================

// GenerateIdempotencyKey creates the uid used to de-duplicate
// refund/re-issue management records on retry.
func GenerateIdempotencyKey() string {
	return uuid.New().String()
}

// ==================== TRAVELLER LIST KEY ====================

// GenerateTravellerID creates the time-based identifier used only as a
// list key for travellers; it is not a durable identity.
func GenerateTravellerID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
