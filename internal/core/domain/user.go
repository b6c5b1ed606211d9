package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the stable identity behind a connected wallet. Authentication
// itself happens outside this service; the core only needs the wallet
// address string for ownership checks.
type User struct {
	ID            uuid.UUID
	WalletAddress string
	Username      *string
	CreatedAt     time.Time
}
