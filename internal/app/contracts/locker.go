package contracts

import (
	"context"
	"time"
)

// LockerService guards a resource with an expiring lock. Unlock only
// releases when lockValue matches the value returned by TryLock.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
