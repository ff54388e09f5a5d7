package locker

import (
	"context"
	"mailtime-service/internal/app/contracts"
	"mailtime-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockService{
			redisRepo: repo,
			Log:       logger,
		}
	})
	return lockerServiceInstance
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	storedValue, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return err
	}
	// The lock may have expired and been re-acquired by someone else;
	// only the holder's value releases it.
	if storedValue != `"`+lockValue+`"` && storedValue != lockValue {
		s.Log.Warn("lockService.Unlock lock value mismatch, not releasing",
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	}
	return s.redisRepo.Delete(ctx, key)
}
