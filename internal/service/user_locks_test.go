package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Raikadier/Captus-sub001/pkg/entity"
)

func TestUserLocksSerializeSameUser(t *testing.T) {
	locks := newUserLocks()
	uid := uuid.New()
	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for j := 0; j < 10; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock(uid)
			defer unlock()
			n := inside.Add(1)
			if n > maxInside.Load() {
				maxInside.Store(n)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside.Load())
	assert.Equal(t, 0, locks.size())
}

func TestUserLocksIndependentUsers(t *testing.T) {
	locks := newUserLocks()
	unlockA := locks.lock(uuid.New())
	done := make(chan struct{})
	go func() {
		unlockB := locks.lock(uuid.New())
		unlockB()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock of another user blocked")
	}
	unlockA()
	assert.Equal(t, 0, locks.size())
}

func TestAdvanceStreakResetKeepsBest(t *testing.T) {
	today := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	last := today.AddDate(0, 0, -5)
	stats := &entity.Statistics{Streak: 7, BestStreak: 7, LastStreakDate: &last, DailyGoal: 2}
	changed := advanceStreak(stats, 0, today)
	assert.True(t, changed)
	assert.Equal(t, 0, stats.Streak)
	assert.Equal(t, 7, stats.BestStreak)
	assert.Nil(t, stats.LastStreakDate)

	changed = advanceStreak(stats, 1, today)
	assert.False(t, changed)
}
