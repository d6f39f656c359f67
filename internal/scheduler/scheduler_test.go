package scheduler

import (
	"context"
	"testing"

	"tg_account_bot/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func init() {
	_ = logger.Initialize("error")
}

type fakeSettingsStore struct {
	open   bool
	writes int
}

func (f *fakeSettingsStore) SetAccountsOpen(_ context.Context, open bool) error {
	f.open = open
	f.writes++
	return nil
}

func TestSchedulerTriggersAreIdempotent(t *testing.T) {
	store := &fakeSettingsStore{}
	s, err := New(Config{Timezone: "Africa/Lagos", OpenHour: 8, CloseHour: 22}, store)
	assert.NoError(t, err)

	s.openIntake()
	assert.True(t, store.open)

	// Firing the same trigger again must leave the flag unchanged.
	s.openIntake()
	assert.True(t, store.open)
	assert.Equal(t, 2, store.writes)

	s.closeIntake()
	s.closeIntake()
	assert.False(t, store.open)
}

func TestSchedulerRejectsBadTimezone(t *testing.T) {
	_, err := New(Config{Timezone: "Not/AZone", OpenHour: 8, CloseHour: 22}, &fakeSettingsStore{})
	assert.Error(t, err)
}

func TestSchedulerRejectsBadHours(t *testing.T) {
	_, err := New(Config{Timezone: "Africa/Lagos", OpenHour: 25, CloseHour: 22}, &fakeSettingsStore{})
	assert.Error(t, err)
}
