package session

import (
	"fmt"
	"sync"
	"testing"

	"dirbot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetDelete(t *testing.T) {
	store := NewStore()

	assert.False(t, store.Has("whatsapp:+15550001"))

	store.Put(entity.NewRegistrationSession("whatsapp:+15550001"))
	require.True(t, store.Has("whatsapp:+15550001"))

	sess, ok := store.Get("whatsapp:+15550001")
	require.True(t, ok)
	assert.Equal(t, entity.StepName, sess.Step)
	assert.Empty(t, sess.Draft.Name)

	store.Delete("whatsapp:+15550001")
	assert.False(t, store.Has("whatsapp:+15550001"))

	// Deleting an absent key must not panic.
	store.Delete("whatsapp:+15550001")
}

func TestStore_PutReplacesExistingSession(t *testing.T) {
	store := NewStore()

	first := entity.NewRegistrationSession("sender")
	first.Step = entity.StepPhone
	store.Put(first)

	second := entity.NewRegistrationSession("sender")
	store.Put(second)

	sess, ok := store.Get("sender")
	require.True(t, ok)
	assert.Equal(t, entity.StepName, sess.Step)
	assert.Equal(t, 1, store.Len())
}

func TestStore_ConcurrentSenders(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sender := fmt.Sprintf("whatsapp:+1555%04d", i)
			store.Put(entity.NewRegistrationSession(sender))
			_, _ = store.Get(sender)
			if i%2 == 0 {
				store.Delete(sender)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, store.Len())
}
