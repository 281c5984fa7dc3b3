package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeStore(t *testing.T) {
	s := NewModeStore()

	require.Equal(t, ModeNone, s.Get(1), "новый пользователь без режима")

	s.Set(1, ModeNumericRange)
	require.Equal(t, ModeNumericRange, s.Get(1))
	require.Equal(t, ModeNone, s.Get(2), "режимы пользователей независимы")

	s.Clear(1)
	require.Equal(t, ModeNone, s.Get(1))

	// повторный сброс безопасен
	s.Clear(1)
	require.Equal(t, ModeNone, s.Get(1))
}

func TestModeStoreConcurrentUsers(t *testing.T) {
	s := NewModeStore()
	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Set(id, ModeNumericRange)
			_ = s.Get(id)
			s.Clear(id)
		}(i)
	}
	wg.Wait()
	for i := int64(0); i < 50; i++ {
		require.Equal(t, ModeNone, s.Get(i))
	}
}
