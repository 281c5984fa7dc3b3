package usecase

import "sync"

// ModeStore хранит режим диалога на пользователя. Не переживает рестарт процесса.
type ModeStore struct {
	mu    sync.RWMutex
	modes map[int64]Mode
}

func NewModeStore() *ModeStore {
	return &ModeStore{modes: make(map[int64]Mode)}
}

func (s *ModeStore) Get(userID int64) Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modes[userID]
}

func (s *ModeStore) Set(userID int64, m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[userID] = m
}

func (s *ModeStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.modes, userID)
}
