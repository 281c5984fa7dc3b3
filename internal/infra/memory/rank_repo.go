package memory

import (
	"context"
	"sort"
	"sync"

	"ether-community-telegram-bot/internal/domain"
)

type RankRepo struct {
	mu    sync.Mutex
	users map[int64]domain.UserRecord
}

func NewRankRepo() *RankRepo {
	return &RankRepo{users: make(map[int64]domain.UserRecord)}
}

func (r *RankRepo) Increment(_ context.Context, userID int64, displayName string) (domain.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.users[userID]
	rec.UserID = userID
	rec.DisplayName = displayName
	rec.MessageCount++
	rec.RankLabel = domain.RankOf(rec.MessageCount)
	r.users[userID] = rec
	return rec, nil
}

func (r *RankRepo) Lookup(_ context.Context, userID int64) (domain.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.users[userID]
	if !ok {
		return domain.UserRecord{}, domain.ErrNotFound
	}
	return rec, nil
}

func (r *RankRepo) Top(_ context.Context, n int) ([]domain.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]domain.UserRecord, 0, len(r.users))
	for _, rec := range r.users {
		res = append(res, rec)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].MessageCount != res[j].MessageCount {
			return res[i].MessageCount > res[j].MessageCount
		}
		return res[i].UserID < res[j].UserID
	})
	if len(res) > n {
		res = res[:n]
	}
	return res, nil
}
