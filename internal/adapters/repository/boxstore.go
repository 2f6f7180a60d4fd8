package repository

import (
	"context"
	"hash/fnv"
	"sort"
	"sync"

	"github.com/courtside/fastbreak/pkg/metrics"
)

const defaultShardCount = 8

// BoxScoreStore implements Store with a sharded in-memory player map.
// Writes lock only the owning shard, so concurrent workers updating
// different players rarely contend. Ranked reads collect all shards and
// sort; session rosters are small, so sort-on-read is the honest structure.
type BoxScoreStore struct {
	shardCount int
	shards     []*shard
}

type shard struct {
	mu      sync.RWMutex
	players map[string]*Entry
}

// NewBoxScoreStore creates an empty store with configuration options.
func NewBoxScoreStore(opts ...Option) *BoxScoreStore {
	s := &BoxScoreStore{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(s)
	}
	s.shards = make([]*shard, s.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{players: make(map[string]*Entry)}
	}
	return s
}

func (s *BoxScoreStore) shardFor(player string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(player))
	return s.shards[h.Sum32()%uint32(s.shardCount)]
}

// RecordShot folds a resolved shot into the player's line.
func (s *BoxScoreStore) RecordShot(_ context.Context, player string, p float64, made bool, value int) error {
	sh := s.shardFor(player)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e := sh.players[player]
	if e == nil {
		e = &Entry{Player: player}
		sh.players[player] = e
	}
	e.Shots++
	e.ExpectedPoints += p * float64(value)
	if made {
		e.Makes++
		e.Points += value
	}
	return nil
}

// RecordAssist credits the passer with an assist.
func (s *BoxScoreStore) RecordAssist(_ context.Context, player string) error {
	sh := s.shardFor(player)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e := sh.players[player]
	if e == nil {
		e = &Entry{Player: player}
		sh.players[player] = e
	}
	e.Assists++
	return nil
}

// Player returns the aggregates and rank for one player.
func (s *BoxScoreStore) Player(ctx context.Context, player string) (Entry, error) {
	ranked, err := s.TopN(ctx, s.Count(ctx))
	if err != nil {
		return Entry{}, err
	}
	for _, e := range ranked {
		if e.Player == player {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

// TopN returns up to n entries ordered by points desc, player asc on ties.
func (s *BoxScoreStore) TopN(_ context.Context, n int) ([]Entry, error) {
	if n < 0 {
		return nil, ErrInvalidLimit
	}

	var all []Entry
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, e := range sh.players {
			all = append(all, *e)
		}
		sh.mu.RUnlock()
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Points != all[j].Points {
			return all[i].Points > all[j].Points
		}
		return all[i].Player < all[j].Player
	})
	for i := range all {
		all[i].Rank = i + 1
	}
	if n < len(all) {
		all = all[:n]
	}
	return all, nil
}

// Count returns the number of players tracked.
func (s *BoxScoreStore) Count(_ context.Context) int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.players)
		sh.mu.RUnlock()
	}
	metrics.UpdateBoxScorePlayers(total)
	return total
}
