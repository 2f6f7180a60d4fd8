package repository

// Option applies a configuration option to the BoxScoreStore.
type Option func(*BoxScoreStore)

// WithShardCount sets the number of shards the player map is split across.
func WithShardCount(count int) Option {
	return func(s *BoxScoreStore) {
		if count > 0 {
			s.shardCount = count
		}
	}
}
