package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/playforge/bangate/internal/cache"
	"github.com/playforge/bangate/internal/model"
)

type CacheSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	cache *Cache
	ctx   context.Context
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.cache = NewWithClient(client)
	s.ctx = context.Background()
}

func (s *CacheSuite) TearDownTest() {
	if s.cache != nil {
		_ = s.cache.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *CacheSuite) TestLookupMiss() {
	_, ok, err := s.cache.Lookup(s.ctx, "pid=abc-123")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *CacheSuite) TestStoreAndLookup() {
	err := s.cache.Store(s.ctx, "pid=abc-123", model.VerdictSystem)
	s.Require().NoError(err)

	verdict, ok, err := s.cache.Lookup(s.ctx, "pid=abc-123")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(model.VerdictSystem, verdict)
}

func (s *CacheSuite) TestNoneVerdictIsCachedToo() {
	s.Require().NoError(s.cache.Store(s.ctx, "pid=abc-123", model.VerdictNone))

	verdict, ok, err := s.cache.Lookup(s.ctx, "pid=abc-123")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(model.VerdictNone, verdict)
}

func (s *CacheSuite) TestVerdictExpiresAfterTTL() {
	s.Require().NoError(s.cache.Store(s.ctx, "pid=abc-123", model.VerdictPlayer))

	ttl := s.mini.TTL("bangate:verdict:pid=abc-123")
	s.Equal(cache.VerdictTTL, ttl)

	s.mini.FastForward(cache.VerdictTTL)

	_, ok, err := s.cache.Lookup(s.ctx, "pid=abc-123")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *CacheSuite) TestCorruptValueTreatedAsMiss() {
	s.mini.Set("bangate:verdict:pid=abc-123", "garbage")

	_, ok, err := s.cache.Lookup(s.ctx, "pid=abc-123")
	s.Require().NoError(err)
	s.False(ok)
}
