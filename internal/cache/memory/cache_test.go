package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/playforge/bangate/internal/cache"
	"github.com/playforge/bangate/internal/dependencies/mocks"
	"github.com/playforge/bangate/internal/model"
)

type CacheSuite struct {
	suite.Suite
	clock *mocks.MockClock
	cache *Cache
	ctx   context.Context
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.cache = New(s.clock)
	s.ctx = context.Background()
}

func (s *CacheSuite) TestLookupMiss() {
	_, ok, err := s.cache.Lookup(s.ctx, "pid=abc")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *CacheSuite) TestStoreAndLookup() {
	s.Require().NoError(s.cache.Store(s.ctx, "pid=abc", model.VerdictPlayer))

	verdict, ok, err := s.cache.Lookup(s.ctx, "pid=abc")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(model.VerdictPlayer, verdict)
}

func (s *CacheSuite) TestVerdictVisibleJustBeforeTTL() {
	s.Require().NoError(s.cache.Store(s.ctx, "pid=abc", model.VerdictSystem))

	s.clock.Advance(cache.VerdictTTL - time.Millisecond)

	_, ok, err := s.cache.Lookup(s.ctx, "pid=abc")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *CacheSuite) TestVerdictExpiresAtTTL() {
	s.Require().NoError(s.cache.Store(s.ctx, "pid=abc", model.VerdictSystem))

	s.clock.Advance(cache.VerdictTTL)

	_, ok, err := s.cache.Lookup(s.ctx, "pid=abc")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *CacheSuite) TestStoreOverwrites() {
	s.Require().NoError(s.cache.Store(s.ctx, "pid=abc", model.VerdictNone))
	s.Require().NoError(s.cache.Store(s.ctx, "pid=abc", model.VerdictSystem))

	verdict, ok, err := s.cache.Lookup(s.ctx, "pid=abc")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(model.VerdictSystem, verdict)
}
