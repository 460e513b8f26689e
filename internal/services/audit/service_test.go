package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/playforge/bangate/internal/dependencies/mocks"
	"github.com/playforge/bangate/internal/model"
	"github.com/playforge/bangate/internal/storage/memory"
	"github.com/playforge/bangate/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func strPtr(v string) *string { return &v }

func (s *ServiceSuite) TestRecordPersistsRawIdentity() {
	identity := model.IdentityTuple{
		PlayerID:           "ABC-123",
		PlayerName:         "Steve",
		SystemHardwareHash: strPtr("H2"),
	}

	err := s.service.Record(s.ctx, identity, model.VerdictSystem)
	s.Require().NoError(err)

	records, err := s.storage.ListAudit(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1)

	// Stored as submitted, not case-folded
	s.Equal("ABC-123", records[0].Identity.PlayerID)
	s.Equal("Steve", records[0].Identity.PlayerName)
	s.Equal("H2", *records[0].Identity.SystemHardwareHash)
}

func (s *ServiceSuite) TestRecordUsesServerTimestamp() {
	err := s.service.Record(s.ctx, model.IdentityTuple{PlayerID: "abc", PlayerName: "steve"}, model.VerdictNone)
	s.Require().NoError(err)

	records, err := s.storage.ListAudit(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.True(records[0].Timestamp.Equal(s.clock.Now().UTC()))
}

func (s *ServiceSuite) TestListNewestFirst() {
	for _, name := range []string{"a", "b"} {
		s.Require().NoError(s.service.Record(s.ctx, model.IdentityTuple{PlayerID: "p", PlayerName: name}, model.VerdictNone))
	}

	records, err := s.service.List(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("b", records[0].Identity.PlayerName)
}
