package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/repositories"
	"transaction-analyzer/internal/repositories/repository_mocks"
	"transaction-analyzer/internal/services"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ActionJournalTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockActionLogRepositoryInterface
	journal services.ActionJournalInterface
}

func TestActionJournalSuite(t *testing.T) {
	suite.Run(t, new(ActionJournalTestSuite))
}

func (s *ActionJournalTestSuite) SetupTest() {
	s.ctx = services.WithCorrelationID(context.Background(), "trace-abc")
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockActionLogRepositoryInterface(s.ctrl)
	s.journal = services.NewActionJournal(s.repo)
}

func (s *ActionJournalTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ActionJournalTestSuite) TestRecord_FillsTraceIDFromContext() {
	entry := &models.ActionLog{
		Action:     models.ActionDeleteTransaction,
		Resource:   models.ResourceTransactions,
		ResourceID: gofakeit.UUID(),
		Outcome:    models.OutcomeStarted,
	}

	s.repo.EXPECT().Create(gomock.Any(), entry).Return(nil)

	s.Require().NoError(s.journal.Record(s.ctx, entry))
	s.Equal("trace-abc", entry.TraceID)
}

func (s *ActionJournalTestSuite) TestRecord_KeepsExplicitTraceID() {
	entry := &models.ActionLog{Action: models.ActionUpload, Resource: models.ResourceUpload, Outcome: models.OutcomeSucceeded, TraceID: "explicit"}

	s.repo.EXPECT().Create(gomock.Any(), entry).Return(nil)

	s.Require().NoError(s.journal.Record(s.ctx, entry))
	s.Equal("explicit", entry.TraceID)
}

func (s *ActionJournalTestSuite) TestRecord_RejectsInvalidEntries() {
	s.ErrorIs(s.journal.Record(s.ctx, nil), services.ErrInvalidActionLog)
	s.Error(s.journal.Record(s.ctx, &models.ActionLog{Action: "transfer", Outcome: models.OutcomeStarted}))
	s.Error(s.journal.Record(s.ctx, &models.ActionLog{Action: models.ActionUpload, Outcome: "maybe"}))
}

func (s *ActionJournalTestSuite) TestRecord_WrapsRepositoryError() {
	entry := &models.ActionLog{Action: models.ActionFetch, Resource: models.ResourceTransactions, Outcome: models.OutcomeStarted}
	dbErr := errors.New("disk full")

	s.repo.EXPECT().Create(gomock.Any(), entry).Return(dbErr)

	err := s.journal.Record(s.ctx, entry)
	s.ErrorIs(err, dbErr)
	s.Contains(err.Error(), "failed to record action")
}

func (s *ActionJournalTestSuite) TestRecent_PassesFilterThrough() {
	filter := repositories.ActionLogFilter{Action: models.ActionDeleteAll, Limit: 10}
	logs := []models.ActionLog{{Action: models.ActionDeleteAll, Outcome: models.OutcomeSucceeded}}

	s.repo.EXPECT().List(gomock.Any(), filter).Return(logs, int64(1), nil)

	got, total, err := s.journal.Recent(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal(logs, got)
}

func (s *ActionJournalTestSuite) TestRecent_RejectsUnknownAction() {
	_, _, err := s.journal.Recent(s.ctx, repositories.ActionLogFilter{Action: "login"})
	s.Error(err)
}

func (s *ActionJournalTestSuite) TestTrace() {
	logs := []models.ActionLog{{TraceID: "t1", Outcome: models.OutcomeStarted}, {TraceID: "t1", Outcome: models.OutcomeFailed}}
	s.repo.EXPECT().GetByTraceID(gomock.Any(), "t1").Return(logs, nil)

	got, err := s.journal.Trace(s.ctx, "t1")
	s.Require().NoError(err)
	s.Len(got, 2)

	empty, err := s.journal.Trace(s.ctx, "")
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *ActionJournalTestSuite) TestPrune() {
	s.repo.EXPECT().DeleteOlderThan(gomock.Any(), 48*time.Hour).Return(int64(4), nil)

	deleted, err := s.journal.Prune(s.ctx, 48*time.Hour)
	s.Require().NoError(err)
	s.Equal(int64(4), deleted)
}

func (s *ActionJournalTestSuite) TestPrune_ZeroRetentionKeepsEverything() {
	deleted, err := s.journal.Prune(s.ctx, 0)
	s.Require().NoError(err)
	s.Zero(deleted)
}
