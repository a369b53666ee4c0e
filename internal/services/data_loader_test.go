package services_test

import (
	"context"
	"errors"
	"testing"

	apperrors "transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/services"
	"transaction-analyzer/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type DataLoaderTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	gateway *service_mocks.MockResourceGatewayInterface
	loader  services.DataLoaderInterface
}

func TestDataLoaderSuite(t *testing.T) {
	suite.Run(t, new(DataLoaderTestSuite))
}

func (s *DataLoaderTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.gateway = service_mocks.NewMockResourceGatewayInterface(s.ctrl)
	s.loader = services.NewDataLoader(s.gateway, discardActionLogger(), testMetrics())
}

func (s *DataLoaderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// activateAsync starts an activation whose gateway call blocks on g.
func (s *DataLoaderTestSuite) activateAsync(tab models.Tab) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.loader.Activate(s.ctx, tab) }()
	return done
}

func (s *DataLoaderTestSuite) TestActivate_LoadsTransactions() {
	txs := makeTransactions("tx", 3)
	s.gateway.EXPECT().ListTransactions(gomock.Any()).Return(txs, nil)

	s.Require().NoError(s.loader.Activate(s.ctx, models.TabMerchant))

	snap := s.loader.Snapshot()
	s.Equal(models.TabMerchant, snap.ActiveTab)
	s.Equal(ids(txs), ids(snap.Transactions))
	s.Empty(snap.Patterns)
	s.False(snap.Loading)
	s.Equal(3, s.loader.Count(models.TabMerchant))
}

func (s *DataLoaderTestSuite) TestActivate_LoadingOnlyDuringFirstFetch() {
	first := newGate()
	s.gateway.EXPECT().ListTransactions(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Transaction, error) {
		first.wait(ctx)
		return makeTransactions("tx", 1), nil
	})

	done := s.activateAsync(models.TabMerchant)
	<-first.started
	s.True(s.loader.Loading())
	close(first.release)
	s.Require().NoError(<-done)
	s.False(s.loader.Loading())

	second := newGate()
	s.gateway.EXPECT().ListTransactions(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Transaction, error) {
		second.wait(ctx)
		return makeTransactions("tx", 2), nil
	})

	refreshed := make(chan error, 1)
	go func() { refreshed <- s.loader.Refresh(s.ctx, models.TabMerchant) }()
	<-second.started
	s.False(s.loader.Loading())
	close(second.release)
	s.Require().NoError(<-refreshed)
	s.Equal(2, s.loader.Count(models.TabMerchant))
}

func (s *DataLoaderTestSuite) TestActivate_FailureKeepsPreviousCollection() {
	txs := makeTransactions("tx", 2)
	s.gateway.EXPECT().ListTransactions(gomock.Any()).Return(txs, nil)
	s.Require().NoError(s.loader.Activate(s.ctx, models.TabMerchant))

	backendErr := apperrors.NewStatusError(services.OpListTransactions, 500, "")
	s.gateway.EXPECT().ListTransactions(gomock.Any()).Return(nil, backendErr)

	err := s.loader.Refresh(s.ctx, models.TabMerchant)

	s.ErrorIs(err, backendErr)
	s.Equal(ids(txs), ids(s.loader.Snapshot().Transactions))
}

func (s *DataLoaderTestSuite) TestStaleGuard_TabSwitchDiscardsMerchantResponse() {
	merchant := newGate()
	s.gateway.EXPECT().ListTransactions(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Transaction, error) {
		merchant.wait(ctx)
		return makeTransactions("late", 4), nil
	})
	patterns := makePatterns("p", 2)
	s.gateway.EXPECT().ListPatterns(gomock.Any()).Return(patterns, nil)

	done := s.activateAsync(models.TabMerchant)
	<-merchant.started

	s.Require().NoError(s.loader.Activate(s.ctx, models.TabPattern))
	close(merchant.release)

	s.ErrorIs(<-done, services.ErrStaleResponse)
	snap := s.loader.Snapshot()
	s.Equal(models.TabPattern, snap.ActiveTab)
	s.Equal(ids(patterns), ids(snap.Patterns))
	s.Empty(snap.Transactions)
}

func (s *DataLoaderTestSuite) TestStaleGuard_SwitchAwayAndBackStillDiscards() {
	merchant := newGate()
	s.gateway.EXPECT().ListTransactions(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Transaction, error) {
		merchant.wait(ctx)
		return makeTransactions("old", 1), nil
	})
	s.gateway.EXPECT().ListPatterns(gomock.Any()).Return(makePatterns("p", 1), nil)
	fresh := makeTransactions("new", 2)
	s.gateway.EXPECT().ListTransactions(gomock.Any()).Return(fresh, nil)

	done := s.activateAsync(models.TabMerchant)
	<-merchant.started
	s.Require().NoError(s.loader.Activate(s.ctx, models.TabPattern))
	s.Require().NoError(s.loader.Activate(s.ctx, models.TabMerchant))
	close(merchant.release)

	s.ErrorIs(<-done, services.ErrStaleResponse)
	s.Equal(ids(fresh), ids(s.loader.Snapshot().Transactions))
}

func (s *DataLoaderTestSuite) TestStaleGuard_ReplaceSupersedesFetch() {
	fetch := newGate()
	s.gateway.EXPECT().ListTransactions(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Transaction, error) {
		fetch.wait(ctx)
		return makeTransactions("fetched", 3), nil
	})

	done := s.activateAsync(models.TabMerchant)
	<-fetch.started
	analyzed := makeTransactions("analyzed", 2)
	s.loader.ReplaceTransactions(analyzed)
	close(fetch.release)

	s.ErrorIs(<-done, services.ErrStaleResponse)
	s.Equal(ids(analyzed), ids(s.loader.Snapshot().Transactions))
	s.False(s.loader.Loading())
}

func (s *DataLoaderTestSuite) TestClose_DiscardsLateResponse() {
	fetch := newGate()
	s.gateway.EXPECT().ListTransactions(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Transaction, error) {
		fetch.wait(ctx)
		return makeTransactions("tx", 2), nil
	})

	done := s.activateAsync(models.TabMerchant)
	<-fetch.started
	s.loader.Close()
	close(fetch.release)

	s.ErrorIs(<-done, services.ErrStaleResponse)
	s.Empty(s.loader.Snapshot().Transactions)
	s.ErrorIs(s.loader.Activate(s.ctx, models.TabPattern), apperrors.ErrDashboardClosed)
}

func (s *DataLoaderTestSuite) TestRemoveDuringFetch_DoesNotResurrect() {
	s.gateway.EXPECT().ListTransactions(gomock.Any()).Return(makeTransactions("tx", 3), nil)
	s.Require().NoError(s.loader.Activate(s.ctx, models.TabMerchant))

	fetch := newGate()
	s.gateway.EXPECT().ListTransactions(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Transaction, error) {
		fetch.wait(ctx)
		return makeTransactions("tx", 3), nil
	})

	refreshed := make(chan error, 1)
	go func() { refreshed <- s.loader.Refresh(s.ctx, models.TabMerchant) }()
	<-fetch.started
	s.True(s.loader.RemoveTransaction("tx-2"))
	close(fetch.release)

	s.Require().NoError(<-refreshed)
	s.Equal([]models.RecordID{"tx-1", "tx-3"}, ids(s.loader.Snapshot().Transactions))
}

func (s *DataLoaderTestSuite) TestRemoveTransaction() {
	s.gateway.EXPECT().ListTransactions(gomock.Any()).Return(makeTransactions("tx", 2), nil)
	s.Require().NoError(s.loader.Activate(s.ctx, models.TabMerchant))

	s.True(s.loader.RemoveTransaction("tx-1"))
	s.False(s.loader.RemoveTransaction("tx-1"))
	s.Equal([]models.RecordID{"tx-2"}, ids(s.loader.Snapshot().Transactions))
}

func (s *DataLoaderTestSuite) TestRefresh_IgnoresInactiveTab() {
	s.gateway.EXPECT().ListPatterns(gomock.Any()).Return(makePatterns("p", 1), nil)
	s.Require().NoError(s.loader.Activate(s.ctx, models.TabPattern))

	s.NoError(s.loader.Refresh(s.ctx, models.TabMerchant))
}

func (s *DataLoaderTestSuite) TestActivate_SameTabTwiceFetchesOnce() {
	s.gateway.EXPECT().ListPatterns(gomock.Any()).Return(makePatterns("p", 1), nil).Times(1)

	s.Require().NoError(s.loader.Activate(s.ctx, models.TabPattern))
	s.Require().NoError(s.loader.Activate(s.ctx, models.TabPattern))
}

func (s *DataLoaderTestSuite) TestActivate_SameTabRefetchesAfterFailure() {
	s.gateway.EXPECT().ListTransactions(gomock.Any()).Return(nil, apperrors.NewStatusError(services.OpListTransactions, 500, ""))
	s.Require().Error(s.loader.Activate(s.ctx, models.TabMerchant))

	txs := makeTransactions("tx", 2)
	s.gateway.EXPECT().ListTransactions(gomock.Any()).Return(txs, nil).Times(1)
	s.Require().NoError(s.loader.Activate(s.ctx, models.TabMerchant))
	s.Require().NoError(s.loader.Activate(s.ctx, models.TabMerchant))

	s.Equal(ids(txs), ids(s.loader.Snapshot().Transactions))
}

func (s *DataLoaderTestSuite) TestSelect_MovesFocusWithoutFetching() {
	s.Require().NoError(s.loader.Select(models.TabPattern))

	s.Equal(models.TabPattern, s.loader.ActiveTab())
	s.ErrorIs(s.loader.Load(s.ctx, models.TabMerchant), services.ErrStaleResponse)
}

func (s *DataLoaderTestSuite) TestLoad_SkipsWhileFetchInFlight() {
	fetch := newGate()
	s.gateway.EXPECT().ListPatterns(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Pattern, error) {
		fetch.wait(ctx)
		return makePatterns("p", 1), nil
	}).Times(1)

	done := s.activateAsync(models.TabPattern)
	<-fetch.started
	s.NoError(s.loader.Load(s.ctx, models.TabPattern))
	close(fetch.release)

	s.Require().NoError(<-done)
	s.Equal(1, s.loader.Count(models.TabPattern))
}

func (s *DataLoaderTestSuite) TestActivate_InvalidTab() {
	err := s.loader.Activate(s.ctx, models.Tab("ledger"))

	s.True(errors.Is(err, apperrors.ErrInvalidTab))
}

func (s *DataLoaderTestSuite) TestClear_EmptiesOnlyThatTab() {
	s.loader.ReplaceTransactions(makeTransactions("tx", 2))
	s.loader.ReplacePatterns(makePatterns("p", 3))

	s.loader.Clear(models.TabPattern)

	s.Equal(2, s.loader.Count(models.TabMerchant))
	s.Equal(0, s.loader.Count(models.TabPattern))
}

func (s *DataLoaderTestSuite) TestSnapshot_IsACopy() {
	s.loader.ReplaceTransactions(makeTransactions("tx", 1))

	snap := s.loader.Snapshot()
	snap.Transactions[0].ID = "mutated"

	s.Equal(models.RecordID("tx-1"), s.loader.Snapshot().Transactions[0].ID)
}
