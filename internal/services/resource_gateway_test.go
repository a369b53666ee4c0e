package services_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"transaction-analyzer/internal/config"
	"transaction-analyzer/internal/dto"
	apperrors "transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

const (
	transactionsJSON = `[
		{"id": "tx-1", "original": "NETFLIX.COM 123", "amount": "-15.99", "date": "2025-01-05",
		 "normalized": {"merchant": "Netflix", "category": "Entertainment", "sub_category": "Streaming",
		                "confidence": 0.97, "is_subscription": true, "flags": ["subscription"]}},
		{"id": 42, "amount": 1200, "date": "2025-01-06T09:30:00",
		 "normalized": {"merchant": "Employer", "category": "Income", "confidence": 0.8, "flags": []}}
	]`
	patternsJSON = `{"patterns": [
		{"id": "p-1", "type": "subscription", "merchant": "Netflix", "amount": "15.99", "frequency": "monthly",
		 "confidence": 0.9, "next_expected": "2025-02-05T00:00:00", "last_occurrence": "2025-01-05T00:00:00",
		 "occurrence_count": 6, "is_active": true}
	]}`
)

type ResourceGatewayTestSuite struct {
	suite.Suite
	ctx     context.Context
	server  *httptest.Server
	handler http.HandlerFunc
	hits    atomic.Int32
	cfg     *config.BackendConfig
	gateway services.ResourceGatewayInterface
}

func TestResourceGatewaySuite(t *testing.T) {
	suite.Run(t, new(ResourceGatewayTestSuite))
}

func (s *ResourceGatewayTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.hits.Store(0)
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		s.handler(w, r)
	}))
	s.cfg = &config.BackendConfig{
		BaseURL: s.server.URL,
		Paths: config.EndpointPaths{
			Upload:           "/transaction-upload/upload",
			MerchantAnalysis: "/transfer-normalizer/analyze",
			TransactionByID:  "/transfer-normalizer/transactions",
			PatternAnalysis:  "/pattern-analyzer/analyze",
		},
	}
	s.gateway = s.newGateway(nil)
}

func (s *ResourceGatewayTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ResourceGatewayTestSuite) newGateway(breaker services.CircuitBreakerInterface) services.ResourceGatewayInterface {
	logger := services.NewActionLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	return services.NewResourceGateway(s.cfg, breaker, metrics, logger)
}

func (s *ResourceGatewayTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (s *ResourceGatewayTestSuite) requireKind(err error, kind apperrors.Kind) *apperrors.GatewayError {
	s.Require().Error(err)
	gwErr, ok := apperrors.AsGatewayError(err)
	s.Require().True(ok, "expected *GatewayError, got %T: %v", err, err)
	s.Require().Equal(kind, gwErr.Kind, gwErr.Error())
	return gwErr
}

func (s *ResourceGatewayTestSuite) TestListTransactions_BareArray() {
	var method, path string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_, _ = io.WriteString(w, transactionsJSON)
	}

	items, err := s.gateway.ListTransactions(s.ctx)

	s.Require().NoError(err)
	s.Equal(http.MethodGet, method)
	s.Equal("/transfer-normalizer/analyze", path)
	s.Require().Len(items, 2)
	s.Equal(models.RecordID("tx-1"), items[0].ID)
	s.Equal(models.RecordID("42"), items[1].ID)
	s.Equal("2025-01-05", models.FormatDate(items[0].Date))
	s.True(items[0].Normalized.Flags.Has(models.FlagSubscription))
}

func (s *ResourceGatewayTestSuite) TestListTransactions_WrappedObject() {
	s.respond(http.StatusOK, `{"normalized_transactions": `+transactionsJSON+`}`)

	items, err := s.gateway.ListTransactions(s.ctx)

	s.Require().NoError(err)
	s.Len(items, 2)
}

func (s *ResourceGatewayTestSuite) TestListTransactions_NullIsEmpty() {
	s.respond(http.StatusOK, `null`)

	items, err := s.gateway.ListTransactions(s.ctx)

	s.Require().NoError(err)
	s.NotNil(items)
	s.Empty(items)
}

func (s *ResourceGatewayTestSuite) TestListPatterns_Wrapped() {
	s.respond(http.StatusOK, patternsJSON)

	items, err := s.gateway.ListPatterns(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(models.FrequencyMonthly, items[0].Frequency)
	s.Equal(6, items[0].OccurrenceCount)
	s.Equal("2025-02-05", models.FormatDate(items[0].NextExpected))
}

func (s *ResourceGatewayTestSuite) TestNon2xx_IsStatusError() {
	s.respond(http.StatusUnprocessableEntity, `{"detail": "no transactions uploaded"}`)

	_, err := s.gateway.ListPatterns(s.ctx)

	gwErr := s.requireKind(err, apperrors.KindStatus)
	s.Equal(http.StatusUnprocessableEntity, gwErr.StatusCode)
	s.Equal("no transactions uploaded", gwErr.Message)
	s.Equal(services.OpListPatterns, gwErr.Op)
}

func (s *ResourceGatewayTestSuite) TestMalformedBody_IsDecodeError() {
	s.respond(http.StatusOK, `{"transactions": "not a list"}`)

	_, err := s.gateway.ListTransactions(s.ctx)

	s.requireKind(err, apperrors.KindDecode)
}

func (s *ResourceGatewayTestSuite) TestInvalidRecord_IsDecodeError() {
	s.respond(http.StatusOK, `[{"id": "p-1", "confidence": 1.5, "occurrence_count": 1}]`)

	_, err := s.gateway.ListPatterns(s.ctx)

	gwErr := s.requireKind(err, apperrors.KindDecode)
	s.Contains(gwErr.Error(), "item 0")
}

func (s *ResourceGatewayTestSuite) TestDuplicateIDs_IsDecodeError() {
	s.respond(http.StatusOK, `[{"id": "a", "normalized": {"confidence": 0.5}}, {"id": "a", "normalized": {"confidence": 0.5}}]`)

	_, err := s.gateway.ListTransactions(s.ctx)

	gwErr := s.requireKind(err, apperrors.KindDecode)
	s.Contains(gwErr.Error(), "duplicate id")
}

func (s *ResourceGatewayTestSuite) TestTransportFailure() {
	s.server.Close()

	_, err := s.gateway.ListTransactions(s.ctx)

	s.requireKind(err, apperrors.KindTransport)
}

func (s *ResourceGatewayTestSuite) TestTimeout() {
	s.cfg.RequestTimeout = 20 * time.Millisecond
	gateway := s.newGateway(nil)
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}

	_, err := gateway.ListTransactions(s.ctx)

	s.requireKind(err, apperrors.KindTimeout)
}

func (s *ResourceGatewayTestSuite) TestUploadFile_SendsMultipart() {
	var fileName, content string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		fileName, content = header.Filename, string(data)
		_, _ = io.WriteString(w, `{"message": "ok", "filename": "march.csv", "records_processed": 2}`)
	}

	ack, err := s.gateway.UploadFile(s.ctx, dto.UploadFile{Name: "march.csv", Data: []byte("date,amount\n2025-03-01,-4.50\n")})

	s.Require().NoError(err)
	s.Equal("march.csv", fileName)
	s.Equal("date,amount\n2025-03-01,-4.50\n", content)
	s.Equal(2, ack.RecordsProcessed)
}

func (s *ResourceGatewayTestSuite) TestUploadFile_Non2xxFails() {
	s.respond(http.StatusBadRequest, `{"error": "bad header row"}`)

	_, err := s.gateway.UploadFile(s.ctx, dto.UploadFile{Name: "x.csv", Data: []byte("a")})

	gwErr := s.requireKind(err, apperrors.KindStatus)
	s.Equal("bad header row", gwErr.Message)
}

func (s *ResourceGatewayTestSuite) TestDeleteTransaction_EscapesID() {
	var method, rawPath string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		method, rawPath = r.Method, r.URL.EscapedPath()
		_, _ = io.WriteString(w, `deleted`)
	}

	ack, err := s.gateway.DeleteTransaction(s.ctx, "a/b c")

	s.Require().NoError(err)
	s.Equal(http.MethodDelete, method)
	s.Equal("/transfer-normalizer/transactions/a%2Fb%20c", rawPath)
	s.Equal("deleted", ack.Message)
}

func (s *ResourceGatewayTestSuite) TestDeleteAll_UsesCollectionPaths() {
	var paths []string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}

	_, err := s.gateway.DeleteAllTransactions(s.ctx)
	s.Require().NoError(err)
	_, err = s.gateway.DeleteAllPatterns(s.ctx)
	s.Require().NoError(err)

	s.Equal([]string{
		"DELETE /transfer-normalizer/analyze",
		"DELETE /pattern-analyzer/analyze",
	}, paths)
}

func (s *ResourceGatewayTestSuite) TestAnalyzeAndDetect() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/transfer-normalizer/analyze":
			_, _ = io.WriteString(w, `{"normalized_transactions": `+transactionsJSON+`}`)
		case "/pattern-analyzer/analyze":
			_, _ = io.WriteString(w, patternsJSON)
		}
	}

	merchants, err := s.gateway.AnalyzeMerchants(s.ctx)
	s.Require().NoError(err)
	s.Len(merchants.NormalizedTransactions, 2)

	patterns, err := s.gateway.DetectPatterns(s.ctx)
	s.Require().NoError(err)
	s.Len(patterns.Patterns, 1)
}

func (s *ResourceGatewayTestSuite) TestPropagatesTraceID() {
	var traceID, accept string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		traceID, accept = r.Header.Get("X-Trace-ID"), r.Header.Get("Accept")
		_, _ = io.WriteString(w, `[]`)
	}

	_, err := s.gateway.ListPatterns(services.WithCorrelationID(s.ctx, "trace-77"))

	s.Require().NoError(err)
	s.Equal("trace-77", traceID)
	s.Equal("application/json", accept)
}

func (s *ResourceGatewayTestSuite) TestCircuitBreaker_FailsFastWhenOpen() {
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{Threshold: 1, Cooldown: time.Hour, TrialSuccesses: 1})
	gateway := s.newGateway(breaker)
	s.respond(http.StatusBadGateway, `{"detail": "upstream down"}`)

	_, err := gateway.ListTransactions(s.ctx)
	s.requireKind(err, apperrors.KindStatus)
	s.Equal(models.CircuitOpen, breaker.State())

	_, err = gateway.ListTransactions(s.ctx)
	s.requireKind(err, apperrors.KindUnavailable)
	s.ErrorIs(err, services.ErrCircuitBreakerOpen)
	s.Equal(int32(1), s.hits.Load())
}

func (s *ResourceGatewayTestSuite) TestCircuitBreaker_TrialSuccessCloses() {
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{Threshold: 1, Cooldown: 0, TrialSuccesses: 1})
	gateway := s.newGateway(breaker)

	s.respond(http.StatusServiceUnavailable, `{"detail": "warming up"}`)
	_, err := gateway.ListPatterns(s.ctx)
	s.requireKind(err, apperrors.KindStatus)
	s.Equal(models.CircuitOpen, breaker.State())

	s.respond(http.StatusOK, `[]`)
	_, err = gateway.ListPatterns(s.ctx)

	s.Require().NoError(err)
	s.Equal(models.CircuitClosed, breaker.State())
	s.Equal(int32(2), s.hits.Load())
}

func (s *ResourceGatewayTestSuite) TestCircuitBreaker_ClientErrorsDoNotTrip() {
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{Threshold: 1, Cooldown: time.Hour, TrialSuccesses: 1})
	gateway := s.newGateway(breaker)
	s.respond(http.StatusNotFound, `{"detail": "Transaction not found"}`)

	_, err := gateway.DeleteTransaction(s.ctx, "gone")

	s.requireKind(err, apperrors.KindStatus)
	s.Equal(models.CircuitClosed, breaker.State())
}
