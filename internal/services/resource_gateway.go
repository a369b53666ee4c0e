package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"transaction-analyzer/internal/config"
	"transaction-analyzer/internal/dto"
	apperrors "transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/validation"
)

const (
	OpUploadFile            = "upload_file"
	OpAnalyzeMerchants      = "analyze_merchants"
	OpListTransactions      = "list_transactions"
	OpDeleteTransaction     = "delete_transaction"
	OpDeleteAllTransactions = "delete_all_transactions"
	OpDetectPatterns        = "detect_patterns"
	OpListPatterns          = "list_patterns"
	OpDeleteAllPatterns     = "delete_all_patterns"

	backendServiceName = "analysis_backend"
	userAgent          = "transaction-analyzer-dashboard"
)

// headerTransport stamps every backend request with the dashboard's
// headers and the trace id of the action that issued it.
type headerTransport struct {
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if id := getCorrelationID(req.Context()); id != "" {
		req.Header.Set("X-Trace-ID", id)
	}

	return t.base.RoundTrip(req)
}

// ResourceGateway is the typed client of the analysis backend. Each call is
// a single request; nothing is retried.
type ResourceGateway struct {
	config    *config.BackendConfig
	client    *http.Client
	breaker   CircuitBreakerInterface
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	logger    ActionLoggerInterface
}

// NewResourceGateway builds the backend client. breaker may be nil, in which
// case calls never fail fast.
func NewResourceGateway(
	cfg *config.BackendConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger ActionLoggerInterface,
) ResourceGatewayInterface {
	client := &http.Client{
		Transport: &headerTransport{base: http.DefaultTransport},
		Timeout:   cfg.RequestTimeout,
	}

	return &ResourceGateway{
		config:    cfg,
		client:    client,
		breaker:   breaker,
		validator: validation.GetValidator(),
		metrics:   metrics,
		logger:    logger,
	}
}

func (g *ResourceGateway) buildRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType string,
) (*http.Request, error) {

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		g.config.BaseURL+path,
		body,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

func (g *ResourceGateway) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return resp, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

// send issues one request and returns the body of a 2xx response. Every
// other outcome becomes a *GatewayError.
func (g *ResourceGateway) send(ctx context.Context, op, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := g.buildRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, apperrors.NewGatewayError(apperrors.KindTransport, op, err)
	}

	// Past this point every admitted request records an outcome, or a
	// half-open breaker would hold its trial slot.
	if g.breaker != nil {
		allowed, transition := g.breaker.Allow()
		g.observeBreaker(ctx, transition)
		if !allowed {
			g.metrics.IncrementCounter(MetricGatewayRequest, map[string]string{"operation": op, "status": string(apperrors.KindUnavailable)})
			return nil, apperrors.NewGatewayError(apperrors.KindUnavailable, op, ErrCircuitBreakerOpen)
		}
	}

	start := time.Now()
	resp, respBody, err := g.do(req)
	duration := time.Since(start)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	g.logger.LogGatewayRequest(ctx, op, method, req.URL.String(), statusCode, duration.Milliseconds())
	g.metrics.RecordProcessingTime(GatewayDurationPrefix+op, duration)

	if err != nil {
		kind := classifyTransportError(err)
		g.metrics.IncrementCounter(MetricGatewayRequest, map[string]string{"operation": op, "status": string(kind)})
		g.recordFailure(ctx)
		return nil, apperrors.NewGatewayError(kind, op, err)
	}

	g.metrics.IncrementCounter(MetricGatewayRequest, map[string]string{"operation": op, "status": strconv.Itoa(statusCode)})

	if statusCode < 200 || statusCode >= 300 {
		if statusCode >= http.StatusInternalServerError {
			g.recordFailure(ctx)
		} else {
			g.recordSuccess(ctx)
		}
		return nil, apperrors.NewStatusError(op, statusCode, dto.ParseBackendError(respBody))
	}

	g.recordSuccess(ctx)
	return respBody, nil
}

func classifyTransportError(err error) apperrors.Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.KindTimeout
	}
	return apperrors.KindTransport
}

func (g *ResourceGateway) recordFailure(ctx context.Context) {
	if g.breaker != nil {
		g.observeBreaker(ctx, g.breaker.RecordFailure())
	}
}

func (g *ResourceGateway) recordSuccess(ctx context.Context) {
	if g.breaker != nil {
		g.observeBreaker(ctx, g.breaker.RecordSuccess())
	}
}

func (g *ResourceGateway) observeBreaker(ctx context.Context, t models.CircuitTransition) {
	if !t.Changed() {
		return
	}
	g.logger.LogCircuitBreakerStateChange(ctx, backendServiceName, t.From.String(), t.To.String())
	g.metrics.RecordGauge(MetricCircuitBreakerState, float64(t.To), map[string]string{"service": backendServiceName})
}

func (g *ResourceGateway) UploadFile(ctx context.Context, file dto.UploadFile) (*dto.UploadAck, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, apperrors.NewGatewayError(apperrors.KindTransport, OpUploadFile, fmt.Errorf("create form file: %w", err))
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, apperrors.NewGatewayError(apperrors.KindTransport, OpUploadFile, fmt.Errorf("write form file: %w", err))
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewGatewayError(apperrors.KindTransport, OpUploadFile, fmt.Errorf("close multipart body: %w", err))
	}

	body, err := g.send(ctx, OpUploadFile, http.MethodPost, g.config.Paths.Upload, &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	ack := &dto.UploadAck{}
	if err := dto.DecodeObject(body, ack); err != nil {
		ack = &dto.UploadAck{Message: strings.TrimSpace(string(body))}
	}
	return ack, nil
}

func (g *ResourceGateway) AnalyzeMerchants(ctx context.Context) (*dto.AnalyzeMerchantsResult, error) {
	body, err := g.send(ctx, OpAnalyzeMerchants, http.MethodPost, g.config.Paths.MerchantAnalysis, nil, "")
	if err != nil {
		return nil, err
	}

	items, err := decodeRecords[models.Transaction](g.validator, OpAnalyzeMerchants, body, dto.TransactionListKeys...)
	if err != nil {
		return nil, err
	}
	return &dto.AnalyzeMerchantsResult{NormalizedTransactions: items}, nil
}

func (g *ResourceGateway) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	body, err := g.send(ctx, OpListTransactions, http.MethodGet, g.config.Paths.MerchantAnalysis, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.Transaction](g.validator, OpListTransactions, body, dto.TransactionListKeys...)
}

func (g *ResourceGateway) DeleteTransaction(ctx context.Context, id models.RecordID) (*dto.Ack, error) {
	if id.IsZero() {
		return nil, apperrors.NewGatewayError(apperrors.KindTransport, OpDeleteTransaction, models.ErrEmptyRecordID)
	}

	path := g.config.Paths.TransactionByID + "/" + url.PathEscape(id.String())
	body, err := g.send(ctx, OpDeleteTransaction, http.MethodDelete, path, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeAck(body), nil
}

func (g *ResourceGateway) DeleteAllTransactions(ctx context.Context) (*dto.Ack, error) {
	body, err := g.send(ctx, OpDeleteAllTransactions, http.MethodDelete, g.config.Paths.MerchantAnalysis, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeAck(body), nil
}

func (g *ResourceGateway) DetectPatterns(ctx context.Context) (*dto.DetectPatternsResult, error) {
	body, err := g.send(ctx, OpDetectPatterns, http.MethodPost, g.config.Paths.PatternAnalysis, nil, "")
	if err != nil {
		return nil, err
	}

	items, err := decodeRecords[models.Pattern](g.validator, OpDetectPatterns, body, dto.PatternListKeys...)
	if err != nil {
		return nil, err
	}
	return &dto.DetectPatternsResult{Patterns: items}, nil
}

func (g *ResourceGateway) ListPatterns(ctx context.Context) ([]models.Pattern, error) {
	body, err := g.send(ctx, OpListPatterns, http.MethodGet, g.config.Paths.PatternAnalysis, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.Pattern](g.validator, OpListPatterns, body, dto.PatternListKeys...)
}

func (g *ResourceGateway) DeleteAllPatterns(ctx context.Context) (*dto.Ack, error) {
	body, err := g.send(ctx, OpDeleteAllPatterns, http.MethodDelete, g.config.Paths.PatternAnalysis, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeAck(body), nil
}

// decodeRecords decodes a list payload and rejects rows that fail
// validation or repeat an id.
func decodeRecords[T models.Record](v *validation.Validator, op string, body []byte, keys ...string) ([]T, error) {
	items, err := dto.DecodeList[T](body, keys...)
	if err != nil {
		return nil, apperrors.NewGatewayError(apperrors.KindDecode, op, err)
	}
	if err := validation.Each(v, items); err != nil {
		return nil, apperrors.NewGatewayError(apperrors.KindDecode, op, err)
	}

	seen := make(map[models.RecordID]struct{}, len(items))
	for i, item := range items {
		key := item.RecordKey()
		if _, dup := seen[key]; dup {
			return nil, apperrors.NewGatewayError(apperrors.KindDecode, op, fmt.Errorf("item %d: duplicate id %q", i, key))
		}
		seen[key] = struct{}{}
	}
	return items, nil
}

// decodeAck accepts any 2xx body. Text that is not a JSON object becomes the
// ack message.
func decodeAck(body []byte) *dto.Ack {
	ack := &dto.Ack{}
	if err := dto.DecodeObject(body, ack); err != nil {
		return &dto.Ack{Message: strings.TrimSpace(string(body))}
	}
	return ack
}
