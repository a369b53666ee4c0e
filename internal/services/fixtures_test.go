package services_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/services"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func discardActionLogger() services.ActionLoggerInterface {
	return services.NewActionLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testMetrics() services.MetricsRecorderInterface {
	return services.NewPrometheusMetrics(prometheus.NewRegistry())
}

func makeTransactions(prefix string, n int) []models.Transaction {
	out := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		original := gofakeit.Company() + " " + gofakeit.Numerify("####")
		out = append(out, models.Transaction{
			ID:       models.RecordID(fmt.Sprintf("%s-%d", prefix, i+1)),
			Original: &original,
			Amount:   decimal.NewFromFloat(-gofakeit.Price(1, 200)).Round(2),
			Normalized: models.Normalization{
				Merchant:   gofakeit.Company(),
				Category:   "Shopping",
				Confidence: 0.9,
			},
		})
	}
	return out
}

func makePatterns(prefix string, n int) []models.Pattern {
	out := make([]models.Pattern, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Pattern{
			ID:              models.RecordID(fmt.Sprintf("%s-%d", prefix, i+1)),
			Type:            models.PatternTypeSubscription,
			Merchant:        gofakeit.Company(),
			Amount:          decimal.NewFromFloat(gofakeit.Price(5, 50)).Round(2),
			Frequency:       models.FrequencyMonthly,
			Confidence:      0.8,
			OccurrenceCount: gofakeit.Number(2, 12),
			IsActive:        true,
		})
	}
	return out
}

func ids[T models.Record](items []T) []models.RecordID {
	out := make([]models.RecordID, 0, len(items))
	for _, item := range items {
		out = append(out, item.RecordKey())
	}
	return out
}

// gate blocks a mocked call until the test releases it.
type gate struct {
	started chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{started: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) wait(ctx context.Context) {
	close(g.started)
	<-g.release
}
