package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	quotes           metric.Int64Counter
	checkouts        metric.Int64Counter
	discountsApplied metric.Int64Counter
	waitlistSignups  metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "fitnest"
	}
	meter := provider.Meter(name)

	quotes, err := meter.Int64Counter("fitnest_pricing_quotes_total")
	if err != nil {
		return nil, err
	}
	checkouts, err := meter.Int64Counter("fitnest_checkouts_total")
	if err != nil {
		return nil, err
	}
	discountsApplied, err := meter.Int64Counter("fitnest_discounts_applied_total")
	if err != nil {
		return nil, err
	}
	waitlistSignups, err := meter.Int64Counter("fitnest_waitlist_signups_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		quotes:           quotes,
		checkouts:        checkouts,
		discountsApplied: discountsApplied,
		waitlistSignups:  waitlistSignups,
	}, nil
}

// RecordQuote increments quote counts per plan and caller surface.
func (m *Metrics) RecordQuote(ctx context.Context, plan, surface string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("plan", strings.TrimSpace(plan)),
		attribute.String("surface", strings.TrimSpace(surface)),
	)
	m.quotes.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordCheckout increments checkout counts per plan.
func (m *Metrics) RecordCheckout(ctx context.Context, plan string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("plan", strings.TrimSpace(plan)))
	m.checkouts.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordDiscountApplied increments applied-discount counts per rule type.
func (m *Metrics) RecordDiscountApplied(ctx context.Context, discountType string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("discount_type", strings.TrimSpace(discountType)))
	m.discountsApplied.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordWaitlistSignup increments waitlist signup counts per plan.
func (m *Metrics) RecordWaitlistSignup(ctx context.Context, plan string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("plan", strings.TrimSpace(plan)))
	m.waitlistSignups.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"plan":          {},
	"surface":       {},
	"discount_type": {},
	"status_code":   {},
	"endpoint":      {},
	"reason":        {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
