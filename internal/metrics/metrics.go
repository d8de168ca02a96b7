package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Loot Metrics
var (
	LootGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootGenerationsTotal,
			Help: HelpTextLootGenerationsTotal,
		},
		[]string{LabelOutcome},
	)

	LootItemsSelected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLootItemsSelected,
			Help: HelpTextLootItemsSelected,
		},
	)

	LootValueSelected = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameLootValueSelected,
			Help:    HelpTextLootValueSelected,
			Buckets: LootValueBuckets,
		},
	)

	CatalogQueryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogQueryFailures,
			Help: HelpTextCatalogQueryFailures,
		},
		[]string{LabelSource},
	)

	ResolverCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolverCacheLookups,
			Help: HelpTextResolverCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Discord Metrics
var (
	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand},
	)
)
