package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Loot metric names
const (
	MetricNameLootGenerationsTotal = "loot_generations_total"
	MetricNameLootItemsSelected    = "loot_items_selected_total"
	MetricNameLootValueSelected    = "loot_value_selected_gp"
	MetricNameCatalogQueryFailures = "catalog_query_failures_total"
	MetricNameResolverCacheLookups = "item_resolver_cache_lookups_total"
	MetricNameDiscordCommands      = "discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Loot metric help text
const (
	HelpTextLootGenerationsTotal = "Total number of loot generation runs by outcome"
	HelpTextLootItemsSelected    = "Total number of catalog items placed into loot containers"
	HelpTextLootValueSelected    = "Gold value of the items selected per loot run"
	HelpTextCatalogQueryFailures = "Total number of compendium index failures by source"
	HelpTextResolverCacheLookups = "Item resolver cache lookups by result"
	HelpTextDiscordCommands      = "Total number of Discord commands handled by name"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelSource  = "source"
	LabelResult  = "result"
	LabelCommand = "command"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets covers fast lookups up to slow catalog scans.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// LootValueBuckets are gold amounts from a few coins to high-level hoards.
var LootValueBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}
