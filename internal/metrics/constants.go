package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePlayersRegistered = "players_registered_total"
	MetricNameCropsPlanted      = "crops_planted_total"
	MetricNameCropsHarvested    = "crops_harvested_total"
	MetricNameItemsBought       = "items_bought_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameGoldEarned        = "gold_earned_total"
	MetricNameGoldSpent         = "gold_spent_total"
	MetricNameXPGranted         = "xp_granted_total"
	MetricNameLevelUps          = "level_ups_total"
	MetricNamePlotsUnlocked     = "plots_unlocked_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPlayersRegistered = "Total number of player registrations"
	HelpTextCropsPlanted      = "Total number of crops planted"
	HelpTextCropsHarvested    = "Total number of crops harvested"
	HelpTextItemsBought       = "Total number of items bought from the market"
	HelpTextItemsSold         = "Total number of items sold to the market"
	HelpTextGoldEarned        = "Total gold earned by players"
	HelpTextGoldSpent         = "Total gold spent by players"
	HelpTextXPGranted         = "Total xp granted to players"
	HelpTextLevelUps          = "Total number of level ups"
	HelpTextPlotsUnlocked     = "Total number of plots unlocked through land upgrades"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
	LabelCrop   = "crop"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, ranging from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
