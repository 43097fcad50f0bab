// Package metrics holds the Prometheus collectors of the service. Collectors
// register on the default registry at init and are served on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Capture outcomes.
const (
	OutcomeFaces   = "faces"
	OutcomeNoFace  = "no_face"
	OutcomeFailure = "failure"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodverse_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"route"},
	)

	// Tabs (one WebSocket per browser tab)
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodverse_tabs_connected",
			Help: "Current number of connected browser tabs",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodverse_ws_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSMessagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_ws_messages_received_total",
			Help: "Total number of WebSocket commands received",
		},
		[]string{"type"},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_ws_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Capture and detection
	DetectDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodverse_detect_duration_seconds",
			Help:    "Face detection latency in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"outcome"},
	)

	CapturesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_captures_total",
			Help: "Total number of capture attempts by outcome",
		},
		[]string{"outcome"},
	)

	MoodsAssigned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_moods_assigned_total",
			Help: "Total number of moods assigned after a successful capture",
		},
		[]string{"mood"},
	)

	DetectorInit = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_detector_init_total",
			Help: "Detector initializations by result",
		},
		[]string{"result"},
	)

	// Quiz
	QuizCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_quiz_completed_total",
			Help: "Completed quizzes by mood and result band",
		},
		[]string{"mood", "band"},
	)

	// Auth
	AuthOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_auth_operations_total",
			Help: "Session store auth operations by result",
		},
		[]string{"operation", "result"},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodverse_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodverse_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodverse_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records one served HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCapture records a finished capture attempt.
func RecordCapture(outcome string, detect time.Duration) {
	CapturesTotal.WithLabelValues(outcome).Inc()
	DetectDuration.WithLabelValues(outcome).Observe(detect.Seconds())
}

// RecordMood counts an assigned mood.
func RecordMood(mood string) {
	MoodsAssigned.WithLabelValues(mood).Inc()
}

// RecordDetectorInit counts a detector initialization result.
func RecordDetectorInit(err error) {
	DetectorInit.WithLabelValues(result(err)).Inc()
}

// RecordQuiz counts a completed quiz.
func RecordQuiz(mood, band string) {
	QuizCompleted.WithLabelValues(mood, band).Inc()
}

// RecordAuth counts a session store auth operation.
func RecordAuth(operation string, err error) {
	AuthOperations.WithLabelValues(operation, result(err)).Inc()
}

// TrackTab adjusts the connected tab gauge.
func TrackTab(connected bool) {
	if connected {
		WSConnections.Inc()
		return
	}
	WSConnections.Dec()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
