package metrics

import (
	"net/http"
	"strconv"
	"time"

	"valentine_week/internal/config"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "valentine_week"

// PrometheusRecorder は Prometheus のメトリクスで Recorder を実装します
type PrometheusRecorder struct {
	registry         *prom.Registry
	initialized      prom.Counter
	daysCompleted    *prom.CounterVec
	replayEntered    prom.Counter
	resets           prom.Counter
	replaceConflicts prom.Counter
	httpRequests     *prom.CounterVec
	httpDuration     *prom.HistogramVec
}

// NewPrometheusRecorder はメトリクスを作成して reg に登録します。reg が nil の場合は新規作成する。
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	pr := &PrometheusRecorder{
		registry: reg,
		initialized: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "progress_initialized_total",
			Help:      "Number of times the progress document was created",
		}),
		daysCompleted: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "days_completed_total",
			Help:      "Day completions by day number",
		}, []string{"day"}),
		replayEntered: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "replay_entered_total",
			Help:      "Number of transitions into replay mode",
		}),
		resets: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "progress_resets_total",
			Help:      "Number of progress resets",
		}),
		replaceConflicts: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "replace_conflicts_total",
			Help:      "Optimistic concurrency conflicts on progress replace",
		}),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prom.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		pr.initialized,
		pr.daysCompleted,
		pr.replayEntered,
		pr.resets,
		pr.replaceConflicts,
		pr.httpRequests,
		pr.httpDuration,
	)
	return pr
}

// New は設定に応じて Recorder を返します。無効なら NoopRecorder
func New(cfg config.MetricsConfig) Recorder {
	if !cfg.Enabled {
		return NoopRecorder{}
	}
	return NewPrometheusRecorder(nil)
}

// Handler は登録済みメトリクスを公開する http.Handler を返します
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (p *PrometheusRecorder) IncProgressInitialized() {
	if p == nil {
		return
	}
	p.initialized.Inc()
}

func (p *PrometheusRecorder) IncDayCompleted(dayNumber int) {
	if p == nil {
		return
	}
	p.daysCompleted.WithLabelValues(strconv.Itoa(dayNumber)).Inc()
}

func (p *PrometheusRecorder) IncReplayEntered() {
	if p == nil {
		return
	}
	p.replayEntered.Inc()
}

func (p *PrometheusRecorder) IncProgressReset() {
	if p == nil {
		return
	}
	p.resets.Inc()
}

func (p *PrometheusRecorder) IncReplaceConflict() {
	if p == nil {
		return
	}
	p.replaceConflicts.Inc()
}

func (p *PrometheusRecorder) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if p == nil {
		return
	}
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
