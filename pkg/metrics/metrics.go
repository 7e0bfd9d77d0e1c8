package metrics

import (
	"strconv"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contadores Prometheus del servicio.
type Metrics struct {
	Requests   *prometheus.CounterVec
	AuditDrops prometheus.Counter
}

// New registra los contadores en el registry por defecto.
func New() *Metrics {
	return &Metrics{
		Requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gestion_http_requests_total",
			Help: "Peticiones HTTP por ruta, método y código de estado.",
		}, []string{"route", "method", "status"}),
		AuditDrops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gestion_audit_drops_total",
			Help: "Entradas de auditoría descartadas o no persistidas.",
		}),
	}
}

// Middleware cuenta cada petición con la ruta registrada (no la URL cruda,
// para no explotar la cardinalidad con IDs).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		route := c.Route().Path
		m.Requests.WithLabelValues(route, c.Method(), strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}

// Handler expone /metrics en formato Prometheus dentro de Fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	))
}
