package metrics

import (
	"strconv"
	"time"
)

// HTTPObservation результат одного HTTP запроса.
type HTTPObservation struct {
	Method   string
	Route    string
	Status   int
	Duration time.Duration
}

// RequestStarted учитывает запрос в обработке. Возвращаемую функцию нужно вызвать по завершении.
func RequestStarted() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// ObserveHTTP учитывает завершенный запрос. Маршрут должен быть шаблоном, а не фактическим путем.
func ObserveHTTP(o HTTPObservation) {
	status := strconv.Itoa(o.Status)
	httpRequestsTotal.WithLabelValues(o.Method, o.Route, status).Inc()
	httpRequestDuration.WithLabelValues(o.Method, o.Route, status).Observe(o.Duration.Seconds())
}
