package metrics

import (
	"errors"

	"github.com/api-sage/magic-card/src/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const operationsMetric = "magiccard_operations_total"

const (
	OperationOpen     = "open"
	OperationBalance  = "balance"
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
)

const (
	OutcomeSuccess          = "success"
	OutcomeInvalidArgument  = "invalid_argument"
	OutcomeInvalidOperation = "invalid_operation"
	OutcomeNotFound         = "not_found"
	OutcomeError            = "error"
)

// Collector counts card operations by outcome. A nil *Collector is valid and
// records nothing.
type Collector struct {
	Operations *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: operationsMetric,
				Help: "Total number of card operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
	}

	if reg != nil {
		reg.MustRegister(c.Operations)
	}

	return c
}

func (c *Collector) Observe(operation string, err error) {
	if c == nil {
		return
	}

	c.Operations.WithLabelValues(operation, Outcome(err)).Inc()
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, domain.ErrInvalidOperation):
		return OutcomeInvalidOperation
	case errors.Is(err, domain.ErrRecordNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

type Sample struct {
	Operation string
	Outcome   string
	Count     float64
}

// Snapshot gathers the current operation counters from g, ordered by
// operation and outcome label values.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		if family.GetName() != operationsMetric {
			continue
		}
		for _, m := range family.GetMetric() {
			samples = append(samples, Sample{
				Operation: labelValue(m, "operation"),
				Outcome:   labelValue(m, "outcome"),
				Count:     m.GetCounter().GetValue(),
			})
		}
	}

	return samples, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, pair := range m.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	return ""
}
