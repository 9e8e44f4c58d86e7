//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Metrics=Metrics"
package metric

import "time"

type (
	Metrics interface {
		With(Labels) Metrics
		Increment(key string)
		Duration(key string, duration time.Duration)
	}

	Labels map[string]string
)
