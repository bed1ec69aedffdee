package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districts/metrics"
)

func TestCollectorsIncrement(t *testing.T) {
	before := testutil.ToFloat64(metrics.CandidatesRejected.WithLabelValues(metrics.PredicateSocket))
	metrics.CandidatesRejected.WithLabelValues(metrics.PredicateSocket).Inc()
	after := testutil.ToFloat64(metrics.CandidatesRejected.WithLabelValues(metrics.PredicateSocket))
	require.InDelta(t, before+1, after, 1e-9)

	ticks := testutil.ToFloat64(metrics.CollapseTicks)
	metrics.CollapseTicks.Add(2)
	require.InDelta(t, ticks+2, testutil.ToFloat64(metrics.CollapseTicks), 1e-9)
}
