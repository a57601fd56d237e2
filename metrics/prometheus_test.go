// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T) map[string]*dto.MetricFamily {
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily)
	for _, mf := range families {
		out[mf.GetName()] = mf
	}
	return out
}

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	count := Counter("test_count")
	countVec := CounterVec("test_count_vec", []string{"parity"})
	hist := Histogram("test_hist", LedgerTxBuckets)
	gauge := Gauge("test_gauge")
	gaugeVec := GaugeVec("test_gauge_vec", []string{"parity"})

	count.Add(1)
	Counter("test_count").Add(2)

	total := 0
	for i := range 10 {
		labels := map[string]string{"parity": strconv.Itoa(i % 2)}
		countVec.AddWithLabel(int64(i), labels)
		gaugeVec.AddWithLabel(int64(i), labels)
		hist.Observe(int64(i))
		total += i
	}
	gauge.Set(42)

	families := gather(t)

	require.Equal(t, float64(3), families["farm_test_count"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(total), families["farm_test_hist"].Metric[0].GetHistogram().GetSampleSum())
	require.Equal(t, float64(42), families["farm_test_gauge"].Metric[0].GetGauge().GetValue())

	vec := families["farm_test_count_vec"].Metric
	require.Len(t, vec, 2)
	require.Equal(t, float64(total), vec[0].GetCounter().GetValue()+vec[1].GetCounter().GetValue())

	gvec := families["farm_test_gauge_vec"].Metric
	require.Equal(t, float64(total), gvec[0].GetGauge().GetValue()+gvec[1].GetGauge().GetValue())
}

func TestLazyLoading(t *testing.T) {
	activeMu.Lock()
	active = noop{}
	activeMu.Unlock()
	require.False(t, Enabled())

	for _, a := range []any{
		Gauge("noopGauge"),
		GaugeVec("noopGaugeVec", nil),
		Counter("noopCounter"),
		CounterVec("noopCounterVec", nil),
		Histogram("noopHist", nil),
		HistogramVec("noopHistVec", nil, nil),
	} {
		require.IsType(t, noop{}, a)
	}
	require.Nil(t, HTTPHandler())

	lazyGaugeVec := LazyGaugeVec("lazy_gauge_vec", []string{"l"})
	lazyCounterVec := LazyCounterVec("lazy_counter_vec", []string{"l"})
	lazyHistogram := LazyHistogram("lazy_histogram", BatchSizeBuckets)
	lazyHistogramVec := LazyHistogramVec("lazy_histogram_vec", []string{"l"}, nil)

	// meters first used after initialization are prometheus backed
	InitializePrometheusMetrics()
	require.True(t, Enabled())

	require.IsType(t, &promGaugeVecMeter{}, lazyGaugeVec())
	require.IsType(t, &promCountVecMeter{}, lazyCounterVec())
	require.IsType(t, &promHistogramMeter{}, lazyHistogram())
	require.IsType(t, &promHistogramVecMeter{}, lazyHistogramVec())
	// and stay bound once resolved
	require.Same(t, lazyCounterVec(), lazyCounterVec())
	require.NotNil(t, HTTPHandler())
}
