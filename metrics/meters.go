// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package metrics hands out the named meters of the farm daemon.
//
// Meters are discarded until InitializePrometheusMetrics is called. Package
// level meters should be declared with one of the Lazy constructors so they
// bind to the provider active at their first use rather than at init time.
package metrics

import (
	"net/http"
	"sync"
)

// Labels holds the label values of one observation.
type Labels = map[string]string

type (
	// CountMeter only goes up.
	CountMeter interface{ Add(int64) }
	// CountVecMeter is a CountMeter partitioned by labels.
	CountVecMeter interface{ AddWithLabel(int64, Labels) }
	// GaugeMeter goes up and down.
	GaugeMeter interface {
		Add(int64)
		Set(int64)
	}
	// GaugeVecMeter is a GaugeMeter partitioned by labels.
	GaugeVecMeter interface {
		AddWithLabel(int64, Labels)
		SetWithLabel(int64, Labels)
	}
	// HistogramMeter buckets observations.
	HistogramMeter interface{ Observe(int64) }
	// HistogramVecMeter is a HistogramMeter partitioned by labels.
	HistogramVecMeter interface{ ObserveWithLabels(int64, Labels) }
)

// provider creates meters by name. Asking twice for a name yields the same meter.
type provider interface {
	counter(name string) CountMeter
	counterVec(name string, labels []string) CountVecMeter
	gauge(name string) GaugeMeter
	gaugeVec(name string, labels []string) GaugeVecMeter
	histogram(name string, buckets []int64) HistogramMeter
	histogramVec(name string, labels []string, buckets []int64) HistogramVecMeter
	handler() http.Handler
}

var (
	activeMu sync.RWMutex
	active   provider = noop{}
)

func current() provider {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// Enabled reports whether meters are being recorded.
func Enabled() bool {
	_, ok := current().(noop)
	return !ok
}

// HTTPHandler serves the recorded meters, or is nil while metrics are disabled.
func HTTPHandler() http.Handler {
	return current().handler()
}

// Buckets, in milliseconds unless noted.
var (
	LedgerTxBuckets = []int64{0, 1, 2, 5, 10, 20, 50, 100, 250, 500, 1000}
	HTTPBuckets     = []int64{
		0, 1, 2, 5, 10, 20, 30, 50, 75, 100,
		150, 200, 300, 400, 500, 750, 1000,
		1500, 2000, 3000, 5000, 10000,
	}
	// BatchSizeBuckets counts ops, not time.
	BatchSizeBuckets = []int64{1, 2, 4, 8, 16, 32, 64, 128, 256}
)

func Counter(name string) CountMeter { return current().counter(name) }

func CounterVec(name string, labels []string) CountVecMeter {
	return current().counterVec(name, labels)
}

func Gauge(name string) GaugeMeter { return current().gauge(name) }

func GaugeVec(name string, labels []string) GaugeVecMeter {
	return current().gaugeVec(name, labels)
}

func Histogram(name string, buckets []int64) HistogramMeter {
	return current().histogram(name, buckets)
}

func HistogramVec(name string, labels []string, buckets []int64) HistogramVecMeter {
	return current().histogramVec(name, labels, buckets)
}

func LazyCounterVec(name string, labels []string) func() CountVecMeter {
	return sync.OnceValue(func() CountVecMeter { return CounterVec(name, labels) })
}

func LazyGaugeVec(name string, labels []string) func() GaugeVecMeter {
	return sync.OnceValue(func() GaugeVecMeter { return GaugeVec(name, labels) })
}

func LazyHistogram(name string, buckets []int64) func() HistogramMeter {
	return sync.OnceValue(func() HistogramMeter { return Histogram(name, buckets) })
}

func LazyHistogramVec(name string, labels []string, buckets []int64) func() HistogramVecMeter {
	return sync.OnceValue(func() HistogramVecMeter { return HistogramVec(name, labels, buckets) })
}
