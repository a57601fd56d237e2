// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import "net/http"

// noop is both the disabled provider and every meter it hands out.
type noop struct{}

var _ interface {
	provider
	CountMeter
	CountVecMeter
	GaugeMeter
	GaugeVecMeter
	HistogramMeter
	HistogramVecMeter
} = noop{}

func (noop) counter(string) CountMeter                                { return noop{} }
func (noop) counterVec(string, []string) CountVecMeter                { return noop{} }
func (noop) gauge(string) GaugeMeter                                  { return noop{} }
func (noop) gaugeVec(string, []string) GaugeVecMeter                  { return noop{} }
func (noop) histogram(string, []int64) HistogramMeter                 { return noop{} }
func (noop) histogramVec(string, []string, []int64) HistogramVecMeter { return noop{} }
func (noop) handler() http.Handler                                    { return nil }

func (noop) Add(int64)                       {}
func (noop) Set(int64)                       {}
func (noop) Observe(int64)                   {}
func (noop) AddWithLabel(int64, Labels)      {}
func (noop) SetWithLabel(int64, Labels)      {}
func (noop) ObserveWithLabels(int64, Labels) {}
