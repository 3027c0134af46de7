// Package metrics provides the metrics collection of the codec and the
// alphabet database.
package metrics

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/rcrowley/go-metrics"
	"github.com/rcrowley/go-metrics/exp"
)

// MetricsEnabledFlag is the CLI flag name to use to enable metrics collections.
var MetricsEnabledFlag = "metrics"

// Enabled is the flag specifying if metrics are enable or not.
var Enabled = false

// Init enables or disables the metrics system. Since we need this to run before
// any other code gets to create meters and timers, we'll actually do an ugly hack
// and peek into the command line args for the metrics flag.
func init() {
	if enabledByArgs(os.Args[1:]) {
		Enable()
	}
}

// enabledByArgs reports whether args turn the metrics flag on, either bare
// or with a true value.
func enabledByArgs(args []string) bool {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name != MetricsEnabledFlag {
			continue
		}
		if !hasValue {
			return true
		}
		on, err := strconv.ParseBool(value)
		return err == nil && on
	}
	return false
}

// Enable turns metrics collection on. Only instruments created afterwards are
// real ones, so codecs and databases look theirs up when they are built.
func Enable() {
	if Enabled {
		return
	}
	log.Info("Enabling metrics collection")
	Enabled = true
	exp.Exp(metrics.DefaultRegistry)
}

// NewGauge create a new metrics Gauge, either a real one of a NOP stub depending
// on the metrics flag.
func NewGauge(name string) metrics.Gauge {
	if !Enabled {
		return new(metrics.NilGauge)
	}
	return metrics.GetOrRegisterGauge(name, metrics.DefaultRegistry)
}

// NewCounter create a new metrics Counter, either a real one of a NOP stub depending
// on the metrics flag.
func NewCounter(name string) metrics.Counter {
	if !Enabled {
		return new(metrics.NilCounter)
	}
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

// NewMeter create a new metrics Meter, either a real one of a NOP stub depending
// on the metrics flag.
func NewMeter(name string) metrics.Meter {
	if !Enabled {
		return new(metrics.NilMeter)
	}
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}

// NewTimer create a new metrics Timer, either a real one of a NOP stub depending
// on the metrics flag.
func NewTimer(name string) metrics.Timer {
	if !Enabled {
		return new(metrics.NilTimer)
	}
	return metrics.GetOrRegisterTimer(name, metrics.DefaultRegistry)
}

// WriteOnce dumps every metric of the default registry to w, sorted by name.
func WriteOnce(w io.Writer) {
	metrics.WriteOnce(metrics.DefaultRegistry, w)
}

// WriteMetricsData 收集统计数据 until quit is closed
func WriteMetricsData(r metrics.Registry, refresh time.Duration, quit <-chan struct{}) {
	du := float64(time.Nanosecond)
	duSuffix := time.Nanosecond.String()[1:]

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
		}
		r.Each(func(name string, i interface{}) {
			switch metric := i.(type) {
			case metrics.Gauge:
				log.Infof("gauge %s\n", name)
				log.Infof("  value:       %9d\n", metric.Value())
			case metrics.Counter:
				log.Infof("counter %s\n", name)
				log.Infof("  count:       %9d\n", metric.Count())
			case metrics.Meter:
				m := metric.Snapshot()
				log.Infof("meter %s\n", name)
				log.Infof("  count:       %9d\n", m.Count())
				log.Infof("  1-min rate:  %12.2f\n", m.Rate1())
				log.Infof("  mean rate:   %12.2f\n", m.RateMean())
			case metrics.Timer:
				t := metric.Snapshot()
				ps := t.Percentiles([]float64{0.5, 0.95, 0.99})
				log.Infof("timer %s\n", name)
				log.Infof("  count:       %9d\n", t.Count())
				log.Infof("  min:         %12.2f%s\n", float64(t.Min())/du, duSuffix)
				log.Infof("  max:         %12.2f%s\n", float64(t.Max())/du, duSuffix)
				log.Infof("  mean:        %12.2f%s\n", t.Mean()/du, duSuffix)
				log.Infof("  median:      %12.2f%s\n", ps[0]/du, duSuffix)
				log.Infof("  95%%:         %12.2f%s\n", ps[1]/du, duSuffix)
				log.Infof("  99%%:         %12.2f%s\n", ps[2]/du, duSuffix)
			}
		})
	}
}

// GetModuleMetrics 返回指定模块的的metrics
func GetModuleMetrics(moduleName string) map[string]interface{} {
	m := make(map[string]interface{})
	metrics.DefaultRegistry.Each(func(name string, i interface{}) {
		if strings.HasPrefix(name, moduleName) {
			m[name] = i
		}
	})
	return m
}
