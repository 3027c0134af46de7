// Package codec wraps a base-x alphabet with instrumentation and batch
// processing.
package codec

import (
	"errors"
	"time"

	"github.com/LemoFoundationLtd/basex/common/basex"
	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/LemoFoundationLtd/basex/metrics"
	gometrics "github.com/rcrowley/go-metrics"
)

// codecMetrics holds the instruments of one codec. They are looked up when the
// codec is built, so a codec made after metrics.Enable records real values.
type codecMetrics struct {
	encodeTimer      gometrics.Timer
	decodeTimer      gometrics.Timer
	decodeFailMeter  gometrics.Meter
	encodeBytesMeter gometrics.Meter
	decodeBytesMeter gometrics.Meter
	batchJobs        gometrics.Counter
	batchRunning     gometrics.Gauge
}

func newCodecMetrics() *codecMetrics {
	return &codecMetrics{
		encodeTimer:      metrics.NewTimer(metrics.Encode_timerName),
		decodeTimer:      metrics.NewTimer(metrics.Decode_timerName),
		decodeFailMeter:  metrics.NewMeter(metrics.DecodeFailed_meterName),
		encodeBytesMeter: metrics.NewMeter(metrics.EncodeBytesIn_meterName),
		decodeBytesMeter: metrics.NewMeter(metrics.DecodeBytesOut_meterName),
		batchJobs:        metrics.NewCounter(metrics.BatchJobs_counterName),
		batchRunning:     metrics.NewGauge(metrics.BatchRunning_gaugeName),
	}
}

// Codec is a named alphabet. It is safe for concurrent use.
type Codec struct {
	name    string
	alpha   basex.Alphabet
	metrics *codecMetrics
}

// New returns a codec called name. It panics if alpha is nil.
func New(name string, alpha basex.Alphabet) *Codec {
	if alpha == nil {
		panic("codec: nil alphabet")
	}
	return &Codec{name: name, alpha: alpha, metrics: newCodecMetrics()}
}

func (c *Codec) Name() string {
	return c.name
}

func (c *Codec) Alphabet() basex.Alphabet {
	return c.alpha
}

// Encode returns input written with the codec's alphabet.
func (c *Codec) Encode(input []byte) string {
	start := time.Now()
	defer c.metrics.encodeTimer.UpdateSince(start)

	c.metrics.encodeBytesMeter.Mark(int64(len(input)))
	return basex.Encode(c.alpha, input)
}

// Decode parses input written with the codec's alphabet. A symbol outside the
// alphabet gives a *basex.DecodeError.
func (c *Codec) Decode(input string) ([]byte, error) {
	start := time.Now()
	defer c.metrics.decodeTimer.UpdateSince(start)

	output, err := basex.Decode(c.alpha, input)
	if err != nil {
		c.metrics.decodeFailMeter.Mark(1)
		var decodeErr *basex.DecodeError
		if errors.As(err, &decodeErr) {
			log.Debug("Decode failed", "codec", c.name, "symbol", decodeErr.Symbol, "position", decodeErr.Position)
		}
		return nil, err
	}
	c.metrics.decodeBytesMeter.Mark(int64(len(output)))
	return output, nil
}
