package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decode failure kinds used as label values on DecodeFailuresTotal.
const (
	FailureMalformed = "malformed"
	FailureTruncated = "truncated"
	FailureIO        = "io"
)

// CodecMetrics holds metrics related to frame encoding and decoding.
type CodecMetrics struct {
	// FramesEncodedTotal tracks total frames written.
	FramesEncodedTotal prometheus.Counter

	// FramesDecodedTotal tracks total frames successfully read.
	FramesDecodedTotal prometheus.Counter

	// BytesEncodedTotal tracks total payload bytes written, including
	// the 4-byte length prefix.
	BytesEncodedTotal prometheus.Counter

	// BytesDecodedTotal tracks total payload bytes read, including the
	// 4-byte length prefix.
	BytesDecodedTotal prometheus.Counter

	// DecodeFailuresTotal tracks decode failures by kind.
	// Labels: kind (malformed, truncated, io)
	DecodeFailuresTotal *prometheus.CounterVec
}

// NewCodecMetrics creates and registers codec metrics.
// Uses promauto for automatic registration with the default registry.
func NewCodecMetrics() *CodecMetrics {
	return &CodecMetrics{
		FramesEncodedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "kwire",
				Subsystem: "codec",
				Name:      "frames_encoded_total",
				Help:      "Total number of frames encoded.",
			},
		),
		FramesDecodedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "kwire",
				Subsystem: "codec",
				Name:      "frames_decoded_total",
				Help:      "Total number of frames decoded.",
			},
		),
		BytesEncodedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "kwire",
				Subsystem: "codec",
				Name:      "bytes_encoded_total",
				Help:      "Total bytes encoded, including length prefixes.",
			},
		),
		BytesDecodedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "kwire",
				Subsystem: "codec",
				Name:      "bytes_decoded_total",
				Help:      "Total bytes decoded, including length prefixes.",
			},
		),
		DecodeFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kwire",
				Subsystem: "codec",
				Name:      "decode_failures_total",
				Help:      "Total number of decode failures, broken down by kind.",
			},
			[]string{"kind"},
		),
	}
}

// NewCodecMetricsWithRegistry creates codec metrics registered with a custom registry.
// Useful for testing to avoid conflicts with the default registry.
func NewCodecMetricsWithRegistry(reg prometheus.Registerer) *CodecMetrics {
	framesEncoded := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kwire",
			Subsystem: "codec",
			Name:      "frames_encoded_total",
			Help:      "Total number of frames encoded.",
		},
	)

	framesDecoded := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kwire",
			Subsystem: "codec",
			Name:      "frames_decoded_total",
			Help:      "Total number of frames decoded.",
		},
	)

	bytesEncoded := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kwire",
			Subsystem: "codec",
			Name:      "bytes_encoded_total",
			Help:      "Total bytes encoded, including length prefixes.",
		},
	)

	bytesDecoded := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kwire",
			Subsystem: "codec",
			Name:      "bytes_decoded_total",
			Help:      "Total bytes decoded, including length prefixes.",
		},
	)

	decodeFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kwire",
			Subsystem: "codec",
			Name:      "decode_failures_total",
			Help:      "Total number of decode failures, broken down by kind.",
		},
		[]string{"kind"},
	)

	reg.MustRegister(framesEncoded)
	reg.MustRegister(framesDecoded)
	reg.MustRegister(bytesEncoded)
	reg.MustRegister(bytesDecoded)
	reg.MustRegister(decodeFailures)

	return &CodecMetrics{
		FramesEncodedTotal:  framesEncoded,
		FramesDecodedTotal:  framesDecoded,
		BytesEncodedTotal:   bytesEncoded,
		BytesDecodedTotal:   bytesDecoded,
		DecodeFailuresTotal: decodeFailures,
	}
}

// RecordEncode records a successfully encoded frame of the given size.
func (m *CodecMetrics) RecordEncode(frameBytes int32) {
	m.FramesEncodedTotal.Inc()
	m.BytesEncodedTotal.Add(float64(frameBytes))
}

// RecordDecode records a successfully decoded frame of the given size.
func (m *CodecMetrics) RecordDecode(frameBytes int32) {
	m.FramesDecodedTotal.Inc()
	m.BytesDecodedTotal.Add(float64(frameBytes))
}

// RecordDecodeFailure records a decode failure by kind.
// kind is one of FailureMalformed, FailureTruncated, FailureIO.
func (m *CodecMetrics) RecordDecodeFailure(kind string) {
	m.DecodeFailuresTotal.WithLabelValues(kind).Inc()
}
