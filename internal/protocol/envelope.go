package protocol

import (
	"fmt"
	"io"

	"github.com/dray-io/kwire/internal/wire"
)

// API keys for the v0 message catalog.
// See: https://kafka.apache.org/protocol#protocol_api_keys
const (
	KeyProduce          int16 = 0
	KeyFetch            int16 = 1
	KeyOffsets          int16 = 2
	KeyMetadata         int16 = 3
	KeyOffsetCommit     int16 = 8
	KeyOffsetFetch      int16 = 9
	KeyConsumerMetadata int16 = 10
)

// KeyName returns the conventional name of an api key, or "Unknown" for
// keys outside the catalog. Used for log fields and metric labels.
func KeyName(key int16) string {
	switch key {
	case KeyProduce:
		return "Produce"
	case KeyFetch:
		return "Fetch"
	case KeyOffsets:
		return "Offsets"
	case KeyMetadata:
		return "Metadata"
	case KeyOffsetCommit:
		return "OffsetCommit"
	case KeyOffsetFetch:
		return "OffsetFetch"
	case KeyConsumerMetadata:
		return "ConsumerMetadata"
	default:
		return "Unknown"
	}
}

// apiVersion is the only protocol version this codec speaks. Requests
// carrying any other version fail to decode rather than being
// best-effort interpreted.
const apiVersion int16 = 0

// RequestBody is implemented by every request payload. APIKey is a
// property of the message type, resolved statically, never a runtime
// field: a caller cannot pair a key with the wrong payload shape.
type RequestBody interface {
	wire.Field
	APIKey() int16
}

// BodyPtr constrains P to a pointer to T implementing RequestBody.
type BodyPtr[T any] interface {
	*T
	RequestBody
}

// FieldPtr constrains P to a pointer to T implementing wire.Field.
type FieldPtr[T any] interface {
	*T
	wire.Field
}

// Array aliases shared across the message catalog.
type (
	StringArray = wire.Array[wire.String, *wire.String]
	Int32Array  = wire.Array[wire.Int32, *wire.Int32]
)

// requestEnvelope is the non-generic envelope core shared by the typed
// Request wrapper and the transport-facing frame helpers.
type requestEnvelope struct {
	apiKey        int16
	correlationID wire.Int32
	clientID      wire.String
	body          wire.Field
}

func (e *requestEnvelope) Encode(w io.Writer) error {
	key := wire.Int16(e.apiKey)
	version := wire.Int16(apiVersion)
	return wire.EncodeFields(w,
		wire.F("api_key", &key),
		wire.F("api_version", &version),
		wire.F("correlation_id", &e.correlationID),
		wire.F("client_id", &e.clientID),
		wire.F("body", e.body),
	)
}

func (e *requestEnvelope) Decode(r io.Reader) error {
	var key wire.Int16
	if err := key.Decode(r); err != nil {
		return fmt.Errorf("decoding api_key: %w", err)
	}
	if int16(key) != e.apiKey {
		return fmt.Errorf("%w: api key %d, want %d", wire.ErrMalformed, key, e.apiKey)
	}
	var version wire.Int16
	if err := version.Decode(r); err != nil {
		return fmt.Errorf("decoding api_version: %w", err)
	}
	if int16(version) != apiVersion {
		return fmt.Errorf("%w: unsupported api version %d", wire.ErrMalformed, version)
	}
	return wire.DecodeFields(r,
		wire.F("correlation_id", &e.correlationID),
		wire.F("client_id", &e.clientID),
		wire.F("body", e.body),
	)
}

func (e *requestEnvelope) Size() int32 {
	return 2 + 2 + e.correlationID.Size() + e.clientID.Size() + e.body.Size()
}

// responseEnvelope carries just the echoed correlation id and the
// payload. Responses have no api key or version; the caller knows the
// expected type from the request it issued.
type responseEnvelope struct {
	correlationID wire.Int32
	body          wire.Field
}

func (e *responseEnvelope) Encode(w io.Writer) error {
	return wire.EncodeFields(w,
		wire.F("correlation_id", &e.correlationID),
		wire.F("body", e.body),
	)
}

func (e *responseEnvelope) Decode(r io.Reader) error {
	return wire.DecodeFields(r,
		wire.F("correlation_id", &e.correlationID),
		wire.F("body", e.body),
	)
}

func (e *responseEnvelope) Size() int32 {
	return e.correlationID.Size() + e.body.Size()
}

// Request is a typed request envelope: api key (from the body type),
// api version 0, correlation id, client id, then the payload fields.
type Request[T any, P BodyPtr[T]] struct {
	CorrelationID int32
	ClientID      string
	Body          T
}

// NewRequest builds a request envelope around body. The correlation id
// is caller-assigned and opaque; the broker echoes it back unchanged.
func NewRequest[T any, P BodyPtr[T]](correlationID int32, clientID string, body T) *Request[T, P] {
	return &Request[T, P]{CorrelationID: correlationID, ClientID: clientID, Body: body}
}

func (m *Request[T, P]) Encode(w io.Writer) error {
	e := requestEnvelope{
		apiKey:        P(&m.Body).APIKey(),
		correlationID: wire.Int32(m.CorrelationID),
		clientID:      wire.String(m.ClientID),
		body:          P(&m.Body),
	}
	return e.Encode(w)
}

func (m *Request[T, P]) Decode(r io.Reader) error {
	e := requestEnvelope{apiKey: P(&m.Body).APIKey(), body: P(&m.Body)}
	if err := e.Decode(r); err != nil {
		return err
	}
	m.CorrelationID = int32(e.correlationID)
	m.ClientID = string(e.clientID)
	return nil
}

func (m *Request[T, P]) Size() int32 {
	e := requestEnvelope{
		correlationID: wire.Int32(m.CorrelationID),
		clientID:      wire.String(m.ClientID),
		body:          P(&m.Body),
	}
	return e.Size()
}

// Response is a typed response envelope: correlation id then payload.
type Response[T any, P FieldPtr[T]] struct {
	CorrelationID int32
	Body          T
}

func (m *Response[T, P]) Encode(w io.Writer) error {
	e := responseEnvelope{
		correlationID: wire.Int32(m.CorrelationID),
		body:          P(&m.Body),
	}
	return e.Encode(w)
}

func (m *Response[T, P]) Decode(r io.Reader) error {
	e := responseEnvelope{body: P(&m.Body)}
	if err := e.Decode(r); err != nil {
		return err
	}
	m.CorrelationID = int32(e.correlationID)
	return nil
}

func (m *Response[T, P]) Size() int32 {
	e := responseEnvelope{body: P(&m.Body)}
	return e.Size()
}

// WriteRequest writes the outer sized frame wrapping req. Framed
// requests and responses are the only units ever placed on the wire.
func WriteRequest[T any, P BodyPtr[T]](w io.Writer, req *Request[T, P]) error {
	return wire.WriteFrame(w, req)
}

// ReadRequest reads a framed request envelope into req, asserting the
// api key and version match the body type.
func ReadRequest[T any, P BodyPtr[T]](r io.Reader, req *Request[T, P]) error {
	return wire.ReadFrame(r, req)
}

// WriteResponse writes the outer sized frame wrapping resp.
func WriteResponse[T any, P FieldPtr[T]](w io.Writer, resp *Response[T, P]) error {
	return wire.WriteFrame(w, resp)
}

// ReadResponse reads a framed response envelope into resp.
func ReadResponse[T any, P FieldPtr[T]](r io.Reader, resp *Response[T, P]) error {
	return wire.ReadFrame(r, resp)
}

// WriteRequestFrame writes a framed request without requiring the caller
// to name the body type. Used by the transport layer.
func WriteRequestFrame(w io.Writer, correlationID int32, clientID string, body RequestBody) error {
	e := requestEnvelope{
		apiKey:        body.APIKey(),
		correlationID: wire.Int32(correlationID),
		clientID:      wire.String(clientID),
		body:          body,
	}
	return wire.WriteFrame(w, &e)
}

// RequestFrameSize returns the framed on-wire size of a request envelope.
func RequestFrameSize(correlationID int32, clientID string, body RequestBody) int32 {
	e := requestEnvelope{
		correlationID: wire.Int32(correlationID),
		clientID:      wire.String(clientID),
		body:          body,
	}
	return wire.FrameSize(&e)
}

// ResponseFrameSize returns the framed on-wire size of a response
// envelope around body.
func ResponseFrameSize(body wire.Field) int32 {
	e := responseEnvelope{body: body}
	return wire.FrameSize(&e)
}

// ReadResponseFrame reads a framed response into body and returns the
// echoed correlation id.
func ReadResponseFrame(r io.Reader, body wire.Field) (int32, error) {
	return ReadResponseFrameLimit(r, body, 0)
}

// ReadResponseFrameLimit is ReadResponseFrame with an upper bound on the
// declared frame length. A limit of 0 or less disables the bound.
func ReadResponseFrameLimit(r io.Reader, body wire.Field, limit int32) (int32, error) {
	e := responseEnvelope{body: body}
	if err := wire.ReadFrameLimit(r, &e, limit); err != nil {
		return 0, err
	}
	return int32(e.correlationID), nil
}
