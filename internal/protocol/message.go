package protocol

import (
	"io"

	"github.com/dray-io/kwire/internal/wire"
)

// Message is a single produced or fetched message. The attributes byte
// carries the compression codec, which this layer does not interpret.
type Message struct {
	CRC        wire.Int32
	MagicByte  wire.Int8
	Attributes wire.Int8
	Key        wire.NullableBytes
	Value      wire.NullableBytes
}

func (m *Message) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("crc", &m.CRC),
		wire.F("magic_byte", &m.MagicByte),
		wire.F("attributes", &m.Attributes),
		wire.F("key", &m.Key),
		wire.F("value", &m.Value),
	}
}

func (m *Message) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *Message) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *Message) Size() int32              { return wire.SizeFields(m.fields()...) }

// MessageSetElement pairs a log offset with a length-framed message.
type MessageSetElement struct {
	Offset  wire.Int64
	Message wire.Sized[Message, *Message]
}

func (m *MessageSetElement) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("offset", &m.Offset),
		wire.F("message", &m.Message),
	}
}

func (m *MessageSetElement) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *MessageSetElement) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *MessageSetElement) Size() int32              { return wire.SizeFields(m.fields()...) }

// MessageSet is an ordered sequence of offset/message pairs. It travels
// embedded in produce requests and fetch responses, length-framed by the
// surrounding partition entry.
type MessageSet struct {
	Messages wire.Array[MessageSetElement, *MessageSetElement]
}

func (m *MessageSet) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("messages", &m.Messages),
	}
}

func (m *MessageSet) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *MessageSet) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *MessageSet) Size() int32              { return wire.SizeFields(m.fields()...) }
