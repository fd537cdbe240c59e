package protocol

import (
	"io"

	"github.com/dray-io/kwire/internal/wire"
)

// ProduceRequestPartition carries the length-framed message set destined
// for one partition.
type ProduceRequestPartition struct {
	Partition  wire.Int32
	MessageSet wire.Sized[MessageSet, *MessageSet]
}

func (m *ProduceRequestPartition) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("partition", &m.Partition),
		wire.F("message_set", &m.MessageSet),
	}
}

func (m *ProduceRequestPartition) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *ProduceRequestPartition) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *ProduceRequestPartition) Size() int32              { return wire.SizeFields(m.fields()...) }

type ProduceRequestTopic struct {
	Name       wire.String
	Partitions wire.Array[ProduceRequestPartition, *ProduceRequestPartition]
}

func (m *ProduceRequestTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *ProduceRequestTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *ProduceRequestTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *ProduceRequestTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

// ProduceRequest (key 0) appends message sets to topic partitions.
type ProduceRequest struct {
	RequiredAcks wire.Int16
	Timeout      wire.Int32
	Topics       wire.Array[ProduceRequestTopic, *ProduceRequestTopic]
}

func (m *ProduceRequest) APIKey() int16 { return KeyProduce }

func (m *ProduceRequest) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("required_acks", &m.RequiredAcks),
		wire.F("timeout", &m.Timeout),
		wire.F("topics", &m.Topics),
	}
}

func (m *ProduceRequest) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *ProduceRequest) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *ProduceRequest) Size() int32              { return wire.SizeFields(m.fields()...) }

type ProduceResponsePartition struct {
	Partition wire.Int32
	ErrorCode wire.Int16
	Offset    wire.Int64
}

func (m *ProduceResponsePartition) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("partition", &m.Partition),
		wire.F("error_code", &m.ErrorCode),
		wire.F("offset", &m.Offset),
	}
}

func (m *ProduceResponsePartition) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *ProduceResponsePartition) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *ProduceResponsePartition) Size() int32              { return wire.SizeFields(m.fields()...) }

type ProduceResponseTopic struct {
	Name       wire.String
	Partitions wire.Array[ProduceResponsePartition, *ProduceResponsePartition]
}

func (m *ProduceResponseTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *ProduceResponseTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *ProduceResponseTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *ProduceResponseTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

type ProduceResponse struct {
	Topics wire.Array[ProduceResponseTopic, *ProduceResponseTopic]
}

func (m *ProduceResponse) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("topics", &m.Topics),
	}
}

func (m *ProduceResponse) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *ProduceResponse) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *ProduceResponse) Size() int32              { return wire.SizeFields(m.fields()...) }
