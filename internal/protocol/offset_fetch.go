package protocol

import (
	"io"

	"github.com/dray-io/kwire/internal/wire"
)

type OffsetFetchRequestTopic struct {
	Name       wire.String
	Partitions Int32Array
}

func (m *OffsetFetchRequestTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *OffsetFetchRequestTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetFetchRequestTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetFetchRequestTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

// OffsetFetchRequest (key 9) reads back the committed offsets for one
// topic of a consumer group.
type OffsetFetchRequest struct {
	ConsumerGroup wire.String
	Topics        OffsetFetchRequestTopic
}

func (m *OffsetFetchRequest) APIKey() int16 { return KeyOffsetFetch }

func (m *OffsetFetchRequest) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("consumer_group", &m.ConsumerGroup),
		wire.F("topics", &m.Topics),
	}
}

func (m *OffsetFetchRequest) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetFetchRequest) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetFetchRequest) Size() int32              { return wire.SizeFields(m.fields()...) }

type OffsetFetchResponsePartition struct {
	Partition wire.Int32
	Offset    wire.Int64
	Metadata  wire.String
	ErrorCode wire.Int16
}

func (m *OffsetFetchResponsePartition) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("partition", &m.Partition),
		wire.F("offset", &m.Offset),
		wire.F("metadata", &m.Metadata),
		wire.F("error_code", &m.ErrorCode),
	}
}

func (m *OffsetFetchResponsePartition) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetFetchResponsePartition) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetFetchResponsePartition) Size() int32              { return wire.SizeFields(m.fields()...) }

type OffsetFetchResponseTopic struct {
	Name       wire.String
	Partitions wire.Array[OffsetFetchResponsePartition, *OffsetFetchResponsePartition]
}

func (m *OffsetFetchResponseTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *OffsetFetchResponseTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetFetchResponseTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetFetchResponseTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

type OffsetFetchResponse struct {
	Topics wire.Array[OffsetFetchResponseTopic, *OffsetFetchResponseTopic]
}

func (m *OffsetFetchResponse) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("topics", &m.Topics),
	}
}

func (m *OffsetFetchResponse) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetFetchResponse) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetFetchResponse) Size() int32              { return wire.SizeFields(m.fields()...) }
