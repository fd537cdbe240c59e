package protocol

import (
	"io"

	"github.com/dray-io/kwire/internal/wire"
)

type OffsetCommitRequestPartition struct {
	Partition wire.Int32
	Offset    wire.Int64
	Timestamp wire.Int64
	Metadata  wire.String
}

func (m *OffsetCommitRequestPartition) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("partition", &m.Partition),
		wire.F("offset", &m.Offset),
		wire.F("timestamp", &m.Timestamp),
		wire.F("metadata", &m.Metadata),
	}
}

func (m *OffsetCommitRequestPartition) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetCommitRequestPartition) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetCommitRequestPartition) Size() int32              { return wire.SizeFields(m.fields()...) }

type OffsetCommitRequestTopic struct {
	Name       wire.String
	Partitions wire.Array[OffsetCommitRequestPartition, *OffsetCommitRequestPartition]
}

func (m *OffsetCommitRequestTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *OffsetCommitRequestTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetCommitRequestTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetCommitRequestTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

// OffsetCommitRequest (key 8) records consumed offsets for a group.
type OffsetCommitRequest struct {
	ConsumerGroup wire.String
	Topics        wire.Array[OffsetCommitRequestTopic, *OffsetCommitRequestTopic]
}

func (m *OffsetCommitRequest) APIKey() int16 { return KeyOffsetCommit }

func (m *OffsetCommitRequest) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("consumer_group", &m.ConsumerGroup),
		wire.F("topics", &m.Topics),
	}
}

func (m *OffsetCommitRequest) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetCommitRequest) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetCommitRequest) Size() int32              { return wire.SizeFields(m.fields()...) }

type OffsetCommitResponseTopic struct {
	Name       wire.String
	Partitions Int32Array
}

func (m *OffsetCommitResponseTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *OffsetCommitResponseTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetCommitResponseTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetCommitResponseTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

type OffsetCommitResponse struct {
	Topics wire.Array[OffsetCommitResponseTopic, *OffsetCommitResponseTopic]
}

func (m *OffsetCommitResponse) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("topics", &m.Topics),
	}
}

func (m *OffsetCommitResponse) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetCommitResponse) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetCommitResponse) Size() int32              { return wire.SizeFields(m.fields()...) }
