package protocol

import (
	"io"

	"github.com/dray-io/kwire/internal/wire"
)

type OffsetRequestPartition struct {
	Partition          wire.Int32
	Time               wire.Int64
	MaxNumberOfOffsets wire.Int32
}

func (m *OffsetRequestPartition) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("partition", &m.Partition),
		wire.F("time", &m.Time),
		wire.F("max_number_of_offsets", &m.MaxNumberOfOffsets),
	}
}

func (m *OffsetRequestPartition) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetRequestPartition) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetRequestPartition) Size() int32              { return wire.SizeFields(m.fields()...) }

type OffsetRequestTopic struct {
	Name       wire.String
	Partitions wire.Array[OffsetRequestPartition, *OffsetRequestPartition]
}

func (m *OffsetRequestTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *OffsetRequestTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetRequestTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetRequestTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

// OffsetRequest (key 2) asks for the log offsets available before a
// given time, per partition.
type OffsetRequest struct {
	ReplicaID wire.Int32
	Topics    wire.Array[OffsetRequestTopic, *OffsetRequestTopic]
}

func (m *OffsetRequest) APIKey() int16 { return KeyOffsets }

func (m *OffsetRequest) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("replica_id", &m.ReplicaID),
		wire.F("topics", &m.Topics),
	}
}

func (m *OffsetRequest) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetRequest) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetRequest) Size() int32              { return wire.SizeFields(m.fields()...) }

type PartitionOffset struct {
	Partition wire.Int32
	ErrorCode wire.Int16
	Offset    wire.Int64
}

func (m *PartitionOffset) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("partition", &m.Partition),
		wire.F("error_code", &m.ErrorCode),
		wire.F("offset", &m.Offset),
	}
}

func (m *PartitionOffset) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *PartitionOffset) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *PartitionOffset) Size() int32              { return wire.SizeFields(m.fields()...) }

type OffsetResponseTopic struct {
	Name       wire.String
	Partitions wire.Array[PartitionOffset, *PartitionOffset]
}

func (m *OffsetResponseTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *OffsetResponseTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetResponseTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetResponseTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

type OffsetResponse struct {
	Topics wire.Array[OffsetResponseTopic, *OffsetResponseTopic]
}

func (m *OffsetResponse) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("topics", &m.Topics),
	}
}

func (m *OffsetResponse) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *OffsetResponse) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *OffsetResponse) Size() int32              { return wire.SizeFields(m.fields()...) }
