package protocol

import (
	"io"

	"github.com/dray-io/kwire/internal/wire"
)

type FetchRequestPartition struct {
	Partition   wire.Int32
	FetchOffset wire.Int64
	MaxBytes    wire.Int32
}

func (m *FetchRequestPartition) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("partition", &m.Partition),
		wire.F("fetch_offset", &m.FetchOffset),
		wire.F("max_bytes", &m.MaxBytes),
	}
}

func (m *FetchRequestPartition) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *FetchRequestPartition) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *FetchRequestPartition) Size() int32              { return wire.SizeFields(m.fields()...) }

type FetchRequestTopic struct {
	Name       wire.String
	Partitions wire.Array[FetchRequestPartition, *FetchRequestPartition]
}

func (m *FetchRequestTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *FetchRequestTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *FetchRequestTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *FetchRequestTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

// FetchRequest (key 1) reads message sets from topic partitions starting
// at the given offsets. ReplicaID is -1 for ordinary consumers.
type FetchRequest struct {
	ReplicaID   wire.Int32
	MaxWaitTime wire.Int32
	MinBytes    wire.Int32
	Topics      wire.Array[FetchRequestTopic, *FetchRequestTopic]
}

func (m *FetchRequest) APIKey() int16 { return KeyFetch }

func (m *FetchRequest) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("replica_id", &m.ReplicaID),
		wire.F("max_wait_time", &m.MaxWaitTime),
		wire.F("min_bytes", &m.MinBytes),
		wire.F("topics", &m.Topics),
	}
}

func (m *FetchRequest) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *FetchRequest) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *FetchRequest) Size() int32              { return wire.SizeFields(m.fields()...) }

type FetchResponsePartition struct {
	Partition           wire.Int32
	ErrorCode           wire.Int16
	HighwaterMarkOffset wire.Int64
	Messages            wire.Sized[MessageSet, *MessageSet]
}

func (m *FetchResponsePartition) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("partition", &m.Partition),
		wire.F("error_code", &m.ErrorCode),
		wire.F("highwater_mark_offset", &m.HighwaterMarkOffset),
		wire.F("messages", &m.Messages),
	}
}

func (m *FetchResponsePartition) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *FetchResponsePartition) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *FetchResponsePartition) Size() int32              { return wire.SizeFields(m.fields()...) }

type FetchResponseTopic struct {
	Name       wire.String
	Partitions wire.Array[FetchResponsePartition, *FetchResponsePartition]
}

func (m *FetchResponseTopic) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *FetchResponseTopic) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *FetchResponseTopic) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *FetchResponseTopic) Size() int32              { return wire.SizeFields(m.fields()...) }

type FetchResponse struct {
	Topics wire.Array[FetchResponseTopic, *FetchResponseTopic]
}

func (m *FetchResponse) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("topics", &m.Topics),
	}
}

func (m *FetchResponse) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *FetchResponse) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *FetchResponse) Size() int32              { return wire.SizeFields(m.fields()...) }
