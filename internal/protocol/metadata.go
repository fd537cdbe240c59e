package protocol

import (
	"io"

	"github.com/dray-io/kwire/internal/wire"
)

// MetadataRequest (key 3) asks for cluster metadata covering the named
// topics. An empty list asks for all topics.
type MetadataRequest struct {
	TopicNames StringArray
}

func (m *MetadataRequest) APIKey() int16 { return KeyMetadata }

func (m *MetadataRequest) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("topic_names", &m.TopicNames),
	}
}

func (m *MetadataRequest) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *MetadataRequest) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *MetadataRequest) Size() int32              { return wire.SizeFields(m.fields()...) }

// Broker identifies a broker node and its advertised endpoint.
type Broker struct {
	NodeID wire.Int32
	Host   wire.String
	Port   wire.Int32
}

func (m *Broker) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("node_id", &m.NodeID),
		wire.F("host", &m.Host),
		wire.F("port", &m.Port),
	}
}

func (m *Broker) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *Broker) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *Broker) Size() int32              { return wire.SizeFields(m.fields()...) }

// PartitionMetadata describes one partition's leadership and replicas.
type PartitionMetadata struct {
	ErrorCode wire.Int16
	Partition wire.Int32
	Leader    wire.Int32
	Replicas  Int32Array
	ISR       Int32Array
}

func (m *PartitionMetadata) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("error_code", &m.ErrorCode),
		wire.F("partition", &m.Partition),
		wire.F("leader", &m.Leader),
		wire.F("replicas", &m.Replicas),
		wire.F("isr", &m.ISR),
	}
}

func (m *PartitionMetadata) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *PartitionMetadata) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *PartitionMetadata) Size() int32              { return wire.SizeFields(m.fields()...) }

// TopicMetadata describes one topic and its partitions.
type TopicMetadata struct {
	ErrorCode  wire.Int16
	Name       wire.String
	Partitions wire.Array[PartitionMetadata, *PartitionMetadata]
}

func (m *TopicMetadata) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("error_code", &m.ErrorCode),
		wire.F("name", &m.Name),
		wire.F("partitions", &m.Partitions),
	}
}

func (m *TopicMetadata) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *TopicMetadata) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *TopicMetadata) Size() int32              { return wire.SizeFields(m.fields()...) }

// MetadataResponse lists the known brokers and the requested topics.
type MetadataResponse struct {
	Brokers wire.Array[Broker, *Broker]
	Topics  wire.Array[TopicMetadata, *TopicMetadata]
}

func (m *MetadataResponse) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("brokers", &m.Brokers),
		wire.F("topics", &m.Topics),
	}
}

func (m *MetadataResponse) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *MetadataResponse) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *MetadataResponse) Size() int32              { return wire.SizeFields(m.fields()...) }
