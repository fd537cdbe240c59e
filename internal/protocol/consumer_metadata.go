package protocol

import (
	"io"

	"github.com/dray-io/kwire/internal/wire"
)

// ConsumerMetadataRequest (key 10) locates the coordinator broker for a
// consumer group.
type ConsumerMetadataRequest struct {
	Group wire.String
}

func (m *ConsumerMetadataRequest) APIKey() int16 { return KeyConsumerMetadata }

func (m *ConsumerMetadataRequest) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("group", &m.Group),
	}
}

func (m *ConsumerMetadataRequest) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *ConsumerMetadataRequest) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *ConsumerMetadataRequest) Size() int32              { return wire.SizeFields(m.fields()...) }

type ConsumerMetadataResponse struct {
	ErrorCode       wire.Int16
	CoordinatorID   wire.Int32
	CoordinatorHost wire.String
	CoordinatorPort wire.Int32
}

func (m *ConsumerMetadataResponse) fields() []wire.FieldDef {
	return []wire.FieldDef{
		wire.F("error_code", &m.ErrorCode),
		wire.F("coordinator_id", &m.CoordinatorID),
		wire.F("coordinator_host", &m.CoordinatorHost),
		wire.F("coordinator_port", &m.CoordinatorPort),
	}
}

func (m *ConsumerMetadataResponse) Encode(w io.Writer) error { return wire.EncodeFields(w, m.fields()...) }
func (m *ConsumerMetadataResponse) Decode(r io.Reader) error { return wire.DecodeFields(r, m.fields()...) }
func (m *ConsumerMetadataResponse) Size() int32              { return wire.SizeFields(m.fields()...) }
