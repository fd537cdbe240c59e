// Package protocol implements the Kafka v0 message layer on top of the
// wire codec: the request and response envelopes, the per-type API key
// association, the protocol error code table, and the concrete message
// schemas (Metadata, Produce, Fetch, Offsets, OffsetCommit, OffsetFetch,
// ConsumerMetadata).
//
// Every message declares its layout as an ordered wire.F(...) field list
// and derives Encode, Decode and Size from it; the field order is the
// wire contract. Requests bind their API key at the type level through
// the RequestBody interface, so a payload can never be sent or decoded
// under the wrong key.
//
// Usage:
//
//	req := protocol.NewRequest(42, "my-client", protocol.MetadataRequest{
//		TopicNames: protocol.StringArray{"events"},
//	})
//	if err := protocol.WriteRequest(conn, req); err != nil {
//		return err
//	}
//
//	var resp protocol.Response[protocol.MetadataResponse, *protocol.MetadataResponse]
//	if err := protocol.ReadResponse(conn, &resp); err != nil {
//		return err
//	}
package protocol
