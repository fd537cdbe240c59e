// Package compatibility pins the exact on-wire byte layout of framed
// requests end to end, from the client through the codec. These frames
// were captured from a reference v0 implementation; a change that
// breaks any of them breaks interoperability.
package compatibility

import (
	"bytes"
	"context"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dray-io/kwire/internal/client"
	"github.com/dray-io/kwire/internal/logging"
	"github.com/dray-io/kwire/internal/protocol"
	"github.com/dray-io/kwire/internal/wire"
)

// goldenMetadataFrame is a framed metadata request: correlation id 0,
// client id "Client", one topic "test".
var goldenMetadataFrame = []byte{
	0x00, 0x00, 0x00, 0x1a, // frame length 26
	0x00, 0x03, // api key 3 (Metadata)
	0x00, 0x00, // api version 0
	0x00, 0x00, 0x00, 0x00, // correlation id 0
	0x00, 0x06, 'C', 'l', 'i', 'e', 'n', 't', // client id
	0x00, 0x00, 0x00, 0x01, // 1 topic
	0x00, 0x04, 't', 'e', 's', 't', // "test"
}

func TestClientEmitsGoldenMetadataFrame(t *testing.T) {
	clientSide, brokerSide := net.Pipe()
	defer brokerSide.Close()

	c := client.NewConn(clientSide, client.Config{
		Addr:     "pipe",
		ClientID: "Client",
		Logger:   logging.New(logging.Config{Level: logging.LevelError}),
	})
	defer c.Close()

	captured := make(chan []byte, 1)
	go func() {
		buf := make([]byte, len(goldenMetadataFrame))
		if _, err := io.ReadFull(brokerSide, buf); err != nil {
			t.Errorf("broker: reading frame: %v", err)
			return
		}
		captured <- buf

		resp := protocol.Response[protocol.MetadataResponse, *protocol.MetadataResponse]{}
		if err := protocol.WriteResponse(brokerSide, &resp); err != nil {
			t.Errorf("broker: writing response: %v", err)
		}
	}()

	_, err := c.Metadata(context.Background(), []string{"test"})
	require.NoError(t, err)
	require.Equal(t, goldenMetadataFrame, <-captured)
}

func TestGoldenMetadataFrameDecodes(t *testing.T) {
	var req protocol.Request[protocol.MetadataRequest, *protocol.MetadataRequest]
	require.NoError(t, protocol.ReadRequest(bytes.NewReader(goldenMetadataFrame), &req))

	require.Equal(t, int32(0), req.CorrelationID)
	require.Equal(t, "Client", req.ClientID)
	require.Equal(t, protocol.StringArray{"test"}, req.Body.TopicNames)
}

func TestGoldenFrameReencodes(t *testing.T) {
	var req protocol.Request[protocol.MetadataRequest, *protocol.MetadataRequest]
	require.NoError(t, protocol.ReadRequest(bytes.NewReader(goldenMetadataFrame), &req))

	var buf bytes.Buffer
	require.NoError(t, protocol.WriteRequest(&buf, &req))
	require.Equal(t, goldenMetadataFrame, buf.Bytes())
	require.Equal(t, int32(len(goldenMetadataFrame)), wire.FrameSize(&req))
}
