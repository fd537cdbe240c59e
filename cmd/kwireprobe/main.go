// Command kwireprobe is a small diagnostic client for v0 protocol
// brokers. It issues a single request, prints the decoded response, and
// exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dray-io/kwire/internal/client"
	"github.com/dray-io/kwire/internal/config"
	"github.com/dray-io/kwire/internal/logging"
	"github.com/dray-io/kwire/internal/metrics"
	"github.com/dray-io/kwire/internal/protocol"
	"github.com/dray-io/kwire/internal/wire"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "metadata":
		runMetadata(os.Args[2:])
	case "offsets":
		runOffsets(os.Args[2:])
	case "version", "--version", "-version":
		fmt.Printf("kwireprobe version %s (built %s)\n", version, buildTime)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: kwireprobe <command> [options]

Commands:
  metadata    Fetch cluster metadata for the given topics
  offsets     Fetch available log offsets for a topic partition
  version     Print version information

Run 'kwireprobe <command> --help' for more information on a command.`)
}

// commonFlags holds flags shared by every probe subcommand.
type commonFlags struct {
	configPath *string
	broker     *string
	clientID   *string
	timeout    *time.Duration
}

func registerCommon(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		configPath: fs.String("config", "", "Path to configuration file"),
		broker:     fs.String("broker", "", "Override broker address (host:port)"),
		clientID:   fs.String("client-id", "", "Override client id"),
		timeout:    fs.Duration("timeout", 10*time.Second, "Overall request timeout"),
	}
}

// connect loads configuration, applies overrides, and dials the broker.
func (f *commonFlags) connect(ctx context.Context) (*client.Conn, error) {
	cfg, err := config.Load(*f.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if *f.broker != "" {
		cfg.Broker.Addr = *f.broker
	}
	if *f.clientID != "" {
		cfg.Client.ClientID = *f.clientID
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Observability.LogLevel),
		Format: logging.ParseFormat(cfg.Observability.LogFormat),
	})
	logging.SetGlobal(logger)

	if cfg.Observability.MetricsAddr != "" {
		srv := metrics.NewServer(cfg.Observability.MetricsAddr)
		if err := srv.Start(); err != nil {
			logger.WithError(err).Warn("metrics server failed to start")
		}
	}

	return client.Dial(ctx, client.Config{
		Addr:         cfg.Broker.Addr,
		ClientID:     cfg.Client.ClientID,
		DialTimeout:  time.Duration(cfg.Client.DialTimeoutMs) * time.Millisecond,
		ReadTimeout:  time.Duration(cfg.Client.ReadTimeoutMs) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Client.WriteTimeoutMs) * time.Millisecond,
		MaxFrameSize: cfg.Client.MaxFrameSize,
		Logger:       logger,
	})
}

func runMetadata(args []string) {
	fs := flag.NewFlagSet("metadata", flag.ExitOnError)
	common := registerCommon(fs)
	topicList := fs.String("topics", "", "Comma-separated topic names (empty for all)")

	fs.Usage = func() {
		fmt.Println(`Usage: kwireprobe metadata [options]

Fetch cluster metadata for the given topics.

Options:`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *common.timeout)
	defer cancel()

	conn, err := common.connect(ctx)
	if err != nil {
		fatal(err)
	}
	defer conn.Close()

	var topics []string
	if *topicList != "" {
		topics = strings.Split(*topicList, ",")
	}

	resp, err := conn.Metadata(ctx, topics)
	if err != nil {
		fatal(err)
	}
	printMetadata(resp)
}

func printMetadata(resp *protocol.MetadataResponse) {
	fmt.Printf("brokers (%d):\n", len(resp.Brokers))
	for _, b := range resp.Brokers {
		fmt.Printf("  node %d at %s:%d\n", b.NodeID, b.Host, b.Port)
	}
	fmt.Printf("topics (%d):\n", len(resp.Topics))
	for _, tm := range resp.Topics {
		fmt.Printf("  %s [%s]\n", tm.Name, errorName(tm.ErrorCode))
		for _, pm := range tm.Partitions {
			fmt.Printf("    partition %d leader=%d replicas=%d isr=%d [%s]\n",
				pm.Partition, pm.Leader, len(pm.Replicas), len(pm.ISR), errorName(pm.ErrorCode))
		}
	}
}

func runOffsets(args []string) {
	fs := flag.NewFlagSet("offsets", flag.ExitOnError)
	common := registerCommon(fs)
	topic := fs.String("topic", "", "Topic name (required)")
	partition := fs.Int("partition", 0, "Partition index")
	timeMs := fs.Int64("time", -1, "Target time in ms (-1 latest, -2 earliest)")
	maxOffsets := fs.Int("max-offsets", 1, "Maximum number of offsets to return")

	fs.Usage = func() {
		fmt.Println(`Usage: kwireprobe offsets [options]

Fetch available log offsets for a topic partition.

Options:`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *topic == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: -topic")
		fs.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *common.timeout)
	defer cancel()

	conn, err := common.connect(ctx)
	if err != nil {
		fatal(err)
	}
	defer conn.Close()

	req := protocol.OffsetRequest{
		ReplicaID: -1,
		Topics: wire.Array[protocol.OffsetRequestTopic, *protocol.OffsetRequestTopic]{
			{
				Name: wire.String(*topic),
				Partitions: wire.Array[protocol.OffsetRequestPartition, *protocol.OffsetRequestPartition]{
					{
						Partition:          wire.Int32(*partition),
						Time:               wire.Int64(*timeMs),
						MaxNumberOfOffsets: wire.Int32(*maxOffsets),
					},
				},
			},
		},
	}
	var resp protocol.OffsetResponse
	if err := conn.Exchange(ctx, &req, &resp); err != nil {
		fatal(err)
	}

	for _, rt := range resp.Topics {
		for _, p := range rt.Partitions {
			fmt.Printf("%s/%d [%s] offset=%d\n", rt.Name, p.Partition, errorName(p.ErrorCode), p.Offset)
		}
	}
}

func errorName(code wire.Int16) string {
	ec, ok := protocol.LookupErrorCode(int16(code))
	if !ok {
		return fmt.Sprintf("error %d", code)
	}
	return ec.String()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "kwireprobe: %v\n", err)
	os.Exit(1)
}
