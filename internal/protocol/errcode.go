package protocol

// ErrorCode is a Kafka protocol error code carried in response payloads.
// The enumeration is closed: code 13 is intentionally unassigned and
// unrecognized values do not resolve.
// See: https://kafka.apache.org/protocol#protocol_error_codes
type ErrorCode int16

const (
	ErrorUnknown                         ErrorCode = -1
	ErrorNone                            ErrorCode = 0
	ErrorOffsetOutOfRange                ErrorCode = 1
	ErrorInvalidMessage                  ErrorCode = 2
	ErrorUnknownTopicOrPartition         ErrorCode = 3
	ErrorInvalidMessageSize              ErrorCode = 4
	ErrorLeaderNotAvailable              ErrorCode = 5
	ErrorNotLeaderForPartition           ErrorCode = 6
	ErrorRequestTimedOut                 ErrorCode = 7
	ErrorBrokerNotAvailable              ErrorCode = 8
	ErrorReplicaNotAvailable             ErrorCode = 9
	ErrorMessageSizeTooLarge             ErrorCode = 10
	ErrorStaleControllerEpoch            ErrorCode = 11
	ErrorOffsetMetadataTooLarge          ErrorCode = 12
	ErrorOffsetsLoadInProgress           ErrorCode = 14
	ErrorConsumerCoordinatorNotAvailable ErrorCode = 15
	ErrorNotCoordinatorForConsumer       ErrorCode = 16
)

var errorCodeNames = map[ErrorCode]string{
	ErrorUnknown:                         "Unknown",
	ErrorNone:                            "NoError",
	ErrorOffsetOutOfRange:                "OffsetOutOfRange",
	ErrorInvalidMessage:                  "InvalidMessage",
	ErrorUnknownTopicOrPartition:         "UnknownTopicOrPartition",
	ErrorInvalidMessageSize:              "InvalidMessageSize",
	ErrorLeaderNotAvailable:              "LeaderNotAvailable",
	ErrorNotLeaderForPartition:           "NotLeaderForPartition",
	ErrorRequestTimedOut:                 "RequestTimedOut",
	ErrorBrokerNotAvailable:              "BrokerNotAvailable",
	ErrorReplicaNotAvailable:             "ReplicaNotAvailable",
	ErrorMessageSizeTooLarge:             "MessageSizeTooLarge",
	ErrorStaleControllerEpoch:            "StaleControllerEpoch",
	ErrorOffsetMetadataTooLarge:          "OffsetMetadataTooLarge",
	ErrorOffsetsLoadInProgress:           "OffsetsLoadInProgress",
	ErrorConsumerCoordinatorNotAvailable: "ConsumerCoordinatorNotAvailable",
	ErrorNotCoordinatorForConsumer:       "NotCoordinatorForConsumer",
}

// LookupErrorCode resolves a raw error code from a response. Unassigned
// codes (including the intentionally unused 13) report ok == false and
// never coerce to a neighboring symbol.
func LookupErrorCode(code int16) (ErrorCode, bool) {
	c := ErrorCode(code)
	_, ok := errorCodeNames[c]
	if !ok {
		return ErrorUnknown, false
	}
	return c, true
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "Unresolved"
}
