package protocol

import "testing"

func TestLookupErrorCode(t *testing.T) {
	cases := []struct {
		raw  int16
		want ErrorCode
		ok   bool
	}{
		{0, ErrorNone, true},
		{-1, ErrorUnknown, true},
		{1, ErrorOffsetOutOfRange, true},
		{6, ErrorNotLeaderForPartition, true},
		{12, ErrorOffsetMetadataTooLarge, true},
		{13, ErrorUnknown, false}, // intentionally unassigned
		{14, ErrorOffsetsLoadInProgress, true},
		{16, ErrorNotCoordinatorForConsumer, true},
		{17, ErrorUnknown, false},
		{20, ErrorUnknown, false},
		{-2, ErrorUnknown, false},
	}

	for _, tc := range cases {
		got, ok := LookupErrorCode(tc.raw)
		if ok != tc.ok {
			t.Errorf("LookupErrorCode(%d) ok = %v, want %v", tc.raw, ok, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("LookupErrorCode(%d) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := ErrorNone.String(); got != "NoError" {
		t.Errorf("ErrorNone.String() = %q, want %q", got, "NoError")
	}
	if got := ErrorUnknown.String(); got != "Unknown" {
		t.Errorf("ErrorUnknown.String() = %q, want %q", got, "Unknown")
	}
	if got := ErrorCode(13).String(); got != "Unresolved" {
		t.Errorf("ErrorCode(13).String() = %q, want %q", got, "Unresolved")
	}
}
