package activity

import "testing"

func TestNewRecord_SentinelsBecomeNil(t *testing.T) {
	rec := NewRecord(RawRecord{
		PositionLat:  Sint32Invalid,
		PositionLong: Sint32Invalid,
		Altitude:     Uint16Invalid,
		Timestamp:    Uint32Invalid,
		Temperature:  Sint8Invalid,
		HeartRate:    Uint8Invalid,
	})

	if rec.PositionLat != nil || rec.PositionLong != nil {
		t.Error("invalid coordinates should be nil")
	}
	if rec.Altitude != nil {
		t.Error("invalid altitude should be nil")
	}
	if rec.Timestamp != nil {
		t.Error("invalid timestamp should be nil")
	}
	if rec.Temperature != nil {
		t.Error("invalid temperature should be nil")
	}
	if rec.HeartRate != nil {
		t.Error("invalid heart rate should be nil")
	}
	if rec.HasPosition() {
		t.Error("record without coordinates should not report a position")
	}
}

func TestNewRecord_ZeroIsNotAbsent(t *testing.T) {
	rec := NewRecord(RawRecord{})

	if !rec.HasPosition() {
		t.Fatal("zero coordinates are valid and should be present")
	}
	if *rec.PositionLat != 0 || *rec.PositionLong != 0 {
		t.Errorf("expected 0/0, got %d/%d", *rec.PositionLat, *rec.PositionLong)
	}
	if rec.Altitude == nil || *rec.Altitude != 0 {
		t.Error("zero altitude should be present")
	}
	if rec.Timestamp == nil || *rec.Timestamp != 0 {
		t.Error("zero timestamp should be present")
	}
	if rec.Temperature == nil || rec.HeartRate == nil {
		t.Error("zero temperature and heart rate should be present")
	}
}

func TestNewRecord_PartialPosition(t *testing.T) {
	rec := NewRecord(RawRecord{
		PositionLat:  536870912,
		PositionLong: Sint32Invalid,
		HeartRate:    120,
	})

	if rec.HasPosition() {
		t.Error("record with only latitude should not report a position")
	}
	if rec.HeartRate == nil || *rec.HeartRate != 120 {
		t.Error("heart rate should survive conversion")
	}
}

func TestStatus_Report(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusOK, "OK: ride.fit"},
		{StatusIncomplete, "Incomplete file: ride.fit"},
		{StatusDecodeError, "Error while parsing file: ride.fit"},
		{StatusUnsupportedData, "Unsupported data in file: ride.fit"},
		{StatusUnsupportedProtocolVersion, "Unsupported protocol version in file: ride.fit"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.Report("ride.fit"); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
