package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2025/07/01", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParse("2025-03-10"), MustParse("2025-03-01"))
	if r.From != MustParse("2025-03-01") {
		t.Fatalf("NewRange did not swap boundaries: %v", r)
	}
	for _, day := range []string{"2025-03-01", "2025-03-05", "2025-03-10"} {
		if !r.Contains(MustParse(day)) {
			t.Errorf("%v should contain %s", r, day)
		}
	}
	for _, day := range []string{"2025-02-28", "2025-03-11"} {
		if r.Contains(MustParse(day)) {
			t.Errorf("%v should not contain %s", r, day)
		}
	}
}

func TestTimeRoundTrip(t *testing.T) {
	in := `"2025-08-01 14:30:05"`
	var ts Time
	if err := json.Unmarshal([]byte(in), &ts); err != nil {
		t.Fatalf("Unmarshal(%s) failed: %v", in, err)
	}
	if got := ts.Date(); got != New(2025, time.August, 1) {
		t.Errorf("Date() = %v, want 2025-08-01", got)
	}
	out, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != in {
		t.Errorf("Marshal = %s, want %s", out, in)
	}
}

func TestAtTruncatesToSecond(t *testing.T) {
	now := time.Date(2025, time.August, 1, 10, 0, 0, 999_999_999, time.Local)
	ts := At(now)
	if ts.Time().Nanosecond() != 0 {
		t.Errorf("At() kept sub-second precision: %v", ts.Time())
	}
	back, err := ParseTime(ts.String())
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(ts) {
		t.Errorf("ParseTime(String()) = %v, want %v", back, ts)
	}
}

func TestTimeIsWallClock(t *testing.T) {
	// 02:30 does not exist in most of Europe on 2025-03-30: the label is kept as written.
	for _, in := range []string{"2025-03-30 02:30:00", "2025-10-26 02:30:00"} {
		ts, err := ParseTime(in)
		if err != nil {
			t.Fatalf("ParseTime(%q) failed: %v", in, err)
		}
		if got := ts.String(); got != in {
			t.Errorf("ParseTime(%q).String() = %q", in, got)
		}
	}

	// At keeps the reading of the clock in its own zone, whatever the zone.
	late := time.Date(2025, time.August, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	ts := At(late)
	if got := ts.String(); got != "2025-08-01 23:30:00" {
		t.Errorf("At(%v) = %q, want 2025-08-01 23:30:00", late, got)
	}
	if got := ts.Date(); got != New(2025, time.August, 1) {
		t.Errorf("At(%v).Date() = %v, want 2025-08-01", late, got)
	}
}

func TestParseDay(t *testing.T) {
	today := Today()
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "today", want: today},
		{in: "Yesterday", want: today.Add(-1)},
		{in: "2025-03-01", want: New(2025, time.March, 1)},
		{in: " 2025-3-1 ", want: New(2025, time.March, 1)},
		{in: "tomorrow", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDay(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDay(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseDay(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	if got := New(2025, time.March, 1).Add(-1); got != New(2025, time.February, 28) {
		t.Errorf("2025-03-01 - 1 day = %v, want 2025-02-28", got)
	}
}

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "January", want: 1},
		{in: "march", want: 3},
		{in: "SEP", want: 9},
		{in: "12", want: 12},
		{in: " May ", want: 5},
		{in: "Smarch", wantErr: true},
		{in: "13", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMonthJSON(t *testing.T) {
	out, err := json.Marshal(Month(2))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"February"` {
		t.Errorf("Marshal(February) = %s", out)
	}
	if _, err := json.Marshal(Month(0)); err == nil {
		t.Error("Marshal(Month(0)) should fail")
	}
	if got := Labels(); len(got) != 12 || got[0] != "January" || got[11] != "December" {
		t.Errorf("Labels() = %v", got)
	}
}
