package timefmt

import (
	"testing"
)

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{1, "00:01"},
		{59, "00:59"},
		{60, "01:00"},
		{510, "08:30"},
		{599, "09:59"},
		{600, "10:00"},
		{1439, "23:59"},
		{1440, "24:00"},
		{6000, "100:00"},
	}
	for _, c := range cases {
		got, err := FormatMinutes(c.in)
		if err != nil {
			t.Fatalf("FormatMinutes(%d) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMinutes_Negative(t *testing.T) {
	if _, err := FormatMinutes(-1); err == nil {
		t.Fatal("FormatMinutes(-1) = nil error, want ErrNegativeMinutes")
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	for m := 0; m < 10000; m++ {
		s, err := FormatMinutes(m)
		if err != nil {
			t.Fatalf("FormatMinutes(%d) returned error: %v", m, err)
		}
		back, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q) returned error: %v", s, err)
		}
		if back != m {
			t.Fatalf("round trip %d -> %q -> %d", m, s, back)
		}
	}
}

func TestParseClock_Invalid(t *testing.T) {
	invalid := []string{"", "0830", "08:3a", "x:30", "08:-1", "08:60", "-1:00"}
	for _, s := range invalid {
		if _, err := ParseClock(s); err == nil {
			t.Errorf("ParseClock(%q) = nil error, want failure", s)
		}
	}
}

func TestMustFormatMinutes_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustFormatMinutes(-5) did not panic")
		}
	}()
	MustFormatMinutes(-5)
}
