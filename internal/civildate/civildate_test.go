package civildate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAtUsesPacificDayBoundary(t *testing.T) {
	cases := []struct {
		name    string
		instant time.Time
		want    string
	}{
		// PST (UTC-8): Pacific midnight is 08:00 UTC
		{"winter before midnight", time.Date(2026, 1, 15, 7, 59, 59, 0, time.UTC), "2026-01-14"},
		{"winter after midnight", time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC), "2026-01-15"},
		// PDT (UTC-7): Pacific midnight is 07:00 UTC
		{"summer before midnight", time.Date(2026, 6, 1, 6, 59, 59, 0, time.UTC), "2026-05-31"},
		{"summer after midnight", time.Date(2026, 6, 1, 7, 0, 0, 0, time.UTC), "2026-06-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, At(tc.instant))
		})
	}
}

func TestAtIgnoresInstantZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2026, 1, 15, 16, 30, 0, 0, tokyo) // 07:30 UTC
	require.Equal(t, "2026-01-14", At(instant))
}

func TestTodayShape(t *testing.T) {
	got := Today()
	parsed, err := time.Parse(Layout, got)
	require.NoError(t, err)
	require.Equal(t, got, parsed.Format(Layout))
}
