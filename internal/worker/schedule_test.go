package worker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"domainsync/internal/worker"
)

func TestParseDailySchedule(t *testing.T) {
	for _, bad := range []string{"", "25:00", "7pm", "19:60", "19"} {
		_, err := worker.ParseDailySchedule(bad)
		require.Error(t, err, bad)
	}

	s, err := worker.ParseDailySchedule("07:05")
	require.NoError(t, err)
	require.Equal(t, "daily at 07:05 UTC", s.String())
}

func TestDailySchedule_Next(t *testing.T) {
	s, err := worker.ParseDailySchedule("19:00")
	require.NoError(t, err)

	tests := []struct {
		name    string
		current time.Time
		want    time.Time
	}{
		{
			name:    "before today's run",
			current: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			want:    time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC),
		},
		{
			name:    "exactly at run time moves to tomorrow",
			current: time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC),
			want:    time.Date(2025, 3, 11, 19, 0, 0, 0, time.UTC),
		},
		{
			name:    "after today's run",
			current: time.Date(2025, 12, 31, 20, 0, 0, 0, time.UTC),
			want:    time.Date(2026, 1, 1, 19, 0, 0, 0, time.UTC),
		},
		{
			name:    "local time is converted to UTC",
			current: time.Date(2025, 3, 10, 22, 30, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			want:    time.Date(2025, 3, 11, 19, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.want.Equal(s.Next(tt.current)), "got %s", s.Next(tt.current))
		})
	}
}
