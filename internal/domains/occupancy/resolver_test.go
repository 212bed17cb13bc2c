package occupancy_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/occupancy"

	"github.com/stretchr/testify/assert"
)

type suite struct {
	Status   string
	Guest    *string
	CheckOut *time.Time
	Paid     float64
}

func (s suite) Engaged() bool          { return s.Status == "Occupied" }
func (s suite) CheckOutAt() *time.Time { return s.CheckOut }
func (s suite) Vacated() suite         { return suite{Status: "Available", Paid: s.Paid} }

func TestLapsed(t *testing.T) {
	now := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	before := now.Add(-time.Minute)
	after := now.Add(time.Minute)

	assert.True(t, occupancy.Lapsed(true, &before, now))
	assert.False(t, occupancy.Lapsed(true, &now, now), "equal instants are not past")
	assert.False(t, occupancy.Lapsed(true, &after, now))
	assert.False(t, occupancy.Lapsed(true, nil, now))
	assert.False(t, occupancy.Lapsed(false, &before, now))
}

func TestResolve(t *testing.T) {
	guest := "Asha"
	now := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		record suite
		want   suite
	}{
		{
			name:   "lapsed stay is vacated",
			record: suite{Status: "Occupied", Guest: &guest, CheckOut: &past, Paid: 2400},
			want:   suite{Status: "Available", Paid: 2400},
		},
		{
			name:   "checkout exactly now passes through",
			record: suite{Status: "Occupied", Guest: &guest, CheckOut: &now},
			want:   suite{Status: "Occupied", Guest: &guest, CheckOut: &now},
		},
		{
			name:   "future checkout passes through",
			record: suite{Status: "Occupied", Guest: &guest, CheckOut: &future},
			want:   suite{Status: "Occupied", Guest: &guest, CheckOut: &future},
		},
		{
			name:   "maintenance with stale checkout passes through",
			record: suite{Status: "Maintenance", CheckOut: &past},
			want:   suite{Status: "Maintenance", CheckOut: &past},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, occupancy.Resolve(tt.record, now))
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	guest := "Asha"
	now := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	once := occupancy.Resolve(suite{Status: "Occupied", Guest: &guest, CheckOut: &past, Paid: 10}, now)
	twice := occupancy.Resolve(once, now)

	assert.Equal(t, once, twice)
}

func TestResolveAll(t *testing.T) {
	now := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	records := []suite{{Status: "Occupied", CheckOut: &past}, {Status: "Cleaning"}}

	resolved := occupancy.ResolveAll(records, now)

	assert.Equal(t, []suite{{Status: "Available"}, {Status: "Cleaning"}}, resolved)
	assert.Equal(t, "Occupied", records[0].Status)
}
