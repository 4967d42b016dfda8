package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michemobile/marketplace-api/internal/httperr"
)

func testNow() time.Time {
	return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
}

func validIntent() Intent {
	return Intent{
		ServiceID:      "svc-1",
		ProfessionalID: "pro-1",
		Date:           "2025-07-01",
		Time:           "10:00 AM",
		Location:       "Client's Home, Brooklyn",
	}
}

func TestIntentResolve(t *testing.T) {
	start, err := validIntent().Resolve(testNow())
	require.NoError(t, err)

	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, time.July, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 10, start.Hour())
	assert.Equal(t, 0, start.Minute())
}

func TestIntentResolveAfternoonSlot(t *testing.T) {
	in := validIntent()
	in.Time = "3:00 PM"

	start, err := in.Resolve(testNow())
	require.NoError(t, err)
	assert.Equal(t, 15, start.Hour())
}

func TestIntentIncomplete(t *testing.T) {
	cases := map[string]Intent{
		"no service":      {ProfessionalID: "p", Date: "2025-07-01", Time: "10:00 AM"},
		"no professional": {ServiceID: "s", Date: "2025-07-01", Time: "10:00 AM"},
		"no date":         {ServiceID: "s", ProfessionalID: "p", Time: "10:00 AM"},
		"no time":         {ServiceID: "s", ProfessionalID: "p", Date: "2025-07-01"},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, in.Complete())

			_, err := in.Resolve(testNow())
			assert.True(t, httperr.IsBusiness(err, "missing_selection"))
		})
	}
}

func TestIntentFieldsFillableInAnyOrder(t *testing.T) {
	// the gate cares about completeness, not about which field came last
	in := Intent{}
	in.Time = "10:00 AM"
	in.Date = "2025-07-01"
	in.ProfessionalID = "pro-1"
	assert.False(t, in.Complete())

	in.ServiceID = "svc-1"
	assert.True(t, in.Complete())
}

func TestIntentPastDateRejected(t *testing.T) {
	in := validIntent()
	in.Date = "2025-06-14"

	_, err := in.Resolve(testNow())
	assert.True(t, httperr.IsBusiness(err, "date_out_of_range"))
}

func TestIntentTodayAccepted(t *testing.T) {
	in := validIntent()
	in.Date = "2025-06-15"

	_, err := in.Resolve(testNow())
	assert.NoError(t, err)
}

func TestIntentWindowBoundary(t *testing.T) {
	in := validIntent()

	// exactly three calendar months out is still selectable
	in.Date = "2025-09-15"
	_, err := in.Resolve(testNow())
	assert.NoError(t, err)

	// one day past the window is not
	in.Date = "2025-09-16"
	_, err = in.Resolve(testNow())
	assert.True(t, httperr.IsBusiness(err, "date_out_of_range"))
}

func TestIntentMalformedInputs(t *testing.T) {
	in := validIntent()
	in.Date = "07/01/2025"
	_, err := in.Resolve(testNow())
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	in = validIntent()
	in.Time = "25:00"
	_, err = in.Resolve(testNow())
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}
