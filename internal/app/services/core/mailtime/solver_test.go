package mailtime

import (
	"mailtime-service/internal/app/models"
	"mailtime-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootSubject(t *testing.T) {
	assert.Equal(t, "Budget", RootSubject("Budget"))
	assert.Equal(t, "Budget", RootSubject("RE: Budget"))
	assert.Equal(t, "Budget", RootSubject("RE: RE: RE: Budget"))
	assert.Equal(t, "Fwd: RE: Budget", RootSubject("Fwd: RE: Budget"), "only leading prefixes are stripped")
	assert.Equal(t, "re: Budget", RootSubject("re: Budget"), "prefix match is case sensitive")
}

func TestSolverSolve(t *testing.T) {
	alice := models.User{Name: "alice", OfficeHours: models.OfficeHours{Timezone: "Asia/Singapore", Start: 8, End: 17}}
	bob := models.User{Name: "bob", OfficeHours: models.OfficeHours{Timezone: "Asia/Singapore", Start: 8, End: 17}}
	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)

	monday := func(hour, min, sec int) time.Time {
		return time.Date(2024, 1, 8, hour, min, sec, 0, loc)
	}

	t.Run("first message of a thread contributes nothing", func(t *testing.T) {
		input := models.Input{
			Users: []models.User{alice, bob},
			Emails: []models.Email{
				{Subject: "a", Sender: "alice", Receiver: "bob", TimeSent: monday(10, 0, 0)},
			},
		}
		output, err := NewSolver(BusinessHoursSegments).Solve(input)
		require.NoError(t, err)
		assert.Equal(t, int64(0), output.Response["alice"])
		assert.Equal(t, int64(0), output.Response["bob"])
	})

	t.Run("responses attributed to their sender", func(t *testing.T) {
		input := models.Input{
			Users: []models.User{alice, bob},
			Emails: []models.Email{
				{Subject: "a", Sender: "alice", Receiver: "bob", TimeSent: monday(10, 0, 0)},
				{Subject: "RE: a", Sender: "bob", Receiver: "alice", TimeSent: monday(10, 1, 0)},
				{Subject: "RE: RE: a", Sender: "alice", Receiver: "bob", TimeSent: monday(10, 3, 0)},
			},
		}
		output, err := NewSolver(BusinessHoursSegments).Solve(input)
		require.NoError(t, err)
		assert.Equal(t, int64(120), output.Response["alice"])
		assert.Equal(t, int64(60), output.Response["bob"])
	})

	t.Run("reply prefixes group into one conversation", func(t *testing.T) {
		// Out of order on purpose: grouping and sorting must restore the
		// thread before folding.
		input := models.Input{
			Users: []models.User{alice, bob},
			Emails: []models.Email{
				{Subject: "RE: a", Sender: "bob", Receiver: "alice", TimeSent: monday(10, 1, 0)},
				{Subject: "a", Sender: "alice", Receiver: "bob", TimeSent: monday(10, 0, 0)},
			},
		}
		output, err := NewSolver(BusinessHoursSegments).Solve(input)
		require.NoError(t, err)
		assert.Equal(t, int64(60), output.Response["bob"])
	})

	t.Run("average rounds half up", func(t *testing.T) {
		input := models.Input{
			Users: []models.User{alice, bob},
			Emails: []models.Email{
				{Subject: "a", Sender: "alice", Receiver: "bob", TimeSent: monday(10, 0, 0)},
				{Subject: "RE: a", Sender: "bob", Receiver: "alice", TimeSent: monday(10, 1, 0)},
				{Subject: "RE: RE: a", Sender: "alice", Receiver: "bob", TimeSent: monday(10, 2, 0)},
				{Subject: "RE: RE: RE: a", Sender: "bob", Receiver: "alice", TimeSent: monday(10, 3, 1)},
			},
		}
		output, err := NewSolver(BusinessHoursSegments).Solve(input)
		require.NoError(t, err)
		// bob responded in 60s and 61s; the mean 60.5 rounds up.
		assert.Equal(t, int64(61), output.Response["bob"])
	})

	t.Run("separate subjects are separate conversations", func(t *testing.T) {
		input := models.Input{
			Users: []models.User{alice, bob},
			Emails: []models.Email{
				{Subject: "a", Sender: "alice", Receiver: "bob", TimeSent: monday(10, 0, 0)},
				{Subject: "b", Sender: "bob", Receiver: "alice", TimeSent: monday(10, 1, 0)},
			},
		}
		output, err := NewSolver(BusinessHoursSegments).Solve(input)
		require.NoError(t, err)
		assert.Equal(t, int64(0), output.Response["alice"])
		assert.Equal(t, int64(0), output.Response["bob"])
	})

	t.Run("unknown sender fails the whole input", func(t *testing.T) {
		input := models.Input{
			Users: []models.User{alice},
			Emails: []models.Email{
				{Subject: "a", Sender: "mallory", Receiver: "alice", TimeSent: monday(10, 0, 0)},
			},
		}
		_, err := NewSolver(BusinessHoursSegments).Solve(input)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 422, customErr.StatusCode)
	})

	t.Run("invalid office hours fail the whole input", func(t *testing.T) {
		broken := models.User{Name: "carol", OfficeHours: models.OfficeHours{Timezone: "Asia/Singapore", Start: 17, End: 8}}
		input := models.Input{Users: []models.User{broken}}
		_, err := NewSolver(BusinessHoursSegments).Solve(input)
		assert.Error(t, err)
	})

	t.Run("every user appears in the output", func(t *testing.T) {
		idle := models.User{Name: "carol", OfficeHours: models.OfficeHours{Timezone: "Europe/Paris", Start: 9, End: 18}}
		input := models.Input{
			Users: []models.User{alice, bob, idle},
			Emails: []models.Email{
				{Subject: "a", Sender: "alice", Receiver: "bob", TimeSent: monday(10, 0, 0)},
				{Subject: "RE: a", Sender: "bob", Receiver: "alice", TimeSent: monday(10, 1, 0)},
			},
		}
		output, err := NewSolver(BusinessHoursSegments).Solve(input)
		require.NoError(t, err)
		require.Len(t, output.Response, 3)
		assert.Equal(t, int64(0), output.Response["carol"])
	})

	t.Run("concurrent folds are deterministic", func(t *testing.T) {
		var emails []models.Email
		subjects := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		for i, subject := range subjects {
			emails = append(emails,
				models.Email{Subject: subject, Sender: "alice", Receiver: "bob", TimeSent: monday(9, i, 0)},
				models.Email{Subject: "RE: " + subject, Sender: "bob", Receiver: "alice", TimeSent: monday(9, i, 30+i)},
			)
		}
		input := models.Input{Users: []models.User{alice, bob}, Emails: emails}

		first, err := NewSolver(BusinessHoursSegments).Solve(input)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := NewSolver(BusinessHoursSegments).Solve(input)
			require.NoError(t, err)
			assert.Equal(t, first.Response, again.Response)
		}
	})
}
