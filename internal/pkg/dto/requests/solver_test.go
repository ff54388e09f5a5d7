package requests

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionReportedSeconds(t *testing.T) {
	var submission Submission
	require.NoError(t, json.Unmarshal([]byte(`{"response":{"alice":60,"bob":"soon","carol":-5,"dave":1.5}}`), &submission))

	t.Run("integer value", func(t *testing.T) {
		seconds, ok := submission.ReportedSeconds("alice")
		assert.True(t, ok)
		assert.Equal(t, int64(60), seconds)
	})

	t.Run("missing user", func(t *testing.T) {
		_, ok := submission.ReportedSeconds("eve")
		assert.False(t, ok)
	})

	t.Run("non-numeric value", func(t *testing.T) {
		_, ok := submission.ReportedSeconds("bob")
		assert.False(t, ok)
	})

	t.Run("negative value", func(t *testing.T) {
		_, ok := submission.ReportedSeconds("carol")
		assert.False(t, ok)
	})

	t.Run("fractional value", func(t *testing.T) {
		_, ok := submission.ReportedSeconds("dave")
		assert.False(t, ok)
	})
}

func TestSolverInputToModel(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		input := SolverInput{
			Users: []SolverUser{
				{Name: "alice", OfficeHours: SolverOfficeHour{Timezone: "Europe/Paris", Start: 9, End: 18}},
			},
			Emails: []SolverEmail{
				{Subject: "a", Sender: "alice", Receiver: "alice", TimeSent: "2024-01-08T12:00:00+01:00"},
			},
		}
		model, err := input.ToModel()
		require.NoError(t, err)
		require.Len(t, model.Emails, 1)
		assert.Equal(t, 12, model.Emails[0].TimeSent.Hour())
		assert.Equal(t, "Europe/Paris", model.Users[0].OfficeHours.Timezone)
	})

	t.Run("fractional seconds timestamp", func(t *testing.T) {
		input := SolverInput{
			Users: []SolverUser{
				{Name: "alice", OfficeHours: SolverOfficeHour{Timezone: "Europe/Paris", Start: 9, End: 18}},
			},
			Emails: []SolverEmail{
				{Subject: "a", Sender: "alice", Receiver: "alice", TimeSent: "2024-01-08T12:00:00.250+01:00"},
			},
		}
		model, err := input.ToModel()
		require.NoError(t, err)
		assert.Equal(t, 250_000_000, model.Emails[0].TimeSent.Nanosecond())
	})

	t.Run("unparseable timestamp", func(t *testing.T) {
		input := SolverInput{
			Emails: []SolverEmail{
				{Subject: "a", Sender: "alice", Receiver: "bob", TimeSent: "yesterday"},
			},
		}
		_, err := input.ToModel()
		assert.Error(t, err)
	})
}
