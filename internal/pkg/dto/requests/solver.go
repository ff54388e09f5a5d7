package requests

import (
	"mailtime-service/internal/app/models"

	"github.com/goccy/go-json"
)

// SolverInput mirrors models.Input; it exists so inbound payloads can be
// validated before they reach the core.
type SolverInput struct {
	Emails []SolverEmail `json:"emails" validate:"required,dive"`
	Users  []SolverUser  `json:"users" validate:"required,min=1,dive"`
}

type SolverEmail struct {
	Subject  string `json:"subject" validate:"required"`
	Sender   string `json:"sender" validate:"required"`
	Receiver string `json:"receiver" validate:"required"`
	TimeSent string `json:"timeSent" validate:"required"`
}

type SolverUser struct {
	Name        string           `json:"name" validate:"required"`
	OfficeHours SolverOfficeHour `json:"officeHours" validate:"required"`
}

type SolverOfficeHour struct {
	Timezone string `json:"timeZone" validate:"required"`
	Start    int    `json:"start" validate:"gte=0,lte=23"`
	End      int    `json:"end" validate:"gte=1,lte=24"`
}

// Submission is a candidate's answer. Values stay raw so one malformed
// entry degrades to zero points for that user instead of failing the
// whole decode.
type Submission struct {
	Response map[string]json.RawMessage `json:"response"`
}

func (s Submission) ReportedSeconds(user string) (int64, bool) {
	raw, ok := s.Response[user]
	if !ok {
		return 0, false
	}
	var seconds int64
	if err := json.Unmarshal(raw, &seconds); err != nil {
		return 0, false
	}
	if seconds < 0 {
		return 0, false
	}
	return seconds, true
}

func (s SolverInput) ToModel() (models.Input, error) {
	input := models.Input{
		Emails: make([]models.Email, 0, len(s.Emails)),
		Users:  make([]models.User, 0, len(s.Users)),
	}
	for _, u := range s.Users {
		input.Users = append(input.Users, models.User{
			Name: u.Name,
			OfficeHours: models.OfficeHours{
				Timezone: u.OfficeHours.Timezone,
				Start:    u.OfficeHours.Start,
				End:      u.OfficeHours.End,
			},
		})
	}
	for _, e := range s.Emails {
		sentAt, err := parseTimestamp(e.TimeSent)
		if err != nil {
			return models.Input{}, err
		}
		input.Emails = append(input.Emails, models.Email{
			Subject:  e.Subject,
			Sender:   e.Sender,
			Receiver: e.Receiver,
			TimeSent: sentAt,
		})
	}
	return input, nil
}
