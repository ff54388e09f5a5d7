package mailtime

import (
	"mailtime-service/internal/app/models"
	"mailtime-service/internal/pkg/constvars"
	"math/rand"
	"time"
)

const allowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// threadEpoch anchors every generated thread; the first email of a thread
// is sent during the sender's office hours on this day.
var threadEpoch = time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

var officeHoursPool = []models.OfficeHours{
	{Timezone: "Europe/Paris", Start: 9, End: 18},
	{Timezone: "Australia/Sydney", Start: 10, End: 18},
	{Timezone: "Asia/Singapore", Start: 8, End: 17},
	{Timezone: "Hongkong", Start: 8, End: 17},
	{Timezone: "America/New_York", Start: 10, End: 18},
	{Timezone: "America/Los_Angeles", Start: 7, End: 16},
}

// Generator fabricates synthetic inputs. The random source is injected so
// generated data is reproducible under test while the solver itself stays
// deterministic.
type Generator struct {
	rand *rand.Rand
}

func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// Generate builds a sized input: a pool of users with fixed office hours
// and a pile of interleaved, shuffled email threads.
func (g *Generator) Generate(level Level) models.Input {
	users := make([]models.User, 0, level.UserCount)
	for i := 0; i < level.UserCount; i++ {
		users = append(users, models.User{
			Name:        g.randomString(5),
			OfficeHours: officeHoursPool[g.rand.Intn(len(officeHoursPool))],
		})
	}

	var emails []models.Email
	threadCount := level.threadCount(g.rand)
	for i := 0; i < threadCount; i++ {
		participants := g.shuffledUsers(users)
		if len(participants) > level.UsersPerThread {
			participants = participants[:level.UsersPerThread]
		}
		emails = append(emails, g.generateThread(participants, level.responsesPerThread(g.rand))...)
	}
	g.rand.Shuffle(len(emails), func(i, j int) {
		emails[i], emails[j] = emails[j], emails[i]
	})

	return models.Input{Emails: emails, Users: users}
}

// generateThread produces a seed email plus responses; each response is
// authored by the previous receiver and addressed to another participant.
func (g *Generator) generateThread(participants []models.User, length int) []models.Email {
	if len(participants) < 2 || length == 0 {
		return nil
	}
	byName := make(map[string]models.User, len(participants))
	for _, u := range participants {
		byName[u.Name] = u
	}

	sender, receiver := participants[0], participants[1]
	seedDay := threadEpoch.In(sender.OfficeHours.Location())
	start := time.Date(seedDay.Year(), seedDay.Month(), seedDay.Day(), 0, 0, 0, 0, sender.OfficeHours.Location())

	emails := []models.Email{{
		Subject:  g.randomString(10),
		Sender:   sender.Name,
		Receiver: receiver.Name,
		TimeSent: g.randomTimeSince(start, sender.OfficeHours),
	}}
	for len(emails) < length {
		previous := emails[len(emails)-1]
		responder := byName[previous.Receiver]
		emails = append(emails, models.Email{
			Subject:  constvars.SubjectReplyPrefix + previous.Subject,
			Sender:   responder.Name,
			Receiver: g.randomOtherUser(participants, responder.Name).Name,
			TimeSent: g.generateResponseTime(previous.TimeSent, responder),
		})
	}
	return emails
}

func (g *Generator) randomOtherUser(participants []models.User, exclude string) models.User {
	others := make([]models.User, 0, len(participants))
	for _, u := range participants {
		if u.Name != exclude {
			others = append(others, u)
		}
	}
	return others[g.rand.Intn(len(others))]
}

// generateResponseTime picks an instant inside the responder's office
// hours at or after the received instant, occasionally pushing the answer
// a day further, and never lands on a weekend.
func (g *Generator) generateResponseTime(received time.Time, responder models.User) time.Time {
	responded := g.randomTimeSince(received, responder.OfficeHours)
	if responded.Before(received) {
		responded = responded.AddDate(0, 0, 1)
	}
	// A quarter of responses skip the next working day entirely.
	if g.rand.Intn(4) == 0 {
		responded = responded.AddDate(0, 0, 1)
	}
	switch responded.Weekday() {
	case time.Saturday:
		responded = responded.AddDate(0, 0, 2)
	case time.Sunday:
		responded = responded.AddDate(0, 0, 1)
	}
	return responded
}

// randomTimeSince keeps the local date of from and rerolls the clock to a
// random second inside the office-hours window.
func (g *Generator) randomTimeSince(from time.Time, oh models.OfficeHours) time.Time {
	local := from.In(oh.Location())
	return time.Date(
		local.Year(), local.Month(), local.Day(),
		oh.Start+g.rand.Intn(oh.End-oh.Start),
		g.rand.Intn(60),
		g.rand.Intn(60),
		0,
		oh.Location(),
	)
}

func (g *Generator) shuffledUsers(users []models.User) []models.User {
	shuffled := make([]models.User, len(users))
	copy(shuffled, users)
	g.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func (g *Generator) randomString(length int) string {
	out := make([]byte, length)
	for i := range out {
		out[i] = allowedChars[g.rand.Intn(len(allowedChars))]
	}
	return string(out)
}
