package mailtime

import (
	"mailtime-service/internal/app/models"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/exceptions"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

// Solver computes per-user average response times over an input using the
// configured calculator.
type Solver struct {
	calculator Calculator
}

func NewSolver(calculator Calculator) *Solver {
	return &Solver{calculator: calculator}
}

type userTime struct {
	duration time.Duration
	count    int
}

func (u userTime) plus(other userTime) userTime {
	return userTime{duration: u.duration + other.duration, count: u.count + other.count}
}

// averageSeconds rounds half-up; a user with no responses averages zero.
func (u userTime) averageSeconds() int64 {
	if u.count == 0 {
		return 0
	}
	seconds := u.duration / time.Second
	return int64(math.Round(float64(seconds) / float64(u.count)))
}

// Solve groups emails into conversations by root subject, orders each by
// send time and attributes every response's duration to its sender.
// Conversations are independent, so they are folded concurrently and the
// per-user accumulators merged under a lock.
func (s *Solver) Solve(input models.Input) (models.Output, error) {
	usersByName := make(map[string]models.User, len(input.Users))
	for i := range input.Users {
		if err := input.Users[i].OfficeHours.Validate(); err != nil {
			return models.Output{}, err
		}
		usersByName[input.Users[i].Name] = input.Users[i]
	}

	for _, email := range input.Emails {
		if _, ok := usersByName[email.Sender]; !ok {
			return models.Output{}, exceptions.ErrUnknownUser(email.Sender)
		}
		if _, ok := usersByName[email.Receiver]; !ok {
			return models.Output{}, exceptions.ErrUnknownUser(email.Receiver)
		}
	}

	conversations := make(map[string][]models.Email)
	for _, email := range input.Emails {
		subject := RootSubject(email.Subject)
		conversations[subject] = append(conversations[subject], email)
	}

	results := make(map[string]userTime, len(input.Users))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, emails := range conversations {
		wg.Add(1)
		go func(emails []models.Email) {
			defer wg.Done()
			partial := s.reduceConversation(emails, usersByName)
			mu.Lock()
			for name, t := range partial {
				results[name] = results[name].plus(t)
			}
			mu.Unlock()
		}(emails)
	}
	wg.Wait()

	response := make(map[string]int64, len(input.Users))
	for _, user := range input.Users {
		response[user.Name] = results[user.Name].averageSeconds()
	}
	return models.Output{Response: response}, nil
}

// reduceConversation folds one thread: the first message contributes
// nothing, every later message is a response attributed to its sender.
func (s *Solver) reduceConversation(emails []models.Email, usersByName map[string]models.User) map[string]userTime {
	sort.SliceStable(emails, func(i, j int) bool {
		return emails[i].TimeSent.Before(emails[j].TimeSent)
	})

	partial := make(map[string]userTime)
	for i := 1; i < len(emails); i++ {
		previous, current := emails[i-1], emails[i]
		sender := usersByName[current.Sender]
		segments := s.calculator(sender, previous.TimeSent, current.TimeSent)
		partial[current.Sender] = partial[current.Sender].plus(userTime{
			duration: SumDurations(segments),
			count:    1,
		})
	}
	return partial
}

// RootSubject strips the leading reply prefixes off a subject line.
func RootSubject(subject string) string {
	for strings.HasPrefix(subject, constvars.SubjectReplyPrefix) {
		subject = strings.TrimPrefix(subject, constvars.SubjectReplyPrefix)
	}
	return subject
}
