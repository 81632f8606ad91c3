// Package session holds the client-side mirror of server state: the
// authenticated user, the course and quiz currently on screen, and the
// in-progress quiz answers. Everything here is transient except the access
// token, which lives in the credential store.
package session

import (
	"strings"

	"learnsmart/internal/api"
)

type State struct {
	user    *api.User
	course  *api.Course
	quiz    *api.Quiz
	answers map[int]int
}

func NewState() *State {
	return &State{answers: make(map[int]int)}
}

func (s *State) User() *api.User { return s.user }

func (s *State) SetUser(user api.User) {
	s.user = &user
}

func (s *State) ClearUser() {
	s.user = nil
}

func (s *State) LoggedIn() bool { return s.user != nil }

func (s *State) IsAdmin() bool {
	return s.user != nil && s.user.Role == api.RoleAdmin
}

func (s *State) Course() *api.Course { return s.course }

// SetCourse replaces the active course wholesale, the way each course detail
// load does.
func (s *State) SetCourse(course api.Course) {
	s.course = &course
}

func (s *State) Quiz() *api.Quiz { return s.quiz }

// StartQuiz replaces the active quiz and resets the answer map.
func (s *State) StartQuiz(quiz api.Quiz) {
	s.quiz = &quiz
	s.answers = make(map[int]int)
}

// FinishQuiz clears the active quiz once a result is shown or the quiz view
// is left.
func (s *State) FinishQuiz() {
	s.quiz = nil
	s.answers = make(map[int]int)
}

// SelectAnswer records the chosen option for a question, overwriting any
// earlier choice for the same question.
func (s *State) SelectAnswer(questionID, optionIndex int) {
	s.answers[questionID] = optionIndex
}

func (s *State) Answer(questionID int) (int, bool) {
	optionIndex, ok := s.answers[questionID]
	return optionIndex, ok
}

// Answers returns a copy of the answer map for submission.
func (s *State) Answers() map[int]int {
	copied := make(map[int]int, len(s.answers))
	for questionID, optionIndex := range s.answers {
		copied[questionID] = optionIndex
	}
	return copied
}

// ParseInterests splits a comma-separated interests string into a trimmed,
// empty-filtered list. Duplicates are kept; the server decides what to do
// with them.
func ParseInterests(raw string) []string {
	parts := strings.Split(raw, ",")
	interests := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		interests = append(interests, trimmed)
	}
	return interests
}
