package session

import (
	"reflect"
	"testing"

	"learnsmart/internal/api"
)

func TestSelectAnswerKeepsLatestChoice(t *testing.T) {
	state := NewState()
	state.StartQuiz(api.Quiz{})

	state.SelectAnswer(7, 2)
	state.SelectAnswer(7, 0)
	state.SelectAnswer(7, 3)
	state.SelectAnswer(9, 1)

	answers := state.Answers()
	if len(answers) != 2 {
		t.Fatalf("expected one entry per question, got %v", answers)
	}
	if answers[7] != 3 {
		t.Fatalf("expected latest choice 3 for question 7, got %d", answers[7])
	}
	if answers[9] != 1 {
		t.Fatalf("expected choice 1 for question 9, got %d", answers[9])
	}
}

func TestStartQuizResetsAnswers(t *testing.T) {
	state := NewState()
	state.StartQuiz(api.Quiz{})
	state.SelectAnswer(1, 1)

	state.StartQuiz(api.Quiz{})
	if len(state.Answers()) != 0 {
		t.Fatalf("expected empty answer map after loading a quiz, got %v", state.Answers())
	}
}

func TestAnswersReturnsCopy(t *testing.T) {
	state := NewState()
	state.StartQuiz(api.Quiz{})
	state.SelectAnswer(1, 2)

	copied := state.Answers()
	copied[1] = 99

	if got, _ := state.Answer(1); got != 2 {
		t.Fatalf("mutating the copy must not touch session state, got %d", got)
	}
}

func TestParseInterests(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"ai, ml, ai", []string{"ai", "ml", "ai"}},
		{"  go ,, web , ", []string{"go", "web"}},
		{"", nil},
		{" , ,", nil},
	}

	for _, tc := range cases {
		got := ParseInterests(tc.raw)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseInterests(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	state := NewState()
	if state.IsAdmin() {
		t.Fatal("anonymous session must not be admin")
	}

	state.SetUser(api.User{Username: "carol", Role: "learner"})
	if state.IsAdmin() {
		t.Fatal("learner must not be admin")
	}

	state.SetUser(api.User{Username: "root", Role: api.RoleAdmin})
	if !state.IsAdmin() {
		t.Fatal("admin role must be recognized")
	}

	state.ClearUser()
	if state.LoggedIn() {
		t.Fatal("cleared session must be anonymous")
	}
}
