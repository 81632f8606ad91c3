package app

import (
	"context"
	"fmt"
	"strings"
)

// showQuiz loads a quiz, runs the answering loop until the quiz is submitted
// or abandoned, then navigates wherever the loop decided.
func (a *App) showQuiz(ctx context.Context, quizID int) {
	token := a.token(ctx)

	quiz, err := a.api.Quiz(ctx, token, quizID)
	if err != nil {
		a.notifyError(err, "Failed to load quiz")
		return
	}

	a.view = ViewQuiz
	renderViewHeader(a.out, ViewQuiz)
	a.state.StartQuiz(quiz)

	next := a.runQuiz(ctx, token)
	a.state.FinishQuiz()

	switch next {
	case ViewCourseDetail:
		if course := a.state.Course(); course != nil {
			a.showCourseDetail(ctx, course.ID)
			return
		}
		a.navigate(ctx, ViewCourses)
	case ViewDashboard, ViewHome:
		a.navigate(ctx, next)
	}
	// ViewQuiz means input ended; the main loop will wind down.
}

// runQuiz is the answering state. It multiplexes typed commands with the
// countdown, which is canceled on every way out of this function.
func (a *App) runQuiz(ctx context.Context, token string) View {
	quiz := a.state.Quiz()
	remaining := quiz.TimeLimitMinutes * 60
	renderQuiz(a.out, *quiz, remaining)

	ticks, stopTicks := a.tick()
	defer stopTicks()
	cd := newCountdown(remaining, ticks)
	defer cd.Stop()

	tickCh := cd.C
	for {
		select {
		case <-ctx.Done():
			return ViewQuiz
		case value, ok := <-tickCh:
			if !ok {
				tickCh = nil
				continue
			}
			remaining = value
			renderTimer(a.out, remaining)
			if remaining > 0 {
				continue
			}
			fmt.Fprintln(a.out)
			a.notify(levelWarning, "Time is up. Submitting your answers.")
			cd.Stop()
			if a.submitQuiz(ctx, token, remaining) {
				return a.awaitResultCommand(ctx)
			}
			// Submission failed: stay in the answering state with the timer
			// stopped. A typed submit is the retry path.
		case line, ok := <-a.lines:
			if !ok {
				return ViewQuiz
			}
			if line == "" {
				continue
			}
			if next, done := a.handleQuizCommand(ctx, token, line, remaining, cd); done {
				return next
			}
		}
	}
}

func (a *App) handleQuizCommand(ctx context.Context, token, line string, remaining int, cd *countdown) (View, bool) {
	args := strings.Fields(line)
	switch strings.ToLower(args[0]) {
	case "answer":
		a.selectAnswer(args)
	case "submit":
		cd.Stop()
		if a.submitQuiz(ctx, token, remaining) {
			return a.awaitResultCommand(ctx), true
		}
	case "time":
		fmt.Fprintf(a.out, "time remaining: %s\n", formatTime(remaining))
	case "back":
		return ViewCourseDetail, true
	case "dashboard":
		return ViewDashboard, true
	case "home":
		return ViewHome, true
	default:
		fmt.Fprintln(a.out, "Commands: answer <question> <option>, submit, time, back")
	}
	return ViewQuiz, false
}

// selectAnswer records the chosen option and redraws the question so exactly
// one option shows as selected.
func (a *App) selectAnswer(args []string) {
	quiz := a.state.Quiz()

	questionNumber, ok := parseID(args, 1)
	if !ok || questionNumber > len(quiz.Questions) {
		fmt.Fprintln(a.out, "usage: answer <question> <option>")
		return
	}
	question := quiz.Questions[questionNumber-1]

	optionNumber, ok := parseID(args, 2)
	if !ok || optionNumber > len(question.Options) {
		fmt.Fprintf(a.out, "pick an option between 1 and %d\n", len(question.Options))
		return
	}

	a.state.SelectAnswer(question.ID, optionNumber-1)
	renderQuestion(a.out, questionNumber, question, optionNumber-1)
}

// submitQuiz posts the answer map with the elapsed whole minutes. On success
// the result is rendered and true returned; on failure the caller stays in
// the answering state.
func (a *App) submitQuiz(ctx context.Context, token string, remaining int) bool {
	quiz := a.state.Quiz()
	elapsedMinutes := (quiz.TimeLimitMinutes*60 - remaining) / 60

	attempt, err := a.api.SubmitQuiz(ctx, token, quiz.ID, a.state.Answers(), elapsedMinutes)
	if err != nil {
		a.notifyError(err, "Quiz submission failed")
		return false
	}

	renderQuizResult(a.out, attempt)
	return true
}

// awaitResultCommand is the result state: only navigation is left.
func (a *App) awaitResultCommand(ctx context.Context) View {
	for {
		fmt.Fprint(a.out, "\n> ")
		line, ok := a.readLine(ctx)
		if !ok {
			return ViewQuiz
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "course", "back":
			return ViewCourseDetail
		case "dashboard":
			return ViewDashboard
		case "home":
			return ViewHome
		default:
			fmt.Fprintln(a.out, "Type 'course' or 'dashboard'.")
		}
	}
}
