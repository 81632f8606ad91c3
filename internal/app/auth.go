package app

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"learnsmart/internal/api"
	"learnsmart/internal/session"
)

// restoreSession validates a stored token against the API on startup. Any
// failure clears the token and leaves the client anonymous; invalid tokens
// are never surfaced as errors.
func (a *App) restoreSession(ctx context.Context) {
	token := a.token(ctx)
	if token == "" {
		return
	}

	if session.TokenExpired(token, a.now()) {
		a.log.Debug("stored token expired, clearing")
		a.clearSession(ctx)
		return
	}

	user, err := a.api.Profile(ctx, token)
	if err != nil {
		a.log.Debug("session restore failed", "error", err)
		a.clearSession(ctx)
		return
	}

	a.state.SetUser(user)
}

func (a *App) clearSession(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Warn("credential store clear failed", "error", err)
	}
	a.state.ClearUser()
}

func (a *App) runLogin(ctx context.Context) {
	username, ok := a.prompt(ctx, "username: ")
	if !ok {
		return
	}
	password, ok := a.prompt(ctx, "password: ")
	if !ok {
		return
	}

	request := api.LoginRequest{Username: username, Password: password}
	if err := a.validate.Struct(request); err != nil {
		a.notify(levelDanger, validationMessage(err))
		return
	}

	auth, err := a.api.Login(ctx, request)
	if err != nil {
		a.notifyError(err, "Login failed. Please try again.")
		return
	}

	a.completeAuth(ctx, auth, "Login successful!")
}

func (a *App) runRegister(ctx context.Context) {
	username, ok := a.prompt(ctx, "username: ")
	if !ok {
		return
	}
	email, ok := a.prompt(ctx, "email: ")
	if !ok {
		return
	}
	password, ok := a.prompt(ctx, "password: ")
	if !ok {
		return
	}
	skillLevel, ok := a.prompt(ctx, "skill level (beginner/intermediate/advanced): ")
	if !ok {
		return
	}
	if skillLevel == "" {
		skillLevel = "beginner"
	}
	interests, ok := a.prompt(ctx, "interests (comma separated): ")
	if !ok {
		return
	}

	request := api.RegisterRequest{
		Username:   username,
		Email:      email,
		Password:   password,
		SkillLevel: skillLevel,
		Interests:  session.ParseInterests(interests),
	}
	if err := a.validate.Struct(request); err != nil {
		a.notify(levelDanger, validationMessage(err))
		return
	}

	auth, err := a.api.Register(ctx, request)
	if err != nil {
		a.notifyError(err, "Registration failed. Please try again.")
		return
	}

	a.completeAuth(ctx, auth, "Registration successful!")
}

func (a *App) completeAuth(ctx context.Context, auth api.AuthResponse, message string) {
	if err := a.store.Save(ctx, auth.AccessToken); err != nil {
		a.log.Warn("credential store save failed", "error", err)
	}
	a.state.SetUser(auth.User)
	a.notify(levelSuccess, message)
	a.navigate(ctx, ViewHome)
}

// logout discards local session state. No server call is needed.
func (a *App) logout(ctx context.Context) {
	a.clearSession(ctx)
	a.notify(levelInfo, "Logged out successfully")
	a.navigate(ctx, ViewHome)
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid input"
	}

	fieldError := fieldErrors[0]
	field := strings.ToLower(fieldError.Field())
	switch fieldError.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fieldError.Param() + " characters"
	}
	return field + " is invalid"
}
