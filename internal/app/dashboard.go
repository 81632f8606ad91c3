package app

import (
	"bytes"
	"context"
	"sync"
)

// loadDashboard renders the learner's aggregate progress, then fetches
// recommendations and AI insights concurrently. The two follow-up loads are
// independent: each renders into its own buffer and a failure in one never
// disturbs the other or the already-rendered dashboard.
func (a *App) loadDashboard(ctx context.Context) {
	token := a.token(ctx)

	dashboard, err := a.api.Dashboard(ctx, token)
	if err != nil {
		a.notifyError(err, "Failed to load dashboard")
		return
	}
	renderDashboard(a.out, dashboard)

	var recommendations, insights bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.loadRecommendations(ctx, token, &recommendations)
	}()
	go func() {
		defer wg.Done()
		a.loadInsights(ctx, token, &insights)
	}()
	wg.Wait()

	a.out.Write(recommendations.Bytes())
	a.out.Write(insights.Bytes())
}

// loadRecommendations failures are logged, not surfaced.
func (a *App) loadRecommendations(ctx context.Context, token string, out *bytes.Buffer) {
	courses, err := a.api.Recommendations(ctx, token)
	if err != nil {
		a.log.Warn("failed to load recommendations", "error", err)
		return
	}
	renderRecommendationList(out, courses)
}

func (a *App) loadInsights(ctx context.Context, token string, out *bytes.Buffer) {
	insights, err := a.api.LearningInsights(ctx, token)
	if err != nil {
		a.log.Warn("failed to load learning insights", "error", err)
		renderInsightsUnavailable(out)
		return
	}
	renderInsights(out, insights)
}
