package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"go-career-watcher/internal/models"
)

// MatchResult is the scorer's verdict for one listing.
type MatchResult struct {
	Recommend int    `json:"recommend"`
	Analysis  string `json:"analysis"`
}

// Client is the interface for scoring providers
type Client interface {
	// ScoreListing compares the resume text against one listing and returns
	// a 0-10 recommendation with a short rationale.
	ScoreListing(ctx context.Context, resumeText string, listing models.Listing) (*MatchResult, error)
}

// buildSystemPrompt creates the system instruction for the scoring model
func buildSystemPrompt() string {
	return `You are an expert recruiter. Compare the resume and the job description, and return ONLY valid JSON using double quotes: {"recommend": score (0-10), "analysis": explanation}.`
}

// buildUserPrompt combines the resume text and the listing payload
func buildUserPrompt(resumeText string, listing models.Listing) string {
	jobJSON, _ := json.Marshal(listing)
	return fmt.Sprintf("=== RESUME ===\n%s\n\n=== JOB DESCRIPTION ===\n%s", resumeText, string(jobJSON))
}
