package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/btdosparca/league-system/models"
	"github.com/btdosparca/league-system/rankings"
	"github.com/btdosparca/league-system/repositories"
)

const suggestionModel = "gemini-2.5-flash"

const minAttendees = 4

type SuggestionService interface {
	SuggestTeams(ctx context.Context, attendeeIDs []string) (*models.TeamSuggestion, error)
}

type suggestionService struct {
	client     *genai.Client
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

// NewSuggestionService builds the team-suggestion service. A nil client
// disables the feature and every call returns ErrSuggestionsNotConfigured.
func NewSuggestionService(client *genai.Client, playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository) SuggestionService {
	return &suggestionService{
		client:     client,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

var pairSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"player1": {Type: genai.TypeString},
		"player2": {Type: genai.TypeString},
	},
	Required: []string{"player1", "player2"},
}

var suggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"matchups": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"team_a": pairSchema,
					"team_b": pairSchema,
				},
				Required: []string{"team_a", "team_b"},
			},
		},
		"rationale": {Type: genai.TypeString},
	},
	Required: []string{"matchups", "rationale"},
}

type attendeeProfile struct {
	Name             string  `json:"name"`
	MatchesPlayed    int     `json:"matchesPlayed"`
	WinRate          float64 `json:"winRate"`
	PerformanceScore float64 `json:"performanceScore"`
}

func (s *suggestionService) SuggestTeams(ctx context.Context, attendeeIDs []string) (*models.TeamSuggestion, error) {
	if s.client == nil {
		return nil, ErrSuggestionsNotConfigured
	}
	if len(attendeeIDs) < minAttendees {
		return nil, ErrNotEnoughPlayers
	}

	profiles, err := s.attendeeProfiles(ctx, attendeeIDs)
	if err != nil {
		return nil, err
	}
	if len(profiles) < minAttendees {
		return nil, ErrNotEnoughPlayers
	}

	payload, err := json.Marshal(profiles)
	if err != nil {
		return nil, fmt.Errorf("encoding attendee profiles: %w", err)
	}

	prompt := strings.Join([]string{
		"You are organizing a beach tennis league night.",
		"Given the attending players and their current standings, propose doubles matchups where both teams have a similar combined performance score.",
		"Use every player at most once and refer to players by their exact names.",
		"Players: " + string(payload),
	}, " ")

	resp, err := s.client.Models.GenerateContent(ctx, suggestionModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   suggestionSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generating team suggestions: %w", err)
	}

	var suggestion models.TeamSuggestion
	if err := json.Unmarshal([]byte(resp.Text()), &suggestion); err != nil {
		return nil, fmt.Errorf("decoding team suggestions: %w", err)
	}
	return &suggestion, nil
}

// attendeeProfiles narrows the full standings down to the attending players.
func (s *suggestionService) attendeeProfiles(ctx context.Context, attendeeIDs []string) ([]attendeeProfile, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	standings := rankings.CalculateIndividual(matches, players, time.Now().UTC())
	attending := make(map[string]bool, len(attendeeIDs))
	for _, id := range attendeeIDs {
		attending[id] = true
	}

	profiles := make([]attendeeProfile, 0, len(attendeeIDs))
	for _, r := range standings {
		if !attending[r.PlayerID] {
			continue
		}
		profiles = append(profiles, attendeeProfile{
			Name:             r.Name,
			MatchesPlayed:    r.MatchesPlayed,
			WinRate:          r.WinRate,
			PerformanceScore: r.PerformanceScore,
		})
	}
	return profiles, nil
}
