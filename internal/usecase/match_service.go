package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/goal"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/highscorer"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/id"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/logging"
)

// MatchMetrics receives counters for score-keeping events.
type MatchMetrics interface {
	GoalRecorded(sportSlug string, ownGoal bool)
	PartialReconciliation(sportSlug string)
	FinalizeFallback(step string)
}

type noopMatchMetrics struct{}

func NewNoopMatchMetrics() MatchMetrics { return noopMatchMetrics{} }

func (noopMatchMetrics) GoalRecorded(string, bool)    {}
func (noopMatchMetrics) PartialReconciliation(string) {}
func (noopMatchMetrics) FinalizeFallback(string)      {}

// ViewInvalidator drops derived views after a match write.
type ViewInvalidator interface {
	InvalidateSport(ctx context.Context, sportID string)
}

type noopViewInvalidator struct{}

func (noopViewInvalidator) InvalidateSport(context.Context, string) {}

type MatchService struct {
	sportRepo      sport.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	goalRepo       goal.Repository
	highScorerRepo highscorer.Repository
	idGen          id.Generator
	metrics        MatchMetrics
	views          ViewInvalidator
	location       *time.Location
	logger         *logging.Logger
	now            func() time.Time
}

func NewMatchService(
	sportRepo sport.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	goalRepo goal.Repository,
	highScorerRepo highscorer.Repository,
	idGen id.Generator,
	metrics MatchMetrics,
	views ViewInvalidator,
	location *time.Location,
	logger *logging.Logger,
) *MatchService {
	if metrics == nil {
		metrics = NewNoopMatchMetrics()
	}
	if views == nil {
		views = noopViewInvalidator{}
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		sportRepo:      sportRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		goalRepo:       goalRepo,
		highScorerRepo: highScorerRepo,
		idGen:          idGen,
		metrics:        metrics,
		views:          views,
		location:       location,
		logger:         logger,
		now:            time.Now,
	}
}

// MatchDetail is a match with both sides resolved.
type MatchDetail struct {
	Sport sport.Sport
	Match match.Match
	Home  team.Team
	Away  team.Team
}

type ListMatchesInput struct {
	TeamID string
	// Date is a YYYY-MM-DD calendar day in the service location.
	Date     string
	Page     int
	PageSize int
}

type MatchList struct {
	Sport sport.Sport
	Page  match.Page
	Teams map[string]team.Team
}

func (s *MatchService) ListBySport(ctx context.Context, slug string, input ListMatchesInput) (MatchList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListBySport")
	defer span.End()

	filter := match.Filter{TeamID: strings.TrimSpace(input.TeamID), Location: s.location}
	if date := strings.TrimSpace(input.Date); date != "" {
		day, err := time.ParseInLocation(time.DateOnly, date, s.location)
		if err != nil {
			return MatchList{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		filter.Date = day
		filter.HasDate = true
	}
	if input.Page < 0 || input.PageSize < 0 {
		return MatchList{}, fmt.Errorf("%w: page and page size must be >= 0", ErrInvalidInput)
	}

	item, err := resolveSport(ctx, s.sportRepo, slug)
	if err != nil {
		return MatchList{}, err
	}
	snap, err := loadSnapshot(ctx, s.teamRepo, s.matchRepo, item)
	if err != nil {
		return MatchList{}, err
	}

	items := filter.Apply(snap.matches)
	match.SortByKickoff(items)
	return MatchList{
		Sport: item,
		Page:  match.Paginate(items, input.Page, input.PageSize),
		Teams: snap.teamIndex(),
	}, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, err
	}
	return s.detail(ctx, m)
}

func (s *MatchService) ListGoals(ctx context.Context, matchID string) ([]goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListGoals")
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	goals, err := s.goalRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list goals by match: %w", err)
	}
	goal.SortByMinute(goals)
	return goals, nil
}

type RecordGoalInput struct {
	MatchID    string
	TeamID     string
	PlayerName string
	Minute     int
	OwnGoal    bool
}

type RecordGoalResult struct {
	Goal  goal.Goal
	Score goal.Score
}

// RecordGoal appends a goal event and folds it into the match's cached score.
// The score is re-read after the insert. When the score write fails the event stays
// stored and the error wraps ErrPartialReconciliation; ResyncScore repairs it.
func (s *MatchService) RecordGoal(ctx context.Context, input RecordGoalInput) (RecordGoalResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordGoal", matchAttr(input.MatchID))
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.PlayerName = strings.TrimSpace(input.PlayerName)

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return RecordGoalResult{}, err
	}
	item, err := s.sportOf(ctx, m)
	if err != nil {
		return RecordGoalResult{}, err
	}
	if item.Kind() != sport.KindFootball {
		return RecordGoalResult{}, fmt.Errorf("%w: goals are only recorded for football matches", ErrInvalidInput)
	}
	if !m.Involves(input.TeamID) {
		return RecordGoalResult{}, fmt.Errorf("%w: team=%s is not playing match=%s", ErrInvalidInput, input.TeamID, m.ID)
	}

	goalID, err := s.idGen.NewID()
	if err != nil {
		return RecordGoalResult{}, fmt.Errorf("generate goal id: %w", err)
	}
	g := goal.Goal{
		ID:         goalID,
		MatchID:    m.ID,
		TeamID:     input.TeamID,
		PlayerName: input.PlayerName,
		Minute:     input.Minute,
		OwnGoal:    input.OwnGoal,
		CreatedAt:  s.now().UTC(),
	}
	if err := g.Validate(); err != nil {
		return RecordGoalResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.goalRepo.Insert(ctx, g); err != nil {
		return RecordGoalResult{}, fmt.Errorf("insert goal: %w", err)
	}
	s.metrics.GoalRecorded(item.Slug, g.OwnGoal)
	defer s.views.InvalidateSport(ctx, m.SportID)

	score, err := s.reconcile(ctx, g)
	if err != nil {
		s.metrics.PartialReconciliation(item.Slug)
		s.logger.ErrorContext(ctx, "goal stored but score not reconciled",
			"match_id", g.MatchID,
			"goal_id", g.ID,
			"error", err,
		)
		return RecordGoalResult{Goal: g}, fmt.Errorf("%w: match=%s goal=%s: %w", ErrPartialReconciliation, g.MatchID, g.ID, err)
	}

	return RecordGoalResult{Goal: g, Score: score}, nil
}

func (s *MatchService) reconcile(ctx context.Context, g goal.Goal) (goal.Score, error) {
	current, exists, err := s.matchRepo.GetByID(ctx, g.MatchID)
	if err != nil {
		return goal.Score{}, fmt.Errorf("re-read match: %w", err)
	}
	if !exists {
		return goal.Score{}, fmt.Errorf("re-read match: %w: match=%s", ErrNotFound, g.MatchID)
	}

	home, away := current.Scores()
	score, err := goal.Apply(goal.Score{Home: home, Away: away}, current.HomeTeamID, current.AwayTeamID, g)
	if err != nil {
		return goal.Score{}, err
	}
	if err := s.matchRepo.UpdateScore(ctx, current.ID, score.Home, score.Away); err != nil {
		return goal.Score{}, fmt.Errorf("update match score: %w", err)
	}
	return score, nil
}

// ResyncScore rebuilds the cached score from the full goal log.
func (s *MatchService) ResyncScore(ctx context.Context, matchID string) (goal.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ResyncScore", matchAttr(matchID))
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return goal.Score{}, err
	}
	goals, err := s.goalRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return goal.Score{}, fmt.Errorf("list goals by match: %w", err)
	}
	score, err := goal.Replay(m.HomeTeamID, m.AwayTeamID, goals)
	if err != nil {
		return goal.Score{}, fmt.Errorf("replay goals: %w", err)
	}
	if err := s.matchRepo.UpdateScore(ctx, m.ID, score.Home, score.Away); err != nil {
		return goal.Score{}, fmt.Errorf("update match score: %w", err)
	}
	s.views.InvalidateSport(ctx, m.SportID)

	s.logger.InfoContext(ctx, "match score resynced", "match_id", m.ID, "home", score.Home, "away", score.Away, "goals", len(goals))
	return score, nil
}

// UpdateStatusNote replaces the note label, keeping auxiliary fields such as the top scorer.
func (s *MatchService) UpdateStatusNote(ctx context.Context, matchID, label string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateStatusNote", matchAttr(matchID))
	defer span.End()

	label = strings.TrimSpace(label)
	if label == "" {
		return match.Match{}, fmt.Errorf("%w: status note is required", ErrInvalidInput)
	}
	if strings.Contains(label, "|") {
		return match.Match{}, fmt.Errorf("%w: status note must not contain '|'", ErrInvalidInput)
	}

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	note := m.Note()
	note.Label = label
	if err := s.matchRepo.UpdateStatus(ctx, m.ID, match.StatusUpdate{StatusNote: note.String()}); err != nil {
		return match.Match{}, fmt.Errorf("update match status: %w", err)
	}
	s.views.InvalidateSport(ctx, m.SportID)

	m.StatusNote = note.String()
	return m, nil
}

type FinalizeResult struct {
	Match match.Match
	// Fallbacks counts degraded attempts taken before a write was accepted.
	Fallbacks int
}

// Finalize marks a match final. Stores whose status enum rejects "final" get "Final";
// if that is rejected too only the note is written.
func (s *MatchService) Finalize(ctx context.Context, matchID string) (FinalizeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Finalize", matchAttr(matchID))
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return FinalizeResult{}, err
	}

	statuses := []string{match.StatusFinal, match.NoteLabelFinal}
	attempts := make([]match.StatusUpdate, 0, len(statuses)+1)
	for i := range statuses {
		attempts = append(attempts, match.StatusUpdate{Status: &statuses[i], StatusNote: match.NoteLabelFinal})
	}
	attempts = append(attempts, match.StatusUpdate{StatusNote: match.NoteLabelFinal})

	for i, attempt := range attempts {
		err := s.matchRepo.UpdateStatus(ctx, m.ID, attempt)
		if err == nil {
			if attempt.Status != nil {
				m.Status = *attempt.Status
			}
			m.StatusNote = attempt.StatusNote
			s.views.InvalidateSport(ctx, m.SportID)
			return FinalizeResult{Match: m, Fallbacks: i}, nil
		}
		if !errors.Is(err, match.ErrStatusRejected) || i == len(attempts)-1 {
			return FinalizeResult{}, fmt.Errorf("finalize match: %w", err)
		}

		step := "note_only"
		if next := attempts[i+1]; next.Status != nil {
			step = *next.Status
		}
		s.metrics.FinalizeFallback(step)
		s.logger.WarnContext(ctx, "store rejected match status, degrading",
			"match_id", m.ID,
			"next", step,
			"error", err,
		)
	}
	return FinalizeResult{}, fmt.Errorf("finalize match: no attempt accepted")
}

type SetScoreInput struct {
	MatchID   string
	HomeScore int
	AwayScore int
	TopScorer string
}

// SetBasketballScore overwrites the score of a basketball match and marks it started,
// recording the top scorer in the note when given.
func (s *MatchService) SetBasketballScore(ctx context.Context, input SetScoreInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SetBasketballScore", matchAttr(input.MatchID))
	defer span.End()

	if input.HomeScore < 0 || input.AwayScore < 0 {
		return match.Match{}, fmt.Errorf("%w: scores must be >= 0", ErrInvalidInput)
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}
	if err := s.requireBasketball(ctx, m); err != nil {
		return match.Match{}, err
	}

	note := match.StartedNote(input.TopScorer)
	if err := s.matchRepo.UpdateScore(ctx, m.ID, input.HomeScore, input.AwayScore); err != nil {
		return match.Match{}, fmt.Errorf("update match score: %w", err)
	}
	if err := s.matchRepo.UpdateStatus(ctx, m.ID, match.StatusUpdate{StatusNote: note.String()}); err != nil {
		return match.Match{}, fmt.Errorf("update match status: %w", err)
	}
	s.views.InvalidateSport(ctx, m.SportID)

	home, away := input.HomeScore, input.AwayScore
	m.HomeScore, m.AwayScore = &home, &away
	m.StatusNote = note.String()
	return m, nil
}

type RecordHighestScorerInput struct {
	MatchID    string
	TeamID     string
	PlayerName string
}

// RecordHighestScorer adds one nomination to a player's tally; the match score is untouched.
func (s *MatchService) RecordHighestScorer(ctx context.Context, input RecordHighestScorerInput) (highscorer.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordHighestScorer", matchAttr(input.MatchID))
	defer span.End()

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return highscorer.Event{}, err
	}
	if err := s.requireBasketball(ctx, m); err != nil {
		return highscorer.Event{}, err
	}
	teamID := strings.TrimSpace(input.TeamID)
	if !m.Involves(teamID) {
		return highscorer.Event{}, fmt.Errorf("%w: team=%s is not playing match=%s", ErrInvalidInput, teamID, m.ID)
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return highscorer.Event{}, fmt.Errorf("generate highest scorer id: %w", err)
	}
	e := highscorer.Event{
		ID:         eventID,
		MatchID:    m.ID,
		TeamID:     teamID,
		PlayerName: strings.TrimSpace(input.PlayerName),
		CreatedAt:  s.now().UTC(),
	}
	if err := e.Validate(); err != nil {
		return highscorer.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.highScorerRepo.Insert(ctx, e); err != nil {
		return highscorer.Event{}, fmt.Errorf("insert highest scorer: %w", err)
	}
	s.views.InvalidateSport(ctx, m.SportID)
	return e, nil
}

func (s *MatchService) requireBasketball(ctx context.Context, m match.Match) error {
	item, err := s.sportOf(ctx, m)
	if err != nil {
		return err
	}
	if item.Kind() != sport.KindBasketball {
		return fmt.Errorf("%w: match=%s is not a basketball match", ErrInvalidInput, m.ID)
	}
	return nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *MatchService) sportOf(ctx context.Context, m match.Match) (sport.Sport, error) {
	item, exists, err := s.sportRepo.GetByID(ctx, m.SportID)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("get sport: %w", err)
	}
	if !exists {
		return sport.Sport{}, fmt.Errorf("%w: sport=%s", ErrNotFound, m.SportID)
	}
	return item, nil
}

func (s *MatchService) detail(ctx context.Context, m match.Match) (MatchDetail, error) {
	item, err := s.sportOf(ctx, m)
	if err != nil {
		return MatchDetail{}, err
	}
	home, err := s.getTeam(ctx, m.HomeTeamID)
	if err != nil {
		return MatchDetail{}, err
	}
	away, err := s.getTeam(ctx, m.AwayTeamID)
	if err != nil {
		return MatchDetail{}, err
	}
	if err := match.CheckTeams(m, home, away); err != nil {
		s.logger.WarnContext(ctx, "match teams inconsistent with sport", "match_id", m.ID, "error", err)
	}
	return MatchDetail{Sport: item, Match: m, Home: home, Away: away}, nil
}

func (s *MatchService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return t, nil
}
