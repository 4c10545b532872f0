// Package name extracts the candidate's name by weighted consensus voting
// over independent strategies. Each strategy proposes (value, confidence)
// pairs; a candidate's total score is the sum of confidence × strategy
// weight across every strategy that proposed it; highest total wins, ties
// broken by first-seen order.
package name

import (
	"context"
	"log/slog"
	"strings"
)

type weightedStrategy struct {
	strategy Strategy
	weight   float64
}

// Engine runs the strategy list and aggregates the vote.
type Engine struct {
	strategies []weightedStrategy
	logger     *slog.Logger
}

// Result is the winning name with its aggregate confidence and the
// strategies that voted for it.
type Result struct {
	Name       string
	Confidence float64
	Strategies []string
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger: logger,
		strategies: []weightedStrategy{
			{topLinesStrategy{}, 0.35},
			{entityStrategy{}, 0.25},
			{emailDerivedStrategy{}, 0.20},
			{patternStrategy{}, 0.10},
			{headerLabelStrategy{}, 0.05},
			{contactAdjacencyStrategy{}, 0.05},
		},
	}
}

type tally struct {
	score   float64
	weight  float64
	order   int
	display string
	voters  []string
}

// Extract runs every strategy and returns the consensus winner, or an empty
// Result when no strategy produced a valid candidate.
func (e *Engine) Extract(ctx context.Context, doc Document) Result {
	votes := make(map[string]*tally)
	order := 0

	for _, ws := range e.strategies {
		candidates := safeExtract(ctx, ws.strategy, doc)
		counted := make(map[string]bool)
		for _, c := range candidates {
			key := voteKey(c.Value)
			if key == "" {
				continue
			}
			v, ok := votes[key]
			if !ok {
				v = &tally{order: order, display: displayName(c.Value)}
				votes[key] = v
				order++
			}
			v.score += c.Confidence * ws.weight
			if !counted[key] {
				counted[key] = true
				v.weight += ws.weight
				v.voters = append(v.voters, ws.strategy.Name())
			}
		}
	}

	var winner *tally
	for _, v := range votes {
		if winner == nil || v.score > winner.score ||
			(v.score == winner.score && v.order < winner.order) {
			winner = v
		}
	}
	if winner == nil {
		return Result{}
	}

	conf := winner.score / winner.weight
	if conf > 1 {
		conf = 1
	}
	e.logger.Debug("name.vote.winner",
		"name", winner.display,
		"score", winner.score,
		"confidence", conf,
		"strategies", strings.Join(winner.voters, ","),
	)
	return Result{Name: winner.display, Confidence: conf, Strategies: winner.voters}
}

// safeExtract absorbs a panicking strategy into an empty contribution.
func safeExtract(ctx context.Context, s Strategy, doc Document) (out []Candidate) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
		}
	}()
	return s.Extract(ctx, doc)
}

// voteKey folds case so "JANE DOE" and "Jane Doe" are the same candidate.
func voteKey(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}

// displayName renders the candidate in title case when it arrived all-caps.
func displayName(value string) string {
	words := strings.Fields(value)
	if !isAllCaps(value) {
		return strings.Join(words, " ")
	}
	for i, w := range words {
		words[i] = titleCaseWord(w)
	}
	return strings.Join(words, " ")
}
