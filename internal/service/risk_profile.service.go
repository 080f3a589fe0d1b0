package service

import (
	"fmt"
	"portfolioadvisor/internal/domain"
	"sort"
)

// RiskProfileService scores the fixed intake questionnaire and maps the
// result to a risk profile and its recommendations. One linear pass, no
// state between calls.
type RiskProfileService interface {
	Questions() []domain.RiskQuestion
	Score(answers map[int]string) (int, error)
	Classify(score int) domain.RiskProfile
	Recommend(profile domain.RiskProfile) domain.Recommendation
	Evaluate(answers map[int]string) (*RiskEvaluation, error)
}

type RiskEvaluation struct {
	Score          int                   `json:"score"`
	Profile        domain.RiskProfile    `json:"profile"`
	Recommendation domain.Recommendation `json:"recommendations"`
}

type riskProfileServiceHandler struct {
	questions      []domain.RiskQuestion
	profiles       []domain.RiskProfile
	defaultProfile domain.RiskProfile
}

// NewRiskProfileService asserts at load time that the profile ranges
// partition the reachable score range with no gaps or overlaps, and that
// the designated default profile exists.
func NewRiskProfileService(questions []domain.RiskQuestion, profiles []domain.RiskProfile, defaultProfileName string) (RiskProfileService, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: questionnaire has no questions", domain.ErrConfiguration)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: no risk profiles defined", domain.ErrConfiguration)
	}

	minScore, maxScore := 0, 0
	for _, question := range questions {
		if len(question.Options) == 0 {
			return nil, fmt.Errorf("%w: question %d has no options", domain.ErrConfiguration, question.ID)
		}
		lo, hi := question.Options[0].Score, question.Options[0].Score
		for _, option := range question.Options[1:] {
			if option.Score < lo {
				lo = option.Score
			}
			if option.Score > hi {
				hi = option.Score
			}
		}
		minScore += lo
		maxScore += hi
	}

	sorted := make([]domain.RiskProfile, len(profiles))
	copy(sorted, profiles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinScore < sorted[j].MinScore
	})

	if sorted[0].MinScore != minScore {
		return nil, fmt.Errorf("%w: risk profile ranges start at %d, want %d", domain.ErrConfiguration, sorted[0].MinScore, minScore)
	}
	if sorted[len(sorted)-1].MaxScore != maxScore {
		return nil, fmt.Errorf("%w: risk profile ranges end at %d, want %d", domain.ErrConfiguration, sorted[len(sorted)-1].MaxScore, maxScore)
	}
	for i, profile := range sorted {
		if profile.MaxScore < profile.MinScore {
			return nil, fmt.Errorf("%w: risk profile %s has inverted range", domain.ErrConfiguration, profile.Name)
		}
		if i > 0 && profile.MinScore != sorted[i-1].MaxScore+1 {
			return nil, fmt.Errorf("%w: risk profile ranges have a gap or overlap between %s and %s", domain.ErrConfiguration, sorted[i-1].Name, profile.Name)
		}
	}

	var defaultProfile *domain.RiskProfile
	for i := range sorted {
		if sorted[i].Name == defaultProfileName {
			defaultProfile = &sorted[i]
		}
	}
	if defaultProfile == nil {
		return nil, fmt.Errorf("%w: default risk profile %q is not defined", domain.ErrConfiguration, defaultProfileName)
	}

	return &riskProfileServiceHandler{
		questions:      questions,
		profiles:       sorted,
		defaultProfile: *defaultProfile,
	}, nil
}

func (h *riskProfileServiceHandler) Questions() []domain.RiskQuestion {
	questions := make([]domain.RiskQuestion, len(h.questions))
	copy(questions, h.questions)
	return questions
}

// Score sums the option weight selected for each question. A question
// missing from the answer set, or an answer value matching no option,
// contributes 0. Answers referencing unknown question ids are rejected
// before any scoring happens.
func (h *riskProfileServiceHandler) Score(answers map[int]string) (int, error) {
	known := map[int]bool{}
	for _, question := range h.questions {
		known[question.ID] = true
	}
	for id := range answers {
		if !known[id] {
			return 0, fmt.Errorf("%w: answer references unknown question id %d", domain.ErrInvalidInput, id)
		}
	}

	total := 0
	for _, question := range h.questions {
		value, ok := answers[question.ID]
		if !ok {
			continue
		}
		for _, option := range question.Options {
			if option.Value == value {
				total += option.Score
				break
			}
		}
	}

	return total, nil
}

// Classify returns the profile whose range contains the score, falling
// back to the configured default when nothing matches.
func (h *riskProfileServiceHandler) Classify(score int) domain.RiskProfile {
	for _, profile := range h.profiles {
		if profile.Contains(score) {
			return profile
		}
	}
	return h.defaultProfile
}

func (h *riskProfileServiceHandler) Recommend(profile domain.RiskProfile) domain.Recommendation {
	return domain.Recommendation{
		AssetAllocation:      profile.AssetAllocation,
		InvestmentStrategy:   strategyNotes[profile.Name],
		RebalancingFrequency: rebalancingCadence[profile.Name],
		KeyConsiderations:    keyConsiderations[profile.Name],
	}
}

func (h *riskProfileServiceHandler) Evaluate(answers map[int]string) (*RiskEvaluation, error) {
	score, err := h.Score(answers)
	if err != nil {
		return nil, err
	}
	profile := h.Classify(score)
	return &RiskEvaluation{
		Score:          score,
		Profile:        profile,
		Recommendation: h.Recommend(profile),
	}, nil
}

var strategyNotes = map[string][]string{
	"Conservative": {
		"Focus on high-grade bonds and dividend-paying stocks",
		"Maintain significant cash reserves for stability",
		"Avoid volatile assets like crypto and growth stocks",
		"Consider Treasury Inflation-Protected Securities (TIPS)",
	},
	"Moderate": {
		"Diversify across asset classes and geographies",
		"Include both growth and value stocks",
		"Maintain moderate bond allocation for stability",
		"Small crypto allocation for growth potential",
	},
	"Aggressive": {
		"Emphasize growth stocks and emerging markets",
		"Higher allocation to technology and innovation sectors",
		"Include alternative investments like crypto",
		"Minimize cash and low-yield bonds",
	},
}

var rebalancingCadence = map[string]string{
	"Conservative": "Quarterly - to maintain stability",
	"Moderate":     "Semi-annually - balanced approach",
	"Aggressive":   "Annually - let winners run",
}

var keyConsiderations = map[string][]string{
	"Conservative": {
		"Monitor interest rate changes affecting bond values",
		"Ensure adequate emergency fund outside investments",
		"Consider inflation impact on fixed-income investments",
		"Review allocation if time horizon changes",
	},
	"Moderate": {
		"Regularly review and rebalance portfolio",
		"Stay disciplined during market volatility",
		"Consider tax-efficient investment vehicles",
		"Monitor correlation between asset classes",
	},
	"Aggressive": {
		"Be prepared for significant short-term volatility",
		"Don't panic during market downturns",
		"Consider dollar-cost averaging for new investments",
		"Monitor concentration risk in growth sectors",
	},
}
