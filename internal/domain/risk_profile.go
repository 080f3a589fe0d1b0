package domain

type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

type RiskQuestion struct {
	ID       int              `json:"id"`
	Question string           `json:"question"`
	Options  []QuestionOption `json:"options"`
}

type RiskProfile struct {
	Name            string                 `json:"name"`
	MinScore        int                    `json:"minScore"`
	MaxScore        int                    `json:"maxScore"`
	Description     string                 `json:"description"`
	AssetAllocation map[AssetClass]float64 `json:"assetAllocation"`
	Characteristics []string               `json:"characteristics"`
}

func (p RiskProfile) Contains(score int) bool {
	return score >= p.MinScore && score <= p.MaxScore
}

type Recommendation struct {
	AssetAllocation      map[AssetClass]float64 `json:"assetAllocation"`
	InvestmentStrategy   []string               `json:"investmentStrategy"`
	RebalancingFrequency string                 `json:"rebalancingFrequency"`
	KeyConsiderations    []string               `json:"keyConsiderations"`
}

// DefaultRiskQuestions is the fixed intake questionnaire, defined once at
// process start.
func DefaultRiskQuestions() []RiskQuestion {
	return []RiskQuestion{
		{
			ID:       1,
			Question: "What is your investment time horizon?",
			Options: []QuestionOption{
				{Value: "1", Label: "Less than 2 years", Score: 1},
				{Value: "2", Label: "2-5 years", Score: 2},
				{Value: "3", Label: "5-10 years", Score: 3},
				{Value: "4", Label: "More than 10 years", Score: 4},
			},
		},
		{
			ID:       2,
			Question: "How would you react to a 20% portfolio decline?",
			Options: []QuestionOption{
				{Value: "1", Label: "Sell everything immediately", Score: 1},
				{Value: "2", Label: "Sell some positions", Score: 2},
				{Value: "3", Label: "Hold and wait for recovery", Score: 3},
				{Value: "4", Label: "Buy more at lower prices", Score: 4},
			},
		},
		{
			ID:       3,
			Question: "What percentage of your total wealth are you investing?",
			Options: []QuestionOption{
				{Value: "1", Label: "More than 75%", Score: 1},
				{Value: "2", Label: "50-75%", Score: 2},
				{Value: "3", Label: "25-50%", Score: 3},
				{Value: "4", Label: "Less than 25%", Score: 4},
			},
		},
		{
			ID:       4,
			Question: "What is your primary investment goal?",
			Options: []QuestionOption{
				{Value: "1", Label: "Capital preservation", Score: 1},
				{Value: "2", Label: "Income generation", Score: 2},
				{Value: "3", Label: "Balanced growth", Score: 3},
				{Value: "4", Label: "Maximum growth", Score: 4},
			},
		},
		{
			ID:       5,
			Question: "How familiar are you with investing?",
			Options: []QuestionOption{
				{Value: "1", Label: "Complete beginner", Score: 1},
				{Value: "2", Label: "Some knowledge", Score: 2},
				{Value: "3", Label: "Experienced investor", Score: 3},
				{Value: "4", Label: "Professional/Expert", Score: 4},
			},
		},
		{
			ID:       6,
			Question: "Which statement best describes your income?",
			Options: []QuestionOption{
				{Value: "1", Label: "Unstable, need access to funds", Score: 1},
				{Value: "2", Label: "Stable, but limited savings", Score: 2},
				{Value: "3", Label: "Stable with good savings", Score: 3},
				{Value: "4", Label: "High income with substantial savings", Score: 4},
			},
		},
	}
}

// DefaultRiskProfiles partitions the reachable score range (6-24) with no
// gaps or overlaps. The partition is asserted when the profiler is
// constructed, not assumed.
func DefaultRiskProfiles() []RiskProfile {
	return []RiskProfile{
		{
			Name:        "Conservative",
			MinScore:    6,
			MaxScore:    12,
			Description: "Focus on capital preservation with minimal volatility",
			AssetAllocation: map[AssetClass]float64{
				AssetClassEquity:      30,
				AssetClassFixedIncome: 60,
				AssetClassCrypto:      0,
				AssetClassCash:        10,
			},
			Characteristics: []string{
				"Low risk tolerance",
				"Capital preservation focused",
				"Stable income preference",
				"Short to medium time horizon",
			},
		},
		{
			Name:        "Moderate",
			MinScore:    13,
			MaxScore:    18,
			Description: "Balanced approach seeking steady growth with moderate risk",
			AssetAllocation: map[AssetClass]float64{
				AssetClassEquity:      60,
				AssetClassFixedIncome: 30,
				AssetClassCrypto:      5,
				AssetClassCash:        5,
			},
			Characteristics: []string{
				"Moderate risk tolerance",
				"Balanced growth objective",
				"Medium to long time horizon",
				"Diversified approach",
			},
		},
		{
			Name:        "Aggressive",
			MinScore:    19,
			MaxScore:    24,
			Description: "Growth-focused with higher risk tolerance for maximum returns",
			AssetAllocation: map[AssetClass]float64{
				AssetClassEquity:      80,
				AssetClassFixedIncome: 10,
				AssetClassCrypto:      8,
				AssetClassCash:        2,
			},
			Characteristics: []string{
				"High risk tolerance",
				"Growth maximization focus",
				"Long time horizon",
				"Comfortable with volatility",
			},
		},
	}
}

// DefaultProfileName is the fallback when a score lands outside every
// range. It is part of configuration, not an implicit code path.
const DefaultProfileName = "Moderate"
