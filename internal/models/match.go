package models

type Verdict string

const (
	VerdictExcellent Verdict = "excellent"
	VerdictGood      Verdict = "good"
	VerdictFair      Verdict = "fair"
	VerdictPoor      Verdict = "poor"
)

const (
	StatusInSeason    = "in_season"
	StatusOutOfSeason = "out_of_season"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type MatchLocation struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Flower      Flower      `json:"flower"`
	Coordinates Coordinates `json:"coordinates"`
}

type BestDate struct {
	Date        string  `json:"date"`
	Probability float64 `json:"probability"`
	Confidence  string  `json:"confidence"`
	Label       string  `json:"label"`
}

type SeasonInfo struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	PeakMonths []int  `json:"peak_months"`
	Status     string `json:"status"`
}

type Recommendation struct {
	Verdict Verdict  `json:"verdict"`
	Message string   `json:"message"`
	Tips    []string `json:"tips"`
}

type Match struct {
	Rank           int            `json:"rank"`
	Location       MatchLocation  `json:"location"`
	MatchScore     int            `json:"match_score"`
	InSeason       bool           `json:"in_season"`
	BestDates      []BestDate     `json:"best_dates"`
	SeasonInfo     SeasonInfo     `json:"season_info"`
	Recommendation Recommendation `json:"recommendation"`
}

type MatchSummary struct {
	TotalMatches int `json:"total_matches"`
	Excellent    int `json:"excellent"`
	Good         int `json:"good"`
	Fair         int `json:"fair"`
	Poor         int `json:"poor"`
}

func Summarize(matches []Match) MatchSummary {
	s := MatchSummary{TotalMatches: len(matches)}
	for _, m := range matches {
		switch m.Recommendation.Verdict {
		case VerdictExcellent:
			s.Excellent++
		case VerdictGood:
			s.Good++
		case VerdictFair:
			s.Fair++
		case VerdictPoor:
			s.Poor++
		}
	}
	return s
}
