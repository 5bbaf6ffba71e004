package engine

// ScoreParams is the linear scoring scheme. Any sign is accepted; a useful
// local alignment needs a positive Match and a negative Mismatch or Indel.
type ScoreParams struct {
	Match    int `json:"match"`
	Mismatch int `json:"mismatch"`
	Indel    int `json:"indel"`
}

// DefaultParams returns match=1, mismatch=-10, indel=-1.
func DefaultParams() ScoreParams {
	return ScoreParams{Match: 1, Mismatch: -10, Indel: -1}
}

func (p ScoreParams) substitution(same bool) int {
	if same {
		return p.Match
	}
	return p.Mismatch
}
