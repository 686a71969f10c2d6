package domain

// Beat is one atomic unit of narration with its own duration and an optional
// role tag (e.g. "hook", "cta") that templates use to require or forbid
// content patterns.
type Beat struct {
	Text            string   `json:"text"`
	DurationSeconds float64  `json:"duration_seconds"`
	Role            string   `json:"role,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// Script is the ordered beat sequence a render plan is compiled from.
type Script struct {
	Beats         []Beat `json:"beats"`
	StructureType string `json:"structure_type,omitempty"`
}

// TotalDuration is the sum of all beat durations.
func (s *Script) TotalDuration() float64 {
	var total float64
	for _, b := range s.Beats {
		total += b.DurationSeconds
	}
	return total
}

// Roles returns the set of role tags present among the beats.
func (s *Script) Roles() map[string]bool {
	roles := make(map[string]bool)
	for _, b := range s.Beats {
		if b.Role != "" {
			roles[b.Role] = true
		}
	}
	return roles
}
