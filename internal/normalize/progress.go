package normalize

import "followup_tracker/internal/model"

// VisitCompleted reports whether the 1-based visit number is complete for
// the convert. The server has shipped two representations over time, a
// flat list of completed visit numbers and a structured followUpVisits
// list, and records may carry both; either marking the visit is enough.
func VisitCompleted(c *model.Convert, visitNumber int) bool {
	if c == nil {
		return false
	}
	for _, n := range c.Visits {
		if n == visitNumber {
			return true
		}
	}
	for _, v := range c.FollowUpVisits {
		if v.VisitNumber == visitNumber && v.IsCompleted {
			return true
		}
	}
	return false
}

// CompletedVisitCount returns how many of the follow-up visits are
// complete, counting each visit number once across both representations.
func CompletedVisitCount(c *model.Convert) int {
	count := 0
	for n := 1; n <= model.TotalFollowUpVisits; n++ {
		if VisitCompleted(c, n) {
			count++
		}
	}
	return count
}

// MilestoneStatus returns the stored status for a milestone key, defaulting
// to NotStarted when absent. A value outside the known set is returned
// verbatim: coercing it would hide a server bug from the person looking at
// the screen.
func MilestoneStatus(g *model.SpiritualGrowth, key string) string {
	if g == nil {
		return model.MilestoneNotStarted
	}

	var status string
	switch key {
	case model.MilestoneBelieverClass:
		status = g.BelieverClass
	case model.MilestoneWaterBaptism:
		status = g.WaterBaptism
	case model.MilestoneWorkersTraining:
		status = g.WorkersTraining
	}
	if status == "" {
		return model.MilestoneNotStarted
	}
	return status
}
