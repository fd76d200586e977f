package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"followup_tracker/internal/model"
)

func TestVisitCompleted_FlatListOnly(t *testing.T) {
	c := &model.Convert{Visits: []int{3}}

	assert.True(t, VisitCompleted(c, 3))
	assert.False(t, VisitCompleted(c, 4))
}

func TestVisitCompleted_StructuredListOnly(t *testing.T) {
	c := &model.Convert{
		FollowUpVisits: []model.FollowUpVisit{
			{VisitNumber: 3, IsCompleted: true},
			{VisitNumber: 4, IsCompleted: false},
		},
	}

	assert.True(t, VisitCompleted(c, 3))
	assert.False(t, VisitCompleted(c, 4), "present but not completed")
}

func TestVisitCompleted_EitherRepresentationSuffices(t *testing.T) {
	c := &model.Convert{
		Visits: []int{1},
		FollowUpVisits: []model.FollowUpVisit{
			{VisitNumber: 2, IsCompleted: true},
		},
	}

	assert.True(t, VisitCompleted(c, 1))
	assert.True(t, VisitCompleted(c, 2))
	assert.False(t, VisitCompleted(c, 3))
}

func TestVisitCompleted_NilConvert(t *testing.T) {
	assert.False(t, VisitCompleted(nil, 1))
}

func TestCompletedVisitCount_CountsAcrossRepresentations(t *testing.T) {
	c := &model.Convert{
		Visits: []int{1, 2},
		FollowUpVisits: []model.FollowUpVisit{
			{VisitNumber: 2, IsCompleted: true}, // overlaps with flat list
			{VisitNumber: 5, IsCompleted: true},
		},
	}

	assert.Equal(t, 3, CompletedVisitCount(c))
}

func TestMilestoneStatus_DefaultsToNotStarted(t *testing.T) {
	assert.Equal(t, model.MilestoneNotStarted, MilestoneStatus(nil, model.MilestoneWaterBaptism))

	g := &model.SpiritualGrowth{BelieverClass: model.MilestoneCompleted}
	assert.Equal(t, model.MilestoneCompleted, MilestoneStatus(g, model.MilestoneBelieverClass))
	assert.Equal(t, model.MilestoneNotStarted, MilestoneStatus(g, model.MilestoneWaterBaptism))
}

func TestMilestoneStatus_UnknownValuePassedThrough(t *testing.T) {
	// A value outside the known set is a server bug; show it, don't hide it.
	g := &model.SpiritualGrowth{WaterBaptism: "Scheduled"}
	assert.Equal(t, "Scheduled", MilestoneStatus(g, model.MilestoneWaterBaptism))
}

func TestMilestoneStatus_UnknownKey(t *testing.T) {
	g := &model.SpiritualGrowth{BelieverClass: model.MilestoneInProgress}
	assert.Equal(t, model.MilestoneNotStarted, MilestoneStatus(g, "bibleStudy"))
}
