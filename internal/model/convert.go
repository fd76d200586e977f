package model

const (
	MilestoneNotStarted = "NotStarted"
	MilestoneInProgress = "InProgress"
	MilestoneCompleted  = "Completed"
)

// Milestone keys accepted by PATCH /converts/:id/milestones.
const (
	MilestoneBelieverClass   = "believerClass"
	MilestoneWaterBaptism    = "waterBaptism"
	MilestoneWorkersTraining = "workersTraining"
)

// TotalFollowUpVisits is the length of the follow-up sequence every convert
// goes through.
const TotalFollowUpVisits = 8

// VisitTitles names the eight follow-up visits, indexed by visit number - 1.
var VisitTitles = [TotalFollowUpVisits]string{
	"Welcome & Introduction",
	"Assurance of Salvation",
	"The New Birth",
	"The Word of God",
	"Prayer",
	"The Holy Spirit",
	"Water Baptism",
	"Church & Fellowship",
}

// FollowUpVisit is the structured visit record newer API versions return.
type FollowUpVisit struct {
	VisitNumber int    `json:"visitNumber"`
	Title       string `json:"title,omitempty"`
	VisitDate   string `json:"visitDate,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

// SpiritualGrowth holds the three milestone statuses. Values are kept as
// plain strings rather than a closed enum: an unexpected value from the
// server is displayed verbatim instead of being coerced.
type SpiritualGrowth struct {
	BelieverClass   string `json:"believerClass,omitempty"`
	WaterBaptism    string `json:"waterBaptism,omitempty"`
	WorkersTraining string `json:"workersTraining,omitempty"`
}

// Convert mirrors the server's convert record. The client never derives
// state from it beyond visit-completion and milestone lookup; it is fetched
// per screen and discarded on navigation away.
//
// Visits exist in two representations that may coexist: the legacy flat
// Visits list of completed visit numbers, and the structured FollowUpVisits
// list. Either marking a visit complete is sufficient.
type Convert struct {
	ID             string           `json:"id,omitempty"`
	MongoID        string           `json:"_id,omitempty"`
	Name           string           `json:"name"`
	Phone          string           `json:"phone"`
	Whatsapp       string           `json:"whatsapp,omitempty"`
	HouseAddress   string           `json:"houseAddress"`
	DateBornAgain  string           `json:"dateBornAgain"`
	AgeGroup       string           `json:"ageGroup"`
	Gender         string           `json:"gender"`
	MaritalStatus  string           `json:"maritalStatus"`
	Career         string           `json:"career"`
	Stage          string           `json:"stage,omitempty"`
	Status         string           `json:"status,omitempty"`
	LastUpdate     string           `json:"lastUpdate,omitempty"`
	Visits         []int            `json:"visits,omitempty"`
	FollowUpVisits []FollowUpVisit  `json:"followUpVisits,omitempty"`
	Growth         *SpiritualGrowth `json:"spiritualGrowth,omitempty"`
}

// NormalizeID populates ID from the legacy "_id" field when the modern
// field is absent.
func (c *Convert) NormalizeID() {
	if c.ID == "" {
		c.ID = c.MongoID
	}
}

// MilestoneUpdate is a partial milestone change; only the keys being
// changed are sent.
type MilestoneUpdate map[string]string
