package metrics

import "time"

// MissionMetric records one resolved mission and the colony right after it.
type MissionMetric struct {
	Wave             int
	Plan             string
	PlanSucceeded    bool
	Sent             int
	FieldLost        int
	InfiltrationLost int
	Returned         int
	Loot             int
	WearDelta        float64
	Resources        int     // after commit
	Wear             float64 // after commit
	Eliminated       int     // after commit
}

// CampaignMetric records one campaign from start to its stopping condition.
type CampaignMetric struct {
	Seed       uint64
	Missions   int
	Breached   bool
	Stalled    bool
	FinalWear  float64
	TotalLoot  int
	Eliminated int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type CampaignRecord struct {
	ID int
	CampaignMetric
}

type MissionRecord struct {
	Campaign int // CampaignRecord.ID
	MissionMetric
}
