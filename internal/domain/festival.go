package domain

import "time"

type Team struct {
	ID   uint   `json:"Team_ID"`
	Name string `json:"Team_Name"`
}

type Venue struct {
	ID       uint    `json:"VenueID"`
	Name     string  `json:"VenueName"`
	Capacity *int    `json:"Capacity"`
	Location *string `json:"Location"`
}

type PerformerType string

const (
	PerformerSinger  PerformerType = "Singer"
	PerformerDJ      PerformerType = "DJ"
	PerformerStandup PerformerType = "Standup"
	PerformerBand    PerformerType = "Band"
)

func ParsePerformerType(s string) (PerformerType, bool) {
	switch PerformerType(s) {
	case PerformerSinger, PerformerDJ, PerformerStandup, PerformerBand:
		return PerformerType(s), true
	}

	return "", false
}

type Performer struct {
	ID   uint          `json:"Performer_ID"`
	Name string        `json:"Name"`
	Type PerformerType `json:"Performer_Type"`
}

type Sponsor struct {
	ID     uint    `json:"Sponsor_ID"`
	Name   string  `json:"Sponsor_Name"`
	Amount float64 `json:"Amount"`
	Type   *string `json:"Sponsor_Type"`
}

type DaySchedule struct {
	ID          uint      `json:"DayID"`
	DayNumber   int       `json:"DayNumber"`
	Date        time.Time `json:"EventDate"`
	Description *string   `json:"Description"`
}

type BudgetExpense struct {
	ID              uint    `json:"Expense_ID"`
	Description     string  `json:"Item_Description"`
	AllocatedAmount float64 `json:"Allocated_Amount"`
}
