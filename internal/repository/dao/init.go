package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Team{},
		&Venue{},
		&Performer{},
		&Sponsor{},
		&DaySchedule{},
		&BudgetExpense{},
		&Member{},
		&Participant{},
		&Event{},
		&Registration{},
		&Management{},
		&Sponsorship{},
		&Ticket{},
	)
}
