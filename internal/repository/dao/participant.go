package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrParticipantEmailExists = errors.New("email already registered")
	ErrParticipantNotFound    = errors.New("participant not found")
)

type Participant struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"not null"`
	Email    string  `gorm:"unique;not null"`
	Password string  `gorm:"not null"`
	Phone    *string
	College  *string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Participant{}, ErrParticipantEmailExists
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindAll(ctx context.Context) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByEmail(ctx context.Context, email string) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

// Update replaces the profile fields. Password stays as issued at signup.
func (d *ParticipantDAO) Update(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("id = ?", participant.ID).
		Select("name", "email", "phone", "college").
		Updates(map[string]interface{}{
			"name":    participant.Name,
			"email":   participant.Email,
			"phone":   participant.Phone,
			"college": participant.College,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Participant{}, ErrParticipantEmailExists
		}

		return Participant{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Participant{}, ErrParticipantNotFound
	}

	return d.FindByID(ctx, participant.ID)
}

func (d *ParticipantDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Participant{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrRowReferenced
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}
