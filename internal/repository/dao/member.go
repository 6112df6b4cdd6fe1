package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrMemberExists   = errors.New("student id already exists")
	ErrMemberNotFound = errors.New("student member not found")
)

type Member struct {
	StudentID string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Role      string `gorm:"not null"`
	TeamID    *uint  `gorm:"index"`
	Team      *Team  `gorm:"foreignKey:TeamID"`
	Password  string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Member) TableName() string {
	return "student_members"
}

type MemberDAO struct {
	db *gorm.DB
}

func NewMemberDAO(db *gorm.DB) *MemberDAO {
	return &MemberDAO{
		db: db,
	}
}

func (d *MemberDAO) Insert(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Member{}, ErrMemberExists
		}
		if isForeignKeyViolation(result.Error) {
			return Member{}, ErrInvalidReference
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindAll(ctx context.Context) ([]Member, error) {
	var members []Member

	result := d.db.WithContext(ctx).Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *MemberDAO) FindByID(ctx context.Context, studentID string) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, "student_id = ?", studentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

// Update replaces name, role and team assignment. The password column is
// left untouched; credentials only change through the auth flow.
func (d *MemberDAO) Update(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).
		Model(&Member{}).
		Where("student_id = ?", member.StudentID).
		Select("name", "role", "team_id").
		Updates(map[string]interface{}{
			"name":    member.Name,
			"role":    member.Role,
			"team_id": member.TeamID,
		})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Member{}, ErrInvalidReference
		}

		return Member{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Member{}, ErrMemberNotFound
	}

	return d.FindByID(ctx, member.StudentID)
}

func (d *MemberDAO) Delete(ctx context.Context, studentID string) error {
	result := d.db.WithContext(ctx).Delete(&Member{}, "student_id = ?", studentID)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrRowReferenced
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// CountTeamRole counts members on a team holding the given role, optionally
// excluding one student id (used when re-validating on update).
func (d *MemberDAO) CountTeamRole(ctx context.Context, teamID uint, role string, excludeStudentID string) (int64, error) {
	var count int64

	query := d.db.WithContext(ctx).
		Model(&Member{}).
		Where("team_id = ? AND role = ?", teamID, role)
	if excludeStudentID != "" {
		query = query.Where("student_id <> ?", excludeStudentID)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
