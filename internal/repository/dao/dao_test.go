package dao_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campusfest/fest-api/internal/repository/dao"
)

var (
	testDBOnce sync.Once
	testDB     *gorm.DB
	testDBErr  error
)

// testDatabase starts a throwaway postgres container once per test run and
// returns a migrated connection. Tests are skipped when Docker is not
// reachable so the suite still passes on machines without a daemon.
func testDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	testDBOnce.Do(func() {
		pool, err := dockertest.NewPool("")
		if err != nil {
			testDBErr = fmt.Errorf("dockertest.NewPool -> %w", err)

			return
		}
		if err = pool.Client.Ping(); err != nil {
			testDBErr = fmt.Errorf("pool.Client.Ping -> %w", err)

			return
		}

		resource, err := pool.RunWithOptions(&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        "16-alpine",
			Env: []string{
				"POSTGRES_USER=festapi",
				"POSTGRES_PASSWORD=festapi",
				"POSTGRES_DB=festapi_test",
			},
		}, func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		})
		if err != nil {
			testDBErr = fmt.Errorf("pool.RunWithOptions -> %w", err)

			return
		}
		_ = resource.Expire(300)

		dsn := fmt.Sprintf(
			"host=localhost user=festapi password=festapi dbname=festapi_test port=%v sslmode=disable",
			resource.GetPort("5432/tcp"),
		)

		pool.MaxWait = 60 * time.Second
		testDBErr = pool.Retry(func() error {
			gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err != nil {
				return err
			}

			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			if err = sqlDB.Ping(); err != nil {
				return err
			}

			testDB = gormDB

			return nil
		})
		if testDBErr != nil {
			return
		}

		testDBErr = dao.InitTables(testDB)
	})

	if testDBErr != nil {
		t.Skipf("postgres container unavailable: %v", testDBErr)
	}

	return testDB
}

func TestMemberDAO(t *testing.T) {
	db := testDatabase(t)
	memberDAO := dao.NewMemberDAO(db)
	ctx := context.Background()

	member, err := memberDAO.Insert(ctx, dao.Member{
		StudentID: "CS2021001",
		Name:      "Asha Rao",
		Role:      "Head",
		Password:  "hashed",
	})
	require.NoError(t, err)

	t.Run("duplicate student id is rejected", func(t *testing.T) {
		_, err := memberDAO.Insert(ctx, dao.Member{
			StudentID: "CS2021001",
			Name:      "Someone Else",
			Role:      "Member",
			Password:  "hashed",
		})
		assert.ErrorIs(t, err, dao.ErrMemberExists)
	})

	t.Run("find by id round-trips", func(t *testing.T) {
		found, err := memberDAO.FindByID(ctx, member.StudentID)
		require.NoError(t, err)
		assert.Equal(t, member.Name, found.Name)
		assert.Equal(t, member.Role, found.Role)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		_, err := memberDAO.FindByID(ctx, "CS0000000")
		assert.ErrorIs(t, err, dao.ErrMemberNotFound)
	})

	t.Run("update with invalid team reference", func(t *testing.T) {
		teamID := uint(987654)
		member.TeamID = &teamID

		_, err := memberDAO.Update(ctx, member)
		assert.ErrorIs(t, err, dao.ErrInvalidReference)
	})
}

func TestEventDAO_InsertRegistrationWithTicket(t *testing.T) {
	db := testDatabase(t)
	eventDAO := dao.NewEventDAO(db)
	participantDAO := dao.NewParticipantDAO(db)
	ctx := context.Background()

	event, err := eventDAO.Insert(ctx, dao.Event{Name: "Battle of Bands", Type: "Performance"})
	require.NoError(t, err)

	participant, err := participantDAO.Insert(ctx, dao.Participant{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "hashed",
	})
	require.NoError(t, err)

	now := time.Now()

	registration, ticket, err := eventDAO.InsertRegistrationWithTicket(ctx,
		dao.Registration{EventID: event.ID, ParticipantID: participant.ID, RegisteredAt: now},
		dao.Ticket{Quantity: 1, PurchasedAt: now},
	)
	require.NoError(t, err)
	assert.NotZero(t, registration.ID)
	assert.NotZero(t, ticket.ID)
	assert.Equal(t, event.ID, ticket.EventID)
	assert.Equal(t, participant.ID, ticket.ParticipantID)

	t.Run("second signup rolls back the ticket", func(t *testing.T) {
		_, _, err := eventDAO.InsertRegistrationWithTicket(ctx,
			dao.Registration{EventID: event.ID, ParticipantID: participant.ID, RegisteredAt: now},
			dao.Ticket{Quantity: 1, PurchasedAt: now},
		)
		require.ErrorIs(t, err, dao.ErrDuplicateRegistration)

		var ticketCount int64
		require.NoError(t, db.Model(&dao.Ticket{}).
			Where("event_id = ? AND participant_id = ?", event.ID, participant.ID).
			Count(&ticketCount).Error)
		assert.Equal(t, int64(1), ticketCount)
	})

	t.Run("unknown event is a reference violation", func(t *testing.T) {
		_, _, err := eventDAO.InsertRegistrationWithTicket(ctx,
			dao.Registration{EventID: 987654, ParticipantID: participant.ID, RegisteredAt: now},
			dao.Ticket{Quantity: 1, PurchasedAt: now},
		)
		assert.ErrorIs(t, err, dao.ErrInvalidReference)
	})

	t.Run("deleting a registered event is blocked", func(t *testing.T) {
		err := eventDAO.Delete(ctx, event.ID)
		assert.ErrorIs(t, err, dao.ErrRowReferenced)
	})
}
