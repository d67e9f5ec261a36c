package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mshulgin/go-account-service/internal/migrations"
	"github.com/mshulgin/go-account-service/internal/models"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("pgx"))
	require.NoError(t, goose.UpContext(context.Background(), db.DB, "."))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserRepositories_Postgres(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	reads := NewUserReadRepository(db)
	writes := NewUserWriteRepository(db)
	ctx := context.Background()

	created, err := writes.Create(ctx, "uid-alice", "alice", "hashed-password", "alice@example.com")
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.False(t, created.IsSuperuser)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.LastLogin)

	t.Run("lookups find the created user", func(t *testing.T) {
		byID, err := reads.GetByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, created.UserUID, byID.UserUID)

		byName, err := reads.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, created.ID, byName.ID)

		byEmail, err := reads.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		user, err := reads.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("touch last login", func(t *testing.T) {
		assert.NoError(t, writes.TouchLastLogin(ctx, "alice"))

		user, err := reads.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, user.LastLogin)
	})

	t.Run("profile update keeps absent optional fields", func(t *testing.T) {
		mobile := "13812345678"
		updated, err := writes.UpdateProfile(ctx, created.ID, profileUpdate("alice", "alice@example.com", &mobile), nil)
		assert.NoError(t, err)
		assert.Equal(t, &mobile, updated.MobileNumber)

		// second update without the mobile field leaves it in place
		updated, err = writes.UpdateProfile(ctx, created.ID, profileUpdate("alice", "alice@example.com", nil), nil)
		assert.NoError(t, err)
		assert.Equal(t, &mobile, updated.MobileNumber)
	})

	t.Run("avatar set and clear", func(t *testing.T) {
		avatar := "20260101000000.000000_pic.png"
		updated, err := writes.UpdateProfile(ctx, created.ID, profileUpdate("alice", "alice@example.com", nil), &avatar)
		assert.NoError(t, err)
		assert.Equal(t, &avatar, updated.Avatar)

		assert.NoError(t, writes.ClearAvatar(ctx, created.ID))

		user, err := reads.GetByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Nil(t, user.Avatar)
	})

	t.Run("reset password", func(t *testing.T) {
		assert.NoError(t, writes.ResetPassword(ctx, "alice", "new-hash"))

		user, err := reads.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, "new-hash", user.Password)
	})

	t.Run("toggles return the new value", func(t *testing.T) {
		status, err := writes.ToggleSuperuser(ctx, created.ID)
		assert.NoError(t, err)
		assert.True(t, status)

		status, err = writes.ToggleSuperuser(ctx, created.ID)
		assert.NoError(t, err)
		assert.False(t, status)

		status, err = writes.ToggleActive(ctx, created.ID)
		assert.NoError(t, err)
		assert.False(t, status)

		status, err = writes.ToggleActive(ctx, created.ID)
		assert.NoError(t, err)
		assert.True(t, status)
	})

	t.Run("listing is newest first", func(t *testing.T) {
		_, err := writes.Create(ctx, "uid-bob", "bob", "hashed-password", "bob@example.com")
		assert.NoError(t, err)

		users, err := reads.List(ctx, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "bob", users[0].Username)

		total, err := reads.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		assert.NoError(t, writes.Delete(ctx, created.ID))

		user, err := reads.GetByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func profileUpdate(username, email string, mobile *string) (p models.ProfileUpdate) {
	p.Username = username
	p.Email = email
	p.MobileNumber = mobile
	return p
}
