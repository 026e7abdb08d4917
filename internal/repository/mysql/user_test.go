package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	driverMysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/internal/repository/mysql"
)

func userRows(users ...domain.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "twitter_id", "name", "access_token", "token_secret", "created_at", "updated_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.TwitterID, u.Name, u.AccessToken, u.TokenSecret, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func testStoredUser() domain.User {
	now := time.Now().Truncate(time.Second)
	return domain.User{
		ID:          7,
		TwitterID:   "1000",
		Name:        faker.Name(),
		AccessToken: "token",
		TokenSecret: "secret",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestUserGetByTwitterID(t *testing.T) {
	gdb, mock := setupDB(t)

	want := testStoredUser()
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE twitter_id = ").
		WillReturnRows(userRows(want))

	repo := mysql.NewUserRepository(gdb)
	got, err := repo.GetByTwitterID(context.Background(), "1000")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserGetByIDNotFound(t *testing.T) {
	gdb, mock := setupDB(t)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE id = ").
		WillReturnRows(userRows())

	repo := mysql.NewUserRepository(gdb)
	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserInsert(t *testing.T) {
	gdb, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	repo := mysql.NewUserRepository(gdb)
	u := domain.User{TwitterID: "1000", Name: faker.Name(), AccessToken: "token", TokenSecret: "secret"}
	err := repo.Insert(context.Background(), &u)
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
}

func TestUserInsertDuplicateIsConflict(t *testing.T) {
	gdb, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&driverMysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	repo := mysql.NewUserRepository(gdb)
	u := domain.User{TwitterID: "1000"}
	err := repo.Insert(context.Background(), &u)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserUpdateCredentials(t *testing.T) {
	gdb, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := mysql.NewUserRepository(gdb)
	u := testStoredUser()
	err := repo.UpdateCredentials(context.Background(), &u)
	assert.NoError(t, err)
}

func TestUserDelete(t *testing.T) {
	gdb, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := mysql.NewUserRepository(gdb)
	assert.NoError(t, repo.Delete(context.Background(), 7))
}

func TestUserDeleteMissing(t *testing.T) {
	gdb, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `users`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := mysql.NewUserRepository(gdb)
	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserCount(t *testing.T) {
	gdb, mock := setupDB(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	repo := mysql.NewUserRepository(gdb)
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
