package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupUserMock(t *testing.T) (*PostgresUserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresUserRepository(db)
	cleanup := func() {
		db.Close()
	}
	return repo, mock, cleanup
}

func TestGetUserByID_Success(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "about", "avatar"}).
		AddRow("u1", "Alice", "Diver", "http://img/a.png")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, about, avatar FROM users WHERE id = $1")).
		WithArgs("u1").
		WillReturnRows(rows)

	u, err := repo.GetUserByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Alice" || u.Avatar != "http://img/a.png" {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestUpdateProfile_ReturnsUpdatedRow(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "about", "avatar"}).
		AddRow("u1", "Jacques", "Explorer", "")

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET name = $2, about = $3 WHERE id = $1")).
		WithArgs("u1", "Jacques", "Explorer").
		WillReturnRows(rows)

	u, err := repo.UpdateProfile(context.Background(), "u1", "Jacques", "Explorer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Jacques" || u.About != "Explorer" {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestUpdateAvatar_ReturnsUpdatedRow(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "about", "avatar"}).
		AddRow("u1", "Alice", "Diver", "http://img/new.png")

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET avatar = $2 WHERE id = $1")).
		WithArgs("u1", "http://img/new.png").
		WillReturnRows(rows)

	u, err := repo.UpdateAvatar(context.Background(), "u1", "http://img/new.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Avatar != "http://img/new.png" {
		t.Errorf("avatar = %q", u.Avatar)
	}
}

func TestUserIDByToken(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE token = $1")).
		WithArgs("secret").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u1"))

	id, err := repo.UserIDByToken(context.Background(), "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "u1" {
		t.Errorf("id = %q; want u1", id)
	}
}

func TestUserIDByToken_Unknown(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE token = $1")).
		WithArgs("bogus").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UserIDByToken(context.Background(), "bogus")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v; want sql.ErrNoRows", err)
	}
}
