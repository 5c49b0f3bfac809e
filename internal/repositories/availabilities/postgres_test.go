package availabilities

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const (
	publishQ = `(?s)^INSERT\s+INTO\s+availabilities\s*\(caregiver_username,\s*available_on\)\s*SELECT\s+\$1::text,\s*\$2::date\s+WHERE\s+NOT\s+EXISTS\s*\(\s*SELECT\s+1\s+FROM\s+appointments\s+WHERE\s+caregiver_username\s*=\s*\$1\s+AND\s+appointment_date\s*=\s*\$2\s*\)\s*ON\s+CONFLICT\s+DO\s+NOTHING\s*$`
	pickQ    = `(?s)^DELETE\s+FROM\s+availabilities\s+WHERE\s+\(caregiver_username,\s*available_on\)\s+IN\s*\(\s*SELECT\s+av\.caregiver_username,\s*av\.available_on\s+FROM\s+availabilities\s+av\s+WHERE\s+av\.available_on\s*=\s*\$1\s+AND\s+NOT\s+EXISTS\s*\(.*FROM\s+appointments\s+ap.*\)\s*ORDER\s+BY\s+av\.caregiver_username\s+LIMIT\s+1\s+FOR\s+UPDATE\s+SKIP\s+LOCKED\s*\)\s*RETURNING\s+caregiver_username\s*$`
	listQ    = `(?s)^SELECT\s+av\.caregiver_username\s+FROM\s+availabilities\s+av\s+WHERE\s+av\.available_on\s*=\s*\$1\s+AND\s+NOT\s+EXISTS\s*\(.*FROM\s+appointments\s+ap.*\)\s*ORDER\s+BY\s+av\.caregiver_username\s*$`
)

var day = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

func TestPublishAndRestore(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(publishQ).WithArgs("c1", day).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(publishQ).WithArgs("c1", day).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Publish(context.Background(), "c1", day))
	require.NoError(t, repo.Restore(context.Background(), "c1", day))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPublish_BookedPairIsSkipped(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	// the NOT EXISTS guard yields no row to insert
	mock.ExpectExec(publishQ).WithArgs("c1", day).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Publish(context.Background(), "c1", day))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPublish_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(publishQ).WithArgs("c1", day).WillReturnError(errors.New("boom"))

	err := repo.Publish(context.Background(), "c1", day)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: boom")
}

func TestPickAndConsume(t *testing.T) {
	t.Run("picks caregiver", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(pickQ).WithArgs(day).
			WillReturnRows(sqlmock.NewRows([]string{"caregiver_username"}).AddRow("a"))

		cg, ok, err := repo.PickAndConsume(context.Background(), day)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "a", cg)
	})

	t.Run("nobody free", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(pickQ).WithArgs(day).
			WillReturnRows(sqlmock.NewRows([]string{"caregiver_username"}))

		cg, ok, err := repo.PickAndConsume(context.Background(), day)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, cg)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(pickQ).WithArgs(day).WillReturnError(errors.New("boom"))

		_, ok, err := repo.PickAndConsume(context.Background(), day)
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestListAvailable(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(listQ).WithArgs(day).
		WillReturnRows(sqlmock.NewRows([]string{"caregiver_username"}).AddRow("a").AddRow("b"))

	got, err := repo.ListAvailable(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	mock.ExpectQuery(listQ).WithArgs(day).
		WillReturnRows(sqlmock.NewRows([]string{"caregiver_username"}))
	got, err = repo.ListAvailable(context.Background(), day)
	require.NoError(t, err)
	assert.Empty(t, got)
}
