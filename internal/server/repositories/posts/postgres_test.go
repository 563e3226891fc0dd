package posts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/daynu/herejpg/internal/common"
	"github.com/daynu/herejpg/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var postColumns = []string{"id", "caption", "image", "lat", "lng", "created_at", "owner_id", "owner_name"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+posts\s*\(id,\s*owner_id,\s*caption,\s*image,\s*lat,\s*lng\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+created_at\s*$`

	created := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	mock.ExpectQuery(q).
		WithArgs("p-1", "u-1", "sunset", "data:image/png;base64,xyz", 45.0, 25.0).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	p := &models.Post{
		ID:       "p-1",
		Owner:    models.Owner{ID: "u-1"},
		Caption:  "sunset",
		Image:    "data:image/png;base64,xyz",
		Location: models.Location{Lat: 45.0, Lng: 25.0},
	}
	got, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+posts`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Post{ID: "p-1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListAll_PopulatesOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+p\.id,.*FROM\s+posts\s+p\s+JOIN\s+users\s+u\s+ON\s+u\.id\s*=\s*p\.owner_id\s*$`

	created := time.Now().UTC()
	rows := sqlmock.NewRows(postColumns).
		AddRow("p-1", "c1", "img1", 45.0, 25.0, created, "u-1", "alice").
		AddRow("p-2", "", "img2", -12.5, 130.9, created, "u-2", "bob")
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(got))
	}
	if got[0].Owner.Name != "alice" || got[1].Owner.Name != "bob" {
		t.Fatalf("owner not populated: %+v", got)
	}
	if got[1].Location.Lng != 130.9 {
		t.Fatalf("unexpected location: %+v", got[1].Location)
	}
}

func TestListAll_EmptyIsNotAnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+p\.id`).WillReturnRows(sqlmock.NewRows(postColumns))

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d posts", len(got))
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(postColumns).
		AddRow("p-1", "c1", "img1", 45.0, 25.0, time.Now(), "u-1", "alice")
	mock.ExpectQuery(`SELECT\s+p\.id,.*WHERE\s+p\.id\s*=\s*\$1`).
		WithArgs("p-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Owner.ID != "u-1" {
		t.Fatalf("owner not populated: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+p\.id`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_ReplacesCaptionAndImageOnly(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	qUpd := `(?s)^UPDATE\s+posts\s+SET\s+caption\s*=\s*\$2,\s*image\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+RETURNING\s+id\s*$`
	mock.ExpectQuery(qUpd).
		WithArgs("p-1", "new caption", "new-img").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p-1"))

	rows := sqlmock.NewRows(postColumns).
		AddRow("p-1", "new caption", "new-img", 45.0, 25.0, time.Now(), "u-1", "alice")
	mock.ExpectQuery(`SELECT\s+p\.id`).
		WithArgs("p-1").
		WillReturnRows(rows)

	got, err := repo.Update(context.Background(), "p-1", "new caption", "new-img")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Caption != "new caption" || got.Image != "new-img" {
		t.Fatalf("unexpected post after update: %+v", got)
	}
	if got.Location.Lat != 45.0 {
		t.Fatalf("location must be untouched: %+v", got.Location)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+posts`).
		WithArgs("missing", "c", "i").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "missing", "c", "i")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+posts\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "p-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFoundIsStableOnRetry(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+posts`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE\s+FROM\s+posts`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	for i := 0; i < 2; i++ {
		err := repo.Delete(context.Background(), "missing")
		if !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("attempt %d: expected common.ErrorNotFound, got %v", i+1, err)
		}
	}
}
