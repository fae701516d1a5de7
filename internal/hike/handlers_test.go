package hike

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func TestHikeHandlersList(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, code, name, city, level, details, length, hike_time, lat, lng, last_updated`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "city", "level", "details", "length", "hike_time", "lat", "lng", "last_updated"}).
			AddRow("hike-1", "BBY01", "Burnaby Lake Park Trail", "Burnaby", "easy", "A lovely place for a lunch walk.", 10.0, 60, 49.2467, -122.9187, time.Now()))

	app := fiber.New()
	RegisterRoutes(app.Group("/hikes"), NewService(mock))

	req := httptest.NewRequest(http.MethodGet, "/hikes/", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("list status: %v %v", resp.StatusCode, err)
	}
}

func TestHikeHandlersListError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, code, name, city, level, details, length, hike_time, lat, lng, last_updated`).
		WillReturnError(errHike)

	app := fiber.New()
	RegisterRoutes(app.Group("/hikes"), NewService(mock))

	req := httptest.NewRequest(http.MethodGet, "/hikes/", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected error status")
	}
}

func TestHikeHandlersGet(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, code, name, city, level, details, length, hike_time, lat, lng, last_updated`).
		WithArgs("hike-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "city", "level", "details", "length", "hike_time", "lat", "lng", "last_updated"}).
			AddRow("hike-1", "AM01", "Buntzen Lake Trail", "Anmore", "moderate", "Close to town, and relaxing.", 10.5, 80, 49.3399, -122.859, time.Now()))

	app := fiber.New()
	RegisterRoutes(app.Group("/hikes"), NewService(mock))

	req := httptest.NewRequest(http.MethodGet, "/hikes/hike-1", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("get status: %v %v", resp.StatusCode, err)
	}
}

func TestHikeHandlersGetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, code, name, city, level, details, length, hike_time, lat, lng, last_updated`).
		WithArgs("missing").
		WillReturnError(errHike)

	app := fiber.New()
	RegisterRoutes(app.Group("/hikes"), NewService(mock))

	req := httptest.NewRequest(http.MethodGet, "/hikes/missing", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found")
	}
}
