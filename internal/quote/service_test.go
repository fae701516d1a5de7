package quote

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

func TestGetQuote(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT day, quote, updated_at FROM quotes`).
		WithArgs("tuesday").
		WillReturnRows(pgxmock.NewRows([]string{"day", "quote", "updated_at"}).
			AddRow("tuesday", "<b>Walk more.</b>", time.Now()))

	svc := NewService(mock, nil)
	q, err := svc.Get(context.Background(), "tuesday")
	if err != nil {
		t.Fatalf("get quote: %v", err)
	}
	if q.Quote != "<b>Walk more.</b>" {
		t.Fatalf("unexpected quote: %q", q.Quote)
	}
}

func TestGetQuoteMissing(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT day, quote, updated_at FROM quotes`).
		WithArgs("monday").
		WillReturnError(errQuote)

	svc := NewService(mock, nil)
	if _, err := svc.Get(context.Background(), "monday"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSetQuoteBroadcasts(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO quotes`).
		WithArgs("tuesday", "Go outside.").
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	feed := NewFeed(nil)
	subscriber := feed.Register("tuesday")
	defer feed.Unregister(subscriber)

	svc := NewService(mock, feed)
	q, err := svc.Set(context.Background(), "tuesday", "Go outside.")
	if err != nil {
		t.Fatalf("set quote: %v", err)
	}
	if q.UpdatedAt.IsZero() {
		t.Fatalf("expected server-assigned updated_at")
	}

	select {
	case msg := <-subscriber.Send:
		if !strings.Contains(string(msg), "Go outside.") {
			t.Fatalf("unexpected broadcast payload: %s", msg)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for broadcast")
	}
}

func TestSetQuoteError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO quotes`).
		WithArgs("tuesday", "x").
		WillReturnError(errQuote)

	svc := NewService(mock, nil)
	if _, err := svc.Set(context.Background(), "tuesday", "x"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestToday(t *testing.T) {
	day := Today()
	if day != strings.ToLower(time.Now().Weekday().String()) {
		t.Fatalf("unexpected day key: %q", day)
	}
	if day != strings.ToLower(day) {
		t.Fatalf("day key must be lowercase")
	}
}

var errQuote = errors.New("quote query error")
