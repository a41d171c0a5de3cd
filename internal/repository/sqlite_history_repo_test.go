package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"hepi-staff/internal/belbin"
	"hepi-staff/internal/domain"
)

func TestSQLiteHistoryRepository_SaveAndList(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteHistoryRepository(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	older := domain.BelbinAssessment{
		ID:         "a1",
		EmployeeID: "jan",
		Result:     "PO*, CZA*",
		TopTrait:   belbin.TraitCZA,
		Scores:     []belbin.TraitScore{{Code: belbin.TraitPO, Value: 19}, {Code: belbin.TraitCZA, Value: 51}},
		Levels: []belbin.TraitLevel{
			{Code: belbin.TraitPO, Level: belbin.LevelVeryHigh},
			{Code: belbin.TraitCZA, Level: belbin.LevelVeryHigh},
		},
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	newer := older
	newer.ID = "a2"
	newer.EmployeeID = "ewa"
	newer.Result = ""
	newer.Levels = nil
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)

	for _, a := range []domain.BelbinAssessment{older, newer} {
		if err := repo.Save(ctx, a); err != nil {
			t.Fatalf("save %s: %v", a.ID, err)
		}
	}

	got, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a2" || got[1].ID != "a1" {
		t.Fatalf("expected newest first, got %+v", got)
	}
	if got[1].Levels[0].Level != belbin.LevelVeryHigh || got[1].Scores[1].Value != 51 {
		t.Fatalf("levels or scores not restored: %+v", got[1])
	}
	if !got[1].CreatedAt.Equal(older.CreatedAt) {
		t.Fatalf("unexpected created_at %v", got[1].CreatedAt)
	}

	limited, err := repo.List(ctx, 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("expected one row, got %d (%v)", len(limited), err)
	}
}

func TestSQLiteHistoryRepository_OpenError(t *testing.T) {
	orig := openSQLite
	defer func() { openSQLite = orig }()
	openSQLite = func(string, string) (*sql.DB, error) {
		return nil, errors.New("boom")
	}
	if _, err := NewSQLiteHistoryRepository(filepath.Join(t.TempDir(), "x.db")); err == nil {
		t.Fatalf("expected open error")
	}
}
