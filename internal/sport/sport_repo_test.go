package sport

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Sport{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestSportLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewSportRepository(db)

	for _, s := range []Sport{
		{Name: "Tennis", Icon: "🎾", Slug: "tennis", IsActive: true},
		{Name: "Football", Icon: "⚽", Slug: "football", IsActive: true},
	} {
		sp := s
		if err := repo.CreateSport(&sp); err != nil {
			t.Fatalf("CreateSport failed: %v", err)
		}
	}

	all, err := repo.GetAllSports()
	if err != nil {
		t.Fatalf("GetAllSports failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 sports, got %d", len(all))
	}
	if all[0].Name != "Football" || all[1].Name != "Tennis" {
		t.Errorf("expected name ordering, got %s, %s", all[0].Name, all[1].Name)
	}

	byName, err := repo.FindSportByName("Tennis")
	if err != nil {
		t.Fatalf("FindSportByName failed: %v", err)
	}
	if byName == nil || byName.Slug != "tennis" {
		t.Errorf("unexpected lookup result: %+v", byName)
	}

	missing, err := repo.FindSportByName("Curling")
	if err != nil {
		t.Fatalf("FindSportByName failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown name, got %+v", missing)
	}

	byID, err := repo.GetSportByID(byName.ID)
	if err != nil {
		t.Fatalf("GetSportByID failed: %v", err)
	}
	if byID == nil || byID.Name != "Tennis" {
		t.Errorf("unexpected lookup result: %+v", byID)
	}

	gone, err := repo.GetSportByID(999)
	if err != nil {
		t.Fatalf("GetSportByID failed: %v", err)
	}
	if gone != nil {
		t.Errorf("expected nil for unknown id, got %+v", gone)
	}
}
