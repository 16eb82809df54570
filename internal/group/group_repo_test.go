package group

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/pulse-social/pulse/internal/sport"
	"github.com/pulse-social/pulse/internal/user"
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
	if err := db.AutoMigrate(&user.User{}, &sport.Sport{}, &Group{}, &GroupMember{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, username string) *user.User {
	t.Helper()
	u := &user.User{
		Name:         name,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         user.RoleUser,
		Status:       user.StatusActive,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return u
}

func seedSport(t *testing.T, db *gorm.DB, name string) *sport.Sport {
	t.Helper()
	s := &sport.Sport{Name: name, Icon: "⚽", Slug: name, IsActive: true}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("failed to seed sport %s: %v", name, err)
	}
	return s
}

func TestCreateWithOrganizer(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)

	organizer := seedUser(t, db, "Emma Anderson", "emma")
	football := seedSport(t, db, "Football")

	g := &Group{
		Title:       "Football - Weekend Warrior",
		SportID:     football.ID,
		OrganizerID: organizer.ID,
		City:        "Stockholm",
		DateTime:    "2025-09-14 18:30",
		Privacy:     PrivacyPublic,
		MaxMembers:  2,
		Status:      StatusUpcoming,
	}
	if err := repo.CreateWithOrganizer(g); err != nil {
		t.Fatalf("CreateWithOrganizer failed: %v", err)
	}

	resp, err := repo.GetGroupResponse(g.ID)
	if err != nil {
		t.Fatalf("GetGroupResponse failed: %v", err)
	}
	if resp == nil {
		t.Fatal("expected created group, got nil")
	}
	if resp.MemberCount != 1 {
		t.Errorf("expected memberCount 1, got %d", resp.MemberCount)
	}
	if len(resp.Members) != 1 || resp.Members[0].Role != RoleOrganizer {
		t.Errorf("expected single organizer member, got %+v", resp.Members)
	}
	if resp.Members[0].ID != organizer.ID {
		t.Errorf("expected organizer %d as member, got %d", organizer.ID, resp.Members[0].ID)
	}
	if resp.SportName != "Football" {
		t.Errorf("expected sport name resolved, got %q", resp.SportName)
	}
	if resp.OrganizerName != "Emma Anderson" {
		t.Errorf("expected organizer name resolved, got %q", resp.OrganizerName)
	}

	var s sport.Sport
	if err := db.First(&s, football.ID).Error; err != nil {
		t.Fatalf("failed to reload sport: %v", err)
	}
	if s.GroupCount != 1 {
		t.Errorf("expected sport group_count 1, got %d", s.GroupCount)
	}
}

func TestJoin(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)

	organizer := seedUser(t, db, "Emma Anderson", "emma")
	second := seedUser(t, db, "Liam Johnson", "liam")
	third := seedUser(t, db, "Olivia Brown", "olivia")
	football := seedSport(t, db, "Football")

	g := &Group{
		Title:       "Football - Newbie Friendly",
		SportID:     football.ID,
		OrganizerID: organizer.ID,
		City:        "Stockholm",
		DateTime:    "2025-09-14 18:30",
		Privacy:     PrivacyPublic,
		MaxMembers:  2,
		Status:      StatusUpcoming,
	}
	if err := repo.CreateWithOrganizer(g); err != nil {
		t.Fatalf("CreateWithOrganizer failed: %v", err)
	}

	if err := repo.Join(g.ID+999, second.ID); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound for missing group, got %v", err)
	}

	if err := repo.Join(g.ID, second.ID); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	count, err := repo.MemberCount(g.ID)
	if err != nil {
		t.Fatalf("MemberCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected member count 2, got %d", count)
	}

	if err := repo.Join(g.ID, second.ID); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("expected ErrAlreadyMember on repeat join, got %v", err)
	}
	if err := repo.Join(g.ID, organizer.ID); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("expected ErrAlreadyMember for organizer, got %v", err)
	}

	if err := repo.Join(g.ID, third.ID); !errors.Is(err, ErrGroupFull) {
		t.Errorf("expected ErrGroupFull at capacity, got %v", err)
	}

	count, _ = repo.MemberCount(g.ID)
	if count != 2 {
		t.Errorf("member count changed by failed joins: got %d", count)
	}
}

// Concurrent joins near the capacity boundary must never overshoot it.
func TestJoinConcurrentCapacity(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)

	organizer := seedUser(t, db, "Emma Anderson", "emma")
	football := seedSport(t, db, "Football")

	g := &Group{
		Title:       "Football - Serious Player",
		SportID:     football.ID,
		OrganizerID: organizer.ID,
		City:        "Stockholm",
		DateTime:    "2025-09-14 18:30",
		Privacy:     PrivacyPublic,
		MaxMembers:  4, // organizer + 3 open slots
		Status:      StatusUpcoming,
	}
	if err := repo.CreateWithOrganizer(g); err != nil {
		t.Fatalf("CreateWithOrganizer failed: %v", err)
	}

	const attempts = 12
	remaining := int64(g.MaxMembers - 1)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded int64

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			if err := repo.Join(g.ID, userID); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(organizer.ID + 1 + uint(i))
	}
	wg.Wait()

	if succeeded > remaining {
		t.Errorf("capacity exceeded: %d joins succeeded with %d slots", succeeded, remaining)
	}

	count, err := repo.MemberCount(g.ID)
	if err != nil {
		t.Fatalf("MemberCount failed: %v", err)
	}
	if count > int64(g.MaxMembers) {
		t.Errorf("member count %d exceeds capacity %d", count, g.MaxMembers)
	}
}

func TestListUpcomingFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)

	organizer := seedUser(t, db, "Emma Anderson", "emma")
	football := seedSport(t, db, "Football")
	tennis := seedSport(t, db, "Tennis")

	mk := func(sportID uint, city, privacy, details, dateTime, status string) {
		g := &Group{
			Title:       "Match",
			Details:     details,
			SportID:     sportID,
			OrganizerID: organizer.ID,
			City:        city,
			DateTime:    dateTime,
			Privacy:     privacy,
			MaxMembers:  10,
			Status:      status,
		}
		if err := repo.CreateWithOrganizer(g); err != nil {
			t.Fatalf("seed group failed: %v", err)
		}
	}

	mk(football.ID, "Stockholm", PrivacyPublic, "Friendly kickabout", "2025-09-02 10:00", StatusUpcoming)
	mk(tennis.ID, "Malmö", PrivacyFriends, "Doubles session", "2025-09-01 09:00", StatusUpcoming)
	mk(football.ID, "Stockholm", PrivacyPublic, "Old game", "2025-08-01 10:00", StatusCompleted)

	all, err := repo.ListUpcoming(ListFilters{})
	if err != nil {
		t.Fatalf("ListUpcoming failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 upcoming groups, got %d", len(all))
	}
	// Ordered by schedule ascending: the tennis session comes first.
	if all[0].SportName != "Tennis" {
		t.Errorf("expected tennis session first, got %q", all[0].SportName)
	}

	bySport, err := repo.ListUpcoming(ListFilters{SportID: fmt.Sprint(football.ID)})
	if err != nil {
		t.Fatalf("ListUpcoming by sport failed: %v", err)
	}
	if len(bySport) != 1 || bySport[0].SportName != "Football" {
		t.Errorf("sport filter returned wrong rows: %+v", bySport)
	}

	byCity, err := repo.ListUpcoming(ListFilters{City: "Malmö"})
	if err != nil {
		t.Fatalf("ListUpcoming by city failed: %v", err)
	}
	if len(byCity) != 1 || byCity[0].City != "Malmö" {
		t.Errorf("city filter returned wrong rows: %+v", byCity)
	}

	search, err := repo.ListUpcoming(ListFilters{Search: "KICK"})
	if err != nil {
		t.Fatalf("ListUpcoming by search failed: %v", err)
	}
	if len(search) != 1 || search[0].Details != "Friendly kickabout" {
		t.Errorf("case-insensitive search returned wrong rows: %+v", search)
	}

	none, err := repo.ListUpcoming(ListFilters{SportID: "all", City: "all", Privacy: "all"})
	if err != nil {
		t.Fatalf("ListUpcoming with 'all' filters failed: %v", err)
	}
	if len(none) != 2 {
		t.Errorf("'all' filters should not narrow the listing, got %d rows", len(none))
	}
}

// The recount operation rebuilds sports.group_count from the groups actually
// stored, repairing any drift in the denormalized counter.
func TestRecountGroupCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	sportRepo := sport.NewSportRepository(db)

	organizer := seedUser(t, db, "Emma Anderson", "emma")
	football := seedSport(t, db, "Football")
	tennis := seedSport(t, db, "Tennis")

	for _, sportID := range []uint{football.ID, football.ID, tennis.ID} {
		g := &Group{
			Title:       "Match",
			SportID:     sportID,
			OrganizerID: organizer.ID,
			City:        "Stockholm",
			DateTime:    "2025-09-14 18:30",
			Privacy:     PrivacyPublic,
			MaxMembers:  10,
			Status:      StatusUpcoming,
		}
		if err := repo.CreateWithOrganizer(g); err != nil {
			t.Fatalf("seed group failed: %v", err)
		}
	}

	// Force the counters out of step.
	if err := db.Model(&sport.Sport{}).Where("id = ?", football.ID).
		Update("group_count", 99).Error; err != nil {
		t.Fatalf("failed to drift counter: %v", err)
	}

	if err := sportRepo.RecountGroupCounts(); err != nil {
		t.Fatalf("RecountGroupCounts failed: %v", err)
	}

	var fb, tn sport.Sport
	if err := db.First(&fb, football.ID).Error; err != nil {
		t.Fatalf("failed to reload sport: %v", err)
	}
	if err := db.First(&tn, tennis.ID).Error; err != nil {
		t.Fatalf("failed to reload sport: %v", err)
	}
	if fb.GroupCount != 2 {
		t.Errorf("expected football group_count 2 after recount, got %d", fb.GroupCount)
	}
	if tn.GroupCount != 1 {
		t.Errorf("expected tennis group_count 1 after recount, got %d", tn.GroupCount)
	}
}

func TestGetGroupResponseMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)

	resp, err := repo.GetGroupResponse(12345)
	if err != nil {
		t.Fatalf("GetGroupResponse failed: %v", err)
	}
	if resp != nil {
		t.Errorf("expected nil for missing group, got %+v", resp)
	}
}
