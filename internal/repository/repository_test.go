package repository

import (
	"testing"
	"time"

	"tracking-service/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// sqlite's LIKE is case-insensitive by default; postgres matches
	// case-sensitively
	if err := db.Exec("PRAGMA case_sensitive_like = ON").Error; err != nil {
		t.Fatalf("set case sensitive like: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Machine{},
		&model.Part{},
		&model.Job{},
		&model.Operation{},
		&model.Production{},
		&model.Hourly{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	repo, err := New(db)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := ParseDate(value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return day
}

func seedPart(t *testing.T, r *Repository, userID uint, partNumber, machType, active string) {
	t.Helper()
	part := &model.Part{PartNumber: partNumber, MachType: machType, Active: active}
	if err := r.CreatePart(userID, part); err != nil {
		t.Fatalf("seed part %s: %v", partNumber, err)
	}
}

func seedJob(t *testing.T, r *Repository, userID uint, jobNumber, partNumber, machType, delivery string) {
	t.Helper()
	job := &model.Job{
		JobNumber:    jobNumber,
		PartNumber:   partNumber,
		MachType:     machType,
		DeliveryDate: mustDate(t, delivery),
	}
	if err := r.CreateJob(userID, job); err != nil {
		t.Fatalf("seed job %s: %v", jobNumber, err)
	}
}

func TestNew_NilDB(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestGetUser(t *testing.T) {
	r := openTestRepo(t)
	if err := r.db.Create(&model.User{Username: "operator1"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	user, err := r.GetUser(1)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Username != "operator1" {
		t.Errorf("username = %q, want %q", user.Username, "operator1")
	}

	if _, err := r.GetUser(99); err == nil {
		t.Fatal("expected error for missing user")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-01-05", false},
		{"2024-01-05T13:45:00Z", false},
		{"01/05/2024", false},
		{"not-a-date", true},
		{"", true},
		{"2024-13-45", true},
	}
	for _, tt := range tests {
		day, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if day.Hour() != 0 || day.Minute() != 0 || day.Location() != time.UTC {
			t.Errorf("ParseDate(%q) = %v, want midnight UTC", tt.in, day)
		}
	}
}

func TestParseDate_SameDayRegardlessOfTime(t *testing.T) {
	a := mustDate(t, "2024-01-05")
	b := mustDate(t, "2024-01-05T23:59:00Z")
	if !a.Equal(b) {
		t.Errorf("dates differ: %v vs %v", a, b)
	}
}
