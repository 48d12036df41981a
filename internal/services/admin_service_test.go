package services

import (
	"errors"
	"testing"

	"github.com/endfield/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestApprovePromotesApplicant(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, testConfig())

	age := 27
	applicant := &models.Tempop{
		ID:      uuid.New(),
		Code:    "APP-0007",
		Email:   "applicant@endfield.local",
		Gender:  "f",
		Age:     &age,
		Address: "Block 4",
		Bio:     "hello",
		Status:  models.TempopStatusPending,
	}
	if err := db.Create(applicant).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	profile, err := svc.Approve(applicant.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}

	if profile.Code != "OP-0007" {
		t.Errorf("code = %q, want %q", profile.Code, "OP-0007")
	}
	if profile.ID != applicant.ID {
		t.Errorf("profile ID changed: %s != %s", profile.ID, applicant.ID)
	}
	if profile.Role != "operator" || profile.Department != "onboarding" {
		t.Errorf("policy fields = %q/%q", profile.Role, profile.Department)
	}
	if profile.Email != applicant.Email || profile.Gender != "f" || profile.Age == nil || *profile.Age != 27 {
		t.Errorf("personal fields not copied: %+v", profile)
	}

	var stored models.Profile
	if err := db.First(&stored, "id = ?", applicant.ID).Error; err != nil {
		t.Fatalf("profile row missing after approval: %v", err)
	}

	var gone models.Tempop
	err = db.First(&gone, "id = ?", applicant.ID).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("tempop row still present after approval (err=%v)", err)
	}
}

func TestApproveReplacesOnlyFirstAPP(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, testConfig())

	applicant := seedTempop(t, db, "APP-APP1")
	profile, err := svc.Approve(applicant.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if profile.Code != "OP-APP1" {
		t.Errorf("code = %q, want %q", profile.Code, "OP-APP1")
	}
}

func TestApproveUnknownApplicant(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, testConfig())

	_, err := svc.Approve(uuid.New())
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
}

func TestApproveRollsBackOnDuplicateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, testConfig())

	applicant := seedTempop(t, db, "APP-0042")
	// a profile with the same ID forces the insert to fail
	if err := db.Create(&models.Profile{ID: applicant.ID, Code: "OP-X"}).Error; err != nil {
		t.Fatalf("seed conflicting profile: %v", err)
	}

	if _, err := svc.Approve(applicant.ID); err == nil {
		t.Fatal("Approve succeeded despite conflicting profile")
	}

	var still models.Tempop
	if err := db.First(&still, "id = ?", applicant.ID).Error; err != nil {
		t.Errorf("tempop row deleted despite rollback: %v", err)
	}
}

func TestListApplicationsPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, testConfig())

	for i := 0; i < 12; i++ {
		seedTempop(t, db, "APP-"+string(rune('A'+i)))
	}
	// approved/rejected rows never show up
	done := seedTempop(t, db, "APP-DONE")
	db.Model(done).Update("status", "rejected")

	items, total, pages, err := svc.ListApplications(1, 10)
	if err != nil {
		t.Fatalf("ListApplications: %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, want 12", total)
	}
	if len(items) != 10 {
		t.Errorf("page 1 size = %d, want 10", len(items))
	}
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}

	items, _, _, err = svc.ListApplications(2, 10)
	if err != nil {
		t.Fatalf("ListApplications page 2: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("page 2 size = %d, want 2", len(items))
	}

	// out-of-bounds sizes fall back to the defaults
	items, _, _, err = svc.ListApplications(0, 500)
	if err != nil {
		t.Fatalf("ListApplications clamped: %v", err)
	}
	if len(items) != 12 {
		t.Errorf("clamped size = %d items, want 12 (size capped at 50)", len(items))
	}
}
