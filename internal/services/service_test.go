package services

import (
	"context"
	"testing"
	"time"

	"github.com/endfield/backend/internal/config"
	"github.com/endfield/backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                "test-secret",
		PresignExpiry:            time.Hour,
		ApproveDefaultRole:       "operator",
		ApproveDefaultDepartment: "onboarding",
		ApproveDefaultAvatarURL:  "https://ui-avatars.com/api/?name=OP",
	}
}

// fakeStore is an in-memory ObjectStore double
type fakeStore struct {
	signErr     error
	deleteFails map[string]bool
	deleted     []string
}

func (f *fakeStore) GenerateDownloadURL(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	return "https://signed.example/" + key, nil
}

func (f *fakeStore) DeleteObject(_ context.Context, key string) bool {
	if f.deleteFails[key] {
		return false
	}
	f.deleted = append(f.deleted, key)
	return true
}

func seedProfile(t *testing.T, db *gorm.DB, code, role string) *models.Profile {
	t.Helper()
	p := &models.Profile{
		ID:    uuid.New(),
		Code:  code,
		Role:  role,
		Email: code + "@endfield.local",
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}

func seedTempop(t *testing.T, db *gorm.DB, code string) *models.Tempop {
	t.Helper()
	tp := &models.Tempop{
		ID:     uuid.New(),
		Code:   code,
		Email:  code + "@endfield.local",
		Status: models.TempopStatusPending,
	}
	if err := db.Create(tp).Error; err != nil {
		t.Fatalf("seed tempop: %v", err)
	}
	return tp
}

func seedFile(t *testing.T, db *gorm.DB, uploader uuid.UUID, filename, key, mimeType string, createdAt time.Time) *models.File {
	t.Helper()
	f := &models.File{
		UploaderID:   uploader,
		UploaderType: models.UploaderTypeProfile,
		Filename:     filename,
		R2Key:        key,
		MimeType:     mimeType,
		CreatedAt:    createdAt,
	}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("seed file: %v", err)
	}
	return f
}

func profileIdentity(p *models.Profile) *Identity {
	return &Identity{Kind: IdentityProfile, Profile: p}
}

func tempopIdentity(tp *models.Tempop) *Identity {
	return &Identity{Kind: IdentityTempop, Tempop: tp}
}
