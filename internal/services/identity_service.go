package services

import (
	"errors"

	"github.com/endfield/backend/internal/config"
	"github.com/endfield/backend/internal/models"
	jwtpkg "github.com/endfield/backend/pkg/jwt"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrUnauthorized: the token is missing, forged, expired or has no usable subject (401)
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrAccessDenied: the token is fine but its subject exists in neither identity table (403)
	ErrAccessDenied = errors.New("no identity found for subject")
)

type IdentityKind string

const (
	IdentityProfile IdentityKind = "profile"
	IdentityTempop  IdentityKind = "tempop"
)

// Identity is the resolved caller: exactly one of Profile or Tempop is set,
// discriminated by Kind. Consumers must branch on the variant; only Profile
// carries a role, and only role "admin" grants elevated privilege.
type Identity struct {
	Kind    IdentityKind
	Profile *models.Profile
	Tempop  *models.Tempop
}

func (i *Identity) ID() uuid.UUID {
	if i.Kind == IdentityProfile {
		return i.Profile.ID
	}
	return i.Tempop.ID
}

func (i *Identity) Code() string {
	if i.Kind == IdentityProfile {
		return i.Profile.Code
	}
	return i.Tempop.Code
}

func (i *Identity) Email() string {
	if i.Kind == IdentityProfile {
		return i.Profile.Email
	}
	return i.Tempop.Email
}

func (i *Identity) AvatarURL() string {
	if i.Kind == IdentityProfile {
		return i.Profile.AvatarURL
	}
	return i.Tempop.AvatarURL
}

// IsAdmin is true only for Profile identities with the admin role. A Tempop
// can never be an admin regardless of any stored field.
func (i *Identity) IsAdmin() bool {
	return i.Kind == IdentityProfile && i.Profile.IsAdmin()
}

// UploaderType is the discriminator persisted next to file uploader IDs
func (i *Identity) UploaderType() string {
	if i.Kind == IdentityProfile {
		return models.UploaderTypeProfile
	}
	return models.UploaderTypeTempop
}

type IdentityService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewIdentityService(db *gorm.DB, cfg *config.Config) *IdentityService {
	return &IdentityService{db: db, cfg: cfg}
}

// Resolve verifies a bearer token and maps its subject onto one of the two
// identity tables, profiles first. Applicants live in a separate table so a
// stale role default can never hand a pending user operator capabilities.
func (s *IdentityService) Resolve(tokenString string) (*Identity, error) {
	subject, err := jwtpkg.SubjectFromToken(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return nil, ErrUnauthorized
	}

	subjectID, err := uuid.Parse(subject)
	if err != nil {
		return nil, ErrUnauthorized
	}

	var profile models.Profile
	err = s.db.First(&profile, "id = ?", subjectID).Error
	if err == nil {
		return &Identity{Kind: IdentityProfile, Profile: &profile}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var tempop models.Tempop
	err = s.db.First(&tempop, "id = ?", subjectID).Error
	if err == nil {
		return &Identity{Kind: IdentityTempop, Tempop: &tempop}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrAccessDenied
}
