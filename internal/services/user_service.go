package services

import (
	"context"
	"strings"

	"github.com/endfield/backend/internal/config"
	"github.com/endfield/backend/pkg/validation"
	"gorm.io/gorm"
)

type UserService struct {
	db      *gorm.DB
	storage ObjectStore
	cfg     *config.Config
}

func NewUserService(db *gorm.DB, storage ObjectStore, cfg *config.Config) *UserService {
	return &UserService{db: db, storage: storage, cfg: cfg}
}

// UserUpdate carries a partial update of the caller's own record. Pointer
// fields distinguish "absent" from "set to empty".
type UserUpdate struct {
	Code       *string `json:"code"`
	Department *string `json:"department"`
	AvatarURL  *string `json:"avatar_url"`
	Gender     *string `json:"gender"`
	Age        *int    `json:"age"`
	Address    *string `json:"address"`
	Bio        *string `json:"bio"`
}

// ResolveAvatarURL turns a stored avatar reference into something a browser
// can fetch. Absolute links pass through untouched (external avatars and
// legacy rows); anything else is treated as a storage key and presigned.
// Returns empty when no usable URL can be produced.
func (s *UserService) ResolveAvatarURL(ctx context.Context, avatar string) string {
	if avatar == "" {
		return ""
	}
	if strings.HasPrefix(avatar, "http://") || strings.HasPrefix(avatar, "https://") {
		return avatar
	}
	url, err := s.storage.GenerateDownloadURL(ctx, avatar, "", s.cfg.PresignExpiry)
	if err != nil {
		return ""
	}
	return url
}

// UpdateMe applies the present fields to the caller's own row. Department is
// a Profile-only field; a Tempop sending one has it silently ignored.
func (s *UserService) UpdateMe(caller *Identity, upd *UserUpdate) error {
	switch caller.Kind {
	case IdentityProfile:
		p := caller.Profile
		if upd.Code != nil {
			p.Code = *upd.Code
		}
		if upd.Department != nil {
			p.Department = *upd.Department
		}
		if upd.AvatarURL != nil {
			p.AvatarURL = *upd.AvatarURL
		}
		if upd.Gender != nil {
			p.Gender = *upd.Gender
		}
		if upd.Age != nil {
			p.Age = upd.Age
		}
		if upd.Address != nil {
			p.Address = validation.SanitizeString(*upd.Address)
		}
		if upd.Bio != nil {
			p.Bio = validation.SanitizeString(*upd.Bio)
		}
		return s.db.Save(p).Error

	case IdentityTempop:
		t := caller.Tempop
		if upd.Code != nil {
			t.Code = *upd.Code
		}
		if upd.AvatarURL != nil {
			t.AvatarURL = *upd.AvatarURL
		}
		if upd.Gender != nil {
			t.Gender = *upd.Gender
		}
		if upd.Age != nil {
			t.Age = upd.Age
		}
		if upd.Address != nil {
			t.Address = validation.SanitizeString(*upd.Address)
		}
		if upd.Bio != nil {
			t.Bio = validation.SanitizeString(*upd.Bio)
		}
		return s.db.Save(t).Error
	}
	return ErrUnauthorized
}
