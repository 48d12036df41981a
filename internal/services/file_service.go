package services

import (
	"context"
	"errors"
	"time"

	"github.com/endfield/backend/internal/config"
	"github.com/endfield/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrObjectDelete     = errors.New("failed to delete object from storage")
)

// ObjectStore is the slice of the storage gateway the resource services need
type ObjectStore interface {
	GenerateDownloadURL(ctx context.Context, key, originalFilename string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, key string) bool
}

type FileService struct {
	db      *gorm.DB
	storage ObjectStore
	cfg     *config.Config
}

func NewFileService(db *gorm.DB, storage ObjectStore, cfg *config.Config) *FileService {
	return &FileService{db: db, storage: storage, cfg: cfg}
}

// Create persists a file record. The uploader reference always comes from the
// resolved caller; client-supplied values are discarded so ownership cannot
// be spoofed.
func (s *FileService) Create(file *models.File, caller *Identity) (*models.File, error) {
	file.ID = 0
	file.UploaderID = caller.ID()
	file.UploaderType = caller.UploaderType()

	if err := s.db.Create(file).Error; err != nil {
		return nil, err
	}
	return file, nil
}

// List returns files visible to the caller, newest first. Admins see
// everything, everyone else only their own uploads. The optional prefix
// filters on MIME type (e.g. "audio/").
func (s *FileService) List(ctx context.Context, caller *Identity, mimePrefix string) ([]models.File, error) {
	query := s.db.Model(&models.File{})
	if !caller.IsAdmin() {
		query = query.Where("uploader_id = ?", caller.ID())
	}
	if mimePrefix != "" {
		query = query.Where("mime_type LIKE ?", mimePrefix+"%")
	}

	var files []models.File
	if err := query.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}

	for i := range files {
		s.decorate(ctx, &files[i])
	}
	return files, nil
}

// decorate swaps storage keys for freshly signed download URLs in the
// response projection. Presign failures leave the field undecorated instead
// of failing the listing.
func (s *FileService) decorate(ctx context.Context, f *models.File) {
	if url, err := s.storage.GenerateDownloadURL(ctx, f.R2Key, f.Filename, s.cfg.PresignExpiry); err == nil {
		f.URL = url
	}
	if f.CoverR2Key != "" {
		if url, err := s.storage.GenerateDownloadURL(ctx, f.CoverR2Key, "", s.cfg.PresignExpiry); err == nil {
			f.CoverR2Key = url
		}
	}
	if f.LyricsR2Key != "" {
		if url, err := s.storage.GenerateDownloadURL(ctx, f.LyricsR2Key, "", s.cfg.PresignExpiry); err == nil {
			f.LyricsR2Key = url
		}
	}
}

func (s *FileService) getOwned(caller *Identity, id uint) (*models.File, error) {
	var file models.File
	if err := s.db.First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	if !caller.IsAdmin() && file.UploaderID != caller.ID() {
		return nil, ErrPermissionDenied
	}
	return &file, nil
}

// Delete removes one file the caller owns (or any file for admins): the
// backing object goes first, then the row, committed together. A storage
// failure rolls the row delete back.
func (s *FileService) Delete(ctx context.Context, caller *Identity, id uint) error {
	file, err := s.getOwned(caller, id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if ok := s.storage.DeleteObject(ctx, file.R2Key); !ok {
			return ErrObjectDelete
		}
		// side objects are best effort
		if file.CoverR2Key != "" {
			s.storage.DeleteObject(ctx, file.CoverR2Key)
		}
		if file.LyricsR2Key != "" {
			s.storage.DeleteObject(ctx, file.LyricsR2Key)
		}
		return tx.Delete(&models.File{}, file.ID).Error
	})
}

// BatchDelete deletes every requested file the caller is permitted to delete
// and silently skips the rest, returning the number of rows removed.
func (s *FileService) BatchDelete(ctx context.Context, caller *Identity, ids []uint) (int64, error) {
	var files []models.File
	if err := s.db.Where("id IN ?", ids).Find(&files).Error; err != nil {
		return 0, err
	}

	permitted := make([]uint, 0, len(files))
	for _, f := range files {
		if caller.IsAdmin() || f.UploaderID == caller.ID() {
			permitted = append(permitted, f.ID)
		}
	}
	if len(permitted) == 0 {
		return 0, nil
	}

	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, f := range files {
			if caller.IsAdmin() || f.UploaderID == caller.ID() {
				s.storage.DeleteObject(ctx, f.R2Key)
			}
		}
		res := tx.Where("id IN ?", permitted).Delete(&models.File{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
