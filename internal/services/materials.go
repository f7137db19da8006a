package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/extract"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/repositories"
	"github.com/sbilibin2017/studydesk/internal/storage"
)

//go:generate mockgen -source=materials.go -destination=mock_materials.go -package=services

const (
	// DefaultMaxUploadSize is the upload limit used when none is configured.
	DefaultMaxUploadSize int64 = 50 << 20
	// DefaultTitle is used for uploads without a title.
	DefaultTitle = "Untitled"
	// MaxTitleLength is the maximum title length in characters.
	MaxTitleLength = 200

	timestampLayout = "20060102150405"
	maxNameAttempts = 100
)

var (
	ErrNoFile                   = errors.New("no file provided")
	ErrUnsupportedType          = errors.New("file type not allowed")
	ErrTooLarge                 = errors.New("file too large")
	ErrTitleTooLong             = errors.New("title too long")
	ErrMaterialNotFound         = errors.New("material not found")
	ErrUnparseable              = errors.New("could not parse file")
	ErrUnsupportedForExtraction = errors.New("text extraction not supported for file type")
)

// TooLargeError reports an upload over the configured limit.
type TooLargeError struct {
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file too large, max size %sMB", e.LimitMiB())
}

// Is makes errors.Is(err, ErrTooLarge) hold.
func (e *TooLargeError) Is(target error) bool {
	return target == ErrTooLarge
}

// LimitMiB renders the limit in MiB without a trailing ".0".
func (e *TooLargeError) LimitMiB() string {
	return strconv.FormatFloat(float64(e.Limit)/(1<<20), 'f', -1, 64)
}

// MaterialReader defines read operations for materials.
type MaterialReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MaterialDB, error)
	GetByIDAndUserID(ctx context.Context, materialID, userID uuid.UUID) (*models.MaterialDB, error)
}

// MaterialWriter defines write operations for materials.
type MaterialWriter interface {
	Save(ctx context.Context, material *models.MaterialDB) error
	Delete(ctx context.Context, materialID uuid.UUID) error
}

// ArtifactStorage persists uploaded files.
type ArtifactStorage interface {
	Save(ctx context.Context, name string, data []byte) (string, int64, error)
	Read(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

// MaterialService ingests, lists, reads and deletes study materials.
type MaterialService struct {
	reader    MaterialReader
	writer    MaterialWriter
	storage   ArtifactStorage
	publisher Publisher
	maxSize   int64
}

// NewMaterialService creates a MaterialService. A non-positive maxSize selects DefaultMaxUploadSize.
func NewMaterialService(
	reader MaterialReader,
	writer MaterialWriter,
	storage ArtifactStorage,
	publisher Publisher,
	maxSize int64,
) *MaterialService {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	return &MaterialService{
		reader:    reader,
		writer:    writer,
		storage:   storage,
		publisher: publisher,
		maxSize:   maxSize,
	}
}

// Ingest validates an upload, stores the artifact and records the material.
// Nothing is written when validation fails. If the row cannot be inserted the
// stored artifact is removed again.
func (s *MaterialService) Ingest(
	ctx context.Context,
	file io.Reader,
	filename string,
	ownerID uuid.UUID,
	title string,
	description *string,
) (*models.MaterialDB, error) {
	var data []byte
	if file != nil {
		var err error
		data, err = io.ReadAll(io.LimitReader(file, s.maxSize+1))
		if err != nil {
			logger.Log.Errorw("failed to read upload", "filename", filename, "error", err)
			return nil, err
		}
	}

	if filename == "" || len(data) == 0 {
		return nil, ErrNoFile
	}

	fileType := models.FileTypeOf(filename)
	if !models.IsAllowedFileType(fileType) {
		logger.Log.Infow("rejected upload", "filename", filename, "reason", "type")
		return nil, ErrUnsupportedType
	}

	if int64(len(data)) > s.maxSize {
		logger.Log.Infow("rejected upload", "filename", filename, "reason", "size")
		return nil, &TooLargeError{Limit: s.maxSize}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}

	now := time.Now().UTC()
	name := StoredName(ownerID, now, filename, fileType)

	path, size, err := s.save(ctx, name, fileType, data)
	if err != nil {
		logger.Log.Errorw("failed to store artifact", "name", name, "error", err)
		return nil, err
	}

	material := &models.MaterialDB{
		MaterialID:  uuid.New(),
		UserID:      ownerID,
		Title:       title,
		Description: description,
		FilePath:    path,
		FileType:    fileType,
		FileSize:    size,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if fileType == models.FileTypePDF {
		if pages, err := extract.PageCount(data); err == nil {
			material.Pages = &pages
		} else {
			logger.Log.Warnw("page count unavailable", "path", path, "error", err)
		}
	}

	if err := s.writer.Save(ctx, material); err != nil {
		logger.Log.Errorw("failed to save material, removing artifact", "path", path, "error", err)
		if derr := s.storage.Delete(ctx, path); derr != nil {
			logger.Log.Errorw("failed to remove orphaned artifact", "path", path, "error", derr)
		}
		return nil, err
	}

	s.publisher.Publish(ctx, ownerID, material.MaterialID, models.OperationMaterialUploaded)

	return material, nil
}

// save creates the artifact exclusively, inserting a -N counter before the
// extension while the name is taken.
func (s *MaterialService) save(ctx context.Context, name, fileType string, data []byte) (string, int64, error) {
	stem := strings.TrimSuffix(name, "."+fileType)

	candidate := name
	for n := 1; n <= maxNameAttempts; n++ {
		path, size, err := s.storage.Save(ctx, candidate, data)
		if !errors.Is(err, storage.ErrObjectExists) {
			return path, size, err
		}
		candidate = fmt.Sprintf("%s-%d.%s", stem, n, fileType)
	}
	return "", 0, fmt.Errorf("no free name for %q: %w", name, storage.ErrObjectExists)
}

// List returns the owner's materials.
func (s *MaterialService) List(ctx context.Context, ownerID uuid.UUID) ([]models.MaterialDB, error) {
	materials, err := s.reader.ListByUserID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list materials", "user_id", ownerID, "error", err)
		return nil, err
	}
	return materials, nil
}

// Get returns the material if ownerID owns it.
func (s *MaterialService) Get(ctx context.Context, materialID, ownerID uuid.UUID) (*models.MaterialDB, error) {
	material, err := s.reader.GetByIDAndUserID(ctx, materialID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get material", "material_id", materialID, "error", err)
		return nil, err
	}
	if material == nil {
		return nil, ErrMaterialNotFound
	}
	return material, nil
}

// ExtractText reads the stored artifact and returns its plain text.
// Read and parse failures are reported as ErrUnparseable and are not retried.
func (s *MaterialService) ExtractText(ctx context.Context, material *models.MaterialDB) (string, error) {
	data, err := s.storage.Read(ctx, material.FilePath)
	if err != nil {
		logger.Log.Warnw("failed to read artifact", "path", material.FilePath, "error", err)
		return "", ErrUnparseable
	}

	text, err := extract.Text(data, material.FileType)
	switch {
	case errors.Is(err, extract.ErrUnsupported):
		return "", ErrUnsupportedForExtraction
	case err != nil:
		logger.Log.Warnw("failed to extract text", "path", material.FilePath, "error", err)
		return "", ErrUnparseable
	}
	return text, nil
}

// LoadText returns the owned material together with its extracted text.
func (s *MaterialService) LoadText(ctx context.Context, materialID, ownerID uuid.UUID) (*models.MaterialDB, string, error) {
	material, err := s.Get(ctx, materialID, ownerID)
	if err != nil {
		return nil, "", err
	}
	text, err := s.ExtractText(ctx, material)
	if err != nil {
		return nil, "", err
	}
	return material, text, nil
}

// Delete removes the stored artifact and then the material rows.
func (s *MaterialService) Delete(ctx context.Context, materialID, ownerID uuid.UUID) error {
	material, err := s.Get(ctx, materialID, ownerID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, material.FilePath); err != nil {
		logger.Log.Errorw("failed to delete artifact", "path", material.FilePath, "error", err)
		return err
	}

	if err := s.writer.Delete(ctx, materialID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMaterialNotFound
		}
		logger.Log.Errorw("failed to delete material", "material_id", materialID, "error", err)
		return err
	}

	s.publisher.Publish(ctx, ownerID, materialID, models.OperationMaterialDeleted)

	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename strips directory components and unsafe characters from
// name. Separators and whitespace become underscores and leading or trailing
// dots and underscores are trimmed. The result always ends in "."+fileType
// with a lower-case extension;
// names that sanitize away fall back to "upload."+fileType.
func SanitizeFilename(name, fileType string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	if models.FileTypeOf(name) != fileType {
		return "upload." + fileType
	}
	stem := strings.TrimRight(name[:len(name)-len(fileType)-1], "._")
	if stem == "" {
		return "upload." + fileType
	}
	return stem + "." + fileType
}

// StoredName builds the artifact name {ownerID}_{YYYYMMDDHHMMSS}_{sanitized name}.
func StoredName(ownerID uuid.UUID, at time.Time, filename, fileType string) string {
	return fmt.Sprintf("%s_%s_%s", ownerID, at.UTC().Format(timestampLayout), SanitizeFilename(filename, fileType))
}
