// Package backup snapshots the database to files, restores snapshots, and
// moves the whole dataset in and out as JSON.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fintrack/internal/database"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

const (
	// DefaultKeep is the number of backups Cleanup keeps when given none.
	DefaultKeep = 10

	timestampLayout = "20060102_150405"
	backupExt       = ".db"
	metadataExt     = ".json"
)

var (
	unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	backupFileName  = regexp.MustCompile(`^[A-Za-z0-9_-]+\.db$`)
)

// Info describes one backup file. It is stored next to the file as JSON.
type Info struct {
	FileName    string    `json:"file_name"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	FileSize    int64     `json:"file_size"`
}

// Service manages backups of a single database. File operations are only
// available for sqlite; Export and Import work on every driver.
type Service struct {
	db     *gorm.DB
	driver string
	dir    string
	mu     sync.Mutex
	now    func() time.Time
	log    *zap.SugaredLogger
}

// NewService creates a backup service writing into dir.
func NewService(db *gorm.DB, driver, dir string) *Service {
	return &Service{
		db:     db,
		driver: driver,
		dir:    dir,
		now:    time.Now,
		log:    logger.Named("backup"),
	}
}

// CreateBackup snapshots the database as <name>.db. A blank name becomes
// backup_<timestamp>.
func (s *Service) CreateBackup(name string) (*Info, error) {
	if err := s.requireFiles(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	name = sanitizeName(name)
	if name == "" {
		name = "backup_" + s.timestamp()
	}
	return s.create(name, "Backup created at "+s.now().UTC().Format(time.RFC3339))
}

// create writes the snapshot and its metadata. Callers hold mu.
func (s *Service) create(name, description string) (*Info, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	fileName := name + backupExt
	path := filepath.Join(s.dir, fileName)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Exec("VACUUM INTO ?", path).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("vacuum into %s: %w", path, err))
	}
	stat, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	info := &Info{
		FileName:    fileName,
		CreatedAt:   s.now().UTC(),
		Description: description,
		FileSize:    stat.Size(),
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name+metadataExt), data, 0o644); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("backup created", "file", fileName, "size", info.FileSize)
	return info, nil
}

// ListBackups returns backups that have readable metadata and an existing
// file, newest first.
func (s *Service) ListBackups() ([]Info, error) {
	if err := s.requireFiles(); err != nil {
		return nil, err
	}
	return s.list()
}

func (s *Service) list() ([]Info, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*"+metadataExt))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	backups := make([]Info, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			s.log.Warnw("skipping unreadable backup metadata", "file", p, "error", err)
			continue
		}
		var info Info
		if err := json.Unmarshal(data, &info); err != nil || info.FileName == "" {
			s.log.Warnw("skipping invalid backup metadata", "file", p, "error", err)
			continue
		}
		if _, err := os.Stat(filepath.Join(s.dir, filepath.Base(info.FileName))); err != nil {
			continue
		}
		backups = append(backups, info)
	}
	sort.SliceStable(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// RestoreBackup replaces the live data with the contents of a backup file.
// The current data is backed up first.
func (s *Service) RestoreBackup(fileName string) error {
	path, err := s.BackupPath(fileName)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := readSnapshotFile(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}
	if _, err := s.create("before_restore_"+s.timestamp(), "Automatic backup before restoring "+fileName); err != nil {
		return err
	}
	if err := s.replaceAll(snapshot); err != nil {
		return err
	}

	s.log.Infow("backup restored", "file", fileName)
	return nil
}

// Cleanup deletes all but the keep newest backups and returns how many
// were removed.
func (s *Service) Cleanup(keep int) (int, error) {
	if err := s.requireFiles(); err != nil {
		return 0, err
	}
	if keep <= 0 {
		keep = DefaultKeep
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	backups, err := s.list()
	if err != nil {
		return 0, err
	}
	removed := 0
	for i := keep; i < len(backups); i++ {
		fileName := filepath.Base(backups[i].FileName)
		stem := strings.TrimSuffix(fileName, backupExt)
		if err := os.Remove(filepath.Join(s.dir, fileName)); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.Warnw("failed to delete backup", "file", fileName, "error", err)
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, stem+metadataExt)); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.Warnw("failed to delete backup metadata", "file", fileName, "error", err)
		}
		removed++
	}
	if removed > 0 {
		s.log.Infow("old backups removed", "removed", removed, "kept", keep)
	}
	return removed, nil
}

// BackupPath resolves a backup file name to its path on disk.
func (s *Service) BackupPath(fileName string) (string, error) {
	if err := s.requireFiles(); err != nil {
		return "", err
	}
	if !backupFileName.MatchString(fileName) {
		return "", apperrors.ErrInvalidBackupName
	}
	path := filepath.Join(s.dir, fileName)
	stat, err := os.Stat(path)
	if err != nil || stat.IsDir() {
		return "", apperrors.ErrBackupNotFound
	}
	return path, nil
}

func (s *Service) requireFiles() error {
	if s.driver != database.DriverSQLite {
		return apperrors.ErrBackupUnsupported
	}
	return nil
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

// sanitizeName reduces a requested backup name to letters, digits, '_' and
// '-'. It returns "" when nothing usable is left.
func sanitizeName(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), backupExt)
	name = unsafeNameChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "_")
}
