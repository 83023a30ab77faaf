package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// maxImportBytes caps the size of an uploaded export.
const maxImportBytes = 32 << 20

// BackupHandler handles database backups, restores and JSON transfer.
type BackupHandler struct {
	backupService services.BackupServicer
	auditService  services.AuditServicer
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService services.BackupServicer, auditService services.AuditServicer) *BackupHandler {
	return &BackupHandler{backupService: backupService, auditService: auditService}
}

// CreateBackupRequest represents the optional name of a manual backup.
type CreateBackupRequest struct {
	Name string `json:"name" binding:"max=100"`
}

// CleanupRequest represents how many backups to keep.
type CleanupRequest struct {
	KeepCount int `json:"keep_count" binding:"omitempty,min=1,max=1000"`
}

// CreateBackup snapshots the database
// @Summary     Create backup
// @Tags        backup
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBackupRequest false "Backup name"
// @Success     201 {object} backup.Info "Backup created"
// @Failure     400 {object} ErrorResponse "Invalid input or unsupported driver"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/create [post]
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	var req CreateBackupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	info, err := h.backupService.CreateBackup(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_BACKUP", "backup", info.FileName, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, gin.H{"backup": info})
}

// ListBackups lists backups, newest first
// @Summary     List backups
// @Tags        backup
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]backup.Info "Backups"
// @Failure     400 {object} ErrorResponse "Unsupported driver"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/list [get]
func (h *BackupHandler) ListBackups(c *gin.Context) {
	backups, err := h.backupService.ListBackups()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"backups": backups})
}

// RestoreBackup replaces the live data with a backup
// @Summary     Restore backup
// @Description Replace all data with the contents of a backup file. The current data is backed up first.
// @Tags        backup
// @Produce     json
// @Security    BearerAuth
// @Param       file path string true "Backup file name"
// @Success     200 {object} map[string]string "Backup restored"
// @Failure     400 {object} ErrorResponse "Invalid backup name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Backup not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/restore/{file} [post]
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	fileName := c.Param("file")
	if err := h.backupService.RestoreBackup(fileName); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("RESTORE_BACKUP", "backup", fileName, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Backup restored successfully"})
}

// Export downloads every domain table as JSON
// @Summary     Export data
// @Tags        backup
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} backup.Snapshot "Exported data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	snapshot, err := h.backupService.Export()
	if err != nil {
		respondWithError(c, err)
		return
	}

	fileName := "fintrack_export_" + snapshot.ExportedAt.Format("20060102_150405") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.JSON(http.StatusOK, snapshot)
}

// Import replaces every domain table with an uploaded export
// @Summary     Import data
// @Description Accepts a multipart "file" field or a raw JSON body. All rows are replaced in one transaction.
// @Tags        backup
// @Accept      json,mpfd
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file false "Export file"
// @Success     200 {object} backup.ImportResult "Import summary"
// @Failure     400 {object} ErrorResponse "Invalid import"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/import [post]
func (h *BackupHandler) Import(c *gin.Context) {
	data, err := readImportPayload(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.backupService.Import(data)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("IMPORT_DATA", "backup", result.BackupFile, c.ClientIP(),
		map[string]any{"expenses": result.Expenses, "incomes": result.Incomes})

	c.JSON(http.StatusOK, gin.H{"import": result})
}

func readImportPayload(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	var data []byte
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "No file provided")
		}
		f, err := header.Open()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		defer f.Close()
		if data, err = io.ReadAll(f); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
	} else {
		raw, err := c.GetRawData()
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		data = raw
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "No file provided")
	}
	return data, nil
}

// Cleanup deletes all but the newest backups
// @Summary     Clean up backups
// @Tags        backup
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CleanupRequest false "How many backups to keep (default 10)"
// @Success     200 {object} map[string]interface{} "Cleanup summary"
// @Failure     400 {object} ErrorResponse "Invalid input or unsupported driver"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/cleanup [post]
func (h *BackupHandler) Cleanup(c *gin.Context) {
	var req CleanupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	removed, err := h.backupService.Cleanup(req.KeepCount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CLEANUP_BACKUPS", "backup", "", c.ClientIP(), map[string]any{"removed": removed})

	c.JSON(http.StatusOK, gin.H{"removed": removed, "message": "Old backups cleaned up"})
}

// Download streams a backup file
// @Summary     Download backup
// @Tags        backup
// @Produce     octet-stream
// @Security    BearerAuth
// @Param       file path string true "Backup file name"
// @Success     200 {file} binary "Backup file"
// @Failure     400 {object} ErrorResponse "Invalid backup name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Backup not found"
// @Router      /backup/download/{file} [get]
func (h *BackupHandler) Download(c *gin.Context) {
	fileName := c.Param("file")
	path, err := h.backupService.BackupPath(fileName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.FileAttachment(path, fileName)
}
