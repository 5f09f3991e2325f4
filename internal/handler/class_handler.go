package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AdityaSah2030/Attendance-System/internal/config"
	"github.com/AdityaSah2030/Attendance-System/internal/model"
	"github.com/AdityaSah2030/Attendance-System/internal/response"
	"github.com/AdityaSah2030/Attendance-System/internal/service"
	"github.com/AdityaSah2030/Attendance-System/internal/validator"
)

// Roster files must be OOXML spreadsheets; anything else fails to parse
// anyway, so reject it before writing to disk.
var allowedRosterExts = map[string]struct{}{
	".xlsx": {},
	".xlsm": {},
	".xltx": {},
}

// ClassHandler handles class registration and roster queries.
type ClassHandler struct {
	roster *service.RosterService
	cfg    *config.Config
	log    zerolog.Logger
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(roster *service.RosterService, cfg *config.Config, log zerolog.Logger) *ClassHandler {
	return &ClassHandler{
		roster: roster,
		cfg:    cfg,
		log:    log.With().Str("component", "class_handler").Logger(),
	}
}

// LoadClass godoc
// POST /api/v1/classes
// Registers a class from a roster file already on the server.
func (h *ClassHandler) LoadClass(c *gin.Context) {
	var req model.LoadClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	rec, err := h.roster.LoadClass(req.Path)
	if err != nil {
		h.log.Warn().Err(err).Str("path", req.Path).Msg("class load rejected")
		if errors.Is(err, service.ErrLoadFailed) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrLoadFailed)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"class": rec.Summary()})
}

// UploadClass godoc
// POST /api/v1/classes/upload
// Accepts a roster spreadsheet upload, stores it under the roster
// directory and registers it as a class. The class name derives from the
// uploaded file's base name, so re-uploading the same file replaces the
// class (and its stored roster).
func (h *ClassHandler) UploadClass(c *gin.Context) {
	fileHeader, err := c.FormFile("roster")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedRosterExts[ext]; !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		return
	}
	if fileHeader.Size > h.cfg.MaxUploadBytes {
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		return
	}

	destPath, err := h.storeRoster(fileHeader)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to store uploaded roster")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	rec, err := h.roster.LoadClass(destPath)
	if err != nil {
		h.log.Warn().Err(err).Str("path", destPath).Msg("uploaded roster rejected")
		if errors.Is(err, service.ErrLoadFailed) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrLoadFailed)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"class": rec.Summary()})
}

// ListClasses godoc
// GET /api/v1/classes
// Lists all loaded classes.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"classes": h.roster.List()})
}

// ListStudents godoc
// GET /api/v1/classes/:name/students
// Returns the ordered (id, name) pairs of a class roster.
func (h *ClassHandler) ListStudents(c *gin.Context) {
	students, err := h.roster.Students(c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrClassNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// storeRoster copies the upload into the roster directory under its
// original base name, which is what the class name derives from.
func (h *ClassHandler) storeRoster(header *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.cfg.RosterDir, 0o755); err != nil {
		return "", err
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destPath := filepath.Join(h.cfg.RosterDir, filepath.Base(header.Filename))
	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return destPath, nil
}
