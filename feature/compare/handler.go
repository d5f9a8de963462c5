package compare

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"migration-validator/core/diff"
	"migration-validator/core/logger"
	"migration-validator/core/table"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshot comparison.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/compare", h.HandleCompare)
}

// HandleCompare diffs two uploaded CSV snapshots and returns the report.
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	oldRaw, err := formFileContent(c, "old")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, `missing or unreadable "old" file`)
	}
	newRaw, err := formFileContent(c, "new")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, `missing or unreadable "new" file`)
	}

	keyColumn := c.FormValue("key")
	var columns []string
	if cols := strings.TrimSpace(c.FormValue("cols")); cols != "" {
		for _, col := range strings.Split(cols, ",") {
			if col = strings.TrimSpace(col); col != "" {
				columns = append(columns, col)
			}
		}
	}

	report, err := h.service.Compare(oldRaw, newRaw, keyColumn, columns)
	if err != nil {
		var cerr *diff.ConfigError
		if errors.As(err, &cerr) {
			return fiber.NewError(fiber.StatusBadRequest, cerr.Error())
		}
		var perr *table.ParseError
		if errors.As(err, &perr) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		l.Error("Comparison failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "comparison failed")
	}

	return c.JSON(report)
}

// formFileContent reads one uploaded multipart file into memory.
func formFileContent(c *fiber.Ctx, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
