package v1

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/magscene/magsav-api/internal/api/handler/v1/response"
	"github.com/magscene/magsav-api/internal/csvimport"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/service"
)

type Importer interface {
	Import(ctx context.Context, entity string, r io.Reader, dryRun bool) (domain.ImportResult, error)
}

type Exporter interface {
	Export(ctx context.Context, entity, format string) ([]byte, string, error)
}

// TransferHandler moves records in and out in bulk.
type TransferHandler struct {
	importer       Importer
	exporter       Exporter
	maxUploadBytes int64
}

func NewTransferHandler(importer Importer, exporter Exporter, maxUploadBytes int64) *TransferHandler {
	return &TransferHandler{
		importer:       importer,
		exporter:       exporter,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleImport godoc
// @Summary      Import a CSV or JSON configuration file
// @Description  Sociétés and véhicules come as CSV: separator, quoting and header spelling are detected. Categories (a nested tree) and specialites (a string array) come as JSON. Existing records are skipped.
// @Tags         transfer
// @Accept       multipart/form-data
// @Produce      json
// @Param        entity   path      string  true   "societes, vehicules, categories or specialites"
// @Param        dry_run  query     bool    false  "validate without writing"
// @Param        file     formData  file    true   "CSV or JSON file"
// @Success      200      {object}  domain.ImportResult
// @Failure      400      {object}  response.Err
// @Failure      413      {object}  response.Err
// @Router       /api/v1/import/{entity} [post]
// @Security BearerAuth
func (h *TransferHandler) HandleImport(ctx *gin.Context) {
	entity := ctx.Param("entity")
	if !slices.Contains(service.ImportEntities, entity) {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("import impossible pour %q", entity)))
		return
	}

	dryRun, err := strconv.ParseBool(ctx.DefaultQuery("dry_run", "false"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid dry_run %q", ctx.Query("dry_run"))))
		return
	}

	if h.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxUploadBytes)
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.RenderErr(ctx, response.ErrTooLarge(tooLarge.Limit))
			return
		}

		response.RenderErr(ctx, response.ErrBadRequest(errors.New("le fichier est requis (champ file)")))
		return
	}

	file, err := header.Open()
	if err != nil {
		err = fmt.Errorf("v1.HandleImport -> header.Open -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	defer file.Close()

	result, err := h.importer.Import(ctx.Request.Context(), entity, file, dryRun)
	if err != nil {
		var parseErr *csv.ParseError
		switch {
		case errors.Is(err, csvimport.ErrEmptyFile),
			errors.Is(err, service.ErrMissingColumn),
			errors.Is(err, service.ErrInvalidConfig),
			errors.As(err, &parseErr):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleImport -> h.importer.Import -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleExport godoc
// @Summary      Export every record of an entity
// @Tags         transfer
// @Produce      json
// @Produce      application/yaml
// @Param        entity  path      string  true   "societes, commandes, planifications, techniciens, vehicules, categories or specialites"
// @Param        format  query     string  false  "json or yaml"  default(json)
// @Success      200     {file}    file
// @Failure      400     {object}  response.Err
// @Router       /api/v1/export/{entity} [get]
// @Security BearerAuth
func (h *TransferHandler) HandleExport(ctx *gin.Context) {
	entity := ctx.Param("entity")

	data, contentType, err := h.exporter.Export(ctx.Request.Context(), entity, ctx.Query("format"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownFormat):
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("format inconnu: %q", ctx.Query("format"))))
		case errors.Is(err, service.ErrUnknownEntity):
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("export impossible pour %q", entity)))
		default:
			err = fmt.Errorf("v1.HandleExport -> h.exporter.Export -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ext := "json"
	if contentType != "application/json" {
		ext = "yaml"
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, entity, ext))
	ctx.Data(http.StatusOK, contentType, data)
}
