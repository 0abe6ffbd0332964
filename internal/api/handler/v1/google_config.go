package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magscene/magsav-api/internal/api/handler/v1/request"
	"github.com/magscene/magsav-api/internal/api/handler/v1/response"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/google"
)

type GoogleConfigService interface {
	Get(ctx context.Context) (domain.GoogleServicesConfig, error)
	Save(ctx context.Context, c domain.GoogleServicesConfig) (domain.GoogleServicesConfig, error)
	Reset() domain.GoogleServicesConfig
	Validate(ctx context.Context, c domain.GoogleServicesConfig) (map[string]string, error)
	Stats(ctx context.Context, status domain.GoogleStatus) (domain.GoogleConfigStats, error)
}

// ConfigReloader is the part of the Google integration the configuration
// endpoints drive.
type ConfigReloader interface {
	Reload(ctx context.Context) bool
	Status() domain.GoogleStatus
	AuthorizationURLFor(c domain.GoogleServicesConfig) (string, error)
}

type GoogleConfigHandler struct {
	svc         GoogleConfigService
	integration ConfigReloader
}

func NewGoogleConfigHandler(svc GoogleConfigService, integration ConfigReloader) *GoogleConfigHandler {
	return &GoogleConfigHandler{
		svc:         svc,
		integration: integration,
	}
}

// HandleGetConfig godoc
// @Summary      Get the Google services configuration
// @Description  Defaults are returned while nothing is stored. Secrets and tokens are never rendered.
// @Tags         google-config
// @Produce      json
// @Success      200  {object}  response.GoogleConfig
// @Router       /api/v1/google/config [get]
// @Security BearerAuth
func (h *GoogleConfigHandler) HandleGetConfig(ctx *gin.Context) {
	c, err := h.svc.Get(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetConfig -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewGoogleConfig(c))
}

// HandleUpdateConfig godoc
// @Summary      Store the Google services configuration
// @Description  The integration reloads the new configuration right away.
// @Tags         google-config
// @Accept       json
// @Produce      json
// @Param        request  body      request.GoogleConfigRequest  true  "request body"
// @Success      200      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /api/v1/google/config [put]
// @Security BearerAuth
func (h *GoogleConfigHandler) HandleUpdateConfig(ctx *gin.Context) {
	var req request.GoogleConfigRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if _, err := h.svc.Save(ctx.Request.Context(), req.ToDomain()); err != nil {
		err = fmt.Errorf("v1.HandleUpdateConfig -> h.svc.Save -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.integration.Reload(ctx.Request.Context())

	ctx.JSON(http.StatusOK, response.OK("Configuration mise à jour avec succès"))
}

// HandleTestOAuth godoc
// @Summary      Build the consent URL for a configuration
// @Tags         google-config
// @Accept       json
// @Produce      json
// @Param        request  body      request.GoogleConfigRequest  true  "request body"
// @Success      200      {object}  response.AuthURL
// @Failure      400      {object}  response.Err
// @Router       /api/v1/google/config/test-oauth [post]
// @Security BearerAuth
func (h *GoogleConfigHandler) HandleTestOAuth(ctx *gin.Context) {
	var req request.GoogleConfigRequest
	if !bindJSON(ctx, &req) {
		return
	}

	c := req.ToDomain()
	if c.ClientID == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("Client ID manquant")))
		return
	}
	if c.ClientSecret == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("Client Secret manquant")))
		return
	}

	url, err := h.integration.AuthorizationURLFor(c)
	if err != nil {
		if errors.Is(err, google.ErrNotConfigured) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleTestOAuth -> h.integration.AuthorizationURLFor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.AuthURL{
		Success: true,
		Message: "Configuration OAuth2 valide",
		AuthURL: url,
	})
}

// HandleResetConfig godoc
// @Summary      Default configuration with every service switched on
// @Description  Nothing is stored. PUT the result to keep it.
// @Tags         google-config
// @Produce      json
// @Success      200  {object}  response.GoogleConfig
// @Router       /api/v1/google/config/reset [post]
// @Security BearerAuth
func (h *GoogleConfigHandler) HandleResetConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.NewGoogleConfig(h.svc.Reset()))
}

// HandleValidateConfig godoc
// @Summary      Check a configuration for completeness
// @Description  Always 200. Field errors are listed under errors.
// @Tags         google-config
// @Accept       json
// @Produce      json
// @Param        request  body      request.GoogleConfigRequest  true  "request body"
// @Success      200      {object}  response.GoogleValidation
// @Failure      400      {object}  response.Err
// @Router       /api/v1/google/config/validate [post]
// @Security BearerAuth
func (h *GoogleConfigHandler) HandleValidateConfig(ctx *gin.Context) {
	var req request.GoogleConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fields, err := h.svc.Validate(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleValidateConfig -> h.svc.Validate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if len(fields) > 0 {
		ctx.JSON(http.StatusOK, response.GoogleValidation{
			Success: false,
			Message: "Erreurs de validation trouvées",
			Errors:  fields,
		})
		return
	}

	ctx.JSON(http.StatusOK, response.GoogleValidation{Success: true, Message: "Configuration valide"})
}

// HandleConfigStats godoc
// @Summary      Google services usage
// @Tags         google-config
// @Produce      json
// @Success      200  {object}  domain.GoogleConfigStats
// @Router       /api/v1/google/config/stats [get]
// @Security BearerAuth
func (h *GoogleConfigHandler) HandleConfigStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context(), h.integration.Status())
	if err != nil {
		err = fmt.Errorf("v1.HandleConfigStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
