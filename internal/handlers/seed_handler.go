package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthview/internal/errors"
	"wealthview/internal/seed"
	"wealthview/internal/services"
)

// SeedHandler triggers seed runs over HTTP.
type SeedHandler struct {
	seedService services.SeedServicer
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(seedService services.SeedServicer) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedRequest is the optional body of a seed request. When Records is
// omitted the configured seed source is used. Numbers arrive as json.Number
// when binding.EnableDecoderUseNumber is set, as the router does.
type SeedRequest struct {
	Records *[]map[string]any `json:"records"`
}

// SeedResponse reports the outcome of a seed run.
type SeedResponse struct {
	Message  string   `json:"message"`
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

func newSeedResponse(res *seed.Result) SeedResponse {
	return SeedResponse{
		Message:  res.Message(),
		Inserted: res.Inserted,
		Skipped:  res.Skipped,
		Errors:   res.Errors,
	}
}

// Seed handles a seed run
// @Summary     Seed assets
// @Description Seeds assets from the request body, or from the configured seed source when no records are supplied. Assets whose asset_id already exists are skipped.
// @Tags        seed
// @Accept      json
// @Produce     json
// @Param       request body SeedRequest false "Records to seed"
// @Success     200 {object} SeedResponse "Seed summary"
// @Failure     400 {object} ErrorResponse "Malformed body"
// @Failure     404 {object} ErrorResponse "Seed source not found"
// @Failure     500 {object} ErrorResponse "Seeding failed"
// @Router      /seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	// An empty body selects the configured seed source.
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var (
		res *seed.Result
		err error
	)
	if req.Records != nil {
		res, err = h.seedService.Seed(c.Request.Context(), *req.Records)
	} else {
		res, err = h.seedService.SeedFromSource(c.Request.Context(), "")
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSeedResponse(res))
}
