package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AINative-Studio/kwanzaa-sub004/app"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/evidence"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
	apperrors "github.com/AINative-Studio/kwanzaa-sub004/internal/errors"
)

// EvaluateHandler handles answer-policy evaluation requests
type EvaluateHandler struct {
	service  *app.EvaluationService
	registry *policy.Registry
}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler(service *app.EvaluationService, registry *policy.Registry) *EvaluateHandler {
	return &EvaluateHandler{service: service, registry: registry}
}

// togglesBody carries the optional per-request policy adjustments
type togglesBody struct {
	RequireCitations          *bool    `json:"require_citations"`
	PrimarySourcesOnly        *bool    `json:"primary_sources_only"`
	CreativeMode              *bool    `json:"creative_mode"`
	CustomMinSources          *int     `json:"custom_min_sources"`
	CustomSimilarityThreshold *float64 `json:"custom_similarity_threshold"`
}

// evaluateBody is the POST /v1/evaluate request payload
type evaluateBody struct {
	Query    string            `json:"query" binding:"required"`
	Persona  string            `json:"persona" binding:"required"`
	Toggles  *togglesBody      `json:"toggles"`
	Evidence []evidence.Record `json:"evidence"`
}

// Evaluate runs one policy evaluation and returns the Decision
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var body evaluateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": apperrors.CodeInvalidInput})
		return
	}

	persona, err := core.ParsePersonaKey(body.Persona)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": apperrors.CodeInvalidInput})
		return
	}

	req := app.EvaluateRequest{
		Query:    body.Query,
		Persona:  persona,
		Evidence: body.Evidence,
	}
	if body.Toggles != nil {
		req.Toggles = policy.Toggles{
			RequireCitations:   body.Toggles.RequireCitations,
			PrimarySourcesOnly: body.Toggles.PrimarySourcesOnly,
			CreativeMode:       body.Toggles.CreativeMode,
		}
		req.Overrides = policy.Overrides{
			MinDistinctSources:  body.Toggles.CustomMinSources,
			SimilarityThreshold: body.Toggles.CustomSimilarityThreshold,
		}
	}

	dec, err := h.service.Evaluate(c.Request.Context(), req)
	if err != nil {
		// Validation failures are caller bugs; nothing else can fail here
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": apperrors.GetCode(err)})
		return
	}

	c.JSON(http.StatusOK, dec)
}

// Personas returns the registered persona profiles
func (h *EvaluateHandler) Personas(c *gin.Context) {
	keys := h.registry.Personas()
	profiles := make([]policy.Profile, 0, len(keys))
	for _, key := range keys {
		p, _ := h.registry.Lookup(key)
		profiles = append(profiles, p)
	}
	c.JSON(http.StatusOK, gin.H{"personas": profiles})
}
