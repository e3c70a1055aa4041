package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/bedrock"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/models"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/task"
)

type Handler struct {
	summarizer *task.Summarizer
	codegen    *task.CodeGenerator
	extractor  *task.EntityExtractor
	logger     *zerolog.Logger
}

func NewHandler(summarizer *task.Summarizer, codegen *task.CodeGenerator, extractor *task.EntityExtractor, logger *zerolog.Logger) *Handler {
	return &Handler{
		summarizer: summarizer,
		codegen:    codegen,
		extractor:  extractor,
		logger:     logger,
	}
}

// POST /api/v1/summarize
// Body: SummarizeRequest
// Returns: SummarizeResponse
func (h *Handler) Summarize(req *restful.Request, resp *restful.Response) {
	var sumRequest models.SummarizeRequest
	if err := req.ReadEntity(&sumRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	requestID := uuid.New().String()
	h.logger.Info().
		Str("request_id", requestID).
		Int("text_chars", len(sumRequest.Text)).
		Msg("Start summarization")

	summary, err := h.summarizer.Summarize(req.Request.Context(), sumRequest.Text)
	if err != nil {
		h.writeTaskError(resp, requestID, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, models.SummarizeResponse{
		RequestID: requestID,
		Summary:   summary,
	})
}

// POST /api/v1/code
// Body: CodeGenerationRequest
// Returns: CodeGenerationResponse
func (h *Handler) GenerateCode(req *restful.Request, resp *restful.Response) {
	var codeRequest models.CodeGenerationRequest
	if err := req.ReadEntity(&codeRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	requestID := uuid.New().String()
	h.logger.Info().
		Str("request_id", requestID).
		Msg("Start code generation")

	code, err := h.codegen.GenerateCode(req.Request.Context(), codeRequest.Description)
	if err != nil {
		h.writeTaskError(resp, requestID, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, models.CodeGenerationResponse{
		RequestID: requestID,
		Code:      code,
	})
}

// POST /api/v1/extract
// Body: ExtractionRequest
// Returns: ExtractionResponse
func (h *Handler) Extract(req *restful.Request, resp *restful.Response) {
	var extRequest models.ExtractionRequest
	if err := req.ReadEntity(&extRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	requestID := uuid.New().String()
	h.logger.Info().
		Str("request_id", requestID).
		Bool("all", extRequest.All).
		Msg("Start entity extraction")

	ctx := req.Request.Context()

	if extRequest.All {
		entities, err := h.extractor.ExtractAll(ctx, extRequest.Text)
		if err != nil {
			h.writeTaskError(resp, requestID, err)
			return
		}

		resp.WriteHeaderAndEntity(http.StatusOK, models.ExtractionResponse{
			RequestID: requestID,
			Tag:       h.extractor.Tag(),
			Found:     len(entities) > 0,
			Entities:  entities,
		})
		return
	}

	entity, found, err := h.extractor.Extract(ctx, extRequest.Text)
	if err != nil {
		h.writeTaskError(resp, requestID, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, models.ExtractionResponse{
		RequestID: requestID,
		Tag:       h.extractor.Tag(),
		Found:     found,
		Entity:    entity,
	})
}

// writeTaskError maps a task failure onto the wire: blank input is the
// caller's fault, an access-denied failure gets the remediation notice,
// anything else passes through as a 500.
func (h *Handler) writeTaskError(resp *restful.Response, requestID string, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		middleware.HandleError(resp, err, http.StatusBadRequest)
	case bedrock.IsAccessDenied(err):
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("Model access denied")
		middleware.HandleError(resp, errors.New(bedrock.AccessDeniedNotice(err)), http.StatusForbidden)
	default:
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("Task failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
	}
}
