package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/summarize").
			To(handler.Summarize).
			Doc("Summarize a text").
			Metadata(restfulspec.KeyOpenAPITags, []string{"tasks"}).
			Reads(models.SummarizeRequest{}).
			Writes(models.SummarizeResponse{}).
			Returns(200, "OK", models.SummarizeResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(403, "Model Access Denied", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/code").
			To(handler.GenerateCode).
			Doc("Generate a program from a description").
			Metadata(restfulspec.KeyOpenAPITags, []string{"tasks"}).
			Reads(models.CodeGenerationRequest{}).
			Writes(models.CodeGenerationResponse{}).
			Returns(200, "OK", models.CodeGenerationResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(403, "Model Access Denied", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/extract").
			To(handler.Extract).
			Doc("Extract tagged entities from a text").
			Metadata(restfulspec.KeyOpenAPITags, []string{"tasks"}).
			Reads(models.ExtractionRequest{}).
			Writes(models.ExtractionResponse{}).
			Returns(200, "OK", models.ExtractionResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(403, "Model Access Denied", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
