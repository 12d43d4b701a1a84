package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankoehn/ai-content-writer/dto"
	apperrors "github.com/ankoehn/ai-content-writer/errors"
	"github.com/ankoehn/ai-content-writer/logger"
	"github.com/ankoehn/ai-content-writer/services"
)

// respondError maps structured pipeline errors to HTTP responses. Failures
// are reported to the user and never crash the process.
func respondError(c *gin.Context, err error) {
	resp := dto.ErrorResponseDTO{Error: err.Error()}
	if aErr, ok := err.(*apperrors.AppError); ok {
		resp.Code = string(aErr.Code)
	}
	logger.Log.Errorf("request failed: %v", err)
	c.JSON(apperrors.StatusOf(err), resp)
}

// GenerateContentHandler godoc
// @Summary      Generate content
// @Description  Search the subject, generate blog/LinkedIn/X content concurrently and persist the result
// @Tags         contents
// @Accept       json
// @Param        request  body  dto.GenerateContentRequestDTO  true  "Generation request"
// @Produce      json
// @Success      201  {object}  dto.ContentDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /contents [post]
func GenerateContentHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.GenerateContentRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, apperrors.NewValidation("invalid request body: "+err.Error()))
			return
		}

		content, err := svc.Generate(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, content)
	}
}

// ListContentsHandler godoc
// @Summary      List content history
// @Description  List all generated content records in chronological order
// @Tags         contents
// @Produce      json
// @Success      200  {array}  dto.ContentDTO
// @Router       /contents [get]
func ListContentsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetContentHandler godoc
// @Summary      Get content by id
// @Description  Get a single content record by its timestamp-derived id
// @Tags         contents
// @Param        id   path   string  true  "Content id"
// @Produce      json
// @Success      200  {object}  dto.ContentDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /contents/{id} [get]
func GetContentHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

// DeleteContentHandler godoc
// @Summary      Delete content by id
// @Description  Remove a content record from the history
// @Tags         contents
// @Param        id   path   string  true  "Content id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /contents/{id} [delete]
func DeleteContentHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "content deleted successfully"})
	}
}

// ExportContentsHandler godoc
// @Summary      Export history to Excel
// @Description  Download the whole content history as an xlsx workbook
// @Tags         contents
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /contents/export [get]
func ExportContentsHandler(svc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, filename, err := svc.Export(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}
