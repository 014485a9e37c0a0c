package controller

import (
	"errors"
	"net/http"

	"eduguide_backend/internal/service"
	"eduguide_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// multipart 头部等额外开销
const multipartOverhead = 1 << 20

type FileController struct {
	PaperService *service.PaperService
}

func NewFileController(paperService *service.PaperService) *FileController {
	return &FileController{PaperService: paperService}
}

// @Summary 论文摘要
// @Description 上传 txt / pdf 文件，返回摘要和 5 到 10 张闪卡；临时文件在请求结束前删除
// @Tags 文件
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "论文文件（txt 或 pdf）"
// @Success 200 {object} service.PaperSummaryResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 413 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /files/upload-summary [post]
func (c *FileController) UploadSummary(ctx *gin.Context) {
	limit := c.PaperService.FileService.MaxSize() + multipartOverhead
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)

	fh, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(ctx, err, http.StatusInternalServerError)
			return
		}
		util.BadRequest(ctx, "No file part in the request")
		return
	}
	if fh.Filename == "" {
		util.BadRequest(ctx, "No selected file")
		return
	}

	result, err := c.PaperService.Summarize(ctx.Request.Context(), fh)
	if err != nil {
		respondError(ctx, err, http.StatusInternalServerError)
		return
	}

	util.Success(ctx, result)
}
