package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AdminHandler 管理端的临时分析入口，审核人员可以对任意内容跑一次分析，
// 也可以翻最近的分析记录。
type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/fraud/analyze", ginx.B[AnalyzeReq](h.Analyze))
	server.POST("/fraud/record/list", ginx.B[Page](h.ListRecords))
}

func (h *AdminHandler) Analyze(ctx *ginx.Context, req AnalyzeReq) (ginx.Result, error) {
	res, err := h.svc.Analyze(ctx, req.Profile.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrAnalysisUnavailable) {
			return analysisUnavailableResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newAnalysisResult(res),
	}, nil
}

func (h *AdminHandler) ListRecords(ctx *ginx.Context, req Page) (ginx.Result, error) {
	records, err := h.svc.Records(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newAnalysisRecordList(records),
	}, nil
}
