package web

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobhub/internal/fraud"
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

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
	server.POST("/job/list", ginx.B[Page](h.List))
	server.POST("/job/status/list", ginx.B[StatusPage](h.ListByStatus))
	server.POST("/job/detail", ginx.B[DetailReq](h.Detail))
	server.POST("/job/pending/count", ginx.W(h.PendingCount))
	server.POST("/job/approve", ginx.B[DetailReq](h.Approve))
	server.POST("/job/reject", ginx.B[DetailReq](h.Reject))
	server.POST("/job/reanalyze", ginx.B[DetailReq](h.ReAnalyze))
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	count, jobs, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: JobListResp{
			Total: count,
			List: slice.Map(jobs, func(idx int, src domain.Job) Job {
				return newJob(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) ListByStatus(ctx *ginx.Context, req StatusPage) (ginx.Result, error) {
	jobs, err := h.svc.ListByStatus(ctx, domain.JobStatus(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: JobListResp{
			List: slice.Map(jobs, func(idx int, src domain.Job) Job {
				return newJob(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	job, err := h.svc.Detail(ctx, req.ID)
	if errors.Is(err, service.ErrJobNotFound) {
		return jobNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newJob(job),
	}, nil
}

func (h *AdminHandler) PendingCount(ctx *ginx.Context) (ginx.Result, error) {
	count, err := h.svc.PendingCount(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: count,
	}, nil
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	return h.moderate(ctx, req.ID, h.svc.Approve)
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	return h.moderate(ctx, req.ID, h.svc.Reject)
}

func (h *AdminHandler) moderate(ctx *ginx.Context, id int64,
	action func(ctx context.Context, id int64) error) (ginx.Result, error) {
	err := action(ctx, id)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, err
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return invalidTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) ReAnalyze(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	job, err := h.svc.ReAnalyze(ctx, req.ID)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, err
	case errors.Is(err, fraud.ErrAnalysisUnavailable):
		return analysisUnavailableResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newJob(job),
	}, nil
}
