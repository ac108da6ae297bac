package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobhub/internal/fraud"
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/job/pub/list", ginx.B[Page](h.PubList))
	server.POST("/job/pub/detail", ginx.B[DetailReq](h.PubDetail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/job/submit", ginx.BS[SubmitReq](h.Submit))
	server.POST("/job/mine", ginx.BS[Page](h.MyList))
	server.POST("/job/report", ginx.BS[ReportReq](h.Report))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	job := req.Job.toDomain()
	job.RecruiterID = sess.Claims().Uid
	job.RecruiterName = sess.Claims().Get("nickname").StringOrDefault("")
	job.RecruiterVerified = sess.Claims().Get("verified").StringOrDefault("") == "true"
	created, err := h.svc.Submit(ctx, job)
	switch {
	case errors.Is(err, service.ErrInvalidJob):
		return invalidJobResult, err
	case errors.Is(err, fraud.ErrAnalysisUnavailable):
		return analysisUnavailableResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newJob(created),
	}, nil
}

func (h *Handler) PubList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	jobs, err := h.svc.PubList(ctx, req.Offset, req.Limit)
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

func (h *Handler) PubDetail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	job, err := h.svc.PubDetail(ctx, req.ID)
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

func (h *Handler) MyList(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	jobs, err := h.svc.MyList(ctx, sess.Claims().Uid, req.Offset, req.Limit)
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

func (h *Handler) Report(ctx *ginx.Context, req ReportReq, sess session.Session) (ginx.Result, error) {
	job, err := h.svc.Report(ctx, req.ID, req.Reason)
	if errors.Is(err, service.ErrJobNotFound) {
		return jobNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	h.logger.Info("收到岗位举报",
		elog.Int64("jobID", req.ID),
		elog.Int64("uid", sess.Claims().Uid))
	return ginx.Result{
		Data: newJob(job),
	}, nil
}
