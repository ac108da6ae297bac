package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobhub/internal/job/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	jobNotFoundResult = ginx.Result{
		Code: errs.JobNotFound.Code,
		Msg:  errs.JobNotFound.Msg,
	}
	invalidJobResult = ginx.Result{
		Code: errs.InvalidJob.Code,
		Msg:  errs.InvalidJob.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidStatusTransition.Code,
		Msg:  errs.InvalidStatusTransition.Msg,
	}
	analysisUnavailableResult = ginx.Result{
		Code: errs.AnalysisUnavailable.Code,
		Msg:  errs.AnalysisUnavailable.Msg,
	}
)
