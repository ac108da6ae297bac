package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	analysisUnavailableResult = ginx.Result{
		Code: errs.AnalysisUnavailable.Code,
		Msg:  errs.AnalysisUnavailable.Msg,
	}
)
