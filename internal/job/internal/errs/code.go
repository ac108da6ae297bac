package errs

type ErrorCode struct {
	Code int
	Msg  string
}

var (
	SystemError = ErrorCode{Code: 510001, Msg: "系统错误"}
	JobNotFound = ErrorCode{Code: 510002, Msg: "岗位不存在"}
	InvalidJob  = ErrorCode{Code: 510003, Msg: "岗位信息不完整"}
	// InvalidStatusTransition 只有待审核和被举报的岗位才能通过或者拒绝
	InvalidStatusTransition = ErrorCode{Code: 510004, Msg: "岗位当前状态不允许这个操作"}
	AnalysisUnavailable     = ErrorCode{Code: 510005, Msg: "风控分析服务不可用"}
)
