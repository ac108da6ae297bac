package errs

var (
	SystemError         = ErrorCode{Code: 511001, Msg: "系统错误"}
	AnalysisUnavailable = ErrorCode{Code: 511002, Msg: "分析服务暂时不可用"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
