package domain

import "strings"

// JobProfile 参与欺诈检测的岗位内容。
// 只携带文本字段，不关心岗位的状态与归属。
type JobProfile struct {
	ID           int64
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements []string
	Salary       string
}

// CombinedText 把参与关键词和正则匹配的字段拼成一段分析文本。
// Location 不参与匹配。
func (p JobProfile) CombinedText() string {
	parts := []string{
		p.Title,
		p.Company,
		p.Description,
		strings.Join(p.Requirements, " "),
		p.Salary,
	}
	return strings.Join(parts, " ")
}

// AnalysisResult 一次分析的结果。每次分析都产生全新的实例，
// 之后不会被部分修改。
type AnalysisResult struct {
	// Fraudulent 是否判定为欺诈，和 TrustScore < 50 严格等价
	Fraudulent bool
	// TrustScore 信任分，[0, 100]，越高越可信
	TrustScore int
	// FlaggedContent 检测出的可疑信号，给审核人员看的
	FlaggedContent []string
	// Recommendation 按分数段给出的处理建议
	Recommendation string
}

// AnalysisRecord 分析的落库记录，用于审计和后续的模型调优。
type AnalysisRecord struct {
	ID             int64
	Tid            string
	JobID          int64
	Engine         string
	TrustScore     int
	Fraudulent     bool
	FlaggedContent []string
	Recommendation string
	Ctime          int64
	Utime          int64
}
