package domain

// ReportEscalationThreshold 累计举报达到这个数，岗位就会被标记为 reported
const ReportEscalationThreshold = 3

type Job struct {
	ID           int64
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements []string
	Salary       string

	// 发布者
	RecruiterID       int64
	RecruiterName     string
	RecruiterVerified bool

	Status JobStatus

	// 最近一次风控分析的结果快照
	TrustScore     int
	Fraudulent     bool
	FlaggedContent []string
	Recommendation string

	ReportCount   int
	ReportReasons []string

	Ctime int64
	Utime int64
}

type JobStatus uint8

func (s JobStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// JobStatusUnknown 未知
	JobStatusUnknown JobStatus = 0
	// JobStatusPending 待审核
	JobStatusPending JobStatus = 1
	// JobStatusApproved 审核通过，对求职者可见
	JobStatusApproved JobStatus = 2
	// JobStatusRejected 审核拒绝，终态
	JobStatusRejected JobStatus = 3
	// JobStatusReported 被举报，等管理员重新处理
	JobStatusReported JobStatus = 4
)

// Moderatable 只有待审核和被举报的岗位才允许管理员通过或者拒绝
func (j Job) Moderatable() bool {
	return j.Status == JobStatusPending || j.Status == JobStatusReported
}

// ApplyReport 记录一次举报。举报数照实累计，
// 理由去重，凑够 ReportEscalationThreshold 之后岗位转为 reported。
// 已经拒绝的岗位不会被举报翻回来。
func (j *Job) ApplyReport(reason string) {
	j.ReportCount++
	if reason != "" && !j.hasReason(reason) {
		j.ReportReasons = append(j.ReportReasons, reason)
	}
	if j.ReportCount >= ReportEscalationThreshold && j.Status != JobStatusRejected {
		j.Status = JobStatusReported
	}
}

func (j *Job) hasReason(reason string) bool {
	for _, r := range j.ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}
