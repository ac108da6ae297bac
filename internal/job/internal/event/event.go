package event

const ModerationTopic = "job_moderation_events"

// ModerationEvent 岗位审核状态变化事件，
// 通知、搜索等下游模块按需消费
type ModerationEvent struct {
	JobID       int64  `json:"jobId"`
	RecruiterID int64  `json:"recruiterId"`
	Previous    uint8  `json:"previous"`
	Current     uint8  `json:"current"`
	TrustScore  int    `json:"trustScore"`
	Fraudulent  bool   `json:"fraudulent"`
	ReportCount int    `json:"reportCount"`
	Utime       int64  `json:"utime"`
	Reason      string `json:"reason,omitempty"`
}
