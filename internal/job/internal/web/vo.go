package web

import (
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
)

type SubmitReq struct {
	Job Job `json:"job"`
}

type Job struct {
	ID           int64    `json:"id,omitempty"`
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Salary       string   `json:"salary,omitempty"`

	RecruiterName     string `json:"recruiterName,omitempty"`
	RecruiterVerified bool   `json:"recruiterVerified,omitempty"`

	Status uint8 `json:"status,omitempty"`

	TrustScore     int      `json:"trustScore"`
	Fraudulent     bool     `json:"isFraudulent"`
	FlaggedContent []string `json:"flaggedContent,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`

	ReportCount   int      `json:"reportCount,omitempty"`
	ReportReasons []string `json:"reportReasons,omitempty"`

	Utime int64 `json:"utime,omitempty"`
}

func newJob(job domain.Job) Job {
	return Job{
		ID:                job.ID,
		Title:             job.Title,
		Company:           job.Company,
		Location:          job.Location,
		Description:       job.Description,
		Requirements:      job.Requirements,
		Salary:            job.Salary,
		RecruiterName:     job.RecruiterName,
		RecruiterVerified: job.RecruiterVerified,
		Status:            job.Status.ToUint8(),
		TrustScore:        job.TrustScore,
		Fraudulent:        job.Fraudulent,
		FlaggedContent:    job.FlaggedContent,
		Recommendation:    job.Recommendation,
		ReportCount:       job.ReportCount,
		ReportReasons:     job.ReportReasons,
		Utime:             job.Utime,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		Description:  j.Description,
		Requirements: j.Requirements,
		Salary:       j.Salary,
	}
}

type JobListResp struct {
	Total int64 `json:"total,omitempty"`
	List  []Job `json:"list,omitempty"`
}

type DetailReq struct {
	ID int64 `json:"id,omitempty"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type StatusPage struct {
	Status uint8 `json:"status,omitempty"`
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
}

type ReportReq struct {
	ID     int64  `json:"id,omitempty"`
	Reason string `json:"reason,omitempty"`
}
