package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/domain"
)

type AnalyzeReq struct {
	Profile Profile `json:"profile"`
}

type Profile struct {
	ID           int64    `json:"id,omitempty"`
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Salary       string   `json:"salary,omitempty"`
}

func (p Profile) toDomain() domain.JobProfile {
	return domain.JobProfile{
		ID:           p.ID,
		Title:        p.Title,
		Company:      p.Company,
		Location:     p.Location,
		Description:  p.Description,
		Requirements: p.Requirements,
		Salary:       p.Salary,
	}
}

type AnalysisResult struct {
	IsFraudulent   bool     `json:"isFraudulent"`
	TrustScore     int      `json:"trustScore"`
	FlaggedContent []string `json:"flaggedContent"`
	Recommendation string   `json:"recommendation"`
}

func newAnalysisResult(res domain.AnalysisResult) AnalysisResult {
	return AnalysisResult{
		IsFraudulent:   res.Fraudulent,
		TrustScore:     res.TrustScore,
		FlaggedContent: res.FlaggedContent,
		Recommendation: res.Recommendation,
	}
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type AnalysisRecord struct {
	ID             int64    `json:"id,omitempty"`
	Tid            string   `json:"tid,omitempty"`
	JobID          int64    `json:"jobID,omitempty"`
	Engine         string   `json:"engine,omitempty"`
	TrustScore     int      `json:"trustScore"`
	Fraudulent     bool     `json:"fraudulent"`
	FlaggedContent []string `json:"flaggedContent,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
	Ctime          int64    `json:"ctime,omitempty"`
}

type AnalysisRecordList struct {
	Records []AnalysisRecord `json:"records"`
}

func newAnalysisRecordList(records []domain.AnalysisRecord) AnalysisRecordList {
	return AnalysisRecordList{
		Records: slice.Map(records, func(idx int, src domain.AnalysisRecord) AnalysisRecord {
			return AnalysisRecord{
				ID:             src.ID,
				Tid:            src.Tid,
				JobID:          src.JobID,
				Engine:         src.Engine,
				TrustScore:     src.TrustScore,
				Fraudulent:     src.Fraudulent,
				FlaggedContent: src.FlaggedContent,
				Recommendation: src.Recommendation,
				Ctime:          src.Ctime,
			}
		}),
	}
}
