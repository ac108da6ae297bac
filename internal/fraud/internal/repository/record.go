package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/domain"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/repository/dao"
)

type RecordRepo interface {
	Save(ctx context.Context, record domain.AnalysisRecord) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.AnalysisRecord, error)
}

type recordRepo struct {
	dao dao.AnalysisRecordDAO
}

func NewRecordRepo(recordDao dao.AnalysisRecordDAO) RecordRepo {
	return &recordRepo{
		dao: recordDao,
	}
}

func (r *recordRepo) Save(ctx context.Context, record domain.AnalysisRecord) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(record))
}

func (r *recordRepo) List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, error) {
	records, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(records, func(idx int, src dao.AnalysisRecord) domain.AnalysisRecord {
		return r.toDomain(src)
	}), nil
}

func (r *recordRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.AnalysisRecord, error) {
	records, err := r.dao.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return slice.Map(records, func(idx int, src dao.AnalysisRecord) domain.AnalysisRecord {
		return r.toDomain(src)
	}), nil
}

func (r *recordRepo) toEntity(record domain.AnalysisRecord) dao.AnalysisRecord {
	return dao.AnalysisRecord{
		ID:         record.ID,
		Tid:        record.Tid,
		JobID:      record.JobID,
		Engine:     record.Engine,
		TrustScore: record.TrustScore,
		Fraudulent: record.Fraudulent,
		FlaggedContent: sqlx.JsonColumn[[]string]{
			Valid: len(record.FlaggedContent) > 0,
			Val:   record.FlaggedContent,
		},
		Recommendation: record.Recommendation,
	}
}

func (r *recordRepo) toDomain(record dao.AnalysisRecord) domain.AnalysisRecord {
	return domain.AnalysisRecord{
		ID:             record.ID,
		Tid:            record.Tid,
		JobID:          record.JobID,
		Engine:         record.Engine,
		TrustScore:     record.TrustScore,
		Fraudulent:     record.Fraudulent,
		FlaggedContent: record.FlaggedContent.Val,
		Recommendation: record.Recommendation,
		Ctime:          record.Ctime,
		Utime:          record.Utime,
	}
}
