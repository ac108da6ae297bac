package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrJobNotFound 岗位不存在，或者对当前访问者不可见
var ErrJobNotFound = errors.New("岗位不存在")

type JobRepo interface {
	Create(ctx context.Context, job domain.Job) (int64, error)
	Get(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, offset, limit int) ([]domain.Job, error)
	ListByStatus(ctx context.Context, status domain.JobStatus, offset, limit int) ([]domain.Job, error)
	Count(ctx context.Context) (int64, error)
	PendingCount(ctx context.Context) (int64, error)
	ListByRecruiter(ctx context.Context, recruiterID int64, offset, limit int) ([]domain.Job, error)

	PubList(ctx context.Context, offset, limit int) ([]domain.Job, error)
	PubDetail(ctx context.Context, id int64) (domain.Job, error)

	// UpdateStatus 只有 allowed 里的状态才会被更新，返回实际更新的行数
	UpdateStatus(ctx context.Context, id int64, status domain.JobStatus, allowed []domain.JobStatus) (int64, error)
	UpdateAnalysis(ctx context.Context, job domain.Job) error
	Report(ctx context.Context, id int64, reason string) (domain.Job, error)
}

type jobRepo struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewJobRepo(jobDao dao.JobDAO, jobCache cache.JobCache) JobRepo {
	return &jobRepo{
		dao:    jobDao,
		cache:  jobCache,
		logger: elog.DefaultLogger,
	}
}

func (r *jobRepo) Create(ctx context.Context, job domain.Job) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(job))
}

func (r *jobRepo) Get(ctx context.Context, id int64) (domain.Job, error) {
	job, err := r.dao.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	if err != nil {
		return domain.Job{}, err
	}
	return r.toDomain(job), nil
}

func (r *jobRepo) List(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepo) ListByStatus(ctx context.Context, status domain.JobStatus, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.ListByStatus(ctx, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepo) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *jobRepo) PendingCount(ctx context.Context) (int64, error) {
	return r.dao.PendingCount(ctx)
}

func (r *jobRepo) ListByRecruiter(ctx context.Context, recruiterID int64, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.ListByRecruiter(ctx, recruiterID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepo) PubList(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.PubList(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepo) PubDetail(ctx context.Context, id int64) (domain.Job, error) {
	job, err := r.cache.GetPub(ctx, id)
	if err == nil {
		return job, nil
	}
	entity, err := r.dao.GetPub(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	if err != nil {
		return domain.Job{}, err
	}
	job = r.toDomain(entity)
	// 缓存写失败只打日志
	if err = r.cache.SetPub(ctx, job); err != nil {
		r.logger.Error("缓存岗位详情失败",
			elog.Int64("id", id),
			elog.FieldErr(err))
	}
	return job, nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus, allowed []domain.JobStatus) (int64, error) {
	affected, err := r.dao.UpdateStatus(ctx, id, status.ToUint8(),
		slice.Map(allowed, func(idx int, src domain.JobStatus) uint8 {
			return src.ToUint8()
		}))
	if err != nil {
		return 0, err
	}
	r.delPubCache(ctx, id)
	return affected, nil
}

func (r *jobRepo) UpdateAnalysis(ctx context.Context, job domain.Job) error {
	err := r.dao.UpdateAnalysis(ctx, r.toEntity(job))
	if err != nil {
		return err
	}
	r.delPubCache(ctx, job.ID)
	return nil
}

func (r *jobRepo) Report(ctx context.Context, id int64, reason string) (domain.Job, error) {
	entity, err := r.dao.Report(ctx, id, reason)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	if err != nil {
		return domain.Job{}, err
	}
	r.delPubCache(ctx, id)
	return r.toDomain(entity), nil
}

func (r *jobRepo) delPubCache(ctx context.Context, id int64) {
	if err := r.cache.DelPub(ctx, id); err != nil {
		r.logger.Error("删除岗位缓存失败",
			elog.Int64("id", id),
			elog.FieldErr(err))
	}
}

func (r *jobRepo) toEntity(job domain.Job) dao.Job {
	return dao.Job{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.Description,
		Requirements: sqlx.JsonColumn[[]string]{
			Valid: len(job.Requirements) > 0,
			Val:   job.Requirements,
		},
		Salary:            job.Salary,
		RecruiterID:       job.RecruiterID,
		RecruiterName:     job.RecruiterName,
		RecruiterVerified: job.RecruiterVerified,
		Status:            job.Status.ToUint8(),
		TrustScore:        job.TrustScore,
		Fraudulent:        job.Fraudulent,
		FlaggedContent: sqlx.JsonColumn[[]string]{
			Valid: len(job.FlaggedContent) > 0,
			Val:   job.FlaggedContent,
		},
		Recommendation: job.Recommendation,
		ReportCount:    job.ReportCount,
		ReportReasons: sqlx.JsonColumn[[]string]{
			Valid: len(job.ReportReasons) > 0,
			Val:   job.ReportReasons,
		},
	}
}

func (r *jobRepo) toDomain(job dao.Job) domain.Job {
	return domain.Job{
		ID:                job.ID,
		Title:             job.Title,
		Company:           job.Company,
		Location:          job.Location,
		Description:       job.Description,
		Requirements:      job.Requirements.Val,
		Salary:            job.Salary,
		RecruiterID:       job.RecruiterID,
		RecruiterName:     job.RecruiterName,
		RecruiterVerified: job.RecruiterVerified,
		Status:            domain.JobStatus(job.Status),
		TrustScore:        job.TrustScore,
		Fraudulent:        job.Fraudulent,
		FlaggedContent:    job.FlaggedContent.Val,
		Recommendation:    job.Recommendation,
		ReportCount:       job.ReportCount,
		ReportReasons:     job.ReportReasons.Val,
		Ctime:             job.Ctime,
		Utime:             job.Utime,
	}
}
