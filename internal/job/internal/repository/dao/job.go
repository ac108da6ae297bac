package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobDAO interface {
	// Create 创建岗位
	Create(ctx context.Context, job Job) (int64, error)
	// Get 根据 ID 获取岗位
	Get(ctx context.Context, id int64) (Job, error)
	// List 管理端列表，待处理的排前面
	List(ctx context.Context, offset, limit int) ([]Job, error)
	// ListByStatus 管理端按状态过滤
	ListByStatus(ctx context.Context, status uint8, offset, limit int) ([]Job, error)
	// Count 岗位总数
	Count(ctx context.Context) (int64, error)
	// PendingCount 待审核的个数
	PendingCount(ctx context.Context) (int64, error)
	// ListByRecruiter 发布者自己的岗位
	ListByRecruiter(ctx context.Context, recruiterID int64, offset, limit int) ([]Job, error)
	// PubList 求职者只能看到审核通过的岗位
	PubList(ctx context.Context, offset, limit int) ([]Job, error)
	// GetPub 审核通过的岗位详情
	GetPub(ctx context.Context, id int64) (Job, error)
	// UpdateStatus 带状态守卫的更新，返回实际更新的行数。
	// 并发审核同一个岗位的时候，只有一个能成功
	UpdateStatus(ctx context.Context, id int64, status uint8, allowed []uint8) (int64, error)
	// UpdateAnalysis 覆盖风控分析结果的快照
	UpdateAnalysis(ctx context.Context, job Job) error
	// Report 在事务里记录一次举报，行锁保证计数不丢
	Report(ctx context.Context, id int64, reason string) (Job, error)
}

type jobDAO struct {
	db *egorm.Component
}

func NewJobDAO(db *egorm.Component) JobDAO {
	return &jobDAO{
		db: db,
	}
}

func (d *jobDAO) Create(ctx context.Context, job Job) (int64, error) {
	now := time.Now().UnixMilli()
	job.Ctime = now
	job.Utime = now
	err := d.db.WithContext(ctx).Create(&job).Error
	return job.ID, err
}

func (d *jobDAO) Get(ctx context.Context, id int64) (Job, error) {
	var job Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	return job, err
}

func (d *jobDAO) List(ctx context.Context, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).
		Order("status asc,id desc").
		Offset(offset).Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (d *jobDAO) ListByStatus(ctx context.Context, status uint8, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (d *jobDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Job{}).Count(&count).Error
	return count, err
}

func (d *jobDAO) PendingCount(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Job{}).
		Where("status = ?", domain.JobStatusPending.ToUint8()).
		Count(&count).Error
	return count, err
}

func (d *jobDAO) ListByRecruiter(ctx context.Context, recruiterID int64, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (d *jobDAO) PubList(ctx context.Context, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).
		Where("status = ?", domain.JobStatusApproved.ToUint8()).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (d *jobDAO) GetPub(ctx context.Context, id int64) (Job, error) {
	var job Job
	err := d.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, domain.JobStatusApproved.ToUint8()).
		First(&job).Error
	return job, err
}

func (d *jobDAO) UpdateStatus(ctx context.Context, id int64, status uint8, allowed []uint8) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND status IN ?", id, allowed).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *jobDAO) UpdateAnalysis(ctx context.Context, job Job) error {
	return d.db.WithContext(ctx).Model(&Job{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"trust_score":     job.TrustScore,
			"fraudulent":      job.Fraudulent,
			"flagged_content": job.FlaggedContent,
			"recommendation":  job.Recommendation,
			"utime":           time.Now().UnixMilli(),
		}).Error
}

func (d *jobDAO) Report(ctx context.Context, id int64, reason string) (Job, error) {
	var job Job
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&job).Error
		if err != nil {
			return err
		}
		job.ReportCount++
		reasons := job.ReportReasons.Val
		if reason != "" && !contains(reasons, reason) {
			reasons = append(reasons, reason)
		}
		job.ReportReasons.Val = reasons
		job.ReportReasons.Valid = len(reasons) > 0
		if job.ReportCount >= domain.ReportEscalationThreshold &&
			job.Status != domain.JobStatusRejected.ToUint8() {
			job.Status = domain.JobStatusReported.ToUint8()
		}
		job.Utime = time.Now().UnixMilli()
		return tx.Model(&Job{}).Where("id = ?", id).
			Updates(map[string]any{
				"report_count":   job.ReportCount,
				"report_reasons": job.ReportReasons,
				"status":         job.Status,
				"utime":          job.Utime,
			}).Error
	})
	return job, err
}

func contains(ss []string, target string) bool {
	for _, s := range ss {
		if s == target {
			return true
		}
	}
	return false
}
