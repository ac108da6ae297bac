package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type AnalysisRecordDAO interface {
	// Create 追加一条分析记录
	Create(ctx context.Context, record AnalysisRecord) (int64, error)
	// List 按时间倒序的分析记录列表
	List(ctx context.Context, offset, limit int) ([]AnalysisRecord, error)
	// ListByJob 某个岗位的全部分析记录
	ListByJob(ctx context.Context, jobID int64) ([]AnalysisRecord, error)
}

type analysisRecordDAO struct {
	db *egorm.Component
}

func NewAnalysisRecordDAO(db *egorm.Component) AnalysisRecordDAO {
	return &analysisRecordDAO{
		db: db,
	}
}

func (d *analysisRecordDAO) Create(ctx context.Context, record AnalysisRecord) (int64, error) {
	now := time.Now().UnixMilli()
	record.Ctime = now
	record.Utime = now
	err := d.db.WithContext(ctx).Create(&record).Error
	return record.ID, err
}

func (d *analysisRecordDAO) List(ctx context.Context, offset, limit int) ([]AnalysisRecord, error) {
	var records []AnalysisRecord
	err := d.db.WithContext(ctx).
		Order("id desc").
		Offset(offset).Limit(limit).
		Find(&records).Error
	return records, err
}

func (d *analysisRecordDAO) ListByJob(ctx context.Context, jobID int64) ([]AnalysisRecord, error) {
	var records []AnalysisRecord
	err := d.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id desc").
		Find(&records).Error
	return records, err
}
