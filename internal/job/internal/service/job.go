// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"strings"

	"github.com/ecodeclub/jobhub/internal/fraud"
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/event"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrJobNotFound 岗位不存在，或者对当前访问者不可见
	ErrJobNotFound = repository.ErrJobNotFound
	// ErrInvalidJob 必填字段缺失
	ErrInvalidJob = errors.New("岗位信息不完整")
	// ErrInvalidStatusTransition 只有待审核和被举报的岗位才能通过或者拒绝
	ErrInvalidStatusTransition = errors.New("岗位当前状态不允许这个操作")
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks -typed=true Service
type Service interface {
	// Submit 发布岗位。入库之前一定会先过一遍风控分析，
	// 分析失败就发布失败，绝不带着假分数入库
	Submit(ctx context.Context, job domain.Job) (domain.Job, error)
	// ReAnalyze 管理端用当前的打分引擎重新分析
	ReAnalyze(ctx context.Context, id int64) (domain.Job, error)

	// PubList 求职者只能看到审核通过的岗位
	PubList(ctx context.Context, offset, limit int) ([]domain.Job, error)
	PubDetail(ctx context.Context, id int64) (domain.Job, error)
	// Report 求职者举报岗位
	Report(ctx context.Context, id int64, reason string) (domain.Job, error)
	// MyList 发布者自己的岗位，不管什么状态
	MyList(ctx context.Context, recruiterID int64, offset, limit int) ([]domain.Job, error)

	// 管理端
	List(ctx context.Context, offset, limit int) (int64, []domain.Job, error)
	ListByStatus(ctx context.Context, status domain.JobStatus, offset, limit int) ([]domain.Job, error)
	Detail(ctx context.Context, id int64) (domain.Job, error)
	PendingCount(ctx context.Context) (int64, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
}

type jobService struct {
	repo     repository.JobRepo
	fraudSvc fraud.Service
	producer event.ModerationEventProducer
	logger   *elog.Component
}

func NewService(repo repository.JobRepo,
	fraudSvc fraud.Service,
	producer event.ModerationEventProducer) Service {
	return &jobService{
		repo:     repo,
		fraudSvc: fraudSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *jobService) Submit(ctx context.Context, job domain.Job) (domain.Job, error) {
	if err := s.validate(job); err != nil {
		return domain.Job{}, err
	}
	res, err := s.fraudSvc.Analyze(ctx, s.toProfile(job))
	if err != nil {
		return domain.Job{}, err
	}
	job.Status = domain.JobStatusPending
	job.TrustScore = res.TrustScore
	job.Fraudulent = res.Fraudulent
	job.FlaggedContent = res.FlaggedContent
	job.Recommendation = res.Recommendation

	id, err := s.repo.Create(ctx, job)
	if err != nil {
		return domain.Job{}, err
	}
	job.ID = id
	return job, nil
}

func (s *jobService) ReAnalyze(ctx context.Context, id int64) (domain.Job, error) {
	job, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	res, err := s.fraudSvc.Analyze(ctx, s.toProfile(job))
	if err != nil {
		return domain.Job{}, err
	}
	job.TrustScore = res.TrustScore
	job.Fraudulent = res.Fraudulent
	job.FlaggedContent = res.FlaggedContent
	job.Recommendation = res.Recommendation
	if err = s.repo.UpdateAnalysis(ctx, job); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}

func (s *jobService) PubList(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	return s.repo.PubList(ctx, offset, limit)
}

func (s *jobService) PubDetail(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.PubDetail(ctx, id)
}

func (s *jobService) Report(ctx context.Context, id int64, reason string) (domain.Job, error) {
	before, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	job, err := s.repo.Report(ctx, id, strings.TrimSpace(reason))
	if err != nil {
		return domain.Job{}, err
	}
	// 这次举报触发了状态流转才发事件
	if job.Status != before.Status {
		s.produceEvent(ctx, before.Status, job, reason)
	}
	return job, nil
}

func (s *jobService) MyList(ctx context.Context, recruiterID int64, offset, limit int) ([]domain.Job, error) {
	return s.repo.ListByRecruiter(ctx, recruiterID, offset, limit)
}

func (s *jobService) List(ctx context.Context, offset, limit int) (int64, []domain.Job, error) {
	var eg errgroup.Group
	var count int64
	var jobs []domain.Job
	eg.Go(func() error {
		var eerr error
		jobs, eerr = s.repo.List(ctx, offset, limit)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		count, eerr = s.repo.Count(ctx)
		return eerr
	})
	err := eg.Wait()
	return count, jobs, err
}

func (s *jobService) ListByStatus(ctx context.Context, status domain.JobStatus, offset, limit int) ([]domain.Job, error) {
	return s.repo.ListByStatus(ctx, status, offset, limit)
}

func (s *jobService) Detail(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.Get(ctx, id)
}

func (s *jobService) PendingCount(ctx context.Context) (int64, error) {
	return s.repo.PendingCount(ctx)
}

func (s *jobService) Approve(ctx context.Context, id int64) error {
	return s.moderate(ctx, id, domain.JobStatusApproved)
}

func (s *jobService) Reject(ctx context.Context, id int64) error {
	return s.moderate(ctx, id, domain.JobStatusRejected)
}

func (s *jobService) moderate(ctx context.Context, id int64, target domain.JobStatus) error {
	job, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !job.Moderatable() {
		return errors.Wrapf(ErrInvalidStatusTransition,
			"status=%d, target=%d", job.Status.ToUint8(), target.ToUint8())
	}
	// 状态守卫放在 WHERE 里，并发审核同一个岗位只有一个能成功
	affected, err := s.repo.UpdateStatus(ctx, id, target,
		[]domain.JobStatus{domain.JobStatusPending, domain.JobStatusReported})
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrapf(ErrInvalidStatusTransition,
			"岗位 %d 已经被其他管理员处理", id)
	}
	prev := job.Status
	job.Status = target
	s.produceEvent(ctx, prev, job, "")
	return nil
}

// produceEvent 发事件失败只打日志，不影响主流程
func (s *jobService) produceEvent(ctx context.Context, prev domain.JobStatus, job domain.Job, reason string) {
	evt := event.ModerationEvent{
		JobID:       job.ID,
		RecruiterID: job.RecruiterID,
		Previous:    prev.ToUint8(),
		Current:     job.Status.ToUint8(),
		TrustScore:  job.TrustScore,
		Fraudulent:  job.Fraudulent,
		ReportCount: job.ReportCount,
		Utime:       job.Utime,
		Reason:      reason,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送岗位审核事件失败",
			elog.Int64("jobID", job.ID),
			elog.FieldErr(err))
	}
}

func (s *jobService) validate(job domain.Job) error {
	if strings.TrimSpace(job.Title) == "" ||
		strings.TrimSpace(job.Company) == "" ||
		strings.TrimSpace(job.Description) == "" {
		return errors.Wrap(ErrInvalidJob, "title/company/description 不能为空")
	}
	return nil
}

func (s *jobService) toProfile(job domain.Job) fraud.JobProfile {
	return fraud.JobProfile{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		Requirements: job.Requirements,
		Salary:       job.Salary,
	}
}
