package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/pkg/errors"
)

const (
	jobExpiration = 24 * time.Hour
)

var (
	ErrJobNotCached = errors.New("岗位不在缓存里")
)

// JobCache 只缓存审核通过的岗位详情，
// 状态一变就删，宁可回源也不给求职者看过期状态
type JobCache interface {
	SetPub(ctx context.Context, job domain.Job) error
	GetPub(ctx context.Context, id int64) (domain.Job, error)
	DelPub(ctx context.Context, id int64) error
}

type jobCache struct {
	ec ecache.Cache
}

func NewJobCache(ec ecache.Cache) JobCache {
	return &jobCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "job:",
		},
	}
}

func (c *jobCache) SetPub(ctx context.Context, job domain.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "序列化岗位失败")
	}
	return c.ec.Set(ctx, c.pubKey(job.ID), string(data), jobExpiration)
}

func (c *jobCache) GetPub(ctx context.Context, id int64) (domain.Job, error) {
	val := c.ec.Get(ctx, c.pubKey(id))
	if val.KeyNotFound() {
		return domain.Job{}, ErrJobNotCached
	}
	if val.Err != nil {
		return domain.Job{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var job domain.Job
	err := json.Unmarshal([]byte(val.Val.(string)), &job)
	if err != nil {
		return domain.Job{}, errors.Wrap(err, "反序列化岗位失败")
	}
	return job, nil
}

func (c *jobCache) DelPub(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.pubKey(id))
	return err
}

func (c *jobCache) pubKey(id int64) string {
	return fmt.Sprintf("publish:%d", id)
}
