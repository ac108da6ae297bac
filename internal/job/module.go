package job

import (
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/event"
	"github.com/ecodeclub/jobhub/internal/job/internal/service"
	"github.com/ecodeclub/jobhub/internal/job/internal/web"
)

type (
	Service         = service.Service
	Job             = domain.Job
	JobStatus       = domain.JobStatus
	ModerationEvent = event.ModerationEvent
	Handler         = web.Handler
	AdminHandler    = web.AdminHandler
)

const (
	JobStatusPending  = domain.JobStatusPending
	JobStatusApproved = domain.JobStatusApproved
	JobStatusRejected = domain.JobStatusRejected
	JobStatusReported = domain.JobStatusReported

	ModerationTopic = event.ModerationTopic
)

var (
	ErrJobNotFound             = service.ErrJobNotFound
	ErrInvalidJob              = service.ErrInvalidJob
	ErrInvalidStatusTransition = service.ErrInvalidStatusTransition
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
