package event

import (
	"github.com/ecodeclub/jobhub/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

type ModerationEventProducer mqx.Producer[ModerationEvent]

func NewModerationEventProducer(q mq.MQ) (ModerationEventProducer, error) {
	return mqx.NewGeneralProducer[ModerationEvent](q, ModerationTopic)
}
