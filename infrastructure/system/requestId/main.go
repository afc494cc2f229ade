package requestId

import (
	"github.com/segmentio/ksuid"
	"github.com/t-kuni/gemini-chat/domain/system/requestId"
)

// KsuidGenerator は時刻順に並ぶ KSUID をリクエスト ID として使います。
type KsuidGenerator struct{}

func NewKsuidGenerator() requestId.Generator {
	return &KsuidGenerator{}
}

func (g *KsuidGenerator) NewRequestId() string {
	return ksuid.New().String()
}
