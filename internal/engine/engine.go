package engine

import "go.uber.org/zap"

// Engine 一次只跑一个搜索：节点计数不是并发安全的，
// 需要并发时每个 goroutine 各建一个。
type Engine struct {
	nodes int64
	log   *zap.Logger
}

type Option func(*Engine)

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Nodes 最近一次搜索的节点数
func (e *Engine) Nodes() int64 {
	return e.nodes
}
