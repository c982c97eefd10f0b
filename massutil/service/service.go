package service

import (
	"errors"
	"sync/atomic"

	"massnet.org/shasum/logging"
)

var (
	ErrOperating = errors.New("service is operating")
	ErrStarted   = errors.New("service is started")
	ErrStopped   = errors.New("service is stopped")
)

// Service is a component with a start/stop lifecycle.
type Service interface {
	Start() error
	OnStart() error
	Stop() error
	OnStop() error
	Started() bool
	Name() string
}

// BaseService guards the lifecycle of the embedding Service so that its
// OnStart and OnStop hooks run at most once per transition.
type BaseService struct {
	service   Service
	started   int32
	operating int32
	name      string
}

func NewBaseService(service Service, name string) *BaseService {
	return &BaseService{
		service: service,
		name:    name,
	}
}

func (bs *BaseService) transit(from, to int32, hook func() error) error {
	if !atomic.CompareAndSwapInt32(&bs.operating, 0, 1) {
		return ErrOperating
	}
	defer atomic.StoreInt32(&bs.operating, 0)

	if atomic.LoadInt32(&bs.started) != from {
		if from == 0 {
			return ErrStarted
		}
		return ErrStopped
	}
	if err := hook(); err != nil {
		return err
	}
	atomic.StoreInt32(&bs.started, to)
	return nil
}

func (bs *BaseService) Start() error {
	err := bs.transit(0, 1, bs.service.OnStart)
	if err == nil {
		logging.CPrint(logging.DEBUG, "service started", logging.LogFormat{"service": bs.name})
	}
	return err
}

func (bs *BaseService) OnStart() error {
	return nil
}

func (bs *BaseService) Stop() error {
	err := bs.transit(1, 0, bs.service.OnStop)
	if err == nil {
		logging.CPrint(logging.DEBUG, "service stopped", logging.LogFormat{"service": bs.name})
	}
	return err
}

func (bs *BaseService) OnStop() error {
	return nil
}

func (bs *BaseService) Started() bool {
	return atomic.LoadInt32(&bs.started) == 1
}

func (bs *BaseService) Name() string {
	return bs.name
}
