package controller

import (
	"github.com/ougirez/perdash/internal/pkg/store"
	"github.com/ougirez/perdash/internal/service/pipeline"
)

type Controller struct {
	store           store.Store
	pipelineService *pipeline.Service
}

func NewController(st store.Store, pipelineService *pipeline.Service) *Controller {
	return &Controller{store: st, pipelineService: pipelineService}
}
