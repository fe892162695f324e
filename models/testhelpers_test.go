package models

import (
	"github.com/rfielding/devs-sim/randsource"
	"github.com/rfielding/devs-sim/services"
)

func newTestServices(seed int64) *services.Services {
	return services.New(randsource.NewSeeded(seed))
}
