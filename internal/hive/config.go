package hive

import (
	"github.com/janpfeifer/hexhive/internal/grid"
	"github.com/janpfeifer/hexhive/internal/parameters"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// MaxCapacity is the largest capacity accepted by NewGridFromConfig.
const MaxCapacity = 1 << 16

// NewGridFromConfig creates an empty grid configured by a comma-separated list of key=value
// parameters. An empty config is the same as NewGrid.
//
// Keys:
//
//   - capacity: number of positions to reserve space for, up to MaxCapacity. Default 0.
//   - max_stack: maximum height of a stack built with Grid.Stack. Default 0, meaning no limit.
func NewGridFromConfig(config string) (*Grid, error) {
	params := parameters.NewFromConfigString(config)
	capacity, err := parameters.PopIntOr(params, "capacity", 0)
	if err != nil {
		return nil, err
	}
	if capacity < 0 || capacity > MaxCapacity {
		return nil, errors.Errorf("invalid capacity=%d, it must be between 0 and %d", capacity, MaxCapacity)
	}
	maxStack, err := parameters.PopIntOr(params, "max_stack", 0)
	if err != nil {
		return nil, err
	}
	if maxStack < 0 {
		return nil, errors.Errorf("invalid max_stack=%d, it must be >= 0 (0 for no limit)", maxStack)
	}
	if err := params.CheckAllUsed("hive grid"); err != nil {
		return nil, err
	}
	klog.V(1).Infof("hive.Grid: capacity=%d, max_stack=%d", capacity, maxStack)
	return &Grid{
		base:     grid.NewDynamicHexGridWithCapacity[Piece](capacity),
		maxStack: maxStack,
	}, nil
}
