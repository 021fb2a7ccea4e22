package detector

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the framework detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.FrameworkDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FrameworkDetector, error) {
			wd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine working directory")
			}
			return NewNodePackageDetector(afero.NewOsFs(), wd), nil
		},
	})
}
