package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recheck/internal/core/ports"
)

const (
	// ArtifactStoreNodeID is the unique identifier for the artifact store Graft node.
	ArtifactStoreNodeID graft.ID = "adapter.fs.artifacts"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ArtifactStore]{
		ID:        ArtifactStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactStore, error) {
			return NewArtifactStore(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
