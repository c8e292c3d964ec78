// README: Layout service — the sole mutator of authoritative asset poses.
package layout

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"siteplan/internal/types"
)

var (
	ErrNotFound      = errors.New("project not found")
	ErrAssetNotFound = errors.New("asset not found")
	ErrBadRequest    = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	Name     string
	Bounds   types.Bounds
	Boundary types.Ring
	Assets   []PlacedAsset
	Zones    []ConstraintZone
	Roads    []RoadSegment
}

type MoveAssetCommand struct {
	ProjectID types.ID
	AssetID   types.ID
	Position  types.Point
}

type RotateAssetCommand struct {
	ProjectID   types.ID
	AssetID     types.ID
	RotationDeg float64
}

type DeleteAssetCommand struct {
	ProjectID types.ID
	AssetID   types.ID
}

type ImportAssetsCommand struct {
	ProjectID types.ID
	Assets    []PlacedAsset
}

// Create stores a new project. Footprints are rederived from poses on the
// way in so a stale footprint can never be persisted.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.Name == "" {
		return "", ErrBadRequest
	}
	now := time.Now()
	p := &Project{
		ID:        newID(),
		Name:      cmd.Name,
		Bounds:    cmd.Bounds,
		Boundary:  cmd.Boundary,
		Assets:    cmd.Assets,
		Zones:     cmd.Zones,
		Roads:     cmd.Roads,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range p.Assets {
		p.Assets[i].RecomputeFootprint()
	}
	if err := s.store.CreateProject(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Project, error) {
	return s.store.GetProject(ctx, id)
}

// MoveAsset commits a drag gesture: position changes, footprint is
// rederived, and the update is persisted. Constraint re-evaluation is the
// caller's job — violations are recomputed wholesale, never patched.
func (s *Service) MoveAsset(ctx context.Context, cmd MoveAssetCommand) (*PlacedAsset, error) {
	a, err := s.store.GetAsset(ctx, cmd.ProjectID, cmd.AssetID)
	if err != nil {
		return nil, err
	}
	a.Pose.Position = cmd.Position
	a.RecomputeFootprint()
	if err := s.store.UpdateAssetPose(ctx, cmd.ProjectID, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) RotateAsset(ctx context.Context, cmd RotateAssetCommand) (*PlacedAsset, error) {
	a, err := s.store.GetAsset(ctx, cmd.ProjectID, cmd.AssetID)
	if err != nil {
		return nil, err
	}
	a.Pose.RotationDeg = cmd.RotationDeg
	a.RecomputeFootprint()
	if err := s.store.UpdateAssetPose(ctx, cmd.ProjectID, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) DeleteAsset(ctx context.Context, cmd DeleteAssetCommand) error {
	return s.store.DeleteAsset(ctx, cmd.ProjectID, cmd.AssetID)
}

// ImportAssets replaces the asset collection with the optimizer's output.
// The upstream optimization service is the only producer of new assets;
// the editor only repositions existing ones.
func (s *Service) ImportAssets(ctx context.Context, cmd ImportAssetsCommand) error {
	for i := range cmd.Assets {
		if cmd.Assets[i].ID == "" {
			return ErrBadRequest
		}
		cmd.Assets[i].RecomputeFootprint()
	}
	return s.store.ReplaceAssets(ctx, cmd.ProjectID, cmd.Assets)
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
