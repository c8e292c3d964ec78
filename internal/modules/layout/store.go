// README: Layout store backed by PostgreSQL; rings and properties as JSONB.
package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"siteplan/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) CreateProject(ctx context.Context, p *Project) error {
	boundary, err := json.Marshal(p.Boundary)
	if err != nil {
		return fmt.Errorf("encode boundary: %w", err)
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO projects (
            id, name, sw_lat, sw_lng, ne_lat, ne_lng, boundary, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		string(p.ID),
		p.Name,
		p.Bounds.SouthWest.Lat, p.Bounds.SouthWest.Lng,
		p.Bounds.NorthEast.Lat, p.Bounds.NorthEast.Lng,
		boundary,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if err := s.ReplaceAssets(ctx, p.ID, p.Assets); err != nil {
		return err
	}
	for _, z := range p.Zones {
		if err := s.insertZone(ctx, p.ID, z); err != nil {
			return err
		}
	}
	for _, r := range p.Roads {
		if err := s.insertRoad(ctx, p.ID, r); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) GetProject(ctx context.Context, id types.ID) (*Project, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, name, sw_lat, sw_lng, ne_lat, ne_lng, boundary, created_at, updated_at
        FROM projects
        WHERE id = $1`, string(id),
	)

	var p Project
	var boundary []byte
	err := row.Scan(
		&p.ID, &p.Name,
		&p.Bounds.SouthWest.Lat, &p.Bounds.SouthWest.Lng,
		&p.Bounds.NorthEast.Lat, &p.Bounds.NorthEast.Lng,
		&boundary, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(boundary, &p.Boundary); err != nil {
		return nil, fmt.Errorf("decode boundary: %w", err)
	}

	if p.Assets, err = s.listAssets(ctx, id); err != nil {
		return nil, err
	}
	if p.Zones, err = s.listZones(ctx, id); err != nil {
		return nil, err
	}
	if p.Roads, err = s.listRoads(ctx, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetAsset(ctx context.Context, projectID, assetID types.ID) (*PlacedAsset, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, type, lat, lng, width_ft, length_ft, height_ft, rotation_deg, properties
        FROM assets
        WHERE project_id = $1 AND id = $2`,
		string(projectID), string(assetID),
	)
	a, err := scanAsset(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) UpdateAssetPose(ctx context.Context, projectID types.ID, a *PlacedAsset) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE assets
        SET lat = $1, lng = $2, rotation_deg = $3
        WHERE project_id = $4 AND id = $5`,
		a.Pose.Position.Lat, a.Pose.Position.Lng, a.Pose.RotationDeg,
		string(projectID), string(a.ID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrAssetNotFound
	}
	_, err = s.db.Exec(ctx,
		`UPDATE projects SET updated_at = NOW() WHERE id = $1`, string(projectID))
	return err
}

func (s *Store) DeleteAsset(ctx context.Context, projectID, assetID types.ID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM assets WHERE project_id = $1 AND id = $2`,
		string(projectID), string(assetID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrAssetNotFound
	}
	return nil
}

func (s *Store) ReplaceAssets(ctx context.Context, projectID types.ID, assets []PlacedAsset) error {
	if _, err := s.db.Exec(ctx,
		`DELETE FROM assets WHERE project_id = $1`, string(projectID)); err != nil {
		return err
	}
	for _, a := range assets {
		props, err := json.Marshal(a.Properties)
		if err != nil {
			return fmt.Errorf("encode properties: %w", err)
		}
		if _, err := s.db.Exec(ctx, `
            INSERT INTO assets (
                id, project_id, type, lat, lng, width_ft, length_ft, height_ft, rotation_deg, properties
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			string(a.ID), string(projectID), string(a.Type),
			a.Pose.Position.Lat, a.Pose.Position.Lng,
			a.Pose.WidthFt, a.Pose.LengthFt, a.Pose.HeightFt, a.Pose.RotationDeg,
			props,
		); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) listAssets(ctx context.Context, projectID types.ID) ([]PlacedAsset, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, type, lat, lng, width_ft, length_ft, height_ft, rotation_deg, properties
        FROM assets
        WHERE project_id = $1
        ORDER BY id`, string(projectID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlacedAsset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) insertZone(ctx context.Context, projectID types.ID, z ConstraintZone) error {
	ring, err := json.Marshal(z.Ring)
	if err != nil {
		return fmt.Errorf("encode zone ring: %w", err)
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO zones (id, project_id, type, severity, ring)
        VALUES ($1, $2, $3, $4, $5)`,
		string(z.ID), string(projectID), string(z.Type), string(z.Severity), ring)
	return err
}

func (s *Store) listZones(ctx context.Context, projectID types.ID) ([]ConstraintZone, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, type, severity, ring
        FROM zones
        WHERE project_id = $1
        ORDER BY id`, string(projectID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ConstraintZone
	for rows.Next() {
		var z ConstraintZone
		var ring []byte
		if err := rows.Scan(&z.ID, &z.Type, &z.Severity, &ring); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(ring, &z.Ring); err != nil {
			return nil, fmt.Errorf("decode zone ring: %w", err)
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

func (s *Store) insertRoad(ctx context.Context, projectID types.ID, r RoadSegment) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO roads (id, project_id, start_lat, start_lng, end_lat, end_lng, width_ft, surface)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(r.ID), string(projectID),
		r.Start.Lat, r.Start.Lng, r.End.Lat, r.End.Lng,
		r.WidthFt, r.Surface)
	return err
}

func (s *Store) listRoads(ctx context.Context, projectID types.ID) ([]RoadSegment, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, start_lat, start_lng, end_lat, end_lng, width_ft, surface
        FROM roads
        WHERE project_id = $1
        ORDER BY id`, string(projectID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RoadSegment
	for rows.Next() {
		var r RoadSegment
		if err := rows.Scan(&r.ID, &r.Start.Lat, &r.Start.Lng, &r.End.Lat, &r.End.Lng, &r.WidthFt, &r.Surface); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanAsset(row pgx.Row) (*PlacedAsset, error) {
	var a PlacedAsset
	var props []byte
	if err := row.Scan(
		&a.ID, &a.Type,
		&a.Pose.Position.Lat, &a.Pose.Position.Lng,
		&a.Pose.WidthFt, &a.Pose.LengthFt, &a.Pose.HeightFt, &a.Pose.RotationDeg,
		&props,
	); err != nil {
		return nil, err
	}
	if len(props) > 0 {
		if err := json.Unmarshal(props, &a.Properties); err != nil {
			return nil, fmt.Errorf("decode properties: %w", err)
		}
	}
	a.RecomputeFootprint()
	return &a, nil
}
