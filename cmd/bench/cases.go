// README: Smoke cases: health, project lifecycle, asset moves, violations, exports.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Result struct {
	Name   string
	Status string
	Detail string
}

type Runner struct {
	cfg    Config
	client *http.Client

	projectID string
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	cases := []struct {
		name string
		run  func(context.Context) error
	}{
		{"health", r.checkHealth},
		{"create_project", r.checkCreateProject},
		{"get_project", r.checkGetProject},
		{"move_asset", r.checkMoveAsset},
		{"violations_after_move", r.checkViolations},
		{"render_png", r.checkRender},
		{"export_geojson", r.checkExportGeoJSON},
		{"metrics", r.checkMetrics},
	}

	var results []Result
	for _, c := range cases {
		res := Result{Name: c.name, Status: "PASS"}
		if err := c.run(ctx); err != nil {
			res.Status = "FAIL"
			res.Detail = err.Error()
		}
		fmt.Printf("[%s] %s %s\n", res.Status, res.Name, res.Detail)
		results = append(results, res)
	}
	return results
}

func (r *Runner) checkHealth(ctx context.Context) error {
	body, err := r.get(ctx, "/health")
	if err != nil {
		return err
	}
	if string(body) != "OK" {
		return fmt.Errorf("unexpected health body %q", body)
	}
	return nil
}

func (r *Runner) checkCreateProject(ctx context.Context) error {
	payload := map[string]any{
		"name": "bench site",
		"bounds": map[string]any{
			"southWest": map[string]float64{"latitude": 29.9, "longitude": -95.1},
			"northEast": map[string]float64{"latitude": 30.1, "longitude": -94.9},
		},
		"boundary": []map[string]float64{
			{"latitude": 29.9, "longitude": -95.1},
			{"latitude": 29.9, "longitude": -94.9},
			{"latitude": 30.1, "longitude": -94.9},
			{"latitude": 30.1, "longitude": -95.1},
		},
		"assets": []map[string]any{
			{
				"id":   "bench-a1",
				"type": "building",
				"pose": map[string]any{
					"position": map[string]float64{"latitude": 30.0, "longitude": -95.0},
					"widthFt":  100, "lengthFt": 200, "rotationDeg": 0,
				},
			},
			{
				"id":   "bench-a2",
				"type": "parking",
				"pose": map[string]any{
					"position": map[string]float64{"latitude": 30.05, "longitude": -94.95},
					"widthFt":  150, "lengthFt": 150, "rotationDeg": 0,
				},
			},
		},
	}
	var resp struct {
		ProjectID string `json:"project_id"`
	}
	if err := r.postJSON(ctx, "/api/projects", payload, &resp); err != nil {
		return err
	}
	if resp.ProjectID == "" {
		return fmt.Errorf("empty project_id")
	}
	r.projectID = resp.ProjectID
	return nil
}

func (r *Runner) checkGetProject(ctx context.Context) error {
	if r.projectID == "" {
		return fmt.Errorf("no project from create step")
	}
	body, err := r.get(ctx, "/api/projects/"+r.projectID)
	if err != nil {
		return err
	}
	var p struct {
		Assets []json.RawMessage `json:"assets"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return err
	}
	if len(p.Assets) != 2 {
		return fmt.Errorf("got %d assets, want 2", len(p.Assets))
	}
	return nil
}

// checkMoveAsset drags bench-a1 onto bench-a2 so the violations step has
// something to find.
func (r *Runner) checkMoveAsset(ctx context.Context) error {
	if r.projectID == "" {
		return fmt.Errorf("no project from create step")
	}
	url := fmt.Sprintf("/api/projects/%s/assets/bench-a1/position", r.projectID)
	return r.putJSON(ctx, url, map[string]float64{"lat": 30.05, "lng": -94.95}, nil)
}

func (r *Runner) checkViolations(ctx context.Context) error {
	if r.projectID == "" {
		return fmt.Errorf("no project from create step")
	}
	body, err := r.get(ctx, fmt.Sprintf("/api/projects/%s/violations", r.projectID))
	if err != nil {
		return err
	}
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return err
	}
	if resp.Count != 2 {
		return fmt.Errorf("got %d violations after overlap, want 2", resp.Count)
	}
	return nil
}

func (r *Runner) checkRender(ctx context.Context) error {
	if r.projectID == "" {
		return fmt.Errorf("no project from create step")
	}
	body, err := r.get(ctx, fmt.Sprintf("/api/projects/%s/render.png?width=320&height=240", r.projectID))
	if err != nil {
		return err
	}
	if len(body) < 8 || string(body[1:4]) != "PNG" {
		return fmt.Errorf("response is not a png (%d bytes)", len(body))
	}
	return nil
}

func (r *Runner) checkExportGeoJSON(ctx context.Context) error {
	if r.projectID == "" {
		return fmt.Errorf("no project from create step")
	}
	body, err := r.get(ctx, fmt.Sprintf("/api/projects/%s/export/geojson", r.projectID))
	if err != nil {
		return err
	}
	var fc struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(body, &fc); err != nil {
		return err
	}
	if fc.Type != "FeatureCollection" {
		return fmt.Errorf("unexpected type %q", fc.Type)
	}
	return nil
}

func (r *Runner) checkMetrics(ctx context.Context) error {
	body, err := r.get(ctx, "/metrics")
	if err != nil {
		return err
	}
	if !bytes.Contains(body, []byte("siteplan_http_request_duration_seconds")) {
		return fmt.Errorf("request duration metric missing")
	}
	return nil
}

func (r *Runner) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return r.do(req)
}

func (r *Runner) postJSON(ctx context.Context, path string, payload any, out any) error {
	return r.sendJSON(ctx, http.MethodPost, path, payload, out)
}

func (r *Runner) putJSON(ctx context.Context, path string, payload any, out any) error {
	return r.sendJSON(ctx, http.MethodPut, path, payload, out)
}

func (r *Runner) sendJSON(ctx context.Context, method, path string, payload any, out any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, r.cfg.BaseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	body, err := r.do(req)
	if err != nil {
		return err
	}
	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}

func (r *Runner) do(req *http.Request) ([]byte, error) {
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, body)
	}
	return body, nil
}
