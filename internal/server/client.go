package server

import (
	"context"

	"github.com/matzehuels/gridwork/pkg/buildinfo"
	"github.com/matzehuels/gridwork/pkg/httputil"
	"github.com/matzehuels/gridwork/pkg/workspace"
)

// Client drives a remote server.
type Client struct {
	http *httputil.Client
}

// NewClient creates a client for the server at base.
func NewClient(base string, opts ...httputil.ClientOption) *Client {
	return &Client{http: httputil.NewClient(base, opts...)}
}

// Pointer sends a pointer action at a device point.
func (c *Client) Pointer(ctx context.Context, action string, x, y float64) (PointerResponse, error) {
	var resp PointerResponse
	err := c.http.Post(ctx, "/pointer/"+action, PointerRequest{X: x, Y: y}, &resp)
	return resp, err
}

// State fetches the drag state.
func (c *Client) State(ctx context.Context) (workspace.DragState, error) {
	var ds workspace.DragState
	err := c.http.Get(ctx, "/state", &ds)
	return ds, err
}

// Grids fetches every grid view.
func (c *Client) Grids(ctx context.Context) ([]workspace.GridView, error) {
	var views []workspace.GridView
	err := c.http.Get(ctx, "/grids", &views)
	return views, err
}

// Render fetches the plain text rendering of the viewport.
func (c *Client) Render(ctx context.Context) (string, error) {
	return c.http.GetText(ctx, "/render")
}

// Stats fetches the server counters.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := c.http.Get(ctx, "/stats", &st)
	return st, err
}

// Version fetches the server's build information.
func (c *Client) Version(ctx context.Context) (buildinfo.Info, error) {
	var info buildinfo.Info
	err := c.http.Get(ctx, "/version", &info)
	return info, err
}

// Zoom scales the remote viewport around a device point.
func (c *Client) Zoom(ctx context.Context, factor, x, y float64) (PointerResponse, error) {
	var resp PointerResponse
	err := c.http.Post(ctx, "/zoom", ZoomRequest{Factor: factor, X: x, Y: y}, &resp)
	return resp, err
}
