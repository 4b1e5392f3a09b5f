package dock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/domain/assignment"
	domaindock "harbormaster/internal/domain/dock"
	"harbormaster/internal/interfaces/http/handlers/testutil"
)

type stubCreateDock struct {
	ExecuteFunc func(ctx context.Context, req dto.CreateDockRequest) (*dto.DockResponse, error)
}

func (s *stubCreateDock) Execute(ctx context.Context, req dto.CreateDockRequest) (*dto.DockResponse, error) {
	return s.ExecuteFunc(ctx, req)
}

type stubGetDock struct {
	ExecuteBySIDFunc func(ctx context.Context, sid string) (*dto.DockResponse, error)
}

func (s *stubGetDock) ExecuteBySID(ctx context.Context, sid string) (*dto.DockResponse, error) {
	return s.ExecuteBySIDFunc(ctx, sid)
}

type stubListDocks struct {
	ExecuteFunc func(ctx context.Context, req dto.ListDocksRequest) (*dto.ListDocksResult, error)
}

func (s *stubListDocks) Execute(ctx context.Context, req dto.ListDocksRequest) (*dto.ListDocksResult, error) {
	return s.ExecuteFunc(ctx, req)
}

type stubUpdateDock struct {
	ExecuteBySIDFunc func(ctx context.Context, sid string, req dto.UpdateDockRequest) (*dto.DockResponse, error)
}

func (s *stubUpdateDock) ExecuteBySID(ctx context.Context, sid string, req dto.UpdateDockRequest) (*dto.DockResponse, error) {
	return s.ExecuteBySIDFunc(ctx, sid, req)
}

type stubDockStatus struct {
	ActivateBySIDFunc   func(ctx context.Context, sid string) (*dto.DockResponse, error)
	DeactivateBySIDFunc func(ctx context.Context, sid string) (*dto.DockResponse, error)
}

func (s *stubDockStatus) ActivateBySID(ctx context.Context, sid string) (*dto.DockResponse, error) {
	return s.ActivateBySIDFunc(ctx, sid)
}

func (s *stubDockStatus) DeactivateBySID(ctx context.Context, sid string) (*dto.DockResponse, error) {
	return s.DeactivateBySIDFunc(ctx, sid)
}

func newHandler(
	create *stubCreateDock,
	get *stubGetDock,
	list *stubListDocks,
	update *stubUpdateDock,
	status *stubDockStatus,
) *DockHandler {
	return NewDockHandler(create, get, list, update, status, testutil.NewMockLogger())
}

func TestDockHandler_CreateDock(t *testing.T) {
	create := &stubCreateDock{
		ExecuteFunc: func(ctx context.Context, req dto.CreateDockRequest) (*dto.DockResponse, error) {
			return &dto.DockResponse{SID: "dk_aB3xY9kQ2mN7", Location: req.Location, Capacity: req.Capacity, Status: "active"}, nil
		},
	}
	handler := newHandler(create, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/docks", dto.CreateDockRequest{
		Location: "Pier 4",
		Capacity: 3,
	})
	handler.CreateDock(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data dto.DockResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "Pier 4", data.Location)
	assert.Equal(t, 3, data.Capacity)
}

func TestDockHandler_CreateDock_InvalidBody(t *testing.T) {
	handler := newHandler(&stubCreateDock{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/docks", map[string]any{
		"location": "Pier 4",
		"capacity": "not a number",
	})
	handler.CreateDock(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestDockHandler_CreateDock_MissingFields(t *testing.T) {
	handler := newHandler(&stubCreateDock{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/docks", map[string]any{
		"capacity": 3,
	})
	handler.CreateDock(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDockHandler_GetDock_NotFound(t *testing.T) {
	get := &stubGetDock{
		ExecuteBySIDFunc: func(ctx context.Context, sid string) (*dto.DockResponse, error) {
			return nil, domaindock.ErrDockNotFound
		},
	}
	handler := newHandler(nil, get, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/docks/dk_missing", nil)
	testutil.SetURLParam(c, "id", "dk_missing")
	handler.GetDock(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestDockHandler_UpdateDock_CapacityConflict(t *testing.T) {
	update := &stubUpdateDock{
		ExecuteBySIDFunc: func(ctx context.Context, sid string, req dto.UpdateDockRequest) (*dto.DockResponse, error) {
			return nil, fmt.Errorf("dock 1 has 3 occupants, cannot shrink to 2: %w", assignment.ErrCapacityViolation)
		},
	}
	handler := newHandler(nil, nil, nil, update, nil)

	capacity := 2
	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/docks/dk_aB3xY9kQ2mN7", dto.UpdateDockRequest{Capacity: &capacity})
	testutil.SetURLParam(c, "id", "dk_aB3xY9kQ2mN7")
	handler.UpdateDock(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)
}

func TestDockHandler_ListDocks(t *testing.T) {
	list := &stubListDocks{
		ExecuteFunc: func(ctx context.Context, req dto.ListDocksRequest) (*dto.ListDocksResult, error) {
			assert.Equal(t, 2, req.Page)
			assert.Equal(t, 10, req.PageSize)
			return &dto.ListDocksResult{
				Items:    []dto.DockResponse{{SID: "dk_aB3xY9kQ2mN7", Location: "Pier 4"}},
				Total:    11,
				Page:     req.Page,
				PageSize: req.PageSize,
			}, nil
		},
	}
	handler := newHandler(nil, nil, list, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/docks", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "10"})
	handler.ListDocks(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestDockHandler_DeactivateDock(t *testing.T) {
	status := &stubDockStatus{
		DeactivateBySIDFunc: func(ctx context.Context, sid string) (*dto.DockResponse, error) {
			return &dto.DockResponse{SID: sid, Location: "Pier 4", Capacity: 3, Status: "inactive"}, nil
		},
	}
	handler := newHandler(nil, nil, nil, nil, status)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/docks/dk_aB3xY9kQ2mN7/deactivate", nil)
	testutil.SetURLParam(c, "id", "dk_aB3xY9kQ2mN7")
	handler.DeactivateDock(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data dto.DockResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "inactive", data.Status)
}
