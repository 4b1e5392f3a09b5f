package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/harbor/dto"
	shipdto "harbormaster/internal/application/ship/dto"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/ship"
	"harbormaster/internal/shared/logger"
	"harbormaster/internal/shared/services/markdown"
)

// GetDockWithShipsUseCase assembles the dock occupancy view: the dock, the
// ships berthed at it in insertion order, and the free capacity left.
type GetDockWithShipsUseCase struct {
	docks    dock.Repository
	ships    ship.Repository
	renderer markdown.Renderer
	logger   logger.Interface
}

// NewGetDockWithShipsUseCase creates a new GetDockWithShipsUseCase.
func NewGetDockWithShipsUseCase(
	docks dock.Repository,
	ships ship.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetDockWithShipsUseCase {
	return &GetDockWithShipsUseCase{
		docks:    docks,
		ships:    ships,
		renderer: renderer,
		logger:   logger,
	}
}

// ExecuteBySID retrieves the occupancy view for a dock by its public ID.
func (uc *GetDockWithShipsUseCase) ExecuteBySID(ctx context.Context, sid string) (*dto.DockWithShipsResponse, error) {
	d, err := uc.docks.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get dock", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get dock: %w", err)
	}
	if d == nil {
		return nil, dock.ErrDockNotFound
	}

	berthed, err := uc.ships.ListByDockID(ctx, d.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ships for dock", "error", err, "dock_id", d.ID())
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}

	notesHTML, err := uc.renderer.RenderSanitized(d.Notes())
	if err != nil {
		uc.logger.Warnw("failed to render dock notes", "error", err, "dock_id", d.ID())
		notesHTML = ""
	}

	items := make([]shipdto.ShipResponse, 0, len(berthed))
	dockSID := d.SID()
	for _, s := range berthed {
		items = append(items, shipdto.ShipResponse{
			SID:       s.SID(),
			Name:      s.Name(),
			Type:      s.Type(),
			DockSID:   &dockSID,
			Manifest:  s.Manifest(),
			CreatedAt: s.CreatedAt(),
			UpdatedAt: s.UpdatedAt(),
		})
	}

	free := d.Capacity() - len(berthed)
	if free < 0 {
		free = 0
	}

	return &dto.DockWithShipsResponse{
		ID:           d.SID(),
		Location:     d.Location(),
		Notes:        d.Notes(),
		NotesHTML:    notesHTML,
		Capacity:     d.Capacity(),
		Status:       d.Status().String(),
		Occupancy:    len(berthed),
		FreeCapacity: free,
		Ships:        items,
	}, nil
}
