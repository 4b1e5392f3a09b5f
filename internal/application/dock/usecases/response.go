package usecases

import (
	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/domain/dock"
)

func toDockResponse(d *dock.Dock) *dto.DockResponse {
	return &dto.DockResponse{
		SID:       d.SID(),
		Location:  d.Location(),
		Notes:     d.Notes(),
		Capacity:  d.Capacity(),
		Status:    d.Status().String(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}
