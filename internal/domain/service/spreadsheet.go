package service

import "github.com/TimDev9492/chad-website/internal/domain/entity"

// ParticipantSheetWriter renders the participant export workbook.
type ParticipantSheetWriter interface {
	Write(participants []*entity.Participant) ([]byte, error)
}
