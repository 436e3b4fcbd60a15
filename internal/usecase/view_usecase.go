package usecase

import (
	"time"

	"vidmint/internal/entity"
	"vidmint/internal/repo/persistent"
	"vidmint/pkg/logger"
)

type ViewUseCase interface {
	TrackView(videoID, ip, country string) (bool, error)
}

type viewUseCase struct {
	videoRepo    persistent.VideoRepository
	viewRepo     persistent.ViewRepository
	settingsRepo persistent.SettingsRepository
	logger       *logger.Logger
}

func NewViewUseCase(
	videoRepo persistent.VideoRepository,
	viewRepo persistent.ViewRepository,
	settingsRepo persistent.SettingsRepository,
	logger *logger.Logger,
) ViewUseCase {
	return &viewUseCase{
		videoRepo:    videoRepo,
		viewRepo:     viewRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// TrackView counts at most one view per IP per video per UTC day. A counted
// view appends to the view log and credits CPM/1000 to the video and its
// owner in one transaction. Returns whether the view was counted.
func (uc *viewUseCase) TrackView(videoID, ip, country string) (bool, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return false, ErrNotFound
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	seen, err := uc.viewRepo.HasViewSince(videoID, ip, startOfDay)
	if err != nil {
		return false, err
	}
	if seen {
		return false, nil
	}

	settings, err := uc.settingsRepo.Get()
	if err != nil {
		uc.logger.Error("Failed to load web settings: %v", err)
		return false, err
	}
	earningsPerView := settings.CPM / 1000

	view := &entity.VideoView{
		VideoID: videoID,
		IP:      ip,
		Country: country,
	}
	if err := uc.viewRepo.RecordCountedView(view, earningsPerView, video.UserID); err != nil {
		uc.logger.Error("Failed to record view for video %s: %v", videoID, err)
		return false, err
	}
	return true, nil
}
