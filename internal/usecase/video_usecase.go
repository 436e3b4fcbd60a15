package usecase

import (
	"fmt"
	"io"

	"vidmint/internal/entity"
	"vidmint/internal/repo/persistent"
	"vidmint/pkg/logger"

	"github.com/google/uuid"
)

// VideoHost proxies uploaded bytes to the external hosting endpoint and
// returns the identifier it issues.
type VideoHost interface {
	Upload(filename string, file io.Reader) (string, error)
}

// ThumbnailStore is satisfied by the S3 client.
type ThumbnailStore interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
}

type UpdateVideoInput struct {
	Title     *string
	FolderID  *string
	FolderSet bool
}

type VideoUseCase interface {
	Create(userID, title string, folderID *string, filename string, file io.Reader) (*entity.Video, error)
	Get(videoID, userID string) (*entity.Video, error)
	List(userID string, folderID *string, limit, offset int) ([]*entity.Video, error)
	Update(videoID, userID string, input UpdateVideoInput) (*entity.Video, error)
	Delete(videoID, userID string) error
	UploadThumbnail(videoID, userID string, file io.Reader, contentType, ext string) (*entity.Video, error)
	Like(videoID string) error
	Dislike(videoID string) error
	Stats(videoID, userID string, days int) ([]*entity.DailyViews, []*entity.CountryViews, error)
}

type videoUseCase struct {
	videoRepo  persistent.VideoRepository
	folderRepo persistent.FolderRepository
	viewRepo   persistent.ViewRepository
	host       VideoHost
	thumbnails ThumbnailStore
	logger     *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	folderRepo persistent.FolderRepository,
	viewRepo persistent.ViewRepository,
	host VideoHost,
	thumbnails ThumbnailStore,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:  videoRepo,
		folderRepo: folderRepo,
		viewRepo:   viewRepo,
		host:       host,
		thumbnails: thumbnails,
		logger:     logger,
	}
}

func (uc *videoUseCase) Create(userID, title string, folderID *string, filename string, file io.Reader) (*entity.Video, error) {
	if folderID != nil {
		if _, err := uc.folderRepo.GetOwned(*folderID, userID); err != nil {
			return nil, ErrNotFound
		}
	}

	externalID, err := uc.host.Upload(filename, file)
	if err != nil {
		uc.logger.Error("Failed to upload video to host: %v", err)
		return nil, fmt.Errorf("failed to upload video: %w", err)
	}

	video := &entity.Video{
		ExternalID: externalID,
		UserID:     userID,
		FolderID:   folderID,
		Title:      title,
	}
	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		return nil, err
	}
	return video, nil
}

func (uc *videoUseCase) Get(videoID, userID string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetOwned(videoID, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return video, nil
}

func (uc *videoUseCase) List(userID string, folderID *string, limit, offset int) ([]*entity.Video, error) {
	return uc.videoRepo.ListByUser(userID, folderID, limit, offset)
}

func (uc *videoUseCase) Update(videoID, userID string, input UpdateVideoInput) (*entity.Video, error) {
	video, err := uc.videoRepo.GetOwned(videoID, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		video.Title = *input.Title
	}
	if input.FolderSet {
		if input.FolderID != nil {
			if _, err := uc.folderRepo.GetOwned(*input.FolderID, userID); err != nil {
				return nil, ErrNotFound
			}
		}
		video.FolderID = input.FolderID
	}

	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to update video: %v", err)
		return nil, err
	}
	return video, nil
}

func (uc *videoUseCase) Delete(videoID, userID string) error {
	if _, err := uc.videoRepo.GetOwned(videoID, userID); err != nil {
		return ErrNotFound
	}
	if err := uc.videoRepo.DeleteCascade(videoID); err != nil {
		uc.logger.Error("Failed to delete video %s: %v", videoID, err)
		return err
	}
	return nil
}

func (uc *videoUseCase) UploadThumbnail(videoID, userID string, file io.Reader, contentType, ext string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetOwned(videoID, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	key := fmt.Sprintf("thumbnails/%s/%s%s", userID, uuid.New().String(), ext)
	url, err := uc.thumbnails.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail: %v", err)
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	video.ThumbnailURL = url
	if err := uc.videoRepo.Update(video); err != nil {
		return nil, err
	}
	return video, nil
}

func (uc *videoUseCase) Like(videoID string) error {
	if err := uc.videoRepo.IncrementLike(videoID); err != nil {
		return ErrNotFound
	}
	return nil
}

func (uc *videoUseCase) Dislike(videoID string) error {
	if err := uc.videoRepo.IncrementDislike(videoID); err != nil {
		return ErrNotFound
	}
	return nil
}

func (uc *videoUseCase) Stats(videoID, userID string, days int) ([]*entity.DailyViews, []*entity.CountryViews, error) {
	if _, err := uc.videoRepo.GetOwned(videoID, userID); err != nil {
		return nil, nil, ErrNotFound
	}

	daily, err := uc.viewRepo.ViewsByDay(videoID, days)
	if err != nil {
		return nil, nil, err
	}
	byCountry, err := uc.viewRepo.ViewsByCountry(videoID)
	if err != nil {
		return nil, nil, err
	}
	return daily, byCountry, nil
}
