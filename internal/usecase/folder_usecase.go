package usecase

import (
	"vidmint/internal/entity"
	"vidmint/internal/repo/persistent"
	"vidmint/pkg/logger"
	"vidmint/pkg/slug"
)

const (
	slugRetries        = 10
	slugFallbackLength = 16
	maxFolderDepth     = 512
)

type UpdateFolderInput struct {
	Name      *string
	Color     *string
	Position  *int
	ParentID  *string
	MoveToSet bool // true when the request includes a parent change, including a move to root
}

type FolderUseCase interface {
	Create(userID, name, color string, parentID *string) (*entity.Folder, error)
	Get(folderID, userID string) (*entity.Folder, error)
	List(userID string) ([]*entity.Folder, error)
	Update(folderID, userID string, input UpdateFolderInput) (*entity.Folder, error)
	Delete(folderID, userID string) error
	ForceDelete(folderID, userID string) error
}

type folderUseCase struct {
	folderRepo persistent.FolderRepository
	logger     *logger.Logger
}

func NewFolderUseCase(folderRepo persistent.FolderRepository, logger *logger.Logger) FolderUseCase {
	return &folderUseCase{
		folderRepo: folderRepo,
		logger:     logger,
	}
}

func (uc *folderUseCase) Create(userID, name, color string, parentID *string) (*entity.Folder, error) {
	if parentID != nil {
		if _, err := uc.folderRepo.GetOwned(*parentID, userID); err != nil {
			return nil, ErrNotFound
		}
	}

	taken, err := uc.folderRepo.SiblingNameTaken(userID, parentID, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}

	id, err := uc.newFolderID()
	if err != nil {
		return nil, err
	}

	folder := &entity.Folder{
		ID:       id,
		UserID:   userID,
		ParentID: parentID,
		Name:     name,
		Color:    color,
	}
	if err := uc.folderRepo.Create(folder); err != nil {
		uc.logger.Error("Failed to create folder: %v", err)
		return nil, err
	}
	return folder, nil
}

// newFolderID generates a random slug, retrying against existing ids and
// falling back to a longer slug when the short space keeps colliding.
func (uc *folderUseCase) newFolderID() (string, error) {
	for i := 0; i < slugRetries; i++ {
		id, err := slug.New(slug.DefaultLength)
		if err != nil {
			return "", err
		}
		exists, err := uc.folderRepo.ExistsID(id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return slug.New(slugFallbackLength)
}

func (uc *folderUseCase) Get(folderID, userID string) (*entity.Folder, error) {
	folder, err := uc.folderRepo.GetOwned(folderID, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return folder, nil
}

func (uc *folderUseCase) List(userID string) ([]*entity.Folder, error) {
	return uc.folderRepo.ListByUser(userID)
}

func (uc *folderUseCase) Update(folderID, userID string, input UpdateFolderInput) (*entity.Folder, error) {
	folder, err := uc.folderRepo.GetOwned(folderID, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	newParent := folder.ParentID
	if input.MoveToSet {
		newParent = input.ParentID
		if newParent != nil {
			if _, err := uc.folderRepo.GetOwned(*newParent, userID); err != nil {
				return nil, ErrNotFound
			}
			if err := uc.checkNoCycle(folderID, *newParent); err != nil {
				return nil, err
			}
		}
	}

	name := folder.Name
	if input.Name != nil {
		name = *input.Name
	}

	if name != folder.Name || input.MoveToSet {
		taken, err := uc.folderRepo.SiblingNameTaken(userID, newParent, name, folderID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateName
		}
	}

	folder.Name = name
	folder.ParentID = newParent
	if input.Color != nil {
		folder.Color = *input.Color
	}
	if input.Position != nil {
		folder.Position = *input.Position
	}

	if err := uc.folderRepo.Update(folder); err != nil {
		uc.logger.Error("Failed to update folder: %v", err)
		return nil, err
	}
	return folder, nil
}

// checkNoCycle walks up the parent chain from newParentID. Reaching folderID
// means the new parent sits inside the folder's own subtree, which would close
// a cycle. The walk is iterative and bounded.
func (uc *folderUseCase) checkNoCycle(folderID, newParentID string) error {
	current := newParentID
	for depth := 0; depth < maxFolderDepth; depth++ {
		if current == folderID {
			return ErrCircularStructure
		}
		parent, err := uc.folderRepo.GetByID(current)
		if err != nil {
			return ErrNotFound
		}
		if parent.ParentID == nil {
			return nil
		}
		current = *parent.ParentID
	}
	return ErrCircularStructure
}

// Delete lifts the folder's direct children and videos to its own parent, then
// removes the folder. Content is preserved, the tree flattens by one level.
func (uc *folderUseCase) Delete(folderID, userID string) error {
	folder, err := uc.folderRepo.GetOwned(folderID, userID)
	if err != nil {
		return ErrNotFound
	}
	return uc.folderRepo.DeleteReparent(folder)
}

// ForceDelete destroys the folder's entire subtree: every descendant folder,
// every contained video, and the videos' view and payout detail rows.
func (uc *folderUseCase) ForceDelete(folderID, userID string) error {
	if _, err := uc.folderRepo.GetOwned(folderID, userID); err != nil {
		return ErrNotFound
	}

	// Collect the subtree breadth-first with an explicit queue; pathological
	// trees must not blow the stack.
	folderIDs := []string{folderID}
	queue := []string{folderID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		children, err := uc.folderRepo.ListChildren(current)
		if err != nil {
			return err
		}
		for _, child := range children {
			folderIDs = append(folderIDs, child.ID)
			queue = append(queue, child.ID)
		}
	}

	videoIDs, err := uc.folderRepo.ListVideoIDs(folderIDs)
	if err != nil {
		return err
	}

	if err := uc.folderRepo.DeleteCascade(folderIDs, videoIDs); err != nil {
		uc.logger.Error("Failed to force-delete folder %s: %v", folderID, err)
		return err
	}
	return nil
}
