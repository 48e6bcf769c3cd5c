package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/btdosparca/league-system/live"
	"github.com/btdosparca/league-system/models"
	"github.com/btdosparca/league-system/repositories"
	"github.com/btdosparca/league-system/storage"
)

var avatarExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type CreatePlayerInput struct {
	Name string `json:"name"`
	DOB  string `json:"dob"`
}

type UpdatePlayerInput struct {
	Name *string `json:"name"`
	DOB  *string `json:"dob"`
}

type PlayerService interface {
	Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetByID(ctx context.Context, id string) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	Update(ctx context.Context, id string, input UpdatePlayerInput) (*models.Player, error)
	Delete(ctx context.Context, id string) error
	UploadAvatar(ctx context.Context, id string, file io.Reader, contentType string) (*models.Player, error)
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
	hub        *live.Hub
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader, hub *live.Hub) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
		hub:        hub,
	}
}

func (s *playerService) notifyChanged() {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(live.CollectionPlayers, live.EventPlayersUpdated, nil)
	s.hub.Broadcast(live.CollectionRankings, live.EventRankingsUpdated, nil)
}

func (s *playerService) Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}
	dob, err := parseDay(input.DOB)
	if err != nil {
		return nil, ErrPlayerDOBInvalid
	}

	player := &models.Player{
		ID:   uuid.NewString(),
		Name: name,
		DOB:  dob,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}

	s.notifyChanged()
	return player, nil
}

func (s *playerService) GetByID(ctx context.Context, id string) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	populateAvatarURL(player, s.uploader)
	return player, nil
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	populateAvatarURLs(players, s.uploader)
	return players, nil
}

func (s *playerService) Update(ctx context.Context, id string, input UpdatePlayerInput) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrPlayerNameRequired
		}
		player.Name = name
	}
	if input.DOB != nil {
		dob, err := parseDay(*input.DOB)
		if err != nil {
			return nil, ErrPlayerDOBInvalid
		}
		player.DOB = dob
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}

	populateAvatarURL(player, s.uploader)
	s.notifyChanged()
	return player, nil
}

func (s *playerService) Delete(ctx context.Context, id string) error {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Best effort: the player is already gone, a stale object is harmless.
	if s.uploader != nil && player.AvatarKey != nil && *player.AvatarKey != "" {
		_ = s.uploader.Delete(ctx, *player.AvatarKey)
	}

	s.notifyChanged()
	return nil
}

func (s *playerService) UploadAvatar(ctx context.Context, id string, file io.Reader, contentType string) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrUploaderNotConfigured
	}
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedFileType
	}

	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/%s.%s", player.ID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("uploading avatar: %w", err)
	}

	if player.AvatarKey != nil && *player.AvatarKey != "" && *player.AvatarKey != result.Key {
		_ = s.uploader.Delete(ctx, *player.AvatarKey)
	}

	if err := s.playerRepo.UpdateAvatarKey(ctx, id, result.Key); err != nil {
		return nil, err
	}

	player.AvatarKey = &result.Key
	populateAvatarURL(player, s.uploader)
	s.notifyChanged()
	return player, nil
}
