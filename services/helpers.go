package services

import (
	"time"

	"github.com/btdosparca/league-system/models"
	"github.com/btdosparca/league-system/storage"
)

const dateLayout = "2006-01-02"

// populateAvatarURL resolves the stored object key into a public URL.
// Players without an avatar, or a nil uploader, leave the field empty.
func populateAvatarURL(p *models.Player, uploader storage.FileUploader) {
	if p == nil || uploader == nil || p.AvatarKey == nil || *p.AvatarKey == "" {
		return
	}
	p.AvatarURL = uploader.GetPublicURL(*p.AvatarKey)
}

func populateAvatarURLs(players []models.Player, uploader storage.FileUploader) {
	for i := range players {
		populateAvatarURL(&players[i], uploader)
	}
}

// parseDay parses a YYYY-MM-DD string into a UTC midnight timestamp.
func parseDay(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
