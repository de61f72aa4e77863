package gdrive

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"

	"github.com/sheetdrive/sheetdrive/gapi"
)

type Revision struct {
	ID       string
	Modified time.Time
}

// Revisions pages through the revision history for a Drive file, oldest first.
func Revisions(ctx context.Context, gdrive *drive.Service, fileId string) ([]Revision, error) {
	page := ""
	list := []Revision{}

	for {
		call := drive.NewRevisionsService(gdrive).List(fileId).Context(ctx)
		if page != "" {
			call = call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return nil, gapi.Wrap(err, fmt.Sprintf("file %s", fileId), "")
		}

		for _, revision := range revisions.Revisions {
			datetime, err := time.Parse("2006-01-02T15:04:05.999Z", revision.ModifiedTime)
			if err != nil {
				return nil, err
			}

			list = append(list, Revision{
				ID:       revision.Id,
				Modified: datetime,
			})
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	return list, nil
}

// Latest returns the most recently modified revision from a revision history.
func Latest(revisions []Revision) (*Revision, error) {
	latest := Revision{
		ID:       "",
		Modified: time.Time{},
	}

	for _, revision := range revisions {
		if latest.Modified.Before(revision.Modified) {
			latest = revision
		}
	}

	if latest.Modified.IsZero() {
		return nil, fmt.Errorf("unable to identify latest revision")
	}

	return &latest, nil
}

// LatestRevision retrieves the revision history for a Drive file and returns the most
// recently modified revision.
func LatestRevision(ctx context.Context, gdrive *drive.Service, fileId string) (*Revision, error) {
	revisions, err := Revisions(ctx, gdrive, fileId)
	if err != nil {
		return nil, err
	}

	return Latest(revisions)
}
