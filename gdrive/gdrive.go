package gdrive

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/sheetdrive/sheetdrive/gapi"
)

// Upload creates a new Drive file from the content read from r and returns the file ID
// assigned by Drive. A non-blank folder is set as the parent folder ID of the created
// file, otherwise the file lands in the service account's own Drive root.
func Upload(ctx context.Context, gdrive *drive.Service, r io.Reader, name, mimetype, folder string) (string, error) {
	metadata := drive.File{
		Name: name,
	}

	if folder != "" {
		metadata.Parents = []string{folder}
	}

	call := gdrive.Files.Create(&metadata).Fields("id").Context(ctx)

	if mimetype != "" {
		call = call.Media(r, googleapi.ContentType(mimetype))
	} else {
		call = call.Media(r)
	}

	file, err := call.Do()
	if err != nil {
		return "", gapi.Wrap(err, fmt.Sprintf("folder %s", folder), "")
	}

	return file.Id, nil
}

// Download retrieves the content of a Drive file and copies it to w, returning the
// number of bytes copied.
func Download(ctx context.Context, gdrive *drive.Service, fileId string, w io.Writer) (int64, error) {
	response, err := gdrive.Files.Get(fileId).Context(ctx).Download()
	if err != nil {
		return 0, gapi.Wrap(err, fmt.Sprintf("file %s", fileId), "")
	}

	defer response.Body.Close()

	return io.Copy(w, response.Body)
}

// Metadata retrieves the id, name, MIME type, size and parent folders for a Drive file.
func Metadata(ctx context.Context, gdrive *drive.Service, fileId string) (*drive.File, error) {
	file, err := gdrive.Files.Get(fileId).Fields("id", "name", "mimeType", "size", "parents").Context(ctx).Do()
	if err != nil {
		return nil, gapi.Wrap(err, fmt.Sprintf("file %s", fileId), "")
	}

	return file, nil
}
