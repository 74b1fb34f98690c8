package pixhaven

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// deleteConcurrency limits how many delete requests run at once.
const deleteConcurrency = 5

// Operations handles image search and batch operations on top of the client.
type Operations struct {
	client *Client
	logger zerolog.Logger
}

// NewOperations creates a new Operations instance.
func NewOperations(client *Client, logger zerolog.Logger) *Operations {
	return &Operations{
		client: client,
		logger: logger,
	}
}

// SearchImages fetches the images matching the server-side filter and keeps
// those for which match returns true. A nil match keeps everything.
func (o *Operations) SearchImages(ctx context.Context, filter ImageFilter, match func(Image) bool) ([]Image, error) {
	images, err := o.client.GetAllImages(ctx, filter)
	if err != nil {
		return nil, err
	}

	if match == nil {
		return images, nil
	}

	var results []Image
	for _, image := range images {
		if match(image) {
			results = append(results, image)
		}
	}

	o.logger.Debug().
		Int("fetched", len(images)).
		Int("matched", len(results)).
		Msg("Filtered images client-side")
	return results, nil
}

// BatchDeleteResult contains the results of a batch delete operation.
type BatchDeleteResult struct {
	Requested  int
	Successful []string
	Failed     []DeleteError
}

// DeleteError contains information about a failed delete operation.
type DeleteError struct {
	ImageID string
	Title   string
	Err     error
}

// Error implements the error interface.
func (e DeleteError) Error() string {
	return fmt.Sprintf("failed to delete image %s (ID: %s): %v", e.Title, e.ImageID, e.Err)
}

// BatchDeleteImages deletes images concurrently with bounded parallelism.
// Individual failures are collected instead of stopping the batch.
func (o *Operations) BatchDeleteImages(ctx context.Context, images []Image) BatchDeleteResult {
	result := BatchDeleteResult{
		Requested: len(images),
	}

	if len(images) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(deleteConcurrency)

	successChan := make(chan string, len(images))
	errorChan := make(chan DeleteError, len(images))

	for _, image := range images {
		g.Go(func() error {
			if _, err := o.client.DeleteImage(ctx, image.ID); err != nil {
				errorChan <- DeleteError{
					ImageID: image.ID,
					Title:   image.Title,
					Err:     err,
				}
			} else {
				successChan <- image.ID
			}
			return nil // don't stop on individual errors
		})
	}

	g.Wait()
	close(successChan)
	close(errorChan)

	for id := range successChan {
		result.Successful = append(result.Successful, id)
	}
	for deleteErr := range errorChan {
		result.Failed = append(result.Failed, deleteErr)
	}

	o.logger.Info().
		Int("requested", result.Requested).
		Int("deleted", len(result.Successful)).
		Int("failed", len(result.Failed)).
		Msg("Batch delete finished")
	return result
}
