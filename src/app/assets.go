package app

import (
	"context"
	"log"
	"regexp"
	"time"
)

// AssetStore deletes hosted images by public identifier.
type AssetStore interface {
	DeleteAsset(ctx context.Context, publicID string) error
}

var publicIDPattern = regexp.MustCompile(`/v\d+/([^/]+)\.`)

// ExtractPublicID returns the identifier in a versioned asset URL such as
// https://res.cloudinary.com/demo/image/upload/v1700000000/abc.png ("abc").
// ok is false when the URL carries no versioned identifier.
func ExtractPublicID(imageURL string) (publicID string, ok bool) {
	match := publicIDPattern.FindStringSubmatch(imageURL)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// AssetCleaner removes assets on a best-effort basis: every failure is
// logged and swallowed so the database write that follows always runs.
type AssetCleaner struct {
	store   AssetStore
	timeout time.Duration
}

// NewAssetCleaner wraps store. A nil store disables deletion; a zero timeout
// leaves calls bounded only by the caller's context.
func NewAssetCleaner(store AssetStore, timeout time.Duration) *AssetCleaner {
	return &AssetCleaner{store: store, timeout: timeout}
}

// Remove deletes the asset referenced by imageURL, if any.
func (c *AssetCleaner) Remove(ctx context.Context, imageURL string) {
	if c == nil || c.store == nil {
		return
	}
	publicID, ok := ExtractPublicID(imageURL)
	if !ok {
		log.Printf("[assets] no public id in %q, skipping delete", imageURL)
		return
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.store.DeleteAsset(ctx, publicID); err != nil {
		log.Printf("[assets] error deleting image %s: %v", publicID, err)
	}
}

// RemoveReplaced deletes the assets of previous that current no longer
// references. A URL counts as referenced when current holds the same URL or
// another version of the same public id.
func (c *AssetCleaner) RemoveReplaced(ctx context.Context, previous, current []string) {
	referenced := make(map[string]bool, 2*len(current))
	for _, imageURL := range current {
		referenced[imageURL] = true
		if publicID, ok := ExtractPublicID(imageURL); ok {
			referenced["id:"+publicID] = true
		}
	}
	for _, imageURL := range previous {
		if referenced[imageURL] {
			continue
		}
		if publicID, ok := ExtractPublicID(imageURL); ok && referenced["id:"+publicID] {
			continue
		}
		c.Remove(ctx, imageURL)
	}
}

// RemoveAll calls Remove for every URL, in order.
func (c *AssetCleaner) RemoveAll(ctx context.Context, imageURLs []string) {
	for _, imageURL := range imageURLs {
		c.Remove(ctx, imageURL)
	}
}
