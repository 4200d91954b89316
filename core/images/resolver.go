// Package images implements the ImageResolver interface.
// Downloads are content-addressed by (record id, source URL): a file that
// already exists locally short-circuits the network entirely, which makes
// reruns idempotent.
package images

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/jitadeck/core/fetch"
)

const downloadTimeout = 30 * time.Second

// Resolver downloads article images into a flat local directory.
type Resolver struct {
	dir    string
	client *resty.Client
	delay  time.Duration
	log    *zap.Logger
}

// New creates a Resolver writing into dir, creating it if needed. delay is
// slept before every image download; it is shorter than the page delay but
// serves the same politeness purpose.
func New(dir string, delay time.Duration, log *zap.Logger) (*Resolver, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating images directory: %w", err)
	}
	client := resty.New().
		SetTimeout(downloadTimeout).
		SetHeaders(fetch.DefaultHeaders)
	return &Resolver{dir: dir, client: client, delay: delay, log: log}, nil
}

// Resolve returns the stable local filename for the image, downloading it at
// most once per (recordID, imageURL) pair. A download failure returns an
// error for this one image; the caller drops it and continues the article.
func (r *Resolver) Resolve(ctx context.Context, recordID, imageURL string) (string, error) {
	filename := Filename(recordID, imageURL)
	localPath := filepath.Join(r.dir, filename)

	if _, err := os.Stat(localPath); err == nil {
		r.log.Debug("image already downloaded", zap.String("filename", filename))
		return filename, nil
	}

	time.Sleep(r.delay)

	resp, err := r.client.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("downloading image %s: %w", imageURL, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", fmt.Errorf("unexpected status %d for image %s", resp.StatusCode(), imageURL)
	}

	if err := os.WriteFile(localPath, resp.Body(), 0644); err != nil {
		return "", fmt.Errorf("writing image %s: %w", localPath, err)
	}
	return filename, nil
}

// Filename computes the stable name for an image: the owning record id, the
// first 8 hex chars of the MD5 of the source URL, and the extension taken
// from the URL path (".jpg" when the path carries none).
func Filename(recordID, imageURL string) string {
	sum := md5.Sum([]byte(imageURL))
	hash := hex.EncodeToString(sum[:])[:8]

	ext := ".jpg"
	if parsed, err := url.Parse(imageURL); err == nil {
		if e := path.Ext(parsed.Path); e != "" {
			ext = e
		}
	}
	return recordID + "_" + hash + ext
}
