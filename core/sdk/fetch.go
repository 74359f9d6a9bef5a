package sdk

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Fetcher downloads SDK archives, going through the Cache when one is set.
type Fetcher struct {
	client *http.Client
	cache  *Cache
	logger *zap.Logger
}

// NewFetcher creates a Fetcher. cache may be nil.
func NewFetcher(client *http.Client, cache *Cache, logger *zap.Logger) *Fetcher {
	return &Fetcher{client: client, cache: cache, logger: logger}
}

// NewHTTPClient builds the download client from the SDK configuration.
func NewHTTPClient(cfg Config) *http.Client {
	timeout := cfg.DownloadTimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	d := time.Duration(timeout) * time.Second

	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   d,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   d,
			ResponseHeaderTimeout: d,
		},
	}
}

// Fetch makes sure the archive at url is present at dest.
// An existing dest is reused as is.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		f.logger.Debug("Archive already present", zap.String("path", dest))
		return nil
	}

	name := path.Base(url)
	if f.cache != nil {
		hit, err := f.cache.Get(ctx, name, dest)
		if err != nil {
			f.logger.Warn("Archive cache lookup failed", zap.String("archive", name), zap.Error(err))
		}
		if hit {
			f.logger.Info("Archive restored from cache", zap.String("archive", name))
			return nil
		}
	}

	if err := f.download(ctx, url, dest); err != nil {
		return err
	}

	if f.cache != nil {
		if err := f.cache.Put(ctx, name, dest); err != nil {
			f.logger.Warn("Failed to cache archive", zap.String("archive", name), zap.Error(err))
		}
	}
	return nil
}

func (f *Fetcher) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to download %s: unexpected status %s", url, resp.Status)
	}

	n, err := writeFile(dest, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}

	f.logger.Info("Archive downloaded",
		zap.String("url", url),
		zap.String("size", humanize.Bytes(uint64(n))),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// writeFile streams r into dest through a temporary file so an interrupted
// transfer never leaves a truncated archive behind.
func writeFile(dest string, r io.Reader) (int64, error) {
	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return n, err
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return n, err
	}
	return n, nil
}
