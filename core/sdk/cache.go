package sdk

import (
	"context"
	"fmt"
	"os"

	"fips/core/storage"

	"github.com/minio/minio-go/v7"
)

// Cache mirrors downloaded archives in an object storage bucket.
type Cache struct {
	client storage.Client
	bucket string
	prefix string
}

// NewCache creates a Cache storing objects as prefix+name in bucket.
func NewCache(client storage.Client, bucket, prefix string) *Cache {
	return &Cache{client: client, bucket: bucket, prefix: prefix}
}

func (c *Cache) key(name string) string {
	return c.prefix + name
}

// Get copies the cached archive name to dest. It reports false with a nil
// error when the archive is not cached.
func (c *Cache) Get(ctx context.Context, name, dest string) (bool, error) {
	key := c.key(name)
	if _, err := c.client.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat cached archive %s: %w", key, err)
	}

	obj, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return false, fmt.Errorf("failed to get cached archive %s: %w", key, err)
	}
	defer obj.Close()

	if _, err := writeFile(dest, obj); err != nil {
		return false, err
	}
	return true, nil
}

// Put uploads the archive at src as name, creating the bucket if needed.
func (c *Cache) Put(ctx context.Context, name, src string) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", c.bucket, err)
	}
	if !exists {
		if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", c.bucket, err)
		}
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	_, err = c.client.PutObject(ctx, c.bucket, c.key(name), f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed to upload archive %s: %w", name, err)
	}
	return nil
}
