package lookup

import "context"

// LocRequest identifies one location lookup.
type LocRequest struct {
	Name string
	Kind string
}

// LocKey builds the location cache key.
func LocKey(kind, name string) string {
	return kind + "_" + name
}

// LocCache is the location-info cache, keyed by kind + "_" + name.
type LocCache = Cache[LocRequest, LocInfo]

// NewLocCache creates the location-info cache backed by the client.
func NewLocCache(c *Client, size int) (*LocCache, error) {
	return New(size, func(ctx context.Context, r LocRequest) (LocInfo, bool, error) {
		return c.LocInfo(ctx, r.Name, r.Kind)
	})
}

// ImageRequest identifies one person-image lookup.
type ImageRequest struct {
	Name  string
	Thumb bool
}

// ImageCache is the person-image cache, keyed by raw name.
type ImageCache = Cache[ImageRequest, Image]

// NewImageCache creates the person-image cache backed by the client.
func NewImageCache(c *Client, size int) (*ImageCache, error) {
	return New(size, func(ctx context.Context, r ImageRequest) (Image, bool, error) {
		return c.Image(ctx, r.Name, r.Thumb)
	})
}
