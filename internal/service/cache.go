package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/newstalgia/backend/internal/model"
)

const (
	projectListKey = "projects:list"
	projectListTTL = 5 * time.Minute
)

// ListCache keeps the full project list in redis so the public listing
// and the admin table don't hit MySQL on every request. Best effort: a
// cache failure is logged and the caller falls back to the database.
type ListCache struct {
	rdb *redis.Client
	log *logrus.Entry
}

func NewListCache(rdb *redis.Client) *ListCache {
	return &ListCache{rdb: rdb, log: logrus.WithField("component", "project_cache")}
}

func (c *ListCache) Get(ctx context.Context) ([]model.Project, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, projectListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).Warn("cache read failed")
		}
		return nil, false
	}
	var projects []model.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		c.log.WithError(err).Warn("cache payload corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return projects, true
}

func (c *ListCache) Set(ctx context.Context, projects []model.Project) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(projects)
	if err != nil {
		c.log.WithError(err).Warn("cache encode failed")
		return
	}
	if err := c.rdb.Set(ctx, projectListKey, raw, projectListTTL).Err(); err != nil {
		c.log.WithError(err).Warn("cache write failed")
	}
}

func (c *ListCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, projectListKey).Err(); err != nil {
		c.log.WithError(err).Warn("cache invalidate failed")
	}
}
