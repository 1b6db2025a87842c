package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis

// NewRedis starts (once) an in-process Redis server for the summary cache.
func NewRedis() *miniredis.Miniredis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
	})
	return redisServer
}

// RedisURL returns the connection URL of the in-process Redis server.
func RedisURL() string {
	return "redis://" + NewRedis().Addr()
}
