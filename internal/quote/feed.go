package quote

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Feed fans quote updates out to subscribed clients. Local clients receive
// broadcasts directly; the redis bridge carries updates across instances.
type Feed struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	Day  string
	Send chan []byte
}

func NewFeed(redisClient *redis.Client) *Feed {
	f := &Feed{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go f.subscribeRedis()
	}
	return f
}

func (f *Feed) Register(day string) *Client {
	client := &Client{
		Day:  day,
		Send: make(chan []byte, 16),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clients[day] == nil {
		f.clients[day] = map[*Client]struct{}{}
	}
	f.clients[day][client] = struct{}{}
	return client
}

func (f *Feed) Unregister(client *Client) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if dayClients, ok := f.clients[client.Day]; ok {
		delete(dayClients, client)
		if len(dayClients) == 0 {
			delete(f.clients, client.Day)
		}
	}
	close(client.Send)
}

// Broadcast sends a payload to every subscriber of the day. With redis wired,
// local subscribers receive the update through the pattern subscription like
// every other instance; direct delivery only covers a failed publish.
func (f *Feed) Broadcast(day string, payload []byte) {
	if f.redis == nil {
		f.deliver(day, payload)
		return
	}

	err := f.redis.Publish(context.Background(), quoteChannel(day), payload).Err()
	if err != nil {
		log.Printf("redis publish error: %v", err)
		f.deliver(day, payload)
	}
}

// deliver holds the read lock across the sends. Unregister closes Send under
// the write lock, so a channel can never close mid-send; the sends are
// non-blocking, so holding the lock here cannot stall.
func (f *Feed) deliver(day string, payload []byte) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for client := range f.clients[day] {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (f *Feed) subscribeRedis() {
	ctx := context.Background()
	pubsub := f.redis.PSubscribe(ctx, "quotes:*:updated")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		f.deliver(dayFromChannel(msg.Channel), []byte(msg.Payload))
	}
}

func quoteChannel(day string) string {
	return "quotes:" + day + ":updated"
}

func dayFromChannel(ch string) string {
	// quotes:{day}:updated
	const prefix = "quotes:"
	const suffix = ":updated"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
