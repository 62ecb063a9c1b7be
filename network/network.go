package network

import (
	"io"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/event"
	"github.com/ratel-online/mahjong/model"
	"github.com/ratel-online/mahjong/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

type packetWriter interface {
	Write(packet protocol.Packet) error
}

// client owns the write side of one connection. Messages are queued and
// written by a single goroutine so room locks never wait on the network.
type client struct {
	conn   packetWriter
	closer io.Closer
	queue  chan interface{}
	done   chan struct{}
	once   sync.Once
}

func newClient(conn packetWriter, closer io.Closer) *client {
	c := &client{
		conn:   conn,
		closer: closer,
		queue:  make(chan interface{}, consts.SendQueueSize),
		done:   make(chan struct{}),
	}
	async.Async(c.pump)
	return c
}

func (c *client) pump() {
	for {
		select {
		case <-c.done:
			return
		case v := <-c.queue:
			if err := c.conn.Write(protocol.Packet{Body: json.Marshal(v)}); err != nil {
				log.Error(err)
				c.drop()
				return
			}
		}
	}
}

// send queues v without blocking. A client whose queue is full is dropped.
func (c *client) send(v interface{}) error {
	select {
	case <-c.done:
		return consts.ErrorsConnectionNotFound
	default:
	}
	select {
	case c.queue <- v:
		return nil
	default:
		c.drop()
		return consts.ErrorsSendQueueFull
	}
}

func (c *client) stop() {
	c.once.Do(func() {
		close(c.done)
	})
}

// drop stops the client and closes its transport, which ends its read loop.
func (c *client) drop() {
	c.once.Do(func() {
		close(c.done)
		if err := c.closer.Close(); err != nil {
			log.Error(err)
		}
	})
}

// Hub tracks live connections and routes their requests into the registry.
type Hub struct {
	mu       sync.RWMutex
	clients  *hashmap.HashMap
	registry *service.Registry
	started  time.Time
}

func NewHub(opts service.Options) *Hub {
	h := &Hub{
		clients: hashmap.New(),
		started: time.Now(),
	}
	h.registry = service.NewRegistry(h, opts)
	return h
}

func (h *Hub) Registry() *service.Registry {
	return h.registry
}

// Send pushes ev to one live connection.
func (h *Hub) Send(conn event.ConnID, ev event.Event) error {
	h.mu.RLock()
	v, ok := h.clients.Get(int64(conn))
	h.mu.RUnlock()
	if !ok {
		return consts.ErrorsConnectionNotFound
	}
	return v.(*client).send(ev)
}

// Dispatch decodes one request body, runs it and builds its response.
func (h *Hub) Dispatch(conn event.ConnID, body []byte) model.Response {
	req := model.Request{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &req); err != nil {
		return model.ErrResp(0, consts.ErrorsInputInvalid.Code, consts.ErrorsInputInvalid.Msg)
	}
	data, err := h.registry.Handle(conn, req.Action, req.Data)
	if err != nil {
		return model.ErrResp(req.Seq, consts.Code(err), err.Error())
	}
	return model.SucResp(req.Seq, data)
}

func (h *Hub) handle(rwc protocol.ReadWriteCloser) error {
	conn := network.Wrapper(rwc)
	c := newClient(conn, rwc)
	id := event.ConnID(conn.ID())
	h.mu.Lock()
	h.clients.Set(int64(id), c)
	h.mu.Unlock()
	log.Infof("[Connection] %d connected\n", id)
	defer func() {
		h.registry.Leave(id)
		h.mu.Lock()
		h.clients.Del(int64(id))
		h.mu.Unlock()
		c.stop()
		if err := conn.Close(); err != nil {
			log.Error(err)
		}
		log.Infof("[Disconnect] %d disconnected\n", id)
	}()
	for {
		packet, err := conn.Read()
		if err != nil {
			return err
		}
		if err := c.send(h.Dispatch(id, packet.Body)); err != nil {
			return err
		}
	}
}
