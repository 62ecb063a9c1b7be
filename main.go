package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/mahjong/config"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/network"
	"github.com/ratel-online/mahjong/service"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	policy, err := service.PolicyByName(cfg.AIPolicy)
	if err != nil {
		log.Errorf("unknown ai policy %q\n", cfg.AIPolicy)
		os.Exit(1)
	}
	hub := network.NewHub(service.Options{
		Policy:      policy,
		AIMoveDelay: cfg.AIMoveDelay,
	})
	hub.Registry().RunJanitor(consts.RoomSweepInterval, consts.RoomMaxIdle)
	async.Async(func() {
		log.Error(network.NewTcpServer(cfg.TCPAddr, hub).Serve())
	})
	log.Error(network.NewWebsocketServer(cfg.WSAddr, hub, cfg.OriginAllowed).Serve())
}
