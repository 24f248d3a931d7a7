package printforge

// New wires a Client and SessionController from cfg: a Redis-backed token
// store when a Redis address is configured so multiple processes share one
// session slot, a file-backed one otherwise. Call controller.Start at
// application start and controller.Stop at shutdown.
func New(cfg Config) (*Client, *SessionController, error) {
	var store TokenStore
	if addr := cfg.GetRedisAddress(); addr != "" {
		redisStore, err := NewRedisTokenStore(addr, cfg.GetRedisPassword(), cfg.GetRedisDB(), DefaultTokenKey)
		if err != nil {
			return nil, nil, err
		}
		store = redisStore
	} else {
		store = NewFileTokenStore(cfg.GetTokenFile())
	}

	client := NewClient(cfg.GetBaseURL(), store)
	controller := NewSessionController(client, store)
	if interval := cfg.GetStoreWatchInterval(); interval > 0 {
		controller.WithStoreWatch(interval)
	}

	return client, controller, nil
}
