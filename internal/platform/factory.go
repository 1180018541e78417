package platform

import (
	"fmt"

	"github.com/notewire/notewire/pkg/adapters/fs"
	"github.com/notewire/notewire/pkg/adapters/rest"
	"github.com/notewire/notewire/pkg/core"
)

// New assembles a session controller from the configured adapters:
// file-backed session store, REST gateway, and the core state machine.
// Injected stores/gateways (tests, alternative transports) take precedence
// over the defaults.
func New(opts ...Option) (*core.Controller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	configPath := o.configPath
	if configPath == "" {
		var err error
		configPath, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	fileCfg, err := LoadFileConfig(configPath)
	if err != nil {
		return nil, err
	}

	store := o.store
	if store == nil {
		sessionPath := o.sessionPath
		if sessionPath == "" {
			sessionPath, err = DefaultSessionPath()
			if err != nil {
				return nil, err
			}
		}
		store = fs.NewStore(sessionPath, o.logger)
	}

	directory := o.directory
	notes := o.notes
	if directory == nil || notes == nil {
		if directory != nil || notes != nil {
			return nil, fmt.Errorf("directory and notes gateways must be injected together")
		}
		client := rest.New(rest.Config{
			BaseURL:    ResolveBaseURL(o.baseURL, fileCfg),
			HTTPClient: o.httpClient,
			Logger:     o.logger,
		})
		directory = client
		notes = client
	}

	pageSize := o.pageSize
	if pageSize <= 0 {
		pageSize = fileCfg.PageSize
	}

	return core.NewController(store, directory, notes, core.ControllerConfig{
		PageSize:    pageSize,
		Confirm:     o.confirm,
		EventBuffer: o.eventBuffer,
		Logger:      o.logger,
	}), nil
}
