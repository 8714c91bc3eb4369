package main

import (
	"fmt"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"teamdesk/bolt"
	"teamdesk/clients"
	"teamdesk/clients/assets"
	"teamdesk/clients/teams"
	"teamdesk/clients/users"
	"teamdesk/errors"
	"teamdesk/log"
	"teamdesk/session"
	"teamdesk/workspace"
)

var (
	// flags
	env        string
	configFile string

	// logger
	logger log.Logger
)

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
}

var RootCmd = cobra.Command{
	Use:   "teamdesk",
	Short: "Manage your teams, folders and notes from the terminal",
	Long:  "Manage your teams, folders and notes from the terminal",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env)

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}
	},
}

type Configuration struct {
	UserService struct {
		BaseURL string `toml:"base_url"`
	} `toml:"user_service"`
	AssetService struct {
		BaseURL string `toml:"base_url"`
	} `toml:"asset_service"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
}

func loadConfiguration() (Configuration, error) {
	var config Configuration

	data, err := os.ReadFile(configFile)
	if err != nil {
		return config, errors.New("error reading configuration file", errors.WithCause(err))
	}

	err = toml.Unmarshal(data, &config)
	if err != nil {
		return config, errors.New("error decoding configuration file", errors.WithCause(err))
	}

	return config, nil
}

// openWorkspace builds the full client stack: bolt-backed session,
// bearer-token transport, the three service clients and the facade on
// top. The returned function releases the bolt store.
func openWorkspace() (*workspace.Workspace, func(), error) {
	config, err := loadConfiguration()
	if err != nil {
		return nil, func() {}, err
	}

	if dir := path.Dir(config.Bolt.Store); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, func() {}, errors.New("error creating session store directory", errors.WithCause(err))
		}
	}

	driver := bolt.Driver{}
	if err := driver.Open(config.Bolt.Store); err != nil {
		return nil, func() {}, errors.New("error opening session store", errors.WithCause(err))
	}

	sess := session.New(&bolt.SessionStore{Driver: &driver})
	if err := sess.Init(); err != nil {
		driver.Close()
		return nil, func() {}, errors.New("error restoring session", errors.WithCause(err))
	}

	httpClient := clients.NewHTTPClient(sess, func() {
		logger.Print("session rejected by the server, log in again")
	})

	ws := workspace.New(
		users.NewClient(httpClient, config.UserService.BaseURL),
		teams.NewClient(httpClient, config.UserService.BaseURL),
		assets.NewClient(httpClient, config.AssetService.BaseURL),
		sess,
		logger,
	)

	return ws, func() { driver.Close() }, nil
}
